package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tripledger/internal/core"
)

// FileSource reads the trip from a JSON document on disk. Used for
// development and demos, seeded the same way the planner writes its sample
// trips.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) (*core.Trip, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read trip file: %w", err)
	}

	var trip core.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("decode trip file %s: %w", s.path, err)
	}
	return &trip, nil
}
