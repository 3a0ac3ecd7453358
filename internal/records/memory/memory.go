// Package memory is the in-memory record store used by default and in tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripledger/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.ManualRecord
}

func New() *Store {
	return &Store{}
}

// List returns records in creation order.
func (s *Store) List(_ context.Context) ([]core.ManualRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.ManualRecord, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Add validates and stores a record, assigning id and timestamp.
func (s *Store) Add(_ context.Context, r core.NewRecord) (core.ManualRecord, error) {
	if err := r.Validate(); err != nil {
		return core.ManualRecord{}, err
	}
	cat, err := core.ParseCategory(r.Category)
	if err != nil {
		return core.ManualRecord{}, err
	}

	rec := core.ManualRecord{
		ID:          uuid.NewString(),
		Category:    cat,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
	return rec, nil
}

// ClearAll empties the store.
func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
