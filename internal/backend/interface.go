// Package backend selects and constructs the manual record store from
// configuration.
package backend

import (
	"context"

	"tripledger/internal/records"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the constructed store and an optional cleanup function.
type Result struct {
	Store   records.Store
	Cleanup CleanupFunc
}

// Factory creates record stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Type represents the kind of record store backing the API.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
	RedisBackend  Type = "redis"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{MemoryBackend, SQLiteBackend, RedisBackend}
}
