// Package records defines the manual expense record store port and its
// in-memory reference implementation lives in the memory subpackage.
//
// The store contract is deliberately narrow: records are created one at a
// time and removed only in bulk. Per-record deletion is not part of the
// product flow today.
package records

import (
	"context"

	"tripledger/internal/core"
)

// Store is the port for manual record persistence. Add must validate the
// payload and assign the id and creation timestamp; List returns records in
// creation order.
type Store interface {
	List(ctx context.Context) ([]core.ManualRecord, error)
	Add(ctx context.Context, r core.NewRecord) (core.ManualRecord, error)
	ClearAll(ctx context.Context) error
}
