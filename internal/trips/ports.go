// Package trips provides the itinerary sources the ledger service reads
// from: the planner backend over HTTP, or a local JSON document.
package trips

import (
	"context"

	"tripledger/internal/core"
)

// Source loads the itinerary tree. A source returns an error when the trip
// cannot be produced; callers decide whether to surface it or degrade to an
// absent trip.
type Source interface {
	Load(ctx context.Context) (*core.Trip, error)
}
