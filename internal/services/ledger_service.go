// Package services wires the pure cost engine to its collaborators: the
// trip source, the manual record store, and the record event publisher.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"tripledger/internal/amqp"
	"tripledger/internal/core"
	"tripledger/internal/records"
	"tripledger/internal/trips"
)

// Snapshot is one consistent view of the trip ledger: the itinerary (nil
// while loading or failed), the merged per-category entries, and the totals.
type Snapshot struct {
	Trip    *core.Trip
	Ledger  core.Ledger
	Summary core.Summary
}

// LedgerService is the single aggregation path for every caller. The review
// screen, the ledger listing and the payment amount all flow through
// Snapshot, so their numbers can never disagree.
type LedgerService struct {
	trips      trips.Source
	store      records.Store
	amqpClient *amqp.Client
}

func NewLedgerService(src trips.Source, store records.Store, amqpClient *amqp.Client) *LedgerService {
	return &LedgerService{
		trips:      src,
		store:      store,
		amqpClient: amqpClient,
	}
}

// Snapshot loads both inputs and aggregates. A failed or absent trip load
// degrades to a nil trip; the engine then reports the manual records alone,
// and an all-zero summary when those are empty too. Record store failures
// are real errors and propagate.
func (s *LedgerService) Snapshot(ctx context.Context) (Snapshot, error) {
	var trip *core.Trip
	if s.trips != nil {
		t, err := s.trips.Load(ctx)
		if err != nil {
			slog.WarnContext(ctx, "Trip unavailable, aggregating without itinerary", "error", err)
		} else {
			trip = t
		}
	}

	recs, err := s.store.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list records: %w", err)
	}

	ledger := core.BuildLedger(trip, recs)
	return Snapshot{
		Trip:    trip,
		Ledger:  ledger,
		Summary: core.Aggregate(ledger),
	}, nil
}

// AmountDue returns the grand total for the payment step. It is the same
// aggregation as Snapshot by construction.
func (s *LedgerService) AmountDue(ctx context.Context) (float64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Summary.Total, nil
}

// Trip loads the raw itinerary for display. Unlike Snapshot, callers asking
// for the trip itself get the load error.
func (s *LedgerService) Trip(ctx context.Context) (*core.Trip, error) {
	if s.trips == nil {
		return nil, fmt.Errorf("no trip source configured")
	}
	return s.trips.Load(ctx)
}

// ListRecords returns the manual records in creation order.
func (s *LedgerService) ListRecords(ctx context.Context) ([]core.ManualRecord, error) {
	return s.store.List(ctx)
}

// AddRecord validates and persists a manual record, then publishes a record
// event. Publishing is best effort: the record is already saved, a broker
// outage must not fail the request.
func (s *LedgerService) AddRecord(ctx context.Context, nr core.NewRecord) (core.ManualRecord, error) {
	rec, err := s.store.Add(ctx, nr)
	if err != nil {
		return core.ManualRecord{}, err
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.PublishRecordEvent(ctx, amqp.NewRecordCreatedMessage(rec)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish record event",
				"record_id", rec.ID, "error", err)
		}
	}

	return rec, nil
}

// ClearRecords empties the manual record set.
func (s *LedgerService) ClearRecords(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.PublishRecordEvent(ctx, amqp.NewRecordsClearedMessage()); err != nil {
			slog.ErrorContext(ctx, "Failed to publish clear event", "error", err)
		}
	}

	return nil
}
