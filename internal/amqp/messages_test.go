package amqp

import (
	"testing"
	"time"

	"tripledger/internal/core"
)

func TestRecordEventRoundTrip(t *testing.T) {
	rec := core.ManualRecord{
		ID:        "r-1",
		Category:  core.CategoryShopping,
		Name:      "Silk scarf",
		Amount:    180,
		CreatedAt: time.Date(2025, 5, 1, 14, 30, 0, 0, time.UTC),
	}

	body, err := NewRecordCreatedMessage(rec).ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := RecordEventMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != EventRecordCreated {
		t.Fatalf("kind = %q, want %q", got.Kind, EventRecordCreated)
	}
	if got.Record == nil || got.Record.ID != "r-1" || got.Record.Amount != 180 {
		t.Fatalf("record not carried: %+v", got.Record)
	}
}

func TestClearedEventHasNoRecord(t *testing.T) {
	body, err := NewRecordsClearedMessage().ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := RecordEventMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != EventRecordsClear || got.Record != nil {
		t.Fatalf("unexpected cleared event: %+v", got)
	}
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	if _, err := RecordEventMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}
