package core

import (
	"testing"
	"time"
)

func TestBuildLedgerNilInputs(t *testing.T) {
	if got := BuildLedger(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty ledger, got %v", got)
	}
	if got := BuildLedger(&Trip{}, nil); len(got) != 0 {
		t.Fatalf("expected empty ledger for empty trip, got %v", got)
	}
}

func TestBuildLedgerOrdering(t *testing.T) {
	trip := &Trip{Days: []Day{
		{DayIndex: 1, Activities: []Activity{
			{Type: TypeFood, Title: "Breakfast", Cost: 30, StartTime: "08:00"},
			{Type: TypeFood, Title: "Dinner", Cost: 90, StartTime: "19:00"},
		}},
		{DayIndex: 2, Activities: []Activity{
			{Type: TypeFood, Title: "Lunch", Cost: 45, StartTime: "12:00"},
		}},
	}}
	records := []ManualRecord{
		{Category: CategoryFood, Name: "Snacks", Amount: 12, CreatedAt: time.Now()},
	}

	ledger := BuildLedger(trip, records)
	entries := ledger[CategoryFood]
	if len(entries) != 4 {
		t.Fatalf("expected 4 food entries, got %d", len(entries))
	}
	wantLabels := []string{"Breakfast", "Dinner", "Lunch", "Snacks"}
	for i, want := range wantLabels {
		if entries[i].Label != want {
			t.Fatalf("entry %d label = %q, want %q", i, entries[i].Label, want)
		}
	}
	// Derived entries precede manual ones.
	if entries[2].Source != SourceDerived || entries[3].Source != SourceManual {
		t.Fatalf("unexpected sources: %q, %q", entries[2].Source, entries[3].Source)
	}
}

func TestBuildLedgerSkipsUnbilledAndZeroCost(t *testing.T) {
	trip := &Trip{Days: []Day{{Activities: []Activity{
		// Walking is never billed, even with a cost value attached.
		{Type: TypeTransportation, Mode: "walk", Cost: 50},
		{Type: TypeActivity, Title: "Free museum"}, // no cost
		{Type: "unknown", Cost: 10},
	}}}}
	if got := BuildLedger(trip, nil); len(got) != 0 {
		t.Fatalf("expected empty ledger, got %v", got)
	}
}

func TestBuildLedgerNoDedup(t *testing.T) {
	a := Activity{Type: TypeShopping, Title: "Souvenir", Cost: 25}
	trip := &Trip{Days: []Day{{Activities: []Activity{a, a}}}}
	ledger := BuildLedger(trip, nil)
	if len(ledger[CategoryShopping]) != 2 {
		t.Fatalf("identical activities must stay distinct, got %d entries", len(ledger[CategoryShopping]))
	}
}

func TestBuildLedgerLodgingVsTickets(t *testing.T) {
	trip := &Trip{Days: []Day{{Activities: []Activity{
		{Type: TypeActivity, Mode: ModeHotel, Title: "Hotel", Cost: 600},
		{Type: TypeActivity, Title: "Show", Cost: 600},
	}}}}
	ledger := BuildLedger(trip, nil)
	if len(ledger[CategoryLodging]) != 1 || len(ledger[CategoryTickets]) != 1 {
		t.Fatalf("expected one lodging and one tickets entry, got %v", ledger)
	}
}
