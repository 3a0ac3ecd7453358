package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewRecordValidate(t *testing.T) {
	good := NewRecord{Category: "food", Name: "Dumplings", Amount: 35.5}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		r    NewRecord
		want error
	}{
		{"unknown category", NewRecord{Category: "souvenirs", Name: "a", Amount: 1}, ErrUnknownCategory},
		{"empty category", NewRecord{Name: "a", Amount: 1}, ErrUnknownCategory},
		{"empty name", NewRecord{Category: "food", Amount: 1}, ErrEmptyName},
		{"blank name", NewRecord{Category: "food", Name: "   ", Amount: 1}, ErrEmptyName},
		{"zero amount", NewRecord{Category: "food", Name: "a"}, ErrInvalidAmount},
		{"negative amount", NewRecord{Category: "food", Name: "a", Amount: -3}, ErrInvalidAmount},
		{"nan amount", NewRecord{Category: "food", Name: "a", Amount: math.NaN()}, ErrInvalidAmount},
		{"inf amount", NewRecord{Category: "food", Name: "a", Amount: math.Inf(1)}, ErrInvalidAmount},
	}
	for _, tc := range cases {
		err := tc.r.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}
