package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
)

type (
	// ManualRecord is a user-entered expense line, independent of the
	// itinerary. Records are created one at a time and removed only by a
	// bulk clear; per-record deletion is not part of the store contract.
	ManualRecord struct {
		ID          string    `json:"id"`
		Category    Category  `json:"category"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Amount      float64   `json:"amount"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// NewRecord is the creation payload. It is validated at the boundary so
	// that every ManualRecord the engine sees carries a positive finite
	// amount and a known category.
	NewRecord struct {
		Category    string  `json:"category"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Amount      float64 `json:"amount"`
	}
)

func (r NewRecord) Validate() error {
	if _, err := ParseCategory(r.Category); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.Name)) == 0 {
		return ErrEmptyName
	}
	if len(r.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
