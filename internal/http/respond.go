package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tripledger/internal/core"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, errorBody{Error: message})
}

// formatYen renders an amount the way the review and payment screens show
// it: yen sign, one decimal place. Rounding happens only here, never in the
// aggregation itself.
func formatYen(amount float64) string {
	return "¥" + strconv.FormatFloat(amount, 'f', 1, 64)
}

// summaryResponse wraps a Summary with its display strings.
type summaryResponse struct {
	PerCategory map[core.Category]float64 `json:"per_category"`
	Total       float64                   `json:"total"`
	Display     map[string]string         `json:"display"`
}

func newSummaryResponse(s core.Summary) summaryResponse {
	display := make(map[string]string, len(s.PerCategory)+1)
	for cat, sum := range s.PerCategory {
		display[string(cat)] = formatYen(sum)
	}
	display["total"] = formatYen(s.Total)
	return summaryResponse{
		PerCategory: s.PerCategory,
		Total:       s.Total,
		Display:     display,
	}
}

// entryView is a ledger entry with its display-formatted amount.
type entryView struct {
	core.Entry
	Display string `json:"display"`
}

// ledgerResponse carries the per-category entries together with the totals
// computed from the very same entries.
type ledgerResponse struct {
	Categories []core.Category               `json:"categories"`
	Entries    map[core.Category][]entryView `json:"entries"`
	Summary    summaryResponse               `json:"summary"`
}

func newLedgerResponse(ledger core.Ledger, summary core.Summary) ledgerResponse {
	entries := make(map[core.Category][]entryView, len(core.Categories))
	for _, cat := range core.Categories {
		views := make([]entryView, 0, len(ledger[cat]))
		for _, e := range ledger[cat] {
			views = append(views, entryView{Entry: e, Display: formatYen(e.Amount)})
		}
		entries[cat] = views
	}
	return ledgerResponse{
		Categories: core.Categories,
		Entries:    entries,
		Summary:    newSummaryResponse(summary),
	}
}

type amountResponse struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}
