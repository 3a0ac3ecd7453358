package core

// Entry source discriminators.
const (
	SourceDerived = "derived"
	SourceManual  = "manual"
)

type (
	// Entry is one priced line in the ledger, drawn either from the
	// itinerary (derived) or from a manual record.
	Entry struct {
		Source    string  `json:"source"`
		Label     string  `json:"label"`
		Detail    string  `json:"detail,omitempty"`
		Amount    float64 `json:"amount"`
		TimeLabel string  `json:"time,omitempty"`
	}

	// Ledger groups priced entries by category. Categories with no entries
	// have no key; Aggregate still reports them as zero.
	Ledger map[Category][]Entry
)

// BuildLedger walks the itinerary in day/activity order, classifies and
// prices every activity, and merges in the manual records. Within a category,
// derived entries come first in traversal order, then manual entries in
// creation order, so output is deterministic for identical inputs.
//
// Zero-cost and unbilled items are omitted. Nothing is deduplicated: two
// activities with the same title and cost are two distinct expenses. A nil
// trip or empty record set is valid and simply contributes nothing.
func BuildLedger(trip *Trip, records []ManualRecord) Ledger {
	ledger := make(Ledger)

	if trip != nil {
		for _, day := range trip.Days {
			for _, a := range day.Activities {
				cat, billed := Classify(a)
				if !billed {
					continue
				}
				cost := ActivityCost(a)
				if cost <= 0 {
					continue
				}
				ledger[cat] = append(ledger[cat], Entry{
					Source:    SourceDerived,
					Label:     a.Title,
					Detail:    a.Description,
					Amount:    cost,
					TimeLabel: a.StartTime,
				})
			}
		}
	}

	for _, r := range records {
		// Store boundaries validate category and amount; records with an
		// unknown category cannot reach this point.
		ledger[r.Category] = append(ledger[r.Category], Entry{
			Source:    SourceManual,
			Label:     r.Name,
			Detail:    r.Description,
			Amount:    r.Amount,
			TimeLabel: r.CreatedAt.Format("15:04:05"),
		})
	}

	return ledger
}
