package core

// Summary holds per-category subtotals and the grand total. PerCategory
// always contains all five categories. Total is computed as the sum of the
// per-category sums, so sum(PerCategory) == Total holds for every input,
// including the empty one.
type Summary struct {
	PerCategory map[Category]float64 `json:"per_category"`
	Total       float64              `json:"total"`
}

// Aggregate reduces a ledger to subtotals and a grand total using plain
// float addition. No rounding happens here; rounding to the display unit is
// a presentation concern, which keeps repeated aggregation of the same
// inputs exactly idempotent.
func Aggregate(ledger Ledger) Summary {
	s := Summary{PerCategory: make(map[Category]float64, len(Categories))}
	for _, cat := range Categories {
		var sum float64
		for _, e := range ledger[cat] {
			sum += e.Amount
		}
		s.PerCategory[cat] = sum
		s.Total += sum
	}
	return s
}
