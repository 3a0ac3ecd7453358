package core

import "math"

// ActivityCost extracts the cost of one itinerary item. It never fails and
// never returns a negative or non-finite number; any missing or malformed
// price resolves to 0.
//
// Most shapes carry a direct Cost field. large_transportation is priced from
// the first cabin's adult sale price: the provider lists the default fare
// first, so this is a "default fare" pick, not a minimum search across
// cabins.
func ActivityCost(a Activity) float64 {
	if a.Type == TypeLargeTransportation {
		td := a.TrafficDetails
		if td == nil || len(td.Cabins) == 0 {
			return 0
		}
		return sanitize(td.Cabins[0].CabinPrice.AdultSalePrice)
	}
	return sanitize(a.Cost)
}

// sanitize clamps NaN, infinities and negatives to the zero contribution.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
