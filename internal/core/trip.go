// Package core implements the trip cost engine: classification of itinerary
// activities into expense categories, cost extraction from the heterogeneous
// activity shapes, merging with manual records, and aggregation into
// per-category subtotals and a grand total.
//
// Everything in this package is pure: no I/O, no shared state, no errors from
// the computation path. Missing or malformed cost data degrades to a zero
// contribution rather than failing, so callers may aggregate partial inputs
// (itinerary still loading, records absent) at any time.
package core

// Activity type discriminators as they appear on the wire.
const (
	TypeTransportation      = "transportation"
	TypeLargeTransportation = "large_transportation"
	TypeActivity            = "activity"
	TypeFood                = "food"
	TypeShopping            = "shopping"
)

// Modes relevant to cost accounting. Short-haul transportation carries many
// more modes (bus, walk, cycling, driving, ...); only plane and train are
// billed. An activity with mode hotel is lodging.
const (
	ModePlane = "plane"
	ModeTrain = "train"
	ModeHotel = "hotel"
)

type (
	// Trip is the itinerary tree returned by the planner backend. Day order
	// is chronological and significant.
	Trip struct {
		TripID      string `json:"trip_id"`
		TripName    string `json:"trip_name"`
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Days        []Day  `json:"days"`
	}

	// Day holds one day's activities in display order.
	Day struct {
		Date       string     `json:"date"`
		DayOfWeek  string     `json:"day_of_week,omitempty"`
		DayIndex   int        `json:"day_index"`
		Activities []Activity `json:"activities"`
	}

	// Activity is a discriminated-by-Type itinerary item. Cost is a direct
	// price for most shapes; large_transportation is priced through
	// TrafficDetails instead. All price-bearing fields are optional.
	Activity struct {
		ID             string          `json:"id"`
		Type           string          `json:"type"`
		Mode           string          `json:"mode,omitempty"`
		StartTime      string          `json:"start_time,omitempty"`
		EndTime        string          `json:"end_time,omitempty"`
		Title          string          `json:"title,omitempty"`
		Description    string          `json:"description,omitempty"`
		Cost           float64         `json:"cost,omitempty"`
		TrafficDetails *TrafficDetails `json:"traffic_details,omitempty"`
	}

	// TrafficDetails describes a long-haul leg. Cabins are ordered by the
	// upstream provider; the first one is treated as the default fare.
	TrafficDetails struct {
		TrafficType string  `json:"traffic_type,omitempty"`
		FlightNo    string  `json:"flightNo,omitempty"`
		TrainCode   string  `json:"trainCode,omitempty"`
		FromStation string  `json:"fromStation,omitempty"`
		ToStation   string  `json:"toStation,omitempty"`
		Cabins      []Cabin `json:"cabins,omitempty"`
	}

	Cabin struct {
		CabinName  string     `json:"cabinName,omitempty"`
		CabinPrice CabinPrice `json:"cabinPrice"`
	}

	CabinPrice struct {
		AdultSalePrice float64 `json:"adultSalePrice"`
	}
)
