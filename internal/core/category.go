package core

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the five fixed expense buckets. The set is closed:
// manual records carrying anything else are rejected at creation time.
type Category string

const (
	CategoryTickets   Category = "tickets"
	CategoryLodging   Category = "lodging"
	CategoryFood      Category = "food"
	CategoryShopping  Category = "shopping"
	CategoryTransport Category = "transport"
)

// Categories lists all buckets in display order. Aggregation output carries
// every one of them, zero-valued when empty.
var Categories = []Category{
	CategoryTickets,
	CategoryLodging,
	CategoryFood,
	CategoryShopping,
	CategoryTransport,
}

var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory validates a wire-level category identifier against the
// closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Classify maps an activity to its expense bucket. The second return is
// false for items that are never billed: short-haul transportation in modes
// other than plane or train (those legs exist for route display only) and
// unknown activity types.
//
// Rule precedence:
//  1. large_transportation is transport, unconditionally.
//  2. transportation is transport for plane/train, unbilled otherwise.
//  3. activity with mode hotel is lodging.
//  4. activity with any other or absent mode is tickets.
//  5. food and shopping map to themselves.
func Classify(a Activity) (Category, bool) {
	switch a.Type {
	case TypeLargeTransportation:
		return CategoryTransport, true
	case TypeTransportation:
		if a.Mode == ModePlane || a.Mode == ModeTrain {
			return CategoryTransport, true
		}
		return "", false
	case TypeActivity:
		if a.Mode == ModeHotel {
			return CategoryLodging, true
		}
		return CategoryTickets, true
	case TypeFood:
		return CategoryFood, true
	case TypeShopping:
		return CategoryShopping, true
	default:
		return "", false
	}
}
