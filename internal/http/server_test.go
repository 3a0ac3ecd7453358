package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripledger/internal/core"
	"tripledger/internal/log"
	"tripledger/internal/records/memory"
	"tripledger/internal/services"
	"tripledger/internal/trips"
)

type fakeTrips struct{ trip *core.Trip }

func (f fakeTrips) Load(ctx context.Context) (*core.Trip, error) { return f.trip, nil }

type failingTrips struct{}

func (failingTrips) Load(ctx context.Context) (*core.Trip, error) {
	return nil, context.DeadlineExceeded
}

// testTrip mixes every classification rule: a billed flight leg, a hotel
// stay, meals, shopping and an unbilled walk.
func testTrip() *core.Trip {
	return &core.Trip{
		TripID:   "trip-1",
		TripName: "Tokyo",
		Days: []core.Day{
			{
				DayIndex: 0,
				Activities: []core.Activity{
					{Type: core.TypeLargeTransportation, Title: "Flight out", Mode: core.ModePlane, TrafficDetails: &core.TrafficDetails{
						Cabins: []core.Cabin{{CabinPrice: core.CabinPrice{AdultSalePrice: 800}}},
					}},
					{Type: core.TypeActivity, Title: "Hotel", Mode: core.ModeHotel, Cost: 600},
					{Type: core.TypeFood, Title: "Dinner", Cost: 120},
				},
			},
			{
				DayIndex: 1,
				Activities: []core.Activity{
					{Type: core.TypeShopping, Title: "Souvenirs", Cost: 200},
					{Type: core.TypeTransportation, Title: "Stroll", Mode: "walk", Cost: 50},
				},
			},
		},
	}
}

func newTestServer(t *testing.T, src trips.Source) *Server {
	t.Helper()
	logger := log.New(log.DefaultConfig())
	svc := services.NewLedgerService(src, memory.New(), nil)
	return NewServer(":0", []string{"http://localhost:3000"}, svc, logger)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doJSON(t, srv, http.MethodGet, path, "")
		if rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestTripEndpoint(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	rr := doJSON(t, srv, http.MethodGet, "/api/trip", "")
	if rr.Code != 200 {
		t.Fatalf("trip status=%d", rr.Code)
	}
	var trip core.Trip
	if err := json.Unmarshal(rr.Body.Bytes(), &trip); err != nil {
		t.Fatalf("decode trip: %v", err)
	}
	if trip.TripID != "trip-1" || len(trip.Days) != 2 {
		t.Fatalf("unexpected trip: %+v", trip)
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/trip", "{}")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestTripEndpointUnavailable(t *testing.T) {
	srv := newTestServer(t, failingTrips{})
	rr := doJSON(t, srv, http.MethodGet, "/api/trip", "")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestRecordsValidationAndLifecycle(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	// Empty list before any writes.
	rr := doJSON(t, srv, http.MethodGet, "/api/records", "")
	if rr.Code != 200 {
		t.Fatalf("list status=%d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}

	// Malformed JSON
	rr = doJSON(t, srv, http.MethodPost, "/api/records", "{not json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	// Unknown category
	rr = doJSON(t, srv, http.MethodPost, "/api/records", `{"category":"misc","name":"x","amount":10}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown category, got %d", rr.Code)
	}

	// Non-positive amount
	rr = doJSON(t, srv, http.MethodPost, "/api/records", `{"category":"food","name":"x","amount":0}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for zero amount, got %d", rr.Code)
	}

	// Success
	rr = doJSON(t, srv, http.MethodPost, "/api/records", `{"category":"food","name":"Ramen","amount":88}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var rec core.ManualRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.ID == "" || rec.Category != core.CategoryFood || rec.Amount != 88 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// Clear
	rr = doJSON(t, srv, http.MethodDelete, "/api/records", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	rr = doJSON(t, srv, http.MethodGet, "/api/records", "")
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array after clear, got %s", rr.Body.String())
	}
}

func TestSummaryAndPaymentAgree(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	rr := doJSON(t, srv, http.MethodGet, "/api/summary", "")
	if rr.Code != 200 {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var summary summaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Total != 1720 {
		t.Fatalf("total = %v, want 1720", summary.Total)
	}
	if summary.PerCategory[core.CategoryTransport] != 800 || summary.PerCategory[core.CategoryLodging] != 600 {
		t.Fatalf("unexpected per-category sums: %+v", summary.PerCategory)
	}
	if summary.PerCategory[core.CategoryTickets] != 0 {
		t.Fatalf("tickets should be zero, got %v", summary.PerCategory[core.CategoryTickets])
	}
	if summary.Display["total"] != "¥1720.0" {
		t.Fatalf("display total = %q", summary.Display["total"])
	}

	rr = doJSON(t, srv, http.MethodGet, "/api/payment/amount", "")
	if rr.Code != 200 {
		t.Fatalf("payment status=%d", rr.Code)
	}
	var amount amountResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &amount); err != nil {
		t.Fatalf("decode amount: %v", err)
	}
	if amount.Amount != summary.Total {
		t.Fatalf("payment amount %v != summary total %v", amount.Amount, summary.Total)
	}
	if amount.Display != "¥1720.0" {
		t.Fatalf("payment display = %q", amount.Display)
	}
}

func TestLedgerListsAllCategories(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	rr := doJSON(t, srv, http.MethodGet, "/api/ledger", "")
	if rr.Code != 200 {
		t.Fatalf("ledger status=%d", rr.Code)
	}
	var ledger ledgerResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &ledger); err != nil {
		t.Fatalf("decode ledger: %v", err)
	}
	if len(ledger.Categories) != 5 {
		t.Fatalf("categories = %v", ledger.Categories)
	}
	for _, cat := range core.Categories {
		if _, ok := ledger.Entries[cat]; !ok {
			t.Fatalf("missing category %q in entries", cat)
		}
	}
	// The unbilled walk never shows up.
	for _, e := range ledger.Entries[core.CategoryTransport] {
		if e.Label == "Stroll" {
			t.Fatalf("unbilled activity leaked into ledger")
		}
	}
	if got := ledger.Entries[core.CategoryTransport][0].Display; got != "¥800.0" {
		t.Fatalf("entry display = %q", got)
	}
	if ledger.Summary.Total != 1720 {
		t.Fatalf("ledger summary total = %v", ledger.Summary.Total)
	}
}

func TestMutationsRefreshTotals(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	rr := doJSON(t, srv, http.MethodGet, "/api/summary", "")
	var before summaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &before); err != nil {
		t.Fatalf("decode summary: %v", err)
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/records", `{"category":"shopping","name":"Gift","amount":30}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodGet, "/api/summary", "")
	var after summaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if after.Total != before.Total+30 {
		t.Fatalf("total after add = %v, want %v", after.Total, before.Total+30)
	}

	rr = doJSON(t, srv, http.MethodDelete, "/api/records", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("clear status=%d", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodGet, "/api/summary", "")
	var cleared summaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &cleared); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if cleared.Total != before.Total {
		t.Fatalf("total after clear = %v, want %v", cleared.Total, before.Total)
	}
}

func TestRateLimitOnMutations(t *testing.T) {
	srv := newTestServer(t, fakeTrips{trip: testTrip()})

	limited := false
	for i := 0; i < rateLimitRequests+5; i++ {
		body := fmt.Sprintf(`{"category":"food","name":"r%d","amount":1}`, i)
		rr := doJSON(t, srv, http.MethodPost, "/api/records", body)
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected rate limiter to trip")
	}
}
