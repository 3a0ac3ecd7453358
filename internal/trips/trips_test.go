package trips

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleTrip = `{
	"trip_id": "t-9",
	"trip_name": "Chengdu",
	"destination": "Chengdu",
	"days": [
		{"day_index": 1, "date": "2025-06-01", "activities": [
			{"id": "a1", "type": "food", "cost": 55, "title": "Hotpot"}
		]}
	]
}`

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	if err := os.WriteFile(path, []byte(sampleTrip), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	trip, err := NewFileSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if trip.TripID != "t-9" || len(trip.Days) != 1 {
		t.Fatalf("unexpected trip: %+v", trip)
	}
}

func TestFileSourceMissing(t *testing.T) {
	if _, err := NewFileSource("/nonexistent/trip.json").Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleTrip))
	}))
	defer srv.Close()

	trip, err := NewClient(srv.URL, 2*time.Second).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if trip.Days[0].Activities[0].Cost != 55 {
		t.Fatalf("unexpected activity cost: %+v", trip.Days[0].Activities[0])
	}
}

func TestClientNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, 2*time.Second).Load(context.Background()); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
