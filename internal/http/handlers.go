package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripledger/internal/core"
	"tripledger/internal/log"
	"tripledger/internal/services"
)

// maxRecordBodySize caps the POST /api/records request body.
const maxRecordBodySize = 64 * 1024

// snapshot serves the shared cached view; every read endpoint goes through
// here so their numbers always agree.
func (s *Server) snapshot(r *http.Request) (services.Snapshot, error) {
	return s.snapshots.Load(r.Context(), snapshotKey, s.svc.Snapshot)
}

// handleTrip returns the raw itinerary. Unlike the aggregation endpoints a
// failed trip load is an error here, not a silent zero.
func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	trip, err := s.svc.Trip(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Trip load failed", log.FieldError, err)
		respondError(w, http.StatusBadGateway, "trip data unavailable")
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListRecords(w, r)
	case http.MethodPost:
		s.handleAddRecord(w, r)
	case http.MethodDelete:
		s.handleClearRecords(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := s.svc.ListRecords(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record listing failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not list records")
		return
	}
	if recs == nil {
		recs = []core.ManualRecord{}
	}
	respondJSON(w, http.StatusOK, recs)
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var nr core.NewRecord
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBodySize))
	if err := dec.Decode(&nr); err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// Reject trailing garbage after the object.
	if dec.More() {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	nr.Name = sanitizeInput(nr.Name)
	nr.Description = sanitizeInput(nr.Description)

	rec, err := s.svc.AddRecord(r.Context(), nr)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCategory) || errors.Is(err, core.ErrInvalidAmount) || errors.Is(err, core.ErrEmptyName) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.ErrorContext(r.Context(), "Record creation failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not store record")
		return
	}

	// Totals change, drop the cached snapshot.
	s.snapshots.InvalidateAll()

	s.logger.InfoContext(r.Context(), "Record created",
		log.FieldRecordID, rec.ID,
		log.FieldRecordName, rec.Name,
		log.FieldCategory, string(rec.Category),
		log.FieldAmount, rec.Amount)

	respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleClearRecords(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearRecords(r.Context()); err != nil {
		s.logger.ErrorContext(r.Context(), "Record clear failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not clear records")
		return
	}

	s.snapshots.InvalidateAll()

	s.logger.InfoContext(r.Context(), "Records cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap, err := s.snapshot(r)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Ledger aggregation failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not build ledger")
		return
	}
	respondJSON(w, http.StatusOK, newLedgerResponse(snap.Ledger, snap.Summary))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap, err := s.snapshot(r)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Summary aggregation failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not build summary")
		return
	}
	respondJSON(w, http.StatusOK, newSummaryResponse(snap.Summary))
}

// handlePaymentAmount returns the grand total in payable form. It reads the
// same cached snapshot as the summary endpoint.
func (s *Server) handlePaymentAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap, err := s.snapshot(r)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Payment amount aggregation failed", log.FieldError, err)
		respondError(w, http.StatusInternalServerError, "could not compute amount")
		return
	}
	respondJSON(w, http.StatusOK, amountResponse{
		Amount:  snap.Summary.Total,
		Display: formatYen(snap.Summary.Total),
	})
}
