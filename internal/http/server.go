package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"

	"tripledger/internal/cache"
	"tripledger/internal/log"
	"tripledger/internal/services"
)

// snapshotKey is the single cache key for the aggregated ledger view. The
// whole API serves one trip, so one entry is enough; mutations purge it.
const snapshotKey = "snapshot"

type Server struct {
	http.Server
	svc         *services.LedgerService
	rateLimiter *rateLimiter
	logger      *log.Logger

	// Cached Snapshot shared by the ledger, summary and payment handlers.
	snapshots *cache.Loader[services.Snapshot]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. allowedOrigins lists the frontend origins permitted by CORS.
func NewServer(addr string, allowedOrigins []string, svc *services.LedgerService, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	snapshotCache := cache.NewLRUCache[services.Snapshot](8, 30*time.Second)

	s := &Server{
		Server: http.Server{
			Addr:         addr,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		svc:              svc,
		rateLimiter:      newRateLimiter(),
		logger:           logger.WithComponent(log.ComponentHTTP),
		snapshots:        cache.NewLoader(snapshotCache),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/trip", s.withSecurityHeaders(s.handleTrip))
	mux.HandleFunc("/api/records", s.withSecurityHeaders(s.handleRecords))
	mux.HandleFunc("/api/ledger", s.withSecurityHeaders(s.handleLedger))
	mux.HandleFunc("/api/summary", s.withSecurityHeaders(s.handleSummary))
	mux.HandleFunc("/api/payment/amount", s.withSecurityHeaders(s.handlePaymentAmount))

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	s.Server.Handler = c.Handler(mux)

	return s
}

// startCacheCleanup periodically drops expired snapshot entries.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.snapshots.CleanExpired(); removed > 0 {
				s.logger.Debug("Cache cleanup completed", "entries_removed", removed)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting and request
// logging to API responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		s.logger.InfoContext(ctx, "Request started",
			log.FieldRequestID, requestID,
			"method", r.Method,
			"url", r.URL.Path,
			log.FieldClientIP, clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		if isSuspiciousRequest(r) {
			s.logger.WarnContext(ctx, "Suspicious request pattern",
				log.FieldClientIP, clientIP, "method", r.Method, "url", r.URL.Path)
		}

		// Mutations are rate limited per client IP.
		if (r.Method == http.MethodPost || r.Method == http.MethodDelete) && !s.rateLimiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				log.FieldClientIP, clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		s.logger.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			log.FieldDuration, duration.Milliseconds(),
			log.FieldClientIP, clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady checks that the record store answers before reporting ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := s.svc.ListRecords(ctx); err != nil {
		s.logger.WarnContext(r.Context(), "Readiness check failed", log.FieldError, err)
		http.Error(w, "record store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
