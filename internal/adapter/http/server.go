// Package http exposes the report service over HTTP: submission, search,
// statistics, plus health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crimewatch/report-service/internal/observability"
	"github.com/crimewatch/report-service/internal/service"
)

// Server wraps the standard library HTTP server with the service routes.
type Server struct {
	httpServer *http.Server
	svc        *service.Service
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API, health, readiness, and
// metrics routes attached.
func NewServer(addr string, svc *service.Service, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("POST /api/reports", s.timed("submit", s.handleSubmit))
	mux.HandleFunc("GET /api/reports", s.timed("search", s.handleSearch))
	mux.HandleFunc("GET /api/stats/areas", s.timed("stats_areas", s.handleAreaStats))
	mux.HandleFunc("GET /api/stats/hourly", s.timed("stats_hourly", s.handleHourlyStats))
	mux.HandleFunc("GET /api/stats/monthly", s.timed("stats_monthly", s.handleMonthlyStats))
	mux.HandleFunc("GET /api/stats/weekdays", s.timed("stats_weekdays", s.handleWeekdayStats))
	mux.HandleFunc("GET /api/stats/summary", s.timed("stats_summary", s.handleSummary))
	mux.HandleFunc("GET /api/map/points", s.timed("map_points", s.handleMapPoints))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// timed records the handler's duration in the request histogram.
func (s *Server) timed(name string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		s.metrics.RequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.svc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
