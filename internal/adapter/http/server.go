// Package http exposes health, readiness, metrics, and an on-demand
// simulation endpoint.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/baroclinic-sim/internal/domain"
)

// maxSimulateSteps caps on-demand simulations at a year of hourly steps.
const maxSimulateSteps = 8760

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Defaults supplies fallback query parameters for /simulate.
type Defaults struct {
	SurfaceTempDelta  float64
	AltitudeTempDelta float64
	TimeSteps         int
}

// Server exposes the HTTP surface of the feed service.
type Server struct {
	httpServer *http.Server
	defaults   Defaults
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// GET /simulate routes.
func NewServer(addr string, ready ReadinessChecker, defaults Defaults, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		defaults: defaults,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /simulate", s.handleSimulate)

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

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// simulateResponse carries one on-demand run. Values are internal units;
// clients convert for display.
type simulateResponse struct {
	Latitude          float64                    `json:"latitude"`
	SurfaceTempDelta  float64                    `json:"surface_temp_delta"`
	AltitudeTempDelta float64                    `json:"altitude_temp_delta"`
	TimeSteps         int                        `json:"time_steps"`
	Results           []domain.DevelopmentResult `json:"results"`
}

// handleSimulate runs a single scenario from query parameters:
// lat (required), surface, aloft, steps (optional, config defaults).
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := requireFloat(q.Get("lat"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "lat is required and must be a number")
		return
	}
	surface, err := optionalFloat(q.Get("surface"), s.defaults.SurfaceTempDelta)
	if err != nil {
		writeError(w, http.StatusBadRequest, "surface must be a number")
		return
	}
	aloft, err := optionalFloat(q.Get("aloft"), s.defaults.AltitudeTempDelta)
	if err != nil {
		writeError(w, http.StatusBadRequest, "aloft must be a number")
		return
	}
	steps, err := optionalInt(q.Get("steps"), s.defaults.TimeSteps)
	if err != nil || steps < 0 || steps > maxSimulateSteps {
		writeError(w, http.StatusBadRequest, "steps must be an integer between 0 and 8760")
		return
	}

	scenario, err := domain.NewBaroclinicCyclogenesis(surface, aloft, lat)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("simulate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	writeJSON(w, http.StatusOK, simulateResponse{
		Latitude:          lat,
		SurfaceTempDelta:  surface,
		AltitudeTempDelta: aloft,
		TimeSteps:         steps,
		Results:           scenario.SimulateInteraction(steps),
	})
}

func requireFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("missing")
	}
	return strconv.ParseFloat(s, 64)
}

func optionalFloat(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

func optionalInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
