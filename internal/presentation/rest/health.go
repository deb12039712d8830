package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	pkgpostgres "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/postgres"
)

const readinessTimeout = 2 * time.Second

// HealthHandler serves liveness, readiness and metrics over HTTP.
type HealthHandler struct {
	db      pkgpostgres.Pinger
	metrics http.Handler
	service string
	logger  *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. A nil metrics
// handler leaves /metrics unregistered.
func NewHealthHandler(db pkgpostgres.Pinger, metrics http.Handler, service string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, metrics: metrics, service: service, logger: logger}
}

// RegisterRoutes attaches health-check and metrics routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := pkgpostgres.HealthCheck(ctx, h.db); err != nil {
		h.logger.WarnContext(ctx, "readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"service":  h.service,
			"database": "unreachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"service":  h.service,
		"database": "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
