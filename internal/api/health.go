package api

import (
	"context"
	"net/http"
	"time"

	"github.com/brieffast/brieffast-server/internal/api/respond"
	"github.com/brieffast/brieffast-server/internal/store"
)

// healthReporter exposes the cached service health flag.
type healthReporter interface {
	IsHealthy() bool
}

// HealthHandler serves liveness and store-connectivity probes.
type HealthHandler struct {
	reporter healthReporter
	store    store.Store
}

func NewHealthHandler(reporter healthReporter, st store.Store) *HealthHandler {
	return &HealthHandler{reporter: reporter, store: st}
}

// CheckHealth handles GET /api/health using the cached health flag.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if h.reporter != nil && !h.reporter.IsHealthy() {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// CheckStoreHealth handles GET /api/health/store with a live probe.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.HealthPing(ctx); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
