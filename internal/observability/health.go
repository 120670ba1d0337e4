package observability

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/MKhiriev/auctions-api/internal/utils"
)

// HealthChecker is a dependency pinged by the readiness check.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	db    HealthChecker
	ready atomic.Bool
}

// NewHealthHandler returns a handler that is not ready until SetReady(true).
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// SetReady flips the readiness of the application itself.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health always answers 200 while the process is serving.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// Ready answers 200 when the application is ready and the database answers
// a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	allHealthy := true

	if !h.ready.Load() {
		checks["app"] = "not ready"
		allHealthy = false
	} else {
		checks["app"] = "ok"
	}

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			checks["database"] = "unreachable"
			allHealthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	status := "ok"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, ReadyResponse{Status: status, Checks: checks}, statusCode)
}
