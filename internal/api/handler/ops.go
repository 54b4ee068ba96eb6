// Package handler provides HTTP handlers for the whereabouts API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/whereabouts/whereabouts/internal/api/models"
	"github.com/whereabouts/whereabouts/internal/api/response"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	store     Pinger
}

// NewOpsHandler creates a new OpsHandler. store may be nil when the
// service runs without a database (in-memory mode).
func NewOpsHandler(version, buildTime string, store Pinger) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		store:     store,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The event
// store is the only hard dependency; the transit feed degrades gracefully
// so it does not gate readiness.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ready := models.Readiness{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.store != nil {
		status := models.SubsystemStatus{Name: "event-store", Status: models.HealthStatusOK}
		if err := h.store.Ping(r.Context()); err != nil {
			detail := err.Error()
			status.Status = models.HealthStatusFail
			status.Detail = &detail
			ready.Status = models.HealthStatusFail
		}
		ready.Subsystems = append(ready.Subsystems, status)
	}

	if ready.Status != models.HealthStatusOK {
		response.JSON(w, r, http.StatusServiceUnavailable, ready)
		return
	}
	response.JSON(w, r, http.StatusOK, ready)
}
