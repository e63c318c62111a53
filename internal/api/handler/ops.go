package handler

import (
	"net/http"
	"time"

	"github.com/airsight/airsight/internal/api/models"
	"github.com/airsight/airsight/internal/api/response"
	"github.com/airsight/airsight/internal/feed"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	svc       *feed.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, svc *feed.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		svc:       svc,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: "ok",
		Time:   time.Now().UTC(),
		Details: map[string]string{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// is ready once the first refresh cycle has completed, successfully or not;
// a 503 here only means no cycle has finished yet.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.svc != nil && h.svc.Loading() {
		response.JSON(w, r, http.StatusServiceUnavailable, models.Health{
			Status: "starting",
			Time:   time.Now().UTC(),
		})
		return
	}
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: "ok",
		Time:   time.Now().UTC(),
	})
}
