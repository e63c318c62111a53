// Package handler provides HTTP handlers for the AirSight API.
package handler

import (
	"net/http"

	"github.com/airsight/airsight/internal/api/models"
	"github.com/airsight/airsight/internal/api/response"
	"github.com/airsight/airsight/internal/feed"
	"github.com/airsight/airsight/internal/series"
)

// DashboardHandler serves the normalized time-series and derived snapshot.
type DashboardHandler struct {
	svc *feed.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *feed.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSeries handles GET /v1/series?range=all|1d|7d|30d.
func (h *DashboardHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	rng, ok := series.ParseRange(r.URL.Query().Get("range"))
	if !ok {
		response.BadRequest(w, r, "range must be one of: all, 1d, 7d, 30d")
		return
	}

	weather, pollution := h.svc.GetFilteredData(rng)

	response.JSON(w, r, http.StatusOK, models.SeriesResponse{
		Range:     string(rng),
		Weather:   models.FromWeatherSeries(weather),
		Pollution: models.FromPollutionSeries(pollution),
	})
}

// GetLatest handles GET /v1/latest. Returns 404 until the first successful
// refresh has populated both series.
func (h *DashboardHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	snapshot := h.svc.GetLatestMetrics()
	if snapshot == nil {
		response.NotFound(w, r, "no readings have been ingested yet")
		return
	}
	response.JSON(w, r, http.StatusOK, models.FromSnapshot(snapshot))
}

// ListStations handles GET /v1/stations.
func (h *DashboardHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.FromStations(h.svc.Stations()))
}

// GetStatus handles GET /v1/status.
func (h *DashboardHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := models.Status{
		Loading: h.svc.Loading(),
		Error:   h.svc.Err(),
	}
	if at := h.svc.LastRefreshAt(); !at.IsZero() {
		status.LastRefreshAt = &at
	}
	response.JSON(w, r, http.StatusOK, status)
}
