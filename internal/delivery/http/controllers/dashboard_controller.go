package controllers

import (
	"log/slog"
	"net/http"

	"eduvent/internal/delivery/http/helpers"
	"eduvent/internal/domain"
	"eduvent/internal/views"
)

type DashboardController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewDashboardController(logger *slog.Logger, svc domain.DirectoryService) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Service: svc,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Aggregate counts: events total and by status, registrations, and total participants.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/stats [get]
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	ds := c.Service.Snapshot(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, views.DashboardStats(ds.Events, ds.Registrations))
}

// Chart godoc
// @Summary Registrations-per-event chart data
// @Description One point per event with its registration count, titles shortened for axis labels.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the chart points"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/chart [get]
func (c *DashboardController) Chart(w http.ResponseWriter, r *http.Request) {
	ds := c.Service.Snapshot(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, views.ChartData(ds.Events, ds.Registrations))
}
