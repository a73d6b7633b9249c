package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eduvent/internal/delivery/http/helpers"
	"eduvent/internal/domain"
	"eduvent/internal/export"
)

type ExportController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewExportController(logger *slog.Logger, svc domain.DirectoryService) *ExportController {
	return &ExportController{
		Logger:  logger,
		Service: svc,
	}
}

// ExportMaster godoc
// @Summary Export all registrations
// @Description Downloads the master registration list as UTF-8 CSV (with byte-order marker). With no registrations there is nothing to download and the request fails with bad_request.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request — no registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/export [get]
func (c *ExportController) ExportMaster(w http.ResponseWriter, r *http.Request) {
	ds := c.Service.Snapshot(r.Context())
	blob, err := export.MasterCSV(ds.Registrations, func(eventID string) (string, bool) {
		e, ok := ds.EventByID(eventID)
		return e.Title, ok
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoRegistrations) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	writeCSV(w, export.MasterFilename, blob)
}

// ExportEvent godoc
// @Summary Export one event's registrations
// @Description Downloads the event's registration manifest as UTF-8 CSV. The filename is derived from the event title with spaces as underscores.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request — no registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID}/export [get]
func (c *ExportController) ExportEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	regs := c.Service.RegistrationsForEvent(r.Context(), event.ID)
	blob, err := export.ManifestCSV(regs)
	if err != nil {
		if errors.Is(err, domain.ErrNoRegistrations) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	writeCSV(w, export.ManifestFilename(event.Title), blob)
}

func writeCSV(w http.ResponseWriter, filename string, blob []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
