package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"eduvent/internal/delivery/http/helpers"
	"eduvent/internal/domain"
	"eduvent/internal/views"
)

// EventRequest is the request body for creating or replacing an event.
// All fields except imageUrl are required; ids are server-generated.
type EventRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	Location             string    `json:"location"`
	Status               string    `json:"status"`
	Category             string    `json:"category"`
	ImageURL             string    `json:"imageUrl"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "title is required")
	}
	if e.Description == "" {
		errs = append(errs, "description is required")
	}
	if e.Status != "" && !domain.ValidStatus(domain.EventStatus(e.Status)) {
		errs = append(errs, "status must be Active, Paused or Ended")
	}
	if e.RegistrationDeadline.IsZero() {
		errs = append(errs, "registrationDeadline is required")
	}
	return errs
}

func (e EventRequest) toEvent() domain.Event {
	status := domain.EventStatus(e.Status)
	if e.Status == "" {
		status = domain.StatusActive
	}
	return domain.Event{
		Title:                e.Title,
		Description:          e.Description,
		Date:                 e.Date,
		Time:                 e.Time,
		Location:             e.Location,
		Status:               status,
		Category:             e.Category,
		ImageURL:             e.ImageURL,
		RegistrationDeadline: e.RegistrationDeadline,
	}
}

// StatusRequest is the request body for the status-only partial update.
type StatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (s StatusRequest) Validate() []string {
	if !domain.ValidStatus(domain.EventStatus(s.Status)) {
		return []string{"status must be Active, Paused or Ended"}
	}
	return nil
}

// EventSummary is a directory listing entry: the event plus its current
// registration count.
// swagger:model EventSummary
type EventSummary struct {
	domain.Event
	RegistrationCount int `json:"registrationCount"`
}

// EventDetail is the single-event view: the event, its registration count,
// and whether registration is currently open.
// swagger:model EventDetail
type EventDetail struct {
	domain.Event
	RegistrationCount int  `json:"registrationCount"`
	CanRegister       bool `json:"canRegister"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewEventController(logger *slog.Logger, svc domain.DirectoryService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns the event directory in insertion order, optionally narrowed by a case-insensitive search term (matched against title and description) and a category. category=All (the default) matches everything.
// @Tags events
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category filter (All, Technical, Cultural, Entrepreneurship)"
// @Success 200 {object} helpers.APIResponse "data contains the matching events with registration counts"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	ds := c.Service.Snapshot(r.Context())
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	out := []EventSummary{}
	for e := range views.FilterEvents(ds.Events, r.URL.Query().Get("search"), category) {
		out = append(out, EventSummary{
			Event:             e,
			RegistrationCount: views.RegistrationCount(e.ID, ds.Registrations),
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event, its registration count, and whether registration is currently open (status Active and deadline not passed).
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	regs := c.Service.RegistrationsForEvent(r.Context(), event.ID)
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetail{
		Event:             event,
		RegistrationCount: len(regs),
		CanRegister:       event.CanRegister(time.Now()),
	})
}

// countdownFrame is one server-sent countdown update.
type countdownFrame struct {
	views.Remaining
	Expired bool `json:"expired"`
}

// StreamCountdown godoc
// @Summary Stream a registration countdown
// @Description Server-sent events stream emitting the time remaining until the registration deadline once per second. The stream ends after the deadline passes or when the client disconnects.
// @Tags events
// @Produce text/event-stream
// @Param eventID path string true "Event ID"
// @Success 200 {string} string "SSE frames with days/hours/minutes/seconds"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/countdown [get]
func (c *EventController) StreamCountdown(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The ticker lives exactly as long as the client connection: request
	// context cancellation stops it.
	views.Countdown(r.Context(), event.RegistrationDeadline, func(rem views.Remaining, ok bool) bool {
		frame, err := json.Marshal(countdownFrame{Remaining: rem, Expired: !ok})
		if err != nil {
			return false
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", frame); err != nil {
			return false
		}
		flusher.Flush()
		return true
	})
}

// CreateEvent godoc
// @Summary Publish a new event
// @Description Create a new event. The id is server-generated; status defaults to Active when omitted.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toEvent())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Fully replaces the event with the given id, preserving its position in the directory. Updating an unknown id changes nothing and reports not_found.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventRequest true "Replacement fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent()
	event.ID = r.PathValue("eventID")
	applied, err := c.Service.UpdateEvent(r.Context(), event)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if !applied {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// SetEventStatus godoc
// @Summary Change an event's status
// @Description The status-only partial update. Any status may transition to any other.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID}/status [patch]
func (c *EventController) SetEventStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.SetEventStatus(r.Context(), r.PathValue("eventID"), domain.EventStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and every registration referencing it. Deleting twice is not an error.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
