package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"eduvent/internal/delivery/http/helpers"
	"eduvent/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// RegisterRequest is the request body for submitting a team registration.
type RegisterRequest struct {
	TeamName    string `json:"teamName"`
	Email       string `json:"email"`
	MemberCount int    `json:"memberCount"`
}

// Validate implements Validator. These are the boundary checks the domain
// deliberately does not repeat: required fields, email shape, and the 1..10
// team size limits of the registration form.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if r.TeamName == "" {
		errs = append(errs, "teamName is required")
	}
	if !emailRegex.MatchString(r.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if r.MemberCount < 1 {
		errs = append(errs, "memberCount must be at least 1")
	}
	if r.MemberCount > 10 {
		errs = append(errs, "memberCount must be at most 10")
	}
	return errs
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewRegistrationController(logger *slog.Logger, svc domain.DirectoryService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a team for an event
// @Description Submits a team registration. Eligibility (status Active and deadline not passed) is re-checked here, at the moment of submission; the registration itself is unconditional once eligible.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param registration body RegisterRequest true "Team details"
// @Success 201 {object} helpers.APIResponse "data contains the stored registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict — registration closed"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	// Eligibility depends on wall-clock time, so it is checked now rather
	// than trusted from an earlier render of the form.
	if !event.CanRegister(time.Now()) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, domain.ErrRegistrationClosed.Error())
		return
	}
	reg, err := c.Service.RegisterTeam(r.Context(), domain.NewRegistration(event.ID, req.TeamName, req.Email, req.MemberCount))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// RegistrationsResponse is the admin view of an event's registrations.
type RegistrationsResponse struct {
	Event             domain.Event          `json:"event"`
	Registrations     []domain.Registration `json:"registrations"`
	TotalParticipants int                   `json:"totalParticipants"`
}

// ListForEvent godoc
// @Summary List registrations for an event
// @Description Returns the event's registrations in insertion order with the participant total. Viewing registrations for a deleted event is a not_found view state, not an error.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event and its registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID}/registrations [get]
func (c *RegistrationController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "record not found")
		return
	}
	regs := c.Service.RegistrationsForEvent(r.Context(), event.ID)
	total := 0
	for _, reg := range regs {
		total += reg.MemberCount
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationsResponse{
		Event:             event,
		Registrations:     regs,
		TotalParticipants: total,
	})
}
