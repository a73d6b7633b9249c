package controllers

import (
	"log/slog"
	"net/http"

	"eduvent/internal/delivery/http/helpers"
	"eduvent/internal/domain"
)

// ThemeRequest is the request body for PUT /preferences/theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// Validate implements Validator.
func (t ThemeRequest) Validate() []string {
	if t.Theme != "light" && t.Theme != "dark" {
		return []string{"theme must be light or dark"}
	}
	return nil
}

// ThemeResponse carries the current theme preference.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ThemeController struct {
	Logger *slog.Logger
	Prefs  domain.PreferenceStore
}

func NewThemeController(logger *slog.Logger, prefs domain.PreferenceStore) *ThemeController {
	return &ThemeController{
		Logger: logger,
		Prefs:  prefs,
	}
}

// GetTheme godoc
// @Summary Get the theme preference
// @Tags preferences
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the theme, defaulting to light"
// @Router /preferences/theme [get]
func (c *ThemeController) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := c.Prefs.Theme()
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// PutTheme godoc
// @Summary Set the theme preference
// @Tags preferences
// @Accept json
// @Produce json
// @Param theme body ThemeRequest true "light or dark"
// @Success 200 {object} helpers.APIResponse "data contains the stored theme"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /preferences/theme [put]
func (c *ThemeController) PutTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Prefs.SaveTheme(req.Theme); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}
