package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eduvent/internal/delivery/http/controllers"
	"eduvent/internal/delivery/http/middleware"
	"eduvent/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Dashboard     *controllers.DashboardController
	Export        *controllers.ExportController
	Auth          *controllers.AuthController
	Theme         *controllers.ThemeController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier)

	// Public directory
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/countdown", c.Events.StreamCountdown)
	mux.HandleFunc("POST /events/{eventID}/registrations", c.Registrations.Register)

	// Preferences
	mux.HandleFunc("GET /preferences/theme", c.Theme.GetTheme)
	mux.HandleFunc("PUT /preferences/theme", c.Theme.PutTheme)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", admin(c.Auth.Logout))

	// Admin
	mux.HandleFunc("POST /admin/events", admin(c.Events.CreateEvent))
	mux.HandleFunc("PUT /admin/events/{eventID}", admin(c.Events.UpdateEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}/status", admin(c.Events.SetEventStatus))
	mux.HandleFunc("DELETE /admin/events/{eventID}", admin(c.Events.DeleteEvent))
	mux.HandleFunc("GET /admin/events/{eventID}/registrations", admin(c.Registrations.ListForEvent))
	mux.HandleFunc("GET /admin/events/{eventID}/export", admin(c.Export.ExportEvent))
	mux.HandleFunc("GET /admin/export", admin(c.Export.ExportMaster))
	mux.HandleFunc("GET /admin/stats", admin(c.Dashboard.Stats))
	mux.HandleFunc("GET /admin/chart", admin(c.Dashboard.Chart))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
