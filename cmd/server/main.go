package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduvent/config"
	_ "eduvent/docs"
	"eduvent/internal/adapters/auth"
	"eduvent/internal/adapters/email"
	delivery "eduvent/internal/delivery/http"
	"eduvent/internal/delivery/http/controllers"
	"eduvent/internal/delivery/http/middleware"
	"eduvent/internal/services"
	"eduvent/internal/store/bolt"
)

// @title EduVent API
// @version 1.0
// @description Campus event directory and team registration API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	store, err := bolt.Open(cfg.StorePath, logger)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.StorePath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)

	directory, err := services.NewDirectoryService(store, mailer, logger)
	if err != nil {
		logger.Error("failed to initialize directory", "err", err)
		os.Exit(1)
	}

	checker, err := auth.NewCredentialChecker(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		logger.Error("failed to initialize credential checker", "err", err)
		os.Exit(1)
	}
	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	authService := services.NewAuthService(checker, tokens, store, cfg.TokenExpiry)

	mux := delivery.NewRouter(delivery.Controllers{
		Events:        controllers.NewEventController(logger, directory),
		Registrations: controllers.NewRegistrationController(logger, directory),
		Dashboard:     controllers.NewDashboardController(logger, directory),
		Export:        controllers.NewExportController(logger, directory),
		Auth:          controllers.NewAuthController(logger, authService),
		Theme:         controllers.NewThemeController(logger, store),
	}, tokens)

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, mux))
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
