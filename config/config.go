package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	StorePath   string

	// Admin credentials: a single fixed administrator account. If
	// AdminPasswordHash is empty the plaintext AdminPassword is hashed at
	// startup by the credential checker.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	JWTSecret   string
	TokenExpiry time.Duration

	CORSOrigins []string

	MailProvider    string
	MailFromAddress string
	MailFromName    string
	SESRegion       string
	SESAccessKeyID  string
	SESSecretKey    string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		Port:              os.Getenv("PORT"),
		StorePath:         os.Getenv("STORE_PATH"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenExpiry:       24 * time.Hour,
		MailProvider:      os.Getenv("MAIL_PROVIDER"),
		MailFromAddress:   os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:      os.Getenv("MAIL_FROM_NAME"),
		SESRegion:         os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID:    os.Getenv("AWS_ACCESS_KEY_ID"),
		SESSecretKey:      os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "eduvent.db"
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		// The fixed credential pair of the original application.
		cfg.AdminPassword = "admin123"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.MailProvider == "" {
		cfg.MailProvider = "noop"
	}
	if cfg.MailFromAddress == "" {
		cfg.MailFromAddress = "noreply@eduvent.local"
	}
	if cfg.MailFromName == "" {
		cfg.MailFromName = "EduVent"
	}

	return cfg, nil
}
