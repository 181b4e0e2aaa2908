package config

import (
	"fmt"

	pkgconfig "github.com/kuvvetliisik/pharma-showcase/pkg/config"
)

// Config holds all configuration for the showcase service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// JSON document store
	DBPath string `env:"DB_PATH" envDefault:"data/db.json"`

	// Image uploads
	UploadDir string `env:"UPLOAD_DIR" envDefault:"public/uploads"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// Contact form rate limit, per client IP.
	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"1"`
	ContactRateBurst int `env:"CONTACT_RATE_BURST" envDefault:"5"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH is required")
	}
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("UPLOAD_DIR is required")
	}
	if cfg.ContactRateLimit < 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must not be negative, got %d", cfg.ContactRateLimit)
	}
	return cfg, nil
}
