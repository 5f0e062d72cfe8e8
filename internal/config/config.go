package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the brief service. Values are parsed
// from BRIEFFAST_-prefixed environment variables, e.g. BRIEFFAST_HTTP_PORT.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// StoreDriver selects the persistence backend: redis, sqlite or postgres.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"redis"`

	RedisURL    string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/brieffast.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// APIKey guards the briefing endpoints. Requests must present it in the
	// x-api-key header. Leaving it unset disables all guarded endpoints.
	APIKey string `envconfig:"API_KEY" default:""`

	// SharePathPrefix marks public share pages. GET requests referred from
	// such a page may read a briefing without the API key.
	SharePathPrefix string `envconfig:"SHARE_PATH_PREFIX" default:"/b/"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// PDFLogoPath optionally points at a PNG drawn in the PDF page header.
	PDFLogoPath string `envconfig:"PDF_LOGO_PATH" default:""`

	HealthCheckIntervalSeconds int `envconfig:"HEALTH_CHECK_INTERVAL_SECONDS" default:"15"`
	ShutdownTimeoutSeconds     int `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10"`
}

// Validate checks the driver selection and its driver-specific settings.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("BRIEFFAST_REDIS_URL is required for the redis driver")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("BRIEFFAST_SQLITE_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("BRIEFFAST_POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported store driver: %q", c.StoreDriver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	return nil
}

// New creates a Config from the environment and validates it.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("BRIEFFAST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
