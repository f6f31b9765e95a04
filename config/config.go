package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ParseEnvironment normalises the provided value into one of the known
// environments. Unknown values fall back to Development.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool {
	return e == Production
}

// Config holds all application-level configuration, sourced from environment
// variables (loaded from .env for local runs).
type Config struct {
	Port        string        `envconfig:"PORT" default:"5000"`
	Env         string        `envconfig:"APP_ENV" default:"development"`
	ServiceName string        `envconfig:"SERVICE_NAME" default:"plan-your-trip-india"`
	StaticDir   string        `envconfig:"STATIC_DIR" default:"static"`
	CatalogPath string        `envconfig:"CATALOG_PATH"`
	PDFTTL      time.Duration `envconfig:"PDF_TTL" default:"30m"`

	// Comma separated. Empty allows every origin.
	FrontendURLs []string `envconfig:"FRONTEND_URL"`
}

// Environment returns the parsed APP_ENV value.
func (c *Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// AllowedOrigins returns the trimmed, non-empty CORS origins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, u := range c.FrontendURLs {
		if u = strings.TrimSpace(u); u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

// Load reads an optional .env file and processes the environment into a Config.
// The returned bool reports whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, dotenv, fmt.Errorf("process environment config: %w", err)
	}
	if cfg.PDFTTL <= 0 {
		return nil, dotenv, fmt.Errorf("PDF_TTL must be positive, got %s", cfg.PDFTTL)
	}
	return &cfg, dotenv, nil
}
