package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"selmore/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env is the deployment environment: development, production or test.
	// Outside production error responses carry stack traces.
	Env string `env:"ENV" envDefault:"development"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures token signing and password hashing.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Upload configures where billboard images are kept.
	Upload configs.Upload `envPrefix:"UPLOAD_"`

	RateLimit configs.RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.IsProduction() && cfg.Auth.JWTSecret == configs.DevJWTSecret {
		return cfg, errors.New("AUTH_JWT_SECRET must be set in production")
	}
	return cfg, nil
}

func (c Config) IsProduction() bool { return c.Env == "production" }
