package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. It is built once at startup and
// passed by reference into the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	ServerPort    int    `env:"PORT" envDefault:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./jastip.db"`
	JWTSecret     string `env:"JWT_SECRET"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"true"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}
