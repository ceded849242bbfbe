// Package config loads runtime settings from the environment.
//
// A `.env` file is read first when present (development), then the process
// environment is parsed into Config.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server and terminal client read.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"console"` // console | json
	LogFile        string        `env:"LOG_FILE"`                        // play mode only; empty discards
	RoundSecret    string        `env:"ROUND_SECRET" envDefault:"dev_secret_change_me"`
	RoundTTL       time.Duration `env:"ROUND_TTL" envDefault:"24h"`
	CookieName     string        `env:"COOKIE_NAME" envDefault:"forca_round"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Production reports whether cookies should be Secure / SameSite=None.
func (c Config) Production() bool { return c.AppEnv == "production" }

// Load reads optional dotenv files (default ".env") and parses the environment.
func Load(files ...string) (Config, error) {
	// Missing .env files are normal outside development.
	_ = godotenv.Load(files...)

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	if cfg.RoundTTL <= 0 {
		return Config{}, fmt.Errorf("ROUND_TTL must be positive, got %s", cfg.RoundTTL)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
