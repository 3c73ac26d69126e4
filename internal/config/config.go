package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, populated from the environment.
type Config struct {
	// DBPath overrides the default XDG location of the SQLite file.
	DBPath string `env:"LINGUALEARN_DB"`

	// RemoteLatencyScale multiplies the simulated service delays.
	// 0 disables them entirely.
	RemoteLatencyScale float64 `env:"LINGUALEARN_REMOTE_LATENCY" envDefault:"1.0"`

	// Username is the default leaderboard display name when none has
	// been saved in settings.
	Username string `env:"LINGUALEARN_USERNAME" envDefault:"You"`
}

// Load reads configuration from a .env file (if present) and the
// environment. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
