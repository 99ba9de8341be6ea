package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	StaticDir string `env:"STATIC_DIR, default=web"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN, default=postgres://localhost:5432/swdsms?sslmode=disable"`
	// Migrate applies the embedded schema migrations at startup. Off by
	// default: provisioning is an operator action.
	Migrate bool `env:"DATABASE_MIGRATE, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
