package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "CRABS"

// Config holds all application configuration.
type Config struct {
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
	JSONLogs     bool    `envconfig:"JSON_LOGS" default:"false"`
	Persist      bool    `envconfig:"PERSIST" default:"true"`
	Debug        bool    `envconfig:"DEBUG" default:"false"`
	WindowWidth  float32 `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight float32 `envconfig:"WINDOW_HEIGHT" default:"720"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("invalid window size %.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Persist:      true,
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}
