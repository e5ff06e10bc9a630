// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. PALETTE_MCP_LOG_LEVEL.
const Prefix = "PALETTE_MCP"

// Config holds runtime settings for the server and CLI.
type Config struct {
	// LogLevel enables startup and per-request logging when set to "debug".
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Seed fixes the palette generator's random source. Zero seeds from the clock.
	Seed int64 `envconfig:"SEED" default:"0"`
	// OCRLanguage is the Tesseract language used by legibility probes.
	OCRLanguage string `envconfig:"OCR_LANG" default:"eng"`
}

// Load reads a .env file from the working directory if one exists, then
// the process environment. Real environment variables win over .env entries.
func Load() (*Config, error) {
	// Optional file.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Debug reports whether debug logging is on.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}
