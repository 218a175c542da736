// Package config provides configuration for the sgf-extract tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings for one sgf-extract run. Library code never
// reads it; it only shapes the tool's reporting and logging.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // empty = stderr only

	// Reporting
	JSON          bool `yaml:"json"`           // machine-readable per-file summaries
	Quiet         bool `yaml:"quiet"`          // suppress per-node diagnostics
	ReportUnknown bool `yaml:"report_unknown"` // list unrecognized properties
	ReportInvalid bool `yaml:"report_invalid"` // list rejected properties

	// Stop at the first file that fails to parse.
	FailFast bool `yaml:"fail_fast"`

	// Number of files parsed concurrently.
	Workers int `yaml:"workers"`
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:      "info",
		ReportUnknown: true,
		ReportInvalid: true,
		Workers:       4,
	}
}

// Load reads a YAML config file over the defaults. A missing path keeps
// the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
