package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mipli/sgf-parser/internal/testutil"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	testutil.AssertTrue(t, cfg.ReportUnknown)
	testutil.AssertTrue(t, cfg.ReportInvalid)
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestLoadWithoutPathKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg, NewConfig())
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("log_level: debug\njson: true\nreport_unknown: false\nworkers: 2\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	testutil.AssertNoError(t, err)

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	testutil.AssertTrue(t, cfg.JSON)
	testutil.AssertFalse(t, cfg.ReportUnknown)
	testutil.AssertTrue(t, cfg.ReportInvalid, "unset keys keep their defaults")
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	testutil.AssertError(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.Is(err, ErrInvalidConfig), "want ErrInvalidConfig, got %v", err)
		})
	}
}
