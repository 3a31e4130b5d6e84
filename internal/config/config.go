// Package config loads engine configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SearchConfig configures the move selector.
type SearchConfig struct {
	Mode  string `yaml:"mode"`  // "greedy" or "minimax"
	Depth int    `yaml:"depth"` // minimax depth, >= 1
}

// Config is the full application configuration. Every field has a default,
// so a missing config file is not an error.
type Config struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// DataDir overrides the platform data directory used for storage.
	DataDir string `yaml:"data_dir"`

	// TimeControl is the per-side starting time, e.g. "10m".
	TimeControl string `yaml:"time_control"`

	Search SearchConfig `yaml:"search"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		TimeControl: "10m",
		Search: SearchConfig{
			Mode:  "minimax",
			Depth: 3,
		},
	}
}

// Load reads the configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Defaults apply.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from CHESSCORE_* environment variables.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_TIME_CONTROL")); v != "" {
		cfg.TimeControl = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_SEARCH_MODE")); v != "" {
		cfg.Search.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSCORE_SEARCH_DEPTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Search.Depth = n
		}
	}
}

func (c *Config) validate() error {
	if c.Search.Mode != "greedy" && c.Search.Mode != "minimax" {
		return fmt.Errorf("invalid search mode: %q", c.Search.Mode)
	}
	if c.Search.Depth < 1 {
		return fmt.Errorf("search depth must be >= 1, got %d", c.Search.Depth)
	}
	if _, err := time.ParseDuration(c.TimeControl); err != nil {
		return fmt.Errorf("invalid time control %q: %w", c.TimeControl, err)
	}
	return nil
}

// TimeControlDuration returns the parsed per-side starting time.
func (c *Config) TimeControlDuration() time.Duration {
	d, _ := time.ParseDuration(c.TimeControl)
	return d
}
