package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Search.Mode != "minimax" || cfg.Search.Depth != 3 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.TimeControlDuration() != 10*time.Minute {
		t.Errorf("time control = %v", cfg.TimeControlDuration())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
time_control: 3m
search:
  mode: greedy
  depth: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Search.Mode != "greedy" || cfg.Search.Depth != 1 {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.TimeControlDuration() != 3*time.Minute {
		t.Errorf("time control = %v", cfg.TimeControlDuration())
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Search.Mode != "minimax" || cfg.Search.Depth != 3 || cfg.TimeControl != "10m" {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "search:\n  mode: greedy\n  depth: 2\n")

	t.Setenv("CHESSCORE_SEARCH_MODE", "minimax")
	t.Setenv("CHESSCORE_SEARCH_DEPTH", "5")
	t.Setenv("CHESSCORE_TIME_CONTROL", "90s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Mode != "minimax" || cfg.Search.Depth != 5 {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.TimeControlDuration() != 90*time.Second {
		t.Errorf("time control = %v", cfg.TimeControlDuration())
	}
}

func TestInvalidDepthEnvIgnored(t *testing.T) {
	t.Setenv("CHESSCORE_SEARCH_DEPTH", "banana")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Depth != 3 {
		t.Errorf("Depth = %d, want default 3", cfg.Search.Depth)
	}
}

func TestValidationRejectsBadValues(t *testing.T) {
	cases := []string{
		"search:\n  mode: telepathy\n",
		"search:\n  mode: minimax\n  depth: 0\n",
		"time_control: soon\n",
	}
	for _, contents := range cases {
		path := writeConfig(t, contents)
		if _, err := Load(path); err == nil {
			t.Errorf("Load accepted %q", contents)
		}
	}
}

func TestMalformedYAML(t *testing.T) {
	path := writeConfig(t, "search: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}
