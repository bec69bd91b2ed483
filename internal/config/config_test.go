package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Portal.Cycle != "20262" {
		t.Errorf("expected cycle 20262, got %s", cfg.Portal.Cycle)
	}
	if cfg.Portal.TimeoutSeconds != 15 {
		t.Errorf("expected timeout 15, got %d", cfg.Portal.TimeoutSeconds)
	}
	if cfg.Grid.FirstHour != 7 || cfg.Grid.LastHour != 21 {
		t.Errorf("expected grid 7-21, got %d-%d", cfg.Grid.FirstHour, cfg.Grid.LastHour)
	}
	if cfg.UI.Theme != "pastel" {
		t.Errorf("expected theme pastel, got %s", cfg.UI.Theme)
	}
	if cfg.UI.Collection != "default" {
		t.Errorf("expected collection default, got %s", cfg.UI.Collection)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Portal.Cycle != "20262" {
		t.Errorf("expected default cycle, got %s", cfg.Portal.Cycle)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[portal]
base_url = "http://localhost:8086/horario"
cycle = "20261"
timeout_seconds = 5

[grid]
first_hour = 8
last_hour = 20

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "dark"
collection = "semestre-3"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Portal.BaseURL != "http://localhost:8086/horario" {
		t.Errorf("expected base_url from file, got %s", cfg.Portal.BaseURL)
	}
	if cfg.Portal.Cycle != "20261" {
		t.Errorf("expected cycle 20261, got %s", cfg.Portal.Cycle)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Timeout())
	}
	// Not set in file, default kept
	if cfg.CacheTTL() != 12*time.Hour {
		t.Errorf("expected cache ttl 12h, got %v", cfg.CacheTTL())
	}
	if cfg.Grid.FirstHour != 8 || cfg.Grid.LastHour != 20 {
		t.Errorf("expected grid 8-20, got %d-%d", cfg.Grid.FirstHour, cfg.Grid.LastHour)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.UI.Theme)
	}
	if cfg.UI.Collection != "semestre-3" {
		t.Errorf("expected collection semestre-3, got %s", cfg.UI.Collection)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[portal\ncycle = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[portal]
cycle = "20261"
timeout_seconds = 5

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("HORARIO_CYCLE", "20271")
	t.Setenv("HORARIO_LAST_HOUR", "22")
	t.Setenv("HORARIO_COLLECTION", "otra")
	t.Setenv("HORARIO_CACHE_TTL_HOURS", "not-a-number")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Portal.Cycle != "20271" {
		t.Errorf("expected cycle 20271 from env, got %s", cfg.Portal.Cycle)
	}
	// File value should be kept when no env override
	if cfg.Portal.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5 from file, got %d", cfg.Portal.TimeoutSeconds)
	}
	// Env should override default
	if cfg.Grid.LastHour != 22 {
		t.Errorf("expected last_hour 22 from env, got %d", cfg.Grid.LastHour)
	}
	if cfg.UI.Collection != "otra" {
		t.Errorf("expected collection otra from env, got %s", cfg.UI.Collection)
	}
	// Malformed numbers are ignored
	if cfg.Portal.CacheTTLHours != 12 {
		t.Errorf("expected default cache ttl, got %d", cfg.Portal.CacheTTLHours)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty base url", func(c *Config) { c.Portal.BaseURL = "" }},
		{"non http base url", func(c *Config) { c.Portal.BaseURL = "ftp://example.com" }},
		{"non numeric cycle", func(c *Config) { c.Portal.Cycle = "2026-2" }},
		{"zero timeout", func(c *Config) { c.Portal.TimeoutSeconds = 0 }},
		{"negative cache ttl", func(c *Config) { c.Portal.CacheTTLHours = -1 }},
		{"first hour after last", func(c *Config) { c.Grid.FirstHour = 22; c.Grid.LastHour = 8 }},
		{"last hour past midnight", func(c *Config) { c.Grid.LastHour = 24 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"blank collection", func(c *Config) { c.UI.Collection = "  " }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Portal.Cycle = "20251"
	cfg.Grid.FirstHour = 8
	cfg.UI.Theme = "dark"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Portal.Cycle != "20251" {
		t.Errorf("expected cycle 20251, got %s", loaded.Portal.Cycle)
	}
	if loaded.Grid.FirstHour != 8 {
		t.Errorf("expected first_hour 8, got %d", loaded.Grid.FirstHour)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", loaded.UI.Theme)
	}
}
