// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Portal  PortalConfig  `toml:"portal"`
	Grid    GridConfig    `toml:"grid"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PortalConfig holds settings for the scheduling portal.
type PortalConfig struct {
	BaseURL        string `toml:"base_url"`
	Cycle          string `toml:"cycle"`           // school cycle, e.g. "20262"
	TimeoutSeconds int    `toml:"timeout_seconds"` // HTTP timeout per request
	CacheTTLHours  int    `toml:"cache_ttl_hours"` // 0 disables the response cache
}

// GridConfig holds the displayable hour range.
type GridConfig struct {
	FirstHour int `toml:"first_hour"`
	LastHour  int `toml:"last_hour"`
}

// StorageConfig holds database and cache locations.
type StorageConfig struct {
	DBPath   string `toml:"db_path"`
	CacheDir string `toml:"cache_dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme      string `toml:"theme"`      // "pastel", "dark"
	Collection string `toml:"collection"` // default collection name
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Portal: PortalConfig{
			BaseURL:        "https://escolares.arq.unam.mx:8086/horario/arquitectura/plan17",
			Cycle:          "20262",
			TimeoutSeconds: 15,
			CacheTTLHours:  12,
		},
		Grid: GridConfig{
			FirstHour: 7,
			LastHour:  21,
		},
		Storage: StorageConfig{
			DBPath:   defaultDataPath("horario.db"),
			CacheDir: defaultDataPath("cache"),
		},
		UI: UIConfig{
			Theme:      "pastel",
			Collection: "default",
		},
	}
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".local", "share", "horario", name)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "horario", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Storage.CacheDir = expandPath(cfg.Storage.CacheDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HORARIO_BASE_URL"); v != "" {
		cfg.Portal.BaseURL = v
	}
	if v := os.Getenv("HORARIO_CYCLE"); v != "" {
		cfg.Portal.Cycle = v
	}
	if v := envInt("HORARIO_TIMEOUT_SECONDS"); v != nil {
		cfg.Portal.TimeoutSeconds = *v
	}
	if v := envInt("HORARIO_CACHE_TTL_HOURS"); v != nil {
		cfg.Portal.CacheTTLHours = *v
	}
	if v := envInt("HORARIO_FIRST_HOUR"); v != nil {
		cfg.Grid.FirstHour = *v
	}
	if v := envInt("HORARIO_LAST_HOUR"); v != nil {
		cfg.Grid.LastHour = *v
	}
	if v := os.Getenv("HORARIO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("HORARIO_CACHE_DIR"); v != "" {
		cfg.Storage.CacheDir = v
	}
	if v := os.Getenv("HORARIO_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("HORARIO_COLLECTION"); v != "" {
		cfg.UI.Collection = v
	}
}

// envInt returns the integer value of an env var, or nil if unset or malformed.
func envInt(key string) *int {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Portal.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	if !strings.HasPrefix(c.Portal.BaseURL, "http://") && !strings.HasPrefix(c.Portal.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.Portal.BaseURL)
	}
	if c.Portal.Cycle == "" || !isDigits(c.Portal.Cycle) {
		return fmt.Errorf("cycle must be numeric, got %q", c.Portal.Cycle)
	}
	if c.Portal.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds must be positive")
	}
	if c.Portal.CacheTTLHours < 0 {
		return errors.New("cache_ttl_hours cannot be negative")
	}
	if c.Grid.FirstHour < 0 || c.Grid.LastHour > 23 {
		return errors.New("grid hours must be between 0 and 23")
	}
	if c.Grid.FirstHour > c.Grid.LastHour {
		return errors.New("first_hour must not be after last_hour")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if strings.TrimSpace(c.UI.Collection) == "" {
		return errors.New("collection must be set")
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Timeout returns the portal request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Portal.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long portal responses are reused. Zero disables caching.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Portal.CacheTTLHours) * time.Hour
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
