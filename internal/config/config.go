// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`          // "mocha", "macchiato", "frappe", "latte", "light"
	MonthsPerRow int    `toml:"months_per_row"` // months per grid row (shrinks to fit the terminal)
	YearOptions  int    `toml:"year_options"`   // how many years back the year switcher offers
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Format string `toml:"format"` // "text", "json", "ics"
	Color  bool   `toml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	DebugFile string `toml:"debug_file"` // written only with --debug
	Level     string `toml:"level"`      // "debug" adds classifier traces, "info" UI events, "warn"/"error" errors only
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "mocha",
			MonthsPerRow: 5,
			YearOptions:  10,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Log: LogConfig{
			DebugFile: "rangepick-debug.log",
			Level:     "debug",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rangepick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Log.DebugFile = expandPath(cfg.Log.DebugFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
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
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("RANGEPICK_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("RANGEPICK_MONTHS_PER_ROW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RANGEPICK_MONTHS_PER_ROW: %w", err)
		}
		cfg.UI.MonthsPerRow = n
	}
	if v := os.Getenv("RANGEPICK_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("RANGEPICK_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("RANGEPICK_COLOR: %w", err)
		}
		cfg.Output.Color = b
	}
	// NO_COLOR convention: any value disables color.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Output.Color = false
	}
	if v := os.Getenv("RANGEPICK_DEBUG_FILE"); v != "" {
		cfg.Log.DebugFile = v
	}
	if v := os.Getenv("RANGEPICK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
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

var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"ics":  true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.MonthsPerRow < 1 || c.UI.MonthsPerRow > 12 {
		return fmt.Errorf("months_per_row must be between 1 and 12, got %d", c.UI.MonthsPerRow)
	}
	if c.UI.YearOptions < 1 {
		return fmt.Errorf("year_options must be at least 1, got %d", c.UI.YearOptions)
	}
	if !validFormats[strings.ToLower(c.Output.Format)] {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.DebugFile == "" {
		return errors.New("debug_file must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
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
