package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.UI.MonthsPerRow != 5 {
		t.Errorf("expected 5 months per row, got %d", cfg.UI.MonthsPerRow)
	}
	if cfg.UI.YearOptions != 10 {
		t.Errorf("expected 10 year options, got %d", cfg.UI.YearOptions)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected format text, got %s", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("expected color enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.MonthsPerRow != 5 {
		t.Errorf("expected default months_per_row, got %d", cfg.UI.MonthsPerRow)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"
months_per_row = 4
year_options = 3

[output]
format = "json"
color = false

[log]
debug_file = "/tmp/rp.log"
level = "info"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.UI.MonthsPerRow != 4 {
		t.Errorf("expected months_per_row 4, got %d", cfg.UI.MonthsPerRow)
	}
	if cfg.UI.YearOptions != 3 {
		t.Errorf("expected year_options 3, got %d", cfg.UI.YearOptions)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("expected color disabled")
	}
	if cfg.Log.DebugFile != "/tmp/rp.log" {
		t.Errorf("expected debug_file /tmp/rp.log, got %s", cfg.Log.DebugFile)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[ui]\ntheme = \"frappe\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.UI.MonthsPerRow != 5 {
		t.Errorf("expected default months_per_row 5, got %d", cfg.UI.MonthsPerRow)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"
months_per_row = 4
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("RANGEPICK_THEME", "macchiato")
	t.Setenv("RANGEPICK_FORMAT", "ics")
	t.Setenv("RANGEPICK_COLOR", "false")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato from env, got %s", cfg.UI.Theme)
	}
	// File value should be kept when no env override
	if cfg.UI.MonthsPerRow != 4 {
		t.Errorf("expected months_per_row 4 from file, got %d", cfg.UI.MonthsPerRow)
	}
	// Env should override default
	if cfg.Output.Format != "ics" {
		t.Errorf("expected format ics from env, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("expected color disabled from env")
	}
}

func TestLoadFrom_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Color {
		t.Error("expected NO_COLOR to disable color")
	}
}

func TestLoadFrom_BadEnvValue(t *testing.T) {
	t.Setenv("RANGEPICK_MONTHS_PER_ROW", "many")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric months per row")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[ui\ntheme = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero months per row", func(c *Config) { c.UI.MonthsPerRow = 0 }, true},
		{"thirteen months per row", func(c *Config) { c.UI.MonthsPerRow = 13 }, true},
		{"zero year options", func(c *Config) { c.UI.YearOptions = 0 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "csv" }, true},
		{"uppercase format", func(c *Config) { c.Output.Format = "JSON" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"empty debug file", func(c *Config) { c.Log.DebugFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	cfg.UI.MonthsPerRow = 3

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error loading saved config: %v", err)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", loaded.UI.Theme)
	}
	if loaded.UI.MonthsPerRow != 3 {
		t.Errorf("expected months_per_row 3, got %d", loaded.UI.MonthsPerRow)
	}
}
