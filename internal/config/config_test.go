package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "koopa.toml")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Expected default config file to be written: %v", err)
	}
	if cfg.Catalog.OutputPath == "" {
		t.Error("Expected default output path")
	}

	// Reloading the written file must round-trip
	again, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig on written defaults failed: %v", err)
	}
	if again.Catalog != cfg.Catalog || again.Server != cfg.Server {
		t.Errorf("Reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "koopa.toml")
	content := `
[catalog]
source_path = "data/canon.csv"
output_path = "site/canon.json"

[export]
enabled = true
sqlite_path = "site/canon.db"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Catalog.SourcePath != "data/canon.csv" {
		t.Errorf("Expected source path from file, got %s", cfg.Catalog.SourcePath)
	}
	if !cfg.Export.Enabled || cfg.Export.SQLitePath != "site/canon.db" {
		t.Errorf("Expected export settings from file, got %+v", cfg.Export)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json log format, got %s", cfg.Logging.Format)
	}
	// Unset sections keep their defaults
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port, got %s", cfg.Server.Port)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[catalog\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadConfig(broken); err == nil {
		t.Error("Expected parse error")
	}

	badLevel := filepath.Join(dir, "level.toml")
	if err := os.WriteFile(badLevel, []byte("[logging]\nlevel = \"loud\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadConfig(badLevel)
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("Expected invalid log level error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "empty source", mutate: func(c *Config) { c.Catalog.SourcePath = "" }, wantErr: true},
		{name: "empty output", mutate: func(c *Config) { c.Catalog.OutputPath = "" }, wantErr: true},
		{name: "export without path", mutate: func(c *Config) {
			c.Export.Enabled = true
			c.Export.SQLitePath = ""
		}, wantErr: true},
		{name: "export disabled without path", mutate: func(c *Config) { c.Export.SQLitePath = "" }, wantErr: false},
		{name: "negative timeout", mutate: func(c *Config) { c.Server.ReadTimeout = -1 }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"KOOPA_SOURCE":    "other.xlsx",
		"KOOPA_PORT":      "9999",
		"KOOPA_LOG_LEVEL": "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	cfg.ApplyEnv(lookup)

	if cfg.Catalog.SourcePath != "other.xlsx" {
		t.Errorf("Expected source override, got %s", cfg.Catalog.SourcePath)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port override, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected empty override to be ignored, got %s", cfg.Logging.Level)
	}
	if cfg.GetAddress() != "0.0.0.0:9999" {
		t.Errorf("Unexpected address %s", cfg.GetAddress())
	}
}
