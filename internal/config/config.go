package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath is where the configuration file is looked up when no path is given
const DefaultPath = "./koopa.toml"

// Config represents the application configuration
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Export  ExportConfig  `toml:"export"`
	Server  ServerConfig  `toml:"server"`
	Reader  ReaderConfig  `toml:"reader"`
	Logging LoggingConfig `toml:"logging"`
}

// CatalogConfig contains the builder's source and artifact locations
type CatalogConfig struct {
	SourcePath string `toml:"source_path"`
	OutputPath string `toml:"output_path"`
	Sheet      string `toml:"sheet"`
}

// ExportConfig contains the dashboard SQLite export settings
type ExportConfig struct {
	Enabled    bool   `toml:"enabled"`
	SQLitePath string `toml:"sqlite_path"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `toml:"port"`
	Host         string `toml:"host"`
	PublicDir    string `toml:"public_dir"`
	EnableCORS   bool   `toml:"enable_cors"`
	ReadTimeout  int    `toml:"read_timeout_seconds"`
	WatchCatalog bool   `toml:"watch_catalog"`
}

// ReaderConfig contains settings for the terminal catalog reader
type ReaderConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout_seconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level          string `toml:"level"`
	Format         string `toml:"format"`
	File           string `toml:"file"`
	RequestLogging bool   `toml:"request_logging"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			SourcePath: "./public/data/video_game_music_canon_CLEAN.xlsx",
			OutputPath: "./public/data/video_game_music_canon.json",
			Sheet:      "",
		},
		Export: ExportConfig{
			Enabled:    false,
			SQLitePath: "./public/data/koopa.db",
		},
		Server: ServerConfig{
			Port:         "8080",
			Host:         "0.0.0.0",
			PublicDir:    "./public",
			EnableCORS:   false,
			ReadTimeout:  30,
			WatchCatalog: true,
		},
		Reader: ReaderConfig{
			URL:     "",
			Timeout: 10,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "text",
			File:           "",
			RequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a TOML file, then applies environment
// overrides (including any set in a local .env file).
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Config file doesn't exist, create it with defaults
		if err := cfg.SaveToFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config file: %w", err)
		}
	} else if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A missing .env is fine
	_ = godotenv.Load(".env")
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from KOOPA_* environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("KOOPA_SOURCE"); ok && v != "" {
		c.Catalog.SourcePath = v
	}
	if v, ok := lookup("KOOPA_OUTPUT"); ok && v != "" {
		c.Catalog.OutputPath = v
	}
	if v, ok := lookup("KOOPA_PORT"); ok && v != "" {
		c.Server.Port = v
	}
	if v, ok := lookup("KOOPA_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
}

// SaveToFile saves the configuration to a TOML file
func (c *Config) SaveToFile(configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	header := `# Koopa Catalog Configuration
# "koopa build" converts the source spreadsheet into the JSON catalog,
# "koopa serve" serves the site around it.

`
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Catalog.SourcePath == "" {
		return fmt.Errorf("catalog source path cannot be empty")
	}
	if c.Catalog.OutputPath == "" {
		return fmt.Errorf("catalog output path cannot be empty")
	}

	if c.Export.Enabled && c.Export.SQLitePath == "" {
		return fmt.Errorf("export sqlite path cannot be empty when export is enabled")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("server read timeout must be positive")
	}
	if c.Server.PublicDir == "" {
		return fmt.Errorf("server public directory cannot be empty")
	}

	if c.Reader.Timeout < 0 {
		return fmt.Errorf("reader timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	return nil
}

// GetAddress returns the full server address
func (c *Config) GetAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
