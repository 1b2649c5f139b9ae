// Package config handles the miobudget.yaml application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the data directory.
const FileName = "miobudget.yaml"

// Storage backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the top-level miobudget.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`        // file, sqlite or memory
	Path    string `yaml:"path,omitempty"` // sqlite database file, relative to the data dir
}

// DisplayConfig controls how amounts and dates are rendered.
type DisplayConfig struct {
	DateFormat     string `yaml:"date_format"` // Go reference layout
	CurrencySymbol string `yaml:"currency_symbol"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a miobudget.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with defaults for a new installation.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "miobudget.db",
		},
		Display: DisplayConfig{
			DateFormat:     "02/01/2006",
			CurrencySymbol: "€",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DataDir resolves the data directory: $MIOBUDGET_HOME when set, otherwise
// ~/.miobudget.
func DataDir() (string, error) {
	if dir := os.Getenv("MIOBUDGET_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".miobudget"), nil
}
