package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the tracker config file written by `expenses init`.
const FileName = "expenses.yaml"

// Config represents the top-level expenses.yaml configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Display  DisplayConfig  `yaml:"display"`
	AuditLog AuditLogConfig `yaml:"audit_log"`
	Git      GitConfig      `yaml:"git"`
}

// StorageConfig locates the durable expense table.
type StorageConfig struct {
	File string `yaml:"file"`
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// AuditLogConfig controls the mutation audit trail.
type AuditLogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an expenses.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new tracker.
func Default(storageFile string) *Config {
	return &Config{
		Storage: StorageConfig{
			File: storageFile,
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
		AuditLog: AuditLogConfig{
			Enabled: true,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Expenses Tracker",
			AuthorEmail: "expenses@localhost",
		},
	}
}
