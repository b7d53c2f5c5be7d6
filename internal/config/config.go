// Package config loads the dealtable YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dealtable/internal/datatable"
	"dealtable/internal/schema"

	"gopkg.in/yaml.v3"
)

const (
	// PathEnv overrides the config file location (for testing).
	PathEnv = "DEALTABLE_CONFIG"
	// DefaultFile is the config path relative to the user config dir.
	DefaultFile = "dealtable/config.yaml"
)

// Filter holds the filter settings.
type Filter struct {
	CaseSensitive bool     `yaml:"case_sensitive,omitempty"`
	Columns       []string `yaml:"columns,omitempty"`
	Match         string   `yaml:"match,omitempty"`
}

// Config is the on-disk configuration.
type Config struct {
	// Data is a JSON or YAML row file; empty means the built-in deals.
	Data    string          `yaml:"data,omitempty"`
	Filter  Filter          `yaml:"filter,omitempty"`
	Columns []schema.Column `yaml:"columns,omitempty"`
}

// Path returns the config file path: $DEALTABLE_CONFIG if set, otherwise
// DefaultFile under the user config dir.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultFile), nil
}

// Load reads the config at path. A missing file yields the zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		cfg = &Config{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FilterOptions converts the filter settings to datatable options.
func (c *Config) FilterOptions() (datatable.FilterOptions, error) {
	mode, err := datatable.ParseMatchMode(c.Filter.Match)
	if err != nil {
		return datatable.FilterOptions{}, fmt.Errorf("filter: %w", err)
	}
	return datatable.FilterOptions{
		CaseSensitive: c.Filter.CaseSensitive,
		Columns:       c.Filter.Columns,
		Match:         mode,
	}, nil
}

// Schema returns the configured columns, or the deal schema when none are set.
func (c *Config) Schema() (schema.Schema, error) {
	if len(c.Columns) == 0 {
		return schema.DealColumns(), nil
	}
	s := make(schema.Schema, len(c.Columns))
	for i, col := range c.Columns {
		t, err := schema.ParseType(string(col.Type))
		if err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
		col.Type = t
		s[i] = col
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	return s, nil
}
