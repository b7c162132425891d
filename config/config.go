// Package config provides configuration loading and management for xea2rdf.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete xea2rdf configuration
type Config struct {
	// Input is the EA repository (SQLite) to convert
	Input string `yaml:"input"`
	// Output is the Turtle file to write ("-" for standard output)
	Output  string        `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`
	// Format is text or json (default: text)
	Format string `yaml:"format"`
}

// MetricsConfig configures the metrics textfile
type MetricsConfig struct {
	// File receives prometheus metrics after each run (empty = disabled)
	File string `yaml:"file"`
}

// StdoutPath selects standard output as the conversion target.
const StdoutPath = "-"

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid. Input and output may be
// empty; the command prints its usage in that case.
func (c *Config) Validate() error {
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s", strings.Join(validFormats, ", "))
	}
	if c.Input != "" && c.Input == c.Output {
		return fmt.Errorf("input and output must differ")
	}
	return nil
}

// Ready reports whether both input and output are set.
func (c *Config) Ready() bool {
	return c.Input != "" && c.Output != ""
}

// LoadFromFile loads one configuration layer from a YAML file. ${VAR} and
// ${VAR:-default} references are expanded before parsing. Keys missing from
// the file stay zero so the layer can be merged over others; merge it onto
// DefaultConfig() for a standalone config.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal([]byte(ExpandEnvWithDefaults(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Output != "" {
		c.Output = other.Output
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	// Metrics
	if other.Metrics.File != "" {
		c.Metrics.File = other.Metrics.File
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
