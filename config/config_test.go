package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected default log format text, got %s", cfg.Log.Format)
	}
	if cfg.Ready() {
		t.Error("expected default config without input/output")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "upper case level",
			modify:  func(c *Config) { c.Log.Level = "DEBUG" },
			wantErr: false,
		},
		{
			name:    "unknown level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name: "input equals output",
			modify: func(c *Config) {
				c.Input = "model.qea"
				c.Output = "model.qea"
			},
			wantErr: true,
		},
		{
			name:    "missing output is allowed",
			modify:  func(c *Config) { c.Input = "model.qea" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
input: "/models/project.qea"
output: "/out/project.ttl"
log:
  level: debug
metrics:
  file: "/var/lib/node_exporter/xea2rdf.prom"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/models/project.qea", cfg.Input)
	assert.Equal(t, "/out/project.ttl", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys stay zero so they don't override lower layers
	assert.Empty(t, cfg.Log.Format)
	assert.Equal(t, "/var/lib/node_exporter/xea2rdf.prom", cfg.Metrics.File)
	assert.True(t, cfg.Ready())
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("XEA2RDF_TEST_MODELS", "/srv/models")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "input: ${XEA2RDF_TEST_MODELS}/a.qea\noutput: ${XEA2RDF_TEST_OUT:-/tmp/a.ttl}\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/models/a.qea", cfg.Input)
	assert.Equal(t, "/tmp/a.ttl", cfg.Output)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log: [unterminated"), 0644))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Input: "/override/model.qea",
		Log: LogConfig{
			Level: "warn",
		},
	}

	base.Merge(override)

	assert.Equal(t, "/override/model.qea", base.Input)
	assert.Equal(t, "warn", base.Log.Level)
	// Format should remain from base since override didn't set it
	assert.Equal(t, "text", base.Log.Format)
	assert.Empty(t, base.Output)

	base.Merge(nil)
	assert.Equal(t, "warn", base.Log.Level)
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output = "saved.ttl"

	require.NoError(t, cfg.SaveToFile(configPath))

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "saved.ttl", loaded.Output)
}

func TestExpandEnvWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		env      map[string]string
		expected string
	}{
		{
			name:     "default used when var unset",
			input:    `${XEA_DIR:-/models}/a.qea`,
			expected: `/models/a.qea`,
		},
		{
			name:     "env value used when set",
			input:    `${XEA_DIR:-/models}/a.qea`,
			env:      map[string]string{"XEA_DIR": "/data"},
			expected: `/data/a.qea`,
		},
		{
			name:     "empty default",
			input:    `prefix${XEA_OPTIONAL:-}suffix`,
			expected: `prefixsuffix`,
		},
		{
			name:     "simple var without default",
			input:    `${XEA_SIMPLE}`,
			env:      map[string]string{"XEA_SIMPLE": "value"},
			expected: `value`,
		},
		{
			name:     "bare dollar var",
			input:    `$XEA_SIMPLE/x`,
			env:      map[string]string{"XEA_SIMPLE": "v"},
			expected: `v/x`,
		},
		{
			name:     "simple var unset without default",
			input:    `${XEA_SIMPLE}`,
			expected: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []string{"XEA_DIR", "XEA_OPTIONAL", "XEA_SIMPLE"} {
				t.Setenv(v, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tt.expected, ExpandEnvWithDefaults(tt.input))
		})
	}
}
