package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"input": "data/train.csv",
		"json_out": "out/report.json",
		"chart_out": "out/rates.png",
		"verbose": true,
		"log_level": "debug"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/train.csv", cfg.Input)
	assert.Equal(t, "out/report.json", cfg.JSONOut)
	assert.Equal(t, "out/rates.png", cfg.ChartOut)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "input: data/train.csv\nchart_out: rates.svg\nverbose: true\n")

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "data/train.csv", cfg.Input)
			assert.Equal(t, "rates.svg", cfg.ChartOut)
			assert.True(t, cfg.Verbose)
		})
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "input: [unterminated\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestConfig_Validate(t *testing.T) {
	input := writeFile(t, "train.csv", "PassengerId\n")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "all fields", cfg: Config{Input: input, JSONOut: "r.json", ChartOut: "c.PNG", LogLevel: "warn"}},
		{name: "missing input", cfg: Config{Input: "/nonexistent/train.csv"}, wantErr: "input file not found"},
		{name: "bad log level", cfg: Config{LogLevel: "trace"}, wantErr: "LogLevel"},
		{name: "json_out extension", cfg: Config{JSONOut: "report.txt"}, wantErr: "'json_out' must end in .json"},
		{name: "chart_out extension", cfg: Config{ChartOut: "rates.gif"}, wantErr: "'chart_out' must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Input: "mine.csv", Verbose: true}
	defaults := Config{Input: DefaultInput, JSONOut: "default.json", LogLevel: "info"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.csv", merged.Input)
	assert.Equal(t, "default.json", merged.JSONOut)
	assert.Equal(t, "", merged.ChartOut)
	assert.Equal(t, "info", merged.LogLevel)
	assert.True(t, merged.Verbose)
	assert.Equal(t, "", cfg.JSONOut, "original config is not modified")
}

func TestConfig_ResolveInput(t *testing.T) {
	t.Run("explicit input wins", func(t *testing.T) {
		t.Setenv(InputEnvVar, "env.csv")
		cfg := Config{Input: "flag.csv"}
		cfg.ResolveInput()
		assert.Equal(t, "flag.csv", cfg.Input)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(InputEnvVar, "env.csv")
		cfg := Config{}
		cfg.ResolveInput()
		assert.Equal(t, "env.csv", cfg.Input)
	})

	t.Run("default fallback", func(t *testing.T) {
		t.Setenv(InputEnvVar, "")
		cfg := Config{}
		cfg.ResolveInput()
		assert.Equal(t, DefaultInput, cfg.Input)
	})
}
