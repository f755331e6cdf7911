// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultInput is the passenger file read when nothing else is configured.
const DefaultInput = "train.csv"

// InputEnvVar names the environment variable consulted when no input path is given.
const InputEnvVar = "TITANIC_INPUT"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Input    string `json:"input,omitempty" yaml:"input,omitempty"`         // Path to the passenger CSV file
	JSONOut  string `json:"json_out,omitempty" yaml:"json_out,omitempty"`   // Path to write the JSON report
	ChartOut string `json:"chart_out,omitempty" yaml:"chart_out,omitempty"` // Path to write the survival-rate chart
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`     // Print the dataset profile and debug logs
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// after merging with flags and defaults.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	if c.JSONOut != "" && !strings.EqualFold(filepath.Ext(c.JSONOut), ".json") {
		return fmt.Errorf("config error: 'json_out' must end in .json: %s", c.JSONOut)
	}

	if c.ChartOut != "" {
		switch strings.ToLower(filepath.Ext(c.ChartOut)) {
		case ".png", ".svg", ".pdf":
		default:
			return fmt.Errorf("config error: 'chart_out' must be a .png, .svg or .pdf file: %s", c.ChartOut)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.JSONOut == "" {
		result.JSONOut = defaults.JSONOut
	}
	if result.ChartOut == "" {
		result.ChartOut = defaults.ChartOut
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveInput fills an empty Input from the environment, then from DefaultInput.
func (c *Config) ResolveInput() {
	if c.Input == "" {
		c.Input = os.Getenv(InputEnvVar)
	}
	if c.Input == "" {
		c.Input = DefaultInput
	}
}
