// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/lead-validator/internal/validation"
)

// EnvConfigPath names the environment variable consulted when --config is not given.
const EnvConfigPath = "LEAD_VALIDATOR_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty" yaml:"input,omitempty"`   // Path to CSV or XLSX leads file
	Output string `json:"output,omitempty" yaml:"output,omitempty"` // Path to XLSX or CSV results file
	Report string `json:"report,omitempty" yaml:"report,omitempty"` // Path to JSON run report

	// Processing
	Workers   int `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0"`       // Concurrent rule evaluations
	BatchSize int `json:"batch_size,omitempty" yaml:"batch_size,omitempty" validate:"gte=0"` // Rows read per batch

	// Behavior
	Verbose   bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                               // Print detailed debug information
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=console json"` // console or json

	// Rules
	Title *validation.TitleThresholds `json:"title,omitempty" yaml:"title,omitempty"`
}

var validate = validator.New()

// Defaults returns the configuration used when neither file nor flags set a value.
func Defaults() Config {
	title := validation.DefaultTitleThresholds()
	return Config{
		Output:    "output.xlsx",
		Workers:   runtime.NumCPU(),
		BatchSize: 256,
		LogFormat: "console",
		Title:     &title,
	}
}

// ResolvePath returns the flag value if set, otherwise the LEAD_VALIDATOR_CONFIG value.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// LoadConfig loads configuration from a JSON (.json) or YAML (.yaml, .yml) file.
// Title thresholds absent from the file keep their default values.
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

	title := validation.DefaultTitleThresholds()
	cfg := Config{Title: &title}

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
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Input != "" && c.Output != "" && filepath.Clean(c.Input) == filepath.Clean(c.Output) {
		return fmt.Errorf("config error: 'input' and 'output' must be different files")
	}

	if c.Input != "" {
		if ext := strings.ToLower(filepath.Ext(c.Input)); ext != ".csv" && ext != ".xlsx" {
			return fmt.Errorf("config error: unsupported input extension %q", ext)
		}
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	if c.Output != "" {
		if ext := strings.ToLower(filepath.Ext(c.Output)); ext != ".xlsx" && ext != ".csv" {
			return fmt.Errorf("config error: unsupported output extension %q", ext)
		}
	}

	if c.Report != "" && strings.ToLower(filepath.Ext(c.Report)) != ".json" {
		return fmt.Errorf("config error: 'report' must be a .json file")
	}

	if c.Title != nil {
		if err := c.Title.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}

	if result.Title == nil && defaults.Title != nil {
		title := *defaults.Title
		result.Title = &title
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
