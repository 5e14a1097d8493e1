// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths
	Root      string `json:"root,omitempty"`       // Project root holding personas/ and typst/
	Data      string `json:"data,omitempty"`       // Resume data file (JSON or YAML)
	OutputDir string `json:"output_dir,omitempty"` // Overrides personas/<persona>

	// Build selection
	Persona  string `json:"persona,omitempty"`
	Role     string `json:"role,omitempty"`
	Template string `json:"template,omitempty"`

	// Compiler
	TypstBinary    string `json:"typst_binary,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`

	// Quality checks
	CheckQuality  bool `json:"check_quality,omitempty"`
	RuntThreshold int  `json:"runt_threshold,omitempty"`

	// Behavior
	Concurrency int    `json:"concurrency,omitempty"`  // Parallel builds in build-all
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// Defaults returns the values used when neither the config file nor a flag
// sets a field.
func Defaults() Config {
	return Config{
		Root:           ".",
		Template:       rendering.DefaultTemplate,
		TypstBinary:    "typst",
		TimeoutSeconds: 60,
		RuntThreshold:  15,
		Concurrency:    2,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are left to CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Template != "" && !slices.Contains(rendering.AvailableTemplates, c.Template) {
		return fmt.Errorf("config error: unknown template %q", c.Template)
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.RuntThreshold < 0 {
		return fmt.Errorf("config error: 'runt_threshold' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Data != "" {
		if _, err := os.Stat(c.Data); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.Data)
		}
	}
	if c.Root != "" {
		if info, err := os.Stat(c.Root); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: root directory not found: %s", c.Root)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Root == "" {
		result.Root = defaults.Root
	}
	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Persona == "" {
		result.Persona = defaults.Persona
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.TypstBinary == "" {
		result.TypstBinary = defaults.TypstBinary
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.RuntThreshold == 0 {
		result.RuntThreshold = defaults.RuntThreshold
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields cannot distinguish unset from false; CLI flags decide them

	return result
}
