// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile string `json:"profile,omitempty"` // Path to a user profile JSON file

	// Limits
	TopN    int `json:"top_n,omitempty"`    // Number of recommendations to return
	MaxGaps int `json:"max_gaps,omitempty"` // Maximum skill gaps to report

	// Behavior
	Port    int   `json:"port,omitempty"`    // HTTP server port
	Seed    int64 `json:"seed,omitempty"`    // Seed for template selection (0 = random)
	Verbose bool  `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MaxGaps < 0 {
		return fmt.Errorf("config error: 'max_gaps' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MaxGaps == 0 {
		result.MaxGaps = defaults.MaxGaps
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
