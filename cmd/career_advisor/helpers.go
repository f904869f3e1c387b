package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/types"
)

// Defaults applied after merging flag and config file values.
const (
	defaultPort = 8080
	defaultTopN = 5
)

// loadProfile reads and validates a user profile JSON file.
func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &profile, nil
}

// loadConfigDefaults loads an optional config file and merges it under the
// given flag values. An empty path yields the flag values unchanged.
func loadConfigDefaults(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return flags, err
	}
	if err := fileCfg.Validate(); err != nil {
		return flags, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	// MergeWithDefaults skips bools, so a config-file verbose still applies
	// unless the flag already turned it on.
	merged.Verbose = flags.Verbose || fileCfg.Verbose
	return merged, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
