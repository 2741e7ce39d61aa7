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
	OutputDir   string `json:"output_dir,omitempty"`   // Directory for generated HTML files
	SnapshotDir string `json:"snapshot_dir,omitempty"` // Directory for PNG captures

	// Selection
	Chart string `json:"chart,omitempty"` // Chart name to generate, or "all"

	// Behavior
	Open     bool `json:"open,omitempty"`     // Open generated files in the browser
	Parallel bool `json:"parallel,omitempty"` // Render charts concurrently
	Verbose  bool `json:"verbose,omitempty"`  // Print detailed debug information

	// Layout
	LayoutSeed uint64 `json:"layout_seed,omitempty"` // Network layout seed; 0 means the default
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
// Chart-name validation happens after merging, where the selector is resolved.
func (c *Config) Validate() error {
	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'output_dir' exists and is not a directory: %s", c.OutputDir)
		}
	}
	if c.SnapshotDir != "" {
		if info, err := os.Stat(c.SnapshotDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'snapshot_dir' exists and is not a directory: %s", c.SnapshotDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.SnapshotDir == "" {
		result.SnapshotDir = defaults.SnapshotDir
	}
	if result.Chart == "" {
		result.Chart = defaults.Chart
	}

	// Numeric fields: use default if zero
	if result.LayoutSeed == 0 {
		result.LayoutSeed = defaults.LayoutSeed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
