// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPublicDir is the site's public assets root, relative to the working directory.
const DefaultPublicDir = "public"

// Environment variables read by FromEnv.
const (
	EnvPublicDir = "PLACEHOLDERS_PUBLIC_DIR"
	EnvManifest  = "PLACEHOLDERS_MANIFEST"
	EnvVerbose   = "PLACEHOLDERS_VERBOSE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	PublicDir string `json:"public_dir,omitempty"` // Public assets root; images go to <public_dir>/images
	Manifest  string `json:"manifest,omitempty"`   // Optional manifest file replacing the built-in catalog
	Verbose   bool   `json:"verbose,omitempty"`    // Debug logging and a run summary
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

// FromEnv builds a Config from environment variables.
// An unparsable PLACEHOLDERS_VERBOSE is treated as false.
func FromEnv() Config {
	verbose, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return Config{
		PublicDir: os.Getenv(EnvPublicDir),
		Manifest:  os.Getenv(EnvManifest),
		Verbose:   verbose,
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.PublicDir == "" {
		return fmt.Errorf("config error: 'public_dir' must not be empty")
	}

	if c.Manifest != "" {
		if _, err := os.Stat(c.Manifest); os.IsNotExist(err) {
			return fmt.Errorf("config error: manifest file not found: %s", c.Manifest)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Used to layer config file over env over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.PublicDir == "" {
		result.PublicDir = defaults.PublicDir
	}
	if result.Manifest == "" {
		result.Manifest = defaults.Manifest
	}

	// Bool fields: cannot distinguish unset from false, so either source enables it
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ImagesRoot returns the directory holding the per-category image directories.
func (c *Config) ImagesRoot() string {
	return filepath.Join(c.PublicDir, "images")
}
