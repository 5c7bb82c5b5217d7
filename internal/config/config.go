// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	BackendURL     string `json:"backend_url,omitempty"`     // Marketing backend base URL
	ClientFilter   string `json:"client_filter,omitempty"`   // Default client filter ("all" or a client ID)
	RequestTimeout int    `json:"request_timeout,omitempty"` // Per-request timeout in seconds
	Strict         bool   `json:"strict,omitempty"`          // Validate backend payloads against schemas
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
}

// DefaultRequestTimeout is the per-request timeout applied when none is configured.
const DefaultRequestTimeout = 30 * time.Second

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

// FromEnv fills fields from environment variables. BACKEND_URL wins over the
// config file so a .env can redirect a whole working directory.
func (c *Config) FromEnv() {
	if env := os.Getenv("BACKEND_URL"); env != "" {
		c.BackendURL = env
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BackendURL != "" {
		parsed, err := url.Parse(c.BackendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'backend_url' is not a valid URL: %s", c.BackendURL)
		}
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config error: 'request_timeout' must be non-negative")
	}
	return nil
}

// Timeout returns the configured per-request timeout.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout > 0 {
		return time.Duration(c.RequestTimeout) * time.Second
	}
	return DefaultRequestTimeout
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.ClientFilter == "" {
		result.ClientFilter = defaults.ClientFilter
	}
	if result.RequestTimeout == 0 {
		result.RequestTimeout = defaults.RequestTimeout
	}
	if !result.Strict {
		result.Strict = defaults.Strict
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
