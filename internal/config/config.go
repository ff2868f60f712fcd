// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied when neither the config file nor flags set them.
const (
	DefaultPort        = 8080
	DefaultMaxUploadMB = 5
)

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port        int `json:"port,omitempty"`          // HTTP listen port
	MaxUploadMB int `json:"max_upload_mb,omitempty"` // Upload size cap in megabytes

	// Behavior
	Verbose bool   `json:"verbose,omitempty"` // Print formatted breakdown instead of JSON
	Output  string `json:"output,omitempty"`  // CLI output mode: "json" or "pretty"
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
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.Output != "" && c.Output != "json" && c.Output != "pretty" {
		return fmt.Errorf("config error: 'output' must be \"json\" or \"pretty\"")
	}
	return nil
}

// WithDefaults returns a copy of the config with zero values replaced by
// defaults.
func (c *Config) WithDefaults() Config {
	result := *c
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = DefaultMaxUploadMB
	}
	if result.Output == "" {
		result.Output = "json"
	}
	return result
}
