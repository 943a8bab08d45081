// Package config loads session configuration for the verification
// layer from a YAML file, with safe defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of a verification session.
type Config struct {
	CoreURL       string        `yaml:"core_url"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxConcurrent int           `yaml:"max_concurrent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CoreURL:       "http://localhost:8080",
		Timeout:       30 * time.Second,
		MaxConcurrent: 8,
	}
}

// Load reads a config file. An empty path or missing file yields the
// defaults; a present but unparseable file is an error. Unset fields
// fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if cfg.CoreURL == "" {
		cfg.CoreURL = Default().CoreURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Default().Timeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = Default().MaxConcurrent
	}
	return cfg, nil
}
