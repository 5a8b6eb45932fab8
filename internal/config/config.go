package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config holds run-wide settings. Values come from an optional
// bankmerge.yaml, overridden by BANKMERGE_* environment variables;
// command-line flags win over both.
type Config struct {
	Output    string `yaml:"output" env:"BANKMERGE_OUTPUT"`
	Strict    bool   `yaml:"strict" env:"BANKMERGE_STRICT"`
	LogLevel  string `yaml:"log_level" env:"BANKMERGE_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"BANKMERGE_LOG_FORMAT"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load builds a Config from defaults, an optional YAML file, and
// environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return cfg, nil
}
