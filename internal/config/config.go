package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file khata looks for in its working directory.
const FileName = "khata.yaml"

// Config represents the top-level khata.yaml configuration.
type Config struct {
	Database string        `yaml:"database"`
	Listen   ListenConfig  `yaml:"listen"`
	Auth     AuthConfig    `yaml:"auth"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// ListenConfig controls the HTTP API bind address.
type ListenConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port bind address.
func (l ListenConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// AuthConfig controls whether API calls require a session token.
type AuthConfig struct {
	Required bool `yaml:"required"`
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a khata.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Database: "khata.db",
		Listen: ListenConfig{
			Host: "127.0.0.1",
			Port: 8264,
		},
		Auth: AuthConfig{
			Required: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
