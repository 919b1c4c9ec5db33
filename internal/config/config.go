// Package config loads the CLI's optional YAML configuration file. Flags
// always win when both a flag and a config value are set; config.Load
// returns all-defaults when no path is given, so "no config file" is a
// first-class, fully supported case rather than an error path.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LogConfig configures internal/obslog.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Config is the CLI's layered configuration.
type Config struct {
	Trials  int       `yaml:"trials"`
	Workers int       `yaml:"workers"`
	Log     LogConfig `yaml:"log"`
}

func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}

// Load reads and parses the YAML file at path. An empty path returns the
// all-defaults Config without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
