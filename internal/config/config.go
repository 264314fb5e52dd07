package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tick cadence bounds in seconds. The countdown only needs minute
// resolution, so anything faster than 10s is wasted work.
const (
	MinTickSeconds     = 10
	MaxTickSeconds     = 60
	DefaultTickSeconds = 30
)

// Config holds all configuration options
type Config struct {
	Notifications bool   `yaml:"notifications"`
	TickSeconds   int    `yaml:"tick_seconds,omitempty"`
	DatabasePath  string `yaml:"database_path,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Notifications: true,
		TickSeconds:   DefaultTickSeconds,
	}
}

// configPath returns the path to the config file
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clockwise", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clockwise", "config.yaml")
}

// Load loads config from file, falling back to defaults
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	cfg.clamp()
	return cfg
}

func (c *Config) clamp() {
	if c.TickSeconds < MinTickSeconds {
		c.TickSeconds = MinTickSeconds
	}
	if c.TickSeconds > MaxTickSeconds {
		c.TickSeconds = MaxTickSeconds
	}
}
