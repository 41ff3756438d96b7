package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the scanner tool settings. Values read from a config file
// are overridden by flags given after --config.
type Config struct {
	Debug       bool   `yaml:"debug,omitempty"`
	SQL         bool   `yaml:"sql,omitempty"`
	Eval        bool   `yaml:"eval,omitempty"`
	ReadTimeout string `yaml:"read-timeout,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		ReadTimeout: "1s",
	}
}

// ParseConfig reads YAML settings from path on top of the current ones.
func (c *Config) ParseConfig(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	return nil
}

func (c Config) readTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.ReadTimeout)
	if err != nil {
		return 0, fmt.Errorf("bad read-timeout %q: %w", c.ReadTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("read-timeout must be positive, got %s", d)
	}
	return d, nil
}

// configValue parses the configuration file as soon as the flag is set.
type configValue struct {
	cfg  *Config
	path string
}

func (f *configValue) Set(s string) error {
	f.path = s
	return f.cfg.ParseConfig(f.path)
}

func (f *configValue) String() string {
	return f.path
}
