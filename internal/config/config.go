// Package config loads settings for the percolation command from YAML files
// and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config contains all command settings.
type Config struct {
	// Stats holds defaults for the Monte Carlo driver.
	Stats StatsConfig `yaml:"stats"`

	// Logging controls the console logger.
	Logging LoggingConfig `yaml:"logging"`
}

// StatsConfig holds defaults for `percolation stats`.
type StatsConfig struct {
	// Side is the grid side length n.
	Side int `yaml:"side"`

	// Trials is the number of independent experiments T.
	Trials int `yaml:"trials"`

	// Seed fixes the random source. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// LoggingConfig configures the console logger.
type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`

	// NoColor disables ANSI colors in log output.
	NoColor bool `yaml:"no_color"`
}

// Default returns a Config with the classic 200×200, 100-trial experiment.
func Default() *Config {
	return &Config{
		Stats: StatsConfig{
			Side:   200,
			Trials: 100,
			Seed:   0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			NoColor: false,
		},
	}
}

// Load builds the effective configuration.
// Order: defaults -> path (if non-empty) -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Stats.Side < 1 {
		return fmt.Errorf("stats.side must be at least 1, got %d", c.Stats.Side)
	}
	if c.Stats.Trials < 1 {
		return fmt.Errorf("stats.trials must be at least 1, got %d", c.Stats.Trials)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies PERCOLATION_* environment variables to cfg.
// Unparseable numbers are reported rather than ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PERCOLATION_SIDE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PERCOLATION_SIDE: %w", err)
		}
		cfg.Stats.Side = n
	}

	if v := os.Getenv("PERCOLATION_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PERCOLATION_TRIALS: %w", err)
		}
		cfg.Stats.Trials = n
	}

	if v := os.Getenv("PERCOLATION_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PERCOLATION_SEED: %w", err)
		}
		cfg.Stats.Seed = n
	}

	if v := os.Getenv("PERCOLATION_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Logging.NoColor = true
	}

	return nil
}
