package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Ticker string `yaml:"ticker"`
	Output struct {
		Chart string `yaml:"chart"`
		CSV   string `yaml:"csv"`
	} `yaml:"output"`
	Chart struct {
		Theme string `yaml:"theme"`
	} `yaml:"chart"`
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo" or "stooq"
	} `yaml:"data_source"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty means single run
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GOLDTRACK_TICKER"); v != "" {
		cfg.Ticker = v
	}
	if v := os.Getenv("GOLDTRACK_SOURCE"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Ticker == "" {
		cfg.Ticker = "GC=F"
	}
	if cfg.Output.Chart == "" {
		cfg.Output.Chart = "gold_semester.png"
	}
	if cfg.Output.CSV == "" {
		cfg.Output.CSV = "gold_semester.csv"
	}
	if cfg.Chart.Theme == "" {
		cfg.Chart.Theme = "dark"
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}

	return cfg, nil
}

// Validate checks that all set fields are usable.
func (c *Config) Validate() error {
	if c.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	switch c.DataSource.Provider {
	case "yahoo", "stooq":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or stooq, got %q", c.DataSource.Provider)
	}
	return nil
}
