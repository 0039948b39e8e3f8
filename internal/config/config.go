// Package config handles launchdash configuration from an optional YAML file
// with environment-variable overrides. With no file and no environment the
// defaults serve the bundled dataset on the standard dashboard port.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level launchdash configuration.
type Config struct {
	Addr          string `yaml:"addr"`           // listen address, default ":8050"
	DatasetPath   string `yaml:"dataset_path"`   // launch-record CSV
	EventsDB      string `yaml:"events_db"`      // render-event SQLite database
	LogLevel      string `yaml:"log_level"`      // debug | info | warn | error
	RetentionDays int    `yaml:"retention_days"` // render-event retention, default 30; negative disables cleanup
}

// Load reads configuration: YAML file at path if path is non-empty, then
// environment overrides (PORT, DATASET, EVENTS_DB, LOG_LEVEL), then defaults.
// A missing file at an explicitly given path is an error; an empty path
// means "no file".
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	if v := os.Getenv("DATASET"); v != "" {
		c.DatasetPath = v
	}
	if v := os.Getenv("EVENTS_DB"); v != "" {
		c.EventsDB = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RetentionDays = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8050"
	}
	if c.DatasetPath == "" {
		c.DatasetPath = "data/spacex_launch_dash.csv"
	}
	if c.EventsDB == "" {
		c.EventsDB = "db/events.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RetentionDays == 0 {
		c.RetentionDays = 30
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return errors.New("config: log_level must be debug, info, warn or error")
}

// SlogLevel maps LogLevel to its slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
