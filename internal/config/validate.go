package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Poller.Interval < 0 {
		return errors.New("poller.interval must be >= 0")
	}
	if c.Poller.TaskTimeout < 0 {
		return errors.New("poller.task_timeout must be >= 0")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Logs.Dir == "" {
		return errors.New("logs.dir is required")
	}
	if c.Logs.MaxSizeMB < 1 {
		return errors.New("logs.max_size_mb must be >= 1")
	}
	if c.Logs.MaxBackups < 0 {
		return errors.New("logs.max_backups must be >= 0")
	}

	if err := c.Sources.validate(); err != nil {
		return err
	}

	if c.Database.Enabled {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (s *SourcesConfig) validate() error {
	seen := make(map[string]bool, len(s.Enabled))
	for _, name := range s.Enabled {
		if !slices.Contains(SourceNames, name) {
			return fmt.Errorf("sources.enabled: unknown source %q", name)
		}
		if seen[name] {
			return fmt.Errorf("sources.enabled: duplicate source %q", name)
		}
		seen[name] = true
	}

	if s.UniswapX.Limit < 1 {
		return errors.New("sources.uniswapx.limit must be >= 1")
	}
	if s.Velora.Limit < 1 {
		return errors.New("sources.velora.limit must be >= 1")
	}
	if s.OneInch.Limit < 1 {
		return errors.New("sources.oneinch.limit must be >= 1")
	}
	if s.UniswapX.Timeout < 0 || s.Velora.Timeout < 0 || s.OneInch.Timeout < 0 {
		return errors.New("sources timeout must be >= 0")
	}
	return nil
}

func (db *DatabaseConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
