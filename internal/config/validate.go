package config

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	StateBackendSQLite = "sqlite"
	StateBackendRedis  = "redis"
	StateBackendMemory = "memory"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors.allowed_origins must list at least one origin")
	}

	return nil
}

// Validate checks the console configuration. LoadClient calls it automatically.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", c.PageSize)
	}
	if c.DebounceDelay < 0 || c.ErrorClearDelay <= 0 {
		return fmt.Errorf("debounce_delay must be >= 0 and error_clear_delay > 0")
	}

	switch c.State.Backend {
	case StateBackendSQLite:
		if c.State.SQLitePath == "" {
			return fmt.Errorf("state.sqlite_path is required for the sqlite backend")
		}
	case StateBackendRedis:
		if c.State.RedisAddr == "" {
			return fmt.Errorf("state.redis_addr is required for the redis backend")
		}
	case StateBackendMemory:
	default:
		return fmt.Errorf("state.backend must be one of sqlite, redis, memory (got %q)", c.State.Backend)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (a *APIConfig) validate() error {
	if a.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", a.MaxPageSize)
	}
	if a.DefaultPageSize <= 0 || a.DefaultPageSize > a.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", a.MaxPageSize, a.DefaultPageSize)
	}
	if a.WriteRatePerMin < 0 {
		return fmt.Errorf("write_rate_per_min must be >= 0 (got %d)", a.WriteRatePerMin)
	}
	if a.Prefix != "" && (!strings.HasPrefix(a.Prefix, "/") || strings.HasSuffix(a.Prefix, "/")) {
		return fmt.Errorf("prefix must start with / and not end with / (got %q)", a.Prefix)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
