// Package config reads the database and logging settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDatabaseURL  = "DATABASE_URL"
	EnvMaxConns     = "LIGHTBNB_MAX_CONNS"
	EnvMinConns     = "LIGHTBNB_MIN_CONNS"
	EnvConnLifetime = "LIGHTBNB_CONN_LIFETIME"
	EnvLogLevel     = "LIGHTBNB_LOG_LEVEL"
	EnvSlowQuery    = "LIGHTBNB_SLOW_QUERY"
)

// Config holds everything needed to open the connection pool.
type Config struct {
	DatabaseURL        string
	MaxConns           int32
	MinConns           int32
	MaxConnLifetime    time.Duration
	LogLevel           string
	SlowQueryThreshold time.Duration
}

// Default returns the settings used for every variable that is not set.
func Default() Config {
	return Config{
		MaxConns:           10,
		MinConns:           0,
		MaxConnLifetime:    time.Hour,
		LogLevel:           "warn",
		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

// FromEnv builds a Config from the process environment. DATABASE_URL is
// required; the rest fall back to Default.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	dsn, ok := lookup(EnvDatabaseURL)
	if !ok || strings.TrimSpace(dsn) == "" {
		return Config{}, fmt.Errorf("%s not set in environment or .env file", EnvDatabaseURL)
	}
	cfg.DatabaseURL = dsn

	if v, ok := lookup(EnvMaxConns); ok {
		n, err := parseConns(EnvMaxConns, v)
		if err != nil {
			return Config{}, err
		}
		if n == 0 {
			return Config{}, fmt.Errorf("%s must be at least 1", EnvMaxConns)
		}
		cfg.MaxConns = n
	}
	if v, ok := lookup(EnvMinConns); ok {
		n, err := parseConns(EnvMinConns, v)
		if err != nil {
			return Config{}, err
		}
		cfg.MinConns = n
	}
	if cfg.MinConns > cfg.MaxConns {
		return Config{}, fmt.Errorf("%s (%d) exceeds %s (%d)", EnvMinConns, cfg.MinConns, EnvMaxConns, cfg.MaxConns)
	}

	if v, ok := lookup(EnvConnLifetime); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvConnLifetime, err)
		}
		cfg.MaxConnLifetime = d
	}

	if v, ok := lookup(EnvLogLevel); ok {
		level := strings.ToLower(strings.TrimSpace(v))
		switch level {
		case "silent", "error", "warn", "info":
			cfg.LogLevel = level
		default:
			return Config{}, fmt.Errorf("invalid %s %q: want silent, error, warn or info", EnvLogLevel, v)
		}
	}

	if v, ok := lookup(EnvSlowQuery); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSlowQuery, err)
		}
		cfg.SlowQueryThreshold = d
	}

	return cfg, nil
}

func parseConns(name, v string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", name)
	}
	return int32(n), nil
}
