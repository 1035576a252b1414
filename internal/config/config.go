// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package config provides application configuration loaded via Koanf v2
// with layered sources: built-in defaults, an optional YAML file, and
// environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout bounds read/write on each request.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed CORS origins. Default: ["*"].
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is requests allowed per RateLimitWindow per client IP.
	// 0 disables rate limiting.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window size.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// DatabaseConfig holds DuckDB settings for the hourly-usage store.
type DatabaseConfig struct {
	// Path is the DuckDB database file, or ":memory:".
	Path string `koanf:"path"`

	// MaxMemory is DuckDB's memory limit (e.g. "2GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is DuckDB's thread count. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`

	// QueryTimeout bounds each aggregation query.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// SeedMockData inserts mock hourly usage rows on startup (dev/CI only).
	SeedMockData bool `koanf:"seed_mock_data"`
}

// CacheConfig holds result-cache settings.
type CacheConfig struct {
	// Backend selects the cache store: "badger" (persistent) or "memory".
	Backend string `koanf:"backend"`

	// Path is the BadgerDB directory (badger backend only).
	Path string `koanf:"path"`

	// TTL is how long computed results stay cached.
	TTL time.Duration `koanf:"ttl"`
}

// APIConfig holds request parameter bounds.
type APIConfig struct {
	// DefaultLimit is the ranked-result size when the client omits limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the client-supplied limit (silently clamped, not an error).
	MaxLimit int `koanf:"max_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
		Database: DatabaseConfig{
			Path:         "/data/most-popular-content.duckdb",
			MaxMemory:    "2GB",
			Threads:      0, // 0 = use runtime.NumCPU()
			QueryTimeout: 30 * time.Second,
			SeedMockData: false,
		},
		Cache: CacheConfig{
			Backend: "badger",
			Path:    "/data/result-cache",
			TTL:     30 * time.Minute,
		},
		API: APIConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	switch c.Cache.Backend {
	case "badger", "memory":
	default:
		return fmt.Errorf("cache.backend must be badger or memory, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "badger" && c.Cache.Path == "" {
		return fmt.Errorf("cache.path must not be empty with the badger backend")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.API.DefaultLimit < 1 || c.API.DefaultLimit > c.API.MaxLimit {
		return fmt.Errorf("api.default_limit must be in [1,%d], got %d", c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.API.MaxLimit < 1 {
		return fmt.Errorf("api.max_limit must be at least 1, got %d", c.API.MaxLimit)
	}
	return nil
}

// Load loads the configuration from defaults, an optional YAML file, and
// environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
