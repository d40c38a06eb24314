// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package config

import (
	"time"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults for every setting
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent reads. The
// recommendation section can be reloaded at runtime through WatchConfigFile,
// in which case the engine receives a fresh copy.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Security  SecurityConfig   `koanf:"security"`
	Store     StoreConfig      `koanf:"store"`
	Recommend recommend.Config `koanf:"recommend"`

	// SourcePath is the config file that was loaded, empty when none was found.
	SourcePath string `koanf:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging or production
}

// SecurityConfig holds the HTTP edge protections.
// There is no authentication layer; user IDs are taken from the URL.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// StoreConfig holds the embedded catalog store settings.
//
// Environment Variables:
//   - STORE_PATH: badger data directory (default: /data/scholarwise)
//   - STORE_IN_MEMORY: keep everything in memory (default: false)
//   - STORE_FIXTURES_PATH: JSON fixtures loaded at startup (optional)
//   - STORE_SYNC_WRITES: fsync every write (default: false)
type StoreConfig struct {
	Path         string        `koanf:"path"`
	InMemory     bool          `koanf:"in_memory"`
	FixturesPath string        `koanf:"fixtures_path"`
	SyncWrites   bool          `koanf:"sync_writes"`
	Breaker      BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker in front of the store.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the cyclic period of the closed state after which
	// failure counts are cleared. Zero never clears them.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures that trips the breaker.
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// EngineConfig returns a copy of the recommendation engine settings.
func (c *Config) EngineConfig() *recommend.Config {
	return c.Recommend.Clone()
}

// Load reads configuration from defaults, the optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
