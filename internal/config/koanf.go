// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/scholarwise/config.yaml",
	"/etc/scholarwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Store: StoreConfig{
			Path:         "/data/scholarwise",
			InMemory:     false,
			FixturesPath: "",
			SyncWrites:   false,
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile loads configuration with the given YAML file as the file layer.
// Environment variables still take precedence. Used for hot reload.
func LoadFile(path string) (*Config, error) {
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// RECOMMEND_WEIGHT_CONTENT -> recommend.weights.content
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.SourcePath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Store
	"store_path":                      "store.path",
	"store_in_memory":                 "store.in_memory",
	"store_fixtures_path":             "store.fixtures_path",
	"store_sync_writes":               "store.sync_writes",
	"store_breaker_max_requests":      "store.breaker.max_requests",
	"store_breaker_interval":          "store.breaker.interval",
	"store_breaker_timeout":           "store.breaker.timeout",
	"store_breaker_failure_threshold": "store.breaker.failure_threshold",

	// Recommendation engine
	"recommend_weight_content":          "recommend.weights.content",
	"recommend_weight_collaborative":    "recommend.weights.collaborative",
	"recommend_weight_trending":         "recommend.weights.trending",
	"recommend_confidence_scale":        "recommend.hybrid_confidence_scale",
	"recommend_default_limit":           "recommend.limits.default_limit",
	"recommend_max_limit":               "recommend.limits.max_limit",
	"recommend_max_candidates":          "recommend.limits.max_candidates",
	"recommend_max_interactions":        "recommend.limits.max_interactions",
	"recommend_interaction_window_days": "recommend.limits.interaction_window_days",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - STORE_PATH -> store.path
//   - RECOMMEND_WEIGHT_TRENDING -> recommend.weights.trending
//
// Unmapped variables return an empty key and are skipped, so unrelated
// environment variables never pollute the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever the file at path changes.
// The returned stop function ends the watch. The caller owns any
// synchronization needed when applying a reload.
//
// Example usage:
//
//	stop, err := WatchConfigFile(cfg.SourcePath, func() {
//	    next, err := LoadFile(cfg.SourcePath)
//	    if err != nil {
//	        logging.Warn().Err(err).Msg("config reload failed")
//	        return
//	    }
//	    _ = engine.UpdateConfig(next.EngineConfig())
//	})
//	defer stop()
func WatchConfigFile(path string, callback func()) (stop func() error, err error) {
	provider := file.Provider(path)

	err = provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return provider.Unwatch, nil
}
