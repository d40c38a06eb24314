// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package config provides centralized configuration management for Scholarwise.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, config.yaml, config.yml or
    /etc/scholarwise/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8080)
  - SERVER_TIMEOUT: read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: graceful shutdown timeout (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: requests per window per client IP (default: 100)
  - RATE_LIMIT_WINDOW: window length (default: 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)

Store:
  - STORE_PATH, STORE_IN_MEMORY, STORE_FIXTURES_PATH, STORE_SYNC_WRITES
  - STORE_BREAKER_MAX_REQUESTS, STORE_BREAKER_INTERVAL,
    STORE_BREAKER_TIMEOUT, STORE_BREAKER_FAILURE_THRESHOLD

Recommendation engine:
  - RECOMMEND_WEIGHT_CONTENT (0.4), RECOMMEND_WEIGHT_COLLABORATIVE (0.35),
    RECOMMEND_WEIGHT_TRENDING (0.25)
  - RECOMMEND_CONFIDENCE_SCALE (80)
  - RECOMMEND_DEFAULT_LIMIT (10), RECOMMEND_MAX_LIMIT (100)
  - RECOMMEND_MAX_CANDIDATES (50), RECOMMEND_MAX_INTERACTIONS (5000)
  - RECOMMEND_INTERACTION_WINDOW_DAYS (90)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger, ...)

# Hot Reload

When a config file was loaded, WatchConfigFile can observe it and LoadFile
re-reads all layers. Only the recommendation section is applied at runtime;
every other setting needs a restart.
*/
package config
