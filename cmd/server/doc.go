// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package main is the entry point for the Scholarwise server.

Scholarwise recommends research articles to researchers. It ranks the newest
catalog entries by profile similarity, peer endorsements and community
popularity, or a weighted blend of the three.

# Application Architecture

	scholarwise
	├── data-layer
	│   └── store maintenance (Badger value log GC, key gauges)
	├── control-layer
	│   └── config watcher (hot reload of the recommend section)
	└── api-layer
	    └── HTTP server (chi)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, YAML file and environment variables
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Store: BadgerDB, optionally seeded from STORE_FIXTURES_PATH
 4. Circuit breaker: gobreaker around every store read
 5. Engine: content-based, collaborative and trending scorers
 6. HTTP: chi router with CORS, rate limiting, gzip and Prometheus metrics
 7. Supervisor: suture v4 tree, blocks until SIGINT or SIGTERM

# Example Usage

Local development with sample data:

	export STORE_IN_MEMORY=true
	export STORE_FIXTURES_PATH=internal/store/testdata/fixtures.json
	export LOG_FORMAT=console
	./scholarwise

	curl localhost:8080/api/v1/recommendations/researcher-1?algorithm=hybrid&limit=5

Production:

	export ENVIRONMENT=production
	export STORE_PATH=/data/scholarwise
	export CORS_ORIGINS=https://scholarwise.example.org
	export CONFIG_PATH=/etc/scholarwise/config.yaml
	./scholarwise

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains open
connections for SHUTDOWN_TIMEOUT, the supervisor stops every service and the
store is closed last.
*/
package main
