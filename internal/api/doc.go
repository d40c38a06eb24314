// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package api provides the HTTP REST API for Scholarwise.

The router is built on Chi with the go-chi/cors and go-chi/httprate
middleware. Every response uses the models.APIResponse envelope and is
serialized with goccy/go-json.

# Endpoints

Health (no rate limit):
  - GET /health: store and circuit breaker status, always 200
  - GET /health/live: liveness probe
  - GET /health/ready: readiness probe, 503 while the store is unavailable
  - GET /metrics: Prometheus exposition

Recommendations (rate limited, gzip):
  - GET /api/v1/recommendations/{userID}?algorithm=hybrid&limit=10
  - GET /api/v1/recommendations/algorithms
  - GET /api/v1/recommendations/config
  - PUT /api/v1/recommendations/config
  - GET /api/v1/recommendations/stats
  - POST /api/v1/interactions

# Error Mapping

Engine and provider errors are translated in one place:

	*recommend.InvalidInputError  400 INVALID_INPUT (details.field holds the JSON path)
	store.ErrUnavailable          503 UPSTREAM_UNAVAILABLE
	context.DeadlineExceeded      504 UPSTREAM_UNAVAILABLE
	other                         500 INTERNAL_ERROR

# Data Flow

GetRecommendations loads the user profile, the newest candidates and the
recent interaction log concurrently through the DataProvider, substitutes
recommend.DefaultProfile for unknown users, and hands everything to the
engine. Article payloads are attached from the already loaded candidates.
*/
package api
