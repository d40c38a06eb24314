// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package metrics provides Prometheus metrics for the recommendation service.

All collectors are registered on the default registry through promauto and
exposed by the API router at /metrics.

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter

Recommendation Metrics:
  - recommendation_requests_total: Labels algorithm, outcome
  - recommendation_invalid_input_total: Labels field
  - recommendation_duration_seconds: Scoring latency per algorithm
  - recommendation_candidates: Candidates supplied per request
  - recommendation_results: Entries returned per request
  - recommendation_config_updates_total
  - interactions_recorded_total: Labels interaction_type

Store Metrics:
  - store_operation_duration_seconds: Labels operation, prefix
  - store_operation_errors_total
  - store_keys

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(resp.Algorithm.String(), len(req.Candidates), len(resp.Items), time.Since(start))
*/
package metrics
