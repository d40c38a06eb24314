// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "prefix"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of failed store operations",
		},
		[]string{"operation", "prefix", "error_type"},
	)

	StoreKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_keys",
			Help: "Number of keys per prefix seen at the last scan",
		},
		[]string{"prefix"}, // "item", "profile", "interaction"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"algorithm", "outcome"}, // outcome: "success", "invalid_input"
	)

	RecommendationInvalidInput = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_invalid_input_total",
			Help: "Total number of requests rejected for invalid input",
		},
		[]string{"field"}, // top-level field: "candidates", "profile", "interactions", "algorithm"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent scoring and ranking candidates",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
		[]string{"algorithm"},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of candidates supplied per request",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
		},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"algorithm"},
	)

	RecommendationConfigUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_config_updates_total",
			Help: "Total number of accepted engine configuration updates",
		},
	)

	InteractionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_recorded_total",
			Help: "Total number of interactions written to the log",
		},
		[]string{"interaction_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordStoreOperation records a store operation metric
func RecordStoreOperation(operation, prefix string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, prefix).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		StoreOperationErrors.WithLabelValues(operation, prefix, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(algorithm string, candidates, results int, duration time.Duration) {
	RecommendationRequests.WithLabelValues(algorithm, "success").Inc()
	RecommendationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	RecommendationCandidates.Observe(float64(candidates))
	RecommendationResults.WithLabelValues(algorithm).Observe(float64(results))
}

// RecordRecommendationRejected records a request refused for invalid input.
// field is the offending JSON path; only its top-level segment is used as label.
func RecordRecommendationRejected(algorithm, field string) {
	if algorithm == "" {
		algorithm = "unknown"
	}
	RecommendationRequests.WithLabelValues(algorithm, "invalid_input").Inc()
	RecommendationInvalidInput.WithLabelValues(topLevelField(field)).Inc()
}

// topLevelField trims a JSON path such as "candidates[3].metrics.impactScore"
// to "candidates" to keep label cardinality bounded.
func topLevelField(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		field = field[:i]
	}
	if field == "" {
		return "unknown"
	}
	return field
}

// RecordInteraction records an interaction appended to the log.
func RecordInteraction(interactionType string) {
	InteractionsRecorded.WithLabelValues(interactionType).Inc()
}

// RecordCircuitBreakerRequest records the outcome of a call through a breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a state change and updates the state gauge.
// States use the gobreaker numbering: 0=closed, 1=half-open, 2=open.
func RecordCircuitBreakerTransition(name, from, to string, toState int) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(toState))
}
