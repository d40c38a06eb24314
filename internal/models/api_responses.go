// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package models

import (
	"time"
)

// APIResponse represents the standard wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "INVALID_INPUT",
//	    "message": "invalid input: candidates[2].id: id is required",
//	    "details": {"field": "candidates[2].id"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in APIError.Code.
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// Article is the catalog payload attached to a recommendation.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title,omitempty"`
	Categories      []string  `json:"categories"`
	Keywords        []string  `json:"keywords,omitempty"`
	Source          string    `json:"source"`
	PublicationDate time.Time `json:"publicationDate"`
	TrendingScore   float64   `json:"trendingScore"`
}

// RecommendationItem is one ranked recommendation with its article payload.
// Article is nil when the catalog no longer holds the item.
type RecommendationItem struct {
	ArticleID  string   `json:"articleId"`
	Article    *Article `json:"article,omitempty"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
	Algorithm  string   `json:"algorithm"`
}

// RecommendationsResponse is the payload of GET /api/v1/recommendations/{userID}.
type RecommendationsResponse struct {
	UserID          string               `json:"userId"`
	Algorithm       string               `json:"algorithm"`
	Items           []RecommendationItem `json:"items"`
	TotalCandidates int                  `json:"total_candidates"`
	// DefaultProfile is true when the user had no stored profile.
	DefaultProfile bool  `json:"default_profile,omitempty"`
	LatencyMS      int64 `json:"latency_ms"`
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Uptime  float64           `json:"uptime_seconds"`
	Checks  map[string]string `json:"checks"`
}
