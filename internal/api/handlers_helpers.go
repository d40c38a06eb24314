// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/scholarwise/internal/logging"
	"github.com/tomtom215/scholarwise/internal/middleware"
	"github.com/tomtom215/scholarwise/internal/models"
	"github.com/tomtom215/scholarwise/internal/recommend"
	"github.com/tomtom215/scholarwise/internal/store"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 16

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
// Recommendations are personal, so responses are never cached by shared caches.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "private, no-cache")
	w.Header().Add("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak validator from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(r, start),
	})
}

func newMetadata(r *http.Request, start time.Time) models.Metadata {
	meta := models.Metadata{
		Timestamp: time.Now().UTC(),
	}
	if r != nil {
		meta.RequestID = middleware.GetRequestID(r.Context())
	}
	if !start.IsZero() {
		meta.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return meta
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, code, message, nil, err)
}

// respondErrorDetails sends an error response carrying structured details.
func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondRecommendError maps engine and provider errors to HTTP responses.
//
//	*recommend.InvalidInputError -> 400 INVALID_INPUT, details.field names the JSON path
//	store.ErrUnavailable         -> 503 UPSTREAM_UNAVAILABLE
//	context.DeadlineExceeded     -> 504 UPSTREAM_UNAVAILABLE
//	anything else                -> 500 INTERNAL_ERROR
//
// A canceled request gets no body since nobody is listening.
func respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *recommend.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		respondErrorDetails(w, http.StatusBadRequest, models.ErrCodeInvalidInput, invalid.Error(),
			map[string]interface{}{"field": invalid.Field}, nil)
	case errors.Is(err, store.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeUpstreamUnavailable,
			"Article data is temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, models.ErrCodeUpstreamUnavailable,
			"Timed out loading article data", err)
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("request canceled by client")
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"Failed to generate recommendations", err)
	}
}

// decodeJSONBody reads a bounded JSON body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// parseLimitParam reads the optional limit query parameter.
// An absent value returns 0 so the engine applies its default; negative
// values are passed through for the engine to reject.
func parseLimitParam(r *http.Request) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("limit"))
	if value == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, &recommend.InvalidInputError{Field: "limit", Reason: "must be an integer"}
	}
	return limit, nil
}
