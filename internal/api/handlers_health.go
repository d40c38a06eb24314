// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/scholarwise/internal/metrics"
	"github.com/tomtom215/scholarwise/internal/models"
)

const healthCheckTimeout = 2 * time.Second

// Health handles GET /health.
// Always answers 200 so that dashboards can read the degraded state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.checkHealth(r.Context())
	respondSuccess(w, r, http.StatusOK, status, time.Time{})
}

// HealthLive handles GET /health/live. The process is alive if it answers.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles GET /health/ready.
// Returns 503 while the store is unreachable or the breaker is open.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.checkHealth(r.Context())
	if status.Status != "healthy" {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeUpstreamUnavailable, "Service not ready", nil)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"ready":  true,
		"checks": status.Checks,
	}, time.Time{})
}

func (h *Handler) checkHealth(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Checks:  map[string]string{},
	}
	metrics.AppUptime.Set(status.Uptime)

	if h.store != nil {
		ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			status.Status = "degraded"
			status.Checks["store"] = sanitizeLogValue(err.Error())
		} else {
			status.Checks["store"] = "ok"
		}
	}

	if h.breaker != nil {
		state := h.breaker.State()
		status.Checks["circuit_breaker"] = state
		if state == "open" {
			status.Status = "degraded"
		}
	}

	return status
}
