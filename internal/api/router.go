// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/scholarwise/internal/middleware"
	"github.com/tomtom215/scholarwise/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMiddleware,
	}
}

// Setup builds the HTTP handler.
//
// Routes:
//
//	GET  /health, /health/live, /health/ready
//	GET  /metrics
//	GET  /api/v1/recommendations/algorithms
//	GET  /api/v1/recommendations/config
//	PUT  /api/v1/recommendations/config
//	GET  /api/v1/recommendations/stats
//	GET  /api/v1/recommendations/{userID}
//	POST /api/v1/interactions
//
// Static segments win over {userID}, so "algorithms", "config" and "stats"
// cannot be used as user IDs on this path.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, models.ErrCodeValidation, "Method not allowed", nil)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/algorithms", router.handler.GetAlgorithms)
			r.Get("/config", router.handler.GetConfig)
			r.Put("/config", router.handler.UpdateConfig)
			r.Get("/stats", router.handler.GetStats)
			r.Get("/{userID}", router.handler.GetRecommendations)
		})

		r.Post("/interactions", router.handler.RecordInteraction)
	})

	return r
}
