// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package middleware provides the net/http middleware used by the API router.

# Components

  - RequestID: reuses or generates an X-Request-ID and stores it in the
    logging context
  - RequestLogger: one zerolog line per request, warn for slow requests and
    error for 5xx responses
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

All middleware has the standard func(http.Handler) http.Handler shape and
can be passed to chi's Router.Use.

# Ordering

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

RequestLogger depends on RequestID running first.
*/
package middleware
