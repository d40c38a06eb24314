// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/scholarwise/internal/logging"
)

// SlowRequestThreshold is the latency above which a request is logged at warn level.
var SlowRequestThreshold = time.Second

// RequestLogger writes one structured log line per request. It must run
// after RequestID so the line carries the request_id field.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		logger := logging.Ctx(r.Context())

		event := logger.Debug()
		switch {
		case wrapper.statusCode >= http.StatusInternalServerError:
			event = logger.Error()
		case duration > SlowRequestThreshold:
			event = logger.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("request completed")
	})
}
