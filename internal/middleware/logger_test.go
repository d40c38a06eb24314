// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/scholarwise/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := logging.Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return &buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		sleep     time.Duration
		threshold time.Duration
		wantLevel string
	}{
		{"success logs at debug", http.StatusOK, 0, time.Hour, "debug"},
		{"client error logs at debug", http.StatusBadRequest, 0, time.Hour, "debug"},
		{"server error logs at error", http.StatusInternalServerError, 0, time.Hour, "error"},
		{"slow request logs at warn", http.StatusOK, 5 * time.Millisecond, time.Millisecond, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			prevThreshold := SlowRequestThreshold
			SlowRequestThreshold = tt.threshold
			t.Cleanup(func() { SlowRequestThreshold = prevThreshold })

			handler := RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/u1", nil)
			req.Header.Set(RequestIDHeader, "req-42")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			entry := lastLogLine(t, buf)
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["request_id"] != "req-42" {
				t.Errorf("request_id = %v, want req-42", entry["request_id"])
			}
			if entry["path"] != "/api/v1/recommendations/u1" {
				t.Errorf("path = %v", entry["path"])
			}
			if status, _ := entry["status"].(float64); int(status) != tt.status {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
		})
	}
}
