// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package store

import (
	"strings"

	"github.com/rs/zerolog"
)

// badgerLogger routes badger's printf-style logging through zerolog.
// Badger's info output is chatty during compaction, so it is demoted to debug.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Str("source", "badger").Msgf(trimNewline(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Str("source", "badger").Msgf(trimNewline(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Str("source", "badger").Msgf(trimNewline(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Str("source", "badger").Msgf(trimNewline(format), args...)
}

func trimNewline(format string) string {
	return strings.TrimRight(format, "\n")
}
