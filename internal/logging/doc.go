// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package logging provides centralized zerolog-based logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Warn().Msg("rate limiting disabled")
//	logging.Error().Err(err).Msg("store unavailable")
//
//	// request-scoped fields set by the API middleware
//	logging.Ctx(ctx).Info().Int("returned", n).Msg("recommendations served")
//
// Level and format come from the logging section of the application
// config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
//
// # slog bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept an
// *slog.Logger, such as sutureslog in the supervisor tree.
package logging
