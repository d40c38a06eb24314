// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package models defines the JSON shapes returned by the HTTP API.
//
// Domain types such as Item, UserProfile and RecommendationScore live in the
// recommend package; this package only holds the response envelope
// (APIResponse, APIError, Metadata) and the serving-layer views built on top
// of engine output.
package models
