// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator that reports field names by
// their json tags, so failures can be surfaced with the same paths clients
// send (for example "metrics.impactScore").
//
//	type InteractionRequest struct {
//	    UserID string `json:"userId" validate:"required"`
//	    Type   string `json:"interactionType" validate:"oneof=view bookmark share discuss like"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    first := err.First()
//	    return fmt.Errorf("%s: %s", first.Path(), first.Error())
//	}
package validation
