// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/scholarwise/internal/validation"
)

// ValidateItem checks a single candidate. prefix is prepended to the
// reported field path.
//
//nolint:gocritic // hugeParam: Item is validated by value
func ValidateItem(prefix string, item Item) error {
	return toInvalidInput(prefix, validation.ValidateStruct(&item))
}

// ValidateInteraction checks a single interaction log entry.
//
//nolint:gocritic // hugeParam: Interaction is validated by value
func ValidateInteraction(prefix string, inter Interaction) error {
	return toInvalidInput(prefix, validation.ValidateStruct(&inter))
}

// ValidateProfile checks a user profile.
//
//nolint:gocritic // hugeParam: UserProfile is validated by value
func ValidateProfile(prefix string, profile UserProfile) error {
	return toInvalidInput(prefix, validation.ValidateStruct(&profile))
}

// validateCandidates checks every candidate and rejects duplicate IDs.
func validateCandidates(candidates []Item) error {
	seen := make(map[string]struct{}, len(candidates))
	for i := range candidates {
		prefix := fmt.Sprintf("candidates[%d]", i)
		if err := ValidateItem(prefix, candidates[i]); err != nil {
			return err
		}
		if _, dup := seen[candidates[i].ID]; dup {
			return &InvalidInputError{Field: prefix + ".id", Reason: "duplicate candidate id " + candidates[i].ID}
		}
		seen[candidates[i].ID] = struct{}{}
	}
	return nil
}

// validateInteractions checks every interaction.
func validateInteractions(interactions []Interaction) error {
	for i := range interactions {
		if err := ValidateInteraction(fmt.Sprintf("interactions[%d]", i), interactions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateRequest checks every input of a recommendation request before any
// scoring happens. The first failure wins.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func validateRequest(req Request) error {
	if req.UserID == "" {
		return &InvalidInputError{Field: "userId", Reason: "userId is required"}
	}
	if !req.Algorithm.Valid() {
		return &InvalidInputError{Field: "algorithm", Reason: fmt.Sprintf("unsupported algorithm %q", req.Algorithm)}
	}
	if req.Limit < 0 {
		return &InvalidInputError{Field: "limit", Reason: "limit must be non-negative"}
	}
	return validateInputs(req)
}

// validateInputs checks the records every strategy scores: the profile, the
// candidates and the interaction log.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func validateInputs(req Request) error {
	if err := ValidateProfile("profile", req.Profile); err != nil {
		return err
	}
	if err := validateCandidates(req.Candidates); err != nil {
		return err
	}
	return validateInteractions(req.Interactions)
}

// toInvalidInput maps the first validation failure to an InvalidInputError.
func toInvalidInput(prefix string, verr *validation.RequestValidationError) error {
	if verr == nil {
		return nil
	}

	first := verr.First()
	if first == nil {
		return &InvalidInputError{Field: prefix, Reason: verr.Error()}
	}

	field := first.Path()
	if prefix != "" {
		field = prefix + "." + field
	}
	return &InvalidInputError{Field: field, Reason: first.Error()}
}
