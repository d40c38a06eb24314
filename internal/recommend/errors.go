// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned by a DataProvider when a user has no stored profile.
var ErrProfileNotFound = errors.New("user profile not found")

// InvalidInputError reports a missing or malformed field on a candidate,
// profile or interaction. It is the only error the engine produces and it
// always aborts the whole call.
type InvalidInputError struct {
	// Field is the JSON path of the offending field, e.g. "candidates[2].id".
	Field string

	// Reason describes the failed constraint.
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid input: %s", e.Field)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is or wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
