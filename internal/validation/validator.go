// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is one failed constraint on a JSON field.
type ValidationError struct {
	path    string
	tag     string
	message string
}

// Path is the JSON path relative to the validated value, such as
// "metrics.impactScore" or "categories[2]".
func (e *ValidationError) Path() string {
	return e.path
}

// Tag is the validate tag that failed ("required", "lte", ...).
func (e *ValidationError) Tag() string {
	return e.tag
}

func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError holds every failure found on one value, in struct
// field order.
type RequestValidationError struct {
	errors []ValidationError
}

// First returns the earliest failure, or nil when there is none.
func (ve *RequestValidationError) First() *ValidationError {
	if len(ve.errors) == 0 {
		return nil
	}
	return &ve.errors[0]
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].message)
	}
	return strings.Join(messages, "; ")
}

// instance returns the shared validator. Field names in errors come from json tags.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct checks s against its validate tags. It returns nil when s
// is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{path: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			path:    relativePath(fe.Namespace()),
			tag:     fe.Tag(),
			message: message(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

// relativePath drops the root type from a validator namespace:
// "Item.metrics.impactScore" becomes "metrics.impactScore".
func relativePath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

var paramMessages = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	if tmpl, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
