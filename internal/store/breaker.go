// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/scholarwise/internal/metrics"
	"github.com/tomtom215/scholarwise/internal/recommend"
)

// ErrUnavailable is returned when the breaker is open or saturated.
var ErrUnavailable = errors.New("data provider unavailable")

// BreakerSettings configures a BreakerProvider.
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerProvider wraps a DataProvider with a circuit breaker. After
// FailureThreshold consecutive failures every call fails fast with
// ErrUnavailable until Timeout elapses.
//
// A missing profile and a canceled request are expected outcomes and do not
// count as failures.
//
// DETERMINISM NOTE: gobreaker uses wall-clock time for Interval and Timeout.
// Tests exercise state changes through the trip threshold, not through waits.
type BreakerProvider struct {
	next   recommend.DataProvider
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger zerolog.Logger
}

var _ recommend.DataProvider = (*BreakerProvider)(nil)

// NewBreakerProvider wraps next.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreakerProvider(next recommend.DataProvider, settings BreakerSettings, logger zerolog.Logger) *BreakerProvider {
	if settings.Name == "" {
		settings.Name = "data-provider"
	}
	if settings.FailureThreshold == 0 {
		settings.FailureThreshold = 5
	}

	b := &BreakerProvider{
		next:   next,
		name:   settings.Name,
		logger: logger.With().Str("component", "breaker").Str("breaker", settings.Name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(settings.Name).Set(float64(gobreaker.StateClosed))

	threshold := settings.FailureThreshold
	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), int(to))
		},
		IsSuccessful: isExpected,
	})

	return b
}

// isExpected reports whether err is a normal outcome that must not trip the breaker.
func isExpected(err error) bool {
	return err == nil ||
		errors.Is(err, recommend.ErrProfileNotFound) ||
		errors.Is(err, context.Canceled)
}

// State returns the breaker state: closed, half-open or open.
func (b *BreakerProvider) State() string {
	return b.cb.State().String()
}

// execute runs fn through the breaker and records the outcome.
func execute[T any](b *BreakerProvider, fn func() (T, error)) (T, error) {
	var zero T

	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(b.name, "rejected")
		return zero, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case !isExpected(err):
		metrics.RecordCircuitBreakerRequest(b.name, "failure")
		return zero, err
	case err != nil:
		metrics.RecordCircuitBreakerRequest(b.name, "success")
		return zero, err
	}

	metrics.RecordCircuitBreakerRequest(b.name, "success")
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// GetCandidates implements recommend.DataProvider.
func (b *BreakerProvider) GetCandidates(ctx context.Context, userID string, limit int) ([]recommend.Item, error) {
	return execute(b, func() ([]recommend.Item, error) {
		return b.next.GetCandidates(ctx, userID, limit)
	})
}

// GetUserProfile implements recommend.DataProvider.
func (b *BreakerProvider) GetUserProfile(ctx context.Context, userID string) (*recommend.UserProfile, error) {
	return execute(b, func() (*recommend.UserProfile, error) {
		return b.next.GetUserProfile(ctx, userID)
	})
}

// GetInteractions implements recommend.DataProvider.
func (b *BreakerProvider) GetInteractions(ctx context.Context, since time.Time, limit int) ([]recommend.Interaction, error) {
	return execute(b, func() ([]recommend.Interaction, error) {
		return b.next.GetInteractions(ctx, since, limit)
	})
}

// GetItems implements recommend.DataProvider.
func (b *BreakerProvider) GetItems(ctx context.Context, ids []string) (map[string]recommend.Item, error) {
	return execute(b, func() (map[string]recommend.Item, error) {
		return b.next.GetItems(ctx, ids)
	})
}
