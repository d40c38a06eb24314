// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/scholarwise/internal/config"
	"github.com/tomtom215/scholarwise/internal/store"
)

// initStore opens the Badger store and imports the fixture file if one is
// configured. An import failure closes the store again.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*store.BadgerStore, error) {
	db, err := store.Open(store.Options{
		Path:       cfg.Store.Path,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if cfg.Store.FixturesPath == "" {
		return db, nil
	}

	stats, err := db.LoadFixtures(ctx, cfg.Store.FixturesPath)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("Error closing store")
		}
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	logger.Info().
		Str("path", cfg.Store.FixturesPath).
		Int("items", stats.Items).
		Int("profiles", stats.Profiles).
		Int("interactions", stats.Interactions).
		Msg("Fixtures imported")
	return db, nil
}

// newGuardedProvider wraps the store reads in a circuit breaker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newGuardedProvider(db *store.BadgerStore, cfg *config.Config, logger zerolog.Logger) *store.BreakerProvider {
	return store.NewBreakerProvider(db, store.BreakerSettings{
		Name:             "badger-store",
		MaxRequests:      cfg.Store.Breaker.MaxRequests,
		Interval:         cfg.Store.Breaker.Interval,
		Timeout:          cfg.Store.Breaker.Timeout,
		FailureThreshold: cfg.Store.Breaker.FailureThreshold,
	}, logger)
}
