// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// Fixtures is the JSON document accepted by LoadFixtures.
type Fixtures struct {
	Items        []recommend.Item        `json:"items"`
	Profiles     []recommend.UserProfile `json:"profiles"`
	Interactions []recommend.Interaction `json:"interactions"`
}

// FixtureStats reports how many records a fixture load wrote.
type FixtureStats struct {
	Items        int `json:"items"`
	Profiles     int `json:"profiles"`
	Interactions int `json:"interactions"`
}

// LoadFixtures reads a fixtures file and writes its contents to the store.
// Every record is validated; the first invalid record stops the load and
// records written before it are kept.
func (s *BadgerStore) LoadFixtures(ctx context.Context, path string) (FixtureStats, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return FixtureStats{}, fmt.Errorf("read fixtures: %w", err)
	}

	var fx Fixtures
	if err := json.Unmarshal(data, &fx); err != nil {
		return FixtureStats{}, fmt.Errorf("decode fixtures %s: %w", path, err)
	}

	stats, err := s.Import(ctx, &fx)
	if err != nil {
		return stats, fmt.Errorf("load fixtures %s: %w", path, err)
	}

	s.logger.Info().
		Str("path", path).
		Int("items", stats.Items).
		Int("profiles", stats.Profiles).
		Int("interactions", stats.Interactions).
		Msg("fixtures loaded")

	return stats, nil
}

// Import writes every record of fx to the store.
func (s *BadgerStore) Import(ctx context.Context, fx *Fixtures) (FixtureStats, error) {
	var stats FixtureStats

	for i := range fx.Items {
		if err := s.PutItem(ctx, fx.Items[i]); err != nil {
			return stats, fmt.Errorf("items[%d]: %w", i, err)
		}
		stats.Items++
	}
	for i := range fx.Profiles {
		if err := s.PutProfile(ctx, fx.Profiles[i]); err != nil {
			return stats, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		stats.Profiles++
	}
	for i := range fx.Interactions {
		if err := s.AppendInteraction(ctx, fx.Interactions[i]); err != nil {
			return stats, fmt.Errorf("interactions[%d]: %w", i, err)
		}
		stats.Interactions++
	}

	return stats, nil
}
