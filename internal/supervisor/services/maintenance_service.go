// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MaintainedStore is the housekeeping surface of the article store.
type MaintainedStore interface {
	RunValueLogGC(discardRatio float64) error
	CountKeys(ctx context.Context) (map[string]int, error)
}

// MaintenanceConfig holds configuration for the store maintenance service.
type MaintenanceConfig struct {
	// Interval between maintenance runs.
	// Default: 10m
	Interval time.Duration

	// DiscardRatio is passed to the value log GC. A file is rewritten when
	// at least this fraction of it is stale.
	// Default: 0.5
	DiscardRatio float64
}

// MaintenanceService periodically compacts the store's value log and
// refreshes the key count gauges.
type MaintenanceService struct {
	store  MaintainedStore
	config MaintenanceConfig
	logger zerolog.Logger
	name   string
}

// NewMaintenanceService creates a store maintenance service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(store MaintainedStore, cfg MaintenanceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.DiscardRatio <= 0 || cfg.DiscardRatio >= 1 {
		cfg.DiscardRatio = 0.5
	}
	return &MaintenanceService{
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "store-maintenance").Logger(),
		name:   "store-maintenance",
	}
}

// Serve implements suture.Service. A failed run is logged and retried on the
// next tick; only context cancellation ends the loop.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Float64("discard_ratio", s.config.DiscardRatio).
		Msg("store maintenance starting")

	// Populate the gauges right away instead of waiting a full interval.
	s.run(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("store maintenance stopping")
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *MaintenanceService) run(ctx context.Context) {
	start := time.Now()

	if err := s.store.RunValueLogGC(s.config.DiscardRatio); err != nil {
		s.logger.Warn().Err(err).Msg("value log GC failed")
	}

	counts, err := s.store.CountKeys(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("key count failed")
		}
		return
	}

	s.logger.Debug().
		Interface("keys", counts).
		Dur("duration", time.Since(start)).
		Msg("store maintenance complete")
}

// String implements fmt.Stringer for suture log messages.
func (s *MaintenanceService) String() string {
	return s.name
}
