// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/scholarwise/internal/config"
	"github.com/tomtom215/scholarwise/internal/recommend"
	"github.com/tomtom215/scholarwise/internal/recommend/algorithms"
	"github.com/tomtom215/scholarwise/internal/supervisor/services"
)

// initRecommend builds the engine with the three base scorers.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := cfg.EngineConfig()

	engine, err := recommend.NewEngine(engineCfg, logger,
		algorithms.NewContentBased(),
		algorithms.NewCollaborative(),
		algorithms.NewTrending(),
	)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Float64("weight_content", engineCfg.Weights.Content).
		Float64("weight_collaborative", engineCfg.Weights.Collaborative).
		Float64("weight_trending", engineCfg.Weights.Trending).
		Int("max_candidates", engineCfg.Limits.MaxCandidates).
		Int("interaction_window_days", engineCfg.Limits.InteractionWindowDays).
		Msg("Recommendation engine initialized")

	return engine, nil
}

// newConfigWatchService reloads the recommendation section when the config
// file changes. Other sections need a restart.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newConfigWatchService(path string, engine *recommend.Engine, logger zerolog.Logger) *services.ConfigWatchService {
	watch := func(callback func()) (func() error, error) {
		return config.WatchConfigFile(path, callback)
	}

	reload := func() error {
		next, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		return engine.UpdateConfig(next.EngineConfig())
	}

	return services.NewConfigWatchService(watch, reload, 0, logger)
}
