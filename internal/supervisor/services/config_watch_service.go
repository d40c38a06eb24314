// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// WatchFunc starts watching a file and returns a function that stops it.
// config.WatchConfigFile satisfies it once bound to a path.
type WatchFunc func(callback func()) (stop func() error, err error)

// ReloadFunc re-reads configuration and applies it.
type ReloadFunc func() error

// ConfigWatchService hot-reloads configuration while the process runs.
//
// Editors often write a file in several steps, so change events are
// debounced and a burst triggers a single reload.
type ConfigWatchService struct {
	watch    WatchFunc
	reload   ReloadFunc
	debounce time.Duration
	logger   zerolog.Logger
	name     string
}

// NewConfigWatchService creates a config watcher. A non-positive debounce uses 500ms.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConfigWatchService(watch WatchFunc, reload ReloadFunc, debounce time.Duration, logger zerolog.Logger) *ConfigWatchService {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &ConfigWatchService{
		watch:    watch,
		reload:   reload,
		debounce: debounce,
		logger:   logger.With().Str("service", "config-watch").Logger(),
		name:     "config-watch",
	}
}

// Serve implements suture.Service. Failed reloads keep the previous
// configuration and are only logged.
func (s *ConfigWatchService) Serve(ctx context.Context) error {
	if s.watch == nil || s.reload == nil {
		return errors.New("config watch requires watch and reload functions")
	}

	changes := make(chan struct{}, 1)
	stop, err := s.watch(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("start config watch: %w", err)
	}

	defer func() {
		if err := stop(); err != nil {
			s.logger.Debug().Err(err).Msg("stop config watch")
		}
	}()

	s.logger.Info().Dur("debounce", s.debounce).Msg("watching config file")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case <-changes:
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := s.reload(); err != nil {
				s.logger.Warn().Err(err).Msg("config reload failed, keeping previous configuration")
				continue
			}
			s.logger.Info().Msg("configuration reloaded")
		}
	}
}

// String implements fmt.Stringer for suture log messages.
func (s *ConfigWatchService) String() string {
	return s.name
}
