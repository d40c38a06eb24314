// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// defaultRequestTimeout bounds the data fetch and scoring of one request.
const defaultRequestTimeout = 10 * time.Second

// InteractionRecorder persists interaction log entries.
type InteractionRecorder interface {
	AppendInteraction(ctx context.Context, inter recommend.Interaction) error
}

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerStater exposes the state of the circuit breaker guarding the store.
type BreakerStater interface {
	State() string
}

// HandlerDeps are the collaborators of Handler. Store and Breaker are optional
// and only feed the health endpoints.
type HandlerDeps struct {
	Engine   *recommend.Engine
	Provider recommend.DataProvider
	Recorder InteractionRecorder
	Store    Pinger
	Breaker  BreakerStater
	Version  string

	// RequestTimeout bounds one recommendation request. Zero uses 10s.
	RequestTimeout time.Duration
}

// Handler serves the recommendation API.
type Handler struct {
	engine         *recommend.Engine
	provider       recommend.DataProvider
	recorder       InteractionRecorder
	store          Pinger
	breaker        BreakerStater
	version        string
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Engine == nil {
		return nil, errors.New("engine is required")
	}
	if deps.Provider == nil {
		return nil, errors.New("data provider is required")
	}
	if deps.Recorder == nil {
		return nil, errors.New("interaction recorder is required")
	}

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	return &Handler{
		engine:         deps.Engine,
		provider:       deps.Provider,
		recorder:       deps.Recorder,
		store:          deps.Store,
		breaker:        deps.Breaker,
		version:        version,
		requestTimeout: timeout,
		startTime:      time.Now(),
	}, nil
}
