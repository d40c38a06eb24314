// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/scholarwise/internal/metrics"
)

// strategy produces the ranked, unlimited output of one algorithm.
type strategy func(e *Engine, req *Request, cfg *Config) []RecommendationScore

// strategies is the dispatch table for the closed Algorithm set.
var strategies = map[Algorithm]strategy{
	AlgorithmContentBased: func(e *Engine, req *Request, _ *Config) []RecommendationScore {
		return e.content.Score(req.Profile, req.Candidates, req.Now)
	},
	AlgorithmCollaborative: func(e *Engine, req *Request, _ *Config) []RecommendationScore {
		return e.collaborative.Score(req.UserID, req.Interactions, req.Candidates)
	},
	AlgorithmTrending: func(e *Engine, req *Request, _ *Config) []RecommendationScore {
		return e.trending.Score(req.Profile, req.Candidates, req.Now)
	},
	AlgorithmHybrid: func(e *Engine, req *Request, cfg *Config) []RecommendationScore {
		return e.combine(req, cfg)
	},
}

// Engine scores candidate articles with one of the supported strategies.
// Scoring is synchronous and holds no per-request state, so an Engine is
// safe for concurrent use.
type Engine struct {
	config   *Config
	configMu sync.RWMutex
	logger   zerolog.Logger

	content       ProfileScorer
	collaborative InteractionScorer
	trending      ProfileScorer

	requestCount      atomic.Int64
	invalidInputCount atomic.Int64
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	InvalidInput int64 `json:"invalid_input"`
}

// AlgorithmInfo describes one selectable strategy.
type AlgorithmInfo struct {
	Name        Algorithm `json:"name"`
	Weight      float64   `json:"weight,omitempty"`
	Description string    `json:"description"`
}

// NewEngine creates a recommendation engine from the three base scorers.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, content ProfileScorer, collaborative InteractionScorer, trending ProfileScorer) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if content == nil || collaborative == nil || trending == nil {
		return nil, errors.New("content, collaborative and trending scorers are required")
	}

	return &Engine{
		config:        cfg.Clone(),
		logger:        logger.With().Str("component", "recommend").Logger(),
		content:       content,
		collaborative: collaborative,
		trending:      trending,
	}, nil
}

// Recommend validates the request, runs the selected strategy and returns at
// most req.Limit entries ordered by descending score. Any malformed input
// aborts the call with an *InvalidInputError and no partial results.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := e.GetConfig()
	req = prepareRequest(req, cfg)

	logger := e.logger.With().
		Str("user_id", req.UserID).
		Str("algorithm", req.Algorithm.String()).
		Logger()

	if err := validateRequest(req); err != nil {
		e.invalidInputCount.Add(1)
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			metrics.RecordRecommendationRejected(req.Algorithm.String(), invalid.Field)
		}
		logger.Debug().Err(err).Msg("rejected recommendation request")
		return nil, err
	}

	scores := strategies[req.Algorithm](e, &req, cfg)
	if len(scores) > req.Limit {
		scores = scores[:req.Limit]
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(req.Algorithm.String(), len(req.Candidates), len(scores), elapsed)

	logger.Debug().
		Int("candidates", len(req.Candidates)).
		Int("interactions", len(req.Interactions)).
		Int("returned", len(scores)).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return &Response{
		Items:           scores,
		Algorithm:       req.Algorithm,
		TotalCandidates: len(req.Candidates),
		LatencyMS:       elapsed.Milliseconds(),
	}, nil
}

// Combine runs the hybrid blend with the current weights and returns every
// blended entry without applying a limit. Inputs are validated first, so a
// malformed record aborts the call with an *InvalidInputError.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (e *Engine) Combine(userID string, profile UserProfile, interactions []Interaction, candidates []Item, now time.Time) ([]RecommendationScore, error) {
	req := Request{
		UserID:       userID,
		Algorithm:    AlgorithmHybrid,
		Profile:      profile,
		Interactions: interactions,
		Candidates:   candidates,
		Now:          now,
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	return e.combine(&req, e.GetConfig()), nil
}

// combine blends the three strategies. Entries keep the order in which their
// article was first produced until the final stable sort.
func (e *Engine) combine(req *Request, cfg *Config) []RecommendationScore {
	type weighted struct {
		weight float64
		run    func() []RecommendationScore
	}

	sources := []weighted{
		{cfg.Weights.Content, func() []RecommendationScore {
			return e.content.Score(req.Profile, req.Candidates, req.Now)
		}},
		{cfg.Weights.Collaborative, func() []RecommendationScore {
			return e.collaborative.Score(req.UserID, req.Interactions, req.Candidates)
		}},
		{cfg.Weights.Trending, func() []RecommendationScore {
			return e.trending.Score(req.Profile, req.Candidates, req.Now)
		}},
	}

	merged := make([]RecommendationScore, 0, len(req.Candidates))
	index := make(map[string]int, len(req.Candidates))

	// A zero weight still merges the scorer's entries so their reasons survive.
	for _, src := range sources {
		for _, s := range src.run() {
			score := s.Score * src.weight
			if i, ok := index[s.ArticleID]; ok {
				merged[i].Score += score
				merged[i].Reasons = append(merged[i].Reasons, s.Reasons...)
				continue
			}

			reasons := make([]string, 0, len(s.Reasons))
			reasons = append(reasons, s.Reasons...)
			index[s.ArticleID] = len(merged)
			merged = append(merged, RecommendationScore{
				ArticleID: s.ArticleID,
				Score:     score,
				Reasons:   reasons,
				Algorithm: AlgorithmHybrid,
			})
		}
	}

	for i := range merged {
		merged[i].Reasons = dedupReasons(merged[i].Reasons)
		merged[i].Confidence = confidence(merged[i].Score, cfg.HybridConfidenceScale)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	return merged
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()

	return e.config.Clone()
}

// UpdateConfig replaces the engine configuration. Requests already in
// flight finish with the configuration they started with.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.configMu.Lock()
	e.config = cfg.Clone()
	e.configMu.Unlock()

	metrics.RecommendationConfigUpdates.Inc()
	e.logger.Info().
		Float64("weight_content", cfg.Weights.Content).
		Float64("weight_collaborative", cfg.Weights.Collaborative).
		Float64("weight_trending", cfg.Weights.Trending).
		Msg("configuration updated")

	return nil
}

// Stats returns the current engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:     e.requestCount.Load(),
		InvalidInput: e.invalidInputCount.Load(),
	}
}

// Algorithms describes the selectable strategies with their current hybrid weights.
func (e *Engine) Algorithms() []AlgorithmInfo {
	cfg := e.GetConfig()

	infos := make([]AlgorithmInfo, 0, len(Algorithms))
	for _, alg := range Algorithms {
		infos = append(infos, AlgorithmInfo{
			Name:        alg,
			Weight:      cfg.Weights.For(alg),
			Description: algorithmDescriptions[alg],
		})
	}
	return infos
}

var algorithmDescriptions = map[Algorithm]string{
	AlgorithmHybrid:        "Weighted blend of content-based, collaborative and trending scores",
	AlgorithmContentBased:  "Similarity to research interests, preferred journals and article quality",
	AlgorithmCollaborative: "Bookmarks and likes from researchers with overlapping interests",
	AlgorithmTrending:      "Community popularity within your fields of interest",
}

// prepareRequest applies defaults and clamps the limit.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func prepareRequest(req Request, cfg *Config) Request {
	if req.Algorithm == "" {
		req.Algorithm = AlgorithmHybrid
	}
	if req.Limit == 0 {
		req.Limit = cfg.Limits.DefaultLimit
	}
	if req.Limit > cfg.Limits.MaxLimit {
		req.Limit = cfg.Limits.MaxLimit
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	return req
}

// dedupReasons removes exact duplicates, keeping first occurrences in order.
func dedupReasons(reasons []string) []string {
	seen := make(map[string]struct{}, len(reasons))
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// confidence maps a score onto [0, 1].
func confidence(score, scale float64) float64 {
	c := score / scale
	switch {
	case c > 1:
		return 1
	case !(c > 0):
		return 0
	default:
		return c
	}
}
