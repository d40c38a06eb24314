// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the contribution of each strategy to the hybrid score.
	Weights Weights `json:"weights" koanf:"weights"`

	// HybridConfidenceScale divides the hybrid score to produce its confidence.
	// Default: 80.
	HybridConfidenceScale float64 `json:"hybrid_confidence_scale" koanf:"hybrid_confidence_scale"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// Weights defines the hybrid blend. Weights are applied as-is and are not
// normalized, so a hybrid score stays on the same 0-100 scale as its inputs
// only while the weights sum to at most 1.
type Weights struct {
	// Content is the weight for content-based scoring.
	Content float64 `json:"content" koanf:"content"`

	// Collaborative is the weight for collaborative scoring.
	Collaborative float64 `json:"collaborative" koanf:"collaborative"`

	// Trending is the weight for trending scoring.
	Trending float64 `json:"trending" koanf:"trending"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Content + w.Collaborative + w.Trending
}

// For returns the weight of a single strategy. Hybrid has no weight of its own.
func (w Weights) For(alg Algorithm) float64 {
	switch alg {
	case AlgorithmContentBased:
		return w.Content
	case AlgorithmCollaborative:
		return w.Collaborative
	case AlgorithmTrending:
		return w.Trending
	default:
		return 0
	}
}

// ToMap returns the weights keyed by algorithm wire name.
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		AlgorithmContentBased.String():  w.Content,
		AlgorithmCollaborative.String(): w.Collaborative,
		AlgorithmTrending.String():      w.Trending,
	}
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set a limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps the number of recommendations per request.
	// Default: 100.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`

	// MaxCandidates caps the number of candidates fetched by the serving layer.
	// Default: 50.
	MaxCandidates int `json:"max_candidates" koanf:"max_candidates"`

	// MaxInteractions caps the number of interactions fetched by the serving layer.
	// Default: 5000.
	MaxInteractions int `json:"max_interactions" koanf:"max_interactions"`

	// InteractionWindowDays bounds how far back interactions are fetched.
	// Default: 90.
	InteractionWindowDays int `json:"interaction_window_days" koanf:"interaction_window_days"`
}

// DefaultConfig returns a Config with the production blend.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Content:       0.4,
			Collaborative: 0.35,
			Trending:      0.25,
		},
		HybridConfidenceScale: 80,
		Limits: LimitsConfig{
			DefaultLimit:          10,
			MaxLimit:              100,
			MaxCandidates:         50,
			MaxInteractions:       5000,
			InteractionWindowDays: 90,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for _, alg := range []Algorithm{AlgorithmContentBased, AlgorithmCollaborative, AlgorithmTrending} {
		if w := c.Weights.For(alg); w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("weights.%s must be a non-negative number, got %f", alg, w)
		}
	}
	if c.Weights.Sum() == 0 {
		return fmt.Errorf("weights must not all be zero")
	}

	if c.HybridConfidenceScale <= 0 || math.IsNaN(c.HybridConfidenceScale) {
		return fmt.Errorf("hybrid_confidence_scale must be positive, got %f", c.HybridConfidenceScale)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.MaxCandidates < 1 {
		return fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates)
	}
	if c.Limits.MaxInteractions < 0 {
		return fmt.Errorf("limits.max_interactions must be non-negative, got %d", c.Limits.MaxInteractions)
	}
	if c.Limits.InteractionWindowDays < 1 {
		return fmt.Errorf("limits.interaction_window_days must be positive, got %d", c.Limits.InteractionWindowDays)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// all nested structs contain only value types
	clone := *c
	return &clone
}
