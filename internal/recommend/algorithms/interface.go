// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package algorithms implements the base scoring strategies of the
// recommendation engine.
//
// ContentBased and Trending implement recommend.ProfileScorer and
// Collaborative implements recommend.InteractionScorer. The hybrid blend is
// done by recommend.Engine on top of these.
//
// # Thread Safety
//
// Scorers hold no state after construction and are safe for concurrent use.
// Every call allocates its own result slice and reason lists.
package algorithms

import (
	"sort"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// stringSet builds a lookup set from a tag list.
func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// intersects reports whether any value is present in set.
func intersects(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// confidenceFor maps a score onto [0, 1] using the scorer's scale.
func confidenceFor(score, scale float64) float64 {
	if c := score / scale; c < 1 {
		return c
	}
	return 1
}

// sortByScore orders scores descending. Equal scores keep candidate order.
func sortByScore(scores []recommend.RecommendationScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}
