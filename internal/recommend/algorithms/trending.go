// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package algorithms

import (
	"math"
	"time"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

// Trending scoring constants.
const (
	trendingHotThreshold     = 80.0
	trendingHotWeight        = 0.5
	trendingViewWeight       = 0.01
	trendingBookmarkWeight   = 0.5
	trendingCitationWeight   = 2.0
	trendingEngagementCap    = 30.0
	trendingEngagementReason = 50.0
	trendingFieldPoints      = 20.0
	trendingMinScore         = 25.0
	trendingConfidenceBase   = 100.0

	ReasonTrending        = "Currently trending in the community"
	ReasonHighEngagement  = "High community engagement"
	ReasonTrendingInField = "Trending in your field of interest"
)

// Trending scores candidates by community popularity:
//
//	score = 0.5 * trendingScore (only above 80)
//	      + min(0.01 * views + 0.5 * bookmarks + 2 * citations, 30)
//	      + 20 when a category matches the research interests
//
// Articles in the reading history are never returned and only scores above
// 25 are kept.
type Trending struct{}

// NewTrending creates a trending scorer.
func NewTrending() *Trending {
	return &Trending{}
}

// Name returns the algorithm identifier.
func (t *Trending) Name() recommend.Algorithm {
	return recommend.AlgorithmTrending
}

// Score ranks candidates by popularity. now is unused; popularity signals are
// precomputed on the item.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (t *Trending) Score(profile recommend.UserProfile, candidates []recommend.Item, _ time.Time) []recommend.RecommendationScore {
	read := stringSet(profile.ReadingHistory)
	interests := stringSet(profile.ResearchInterests)

	scores := make([]recommend.RecommendationScore, 0, len(candidates))
	for i := range candidates {
		item := &candidates[i]
		if _, ok := read[item.ID]; ok {
			continue
		}

		var score float64
		reasons := make([]string, 0, 3)

		if item.TrendingScore > trendingHotThreshold {
			score += item.TrendingScore * trendingHotWeight
			reasons = append(reasons, ReasonTrending)
		}

		raw := engagement(item)
		score += math.Min(raw, trendingEngagementCap)
		if raw > trendingEngagementReason {
			reasons = append(reasons, ReasonHighEngagement)
		}

		if intersects(item.Categories, interests) {
			score += trendingFieldPoints
			reasons = append(reasons, ReasonTrendingInField)
		}

		if !(score > trendingMinScore) {
			continue
		}

		scores = append(scores, recommend.RecommendationScore{
			ArticleID:  item.ID,
			Score:      score,
			Reasons:    reasons,
			Confidence: confidenceFor(score, trendingConfidenceBase),
			Algorithm:  recommend.AlgorithmTrending,
		})
	}

	sortByScore(scores)
	return scores
}

// engagement is the raw, uncapped community engagement of an item.
func engagement(item *recommend.Item) float64 {
	return float64(item.ViewCount)*trendingViewWeight +
		float64(item.BookmarkCount)*trendingBookmarkWeight +
		float64(item.CitationCount)*trendingCitationWeight
}
