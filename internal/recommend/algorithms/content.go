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

// Content-based scoring constants.
const (
	contentInterestPoints = 40.0
	contentSourcePoints   = 15.0
	contentRecentPoints   = 20.0
	contentRecentDays     = 7
	contentImpactWeight   = 0.2
	contentNoveltyWeight  = 0.15
	contentMinScore       = 30.0
	contentConfidenceBase = 100.0

	ReasonInterestMatch   = "Matches your research interests"
	ReasonPreferredSource = "From your preferred journal"
	ReasonRecent          = "Recently published"
)

// ContentBased scores candidates by how well they fit a researcher's
// declared profile:
//
//	score = 40 * interest match + 15 * preferred source + 20 * published within 7 days
//	      + 0.2 * impact + 0.15 * novelty
//
// Articles in the reading history are never returned and only scores above
// 30 are kept.
type ContentBased struct{}

// NewContentBased creates a content-based scorer.
func NewContentBased() *ContentBased {
	return &ContentBased{}
}

// Name returns the algorithm identifier.
func (c *ContentBased) Name() recommend.Algorithm {
	return recommend.AlgorithmContentBased
}

// Score ranks candidates against the profile. now is the reference time for
// the recency bonus.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (c *ContentBased) Score(profile recommend.UserProfile, candidates []recommend.Item, now time.Time) []recommend.RecommendationScore {
	read := stringSet(profile.ReadingHistory)
	interests := stringSet(profile.ResearchInterests)
	sources := stringSet(profile.PreferredSources)

	scores := make([]recommend.RecommendationScore, 0, len(candidates))
	for i := range candidates {
		item := &candidates[i]
		if _, ok := read[item.ID]; ok {
			continue
		}

		var score float64
		reasons := make([]string, 0, 3)

		if intersects(item.Categories, interests) {
			score += contentInterestPoints
			reasons = append(reasons, ReasonInterestMatch)
		}
		if _, ok := sources[item.Source]; ok {
			score += contentSourcePoints
			reasons = append(reasons, ReasonPreferredSource)
		}
		if daysSince(item.PublicationDate, now) <= contentRecentDays {
			score += contentRecentPoints
			reasons = append(reasons, ReasonRecent)
		}

		score += item.Metrics.ImpactScore*contentImpactWeight + item.Metrics.NoveltyScore*contentNoveltyWeight

		// NaN fails every comparison, so test for the keep condition.
		if !(score > contentMinScore) {
			continue
		}

		scores = append(scores, recommend.RecommendationScore{
			ArticleID:  item.ID,
			Score:      score,
			Reasons:    reasons,
			Confidence: confidenceFor(score, contentConfidenceBase),
			Algorithm:  recommend.AlgorithmContentBased,
		})
	}

	sortByScore(scores)
	return scores
}

// daysSince returns the number of whole days between published and now,
// rounded down. Future dates yield negative values.
func daysSince(published, now time.Time) int {
	return int(math.Floor(now.Sub(published).Hours() / 24))
}
