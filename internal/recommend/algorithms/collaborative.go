// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package algorithms

import (
	"github.com/tomtom215/scholarwise/internal/recommend"
)

// Collaborative scoring constants.
const (
	collabMatchPoints    = 25.0
	collabBookmarkPoints = 10.0
	collabLikePoints     = 5.0
	collabAreaPoints     = 15.0
	collabMinScore       = 20.0
	collabConfidenceBase = 80.0

	ReasonPeerBookmarked = "Bookmarked by similar researchers"
	ReasonPeerLiked      = "Liked by users with similar interests"
	ReasonPopularInArea  = "Popular in your research area"
)

// Collaborative scores candidates from the endorsements of peers, where a
// peer is any other user whose bookmark or like falls in a category the
// target user has interacted with.
//
// Each matching peer endorsement is worth 25 points, plus 10 per bookmark and
// 5 per like. Candidates filed under one of the user's categories get 15 more.
// Candidates without a single peer endorsement are omitted and only scores
// above 20 are kept.
//
// Unlike the profile-based scorers this one does not consult the reading
// history, so already read articles may be returned.
type Collaborative struct{}

// NewCollaborative creates a collaborative scorer.
func NewCollaborative() *Collaborative {
	return &Collaborative{}
}

// Name returns the algorithm identifier.
func (c *Collaborative) Name() recommend.Algorithm {
	return recommend.AlgorithmCollaborative
}

// peerSignals counts endorsements of one article.
type peerSignals struct {
	bookmarks int
	likes     int
}

func (p peerSignals) total() int {
	return p.bookmarks + p.likes
}

// Score ranks candidates for userID using the interaction log.
func (c *Collaborative) Score(userID string, interactions []recommend.Interaction, candidates []recommend.Item) []recommend.RecommendationScore {
	userCategories := make(map[string]struct{})
	for i := range interactions {
		if interactions[i].UserID == userID {
			userCategories[interactions[i].Category] = struct{}{}
		}
	}

	signals := make(map[string]peerSignals)
	for i := range interactions {
		inter := &interactions[i]
		if inter.UserID == userID || !inter.Type.IsPeerSignal() {
			continue
		}
		if _, ok := userCategories[inter.Category]; !ok {
			continue
		}

		s := signals[inter.ArticleID]
		if inter.Type == recommend.InteractionBookmark {
			s.bookmarks++
		} else {
			s.likes++
		}
		signals[inter.ArticleID] = s
	}

	scores := make([]recommend.RecommendationScore, 0, len(signals))
	for i := range candidates {
		item := &candidates[i]
		s, ok := signals[item.ID]
		if !ok || s.total() == 0 {
			continue
		}

		score := float64(s.total()) * collabMatchPoints
		reasons := make([]string, 0, 3)

		if s.bookmarks > 0 {
			score += float64(s.bookmarks) * collabBookmarkPoints
			reasons = append(reasons, ReasonPeerBookmarked)
		}
		if s.likes > 0 {
			score += float64(s.likes) * collabLikePoints
			reasons = append(reasons, ReasonPeerLiked)
		}
		if intersects(item.Categories, userCategories) {
			score += collabAreaPoints
			reasons = append(reasons, ReasonPopularInArea)
		}

		if !(score > collabMinScore) {
			continue
		}

		scores = append(scores, recommend.RecommendationScore{
			ArticleID:  item.ID,
			Score:      score,
			Reasons:    reasons,
			Confidence: confidenceFor(score, collabConfidenceBase),
			Algorithm:  recommend.AlgorithmCollaborative,
		})
	}

	sortByScore(scores)
	return scores
}
