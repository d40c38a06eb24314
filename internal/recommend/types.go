// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"context"
	"time"
)

// InteractionType classifies a logged user action against an article.
type InteractionType string

const (
	// InteractionView is a plain read of the article page.
	InteractionView InteractionType = "view"
	// InteractionBookmark saves the article to the user's library.
	InteractionBookmark InteractionType = "bookmark"
	// InteractionShare shares the article outside the platform.
	InteractionShare InteractionType = "share"
	// InteractionDiscuss posts in the article's discussion thread.
	InteractionDiscuss InteractionType = "discuss"
	// InteractionLike is an explicit like.
	InteractionLike InteractionType = "like"
)

// String returns the wire name of the interaction type.
func (t InteractionType) String() string {
	return string(t)
}

// IsPeerSignal reports whether the interaction counts as a peer endorsement
// for collaborative scoring. Views, shares and discussions are soft signals
// and are not counted.
func (t InteractionType) IsPeerSignal() bool {
	return t == InteractionBookmark || t == InteractionLike
}

// ExpertiseLevel is the self-declared seniority of a researcher.
// It is carried on the profile but not used in scoring yet.
type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "beginner"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseAdvanced     ExpertiseLevel = "advanced"
	ExpertiseExpert       ExpertiseLevel = "expert"
)

// ItemMetrics holds the externally computed quality metrics of an article.
// Every value is on a 0-100 scale.
type ItemMetrics struct {
	ImpactScore      float64 `json:"impactScore" validate:"gte=0,lte=100"`
	NoveltyScore     float64 `json:"noveltyScore" validate:"gte=0,lte=100"`
	ReadabilityScore float64 `json:"readabilityScore" validate:"gte=0,lte=100"`
}

// Item is a candidate article supplied by the catalog.
type Item struct {
	// ID is the article identifier.
	ID string `json:"id" validate:"required"`

	// Title is the article title. Only used when rendering payloads.
	Title string `json:"title,omitempty"`

	// Categories is the set of category tags.
	Categories []string `json:"categories" validate:"dive,required"`

	// Keywords is the set of keyword tags.
	Keywords []string `json:"keywords,omitempty" validate:"dive,required"`

	// Source is the journal or venue name.
	Source string `json:"source"`

	// PublicationDate is when the article was published.
	PublicationDate time.Time `json:"publicationDate" validate:"required"`

	CitationCount int `json:"citationCount" validate:"gte=0"`
	ViewCount     int `json:"viewCount" validate:"gte=0"`
	BookmarkCount int `json:"bookmarkCount" validate:"gte=0"`

	// TrendingScore is an externally computed popularity signal (0-100).
	TrendingScore float64 `json:"trendingScore" validate:"gte=0,lte=100"`

	Metrics ItemMetrics `json:"metrics"`
}

// Interaction is an immutable entry of the user interaction log.
type Interaction struct {
	UserID    string          `json:"userId" validate:"required"`
	ArticleID string          `json:"articleId" validate:"required"`
	Type      InteractionType `json:"interactionType" validate:"required,oneof=view bookmark share discuss like"`

	// DurationSeconds is the optional time spent on the article.
	DurationSeconds *int `json:"duration,omitempty" validate:"omitempty,gte=0"`

	Timestamp time.Time `json:"timestamp" validate:"required"`

	// Category is the category the article was filed under when the
	// interaction happened.
	Category string   `json:"category" validate:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

// UserProfile is the researcher profile used by the content and trending scorers.
type UserProfile struct {
	UserID               string         `json:"userId" validate:"required"`
	ResearchInterests    []string       `json:"researchInterests" validate:"dive,required"`
	ReadingHistory       []string       `json:"readingHistory" validate:"dive,required"`
	BookmarkedCategories []string       `json:"bookmarkedCategories,omitempty"`
	ExpertiseLevel       ExpertiseLevel `json:"expertiseLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	PreferredSources     []string       `json:"preferredSources,omitempty"`
}

// DefaultProfile returns the fallback profile used when a user has no stored
// profile. The engine never substitutes it on its own; callers decide.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:            userID,
		ResearchInterests: []string{},
		ReadingHistory:    []string{},
		ExpertiseLevel:    ExpertiseBeginner,
	}
}

// RecommendationScore is one ranked recommendation. Values are built fresh for
// every request and never persisted.
type RecommendationScore struct {
	ArticleID  string    `json:"articleId"`
	Score      float64   `json:"score"`
	Reasons    []string  `json:"reasons"`
	Confidence float64   `json:"confidence"`
	Algorithm  Algorithm `json:"algorithm"`
}

// Request is a single GetRecommendations call with all collaborator inputs
// already resolved by the caller.
type Request struct {
	// UserID is the user the recommendations are for.
	UserID string `json:"user_id"`

	// Algorithm selects the strategy. Empty means hybrid.
	Algorithm Algorithm `json:"algorithm,omitempty"`

	// Limit caps the number of returned entries. Zero uses Config.Limits.DefaultLimit.
	Limit int `json:"limit,omitempty"`

	Profile      UserProfile   `json:"profile"`
	Interactions []Interaction `json:"interactions"`
	Candidates   []Item        `json:"candidates"`

	// Now is the reference time for recency checks. Zero means time.Now().
	Now time.Time `json:"now,omitempty"`
}

// Response is the ranked output of a recommendation request.
type Response struct {
	Items           []RecommendationScore `json:"items"`
	Algorithm       Algorithm             `json:"algorithm"`
	TotalCandidates int                   `json:"total_candidates"`
	LatencyMS       int64                 `json:"latency_ms"`
}

// ProfileScorer ranks candidates against a user profile.
// Content-based and trending scoring implement it.
type ProfileScorer interface {
	Name() Algorithm
	Score(profile UserProfile, candidates []Item, now time.Time) []RecommendationScore
}

// InteractionScorer ranks candidates from the interaction log.
// Collaborative scoring implements it.
type InteractionScorer interface {
	Name() Algorithm
	Score(userID string, interactions []Interaction, candidates []Item) []RecommendationScore
}

// DataProvider is the collaborator that supplies catalog, profile and
// interaction data to the serving layer. The engine itself never calls it.
type DataProvider interface {
	// GetCandidates returns at most limit candidate items, newest first.
	GetCandidates(ctx context.Context, userID string, limit int) ([]Item, error)

	// GetUserProfile returns the stored profile or ErrProfileNotFound.
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)

	// GetInteractions returns at most limit interactions newer than since, newest first.
	GetInteractions(ctx context.Context, since time.Time, limit int) ([]Interaction, error)

	// GetItems returns the stored items for the given IDs. Missing IDs are skipped.
	GetItems(ctx context.Context, ids []string) (map[string]Item, error)
}
