// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package algorithms

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func article(id string, categories ...string) recommend.Item {
	return recommend.Item{
		ID:              id,
		Categories:      categories,
		PublicationDate: testNow.AddDate(0, -6, 0),
	}
}

func assertSortedAbove(t *testing.T, scores []recommend.RecommendationScore, threshold float64) {
	t.Helper()
	for i, s := range scores {
		if s.Score <= threshold {
			t.Errorf("entry %s has score %f, want > %f", s.ArticleID, s.Score, threshold)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			t.Errorf("entry %s has confidence %f outside [0, 1]", s.ArticleID, s.Confidence)
		}
		if i > 0 && scores[i-1].Score < s.Score {
			t.Errorf("not sorted at %d: %f < %f", i, scores[i-1].Score, s.Score)
		}
	}
}

func TestContentBased_Name(t *testing.T) {
	if got := NewContentBased().Name(); got != recommend.AlgorithmContentBased {
		t.Errorf("Name() = %q, want %q", got, recommend.AlgorithmContentBased)
	}
}

func TestContentBased_InterestRecencyAndQuality(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"neuroscience"},
	}
	item := article("N1", "neuroscience")
	item.PublicationDate = testNow
	item.Metrics = recommend.ItemMetrics{ImpactScore: 50, NoveltyScore: 50, ReadabilityScore: 12}

	got := NewContentBased().Score(profile, []recommend.Item{item}, testNow)
	if len(got) != 1 {
		t.Fatalf("len(Score()) = %d, want 1", len(got))
	}

	if !approxEqual(got[0].Score, 77.5) {
		t.Errorf("score = %f, want 77.5", got[0].Score)
	}
	if !approxEqual(got[0].Confidence, 0.775) {
		t.Errorf("confidence = %f, want 0.775", got[0].Confidence)
	}
	wantReasons := []string{ReasonInterestMatch, ReasonRecent}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons = %v, want %v", got[0].Reasons, wantReasons)
	}
	if got[0].Algorithm != recommend.AlgorithmContentBased {
		t.Errorf("algorithm = %s, want content-based", got[0].Algorithm)
	}
}

func TestContentBased_Rules(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI", "genomics"},
		PreferredSources:  []string{"Nature"},
		ReadingHistory:    []string{"read"},
	}

	tests := []struct {
		name        string
		item        func() recommend.Item
		wantScore   float64
		wantReasons []string
		wantDropped bool
	}{
		{
			name: "interest and preferred source",
			item: func() recommend.Item {
				it := article("A", "AI")
				it.Source = "Nature"
				return it
			},
			wantScore:   55,
			wantReasons: []string{ReasonInterestMatch, ReasonPreferredSource},
		},
		{
			name: "published exactly seven days ago is recent",
			item: func() recommend.Item {
				it := article("B", "genomics")
				it.PublicationDate = testNow.AddDate(0, 0, -7)
				return it
			},
			wantScore:   60,
			wantReasons: []string{ReasonInterestMatch, ReasonRecent},
		},
		{
			name: "seven and a half days still counts as seven",
			item: func() recommend.Item {
				it := article("C", "genomics")
				it.PublicationDate = testNow.Add(-(7*24 + 12) * time.Hour)
				return it
			},
			wantScore:   60,
			wantReasons: []string{ReasonInterestMatch, ReasonRecent},
		},
		{
			name: "eight days is not recent",
			item: func() recommend.Item {
				it := article("D", "genomics")
				it.PublicationDate = testNow.AddDate(0, 0, -8)
				return it
			},
			wantScore:   40,
			wantReasons: []string{ReasonInterestMatch},
		},
		{
			name: "quality boost alone adds no reason",
			item: func() recommend.Item {
				it := article("E", "physics")
				it.Metrics = recommend.ItemMetrics{ImpactScore: 100, NoveltyScore: 100}
				return it
			},
			wantScore:   35,
			wantReasons: []string{},
		},
		{
			name: "exactly thirty is dropped",
			item: func() recommend.Item {
				it := article("F", "physics")
				it.Source = "Nature"
				it.Metrics = recommend.ItemMetrics{ImpactScore: 75}
				return it
			},
			wantDropped: true,
		},
		{
			name: "read article is skipped even with a perfect match",
			item: func() recommend.Item {
				it := article("read", "AI")
				it.Source = "Nature"
				it.PublicationDate = testNow
				return it
			},
			wantDropped: true,
		},
		{
			name: "empty source is not a preferred journal",
			item: func() recommend.Item {
				return article("G", "AI")
			},
			wantScore:   40,
			wantReasons: []string{ReasonInterestMatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewContentBased().Score(profile, []recommend.Item{tt.item()}, testNow)
			if tt.wantDropped {
				if len(got) != 0 {
					t.Errorf("expected no entries, got %+v", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("len(Score()) = %d, want 1", len(got))
			}
			if !approxEqual(got[0].Score, tt.wantScore) {
				t.Errorf("score = %f, want %f", got[0].Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got[0].Reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", got[0].Reasons, tt.wantReasons)
			}
		})
	}
}

func TestContentBased_EmptySourceMatchesEmptyPreference(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI"},
		PreferredSources:  []string{""},
	}

	got := NewContentBased().Score(profile, []recommend.Item{article("G", "AI")}, testNow)
	if len(got) != 1 {
		t.Fatalf("len(Score()) = %d, want 1", len(got))
	}
	if !approxEqual(got[0].Score, 55) {
		t.Errorf("score = %f, want 55", got[0].Score)
	}
	wantReasons := []string{ReasonInterestMatch, ReasonPreferredSource}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons = %v, want %v", got[0].Reasons, wantReasons)
	}
}

func TestContentBased_DropsNaNScores(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI"},
	}
	bad := article("nan", "AI")
	bad.PublicationDate = testNow
	bad.Metrics.ImpactScore = math.NaN()
	good := article("ok", "AI")
	good.PublicationDate = testNow

	got := NewContentBased().Score(profile, []recommend.Item{bad, good}, testNow)
	if len(got) != 1 || got[0].ArticleID != "ok" {
		t.Fatalf("Score() = %+v, want only article ok", got)
	}
	assertSortedAbove(t, got, contentMinScore)
}

func TestContentBased_SortedAndIdempotent(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI"},
		PreferredSources:  []string{"JMLR"},
	}

	candidates := []recommend.Item{article("low", "AI"), article("high", "AI"), article("mid", "AI"), article("none", "history")}
	candidates[1].Source = "JMLR"
	candidates[1].PublicationDate = testNow
	candidates[2].Metrics.ImpactScore = 60

	scorer := NewContentBased()
	first := scorer.Score(profile, candidates, testNow)
	assertSortedAbove(t, first, contentMinScore)

	wantOrder := []string{"high", "mid", "low"}
	if len(first) != len(wantOrder) {
		t.Fatalf("len(Score()) = %d, want %d", len(first), len(wantOrder))
	}
	for i, id := range wantOrder {
		if first[i].ArticleID != id {
			t.Errorf("position %d = %s, want %s", i, first[i].ArticleID, id)
		}
	}

	second := scorer.Score(profile, candidates, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call differs:\n%+v\n%+v", first, second)
	}
}

func TestContentBased_EmptyInputs(t *testing.T) {
	got := NewContentBased().Score(recommend.DefaultProfile("user1"), nil, testNow)
	if got == nil || len(got) != 0 {
		t.Errorf("Score(nil) = %v, want empty non-nil slice", got)
	}
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name      string
		published time.Time
		want      int
	}{
		{"same instant", testNow, 0},
		{"23 hours", testNow.Add(-23 * time.Hour), 0},
		{"exactly one day", testNow.Add(-24 * time.Hour), 1},
		{"future date", testNow.Add(36 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysSince(tt.published, testNow); got != tt.want {
				t.Errorf("daysSince() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		score, scale, want float64
	}{
		{50, 80, 0.625},
		{80, 80, 1},
		{120, 80, 1},
		{0, 100, 0},
	}

	for _, tt := range tests {
		if got := confidenceFor(tt.score, tt.scale); !approxEqual(got, tt.want) {
			t.Errorf("confidenceFor(%f, %f) = %f, want %f", tt.score, tt.scale, got, tt.want)
		}
	}
}
