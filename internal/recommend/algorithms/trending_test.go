// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package algorithms

import (
	"reflect"
	"testing"

	"github.com/tomtom215/scholarwise/internal/recommend"
)

func TestTrending_Name(t *testing.T) {
	if got := NewTrending().Name(); got != recommend.AlgorithmTrending {
		t.Errorf("Name() = %q, want %q", got, recommend.AlgorithmTrending)
	}
}

func TestTrending_HotItemOutsideInterests(t *testing.T) {
	profile := recommend.UserProfile{UserID: "user1", ResearchInterests: []string{"AI"}}
	item := article("T", "astronomy")
	item.TrendingScore = 90
	item.ViewCount = 1000

	got := NewTrending().Score(profile, []recommend.Item{item}, testNow)
	if len(got) != 1 {
		t.Fatalf("len(Score()) = %d, want 1", len(got))
	}

	if !approxEqual(got[0].Score, 55) {
		t.Errorf("score = %f, want 55", got[0].Score)
	}
	if !approxEqual(got[0].Confidence, 0.55) {
		t.Errorf("confidence = %f, want 0.55", got[0].Confidence)
	}
	wantReasons := []string{ReasonTrending}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons = %v, want %v", got[0].Reasons, wantReasons)
	}
}

func TestTrending_Rules(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI"},
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
			name: "engagement is capped at thirty but reason uses raw value",
			item: func() recommend.Item {
				it := article("A", "physics")
				it.CitationCount = 40 // raw engagement 80
				return it
			},
			wantScore:   30,
			wantReasons: []string{ReasonHighEngagement},
		},
		{
			name: "engagement of exactly fifty gets no reason",
			item: func() recommend.Item {
				it := article("B", "AI")
				it.BookmarkCount = 100 // raw engagement 50
				return it
			},
			wantScore:   50,
			wantReasons: []string{ReasonTrendingInField},
		},
		{
			name: "trending score of exactly eighty is not hot",
			item: func() recommend.Item {
				it := article("C", "AI")
				it.TrendingScore = 80
				it.CitationCount = 5
				return it
			},
			wantScore:   30,
			wantReasons: []string{ReasonTrendingInField},
		},
		{
			name: "all signals",
			item: func() recommend.Item {
				it := article("D", "AI")
				it.TrendingScore = 100
				it.ViewCount = 2000
				it.BookmarkCount = 20
				it.CitationCount = 15
				return it
			},
			wantScore:   50 + 30 + 20,
			wantReasons: []string{ReasonTrending, ReasonHighEngagement, ReasonTrendingInField},
		},
		{
			name: "field match alone is not enough",
			item: func() recommend.Item {
				return article("E", "AI")
			},
			wantDropped: true,
		},
		{
			name: "exactly twenty five is dropped",
			item: func() recommend.Item {
				it := article("F", "AI")
				it.CitationCount = 2 // 4 + 20 = 24
				it.ViewCount = 100   // +1
				return it
			},
			wantDropped: true,
		},
		{
			name: "read article is skipped",
			item: func() recommend.Item {
				it := article("read", "AI")
				it.TrendingScore = 99
				it.CitationCount = 100
				return it
			},
			wantDropped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTrending().Score(profile, []recommend.Item{tt.item()}, testNow)
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

func TestTrending_ExcludesReadingHistoryAndSorts(t *testing.T) {
	profile := recommend.UserProfile{
		UserID:            "user1",
		ResearchInterests: []string{"AI"},
		ReadingHistory:    []string{"b"},
	}

	candidates := make([]recommend.Item, 0, 4)
	for i, id := range []string{"a", "b", "c", "d"} {
		it := article(id, "AI")
		it.TrendingScore = float64(81 + i*5)
		candidates = append(candidates, it)
	}

	scorer := NewTrending()
	first := scorer.Score(profile, candidates, testNow)
	assertSortedAbove(t, first, trendingMinScore)

	for _, s := range first {
		if s.ArticleID == "b" {
			t.Error("read article b was returned")
		}
	}

	wantOrder := []string{"d", "c", "a"}
	if len(first) != len(wantOrder) {
		t.Fatalf("len(Score()) = %d, want %d", len(first), len(wantOrder))
	}
	for i, id := range wantOrder {
		if first[i].ArticleID != id {
			t.Errorf("position %d = %s, want %s", i, first[i].ArticleID, id)
		}
	}

	if second := scorer.Score(profile, candidates, testNow); !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call differs:\n%+v\n%+v", first, second)
	}
}
