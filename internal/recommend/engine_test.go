// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// mockProfileScorer implements ProfileScorer for testing.
type mockProfileScorer struct {
	name    Algorithm
	results []RecommendationScore
	calls   atomic.Int32
}

func (m *mockProfileScorer) Name() Algorithm {
	return m.name
}

func (m *mockProfileScorer) Score(_ UserProfile, _ []Item, _ time.Time) []RecommendationScore {
	m.calls.Add(1)
	return m.results
}

// mockInteractionScorer implements InteractionScorer for testing.
type mockInteractionScorer struct {
	results []RecommendationScore
	calls   atomic.Int32
}

func (m *mockInteractionScorer) Name() Algorithm {
	return AlgorithmCollaborative
}

func (m *mockInteractionScorer) Score(_ string, _ []Interaction, _ []Item) []RecommendationScore {
	m.calls.Add(1)
	return m.results
}

type testScorers struct {
	content       *mockProfileScorer
	collaborative *mockInteractionScorer
	trending      *mockProfileScorer
}

func newTestEngine(t *testing.T, cfg *Config) (*Engine, *testScorers) {
	t.Helper()

	s := &testScorers{
		content:       &mockProfileScorer{name: AlgorithmContentBased},
		collaborative: &mockInteractionScorer{},
		trending:      &mockProfileScorer{name: AlgorithmTrending},
	}

	engine, err := NewEngine(cfg, zerolog.Nop(), s.content, s.collaborative, s.trending)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine, s
}

func testItem(id string) Item {
	return Item{
		ID:              id,
		Title:           "Article " + id,
		Categories:      []string{"AI"},
		PublicationDate: testNow.AddDate(0, 0, -30),
	}
}

func testRequest(alg Algorithm, ids ...string) Request {
	candidates := make([]Item, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, testItem(id))
	}
	return Request{
		UserID:     "user1",
		Algorithm:  alg,
		Profile:    DefaultProfile("user1"),
		Candidates: candidates,
		Now:        testNow,
	}
}

func score(id string, value float64, alg Algorithm, reasons ...string) RecommendationScore {
	return RecommendationScore{
		ArticleID:  id,
		Score:      value,
		Reasons:    reasons,
		Confidence: math.Min(value/100, 1),
		Algorithm:  alg,
	}
}

func mustCombine(t *testing.T, e *Engine, userID string, profile UserProfile, interactions []Interaction, candidates []Item, now time.Time) []RecommendationScore {
	t.Helper()
	got, err := e.Combine(userID, profile, interactions, candidates, now)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	return got
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewEngine(t *testing.T) {
	content := &mockProfileScorer{name: AlgorithmContentBased}
	collab := &mockInteractionScorer{}
	trending := &mockProfileScorer{name: AlgorithmTrending}

	t.Run("nil config uses defaults", func(t *testing.T) {
		engine, err := NewEngine(nil, zerolog.Nop(), content, collab, trending)
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if got := engine.GetConfig().Weights; got != DefaultConfig().Weights {
			t.Errorf("weights = %+v, want defaults", got)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.HybridConfidenceScale = -1
		if _, err := NewEngine(cfg, zerolog.Nop(), content, collab, trending); err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("missing scorer is rejected", func(t *testing.T) {
		if _, err := NewEngine(nil, zerolog.Nop(), content, nil, trending); err == nil {
			t.Error("expected error for nil collaborative scorer")
		}
	})

	t.Run("caller config is copied", func(t *testing.T) {
		cfg := DefaultConfig()
		engine, err := NewEngine(cfg, zerolog.Nop(), content, collab, trending)
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		cfg.Weights.Content = 0.9
		if got := engine.GetConfig().Weights.Content; got != 0.4 {
			t.Errorf("engine weight changed through caller config: %f", got)
		}
	})
}

func TestEngine_Combine_WeightedMerge(t *testing.T) {
	engine, s := newTestEngine(t, nil)

	s.content.results = []RecommendationScore{
		score("Y", 50, AlgorithmContentBased, "Matches your research interests", "Recently published"),
	}
	s.trending.results = []RecommendationScore{
		score("Y", 40, AlgorithmTrending, "Recently published", "Currently trending in the community"),
	}

	req := testRequest(AlgorithmHybrid, "Y")
	got := mustCombine(t, engine, req.UserID, req.Profile, req.Interactions, req.Candidates, testNow)

	if len(got) != 1 {
		t.Fatalf("len(Combine()) = %d, want 1", len(got))
	}

	y := got[0]
	if !approxEqual(y.Score, 30) {
		t.Errorf("score = %f, want 30", y.Score)
	}
	if !approxEqual(y.Confidence, 0.375) {
		t.Errorf("confidence = %f, want 0.375", y.Confidence)
	}
	if y.Algorithm != AlgorithmHybrid {
		t.Errorf("algorithm = %s, want hybrid", y.Algorithm)
	}

	wantReasons := []string{"Matches your research interests", "Recently published", "Currently trending in the community"}
	if !reflect.DeepEqual(y.Reasons, wantReasons) {
		t.Errorf("reasons = %v, want %v", y.Reasons, wantReasons)
	}
}

func TestEngine_Combine_AllSources(t *testing.T) {
	engine, s := newTestEngine(t, nil)

	s.content.results = []RecommendationScore{
		score("A", 60, AlgorithmContentBased, "Matches your research interests"),
		score("B", 35, AlgorithmContentBased, "From your preferred journal"),
	}
	s.collaborative.results = []RecommendationScore{
		score("C", 80, AlgorithmCollaborative, "Bookmarked by similar researchers"),
		score("A", 40, AlgorithmCollaborative, "Liked by users with similar interests"),
	}
	s.trending.results = []RecommendationScore{
		score("B", 100, AlgorithmTrending, "Currently trending in the community"),
	}

	got := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)

	// A: 60*0.4 + 40*0.35 = 38, B: 35*0.4 + 100*0.25 = 39, C: 80*0.35 = 28
	want := map[string]float64{"A": 38, "B": 39, "C": 28}
	wantOrder := []string{"B", "A", "C"}

	if len(got) != len(want) {
		t.Fatalf("len(Combine()) = %d, want %d", len(got), len(want))
	}

	seen := make(map[string]bool)
	for i, rec := range got {
		if seen[rec.ArticleID] {
			t.Errorf("duplicate article %s", rec.ArticleID)
		}
		seen[rec.ArticleID] = true

		if rec.ArticleID != wantOrder[i] {
			t.Errorf("position %d = %s, want %s", i, rec.ArticleID, wantOrder[i])
		}
		if !approxEqual(rec.Score, want[rec.ArticleID]) {
			t.Errorf("%s score = %f, want %f", rec.ArticleID, rec.Score, want[rec.ArticleID])
		}
		if !approxEqual(rec.Confidence, rec.Score/80) {
			t.Errorf("%s confidence = %f, want %f", rec.ArticleID, rec.Confidence, rec.Score/80)
		}
		if i > 0 && got[i-1].Score < rec.Score {
			t.Errorf("output not sorted at %d: %f < %f", i, got[i-1].Score, rec.Score)
		}
	}
}

func TestEngine_Combine_ConfidenceClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Content: 1, Collaborative: 1, Trending: 1}
	engine, s := newTestEngine(t, cfg)

	s.content.results = []RecommendationScore{score("X", 100, AlgorithmContentBased)}
	s.collaborative.results = []RecommendationScore{score("X", 90, AlgorithmCollaborative)}
	s.trending.results = []RecommendationScore{score("X", 90, AlgorithmTrending)}

	got := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
	if len(got) != 1 {
		t.Fatalf("len(Combine()) = %d, want 1", len(got))
	}
	if got[0].Confidence != 1 {
		t.Errorf("confidence = %f, want 1", got[0].Confidence)
	}
	if got[0].Reasons == nil {
		t.Error("reasons should be an empty slice, not nil")
	}
}

func TestEngine_Combine_TiesKeepFirstSeenOrder(t *testing.T) {
	engine, s := newTestEngine(t, nil)

	// P and Q both end at 20
	s.content.results = []RecommendationScore{score("P", 50, AlgorithmContentBased)}
	s.trending.results = []RecommendationScore{score("Q", 80, AlgorithmTrending)}

	first := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
	for i := 0; i < 10; i++ {
		again := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestEngine_Combine_DoesNotAliasScorerReasons(t *testing.T) {
	engine, s := newTestEngine(t, nil)

	s.content.results = []RecommendationScore{score("A", 60, AlgorithmContentBased, "Matches your research interests")}
	s.collaborative.results = []RecommendationScore{score("A", 40, AlgorithmCollaborative, "Bookmarked by similar researchers")}

	got := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
	got[0].Reasons[0] = "mutated"

	if s.content.results[0].Reasons[0] != "Matches your research interests" {
		t.Errorf("scorer reasons were mutated through combined output: %v", s.content.results[0].Reasons)
	}
	if len(s.content.results[0].Reasons) != 1 {
		t.Errorf("scorer reasons grew to %v", s.content.results[0].Reasons)
	}
}

func TestEngine_Combine_ZeroWeightKeepsReasons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Trending = 0
	engine, s := newTestEngine(t, cfg)

	s.content.results = []RecommendationScore{score("C", 50, AlgorithmContentBased)}
	s.trending.results = []RecommendationScore{score("T", 90, AlgorithmTrending, "Currently trending in the community")}

	got := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
	if len(got) != 2 {
		t.Fatalf("len(Combine()) = %d, want 2: %+v", len(got), got)
	}
	if got[0].ArticleID != "C" || !approxEqual(got[0].Score, 20) {
		t.Errorf("first entry = %+v, want C with score 20", got[0])
	}

	tr := got[1]
	if tr.ArticleID != "T" || tr.Score != 0 || tr.Confidence != 0 {
		t.Errorf("zero-weight entry = %+v, want T with score 0 and confidence 0", tr)
	}
	if !reflect.DeepEqual(tr.Reasons, []string{"Currently trending in the community"}) {
		t.Errorf("zero-weight reasons = %v", tr.Reasons)
	}
	if s.trending.calls.Load() != 1 {
		t.Errorf("trending scorer called %d times, want 1", s.trending.calls.Load())
	}
}

func TestEngine_Combine_RejectsMalformedInput(t *testing.T) {
	nan := testItem("nan")
	nan.Metrics.ImpactScore = math.NaN()

	noID := testItem("")

	outOfRange := testItem("neg")
	outOfRange.ViewCount = -100000

	tests := []struct {
		name       string
		userID     string
		candidates []Item
		wantField  string
	}{
		{"missing user", "", []Item{testItem("A")}, "userId"},
		{"NaN metric", "user1", []Item{nan}, "candidates[0].metrics.impactScore"},
		{"empty article id", "user1", []Item{testItem("A"), noID}, "candidates[1].id"},
		{"negative count", "user1", []Item{outOfRange}, "candidates[0].viewCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, s := newTestEngine(t, nil)
			s.content.results = []RecommendationScore{score("A", 60, AlgorithmContentBased)}

			got, err := engine.Combine(tt.userID, DefaultProfile("user1"), nil, tt.candidates, testNow)
			if !IsInvalidInput(err) {
				t.Fatalf("Combine() error = %v, want InvalidInputError", err)
			}
			if got != nil {
				t.Errorf("Combine() returned partial results: %+v", got)
			}

			var invalid *InvalidInputError
			if errors.As(err, &invalid) && invalid.Field != tt.wantField {
				t.Errorf("field = %q, want %q", invalid.Field, tt.wantField)
			}
			if calls := s.content.calls.Load() + s.collaborative.calls.Load() + s.trending.calls.Load(); calls != 0 {
				t.Errorf("scorers ran %d times on malformed input", calls)
			}
		})
	}
}

func TestEngine_Recommend_Dispatch(t *testing.T) {
	tests := []struct {
		name         string
		algorithm    Algorithm
		wantContent  int32
		wantCollab   int32
		wantTrending int32
		wantAlg      Algorithm
	}{
		{"content-based", AlgorithmContentBased, 1, 0, 0, AlgorithmContentBased},
		{"collaborative", AlgorithmCollaborative, 0, 1, 0, AlgorithmCollaborative},
		{"trending", AlgorithmTrending, 0, 0, 1, AlgorithmTrending},
		{"hybrid", AlgorithmHybrid, 1, 1, 1, AlgorithmHybrid},
		{"empty defaults to hybrid", "", 1, 1, 1, AlgorithmHybrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, s := newTestEngine(t, nil)
			s.content.results = []RecommendationScore{score("A", 60, AlgorithmContentBased)}
			s.collaborative.results = []RecommendationScore{score("A", 40, AlgorithmCollaborative)}
			s.trending.results = []RecommendationScore{score("A", 30, AlgorithmTrending)}

			resp, err := engine.Recommend(context.Background(), testRequest(tt.algorithm, "A"))
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}

			if resp.Algorithm != tt.wantAlg {
				t.Errorf("response algorithm = %s, want %s", resp.Algorithm, tt.wantAlg)
			}
			if resp.TotalCandidates != 1 {
				t.Errorf("TotalCandidates = %d, want 1", resp.TotalCandidates)
			}
			if got := s.content.calls.Load(); got != tt.wantContent {
				t.Errorf("content calls = %d, want %d", got, tt.wantContent)
			}
			if got := s.collaborative.calls.Load(); got != tt.wantCollab {
				t.Errorf("collaborative calls = %d, want %d", got, tt.wantCollab)
			}
			if got := s.trending.calls.Load(); got != tt.wantTrending {
				t.Errorf("trending calls = %d, want %d", got, tt.wantTrending)
			}
			for _, item := range resp.Items {
				if item.Algorithm != tt.wantAlg {
					t.Errorf("item algorithm = %s, want %s", item.Algorithm, tt.wantAlg)
				}
			}
		})
	}
}

func TestEngine_Recommend_Limit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.DefaultLimit = 3
	cfg.Limits.MaxLimit = 5

	results := make([]RecommendationScore, 0, 8)
	for i := 0; i < 8; i++ {
		results = append(results, score(string(rune('a'+i)), float64(100-i), AlgorithmContentBased))
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 3},
		{"explicit limit", 2, 2},
		{"above max is clamped", 50, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, s := newTestEngine(t, cfg)
			s.content.results = results

			req := testRequest(AlgorithmContentBased, "a")
			req.Limit = tt.limit

			resp, err := engine.Recommend(context.Background(), req)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(resp.Items) != tt.want {
				t.Errorf("len(Items) = %d, want %d", len(resp.Items), tt.want)
			}
			if resp.Items[0].ArticleID != "a" {
				t.Errorf("first item = %s, want a", resp.Items[0].ArticleID)
			}
		})
	}
}

func TestEngine_Recommend_InvalidInput(t *testing.T) {
	validInteraction := Interaction{
		UserID:    "user2",
		ArticleID: "A",
		Type:      InteractionBookmark,
		Timestamp: testNow.Add(-time.Hour),
		Category:  "AI",
	}

	tests := []struct {
		name      string
		modify    func(*Request)
		wantField string
	}{
		{
			name:      "missing user id",
			modify:    func(r *Request) { r.UserID = "" },
			wantField: "userId",
		},
		{
			name:      "unknown algorithm",
			modify:    func(r *Request) { r.Algorithm = "random" },
			wantField: "algorithm",
		},
		{
			name:      "negative limit",
			modify:    func(r *Request) { r.Limit = -1 },
			wantField: "limit",
		},
		{
			name:      "profile without user id",
			modify:    func(r *Request) { r.Profile.UserID = "" },
			wantField: "profile.userId",
		},
		{
			name:      "candidate without id",
			modify:    func(r *Request) { r.Candidates[1].ID = "" },
			wantField: "candidates[1].id",
		},
		{
			name:      "candidate without publication date",
			modify:    func(r *Request) { r.Candidates[0].PublicationDate = time.Time{} },
			wantField: "candidates[0].publicationDate",
		},
		{
			name:      "candidate metric out of range",
			modify:    func(r *Request) { r.Candidates[1].Metrics.ImpactScore = 140 },
			wantField: "candidates[1].metrics.impactScore",
		},
		{
			name:      "candidate with empty category",
			modify:    func(r *Request) { r.Candidates[0].Categories = []string{"AI", ""} },
			wantField: "candidates[0].categories[1]",
		},
		{
			name:      "duplicate candidate ids",
			modify:    func(r *Request) { r.Candidates[1].ID = "A" },
			wantField: "candidates[1].id",
		},
		{
			name: "interaction with unknown type",
			modify: func(r *Request) {
				bad := validInteraction
				bad.Type = "download"
				r.Interactions = []Interaction{validInteraction, bad}
			},
			wantField: "interactions[1].interactionType",
		},
		{
			name: "interaction without timestamp",
			modify: func(r *Request) {
				bad := validInteraction
				bad.Timestamp = time.Time{}
				r.Interactions = []Interaction{bad}
			},
			wantField: "interactions[0].timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, s := newTestEngine(t, nil)
			s.content.results = []RecommendationScore{score("A", 60, AlgorithmContentBased)}

			req := testRequest(AlgorithmHybrid, "A", "B")
			req.Interactions = []Interaction{validInteraction}
			tt.modify(&req)

			resp, err := engine.Recommend(context.Background(), req)
			if err == nil {
				t.Fatalf("Recommend() = %+v, want error", resp)
			}
			if resp != nil {
				t.Errorf("expected no partial response, got %+v", resp)
			}

			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %T %v, want *InvalidInputError", err, err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", invalid.Field, tt.wantField)
			}
			if !IsInvalidInput(err) {
				t.Error("IsInvalidInput() = false, want true")
			}

			if calls := s.content.calls.Load() + s.collaborative.calls.Load() + s.trending.calls.Load(); calls != 0 {
				t.Errorf("scorers called %d times before validation failed", calls)
			}
		})
	}
}

func TestEngine_Recommend_EmptyCandidates(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	resp, err := engine.Recommend(context.Background(), testRequest(AlgorithmHybrid))
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(resp.Items))
	}
}

func TestEngine_Recommend_CanceledContext(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Recommend(ctx, testRequest(AlgorithmHybrid, "A")); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestEngine_Stats(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	_, _ = engine.Recommend(context.Background(), testRequest(AlgorithmTrending, "A"))
	_, _ = engine.Recommend(context.Background(), testRequest("nope", "A"))

	stats := engine.Stats()
	if stats.Requests != 2 {
		t.Errorf("Requests = %d, want 2", stats.Requests)
	}
	if stats.InvalidInput != 1 {
		t.Errorf("InvalidInput = %d, want 1", stats.InvalidInput)
	}
}

func TestEngine_UpdateConfig(t *testing.T) {
	engine, s := newTestEngine(t, nil)
	s.content.results = []RecommendationScore{score("A", 50, AlgorithmContentBased)}

	cfg := engine.GetConfig()
	cfg.Weights = Weights{Content: 1}
	if err := engine.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}

	got := mustCombine(t, engine, "user1", DefaultProfile("user1"), nil, nil, testNow)
	if len(got) != 1 || !approxEqual(got[0].Score, 50) {
		t.Errorf("Combine() after update = %+v, want score 50", got)
	}

	t.Run("invalid config keeps previous", func(t *testing.T) {
		bad := engine.GetConfig()
		bad.Weights.Content = -1
		if err := engine.UpdateConfig(bad); err == nil {
			t.Error("expected error for negative weight")
		}
		if engine.GetConfig().Weights.Content != 1 {
			t.Error("invalid update was applied")
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if err := engine.UpdateConfig(nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("GetConfig returns a copy", func(t *testing.T) {
		c := engine.GetConfig()
		c.Weights.Content = 0.123
		if engine.GetConfig().Weights.Content == 0.123 {
			t.Error("GetConfig exposed internal state")
		}
	})
}

func TestEngine_Algorithms(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	infos := engine.Algorithms()
	if len(infos) != len(Algorithms) {
		t.Fatalf("len(Algorithms()) = %d, want %d", len(infos), len(Algorithms))
	}
	if infos[0].Name != AlgorithmHybrid || infos[0].Weight != 0 {
		t.Errorf("first entry = %+v, want hybrid without weight", infos[0])
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("%s has no description", info.Name)
		}
	}
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	engine, s := newTestEngine(t, nil)
	s.content.results = []RecommendationScore{score("A", 60, AlgorithmContentBased, "Matches your research interests")}
	s.collaborative.results = []RecommendationScore{score("A", 40, AlgorithmCollaborative, "Bookmarked by similar researchers")}
	s.trending.results = []RecommendationScore{score("B", 70, AlgorithmTrending, "Currently trending in the community")}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				resp, err := engine.Recommend(context.Background(), testRequest(AlgorithmHybrid, "A", "B"))
				if err != nil {
					t.Errorf("Recommend() error = %v", err)
					return
				}
				for _, item := range resp.Items {
					if item.Confidence < 0 || item.Confidence > 1 {
						t.Errorf("confidence %f out of range", item.Confidence)
					}
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 25; j++ {
			cfg := engine.GetConfig()
			cfg.Weights.Trending = float64(j%5) / 10
			if err := engine.UpdateConfig(cfg); err != nil {
				t.Errorf("UpdateConfig() error = %v", err)
			}
		}
	}()

	wg.Wait()
}

func TestDedupReasons(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"keeps first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"case sensitive", []string{"Trending", "trending"}, []string{"Trending", "trending"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupReasons(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupReasons(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
