// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/scholarwise/internal/logging"
	"github.com/tomtom215/scholarwise/internal/models"
	"github.com/tomtom215/scholarwise/internal/recommend"
)

// GetRecommendations handles GET /api/v1/recommendations/{userID}.
//
// Query parameters:
//   - algorithm: content-based, collaborative, trending or hybrid (default)
//   - limit: maximum number of results (default from config, capped at max_limit)
//
// Profile, candidates and interactions are loaded concurrently. A user
// without a stored profile is scored against the default profile.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondRecommendError(w, r, &recommend.InvalidInputError{Field: "userId", Reason: "user id is required"})
		return
	}

	algorithm, err := recommend.ParseAlgorithm(r.URL.Query().Get("algorithm"))
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	limit, err := parseLimitParam(r)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), userID), h.requestTimeout)
	defer cancel()

	now := time.Now().UTC()
	inputs, err := h.loadInputs(ctx, userID, now)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		UserID:       userID,
		Algorithm:    algorithm,
		Limit:        limit,
		Profile:      inputs.profile,
		Interactions: inputs.interactions,
		Candidates:   inputs.candidates,
		Now:          now,
	})
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.RecommendationsResponse{
		UserID:          userID,
		Algorithm:       resp.Algorithm.String(),
		Items:           toRecommendationItems(resp.Items, inputs.candidates),
		TotalCandidates: resp.TotalCandidates,
		DefaultProfile:  inputs.defaultProfile,
		LatencyMS:       resp.LatencyMS,
	}, start)
}

// recommendInputs is the resolved data for one request.
type recommendInputs struct {
	profile        recommend.UserProfile
	defaultProfile bool
	candidates     []recommend.Item
	interactions   []recommend.Interaction
}

// loadInputs fetches profile, candidates and interactions in parallel.
// The first failure cancels the other fetches.
func (h *Handler) loadInputs(ctx context.Context, userID string, now time.Time) (*recommendInputs, error) {
	limits := h.engine.GetConfig().Limits
	since := now.AddDate(0, 0, -limits.InteractionWindowDays)

	in := &recommendInputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := h.provider.GetUserProfile(gctx, userID)
		if errors.Is(err, recommend.ErrProfileNotFound) {
			in.profile = recommend.DefaultProfile(userID)
			in.defaultProfile = true
			return nil
		}
		if err != nil {
			return err
		}
		in.profile = *profile
		return nil
	})

	g.Go(func() error {
		candidates, err := h.provider.GetCandidates(gctx, userID, limits.MaxCandidates)
		if err != nil {
			return err
		}
		in.candidates = candidates
		return nil
	})

	g.Go(func() error {
		interactions, err := h.provider.GetInteractions(gctx, since, limits.MaxInteractions)
		if err != nil {
			return err
		}
		in.interactions = interactions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// toRecommendationItems attaches article payloads to scores. Candidates are
// already in memory, so no second lookup is needed.
func toRecommendationItems(scores []recommend.RecommendationScore, candidates []recommend.Item) []models.RecommendationItem {
	byID := make(map[string]*recommend.Item, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = &candidates[i]
	}

	items := make([]models.RecommendationItem, 0, len(scores))
	for _, s := range scores {
		item := models.RecommendationItem{
			ArticleID:  s.ArticleID,
			Score:      s.Score,
			Reasons:    s.Reasons,
			Confidence: s.Confidence,
			Algorithm:  s.Algorithm.String(),
		}
		if c, ok := byID[s.ArticleID]; ok {
			item.Article = &models.Article{
				ID:              c.ID,
				Title:           c.Title,
				Categories:      c.Categories,
				Keywords:        c.Keywords,
				Source:          c.Source,
				PublicationDate: c.PublicationDate,
				TrendingScore:   c.TrendingScore,
			}
		}
		items = append(items, item)
	}
	return items
}

// GetAlgorithms handles GET /api/v1/recommendations/algorithms.
func (h *Handler) GetAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.engine.Algorithms(), time.Time{})
}

// GetConfig handles GET /api/v1/recommendations/config.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.engine.GetConfig(), time.Time{})
}

// UpdateConfig handles PUT /api/v1/recommendations/config.
// The body is merged over the current configuration, so a partial document
// such as {"weights":{"trending":0.2}} only changes the fields it names.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.engine.GetConfig()
	if err := decodeJSONBody(w, r, cfg); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Request body must be a JSON configuration object", nil)
		return
	}

	if err := h.engine.UpdateConfig(cfg); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("recommendation config updated via API")
	respondSuccess(w, r, http.StatusOK, h.engine.GetConfig(), time.Time{})
}

// GetStats handles GET /api/v1/recommendations/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.engine.Stats(), time.Time{})
}
