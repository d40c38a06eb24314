// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/scholarwise/internal/models"
	"github.com/tomtom215/scholarwise/internal/recommend"
)

// RecordInteraction handles POST /api/v1/interactions.
//
// A missing timestamp is set to the time of receipt. A missing category or
// keyword list is filled from the catalog entry of the article, so clients
// only need to send userId, articleId and interactionType.
func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var inter recommend.Interaction
	if err := decodeJSONBody(w, r, &inter); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Request body must be a JSON interaction object", nil)
		return
	}
	if inter.Timestamp.IsZero() {
		inter.Timestamp = start.UTC()
	}

	if inter.ArticleID != "" && (inter.Category == "" || len(inter.Keywords) == 0) {
		items, err := h.provider.GetItems(r.Context(), []string{inter.ArticleID})
		if err != nil {
			respondRecommendError(w, r, err)
			return
		}
		if item, ok := items[inter.ArticleID]; ok {
			if inter.Category == "" && len(item.Categories) > 0 {
				inter.Category = item.Categories[0]
			}
			if len(inter.Keywords) == 0 {
				inter.Keywords = item.Keywords
			}
		}
	}

	if err := recommend.ValidateInteraction("interaction", inter); err != nil {
		respondRecommendError(w, r, err)
		return
	}

	if err := h.recorder.AppendInteraction(r.Context(), inter); err != nil {
		respondRecommendError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusCreated, inter, start)
}
