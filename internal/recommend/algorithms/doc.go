// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package algorithms implements the base scorers of the recommendation engine.
//
// # Scorers
//
// ContentBased (recommend.ProfileScorer):
//   - 40 points for a category in the research interests
//   - 15 points for a preferred journal
//   - 20 points when published within the last 7 days
//   - 0.2 * impact + 0.15 * novelty
//   - keeps scores above 30, confidence = score / 100
//
// Collaborative (recommend.InteractionScorer):
//   - peers are users with bookmarks or likes in the target user's categories
//   - 25 points per matching endorsement, plus 10 per bookmark and 5 per like
//   - 15 points for a candidate in one of the user's categories
//   - keeps scores above 20, confidence = score / 80
//
// Trending (recommend.ProfileScorer):
//   - half the trending score when it exceeds 80
//   - engagement from views, bookmarks and citations, capped at 30
//   - 20 points for a category in the research interests
//   - keeps scores above 25, confidence = score / 100
//
// Every scorer is a pure function of its inputs. Results are sorted by
// descending score with a stable sort, so equal scores keep candidate order.
//
// # Reasons
//
// Each entry carries the human-readable reasons that contributed points,
// exported as Reason* constants so that callers and tests can match them.
package algorithms
