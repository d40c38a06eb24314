// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package recommend ranks research articles for a researcher.
//
// # Strategies
//
// Four strategies are available through a closed Algorithm set:
//
//   - content-based: research interests, preferred journals, recency and quality metrics
//   - collaborative: bookmarks and likes from researchers sharing the user's interests
//   - trending: community popularity restricted to the user's fields
//   - hybrid: the three above blended with Config.Weights (0.4 / 0.35 / 0.25)
//
// The base scorers live in the algorithms subpackage and are injected into
// the Engine through the ProfileScorer and InteractionScorer interfaces.
//
// # Inputs
//
// The engine performs no I/O. Callers resolve candidates, the user profile
// and the interaction log (see DataProvider) and pass them on the Request.
// When a user has no stored profile the caller substitutes DefaultProfile.
//
// Every input is validated before scoring. The first malformed field aborts
// the call with an *InvalidInputError naming its JSON path, for example
// "candidates[3].metrics.impactScore".
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger,
//	    algorithms.NewContentBased(), algorithms.NewCollaborative(), algorithms.NewTrending())
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    UserID:       userID,
//	    Algorithm:    recommend.AlgorithmHybrid,
//	    Limit:        10,
//	    Profile:      profile,
//	    Interactions: interactions,
//	    Candidates:   candidates,
//	})
//
// # Ordering
//
// Results are sorted by descending score with a stable sort. Entries with
// exactly equal scores carry no ordering guarantee for callers.
//
// # Thread Safety
//
// The engine is safe for concurrent use. Configuration updates swap an
// immutable copy under a lock; scoring itself shares no mutable state.
package recommend
