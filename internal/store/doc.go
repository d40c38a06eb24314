// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

// Package store is the reference data provider for the recommendation
// service: an embedded BadgerDB holding the article catalog, researcher
// profiles and the append-only interaction log.
//
// BadgerStore implements recommend.DataProvider. BreakerProvider wraps any
// DataProvider with a sony/gobreaker circuit breaker so a failing backend is
// reported as ErrUnavailable instead of stalling requests.
//
//	st, err := store.Open(store.Options{InMemory: true}, logger)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	provider := store.NewBreakerProvider(st, store.BreakerSettings{
//	    MaxRequests: 1, Timeout: 30 * time.Second, FailureThreshold: 5,
//	}, logger)
package store
