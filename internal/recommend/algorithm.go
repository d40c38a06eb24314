// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package recommend

import "strings"

// Algorithm identifies a recommendation strategy. The set is closed.
type Algorithm string

const (
	// AlgorithmContentBased ranks by similarity to declared interests.
	AlgorithmContentBased Algorithm = "content-based"
	// AlgorithmCollaborative ranks by behavior of researchers with overlapping interests.
	AlgorithmCollaborative Algorithm = "collaborative"
	// AlgorithmTrending ranks by global popularity within the user's fields.
	AlgorithmTrending Algorithm = "trending"
	// AlgorithmHybrid blends the three strategies with configured weights.
	AlgorithmHybrid Algorithm = "hybrid"
)

// Algorithms lists every supported strategy in display order.
var Algorithms = []Algorithm{
	AlgorithmHybrid,
	AlgorithmContentBased,
	AlgorithmCollaborative,
	AlgorithmTrending,
}

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// Valid reports whether a is one of the supported strategies.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmContentBased, AlgorithmCollaborative, AlgorithmTrending, AlgorithmHybrid:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts a wire name to an Algorithm.
// An empty string selects the hybrid strategy.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlgorithmHybrid, nil
	}

	a := Algorithm(s)
	if !a.Valid() {
		return "", &InvalidInputError{Field: "algorithm", Reason: "must be one of content-based, collaborative, trending, hybrid"}
	}
	return a, nil
}
