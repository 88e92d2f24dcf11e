// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// topologies.go - deterministic topology generators.
//
// Contract (all generators):
//   - Rows are emitted in a fixed, documented order.
//   - Edges are oriented low index → high index (Star: hub → leaf), so
//     EdgeList.Graph(true) yields an acyclic orientation except for Cycle.
//   - Invalid parameters return sentinel errors; nothing panics at runtime.

package builder

import (
	"github.com/cockroachdb/errors"
)

const (
	methodPath         = "Path"
	methodStar         = "Star"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minStarNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minRandomNodes   = 1

	// CenterVertexID is the fixed label of the Star hub.
	CenterVertexID = "Center"
)

// Path emits the chain 0–1–…–(n-1): n-1 rows, i → i+1.
func Path(n int, opts ...BuilderOption) (*EdgeList, error) {
	if n < minPathNodes {
		return nil, tooFew(methodPath, n, minPathNodes)
	}
	cfg := newBuilderConfig(opts...)
	el := cfg.newList(n - 1)
	for i := 0; i+1 < n; i++ {
		cfg.emit(el, i, i+1)
	}

	return el, nil
}

// Star emits a hub labeled CenterVertexID joined to n-1 leaves labeled
// by the ID scheme with indices 1..n-1, hub → leaf.
func Star(n int, opts ...BuilderOption) (*EdgeList, error) {
	if n < minStarNodes {
		return nil, tooFew(methodStar, n, minStarNodes)
	}
	cfg := newBuilderConfig(opts...)
	el := cfg.newList(n - 1)
	for i := 1; i < n; i++ {
		el.From = append(el.From, CenterVertexID)
		el.To = append(el.To, cfg.idFn(i))
		if cfg.weightFn != nil {
			el.Weight = append(el.Weight, cfg.weightFn(cfg.rng))
		}
	}

	return el, nil
}

// Cycle emits the ring 0→1→…→(n-1)→0: n rows.
func Cycle(n int, opts ...BuilderOption) (*EdgeList, error) {
	if n < minCycleNodes {
		return nil, tooFew(methodCycle, n, minCycleNodes)
	}
	cfg := newBuilderConfig(opts...)
	el := cfg.newList(n)
	for i := 0; i < n; i++ {
		cfg.emit(el, i, (i+1)%n)
	}

	return el, nil
}

// Complete emits every unordered pair {i, j}, i < j, in lexicographic order:
// n(n-1)/2 rows. n == 1 yields an empty list.
func Complete(n int, opts ...BuilderOption) (*EdgeList, error) {
	if n < minCompleteNodes {
		return nil, tooFew(methodComplete, n, minCompleteNodes)
	}
	cfg := newBuilderConfig(opts...)
	el := cfg.newList(n * (n - 1) / 2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cfg.emit(el, i, j)
		}
	}

	return el, nil
}

// RandomSparse samples an Erdős–Rényi graph: every unordered pair {i, j},
// i < j, is kept independently with probability p. Trials run i ascending,
// then j ascending, so a fixed seed fixes the rows.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
// ErrNeedRandSource (0 < p < 1 without WithSeed/WithRand).
func RandomSparse(n int, p float64, opts ...BuilderOption) (*EdgeList, error) {
	// 1) Validate parameters (size, then probability, then RNG).
	if n < minRandomNodes {
		return nil, tooFew(methodRandomSparse, n, minRandomNodes)
	}
	if p < 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "%s: p=%g not in [0,1]", methodRandomSparse, p)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, errors.Wrapf(ErrNeedRandSource, "%s: p=%g", methodRandomSparse, p)
	}

	// 2) Bernoulli trial per pair; p ∈ {0,1} needs no draws.
	el := cfg.newList(int(p * float64(n*(n-1)/2)))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == 0:
				continue
			case p == 1 || cfg.rng.Float64() < p:
				cfg.emit(el, i, j)
			}
		}
	}

	return el, nil
}
