// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = nil (no weight column)

package builder

import (
	"math/rand"
)

// builderConfig is the single source of truth for all generator knobs.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newList allocates an EdgeList sized for m rows, with a weight column only
// when a weight policy is configured.
func (c builderConfig) newList(m int) *EdgeList {
	el := &EdgeList{
		From: make([]string, 0, m),
		To:   make([]string, 0, m),
	}
	if c.weightFn != nil {
		el.Weight = make([]float64, 0, m)
	}

	return el
}

// emit appends the edge i→j, drawing its weight if weights are on.
func (c builderConfig) emit(el *EdgeList, i, j int) {
	el.From = append(el.From, c.idFn(i))
	el.To = append(el.To, c.idFn(j))
	if c.weightFn != nil {
		el.Weight = append(el.Weight, c.weightFn(c.rng))
	}
}
