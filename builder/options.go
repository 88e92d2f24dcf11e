// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves return errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn turns the weight column on and sets the per-edge generator.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
