// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// weight_fn.go - edge weight policies.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is returned by stochastic policies when no RNG is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). A nil RNG yields
// DefaultEdgeWeight. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max). Weights are drawn from the
// generator's RNG, so combine it with WithSeed.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
