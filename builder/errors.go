// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (method, offending value) is attached with errors.Wrapf.
//   • Generators never panic; option constructors may.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewVertices indicates a size parameter below the generator minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic generator ran without WithSeed or
// WithRand while 0 < p < 1.
var ErrNeedRandSource = errors.New("builder: rng is required")

// tooFew wraps ErrTooFewVertices with the generator name and bounds.
func tooFew(method string, n, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, n, min)
}
