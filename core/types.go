// SPDX-License-Identifier: MIT
// Package: colgraph/core
//
// types.go - sentinel errors, Edge/Arc value types and graph options.

package core

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is the root of the caller-error taxonomy. Every sentinel
// below wraps it, so errors.Is(err, ErrInvalidInput) identifies any input
// rejected before computation starts while each sentinel stays distinct.
var ErrInvalidInput = errors.New("core: invalid input")

// Sentinel errors for graph construction and algorithm entry points.
var (
	// ErrLengthMismatch indicates parallel input columns of different length.
	ErrLengthMismatch = errors.WithMessage(ErrInvalidInput, "column lengths differ")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.WithMessage(ErrInvalidInput, "negative edge weight")

	// ErrNodeOutOfRange indicates an edge endpoint or source outside [0, n).
	ErrNodeOutOfRange = errors.WithMessage(ErrInvalidInput, "node id out of range")

	// ErrInvalidOption indicates a configuration value that failed validation.
	ErrInvalidOption = errors.WithMessage(ErrInvalidInput, "invalid option")

	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.WithMessage(ErrInvalidInput, "graph is nil")
)

// Edge is one input row after identity compaction: endpoints are NodeIds.
// Weight is ignored by unweighted graphs.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Arc is one stored adjacency entry: the head node and the arc weight.
type Arc struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph before it is built.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
	weighted bool
}

// WithDirected sets whether edges are traversed only From→To (true) or in
// both directions (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithWeighted keeps per-edge weights. Without it every arc weighs 1.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}
