// Package indexer compacts arbitrary comparable node values into dense,
// zero-based NodeIds and maps them back.
//
// Allocation order is first-seen order and is part of the observable
// contract: component labels and output row order follow it. An Indexer is
// therefore filled sequentially and is not safe for concurrent writers.
package indexer

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// Indexer is a bidirectional value ↔ NodeId mapping.
type Indexer[K comparable] struct {
	ids    map[K]int
	values []K
}

// New returns an empty Indexer sized for about capacity distinct values.
func New[K comparable](capacity int) *Indexer[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Indexer[K]{
		ids:    make(map[K]int, capacity),
		values: make([]K, 0, capacity),
	}
}

// ID returns the NodeId of v, allocating the next id on first sight.
func (ix *Indexer[K]) ID(v K) int {
	if id, ok := ix.ids[v]; ok {
		return id
	}
	id := len(ix.values)
	ix.ids[v] = id
	ix.values = append(ix.values, v)

	return id
}

// Lookup returns the NodeId of v without allocating.
func (ix *Indexer[K]) Lookup(v K) (int, bool) {
	id, ok := ix.ids[v]
	return id, ok
}

// Value returns the original value of id. It panics if id is out of range.
func (ix *Indexer[K]) Value(id int) K { return ix.values[id] }

// Len returns the number of distinct values seen.
func (ix *Indexer[K]) Len() int { return len(ix.values) }

// Values returns a copy of all values in NodeId order.
func (ix *Indexer[K]) Values() []K {
	out := make([]K, len(ix.values))
	copy(out, ix.values)

	return out
}

// IndexPairs indexes two parallel columns row by row, the from-value before
// the to-value of the same row, and returns the edge list in row order.
// Every edge gets the matching entry of weights, or weight 0 when weights is
// nil.
//
// Errors: core.ErrLengthMismatch when the columns differ in length.
//
// Complexity: O(rows) expected time, O(distinct values + rows) memory.
func IndexPairs[K comparable](from, to []K, weights []float64) (*Indexer[K], []core.Edge, error) {
	if err := core.CheckLengths(len(from), len(to)); err != nil {
		return nil, nil, errors.Wrap(err, "indexer: from/to")
	}
	if weights != nil {
		if err := core.CheckLengths(len(from), len(weights)); err != nil {
			return nil, nil, errors.Wrap(err, "indexer: from/weight")
		}
	}

	ix := New[K](len(from))
	edges := make([]core.Edge, len(from))
	for i := range from {
		edges[i].From = ix.ID(from[i])
		edges[i].To = ix.ID(to[i])
		if weights != nil {
			edges[i].Weight = weights[i]
		}
	}

	return ix, edges, nil
}
