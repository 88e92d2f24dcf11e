// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// edgelist.go - the generated row set and its graph conversion.

package builder

import (
	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/indexer"
)

// EdgeList holds generated rows as parallel columns. Weight is nil unless a
// weight option was given.
type EdgeList struct {
	From   []string
	To     []string
	Weight []float64
}

// Len returns the number of rows.
func (el *EdgeList) Len() int { return len(el.From) }

// Graph indexes the rows and builds a core.Graph. The graph is weighted
// exactly when the list carries a weight column.
func (el *EdgeList) Graph(directed bool) (*core.Graph, *indexer.Indexer[string], error) {
	ix, edges, err := indexer.IndexPairs(el.From, el.To, el.Weight)
	if err != nil {
		return nil, nil, err
	}

	opts := []core.GraphOption{core.WithDirected(directed)}
	if el.Weight != nil {
		opts = append(opts, core.WithWeighted())
	}
	g, err := core.NewGraph(ix.Len(), edges, opts...)
	if err != nil {
		return nil, nil, err
	}

	return g, ix, nil
}
