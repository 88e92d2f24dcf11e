package components

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// NoKey marks a row without a key node in LabelRows; its label is 0.
const NoKey = -1

// Label unions every edge and labels each edge row from the representative
// of its From node. It returns one label per edge and the number of labels
// handed out.
//
// Errors: core.ErrNodeOutOfRange for endpoints outside [0, n).
func Label(n int, edges []core.Edge) ([]int64, int, error) {
	keys := make([]int, len(edges))
	for i, e := range edges {
		keys[i] = e.From
	}

	return LabelRows(n, edges, keys)
}

// LabelRows is the general form of Label: edges drive the unions and keys
// (one per output row, NoKey for none) pick the node each row is labeled by.
// Nodes that appear in keys but in no edge form singleton groups.
//
// Steps:
//  1. Validate every endpoint and key against n.
//  2. Union every edge in order.
//  3. Scan keys in order; a representative seen for the first time gets
//     the next label starting at 1.
func LabelRows(n int, edges []core.Edge, keys []int) ([]int64, int, error) {
	// 1) Validate before any mutation so no partial output escapes.
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, errors.Wrapf(core.ErrNodeOutOfRange, "components: edge %d: %d-%d with n=%d", i, e.From, e.To, n)
		}
	}
	for i, k := range keys {
		if k != NoKey && (k < 0 || k >= n) {
			return nil, 0, errors.Wrapf(core.ErrNodeOutOfRange, "components: row %d key %d with n=%d", i, k, n)
		}
	}

	// 2) Union phase.
	ds := NewDisjointSet(n)
	for _, e := range edges {
		ds.Union(e.From, e.To)
	}

	// 3) Labeling phase. byRoot[r] == 0 means r has no label yet.
	labels := make([]int64, len(keys))
	byRoot := make([]int64, n)
	var next int64
	for i, k := range keys {
		if k == NoKey {
			continue
		}
		r := ds.Find(k)
		if byRoot[r] == 0 {
			next++
			byRoot[r] = next
		}
		labels[i] = byRoot[r]
	}

	return labels, int(next), nil
}
