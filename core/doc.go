// Package core provides the dense, integer-indexed Graph shared by every
// algorithm in colgraph, together with the error taxonomy and option
// validation used across packages.
//
// A Graph G = (V,E) is built once from an edge list whose endpoints are
// NodeIds in [0, n) (see package indexer for how raw values become ids) and
// is read-only afterwards:
//
//   - Directed vs. undirected (WithDirected). Undirected graphs store every
//     non-loop edge as two arcs; a self-loop is stored once.
//   - Weighted vs. unweighted (WithWeighted). Unweighted graphs give every
//     arc weight 1; weighted graphs reject negative or NaN weights.
//   - Parallel edges are always kept; multiplicity matters for PageRank.
//
// Storage is compressed sparse row (CSR): offsets[u]..offsets[u+1] index the
// arcs leaving u, in input edge order. Traversal never touches a map.
//
// Errors:
//
//	ErrInvalidInput    - root of every caller error; check with errors.Is.
//	ErrLengthMismatch  - parallel columns of different length.
//	ErrNegativeWeight  - negative or NaN edge weight.
//	ErrNodeOutOfRange  - endpoint outside [0, n).
//	ErrInvalidOption   - option or kwargs value failed validation.
//	ErrNilGraph        - nil *Graph passed to an algorithm.
//
// Complexity:
//
//   - NewGraph: O(V + E) time and memory.
//   - Neighbors: O(1), returns a sub-slice of the arc array.
package core
