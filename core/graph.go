package core

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Graph is an immutable CSR adjacency over dense NodeIds [0, n).
// It is safe for concurrent readers.
type Graph struct {
	n        int
	directed bool
	weighted bool
	edges    int

	offsets []int // len n+1; arcs of u live in arcs[offsets[u]:offsets[u+1]]
	arcs    []Arc
}

// NewGraph validates edges against n and builds the CSR arrays.
//
// Validation (in order, fail fast, nothing allocated on error):
//  1. n must be ≥ 0.
//  2. every endpoint must lie in [0, n) (ErrNodeOutOfRange).
//  3. weighted graphs reject negative and NaN weights (ErrNegativeWeight).
//
// Arcs of a node keep input edge order, so every traversal is deterministic.
//
// Complexity: O(n + E) time and memory.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, errors.Wrapf(ErrNodeOutOfRange, "node count %d", n)
	}

	// 1) Validate every edge before touching memory.
	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, errors.Wrapf(ErrNodeOutOfRange, "edge %d: %d→%d with n=%d", i, e.From, e.To, n)
		}
		if cfg.weighted && (e.Weight < 0 || math.IsNaN(e.Weight)) {
			return nil, errors.Wrapf(ErrNegativeWeight, "edge %d: %d→%d weight=%g", i, e.From, e.To, e.Weight)
		}
	}

	g := &Graph{
		n:        n,
		directed: cfg.directed,
		weighted: cfg.weighted,
		edges:    len(edges),
		offsets:  make([]int, n+1),
	}

	// 2) Count out-degrees. Undirected non-loop edges contribute two arcs.
	for _, e = range edges {
		g.offsets[e.From+1]++
		if !g.directed && e.From != e.To {
			g.offsets[e.To+1]++
		}
	}
	for i = 1; i <= n; i++ {
		g.offsets[i] += g.offsets[i-1]
	}

	// 3) Fill arcs in edge order using a moving cursor per node.
	g.arcs = make([]Arc, g.offsets[n])
	cursor := make([]int, n)
	copy(cursor, g.offsets[:n])
	for _, e = range edges {
		w := 1.0
		if g.weighted {
			w = e.Weight
		}
		g.arcs[cursor[e.From]] = Arc{To: e.To, Weight: w}
		cursor[e.From]++
		if !g.directed && e.From != e.To {
			g.arcs[cursor[e.To]] = Arc{To: e.From, Weight: w}
			cursor[e.To]++
		}
	}

	return g, nil
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// Directed reports whether arcs are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether arcs carry input weights.
func (g *Graph) Weighted() bool { return g.weighted }

// EdgeCount returns the number of input edges the graph was built from.
func (g *Graph) EdgeCount() int { return g.edges }

// ArcCount returns the number of stored arcs.
func (g *Graph) ArcCount() int { return len(g.arcs) }

// Neighbors returns the arcs leaving u. The slice aliases internal storage
// and must not be modified.
func (g *Graph) Neighbors(u int) []Arc {
	return g.arcs[g.offsets[u]:g.offsets[u+1]]
}

// OutDegree returns the number of arcs leaving u, counting parallel arcs.
func (g *Graph) OutDegree(u int) int {
	return g.offsets[u+1] - g.offsets[u]
}

// HasNode reports whether u is a valid NodeId of g.
func (g *Graph) HasNode(u int) bool {
	return u >= 0 && u < g.n
}
