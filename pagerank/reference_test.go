package pagerank_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/pagerank"
)

// simpleStronglyLinked draws a directed graph over n nodes with a ring
// i→i+1 (so nothing dangles) plus random extra arcs; no loops, no duplicates.
func simpleStronglyLinked(rng *rand.Rand, n, extra int) []core.Edge {
	seen := make(map[[2]int]bool)
	var edges []core.Edge
	add := func(u, v int) {
		if u == v || seen[[2]int{u, v}] {
			return
		}
		seen[[2]int{u, v}] = true
		edges = append(edges, core.Edge{From: u, To: v})
	}
	for i := 0; i < n; i++ {
		add(i, (i+1)%n)
	}
	for i := 0; i < extra; i++ {
		add(rng.Intn(n), rng.Intn(n))
	}

	return edges
}

// TestRank_MatchesGonum compares against gonum's dense PageRank on simple
// graphs, where multiplicity and dangling policy play no role.
func TestRank_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(85))
	for round := 0; round < 20; round++ {
		n := 3 + rng.Intn(40)
		edges := simpleStronglyLinked(rng, n, rng.Intn(3*n))

		g, err := core.NewGraph(n, edges, core.WithDirected(true))
		require.NoError(t, err)
		res, err := pagerank.Rank(g, pagerank.WithMaxIterations(1000))
		require.NoError(t, err)
		require.True(t, res.Converged, "round %d", round)

		ref := simple.NewDirectedGraph()
		for v := 0; v < n; v++ {
			ref.AddNode(simple.Node(v))
		}
		for _, e := range edges {
			ref.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
		want := network.PageRank(ref, pagerank.DefaultDamping, 1e-12)

		var total float64
		for _, r := range want {
			total += r
		}
		for v := 0; v < n; v++ {
			assert.InDelta(t, want[int64(v)]/total, res.Scores[v], 1e-8, "round %d node %d", round, v)
		}
	}
}
