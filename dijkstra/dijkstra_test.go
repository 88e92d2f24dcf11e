package dijkstra_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/dijkstra"
)

func weighted(t *testing.T, directed bool, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges, core.WithDirected(directed), core.WithWeighted())
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	assert.True(t, errors.Is(err, core.ErrNilGraph))
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := weighted(t, false, 2, core.Edge{From: 0, To: 1, Weight: 1})
	_, _, err := dijkstra.Dijkstra(g, 2)
	assert.True(t, errors.Is(err, core.ErrNodeOutOfRange))
	_, _, err = dijkstra.Dijkstra(g, -1)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

// TestDijkstra_InvalidOptions: bad values are reported, never panicked on.
func TestDijkstra_InvalidOptions(t *testing.T) {
	g := weighted(t, false, 2, core.Edge{From: 0, To: 1, Weight: 1})

	cases := map[string]dijkstra.Option{
		"negative max distance": dijkstra.WithMaxDistance(-1),
		"NaN max distance":      dijkstra.WithMaxDistance(math.NaN()),
		"zero threshold":        dijkstra.WithInfEdgeThreshold(0),
		"negative workers":      dijkstra.WithWorkers(-2),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(g, 0, opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidOption))
			_, err = dijkstra.AllPairs(g, opt)
			assert.True(t, errors.Is(err, core.ErrInvalidOption))
		})
	}
}

func TestDijkstra_NegativeWeightRejectedByGraph(t *testing.T) {
	_, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: -5}}, core.WithWeighted())
	assert.True(t, errors.Is(err, core.ErrNegativeWeight))
}

// ------------------------------------------------------------------------
// 2. Single source
// ------------------------------------------------------------------------

func TestDijkstra_TriangleWithPath(t *testing.T) {
	// 0—1 (1), 1—2 (2), 0—2 (5)
	g := weighted(t, false, 3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 5},
	)

	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Nil(t, prev)

	dist, prev, err = dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, prev)
	assert.Equal(t, []int{0, 1, 2}, dijkstra.PathTo(prev, 0, 2))
	assert.Equal(t, []int{0}, dijkstra.PathTo(prev, 0, 0))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := weighted(t, true, 3, core.Edge{From: 1, To: 0, Weight: 1})

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[1], 1))
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Nil(t, dijkstra.PathTo(prev, 0, 1))
	assert.Nil(t, dijkstra.PathTo(prev, 0, 9))
}

// TestDijkstra_ParallelEdgesAndSelfLoop: the lighter duplicate wins.
func TestDijkstra_ParallelEdgesAndSelfLoop(t *testing.T) {
	g := weighted(t, true, 2,
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 0, To: 0, Weight: 1},
		core.Edge{From: 0, To: 1, Weight: 2},
	)
	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, dist)
}

// TestDijkstra_TieFirstRelaxationWins: 3 is reached via 1 and via 2 at
// cost 2; node 1 settles first, so it keeps the predecessor slot.
func TestDijkstra_TieFirstRelaxationWins(t *testing.T) {
	g := weighted(t, false, 4,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 1},
	)
	_, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 1, prev[3])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t, false, 3,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 2},
	)
	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := weighted(t, false, 3,
		core.Edge{From: 0, To: 2, Weight: 100},
		core.Edge{From: 0, To: 1, Weight: 60},
		core.Edge{From: 1, To: 2, Weight: 60},
	)
	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	assert.Equal(t, 120.0, dist[2])
}

// TestDijkstra_UnweightedGraph counts hops.
func TestDijkstra_UnweightedGraph(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: 9}, {From: 1, To: 2, Weight: 9}})
	require.NoError(t, err)
	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, dist)
}

// ------------------------------------------------------------------------
// 3. Path counting
// ------------------------------------------------------------------------

func TestCountPaths_EqualBranches(t *testing.T) {
	g := weighted(t, false, 4,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 1},
	)
	dag := core.NewPathDAG(g.N())
	require.NoError(t, dijkstra.CountPaths(g, 0, dag))

	assert.Equal(t, []int{0, 2, 1, 3}, dag.Order)
	assert.Equal(t, []float64{0, 2, 1, 3}, dag.Dist)
	assert.Equal(t, []float64{1, 2, 1, 2}, dag.Sigma)
	assert.ElementsMatch(t, []int{0, 2}, dag.Preds[1])
}

// TestCountPaths_RoundingTie: 0.1+0.2 and 0.3 differ in the last bit but
// are the same path length.
func TestCountPaths_RoundingTie(t *testing.T) {
	g := weighted(t, true, 3,
		core.Edge{From: 0, To: 1, Weight: 0.1},
		core.Edge{From: 1, To: 2, Weight: 0.2},
		core.Edge{From: 0, To: 2, Weight: 0.3},
	)
	dag := core.NewPathDAG(g.N())
	require.NoError(t, dijkstra.CountPaths(g, 0, dag))
	assert.Equal(t, 2.0, dag.Sigma[2])
	assert.Equal(t, []int{0, 1}, dag.Preds[2])
}

// TestCountPaths_ZeroWeightAndLoop keeps Order topological.
func TestCountPaths_ZeroWeightAndLoop(t *testing.T) {
	g := weighted(t, true, 3,
		core.Edge{From: 0, To: 1, Weight: 0},
		core.Edge{From: 1, To: 1, Weight: 0},
		core.Edge{From: 1, To: 0, Weight: 0},
		core.Edge{From: 1, To: 2, Weight: 1},
	)
	dag := core.NewPathDAG(g.N())
	require.NoError(t, dijkstra.CountPaths(g, 0, dag))
	assert.Equal(t, []int{0, 1, 2}, dag.Order)
	assert.Equal(t, []float64{1, 1, 1}, dag.Sigma)
}

// TestCountPaths_ZeroWeightIntoSettledTie: b (id 1) settles before a (id 2)
// at the same distance, yet a→b still ends a shortest path into b.
func TestCountPaths_ZeroWeightIntoSettledTie(t *testing.T) {
	g := weighted(t, true, 4,
		core.Edge{From: 0, To: 2, Weight: 0},
		core.Edge{From: 0, To: 1, Weight: 0},
		core.Edge{From: 2, To: 1, Weight: 0},
		core.Edge{From: 1, To: 3, Weight: 1},
	)
	dag := core.NewPathDAG(g.N())
	require.NoError(t, dijkstra.CountPaths(g, 0, dag))

	assert.Equal(t, []int{0, 2, 1, 3}, dag.Order)
	assert.Equal(t, []float64{1, 2, 1, 2}, dag.Sigma)
	assert.Equal(t, []int{0, 2}, dag.Preds[1])
	assert.Equal(t, []int{1}, dag.Preds[3])
}

// TestCountPaths_ZeroWeightCycle: a⇄b at zero cost keeps only the arc that
// follows settle order, so counts stay finite and Order stays complete.
func TestCountPaths_ZeroWeightCycle(t *testing.T) {
	g := weighted(t, true, 4,
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 0},
		core.Edge{From: 1, To: 2, Weight: 0},
		core.Edge{From: 1, To: 3, Weight: 1},
	)
	dag := core.NewPathDAG(g.N())
	require.NoError(t, dijkstra.CountPaths(g, 0, dag))

	assert.Equal(t, []int{0, 2, 1, 3}, dag.Order)
	assert.Equal(t, []float64{0, 1, 1, 2}, dag.Dist)
	assert.Equal(t, []float64{1, 1, 1, 1}, dag.Sigma)
	assert.Equal(t, []int{0}, dag.Preds[2])
	assert.Equal(t, []int{2}, dag.Preds[1])

	// Buffers are reused cleanly after the fallback.
	require.NoError(t, dijkstra.CountPaths(g, 3, dag))
	assert.Equal(t, []int{3}, dag.Order)
	assert.Equal(t, []float64{0, 0, 0, 1}, dag.Sigma)
}

func TestCountPaths_Errors(t *testing.T) {
	g := weighted(t, false, 2, core.Edge{From: 0, To: 1, Weight: 1})
	assert.True(t, errors.Is(dijkstra.CountPaths(nil, 0, core.NewPathDAG(2)), core.ErrNilGraph))
	assert.True(t, errors.Is(dijkstra.CountPaths(g, 3, core.NewPathDAG(2)), core.ErrNodeOutOfRange))
	assert.True(t, errors.Is(dijkstra.CountPaths(g, 0, core.NewPathDAG(1)), core.ErrLengthMismatch))
}
