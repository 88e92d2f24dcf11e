package components_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/components"
	"github.com/katalvlaran/colgraph/core"
)

func TestDisjointSet_UnionFind(t *testing.T) {
	ds := components.NewDisjointSet(5)
	assert.Equal(t, 5, ds.Sets())

	assert.True(t, ds.Union(0, 1))
	assert.True(t, ds.Union(3, 4))
	assert.False(t, ds.Union(1, 0), "already merged")
	assert.Equal(t, 3, ds.Sets())

	assert.True(t, ds.Connected(0, 1))
	assert.False(t, ds.Connected(1, 3))
	assert.Equal(t, [][]int{{0, 1}, {2}, {3, 4}}, ds.Groups())
}

// TestDisjointSet_LongChain builds a worst-case parent chain by hand-ordered
// unions and finds through it; a recursive Find would exhaust the stack long
// before a million levels.
func TestDisjointSet_LongChain(t *testing.T) {
	const n = 1_000_000
	ds := components.NewDisjointSet(n)
	for i := 1; i < n; i++ {
		ds.Union(i-1, i)
	}
	assert.Equal(t, 1, ds.Sets())
	assert.Equal(t, ds.Find(0), ds.Find(n-1))
}

func TestDisjointSet_Empty(t *testing.T) {
	ds := components.NewDisjointSet(-3)
	assert.Zero(t, ds.Len())
	assert.Empty(t, ds.Groups())
}

// TestLabel_TwoGroupsPlusIsolatedPair mirrors a/b/c/d + e/f/g/j + aa/z rows.
func TestLabel_TwoGroupsPlusIsolatedPair(t *testing.T) {
	// A B C E F G I I AA -> B C D F G J K J Z
	// ids: A0 B1 C2 D3 E4 F5 G6 J7 I8 K9 AA10 Z11
	edges := []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
		{From: 4, To: 5}, {From: 5, To: 6}, {From: 6, To: 7},
		{From: 8, To: 9}, {From: 8, To: 7},
		{From: 10, To: 11},
	}
	labels, groups, err := components.Label(12, edges)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1, 2, 2, 2, 2, 2, 3}, labels)
	assert.Equal(t, 3, groups)
}

func TestLabel_Deterministic(t *testing.T) {
	edges := []core.Edge{{From: 3, To: 2}, {From: 0, To: 1}, {From: 2, To: 1}, {From: 4, To: 5}}
	first, _, err := components.Label(6, edges)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := components.Label(6, edges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []int64{1, 1, 1, 2}, first)
}

func TestLabel_SelfLoop(t *testing.T) {
	labels, groups, err := components.Label(2, []core.Edge{{From: 0, To: 0}, {From: 1, To: 1}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, labels)
	assert.Equal(t, 2, groups)
}

func TestLabelRows_NoKeyAndSingletons(t *testing.T) {
	// Edges join 0-1 only; node 2 is a key with no edge.
	edges := []core.Edge{{From: 0, To: 1}}
	keys := []int{components.NoKey, 1, 2, 0, components.NoKey}

	labels, groups, err := components.LabelRows(3, edges, keys)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 1, 0}, labels)
	assert.Equal(t, 2, groups)
}

func TestLabelRows_OutOfRange(t *testing.T) {
	_, _, err := components.LabelRows(2, []core.Edge{{From: 0, To: 2}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNodeOutOfRange))

	_, _, err = components.LabelRows(2, nil, []int{5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestLabel_Empty(t *testing.T) {
	labels, groups, err := components.Label(0, nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Zero(t, groups)
}
