package rules

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/core"
)

// TestItemRules_LabelingErrorSurfaces: a pair naming an item the indexer
// never issued must fail pattern labeling instead of being dropped.
func TestItemRules_LabelingErrorSurfaces(t *testing.T) {
	m, err := group([]Record[int]{{Transaction: 1, Item: "A"}, {Transaction: 1, Item: "B"}}, DefaultOptions())
	require.NoError(t, err)
	m.singles()

	// Item 2 is unknown to the indexer; only the rule 0→2 clears MinConfidence.
	m.support = append(m.support, 1e9)
	m.frequent = append(m.frequent, true)
	m.levels = append(m.levels, level{sets: [][]int{{0, 2}}, support: []float64{0.5}})
	m.support[0] = 0.5

	_, err = m.itemRules()
	assert.True(t, errors.Is(err, core.ErrNodeOutOfRange), "%v", err)
}
