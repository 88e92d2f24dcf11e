package columnar_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/columnar"
	"github.com/katalvlaran/colgraph/core"
)

func TestDecodeKwargs_JSON(t *testing.T) {
	kw := columnar.DefaultCentralityKwargs()
	require.NoError(t, columnar.DecodeKwargs([]byte(`{"directed": true, "normalized": false}`), &kw))
	assert.True(t, kw.Directed)
	assert.False(t, kw.Normalized)
}

func TestDecodeKwargs_YAMLKeepsDefaults(t *testing.T) {
	kw := columnar.DefaultPageRankKwargs()
	require.NoError(t, columnar.DecodeKwargs([]byte("damping: 0.9\ndangling: self-loop\n"), &kw))
	assert.Equal(t, 0.9, kw.Damping)
	assert.Equal(t, "self-loop", kw.Dangling)
	assert.Equal(t, 100, kw.MaxIterations)
	assert.True(t, kw.Directed)
}

func TestDecodeKwargs_EmptyPayload(t *testing.T) {
	kw := columnar.DefaultRuleKwargs()
	require.NoError(t, columnar.DecodeKwargs(nil, &kw))
	assert.Equal(t, columnar.DefaultRuleKwargs(), kw)
}

func TestDecodeKwargs_Rejects(t *testing.T) {
	for name, payload := range map[string]string{
		"unknown key":     "min_suport: 0.2",
		"wrong type":      "min_support: lots",
		"out of range":    `{"min_support": 1.5}`,
		"zero itemset":    "max_itemset_size: 0",
		"not a map":       "- 1\n- 2",
		"negative budget": "max_candidates: -4",
	} {
		t.Run(name, func(t *testing.T) {
			kw := columnar.DefaultRuleKwargs()
			err := columnar.DecodeKwargs([]byte(payload), &kw)
			assert.True(t, errors.Is(err, core.ErrInvalidOption), "%v", err)
		})
	}

	pr := columnar.DefaultPageRankKwargs()
	err := columnar.DecodeKwargs([]byte("dangling: sideways"), &pr)
	assert.True(t, errors.Is(err, core.ErrInvalidOption))
}
