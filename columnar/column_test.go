package columnar_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/columnar"
	"github.com/katalvlaran/colgraph/core"
)

func TestColumn_NullHandling(t *testing.T) {
	c := columnar.NewColumn("x", []int{1, 2})
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.IsNull(1))
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	n, err := columnar.NewNullableColumn("y", []string{"a", ""}, []bool{true, false})
	require.NoError(t, err)
	assert.True(t, n.IsNull(1))
	_, ok = n.Get(1)
	assert.False(t, ok)

	_, err = columnar.NewNullableColumn("z", []int{1, 2, 3}, []bool{true})
	assert.True(t, errors.Is(err, core.ErrLengthMismatch))
}
