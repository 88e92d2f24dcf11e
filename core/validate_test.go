package core_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colgraph/core"
)

type sampleOptions struct {
	Damping float64 `validate:"gt=0,lt=1"`
	Mode    string  `validate:"oneof=fast slow"`
}

func TestValidateOptions(t *testing.T) {
	require.NoError(t, core.ValidateOptions(sampleOptions{Damping: 0.5, Mode: "fast"}))
	require.NoError(t, core.ValidateOptions(&sampleOptions{Damping: 0.5, Mode: "slow"}))

	err := core.ValidateOptions(sampleOptions{Damping: 1.5, Mode: "fast"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidOption))
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Damping")

	err = core.ValidateOptions(sampleOptions{Damping: 0.5, Mode: "medium"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestCheckLengths(t *testing.T) {
	assert.NoError(t, core.CheckLengths())
	assert.NoError(t, core.CheckLengths(3, 3, 3))

	err := core.CheckLengths(3, 3, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrLengthMismatch))
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}
