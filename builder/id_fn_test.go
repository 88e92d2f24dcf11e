package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/colgraph/builder"
)

// TestIDFns checks outputs on valid indices and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestWeightFns covers constructor panics and sampling bounds.
func TestWeightFns(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 5) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })

	rng := rand.New(rand.NewSource(42))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	w := builder.UniformWeightFn(1, 100)(rng)
	assert.GreaterOrEqual(t, w, 1.0)
	assert.Less(t, w, 100.0)
}
