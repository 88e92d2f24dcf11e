package columnar

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// Column is a named, nullable sequence of values. A nil Valid means every
// row is valid; otherwise Valid[i] reports whether Values[i] is set.
type Column[T any] struct {
	Name   string
	Values []T
	Valid  []bool
}

// NewColumn returns a column without nulls.
func NewColumn[T any](name string, values []T) Column[T] {
	return Column[T]{Name: name, Values: values}
}

// NewNullableColumn returns a column with a validity mask of the same length.
func NewNullableColumn[T any](name string, values []T, valid []bool) (Column[T], error) {
	if valid != nil {
		if err := core.CheckLengths(len(values), len(valid)); err != nil {
			return Column[T]{}, errors.Wrapf(err, "columnar: column %q validity", name)
		}
	}

	return Column[T]{Name: name, Values: values, Valid: valid}, nil
}

// Len returns the number of rows.
func (c Column[T]) Len() int { return len(c.Values) }

// IsNull reports whether row i is null.
func (c Column[T]) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}

// Get returns row i and whether it is set.
func (c Column[T]) Get(i int) (T, bool) {
	if c.IsNull(i) {
		var zero T
		return zero, false
	}

	return c.Values[i], true
}

// setNull marks row i null, allocating the mask on first use.
func (c *Column[T]) setNull(i int) {
	if c.Valid == nil {
		c.Valid = make([]bool, len(c.Values))
		for j := range c.Valid {
			c.Valid[j] = true
		}
	}
	c.Valid[i] = false
}
