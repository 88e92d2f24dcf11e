// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// id_fn.go - vertex label schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero-based index. It must be pure:
// the same idx always yields the same label. Panics indicate programmer error.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// WithSymbolIDs labels vertices "A".."Z" (at most 26 vertices).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}
