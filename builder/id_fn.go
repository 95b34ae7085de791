// SPDX-License-Identifier: MIT

// Package builder provides ID schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedIDFn returns a zero-padded decimal index of the given width so that
// lexicographic order (core.Graph.Vertices) equals index order.
// Example: PaddedIDFn(3)(7) → "007".
func PaddedIDFn(width int) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%0*d", width, idx)
	}
}
