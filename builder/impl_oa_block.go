// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_oa_block.go: implementation of OrthogonalArrayBlock(oa) constructor.
//
// Contract:
//   • oa has m ≥ 1 rows of equal length n², n ≥ 2, symbols in [0,n)
//     (else ErrTooFewVertices / ErrInvalidParameter). Orthogonality itself is
//     the caller's responsibility (design.ValidateOA).
//   • Vertices are the n² columns; two columns are adjacent iff they agree in
//     some row.
//   • For a genuine OA(m,n) the result is an SRG
//     (n², m(n-1), (m-1)(m-2)+n-2, m(m-1)).
//
// Complexity:
//   • Time: O(m·n⁴). Space: O(m·n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/numtheory"
)

// OrthogonalArrayBlock returns a Constructor for the block graph of oa.
func OrthogonalArrayBlock(oa [][]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(oa) < 1 {
			return fmt.Errorf("%s: no rows: %w", MethodOrthogonalArrayBlock, ErrTooFewVertices)
		}
		cols := len(oa[0])
		n := numtheory.ISqrt(cols)
		if n < MinOASymbols {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodOrthogonalArrayBlock, n, MinOASymbols, ErrTooFewVertices)
		}
		if n*n != cols {
			return fmt.Errorf("%s: %d columns is not a square: %w", MethodOrthogonalArrayBlock, cols, ErrInvalidParameter)
		}
		for r, row := range oa {
			if len(row) != cols {
				return fmt.Errorf("%s: row %d has %d columns, want %d: %w", MethodOrthogonalArrayBlock, r, len(row), cols, ErrInvalidParameter)
			}
			for c, s := range row {
				if s < 0 || s >= n {
					return fmt.Errorf("%s: symbol %d at (%d,%d) outside [0,%d): %w", MethodOrthogonalArrayBlock, s, r, c, n, ErrInvalidParameter)
				}
			}
		}

		column := func(c int) []int {
			out := make([]int, len(oa))
			for r := range oa {
				out[r] = oa[r][c]
			}
			return out
		}
		ids, err := addIndexedVertices(g, cfg, MethodOrthogonalArrayBlock, cols, func(c int) string {
			return formatTuple(column(c))
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodOrthogonalArrayBlock, ids, func(i, j int) bool {
			for r := range oa {
				if oa[r][i] == oa[r][j] {
					return true
				}
			}
			return false
		})
	}
}
