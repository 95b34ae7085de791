// SPDX-License-Identifier: MIT
// Package: srgcat/design
//
// oa.go: orthogonal arrays OA(m, n) of strength 2 and index 1.
//
// Layout:
//   • m rows, n² columns, entries in [0, n).
//   • For any two rows every ordered pair of symbols appears in exactly one
//     column.
//
// Construction (MacNeish):
//   • For a prime power q and m ≤ q+1, the affine plane gives OA(m, q):
//     column (x, y) ∈ GF(q)², row 0 = x, row r ≥ 1 = y + (r-1)·x.
//   • For n = Π q_i the component arrays are combined column-wise with
//     mixed-radix symbols, valid for m ≤ min q_i + 1.
//
// Beyond MacNeish, a few orders carry a tabled array (see difference.go);
// OA(m, n) for smaller m keeps its first m rows. OA(4, 6) stays refused.

package design

import (
	"fmt"

	"github.com/katalvlaran/srgcat/gf"
	"github.com/katalvlaran/srgcat/numtheory"
)

// OrthogonalArrayExists reports whether OrthogonalArray(m, n) succeeds.
func OrthogonalArrayExists(m, n int) bool {
	if m < 1 || n < 2 {
		return false
	}
	return m <= minFactor(n)+1 || m <= arraySources[n].rows
}

// OrthogonalArray realises OA(m, n) as rows × columns.
// Complexity: O(m·n²) time and space.
func OrthogonalArray(m, n int) ([][]int, error) {
	if !OrthogonalArrayExists(m, n) {
		return nil, fmt.Errorf("OrthogonalArray(%d,%d): %w", m, n, ErrNoConstruction)
	}
	if m > minFactor(n)+1 {
		return arraySources[n].build()[:m], nil
	}

	factors := numtheory.Factor(n)
	cols := n * n
	out := make([][]int, m)
	for r := range out {
		out[r] = make([]int, cols)
	}

	// Each component contributes its own symbol digit; columns enumerate the
	// product of component columns in mixed radix.
	place, colPlace := 1, 1
	for _, q := range factors {
		comp, err := affineOA(m, q)
		if err != nil {
			return nil, fmt.Errorf("OrthogonalArray(%d,%d): %w", m, n, err)
		}
		qq := q * q
		for c := 0; c < cols; c++ {
			sub := (c / colPlace) % qq
			for r := 0; r < m; r++ {
				out[r][c] += comp[r][sub] * place
			}
		}
		place *= q
		colPlace *= qq
	}

	return out, nil
}

// affineOA builds OA(m, q) for a prime power q and m ≤ q+1.
func affineOA(m, q int) ([][]int, error) {
	f, err := gf.New(q)
	if err != nil {
		return nil, err
	}
	out := make([][]int, m)
	for r := range out {
		out[r] = make([]int, q*q)
	}
	for x := 0; x < q; x++ {
		for y := 0; y < q; y++ {
			c := x*q + y
			out[0][c] = x
			for r := 1; r < m; r++ {
				out[r][c] = f.Add(y, f.Mul(r-1, x))
			}
		}
	}

	return out, nil
}

// ValidateOA checks the shape and the strength-2 balance of an OA(m, n).
func ValidateOA(m, n int, oa [][]int) error {
	if len(oa) != m {
		return fmt.Errorf("ValidateOA: %d rows, want %d: %w", len(oa), m, ErrInvalidDesign)
	}
	cols := n * n
	for r, row := range oa {
		if len(row) != cols {
			return fmt.Errorf("ValidateOA: row %d has %d columns, want %d: %w", r, len(row), cols, ErrInvalidDesign)
		}
		for _, s := range row {
			if s < 0 || s >= n {
				return fmt.Errorf("ValidateOA: symbol %d out of range: %w", s, ErrInvalidDesign)
			}
		}
	}
	seen := make([]bool, cols)
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			for i := range seen {
				seen[i] = false
			}
			for c := 0; c < cols; c++ {
				k := oa[a][c]*n + oa[b][c]
				if seen[k] {
					return fmt.Errorf("ValidateOA: rows %d,%d repeat a pair: %w", a, b, ErrInvalidDesign)
				}
				seen[k] = true
			}
		}
	}

	return nil
}

// minFactor returns the smallest prime-power component of n (n ≥ 2).
func minFactor(n int) int {
	best := n
	for _, q := range numtheory.Factor(n) {
		if q < best {
			best = q
		}
	}
	return best
}
