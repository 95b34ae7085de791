// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_johnson.go: implementation of Johnson(m) constructor, J(m,2).
//
// Contract:
//   • m ≥ 2 (else ErrTooFewVertices).
//   • Vertices are the 2-subsets {a,b} of {0..m-1}, a<b, in lexicographic
//     order; two are adjacent iff they share exactly one point.
//   • J(m,2) is the triangular graph T(m), the line graph of K_m.
//
// Complexity:
//   • Time: O(m⁴). Space: O(m²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// Johnson returns a Constructor that builds the Johnson graph J(m,2).
func Johnson(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < MinJohnsonPoints {
			return fmt.Errorf("%s: m=%d < min=%d: %w", MethodJohnson, m, MinJohnsonPoints, ErrTooFewVertices)
		}

		pairs := make([][2]int, 0, m*(m-1)/2)
		for a := 0; a < m; a++ {
			for b := a + 1; b < m; b++ {
				pairs = append(pairs, [2]int{a, b})
			}
		}
		ids, err := addIndexedVertices(g, cfg, MethodJohnson, len(pairs), func(i int) string {
			return formatSet(pairs[i][:])
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodJohnson, ids, func(i, j int) bool {
			p, q := pairs[i], pairs[j]
			shared := 0
			for _, x := range p {
				if x == q[0] || x == q[1] {
					shared++
				}
			}
			return shared == 1
		})
	}
}
