// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_paley.go: implementation of Paley(q) constructor.
//
// Contract:
//   • q ≥ 5 (else ErrTooFewVertices), q a prime power with q ≡ 1 (mod 4)
//     (else ErrInvalidParameter). The congruence makes -1 a square, so the
//     relation "x - y is a non-zero square" is symmetric.
//   • Vertex i is the field element i of gf.New(q).
//
// Complexity:
//   • Time: O(q²). Space: O(q) for the field tables.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/gf"
)

const minPaleyOrder = 5

// Paley returns a Constructor that builds the Paley graph P(q).
func Paley(q int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if q < minPaleyOrder {
			return fmt.Errorf("%s: q=%d < min=%d: %w", MethodPaley, q, minPaleyOrder, ErrTooFewVertices)
		}
		if q%4 != 1 {
			return fmt.Errorf("%s: q=%d is not 1 mod 4: %w", MethodPaley, q, ErrInvalidParameter)
		}
		f, err := gf.New(q)
		if err != nil {
			return fmt.Errorf("%s: q=%d: %v: %w", MethodPaley, q, err, ErrInvalidParameter)
		}

		ids, err := addIndexedVertices(g, cfg, MethodPaley, q, strconv.Itoa)
		if err != nil {
			return err
		}

		return connectWhere(g, MethodPaley, ids, func(i, j int) bool {
			return f.IsSquare(f.Sub(i, j))
		})
	}
}
