// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_intersection.go: implementation of BlockIntersection(blocks).
//
// Contract:
//   • len(blocks) ≥ 1 (else ErrTooFewVertices); every block non-empty with
//     points ≥ 0 (else ErrInvalidParameter).
//   • Vertices are the blocks in the given order; two blocks are adjacent iff
//     they share at least one point.
//   • For a Steiner system S(2,m,n) the result is an SRG with
//     v = n(n-1)/(m(m-1)), k = m(n-m)/(m-1), λ = (m-1)² + (n-1)/(m-1) - 2, μ = m².
//
// Complexity:
//   • Time: O(b²·n/64) for b blocks on n points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// BlockIntersection returns a Constructor for the block intersection graph.
func BlockIntersection(blocks [][]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(blocks) < MinBlocks {
			return fmt.Errorf("%s: %d blocks < min=%d: %w", MethodBlockIntersection, len(blocks), MinBlocks, ErrTooFewVertices)
		}
		sets, err := blockSets(MethodBlockIntersection, blocks)
		if err != nil {
			return err
		}
		ids, err := addIndexedVertices(g, cfg, MethodBlockIntersection, len(blocks), func(i int) string {
			return formatSet(blocks[i])
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodBlockIntersection, ids, func(i, j int) bool {
			return sets[i].meet(sets[j]) > 0
		})
	}
}
