// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// helpers.go: shared vertex/edge emission used by every impl_*.go.
//
// Design principles:
//   - Vertices are added in index order 0..n-1 via cfg.idFn.
//   - Edges are emitted for pairs i<j in lexicographic order, so edge IDs are
//     reproducible for equal inputs.
//   - Errors carry the constructor name as prefix and wrap the core sentinel.

package builder

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/srgcat/core"
)

// addIndexedVertices inserts n vertices with IDs cfg.idFn(0..n-1).
// When cfg.withLabel is set, label(i) is stored under MetaLabel.
// Complexity: O(n).
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int, label func(int) string) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		var meta map[string]interface{}
		if cfg.withLabel && label != nil {
			meta = map[string]interface{}{MetaLabel: label(i)}
		}
		if err := g.AddVertexWithMeta(ids[i], meta); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connectWhere emits {ids[i], ids[j]} for every i<j with adj(i, j).
// Complexity: O(n²) predicate calls.
func connectWhere(g *core.Graph, method string, ids []string, adj func(i, j int) bool) error {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if !adj(i, j) {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, ids[i], ids[j], err)
			}
		}
	}

	return nil
}

// pointSet is a bitset over non-negative point labels.
type pointSet []uint64

// newPointSet packs pts into a bitset sized for maxPoint.
func newPointSet(pts []int, maxPoint int) pointSet {
	s := make(pointSet, maxPoint/64+1)
	for _, p := range pts {
		s[p/64] |= 1 << (uint(p) % 64)
	}

	return s
}

// meet returns |a ∩ b|.
func (a pointSet) meet(b pointSet) int {
	n := 0
	for w := range a {
		n += bits.OnesCount64(a[w] & b[w])
	}

	return n
}

// has reports whether p is in the set.
func (a pointSet) has(p int) bool {
	return a[p/64]>>(uint(p)%64)&1 == 1
}

// formatSet renders {a,b,c}.
func formatSet(xs []int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte('}')

	return sb.String()
}

// formatTuple renders (a,b,c).
func formatTuple(xs []int) string {
	s := formatSet(xs)
	return "(" + s[1:len(s)-1] + ")"
}

// blockSets validates blocks (non-empty, points ≥ 0) and packs them.
func blockSets(method string, blocks [][]int) ([]pointSet, error) {
	maxPoint := 0
	for bi, b := range blocks {
		if len(b) == 0 {
			return nil, fmt.Errorf("%s: block %d is empty: %w", method, bi, ErrInvalidParameter)
		}
		for _, p := range b {
			if p < 0 {
				return nil, fmt.Errorf("%s: block %d has point %d < 0: %w", method, bi, p, ErrInvalidParameter)
			}
			if p > maxPoint {
				maxPoint = p
			}
		}
	}
	sets := make([]pointSet, len(blocks))
	for i, b := range blocks {
		sets[i] = newPointSet(b, maxPoint)
	}

	return sets, nil
}
