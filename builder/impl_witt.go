// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_witt.go: sporadic graphs from the Witt designs S(3,6,22), S(4,7,23).
//
//   • M22()        (77,16,0,4): hexads of S(3,6,22), adjacent iff disjoint.
//   • SimsGewirtz() (56,10,0,2): the hexads avoiding point 0, adjacent iff
//     disjoint (an induced subgraph of M22).
//   • Cameron()    (231,30,9,3): 2-subsets of the 22 points, adjacent iff
//     disjoint with their union inside a hexad.
//   • McLaughlin() (275,112,30,56): points 1..22 of S(4,7,23), then the 77
//     heptads through 0 (B), then the 176 heptads avoiding 0 (C):
//       point x ~ b ∈ B iff x ∉ b;  point x ~ c ∈ C iff x ∈ c;
//       b ~ b' iff |b∩b'| = 1;       c ~ c' iff |c∩c'| = 1;
//       b ~ c iff |b∩c| = 3.
//
// All four read design.Witt22 / design.Witt23, which are computed once.

package builder

import (
	"math/bits"
	"strconv"

	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/design"
)

const wittPoints22 = 22

// disjointBlocks emits the disjointness graph of blocks.
func disjointBlocks(g *core.Graph, cfg builderConfig, method string, blocks [][]int) error {
	sets, err := blockSets(method, blocks)
	if err != nil {
		return err
	}
	ids, err := addIndexedVertices(g, cfg, method, len(blocks), func(i int) string {
		return formatSet(blocks[i])
	})
	if err != nil {
		return err
	}

	return connectWhere(g, method, ids, func(i, j int) bool {
		return sets[i].meet(sets[j]) == 0
	})
}

// M22 returns a Constructor for the M22 graph.
func M22() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return disjointBlocks(g, cfg, MethodM22, design.Witt22())
	}
}

// SimsGewirtz returns a Constructor for the Sims–Gewirtz graph.
func SimsGewirtz() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var hexads [][]int
		for _, h := range design.Witt22() {
			if h[0] != 0 { // hexads are sorted ascending
				hexads = append(hexads, h)
			}
		}
		return disjointBlocks(g, cfg, MethodSimsGewirtz, hexads)
	}
}

// Cameron returns a Constructor for the Cameron graph.
func Cameron() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// A 4-set lies in at most one hexad; record every one that does.
		inHexad := make(map[uint32]bool)
		for _, h := range design.Witt22() {
			for a := 0; a < len(h); a++ {
				for b := a + 1; b < len(h); b++ {
					var rest uint32
					for c, p := range h {
						if c != a && c != b {
							rest |= 1 << uint(p)
						}
					}
					inHexad[rest] = true
				}
			}
		}

		pairs := make([][2]int, 0, wittPoints22*(wittPoints22-1)/2)
		for a := 0; a < wittPoints22; a++ {
			for b := a + 1; b < wittPoints22; b++ {
				pairs = append(pairs, [2]int{a, b})
			}
		}
		ids, err := addIndexedVertices(g, cfg, MethodCameron, len(pairs), func(i int) string {
			return formatSet(pairs[i][:])
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodCameron, ids, func(i, j int) bool {
			p, q := pairs[i], pairs[j]
			m := uint32(1)<<uint(p[0]) | uint32(1)<<uint(p[1]) | uint32(1)<<uint(q[0]) | uint32(1)<<uint(q[1])
			return bits.OnesCount32(m) == 4 && inHexad[m]
		})
	}
}

// McLaughlin returns a Constructor for the McLaughlin graph.
func McLaughlin() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var through, avoid [][]int
		for _, b := range design.Witt23() {
			if b[0] == 0 {
				through = append(through, b)
			} else {
				avoid = append(avoid, b)
			}
		}
		blocks := append(append([][]int{}, through...), avoid...)
		sets, err := blockSets(MethodMcLaughlin, blocks)
		if err != nil {
			return err
		}

		nb := len(through)
		n := wittPoints22 + len(blocks)
		ids, err := addIndexedVertices(g, cfg, MethodMcLaughlin, n, func(i int) string {
			if i < wittPoints22 {
				return strconv.Itoa(i + 1)
			}
			return formatSet(blocks[i-wittPoints22])
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodMcLaughlin, ids, func(i, j int) bool {
			switch {
			case j < wittPoints22: // point, point
				return false
			case i < wittPoints22: // point x, block
				x, bj := i+1, j-wittPoints22
				if bj < nb {
					return !sets[bj].has(x)
				}
				return sets[bj].has(x)
			}
			bi, bj := i-wittPoints22, j-wittPoints22
			meet := sets[bi].meet(sets[bj])
			if (bi < nb) == (bj < nb) {
				return meet == 1
			}
			return meet == 3
		})
	}
}
