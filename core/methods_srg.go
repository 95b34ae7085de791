// SPDX-License-Identifier: MIT
// File: methods_srg.go
// Role: Strong-regularity test and parameter extraction.
// Determinism:
//   - Vertices are indexed in Vertices() order; the result does not depend on it.
// Concurrency:
//   - Read locks only.

package core

import "math/bits"

// SRGParameters is the (v, k, λ, μ) tuple computed from a concrete graph.
type SRGParameters struct {
	V, K, Lambda, Mu int
}

// StronglyRegularParameters computes (v, k, λ, μ) if g is strongly regular.
//
// Implementation:
//   - Stage 1: Index vertices and pack adjacency rows into uint64 bitsets.
//   - Stage 2: Check every row has the same popcount k.
//   - Stage 3: For each pair i<j, popcount(row_i AND row_j) must equal λ for
//     adjacent pairs and μ for non-adjacent pairs.
//
// Complete and edgeless graphs leave μ or λ undefined and are rejected with
// ErrNotStronglyRegular.
//
// Complexity: O(V³ / 64) time, O(V² / 64) space.
func (g *Graph) StronglyRegularParameters() (SRGParameters, error) {
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return SRGParameters{}, ErrEmptyGraph
	}
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	words := (n + 63) / 64
	rows := make([][]uint64, n)
	g.muEdgeAdj.RLock()
	for i, id := range ids {
		row := make([]uint64, words)
		for nb := range g.adjacency[id] {
			j := idx[nb]
			row[j/64] |= 1 << (uint(j) % 64)
		}
		rows[i] = row
	}
	g.muEdgeAdj.RUnlock()

	k := popcount(rows[0])
	for i := 1; i < n; i++ {
		if popcount(rows[i]) != k {
			return SRGParameters{}, ErrNotRegular
		}
	}
	if k == 0 || k == n-1 {
		return SRGParameters{}, ErrNotStronglyRegular
	}

	lambda, mu := -1, -1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := 0
			for w := 0; w < words; w++ {
				c += bits.OnesCount64(rows[i][w] & rows[j][w])
			}
			if rows[i][j/64]&(1<<(uint(j)%64)) != 0 {
				if lambda < 0 {
					lambda = c
				} else if lambda != c {
					return SRGParameters{}, ErrNotStronglyRegular
				}
			} else {
				if mu < 0 {
					mu = c
				} else if mu != c {
					return SRGParameters{}, ErrNotStronglyRegular
				}
			}
		}
	}

	return SRGParameters{V: n, K: k, Lambda: lambda, Mu: mu}, nil
}

// IsStronglyRegular reports whether StronglyRegularParameters succeeds.
func (g *Graph) IsStronglyRegular() bool {
	_, err := g.StronglyRegularParameters()

	return err == nil
}

func popcount(row []uint64) int {
	c := 0
	for _, w := range row {
		c += bits.OnesCount64(w)
	}

	return c
}
