// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - NeighborIDs and AdjacencyList values are sorted ascending.

package core

import "sort"

// NeighborIDs returns the sorted IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// CommonNeighbors returns |N(u) ∩ N(v)|.
func (g *Graph) CommonNeighbors(u, v string) (int, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	a, b := g.adjacency[u], g.adjacency[v]
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}

	return n, nil
}

// AdjacencyList returns vertex ID → sorted neighbour IDs for every vertex.
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.Vertices()
	out := make(map[string][]string, len(ids))

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, id := range ids {
		nbs := make([]string, 0, len(g.adjacency[id]))
		for nb := range g.adjacency[id] {
			nbs = append(nbs, nb)
		}
		sort.Strings(nbs)
		out[id] = nbs
	}

	return out
}
