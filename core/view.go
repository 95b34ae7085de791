// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex/edge IDs. No reordering guarantees beyond core rules.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(WithVertexCapacity(len(keep)))

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carrying the counter forward keeps future IDs clear of the copied ones.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// Neighborhood returns the subgraph induced on the neighbours of id
// (the first subconstituent). ErrVertexNotFound if id is absent.
func Neighborhood(g *Graph, id string) (*Graph, error) {
	nbs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(nbs))
	for _, nb := range nbs {
		keep[nb] = true
	}

	return InducedSubgraph(g, keep), nil
}
