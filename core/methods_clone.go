// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and complementing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
//   - Complement adds edges in sorted vertex-pair order, so its edge IDs are reproducible.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same name and vertices, but no edges.
// Vertex Metadata maps are shared, not copied.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(WithName(g.name), WithVertexCapacity(len(g.vertices)))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of vertices, edges and adjacency.
// Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: e.ID, From: e.From, To: e.To}
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}

// Complement returns the graph on the same vertex set whose edges are exactly
// the non-edges of g. The result carries no name and fresh edge IDs.
//
// Complexity: O(V²).
func (g *Graph) Complement() *Graph {
	ids := g.Vertices()
	out := NewGraph(WithVertexCapacity(len(ids)))

	g.muVert.RLock()
	for _, id := range ids {
		out.vertices[id] = &Vertex{ID: id, Metadata: g.vertices[id].Metadata}
		out.adjacency[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for i, u := range ids {
		row := g.adjacency[u]
		for _, v := range ids[i+1:] {
			if _, adj := row[v]; adj {
				continue
			}
			eid := nextEdgeID(out)
			out.edges[eid] = &Edge{ID: eid, From: u, To: v}
			out.adjacency[u][v] = eid
			out.adjacency[v][u] = eid
		}
	}

	return out
}
