// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Name        string
	VertexCount int
	EdgeCount   int
	MinDegree   int
	MaxDegree   int
}

// Name returns the name given by WithName, or "".
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// Stats produces a read-only snapshot of sizes and the degree range.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot name and vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and degrees.
//
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{Name: g.name, VertexCount: len(g.vertices)}
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	first := true
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if first || d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		first = false
	}
	g.muEdgeAdj.RUnlock()
	g.muVert.RUnlock()

	return &stats
}
