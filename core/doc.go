// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory simple undirected Graph with
// a minimal, composable API surface, sized for the strongly regular graphs
// built by package builder.
//
// The Graph G = (V,E) is always simple:
//
//   - No self-loops: AddEdge(v, v) → ErrLoopNotAllowed.
//   - No parallel edges: a second AddEdge(u, v) → ErrMultiEdgeNotAllowed.
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v] = edgeID, mirrored at adjacency[v][u].
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1)
//	AddVertexWithMeta(id string, meta map[..]) error // O(|meta|)
//	HasVertex(id string) bool                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                 // O(1)
//	HasEdge(u, v string) bool                       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // sorted
//	CommonNeighbors(u, v string) (int, error)
//	AdjacencyList() map[string][]string
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // insertion order
//	Degree(id string) (int, error)
//
//	// Derived graphs
//	CloneEmpty(), Clone(), Complement()
//	InducedSubgraph(g, keep), Neighborhood(g, id)
//
//	// Strong regularity
//	StronglyRegularParameters() (SRGParameters, error) // O(V³/64)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//	ErrEmptyGraph          – parameters of a graph with no vertices
//	ErrNotRegular          – unequal degrees
//	ErrNotStronglyRegular  – λ or μ not constant
package core
