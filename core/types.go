// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.
//
// The Graph is a simple undirected graph: no self-loops, at most one edge per
// unordered pair. That is the only graph class the SRG factories produce and
// the only one the parameter computation is defined on.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrLoopNotAllowed       - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed  - second edge between the same endpoints.
//	ErrEmptyGraph           - parameter computation on a graph without vertices.
//	ErrNotRegular           - vertex degrees differ.
//	ErrNotStronglyRegular   - λ or μ is not constant (or undefined).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyGraph indicates a query that needs at least one vertex.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrNotRegular indicates that not all vertices share one degree.
	ErrNotRegular = errors.New("core: graph is not regular")

	// ErrNotStronglyRegular indicates a regular graph whose adjacent or
	// non-adjacent pairs disagree on their common-neighbour count.
	ErrNotStronglyRegular = errors.New("core: graph is not strongly regular")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data (e.g. the block or field element a
	// factory built the vertex from). It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two distinct vertices.
// From/To keep the orientation of the AddEdge call for stable output only.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint passed to AddEdge.
	From string

	// To is the second endpoint passed to AddEdge.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable name (e.g. "Paley(13)") to the graph.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithVertexCapacity pre-sizes the vertex and adjacency maps.
// Negative values are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert → muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	name     string
	capacity int

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty simple undirected Graph.
// Complexity: O(1) (plus the optional capacity hint).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string, g.capacity)

	return g
}
