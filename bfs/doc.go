// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances and visit order, plus the distance summaries used to
// describe realised strongly regular graphs.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a BFSResult (Order, Depth).
//   - WithOnVisit observes every visit and may abort the traversal.
//   - Eccentricity and Diameter run BFS from one or every vertex.
//   - Layers returns the distance partition around a vertex; a primitive
//     SRG has exactly three layers of sizes 1, k and v-k-1.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs, so the visit order is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS, Layers: O(V + E) time, O(V) space.
//   - Diameter: O(V·(V + E)).
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrDisconnected, or the context
//     error on cancellation.
package bfs
