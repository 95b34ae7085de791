// SPDX-License-Identifier: MIT

// Package builder provides deterministic “functional‐options”‐style graph
// constructors for the strongly regular families and sporadic graphs that the
// srg package names in its recipes.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     each Constructor in order, wrapping the first error.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithIDScheme, WithIDPrefix, WithoutLabels.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//     – PaddedIDFn:        zero-padded decimal, sorted like the index.
//   - Families:
//     – Paley(q), Johnson(m), OrthogonalArrayBlock(oa), BlockIntersection(blocks),
//     AffinePolar(d, q, sign).
//   - Sporadic graphs:
//     – Schlaefli, HoffmanSingleton, SimsGewirtz, M22, Cameron, McLaughlin.
//
// Guarantees:
//
//   - Vertices are added in index order through the configured IDFn; the
//     combinatorial object behind each vertex is stored in
//     Vertex.Metadata[MetaLabel] unless WithoutLabels is given.
//   - Edges are emitted pair-by-pair in lexicographic index order.
//   - Structured runtime errors: "<Method>: <detail>: <sentinel>", test with
//     errors.Is against ErrTooFewVertices, ErrInvalidParameter, ErrConstructFailed.
//   - Constructors never panic; option constructors panic on nil inputs.
package builder
