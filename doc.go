// SPDX-License-Identifier: MIT

// Package srgcat is a registry of constructions for strongly regular graphs.
//
// Given parameter tuples (v, k, λ, μ) it finds which known construction
// realises each one, records a lazy recipe for it, closes the registry under
// complementation and reports the tuples a reference catalog marks as
// existing that are still without a recipe.
//
// Families, tried in this order:
//
//	Paley            PaleyGraph(q)                      q ≡ 1 (mod 4) prime power
//	Johnson          JohnsonGraph(m)                    2-subsets of an m-set
//	OA block         OrthogonalArrayBlockGraph(m, n)    columns of an OA(m, n)
//	Steiner          SteinerBlockGraph(n, m)            blocks of an S(2, m, n)
//	Affine polar     AffineOrthogonalPolarGraph(d,q,±)  VO±(d, q)
//
// plus six sporadic graphs (Schläfli, Hoffman–Singleton, Sims–Gewirtz, M22,
// Cameron, McLaughlin).
//
// Packages:
//
//	srg/        parameters, recipes, matchers, registry, closure, diff, realisation
//	feasible/   feasible tuple enumeration and parsing
//	catalog/    Brouwer table, YAML and SQLite catalog I/O, reports
//	design/     orthogonal arrays, Steiner systems, Witt designs
//	builder/    graph constructors for every recipe
//	core/       thread-safe simple graph with SRG parameter check
//	matrix/     adjacency matrices and Jacobi eigenvalues
//	bfs/        breadth-first search, eccentricity, diameter
//	gf/         finite fields GF(q)
//	numtheory/  squares, prime powers, divisors
//
// Quick start:
//
//	reg, _ := srg.Build(ctx, feasible.Enumerate(1, 300))
//	srg.Close(reg)
//	leftovers := srg.Diff(reg, catalog)
//
// The srgcat command (cmd/srgcat) wraps the same flow.
package srgcat
