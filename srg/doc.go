// SPDX-License-Identifier: MIT

// Package srg classifies strongly regular graph parameter tuples (v, k, λ, μ)
// against five infinite families and six sporadic graphs, and keeps the
// results in a Registry of lazy construction recipes.
//
// Pipeline (each phase is explicit, the caller threads the Registry):
//
//	reg, err := srg.Build(ctx, feasible)   // seed sporadic table, classify
//	added := srg.Close(reg)                // single-pass complement closure
//	left := srg.Diff(reg, catalog)         // catalog "exists" minus registry
//
// Matching never builds a graph. A Recipe is a tagged union
//
//	Direct(constructor, args...) | ComplementOf(base)
//
// realised on demand by Realize through a GraphFactory; Verify additionally
// checks the realised graph's parameters and is never part of classification.
// VerifyGraph, Eigenvalues with CheckSpectrum, and Subconstituent work on a
// graph the caller already holds, so one realisation serves every check.
//
// Classifier priority: Paley, Johnson, OrthogonalArrayBlock, Steiner,
// AffinePolar. The sporadic table is seeded first and is never overwritten.
//
// Errors:
//
//	ErrOracleIntegrity    – the design oracle claimed existence but could not realise
//	ErrUnknownConstructor – recipe names a constructor the factory does not know
//	ErrBadRecipe          – wrong arity or malformed recipe
//	ErrParameterMismatch  – Verify found different (v,k,λ,μ)
//	ErrSpectrumMismatch   – VerifySpectrum found a different adjacency spectrum
//	ErrUnknownStatus      – ParseStatus got a word outside exists/impossible/open
//	ErrUnknownFamily      – ParseFamily got a name no Family prints as
package srg
