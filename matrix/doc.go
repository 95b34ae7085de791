// SPDX-License-Identifier: MIT

// Package matrix holds the dense linear algebra behind spectral checks of
// strongly regular graphs.
//
// What it provides:
//
//   - Dense: row-major float64 matrix with bounds-checked At/Set.
//   - Adjacency: the 0/1 adjacency matrix of a core.Graph, rows in sorted
//     vertex-ID order.
//   - EigenSym: eigenvalues of a symmetric matrix by cyclic Jacobi sweeps.
//   - Cluster: group nearly equal eigenvalues into (value, multiplicity).
//
// Errors are package sentinels (ErrOutOfRange, ErrNonSquare, ...), wrapped
// with the operation name; match them with errors.Is.
package matrix
