// SPDX-License-Identifier: MIT

// Package design is the combinatorial-design oracle behind the SRG matchers.
//
// It answers two kinds of questions and keeps them consistent:
//
//   - existence: OrthogonalArrayExists(m, n), BIBDExists(n, m);
//   - realisation: OrthogonalArray(m, n), BIBD(n, m).
//
// The oracle is conservative: it reports "exists" only for parameter sets it
// can actually build, so a positive existence answer followed by a failed
// realisation is always an integrity fault, never an expected outcome.
//
// Supported constructions:
//
//	OA(m, n)      MacNeish product of affine-plane arrays, m ≤ min q_i + 1
//	              over the prime-power factors q_i of n; beyond that,
//	              OA(4, 10) and OA(4, 14) from quasi-difference matrices
//	              over Z_9 and Z_13,
//	              OA(7, 12) and OA(5, 15) from difference matrices.
//	S(2, m, n)    single block (m = n), all pairs (m = 2), Steiner triple
//	              systems (m = 3, n ≡ 1,3 mod 6; Bose and Skolem), lines of
//	              PG(d, q) (m = q+1) and AG(d, q) (m = q), d ≥ 2,
//	              Hermitian unitals S(2, q+1, q³+1), and tabled
//	              difference families for m = 4, 5.
//	S(4, 7, 23)   weight-7 words of the cyclic binary Golay code.
//	S(3, 6, 22)   derived design of S(4, 7, 23) at a point.
//
// Blocks are returned as sorted []int over points 0..n-1 and the block list is
// sorted lexicographically, so realisations are deterministic.
package design
