// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: q=%d: %w", MethodPaley, q, ErrInvalidParameter)

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (m, n, d, block count) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a parameter outside the constructor's domain:
// non prime-power field order, Paley order not ≡ 1 (mod 4), odd polar
// dimension, sign not ±1, ragged orthogonal array, out-of-range symbols.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrConstructFailed indicates an internal construction failure (a core
// mutation was rejected, or a supporting design could not be produced).
var ErrConstructFailed = errors.New("builder: construction failed")
