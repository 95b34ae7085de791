// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals a symmetric matrix was required.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrMatrixEigenFailed indicates that Jacobi sweeps did not converge.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
