// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Eigenvalue is a distinct eigenvalue with its multiplicity.
type Eigenvalue struct {
	Value        float64
	Multiplicity int
}

// EigenSym returns the eigenvalues of the symmetric matrix m in ascending
// order. It runs cyclic Jacobi sweeps on a copy until every off-diagonal
// entry is below tol, failing with ErrMatrixEigenFailed after maxSweeps.
//
// Complexity: O(n³) per sweep; sweeps converge quadratically.
func EigenSym(m *Dense, tol float64, maxSweeps int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("EigenSym: %w", ErrInvalidDimensions)
	}
	if m.r != m.c {
		return nil, fmt.Errorf("EigenSym: %d×%d: %w", m.r, m.c, ErrNonSquare)
	}
	if !m.IsSymmetric(tol) {
		return nil, fmt.Errorf("EigenSym: %w", ErrAsymmetry)
	}

	n := m.r
	a := append([]float64(nil), m.data...)

	converged := false
	for sweep := 0; sweep <= maxSweeps; sweep++ {
		if maxOffDiagonal(a, n) < tol {
			converged = true
			break
		}
		if sweep == maxSweeps {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(a, n, p, q)
			}
		}
	}
	if !converged {
		return nil, fmt.Errorf("EigenSym: %d sweeps: %w", maxSweeps, ErrMatrixEigenFailed)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = a[i*n+i]
	}
	sort.Float64s(out)
	return out, nil
}

// rotate annihilates a[p,q] with one Jacobi rotation, in place.
func rotate(a []float64, n, p, q int) {
	apq := a[p*n+q]
	if apq == 0 {
		return
	}
	app, aqq := a[p*n+p], a[q*n+q]

	// θ = (aqq−app)/(2·apq); t is the smaller root of t² + 2θt − 1 = 0.
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1.0 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip, aiq := a[i*n+p], a[i*n+q]
		newIP := c*aip - s*aiq
		newIQ := s*aip + c*aiq
		a[i*n+p], a[p*n+i] = newIP, newIP
		a[i*n+q], a[q*n+i] = newIQ, newIQ
	}
	a[p*n+p] = app - t*apq
	a[q*n+q] = aqq + t*apq
	a[p*n+q], a[q*n+p] = 0, 0
}

func maxOffDiagonal(a []float64, n int) float64 {
	best := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if x := math.Abs(a[i*n+j]); x > best {
				best = x
			}
		}
	}
	return best
}

// Cluster groups ascending values whose distance to the first member of
// their group is at most tol. Each group reports its mean.
func Cluster(sorted []float64, tol float64) []Eigenvalue {
	var out []Eigenvalue
	for i := 0; i < len(sorted); {
		j, sum := i, 0.0
		for j < len(sorted) && sorted[j]-sorted[i] <= tol {
			sum += sorted[j]
			j++
		}
		out = append(out, Eigenvalue{Value: sum / float64(j-i), Multiplicity: j - i})
		i = j
	}
	return out
}
