// SPDX-License-Identifier: MIT
// Package: srgcat/design
//
// steiner.go: Steiner 2-designs S(2, m, n), i.e. BIBD(n, m, 1).
//
// Contract:
//   • Points are 0..n-1, every block has m points, every pair of points lies
//     in exactly one block, hence n(n-1)/(m(m-1)) blocks.
//   • BIBDExists(n, m) is true exactly for the families BIBD can realise.

package design

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/srgcat/gf"
	"github.com/katalvlaran/srgcat/numtheory"
)

// BIBDExists reports whether BIBD(n, m) succeeds.
func BIBDExists(n, m int) bool {
	_, ok := steinerKind(n, m)
	return ok
}

// BIBD realises S(2, m, n) as a sorted list of sorted blocks.
// Complexity: O(n²·m) for the geometric constructions, O(n²) otherwise.
func BIBD(n, m int) ([][]int, error) {
	kind, ok := steinerKind(n, m)
	if !ok {
		return nil, fmt.Errorf("BIBD(%d,%d): %w", n, m, ErrNoConstruction)
	}

	var (
		blocks [][]int
		err    error
	)
	switch kind.family {
	case familyTrivial:
		blocks = [][]int{seq(n)}
	case familyPairs:
		blocks = allPairs(n)
	case familyBose:
		blocks = boseTriples(n)
	case familySkolem:
		blocks = skolemTriples(n)
	case familyProjective:
		blocks, err = projectiveLines(kind.d, kind.q)
	case familyAffine:
		blocks, err = affineLines(kind.d, kind.q)
	case familyUnital:
		blocks, err = hermitianUnital(kind.q)
	case familyDifference:
		blocks = differenceFamilies[[2]int{n, m}].develop()
	}
	if err != nil {
		return nil, fmt.Errorf("BIBD(%d,%d): %w", n, m, err)
	}

	return canonical(blocks), nil
}

// ValidateBIBD checks that blocks form an S(2, m, n) on points 0..n-1.
func ValidateBIBD(n, m int, blocks [][]int) error {
	if n < 2 || m < 2 {
		return fmt.Errorf("ValidateBIBD(%d,%d): %w", n, m, ErrInvalidDesign)
	}
	covered := make([]bool, n*n)
	pairs := 0
	for bi, b := range blocks {
		if len(b) != m {
			return fmt.Errorf("ValidateBIBD: block %d has %d points, want %d: %w", bi, len(b), m, ErrInvalidDesign)
		}
		for i, x := range b {
			if x < 0 || x >= n {
				return fmt.Errorf("ValidateBIBD: point %d out of range: %w", x, ErrInvalidDesign)
			}
			for _, y := range b[i+1:] {
				if x == y || covered[x*n+y] {
					return fmt.Errorf("ValidateBIBD: pair {%d,%d} repeated: %w", x, y, ErrInvalidDesign)
				}
				covered[x*n+y], covered[y*n+x] = true, true
				pairs++
			}
		}
	}
	if pairs != n*(n-1)/2 {
		return fmt.Errorf("ValidateBIBD: %d of %d pairs covered: %w", pairs, n*(n-1)/2, ErrInvalidDesign)
	}

	return nil
}

type steinerFamily uint8

const (
	familyTrivial steinerFamily = iota + 1
	familyPairs
	familyBose
	familySkolem
	familyProjective
	familyAffine
	familyUnital
	familyDifference
)

type steinerParams struct {
	family steinerFamily
	d, q   int
}

// steinerKind picks the construction for (n, m); the order mirrors BIBD.
func steinerKind(n, m int) (steinerParams, bool) {
	switch {
	case m < 2 || n < m:
		return steinerParams{}, false
	case n == m:
		return steinerParams{family: familyTrivial}, true
	case m == 2:
		return steinerParams{family: familyPairs}, true
	case m == 3 && n%6 == 3:
		return steinerParams{family: familyBose}, true
	case m == 3 && n%6 == 1:
		return steinerParams{family: familySkolem}, true
	case m == 3:
		return steinerParams{}, false
	}

	// PG(d, q): m = q+1, n = (q^(d+1)-1)/(q-1).
	if q := m - 1; numtheory.IsPrimePower(q) {
		for d, pts := 2, 1+q+q*q; pts <= n; d++ {
			if pts == n {
				return steinerParams{family: familyProjective, d: d, q: q}, true
			}
			pts = pts*q + 1
		}
	}
	// AG(d, q): m = q, n = q^d.
	if q := m; numtheory.IsPrimePower(q) {
		for d, pts := 2, q*q; pts <= n; d++ {
			if pts == n {
				return steinerParams{family: familyAffine, d: d, q: q}, true
			}
			pts *= q
		}
	}
	// Hermitian unital: m = q+1, n = q³+1.
	if q := m - 1; numtheory.IsPrimePower(q) && n == q*q*q+1 {
		return steinerParams{family: familyUnital, q: q}, true
	}
	if _, ok := differenceFamilies[[2]int{n, m}]; ok {
		return steinerParams{family: familyDifference}, true
	}

	return steinerParams{}, false
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func allPairs(n int) [][]int {
	out := make([][]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, []int{i, j})
		}
	}
	return out
}

// boseTriples builds STS(6t+3) on Z_{2t+1} × Z_3 with the idempotent
// commutative quasigroup x∘y = (t+1)(x+y) mod 2t+1. Point (x, i) ↦ 3x+i.
func boseTriples(n int) [][]int {
	t := (n - 3) / 6
	r := 2*t + 1
	pt := func(x, i int) int { return 3*x + i%3 }
	op := func(x, y int) int { return ((t + 1) * (x + y)) % r }

	var out [][]int
	for x := 0; x < r; x++ {
		out = append(out, []int{pt(x, 0), pt(x, 1), pt(x, 2)})
	}
	for x := 0; x < r; x++ {
		for y := x + 1; y < r; y++ {
			for i := 0; i < 3; i++ {
				out = append(out, []int{pt(x, i), pt(y, i), pt(op(x, y), i+1)})
			}
		}
	}

	return out
}

// skolemTriples builds STS(6t+1) on {∞} ∪ Z_{2t} × Z_3 with the
// half-idempotent commutative quasigroup obtained by relabelling the
// symbols of (x+y) mod 2t. Point (x, i) ↦ 3x+i, ∞ ↦ 6t.
func skolemTriples(n int) [][]int {
	t := (n - 1) / 6
	r := 2 * t
	inf := 6 * t
	pt := func(x, i int) int { return 3*x + i%3 }
	op := func(x, y int) int {
		s := (x + y) % r
		if s%2 == 0 {
			return s / 2
		}
		return t + (s-1)/2
	}

	var out [][]int
	for x := 0; x < t; x++ {
		out = append(out, []int{pt(x, 0), pt(x, 1), pt(x, 2)})
		for i := 0; i < 3; i++ {
			out = append(out, []int{inf, pt(x+t, i), pt(x, i+1)})
		}
	}
	for x := 0; x < r; x++ {
		for y := x + 1; y < r; y++ {
			for i := 0; i < 3; i++ {
				out = append(out, []int{pt(x, i), pt(y, i), pt(op(x, y), i+1)})
			}
		}
	}

	return out
}

// projectiveSpace holds the normalised points of PG(dim-1, q): vectors of
// GF(q)^dim whose first non-zero coordinate equals 1.
type projectiveSpace struct {
	f      *gf.Field
	q, dim int
	points [][]int
	index  map[int]int // code → position in points
}

func newProjectiveSpace(q, dim int, keep func(f *gf.Field, v []int) bool) (*projectiveSpace, error) {
	f, err := gf.New(q)
	if err != nil {
		return nil, err
	}
	ps := &projectiveSpace{f: f, q: q, dim: dim, index: make(map[int]int)}
	total := numtheory.Pow(q, dim)
	for code := 1; code < total; code++ {
		v := digits(code, q, dim)
		if leading(v) != 1 || (keep != nil && !keep(f, v)) {
			continue
		}
		ps.index[code] = len(ps.points)
		ps.points = append(ps.points, v)
	}

	return ps, nil
}

// span returns pa + s·pb scaled to its normalised code.
func (ps *projectiveSpace) span(a, b, s int) int {
	f := ps.f
	w := make([]int, ps.dim)
	for i := range w {
		w[i] = f.Add(ps.points[a][i], f.Mul(s, ps.points[b][i]))
	}
	inv, _ := f.Inv(leading(w))
	for i := range w {
		w[i] = f.Mul(w[i], inv)
	}
	return undigits(w, ps.q)
}

// projectiveLines returns the lines of PG(d, q) over its normalised points.
func projectiveLines(d, q int) ([][]int, error) {
	ps, err := newProjectiveSpace(q, d+1, nil)
	if err != nil {
		return nil, err
	}
	return coverPairs(len(ps.points), func(a, b int) []int {
		line := []int{b}
		for s := 0; s < q; s++ {
			line = append(line, ps.index[ps.span(a, b, s)])
		}
		return line
	}), nil
}

// hermitianUnital returns S(2, q+1, q³+1): the points of PG(2, q²) on
// x^(q+1) + y^(q+1) + z^(q+1) = 0, blocked by their secant lines.
func hermitianUnital(q int) ([][]int, error) {
	onCurve := func(f *gf.Field, v []int) bool {
		sum := 0
		for _, x := range v {
			sum = f.Add(sum, f.Pow(x, q+1))
		}
		return sum == 0
	}
	ps, err := newProjectiveSpace(q*q, 3, onCurve)
	if err != nil {
		return nil, err
	}
	return coverPairs(len(ps.points), func(a, b int) []int {
		line := []int{b}
		for s := 0; s < q*q; s++ {
			if i, ok := ps.index[ps.span(a, b, s)]; ok {
				line = append(line, i)
			}
		}
		return line
	}), nil
}

// affineLines returns the lines of AG(d, q) over GF(q)^d.
func affineLines(d, q int) ([][]int, error) {
	f, err := gf.New(q)
	if err != nil {
		return nil, err
	}
	n := numtheory.Pow(q, d)
	return coverPairs(n, func(a, b int) []int {
		pa, pb := digits(a, q, d), digits(b, q, d)
		dir := make([]int, d)
		for i := range dir {
			dir[i] = f.Sub(pb[i], pa[i])
		}
		line := make([]int, 0, q)
		for s := 0; s < q; s++ {
			w := make([]int, d)
			for i := range w {
				w[i] = f.Add(pa[i], f.Mul(s, dir[i]))
			}
			line = append(line, undigits(w, q))
		}
		return line
	}), nil
}

// coverPairs collects the lines through every still-uncovered pair.
func coverPairs(n int, line func(a, b int) []int) [][]int {
	covered := make([]bool, n*n)
	var out [][]int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if covered[a*n+b] {
				continue
			}
			l := line(a, b)
			for i, x := range l {
				for _, y := range l[i+1:] {
					covered[x*n+y], covered[y*n+x] = true, true
				}
			}
			out = append(out, l)
		}
	}
	return out
}

func digits(code, q, dim int) []int {
	v := make([]int, dim)
	for i := dim - 1; i >= 0; i-- {
		v[i] = code % q
		code /= q
	}
	return v
}

func undigits(v []int, q int) int {
	code := 0
	for _, x := range v {
		code = code*q + x
	}
	return code
}

func leading(v []int) int {
	for _, x := range v {
		if x != 0 {
			return x
		}
	}
	return 0
}

// canonical sorts every block and then the block list.
func canonical(blocks [][]int) [][]int {
	for _, b := range blocks {
		sort.Ints(b)
	}
	sort.Slice(blocks, func(i, j int) bool { return lessInts(blocks[i], blocks[j]) })
	return blocks
}

func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
