// SPDX-License-Identifier: MIT
// Package: srgcat/gf
//
// gf.go: finite fields GF(q), q = p^e, for the algebraic graph factories.
//
// Representation:
//   • An element is an int in [0, q). Its base-p digits are the coefficients
//     of a polynomial of degree < e over GF(p); 0 is the zero element and 1
//     is the unit.
//   • Multiplication goes through discrete log / antilog tables built from a
//     primitive polynomial found by exhaustive search, so every field costs
//     O(q) memory regardless of e.
//   • Addition is digit-wise mod p (prime fields take the plain mod path).
//
// Determinism:
//   • The primitive polynomial is the first one in lexicographic coefficient
//     order, so element labels are stable across runs.

package gf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/srgcat/numtheory"
)

// ErrNotPrimePower is returned by New when q is not a prime power.
var ErrNotPrimePower = errors.New("gf: order is not a prime power")

// ErrZeroInverse is returned by Inv(0).
var ErrZeroInverse = errors.New("gf: zero has no inverse")

// Field is GF(q). The zero value is not usable; construct with New.
// A Field is immutable after New and safe for concurrent readers.
type Field struct {
	q, p, e int
	exp     []int // exp[i] = g^i, len q-1
	log     []int // log[a] = i with g^i = a; log[0] unused
}

// New builds GF(q).
// Complexity: O(q·e) per primitive-polynomial candidate.
func New(q int) (*Field, error) {
	p, e, ok := numtheory.PrimePower(q)
	if !ok {
		return nil, fmt.Errorf("New(%d): %w", q, ErrNotPrimePower)
	}
	f := &Field{q: q, p: p, e: e}
	if err := f.buildTables(); err != nil {
		return nil, fmt.Errorf("New(%d): %w", q, err)
	}

	return f, nil
}

// MustNew is New for orders the caller has already validated.
// It panics on a non prime power, mirroring regexp.MustCompile.
func MustNew(q int) *Field {
	f, err := New(q)
	if err != nil {
		panic(err)
	}
	return f
}

// Order returns q.
func (f *Field) Order() int { return f.q }

// Characteristic returns p.
func (f *Field) Characteristic() int { return f.p }

// Degree returns e with q = p^e.
func (f *Field) Degree() int { return f.e }

// Primitive returns the generator g of the multiplicative group.
func (f *Field) Primitive() int {
	if f.q == 2 {
		return 1
	}
	return f.exp[1]
}

// Elements returns 0..q-1 in ascending order.
func (f *Field) Elements() []int {
	out := make([]int, f.q)
	for i := range out {
		out[i] = i
	}
	return out
}

// Add returns a+b.
func (f *Field) Add(a, b int) int {
	if f.e == 1 {
		return (a + b) % f.p
	}
	r, place := 0, 1
	for i := 0; i < f.e; i++ {
		r += ((a%f.p + b%f.p) % f.p) * place
		a /= f.p
		b /= f.p
		place *= f.p
	}

	return r
}

// Neg returns -a.
func (f *Field) Neg(a int) int {
	if f.e == 1 {
		return (f.p - a) % f.p
	}
	r, place := 0, 1
	for i := 0; i < f.e; i++ {
		r += ((f.p - a%f.p) % f.p) * place
		a /= f.p
		place *= f.p
	}

	return r
}

// Sub returns a-b.
func (f *Field) Sub(a, b int) int { return f.Add(a, f.Neg(b)) }

// Mul returns a·b.
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%(f.q-1)]
}

// Inv returns a⁻¹.
func (f *Field) Inv(a int) (int, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}
	return f.exp[(f.q-1-f.log[a])%(f.q-1)], nil
}

// Pow returns a^k for k ≥ 0.
func (f *Field) Pow(a, k int) int {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return f.exp[(f.log[a]*(k%(f.q-1)))%(f.q-1)]
}

// IsSquare reports whether a is a square in GF(q). 0 counts as a square;
// in characteristic 2 every element is one.
func (f *Field) IsSquare(a int) bool {
	if a == 0 || f.p == 2 {
		return true
	}
	return f.log[a]%2 == 0
}

// buildTables searches monic degree-e polynomials for a primitive one and
// fills exp/log from the powers of x modulo it.
func (f *Field) buildTables() error {
	n := f.q - 1
	f.exp = make([]int, n)
	f.log = make([]int, f.q)
	if f.q == 2 {
		f.exp[0], f.log[1] = 1, 0
		return nil
	}

	coeffs := make([]int, f.e) // c_0..c_{e-1} of x^e + Σ c_i x^i
	digits := make([]int, f.e)
	for cand := 0; cand < f.q; cand++ {
		decode(cand, f.p, coeffs)
		if coeffs[0] == 0 {
			continue // x divides the polynomial
		}
		if f.tryPrimitive(coeffs, digits) {
			return nil
		}
	}

	return errors.New("gf: no primitive polynomial found")
}

// tryPrimitive walks x^0, x^1, ... modulo the candidate and accepts it when
// the walk visits all q-1 non-zero residues before returning to 1.
func (f *Field) tryPrimitive(coeffs, digits []int) bool {
	for i := range f.log {
		f.log[i] = -1
	}
	for i := range digits {
		digits[i] = 0
	}
	digits[0] = 1
	for i := 0; i < f.q-1; i++ {
		a := encode(digits, f.p)
		if a == 0 || f.log[a] != -1 {
			return false
		}
		f.exp[i], f.log[a] = a, i
		// digits ← x·digits mod poly
		top := digits[f.e-1]
		for j := f.e - 1; j > 0; j-- {
			digits[j] = digits[j-1]
		}
		digits[0] = 0
		for j := 0; j < f.e; j++ {
			digits[j] = ((digits[j]-top*coeffs[j])%f.p + f.p) % f.p
		}
	}

	return encode(digits, f.p) == 1
}

func decode(a, p int, out []int) {
	for i := range out {
		out[i] = a % p
		a /= p
	}
}

func encode(digits []int, p int) int {
	r := 0
	for i := len(digits) - 1; i >= 0; i-- {
		r = r*p + digits[i]
	}
	return r
}
