// SPDX-License-Identifier: MIT
// Package: srgcat/srg
//
// matchers.go: the five family matchers.
//
// Contract (all matchers):
//   • Pure and total over all integers; never build a graph.
//   • Return (Recipe{}, false) for no match, including degenerate tuples
//     such as (5,5,5,5) and trivial ones (k = 0 or k = v-1).
//   • Every division is checked for exactness before its quotient is used.

package srg

import "github.com/katalvlaran/srgcat/numtheory"

// Matcher inverts one family's parameter formula.
type Matcher interface {
	Family() Family
	Match(p Params) (Recipe, bool)
}

// ExistenceOracle answers design-existence questions for the OA and
// Steiner matchers. It must agree with what the realising DesignOracle
// can actually produce.
type ExistenceOracle interface {
	// OrthogonalArrayExists reports whether OA(m, n) (m rows, n symbols,
	// strength 2, index 1) exists.
	OrthogonalArrayExists(m, n int) bool
	// BIBDExists reports whether a 2-(n, m, 1) design exists.
	BIBDExists(n, m int) bool
}

// PaleyMatcher matches (q, (q-1)/2, (q-5)/4, (q-1)/4), q ≡ 1 (mod 4) a prime power.
type PaleyMatcher struct{}

func (PaleyMatcher) Family() Family { return FamilyPaley }

func (PaleyMatcher) Match(p Params) (Recipe, bool) {
	v := p.V
	if !p.nontrivial() || v%4 != 1 || !numtheory.IsPrimePower(v) {
		return Recipe{}, false
	}
	if p.K != (v-1)/2 || p.Lambda != (v-5)/4 || p.Mu != (v-1)/4 {
		return Recipe{}, false
	}
	return Direct(PaleyGraph, v), true
}

// JohnsonMatcher matches J(m,2): (m(m-1)/2, 2(m-2), m-2, 4), m ≥ 4.
type JohnsonMatcher struct{}

func (JohnsonMatcher) Family() Family { return FamilyJohnson }

func (JohnsonMatcher) Match(p Params) (Recipe, bool) {
	m := p.Lambda + 2
	if !p.nontrivial() || m < 4 || p.Mu != 4 {
		return Recipe{}, false
	}
	if p.K != 2*(m-2) || p.V != m*(m-1)/2 {
		return Recipe{}, false
	}
	return Direct(JohnsonGraph, m), true
}

// OrthogonalArrayMatcher matches the block graph of OA(m, n):
// (n², m(n-1), (m-1)(m-2)+n-2, m(m-1)).
type OrthogonalArrayMatcher struct {
	Oracle ExistenceOracle
}

func (OrthogonalArrayMatcher) Family() Family { return FamilyOrthogonalArrayBlock }

func (o OrthogonalArrayMatcher) Match(p Params) (Recipe, bool) {
	if !p.nontrivial() || !numtheory.IsSquare(p.V) {
		return Recipe{}, false
	}
	n := numtheory.ISqrt(p.V)
	if n < 2 || p.K%(n-1) != 0 {
		return Recipe{}, false
	}
	m := p.K / (n - 1)
	if m < 1 || p.Lambda != (m-1)*(m-2)+n-2 || p.Mu != m*(m-1) {
		return Recipe{}, false
	}
	if o.Oracle == nil || !o.Oracle.OrthogonalArrayExists(m, n) {
		return Recipe{}, false
	}
	return Direct(OrthogonalArrayBlockGraph, m, n), true
}

// SteinerMatcher matches the block intersection graph of an S(2, m, n):
// v = n(n-1)/(m(m-1)), k = m(n-m)/(m-1), λ = (m-1)² + (n-1)/(m-1) - 2, μ = m².
type SteinerMatcher struct {
	Oracle ExistenceOracle
}

func (SteinerMatcher) Family() Family { return FamilySteiner }

func (s SteinerMatcher) Match(p Params) (Recipe, bool) {
	if !p.nontrivial() || p.Mu <= 1 || !numtheory.IsSquare(p.Mu) {
		return Recipe{}, false
	}
	m := numtheory.ISqrt(p.Mu)
	if (p.K*(m-1))%m != 0 {
		return Recipe{}, false
	}
	n := p.K*(m-1)/m + m
	if (n-1)%(m-1) != 0 || (n*(n-1))%(m*(m-1)) != 0 || (m*(n-m))%(m-1) != 0 {
		return Recipe{}, false
	}
	if p.V != n*(n-1)/(m*(m-1)) || p.K != m*(n-m)/(m-1) {
		return Recipe{}, false
	}
	if p.Lambda != (m-1)*(m-1)+(n-1)/(m-1)-2 {
		return Recipe{}, false
	}
	if s.Oracle == nil || !s.Oracle.BIBDExists(n, m) {
		return Recipe{}, false
	}
	return Direct(SteinerBlockGraph, n, m), true
}

// AffinePolarMatcher matches VO±(2e, q) with v = q^(2e):
//
//	+ : k = (q^(e-1)+1)(q^e-1), λ = (q^(e-1)+q)(q^(e-1)-1)+q-2, μ = q^(e-1)(q^(e-1)+1)
//	- : k = (q^(e-1)-1)(q^e+1), λ = (q^(e-1)-q)(q^(e-1)+1)+q-2, μ = q^(e-1)(q^(e-1)-1)
//
// e runs over the divisors of power/2 ascending, "+" before "-" per divisor.
type AffinePolarMatcher struct{}

func (AffinePolarMatcher) Family() Family { return FamilyAffinePolar }

func (AffinePolarMatcher) Match(p Params) (Recipe, bool) {
	if !p.nontrivial() || !numtheory.IsSquare(p.V) {
		return Recipe{}, false
	}
	prime, power, ok := numtheory.PrimePower(p.V)
	if !ok || power%2 != 0 {
		return Recipe{}, false
	}
	for _, e := range numtheory.Divisors(power / 2) {
		q := numtheory.Pow(prime, power/(2*e))
		a, b := numtheory.Pow(q, e-1), numtheory.Pow(q, e)
		for _, sign := range [2]int{1, -1} {
			k := (a + sign) * (b - sign)
			lambda := (a+sign*q)*(a-sign) + q - 2
			mu := a * (a + sign)
			if p.K == k && p.Lambda == lambda && p.Mu == mu {
				return Direct(AffineOrthogonalPolarGraph, 2*e, q, sign), true
			}
		}
	}
	return Recipe{}, false
}

// DefaultMatchers returns the five matchers in classifier priority order.
func DefaultMatchers(oracle ExistenceOracle) []Matcher {
	return []Matcher{
		PaleyMatcher{},
		JohnsonMatcher{},
		OrthogonalArrayMatcher{Oracle: oracle},
		SteinerMatcher{Oracle: oracle},
		AffinePolarMatcher{},
	}
}
