// SPDX-License-Identifier: MIT
// Package: srgcat/feasible
//
// enumerate.go: numerically feasible primitive SRG parameters.
//
// A tuple is kept when:
//   • 0 < μ < k < v-1 and 0 ≤ λ < k (primitive, non-trivial),
//   • k(k-λ-1) = (v-k-1)μ,
//   • the complement has λ' = v-2k+μ-2 ≥ 0,
//   • the eigenvalue multiplicities
//       f, g = ½[(v-1) ∓ (2k + (v-1)(λ-μ))/√D],  D = (λ-μ)² + 4(k-μ)
//     are positive integers, or the tuple is a conference graph
//     (v = 4μ+1, k = 2μ, λ = μ-1),
//   • the absolute bound v ≤ f(f+3)/2 and v ≤ g(g+3)/2 holds.

package feasible

import (
	"github.com/katalvlaran/srgcat/numtheory"
	"github.com/katalvlaran/srgcat/srg"
)

// Enumerate returns every feasible tuple with vmin ≤ v ≤ vmax in
// srg.Params.Less order.
// Complexity: O(vmax³) candidate checks.
func Enumerate(vmin, vmax int) []srg.Params {
	if vmin < 1 {
		vmin = 1
	}
	var out []srg.Params
	for v := vmin; v <= vmax; v++ {
		for k := 1; k < v-1; k++ {
			for lambda := 0; lambda < k; lambda++ {
				// μ is determined by k(k-λ-1) = (v-k-1)μ.
				num := k * (k - lambda - 1)
				if num%(v-k-1) != 0 {
					continue
				}
				mu := num / (v - k - 1)
				p := srg.Params{V: v, K: k, Lambda: lambda, Mu: mu}
				if mu > 0 && mu < k && Feasible(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// Feasible applies the conditions listed in the file header to p.
func Feasible(p srg.Params) bool {
	v, k, l, m := p.V, p.K, p.Lambda, p.Mu
	if !(0 < m && m < k && k < v-1 && 0 <= l && l < k) {
		return false
	}
	if k*(k-l-1) != (v-k-1)*m {
		return false
	}
	if p.Complement().Lambda < 0 {
		return false
	}

	f, g, ok := multiplicities(p)
	if !ok {
		return false
	}
	return 2*v <= f*(f+3) && 2*v <= g*(g+3)
}

// multiplicities returns (f, g) or false when they are not positive integers.
func multiplicities(p srg.Params) (int, int, bool) {
	v, k, l, m := p.V, p.K, p.Lambda, p.Mu
	d := (l-m)*(l-m) + 4*(k-m)
	num := 2*k + (v-1)*(l-m)

	if !numtheory.IsSquare(d) {
		if v == 4*m+1 && k == 2*m && l == m-1 {
			return (v - 1) / 2, (v - 1) / 2, true
		}
		return 0, 0, false
	}
	s := numtheory.ISqrt(d)
	if num%s != 0 {
		return 0, 0, false
	}
	t := num / s
	if (v-1-t)%2 != 0 {
		return 0, 0, false
	}
	f, g := (v-1-t)/2, (v-1+t)/2
	if f <= 0 || g <= 0 {
		return 0, 0, false
	}
	return f, g, true
}
