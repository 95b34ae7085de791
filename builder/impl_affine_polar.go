// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_affine_polar.go: implementation of AffinePolar(d, q, sign), VO±(d,q).
//
// Contract:
//   • d even, d ≥ 2; q a prime power; sign ∈ {+1, -1} (else ErrInvalidParameter
//     / ErrTooFewVertices).
//   • Vertices are the vectors of GF(q)^d, index i read as d base-q digits
//     (least significant digit = coordinate 0).
//   • x ~ y iff Q(x - y) = 0 for the non-degenerate quadratic form
//       Q+(x) = Σ x_{2i}·x_{2i+1}
//       Q-(x) = Σ_{i<d/2-1} x_{2i}·x_{2i+1} + x_{d-2}² + x_{d-2}·x_{d-1} + a·x_{d-1}²
//     where t² + t + a is irreducible over GF(q).
//   • With d = 2e the result is an SRG with
//       v = q^(2e), k = (q^(e-1) ± 1)(q^e ∓ 1), μ = q^(e-1)(q^(e-1) ± 1).
//
// Complexity:
//   • Time: O(q^(2d)·d). Space: O(q^d).

package builder

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/gf"
	"github.com/katalvlaran/srgcat/numtheory"
)

// AffinePolar returns a Constructor for the affine polar graph VO±(d,q).
func AffinePolar(d, q, sign int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if d < MinPolarDim {
			return fmt.Errorf("%s: d=%d < min=%d: %w", MethodAffinePolar, d, MinPolarDim, ErrTooFewVertices)
		}
		if d%2 != 0 {
			return fmt.Errorf("%s: d=%d is odd: %w", MethodAffinePolar, d, ErrInvalidParameter)
		}
		if sign != 1 && sign != -1 {
			return fmt.Errorf("%s: sign=%d: %w", MethodAffinePolar, sign, ErrInvalidParameter)
		}
		f, err := gf.New(q)
		if err != nil {
			return fmt.Errorf("%s: q=%d: %v: %w", MethodAffinePolar, q, err, ErrInvalidParameter)
		}

		form, err := polarForm(f, d, sign)
		if err != nil {
			return err
		}

		v := numtheory.Pow(q, d)
		vec := func(i int) []int {
			out := make([]int, d)
			for c := 0; c < d; c++ {
				out[c] = i % q
				i /= q
			}
			return out
		}
		vecs := make([][]int, v)
		isotropic := make([]bool, v)
		for i := range vecs {
			vecs[i] = vec(i)
			isotropic[i] = form(vecs[i]) == 0
		}

		ids, err := addIndexedVertices(g, cfg, MethodAffinePolar, v, func(i int) string {
			return formatTuple(vecs[i])
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodAffinePolar, ids, func(i, j int) bool {
			x, y := vecs[i], vecs[j]
			idx, place := 0, 1
			for c := 0; c < d; c++ {
				idx += f.Sub(x[c], y[c]) * place
				place *= q
			}
			return isotropic[idx]
		})
	}
}

// polarForm returns Q± as a function of a coordinate vector.
func polarForm(f *gf.Field, d, sign int) (func([]int) int, error) {
	pairs := d / 2
	hyperbolic := func(x []int, upto int) int {
		s := 0
		for i := 0; i < upto; i++ {
			s = f.Add(s, f.Mul(x[2*i], x[2*i+1]))
		}
		return s
	}
	if sign == 1 {
		return func(x []int) int { return hyperbolic(x, pairs) }, nil
	}

	a, ok := irreducibleConstant(f)
	if !ok {
		return nil, fmt.Errorf("%s: no irreducible t²+t+a over GF(%d): %w", MethodAffinePolar, f.Order(), ErrConstructFailed)
	}

	return func(x []int) int {
		s := hyperbolic(x, pairs-1)
		u, w := x[d-2], x[d-1]
		s = f.Add(s, f.Mul(u, u))
		s = f.Add(s, f.Mul(u, w))
		return f.Add(s, f.Mul(a, f.Mul(w, w)))
	}, nil
}

// irreducibleConstant finds the smallest a with t² + t + a root-free over f.
func irreducibleConstant(f *gf.Field) (int, bool) {
	for _, a := range f.Elements() {
		root := false
		for _, t := range f.Elements() {
			if f.Add(f.Add(f.Mul(t, t), t), a) == 0 {
				root = true
				break
			}
		}
		if !root {
			return a, true
		}
	}

	return 0, false
}
