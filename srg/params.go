// SPDX-License-Identifier: MIT

package srg

import "fmt"

// Params is an SRG parameter tuple (v, k, λ, μ). It is comparable and used
// as a map key; equality is exact integer equality.
type Params struct {
	V, K, Lambda, Mu int
}

// Less orders tuples by v, then k, then λ, then μ ascending.
func (p Params) Less(o Params) bool {
	if p.V != o.V {
		return p.V < o.V
	}
	if p.K != o.K {
		return p.K < o.K
	}
	if p.Lambda != o.Lambda {
		return p.Lambda < o.Lambda
	}
	return p.Mu < o.Mu
}

// Complement returns the parameters of the complement graph:
// (v, v-k-1, v-2k+μ-2, v-2k+λ). Applying it twice returns p.
func (p Params) Complement() Params {
	return Params{
		V:      p.V,
		K:      p.V - p.K - 1,
		Lambda: p.V - 2*p.K + p.Mu - 2,
		Mu:     p.V - 2*p.K + p.Lambda,
	}
}

// String renders (v,k,λ,μ).
func (p Params) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.V, p.K, p.Lambda, p.Mu)
}

// nontrivial reports 0 < k < v-1 with non-negative λ, μ. Complete and
// edgeless graphs leave λ or μ vacuous, so no family claims them.
func (p Params) nontrivial() bool {
	return p.K > 0 && p.K < p.V-1 && p.Lambda >= 0 && p.Mu >= 0
}
