// SPDX-License-Identifier: MIT

// Package feasible supplies candidate (v, k, λ, μ) tuples: Enumerate derives
// the numerically feasible primitive parameter sets in a range of v, Parse
// reads an externally prepared list.
package feasible
