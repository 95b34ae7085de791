// SPDX-License-Identifier: MIT

// Package numtheory provides the small integer primitives the SRG matchers
// are written against: perfect-square and prime-power tests, divisor
// enumeration, integer square roots and exact integer powers.
//
// All functions are pure and total over int. Inputs ≤ 1 never panic:
//
//	IsSquare(0)      == false  (0 is not treated as a square)
//	IsSquare(1)      == true
//	IsPrimePower(0)  == false
//	IsPrimePower(1)  == false
//	Divisors(n ≤ 0)  == nil
//
// The zero convention for IsSquare is deliberate: a square vertex count of 0
// never describes a graph, and the matchers rely on it to reject (0,...)
// tuples before any division by √v-1 happens.
package numtheory
