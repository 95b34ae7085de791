// SPDX-License-Identifier: MIT
// Package: srgcat/numtheory
//
// numtheory.go: square / prime-power tests and divisor enumeration.
//
// Complexity:
//   • IsSquare, ISqrt: O(log n) (Newton iteration on int).
//   • PrimePower, IsPrime: O(√p) trial division on the smallest prime factor.
//   • Divisors: O(√n) plus the sort of the upper half.

package numtheory

// ISqrt returns ⌊√n⌋ for n ≥ 0 and 0 for negative n.
func ISqrt(n int) int {
	if n < 2 {
		if n < 0 {
			return 0
		}
		return n
	}
	// Newton iteration from an upper bound; converges monotonically downwards.
	// n/2+1 ≥ √n, and x + n/x cannot overflow from there.
	x := n/2 + 1
	y := (x + n/x) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

// IsSquare reports whether n is a positive perfect square.
func IsSquare(n int) bool {
	if n <= 0 {
		return false
	}
	r := ISqrt(n)

	return r*r == n
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// smallestPrimeFactor returns the least prime dividing n (n ≥ 2).
func smallestPrimeFactor(n int) int {
	if n%2 == 0 {
		return 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}

	return n
}

// PrimePower decomposes n = p^e with p prime and e ≥ 1.
// ok is false when n ≤ 1 or n has two distinct prime factors.
func PrimePower(n int) (p, e int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	p = smallestPrimeFactor(n)
	for n%p == 0 {
		n /= p
		e++
	}
	if n != 1 {
		return 0, 0, false
	}

	return p, e, true
}

// IsPrimePower reports whether n = p^e for a prime p and e ≥ 1.
func IsPrimePower(n int) bool {
	_, _, ok := PrimePower(n)
	return ok
}

// Factor returns the prime-power components of n ordered by prime,
// e.g. 360 → [8 9 5] (2^3, 3^2, 5). n ≤ 1 yields nil.
func Factor(n int) []int {
	if n < 2 {
		return nil
	}
	var out []int
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		q := 1
		for n%p == 0 {
			n /= p
			q *= p
		}
		out = append(out, q)
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) []int {
	if n <= 0 {
		return nil
	}
	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if d*d != n {
			high = append(high, n/d)
		}
	}
	// high was collected in descending order.
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}

// Pow returns b^e for e ≥ 0 by binary exponentiation. Negative e yields 0;
// callers that need rational powers must restate their formula.
func Pow(b, e int) int {
	if e < 0 {
		return 0
	}
	r := 1
	for e > 0 {
		if e&1 == 1 {
			r *= b
		}
		b *= b
		e >>= 1
	}

	return r
}
