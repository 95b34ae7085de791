// SPDX-License-Identifier: MIT
// Package: srgcat/design
//
// witt.go: the large Witt designs used by the sporadic graphs.
//
// The binary Golay code of length 23 is the cyclic code generated by
//
//	g(x) = x^11 + x^10 + x^6 + x^5 + x^4 + x^2 + 1.
//
// Its 253 words of weight 7 are the blocks of S(4,7,23); fixing point 0 and
// deleting it gives the 77 hexads of S(3,6,22) on points 0..21.

package design

import (
	"math/bits"
	"sync"
)

const (
	golayLength    = 23
	golayDimension = 12
	golayGenerator = 0b110001110101 // bit i = coefficient of x^i
	heptadWeight   = 7
)

var (
	wittOnce sync.Once
	witt23   [][]int
	witt22   [][]int
)

// Witt23 returns the 253 blocks of S(4,7,23) on points 0..22.
// The result is shared; callers must not modify it.
func Witt23() [][]int {
	wittOnce.Do(buildWitt)
	return witt23
}

// Witt22 returns the 77 blocks of S(3,6,22) on points 0..21.
// The result is shared; callers must not modify it.
func Witt22() [][]int {
	wittOnce.Do(buildWitt)
	return witt22
}

func buildWitt() {
	for msg := uint32(0); msg < 1<<golayDimension; msg++ {
		var word uint32
		for i := 0; i < golayDimension; i++ {
			if msg>>i&1 == 1 {
				word ^= golayGenerator << i
			}
		}
		if bits.OnesCount32(word) != heptadWeight {
			continue
		}
		block := make([]int, 0, heptadWeight)
		for p := 0; p < golayLength; p++ {
			if word>>p&1 == 1 {
				block = append(block, p)
			}
		}
		witt23 = append(witt23, block)
	}
	witt23 = canonical(witt23)

	for _, b := range witt23 {
		if b[0] != 0 {
			continue
		}
		hexad := make([]int, 0, heptadWeight-1)
		for _, p := range b[1:] {
			hexad = append(hexad, p-1)
		}
		witt22 = append(witt22, hexad)
	}
}
