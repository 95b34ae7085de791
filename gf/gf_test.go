// SPDX-License-Identifier: MIT

package gf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/gf"
)

func TestNew_RejectsNonPrimePower(t *testing.T) {
	t.Parallel()
	for _, q := range []int{0, 1, 6, 12, 100} {
		_, err := gf.New(q)
		require.ErrorIs(t, err, gf.ErrNotPrimePower, "q=%d", q)
	}
	require.Panics(t, func() { gf.MustNew(10) })
}

// TestFieldAxioms checks the ring laws and inverses exhaustively on small fields.
func TestFieldAxioms(t *testing.T) {
	t.Parallel()
	for _, q := range []int{2, 3, 4, 5, 7, 8, 9, 16, 25, 27} {
		f := gf.MustNew(q)
		require.Equal(t, q, f.Order())
		els := f.Elements()
		for _, a := range els {
			require.Equal(t, a, f.Add(a, 0))
			require.Equal(t, a, f.Mul(a, 1))
			require.Equal(t, 0, f.Add(a, f.Neg(a)))
			if a != 0 {
				inv, err := f.Inv(a)
				require.NoError(t, err)
				require.Equal(t, 1, f.Mul(a, inv), "q=%d a=%d", q, a)
			}
			for _, b := range els {
				require.Equal(t, f.Add(a, b), f.Add(b, a))
				require.Equal(t, f.Mul(a, b), f.Mul(b, a))
				require.Equal(t, a, f.Add(f.Sub(a, b), b))
				for _, c := range []int{0, 1, q - 1} {
					require.Equal(t, f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)), "q=%d", q)
				}
			}
		}
		_, err := f.Inv(0)
		require.ErrorIs(t, err, gf.ErrZeroInverse)
	}
}

func TestPrimitiveAndSquares(t *testing.T) {
	t.Parallel()
	for _, q := range []int{5, 9, 13, 25, 49} {
		f := gf.MustNew(q)
		g := f.Primitive()
		seen := map[int]bool{}
		for k := 0; k < q-1; k++ {
			seen[f.Pow(g, k)] = true
		}
		require.Len(t, seen, q-1)

		squares := 0
		for a := 1; a < q; a++ {
			if f.IsSquare(a) {
				squares++
			}
		}
		require.Equal(t, (q-1)/2, squares, "q=%d", q)
		// -1 is a square exactly when q ≡ 1 (mod 4).
		require.Equal(t, q%4 == 1, f.IsSquare(f.Neg(1)))
	}
	require.True(t, gf.MustNew(8).IsSquare(5))
}
