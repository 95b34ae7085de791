// SPDX-License-Identifier: MIT

package design_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/design"
)

func TestOrthogonalArrayExists(t *testing.T) {
	t.Parallel()
	tests := []struct {
		m, n int
		want bool
	}{
		{m: 5, n: 8, want: true},   // affine plane over GF(8)
		{m: 9, n: 8, want: true},   // complete set of MOLS
		{m: 10, n: 8, want: false}, // beyond the q+1 bound
		{m: 3, n: 6, want: true},   // cyclic Latin square
		{m: 4, n: 6, want: false},  // Euler's 36 officers
		{m: 4, n: 12, want: true},  // MacNeish 4·3
		{m: 5, n: 12, want: true},  // difference matrix over Z_2 × Z_6
		{m: 7, n: 12, want: true},
		{m: 8, n: 12, want: false},
		{m: 4, n: 10, want: true},  // quasi-difference matrix over Z_9
		{m: 5, n: 10, want: false}, // open
		{m: 5, n: 15, want: true},
		{m: 4, n: 14, want: true},
		{m: 0, n: 5, want: false},
		{m: 2, n: 1, want: false},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, design.OrthogonalArrayExists(tc.m, tc.n), "OA(%d,%d)", tc.m, tc.n)
	}
}

func TestOrthogonalArray_Valid(t *testing.T) {
	t.Parallel()
	for _, mn := range [][2]int{{2, 2}, {3, 2}, {3, 6}, {4, 5}, {5, 8}, {4, 9}, {4, 12}, {3, 10},
		{4, 10}, {5, 12}, {7, 12}, {5, 15}, {3, 15}, {4, 14}} {
		oa, err := design.OrthogonalArray(mn[0], mn[1])
		require.NoError(t, err, "OA%v", mn)
		require.NoError(t, design.ValidateOA(mn[0], mn[1], oa), "OA%v", mn)
	}
	for _, mn := range [][2]int{{4, 6}, {5, 10}, {8, 12}} {
		_, err := design.OrthogonalArray(mn[0], mn[1])
		require.ErrorIs(t, err, design.ErrNoConstruction, "OA%v", mn)
	}
}

func TestValidateOA_DetectsRepeat(t *testing.T) {
	t.Parallel()
	oa, err := design.OrthogonalArray(3, 3)
	require.NoError(t, err)
	oa[2][0] = oa[2][1]
	require.ErrorIs(t, design.ValidateOA(3, 3, oa), design.ErrInvalidDesign)
}

func TestBIBDExists(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, m int
		want bool
	}{
		{n: 5, m: 5, want: true},
		{n: 6, m: 2, want: true},
		{n: 7, m: 3, want: true},
		{n: 9, m: 3, want: true},
		{n: 11, m: 3, want: false},
		{n: 13, m: 4, want: true},  // PG(2,3)
		{n: 16, m: 4, want: true},  // AG(2,4)
		{n: 40, m: 4, want: true},  // PG(3,3)
		{n: 25, m: 5, want: true},  // AG(2,5)
		{n: 21, m: 5, want: true},  // PG(2,4)
		{n: 28, m: 4, want: true},  // Hermitian unital, q = 3
		{n: 65, m: 5, want: true},  // Hermitian unital, q = 4
		{n: 25, m: 4, want: true},  // difference family over Z_5 × Z_5
		{n: 37, m: 4, want: true},
		{n: 52, m: 4, want: true},
		{n: 45, m: 5, want: true},
		{n: 61, m: 5, want: true},
		{n: 22, m: 4, want: false}, // n ≢ 1, 4 mod 12
		{n: 36, m: 6, want: false}, // no projective plane of order 6
		{n: 46, m: 6, want: false},
		{n: 4, m: 5, want: false},
		{n: 5, m: 1, want: false},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, design.BIBDExists(tc.n, tc.m), "S(2,%d,%d)", tc.m, tc.n)
	}
}

// TestCoverage_BlockGraphsUpTo300 pins the refusals among designs whose
// block graph has at most 300 vertices.
func TestCoverage_BlockGraphsUpTo300(t *testing.T) {
	t.Parallel()
	// Largest OA row count built per non-prime-power order n ≤ 17.
	maxRows := map[int]int{6: 3, 10: 4, 12: 7, 14: 4, 15: 5}
	for n := 2; n*n <= 300; n++ {
		top, ok := maxRows[n]
		if !ok {
			top = n + 1
		}
		for m := 3; m <= n+2; m++ {
			require.Equalf(t, m <= top, design.OrthogonalArrayExists(m, n), "OA(%d,%d)", m, n)
		}
	}

	// Every admissible S(2,4,n) and S(2,5,n) exists; all of them are built.
	for _, m := range []int{4, 5} {
		for n := m + 1; n*(n-1)/(m*(m-1)) <= 300; n++ {
			admissible := (n-1)%(m-1) == 0 && (n*(n-1))%(m*(m-1)) == 0
			require.Equalf(t, admissible, design.BIBDExists(n, m), "S(2,%d,%d)", m, n)
		}
	}
}

func TestBIBD_Valid(t *testing.T) {
	t.Parallel()
	cases := [][2]int{
		{4, 4}, {6, 2}, {3, 3}, {7, 3}, {9, 3}, {13, 3}, {15, 3}, {19, 3},
		{21, 3}, {25, 3}, {27, 3}, {13, 4}, {16, 4}, {40, 4}, {21, 5}, {25, 5}, {31, 6}, {64, 4},
		{28, 4}, {65, 5}, {25, 4}, {37, 4}, {49, 4}, {52, 4}, {41, 5}, {45, 5}, {61, 5},
	}
	for _, nm := range cases {
		n, m := nm[0], nm[1]
		blocks, err := design.BIBD(n, m)
		require.NoError(t, err, "S(2,%d,%d)", m, n)
		require.Len(t, blocks, n*(n-1)/(m*(m-1)))
		require.NoError(t, design.ValidateBIBD(n, m, blocks), "S(2,%d,%d)", m, n)
	}
	for _, nm := range [][2]int{{11, 3}, {36, 6}, {46, 6}} {
		_, err := design.BIBD(nm[0], nm[1])
		require.ErrorIs(t, err, design.ErrNoConstruction, "S(2,%d,%d)", nm[1], nm[0])
	}
}

func TestValidateBIBD_Rejects(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, design.ValidateBIBD(4, 2, [][]int{{0, 1}, {2, 3}}), design.ErrInvalidDesign)
	require.ErrorIs(t, design.ValidateBIBD(3, 2, [][]int{{0, 1}, {0, 1}, {1, 2}}), design.ErrInvalidDesign)
	require.ErrorIs(t, design.ValidateBIBD(3, 3, [][]int{{0, 1}}), design.ErrInvalidDesign)
	require.ErrorIs(t, design.ValidateBIBD(3, 3, [][]int{{0, 1, 7}}), design.ErrInvalidDesign)
}

// TestWitt checks the block counts and the t-wise balance of both Witt designs.
func TestWitt(t *testing.T) {
	t.Parallel()
	w23 := design.Witt23()
	require.Len(t, w23, 253)
	require.Equal(t, 253*35, countDistinctSubsets(t, w23, 4))

	w22 := design.Witt22()
	require.Len(t, w22, 77)
	for _, b := range w22 {
		require.Len(t, b, 6)
		for _, p := range b {
			require.True(t, p >= 0 && p < 22)
		}
	}
	require.Equal(t, 77*20, countDistinctSubsets(t, w22, 3))
}

// countDistinctSubsets fails on a repeated s-subset and returns the count.
func countDistinctSubsets(t *testing.T, blocks [][]int, s int) int {
	t.Helper()
	seen := make(map[[4]int]bool)
	var walk func(b []int, start int, cur []int)
	walk = func(b []int, start int, cur []int) {
		if len(cur) == s {
			var key [4]int
			copy(key[:], cur)
			require.False(t, seen[key], "subset %v repeated", cur)
			seen[key] = true
			return
		}
		for i := start; i < len(b); i++ {
			walk(b, i+1, append(cur, b[i]))
		}
	}
	for _, b := range blocks {
		walk(b, 0, nil)
	}
	return len(seen)
}

func TestOracle_Memoises(t *testing.T) {
	t.Parallel()
	o := design.NewOracle()
	a, err := o.BIBD(13, 3)
	require.NoError(t, err)
	b, err := o.BIBD(13, 3)
	require.NoError(t, err)
	require.Same(t, &a[0][0], &b[0][0])
	_, err = o.OrthogonalArray(4, 6)
	require.ErrorIs(t, err, design.ErrNoConstruction)
	oa, err := o.OrthogonalArray(5, 8)
	require.NoError(t, err)
	require.Len(t, oa, 5)
	require.True(t, o.OrthogonalArrayExists(5, 8))
	require.False(t, o.BIBDExists(11, 3))
}
