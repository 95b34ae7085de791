// SPDX-License-Identifier: MIT

package feasible_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/feasible"
	"github.com/katalvlaran/srgcat/srg"
)

func TestEnumerate_SmallRange(t *testing.T) {
	got := feasible.Enumerate(5, 16)
	require.Equal(t, []srg.Params{
		{V: 5, K: 2, Lambda: 0, Mu: 1},
		{V: 9, K: 4, Lambda: 1, Mu: 2},
		{V: 10, K: 3, Lambda: 0, Mu: 1},
		{V: 10, K: 6, Lambda: 3, Mu: 4},
		{V: 13, K: 6, Lambda: 2, Mu: 3},
		{V: 15, K: 6, Lambda: 1, Mu: 3},
		{V: 15, K: 8, Lambda: 4, Mu: 4},
		{V: 16, K: 5, Lambda: 0, Mu: 2},
		{V: 16, K: 6, Lambda: 2, Mu: 2},
		{V: 16, K: 9, Lambda: 4, Mu: 6},
		{V: 16, K: 10, Lambda: 6, Mu: 6},
	}, got)
}

func TestEnumerate_ClosedUnderComplement(t *testing.T) {
	set := make(map[srg.Params]bool)
	for _, p := range feasible.Enumerate(1, 120) {
		set[p] = true
	}
	for p := range set {
		require.True(t, set[p.Complement()], "%s", p)
	}
}

func TestFeasible(t *testing.T) {
	require.True(t, feasible.Feasible(srg.Params{V: 275, K: 112, Lambda: 30, Mu: 56}))
	require.True(t, feasible.Feasible(srg.Params{V: 13, K: 6, Lambda: 2, Mu: 3})) // conference
	require.True(t, feasible.Feasible(srg.Params{V: 21, K: 10, Lambda: 4, Mu: 5})) // conference, numerically
	// Non-integral eigenvalue multiplicities.
	require.False(t, feasible.Feasible(srg.Params{V: 7, K: 3, Lambda: 0, Mu: 2}))
	require.False(t, feasible.Feasible(srg.Params{V: 9, K: 4, Lambda: 0, Mu: 3}))
	// The complement would need λ' = -1.
	require.False(t, feasible.Feasible(srg.Params{V: 21, K: 16, Lambda: 12, Mu: 12}))
	require.False(t, feasible.Feasible(srg.Params{V: 5, K: 5, Lambda: 5, Mu: 5}))
	require.False(t, feasible.Feasible(srg.Params{V: 6, K: 4, Lambda: 2, Mu: 4})) // imprimitive
	// Absolute bound rules out (28,9,0,4).
	require.False(t, feasible.Feasible(srg.Params{V: 28, K: 9, Lambda: 0, Mu: 4}))
}

func TestParse(t *testing.T) {
	in := `# v k l m
13 6 2 3
(10, 6, 3, 4)   # Johnson

27,16,10,8
`
	got, err := feasible.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []srg.Params{
		{V: 13, K: 6, Lambda: 2, Mu: 3},
		{V: 10, K: 6, Lambda: 3, Mu: 4},
		{V: 27, K: 16, Lambda: 10, Mu: 8},
	}, got)

	_, err = feasible.Parse(strings.NewReader("1 2 3\n"))
	require.ErrorIs(t, err, feasible.ErrMalformedLine)
	_, err = feasible.Parse(strings.NewReader("1 2 x 4\n"))
	require.ErrorIs(t, err, feasible.ErrMalformedLine)
}
