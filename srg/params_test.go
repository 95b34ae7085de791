// SPDX-License-Identifier: MIT

package srg_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/feasible"
	"github.com/katalvlaran/srgcat/srg"
)

func TestParams_Complement(t *testing.T) {
	require.Equal(t, pp(10, 3, 0, 1), pp(10, 6, 3, 4).Complement())
	require.Equal(t, pp(13, 6, 2, 3), pp(13, 6, 2, 3).Complement())

	for _, p := range feasible.Enumerate(1, 150) {
		require.Equal(t, p, p.Complement().Complement(), "%s", p)
	}
}

func TestParams_LessAndString(t *testing.T) {
	ps := []srg.Params{pp(10, 6, 3, 4), pp(9, 4, 1, 2), pp(10, 3, 0, 1), pp(10, 6, 3, 3), pp(10, 6, 2, 9)}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
	require.Equal(t, []srg.Params{pp(9, 4, 1, 2), pp(10, 3, 0, 1), pp(10, 6, 2, 9), pp(10, 6, 3, 3), pp(10, 6, 3, 4)}, ps)
	require.False(t, pp(1, 1, 1, 1).Less(pp(1, 1, 1, 1)))
	require.Equal(t, "(27,16,10,8)", pp(27, 16, 10, 8).String())
}

func TestRecipe(t *testing.T) {
	r := srg.Direct(srg.AffineOrthogonalPolarGraph, 4, 3, -1)
	require.Equal(t, srg.KindDirect, r.Kind())
	require.Equal(t, "AffineOrthogonalPolarGraph(4, 3, -1)", r.String())

	args := r.Args()
	args[0] = 99
	require.Equal(t, []int{4, 3, -1}, r.Args())

	c := srg.ComplementOf(srg.Direct(srg.JohnsonGraph, 7))
	require.Equal(t, srg.KindComplement, c.Kind())
	require.Equal(t, "complement(JohnsonGraph(7))", c.String())
	base, ok := c.Base()
	require.True(t, ok)
	require.Equal(t, srg.JohnsonGraph, base.Constructor())

	_, ok = r.Base()
	require.False(t, ok)
	require.True(t, srg.Recipe{}.IsZero())
	require.Equal(t, "SchlaefliGraph()", srg.Direct(srg.SchlaefliGraph).String())
}

func TestStatusAndFamily(t *testing.T) {
	for _, s := range []srg.Status{srg.StatusExists, srg.StatusImpossible, srg.StatusOpen} {
		got, err := srg.ParseStatus(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := srg.ParseStatus("maybe")
	require.ErrorIs(t, err, srg.ErrUnknownStatus)

	for f := srg.FamilyNone; f <= srg.FamilyComplement; f++ {
		got, err := srg.ParseFamily(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err = srg.ParseFamily("moore")
	require.ErrorIs(t, err, srg.ErrUnknownFamily)
	require.Equal(t, "Family(42)", srg.Family(42).String())
}
