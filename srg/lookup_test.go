// SPDX-License-Identifier: MIT

package srg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/feasible"
	"github.com/katalvlaran/srgcat/srg"
)

func TestLookup_AgreesWithBuildAndClose(t *testing.T) {
	tuples := feasible.Enumerate(1, 150)
	reg, err := srg.Build(context.Background(), tuples)
	require.NoError(t, err)
	srg.Close(reg)

	c := srg.NewClassifier(newOracle())
	for _, p := range tuples {
		want, wantOK := reg.Get(p)
		got, ok := srg.Lookup(c, p)
		require.Equal(t, wantOK, ok, "%s", p)
		if ok {
			require.Equal(t, want.Family, got.Family, "%s", p)
			require.Equal(t, want.Recipe.String(), got.Recipe.String(), "%s", p)
		}
	}
}

func TestLookup(t *testing.T) {
	c := srg.NewClassifier(newOracle())

	e, ok := srg.Lookup(c, pp(27, 10, 1, 5))
	require.True(t, ok)
	require.Equal(t, srg.FamilyComplement, e.Family)
	require.Equal(t, "complement(SchlaefliGraph())", e.Recipe.String())

	e, ok = srg.Lookup(c, pp(56, 10, 0, 2))
	require.True(t, ok)
	require.Equal(t, srg.FamilySporadic, e.Family)

	_, ok = srg.Lookup(c, pp(65, 32, 15, 16))
	require.False(t, ok)
}
