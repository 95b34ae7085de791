// SPDX-License-Identifier: MIT

package builder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Equal(t, "7", cfg.idFn(7))
	require.True(t, cfg.withLabel)
}

func TestBuilderConfig_LastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(WithIDPrefix("v"), WithIDScheme(PaddedIDFn(3)), WithoutLabels())
	require.Equal(t, "007", cfg.idFn(7))
	require.False(t, cfg.withLabel)
}

func TestWithIDScheme_NilPanics(t *testing.T) {
	require.Panics(t, func() { WithIDScheme(nil) })
	require.Panics(t, func() { SymbolNumberIDFn("x")(-1) })
}

func TestFormatHelpers(t *testing.T) {
	require.Equal(t, "{1,2,3}", formatSet([]int{1, 2, 3}))
	require.Equal(t, "(0,4)", formatTuple([]int{0, 4}))
	require.Equal(t, "{}", formatSet(nil))

	a := newPointSet([]int{1, 70, 3}, 70)
	b := newPointSet([]int{3, 70, 5}, 70)
	require.Equal(t, 2, a.meet(b))
	require.True(t, a.has(70))
	require.False(t, a.has(5))
}
