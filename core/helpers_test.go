// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// cycle returns C_n on vertices "0".."n-1".
func cycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("C" + strconv.Itoa(n)))
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n))
		require.NoError(t, err)
	}

	return g
}

// petersen returns the Petersen graph: outer 5-cycle, inner pentagram, spokes.
func petersen(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("Petersen"))
	add := func(u, v string) {
		_, err := g.AddEdge(u, v)
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		o, in := "o"+strconv.Itoa(i), "i"+strconv.Itoa(i)
		add(o, "o"+strconv.Itoa((i+1)%5))
		add(in, "i"+strconv.Itoa((i+2)%5))
		add(o, in)
	}

	return g
}
