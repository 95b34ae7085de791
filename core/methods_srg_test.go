// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/core"
)

func TestStronglyRegularParameters(t *testing.T) {
	tests := []struct {
		name string
		g    func(t *testing.T) *core.Graph
		want core.SRGParameters
		err  error
	}{
		{"petersen", petersen, core.SRGParameters{V: 10, K: 3, Lambda: 0, Mu: 1}, nil},
		{"pentagon", func(t *testing.T) *core.Graph { return cycle(t, 5) }, core.SRGParameters{V: 5, K: 2, Lambda: 0, Mu: 1}, nil},
		{"hexagon", func(t *testing.T) *core.Graph { return cycle(t, 6) }, core.SRGParameters{}, core.ErrNotStronglyRegular},
		{"empty", func(*testing.T) *core.Graph { return core.NewGraph() }, core.SRGParameters{}, core.ErrEmptyGraph},
		{"path", func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			_, err := g.AddEdge(VertexA, VertexB)
			require.NoError(t, err)
			_, err = g.AddEdge(VertexB, VertexC)
			require.NoError(t, err)
			return g
		}, core.SRGParameters{}, core.ErrNotRegular},
		{"triangle", func(t *testing.T) *core.Graph { return cycle(t, 3) }, core.SRGParameters{}, core.ErrNotStronglyRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g(t).StronglyRegularParameters()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStronglyRegularParameters_Complement(t *testing.T) {
	p, err := petersen(t).Complement().StronglyRegularParameters()
	require.NoError(t, err)
	// Complement of (10,3,0,1) is (10,6,3,4).
	require.Equal(t, core.SRGParameters{V: 10, K: 6, Lambda: 3, Mu: 4}, p)
}

func TestStronglyRegularParameters_WideBitset(t *testing.T) {
	// 35 disjoint edges span two bitset words: (70,1,0,0).
	g := core.NewGraph()
	for i := 0; i < 35; i++ {
		_, err := g.AddEdge(string(rune('A'+i%26))+string(rune('a'+i/26))+"0",
			string(rune('A'+i%26))+string(rune('a'+i/26))+"1")
		require.NoError(t, err)
	}
	p, err := g.StronglyRegularParameters()
	require.NoError(t, err)
	require.Equal(t, core.SRGParameters{V: 70, K: 1, Lambda: 0, Mu: 0}, p)
	require.True(t, g.IsStronglyRegular())
}
