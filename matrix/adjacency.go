// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// Adjacency returns the 0/1 adjacency matrix of g and the vertex IDs in row
// order (sorted, as core.Graph.Vertices returns them).
func Adjacency(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", ErrGraphNil)
	}
	ids := g.Vertices()
	m, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", err)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	n := len(ids)
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		m.data[u*n+v] = 1
		m.data[v*n+u] = 1
	}

	return m, ids, nil
}
