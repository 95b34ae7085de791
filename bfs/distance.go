// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// Eccentricity returns the largest distance from id to any vertex.
// ErrDisconnected if some vertex is unreachable.
func Eccentricity(ctx context.Context, g *core.Graph, id string) (int, error) {
	res, err := BFS(g, id, WithContext(ctx))
	if err != nil {
		return 0, err
	}
	if len(res.Order) != g.VertexCount() {
		return 0, fmt.Errorf("bfs: Eccentricity(%q): reached %d of %d: %w",
			id, len(res.Order), g.VertexCount(), ErrDisconnected)
	}
	return res.Eccentricity(), nil
}

// Diameter returns the largest eccentricity. An empty graph has diameter 0.
func Diameter(ctx context.Context, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	best := 0
	for _, id := range g.Vertices() {
		e, err := Eccentricity(ctx, g, id)
		if err != nil {
			return 0, err
		}
		if e > best {
			best = e
		}
	}
	return best, nil
}

// Layers partitions the vertices reachable from id by distance:
// Layers[d] holds the vertices at distance d in visit order.
// For a connected SRG the sizes are 1, k and v-k-1.
func Layers(ctx context.Context, g *core.Graph, id string) ([][]string, error) {
	var layers [][]string
	_, err := BFS(g, id, WithContext(ctx), WithOnVisit(func(v string, d int) error {
		if d == len(layers) {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], v)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return layers, nil
}
