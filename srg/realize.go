// SPDX-License-Identifier: MIT

package srg

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// Realize builds the graph a recipe describes. It is the only place a
// recipe turns into a graph.
func Realize(r Recipe, f GraphFactory) (*core.Graph, error) {
	switch r.Kind() {
	case KindDirect:
		return f.Build(r.Constructor(), r.Args())
	case KindComplement:
		base, ok := r.Base()
		if !ok {
			return nil, fmt.Errorf("srg: Realize(%s): %w", r, ErrBadRecipe)
		}
		g, err := Realize(base, f)
		if err != nil {
			return nil, err
		}
		return f.Complement(g)
	}
	return nil, fmt.Errorf("srg: Realize(%s): %w", r, ErrBadRecipe)
}

// Verify realises r and checks that the graph is strongly regular with
// parameters p. It is an explicit, opt-in check.
func Verify(r Recipe, f GraphFactory, p Params) error {
	g, err := Realize(r, f)
	if err != nil {
		return err
	}
	return VerifyGraph(g, p)
}

// VerifyGraph checks an already realised graph against p.
func VerifyGraph(g *core.Graph, p Params) error {
	gp, err := graphParams(g)
	if err != nil {
		return fmt.Errorf("srg: VerifyGraph(%s): %w", g.Name(), err)
	}
	if gp != p {
		return fmt.Errorf("srg: VerifyGraph(%s): got %s, want %s: %w", g.Name(), gp, p, ErrParameterMismatch)
	}
	return nil
}

func graphParams(g *core.Graph) (Params, error) {
	got, err := g.StronglyRegularParameters()
	if err != nil {
		return Params{}, err
	}
	return Params{V: got.V, K: got.K, Lambda: got.Lambda, Mu: got.Mu}, nil
}

// Local summarises a graph around its first vertex.
type Local struct {
	Vertex string

	// Sub is the first subconstituent: the graph induced on N(Vertex).
	Sub *core.Graph

	// SubParams is zero unless Sub is itself strongly regular.
	SubParams Params

	// Adjacent and NonAdjacent count common neighbours of Vertex with its
	// first neighbour and first non-neighbour; -1 when there is none.
	Adjacent, NonAdjacent int
}

// Subconstituent computes Local for the first vertex of g. For a strongly
// regular graph Sub is λ-regular and the two counts are λ and μ.
func Subconstituent(g *core.Graph) (Local, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return Local{}, core.ErrEmptyGraph
	}
	x := ids[0]
	sub, err := core.Neighborhood(g, x)
	if err != nil {
		return Local{}, err
	}
	loc := Local{Vertex: x, Sub: sub, Adjacent: -1, NonAdjacent: -1}
	if sub.IsStronglyRegular() {
		if loc.SubParams, err = graphParams(sub); err != nil {
			return Local{}, err
		}
	}

	for _, y := range ids[1:] {
		adj := g.HasEdge(x, y)
		if (adj && loc.Adjacent >= 0) || (!adj && loc.NonAdjacent >= 0) {
			continue
		}
		c, err := g.CommonNeighbors(x, y)
		if err != nil {
			return Local{}, err
		}
		if adj {
			loc.Adjacent = c
		} else {
			loc.NonAdjacent = c
		}
		if loc.Adjacent >= 0 && loc.NonAdjacent >= 0 {
			break
		}
	}
	return loc, nil
}
