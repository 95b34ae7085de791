// SPDX-License-Identifier: MIT

package srg

import (
	"fmt"

	"github.com/katalvlaran/srgcat/builder"
	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/design"
)

// GraphFactory is the graph-construction service Realize calls.
// Implementations must be deterministic for identical arguments.
type GraphFactory interface {
	Build(c Constructor, args []int) (*core.Graph, error)
	Complement(g *core.Graph) (*core.Graph, error)
}

// DesignOracle is an ExistenceOracle that can also materialise designs.
type DesignOracle interface {
	ExistenceOracle
	// OrthogonalArray returns OA(m, n) as m rows of n² symbols.
	OrthogonalArray(m, n int) ([][]int, error)
	// BIBD returns the blocks of a 2-(n, m, 1) design on points 0..n-1.
	BIBD(n, m int) ([][]int, error)
}

// Factory maps constructors onto package builder.
type Factory struct {
	oracle DesignOracle
	opts   []builder.BuilderOption
}

var _ GraphFactory = (*Factory)(nil)

// NewFactory returns a Factory realising designs through oracle.
// Panics on nil oracle.
func NewFactory(oracle DesignOracle, opts ...builder.BuilderOption) *Factory {
	if oracle == nil {
		panic("srg: NewFactory(nil)")
	}
	return &Factory{oracle: oracle, opts: append([]builder.BuilderOption(nil), opts...)}
}

// Build realises c(args...).
func (f *Factory) Build(c Constructor, args []int) (*core.Graph, error) {
	want, known := arity[c]
	if !known {
		return nil, fmt.Errorf("srg: Build(%s): %w", c, ErrUnknownConstructor)
	}
	if len(args) != want {
		return nil, fmt.Errorf("srg: Build(%s): %d args, want %d: %w", c, len(args), want, ErrBadRecipe)
	}

	cons, err := f.constructor(c, args)
	if err != nil {
		return nil, err
	}
	name := Direct(c, args...).String()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithName(name)}, f.opts, cons)
	if err != nil {
		return nil, fmt.Errorf("srg: Build(%s): %w", name, err)
	}
	return g, nil
}

// Complement returns the complement graph.
func (f *Factory) Complement(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("srg: Complement(nil): %w", ErrBadRecipe)
	}
	return g.Complement(), nil
}

func (f *Factory) constructor(c Constructor, args []int) (builder.Constructor, error) {
	switch c {
	case PaleyGraph:
		return builder.Paley(args[0]), nil
	case JohnsonGraph:
		return builder.Johnson(args[0]), nil
	case OrthogonalArrayBlockGraph:
		m, n := args[0], args[1]
		oa, err := f.oracle.OrthogonalArray(m, n)
		if err != nil {
			return nil, fmt.Errorf("srg: OrthogonalArray(%d,%d): %v: %w", m, n, err, ErrOracleIntegrity)
		}
		if err := design.ValidateOA(m, n, oa); err != nil {
			return nil, fmt.Errorf("srg: OrthogonalArray(%d,%d): %v: %w", m, n, err, ErrOracleIntegrity)
		}
		return builder.OrthogonalArrayBlock(oa), nil
	case SteinerBlockGraph:
		n, m := args[0], args[1]
		blocks, err := f.oracle.BIBD(n, m)
		if err != nil {
			return nil, fmt.Errorf("srg: BIBD(%d,%d): %v: %w", n, m, err, ErrOracleIntegrity)
		}
		if err := design.ValidateBIBD(n, m, blocks); err != nil {
			return nil, fmt.Errorf("srg: BIBD(%d,%d): %v: %w", n, m, err, ErrOracleIntegrity)
		}
		return builder.BlockIntersection(blocks), nil
	case AffineOrthogonalPolarGraph:
		return builder.AffinePolar(args[0], args[1], args[2]), nil
	case SchlaefliGraph:
		return builder.Schlaefli(), nil
	case HoffmanSingletonGraph:
		return builder.HoffmanSingleton(), nil
	case SimsGewirtzGraph:
		return builder.SimsGewirtz(), nil
	case M22Graph:
		return builder.M22(), nil
	case CameronGraph:
		return builder.Cameron(), nil
	case McLaughlinGraph:
		return builder.McLaughlin(), nil
	}
	return nil, fmt.Errorf("srg: Build(%s): %w", c, ErrUnknownConstructor)
}
