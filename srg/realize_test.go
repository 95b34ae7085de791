// SPDX-License-Identifier: MIT

package srg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/builder"
	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/feasible"
	"github.com/katalvlaran/srgcat/srg"
)

func TestRealize_Direct(t *testing.T) {
	f := srg.NewFactory(newOracle())
	g, err := srg.Realize(srg.Direct(srg.PaleyGraph, 13), f)
	require.NoError(t, err)
	require.Equal(t, "PaleyGraph(13)", g.Name())
	require.NoError(t, srg.Verify(srg.Direct(srg.PaleyGraph, 13), f, pp(13, 6, 2, 3)))
}

func TestRealize_Complement(t *testing.T) {
	f := srg.NewFactory(newOracle())
	r := srg.ComplementOf(srg.Direct(srg.JohnsonGraph, 7))

	g, err := srg.Realize(r, f)
	require.NoError(t, err)
	require.Equal(t, 21, g.VertexCount())
	require.NoError(t, srg.Verify(r, f, pp(21, 10, 3, 6)))

	twice := srg.ComplementOf(r)
	require.NoError(t, srg.Verify(twice, f, pp(21, 10, 5, 4)))
}

func TestRealize_Designs(t *testing.T) {
	f := srg.NewFactory(newOracle(), builder.WithIDPrefix("x"))
	require.NoError(t, srg.Verify(srg.Direct(srg.OrthogonalArrayBlockGraph, 3, 6), f, pp(36, 15, 6, 6)))
	require.NoError(t, srg.Verify(srg.Direct(srg.SteinerBlockGraph, 15, 3), f, pp(35, 18, 9, 9)))
	require.NoError(t, srg.Verify(srg.Direct(srg.AffineOrthogonalPolarGraph, 4, 3, -1), f, pp(81, 20, 1, 6)))
}

func TestVerify_Mismatch(t *testing.T) {
	f := srg.NewFactory(newOracle())
	err := srg.Verify(srg.Direct(srg.PaleyGraph, 13), f, pp(13, 6, 3, 2))
	require.ErrorIs(t, err, srg.ErrParameterMismatch)
}

func TestRealize_Errors(t *testing.T) {
	f := srg.NewFactory(newOracle())

	_, err := srg.Realize(srg.Recipe{}, f)
	require.ErrorIs(t, err, srg.ErrBadRecipe)

	_, err = srg.Realize(srg.Direct("PetersenGraph"), f)
	require.ErrorIs(t, err, srg.ErrUnknownConstructor)

	_, err = srg.Realize(srg.Direct(srg.JohnsonGraph, 5, 2), f)
	require.ErrorIs(t, err, srg.ErrBadRecipe)

	_, err = srg.Realize(srg.Direct(srg.PaleyGraph, 7), f)
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = srg.Realize(srg.ComplementOf(srg.Direct(srg.PaleyGraph, 7)), f)
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = f.Complement(nil)
	require.ErrorIs(t, err, srg.ErrBadRecipe)

	require.Panics(t, func() { srg.NewFactory(nil) })
}

func TestRealize_OracleIntegrity(t *testing.T) {
	f := srg.NewFactory(brokenOracle{})

	_, err := srg.Realize(srg.Direct(srg.OrthogonalArrayBlockGraph, 3, 4), f)
	require.ErrorIs(t, err, srg.ErrOracleIntegrity)

	_, err = srg.Realize(srg.Direct(srg.SteinerBlockGraph, 7, 3), f)
	require.ErrorIs(t, err, srg.ErrOracleIntegrity)
}

// recordingFactory wraps a GraphFactory and counts its calls.
type recordingFactory struct {
	srg.GraphFactory
	builds, complements int
}

func (r *recordingFactory) Build(c srg.Constructor, args []int) (*core.Graph, error) {
	r.builds++
	return r.GraphFactory.Build(c, args)
}

func (r *recordingFactory) Complement(g *core.Graph) (*core.Graph, error) {
	r.complements++
	return r.GraphFactory.Complement(g)
}

func TestRealize_NestedComplement(t *testing.T) {
	rec := &recordingFactory{GraphFactory: srg.NewFactory(newOracle())}
	r := srg.ComplementOf(srg.ComplementOf(srg.ComplementOf(srg.Direct(srg.SchlaefliGraph))))
	require.NoError(t, srg.Verify(r, rec, pp(27, 10, 1, 5)))
	require.Equal(t, 3, rec.complements)
	require.Equal(t, 1, rec.builds)
}

func TestVerifyGraph_ChecksOneRealisation(t *testing.T) {
	rec := &recordingFactory{GraphFactory: srg.NewFactory(newOracle())}
	p := pp(10, 3, 0, 1)
	g, err := srg.Realize(srg.ComplementOf(srg.Direct(srg.JohnsonGraph, 5)), rec)
	require.NoError(t, err)

	require.NoError(t, srg.VerifyGraph(g, p))
	ev, err := srg.Eigenvalues(g)
	require.NoError(t, err)
	require.NoError(t, srg.CheckSpectrum(ev, p))
	require.Equal(t, 1, rec.builds)
	require.Equal(t, 1, rec.complements)

	require.ErrorIs(t, srg.VerifyGraph(g, pp(10, 3, 1, 0)), srg.ErrParameterMismatch)
	require.ErrorIs(t, srg.CheckSpectrum(ev, pp(10, 6, 3, 4)), srg.ErrSpectrumMismatch)

	empty := core.NewGraph()
	require.ErrorIs(t, srg.VerifyGraph(empty, p), core.ErrEmptyGraph)
}

func TestSubconstituent(t *testing.T) {
	f := srg.NewFactory(newOracle())

	// The Schläfli graph is locally the complement of the Clebsch graph.
	g, err := srg.Realize(srg.Direct(srg.SchlaefliGraph), f)
	require.NoError(t, err)
	loc, err := srg.Subconstituent(g)
	require.NoError(t, err)
	require.Equal(t, "0", loc.Vertex)
	require.Equal(t, 16, loc.Sub.VertexCount())
	require.Equal(t, pp(16, 10, 6, 6), loc.SubParams)
	require.Equal(t, 10, loc.Adjacent)
	require.Equal(t, 8, loc.NonAdjacent)

	// The Petersen graph is locally three isolated vertices.
	g, err = srg.Realize(srg.ComplementOf(srg.Direct(srg.JohnsonGraph, 5)), f)
	require.NoError(t, err)
	loc, err = srg.Subconstituent(g)
	require.NoError(t, err)
	require.Equal(t, 3, loc.Sub.VertexCount())
	require.Zero(t, loc.Sub.EdgeCount())
	require.Equal(t, srg.Params{}, loc.SubParams)
	require.Equal(t, 0, loc.Adjacent)
	require.Equal(t, 1, loc.NonAdjacent)

	_, err = srg.Subconstituent(core.NewGraph())
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestFactory_BuilderOptions(t *testing.T) {
	f := srg.NewFactory(newOracle(), builder.WithIDPrefix("p"), builder.WithoutLabels())
	g, err := srg.Realize(srg.Direct(srg.JohnsonGraph, 5), f)
	require.NoError(t, err)
	require.Equal(t, "p0", g.Vertices()[0])
	v, err := g.GetVertex("p0")
	require.NoError(t, err)
	require.NotContains(t, v.Metadata, builder.MetaLabel)

	f = srg.NewFactory(newOracle())
	g, err = srg.Realize(srg.Direct(srg.JohnsonGraph, 5), f)
	require.NoError(t, err)
	v, err = g.GetVertex("0")
	require.NoError(t, err)
	require.Equal(t, "{0,1}", v.Metadata[builder.MetaLabel])
}

func TestEndToEnd_SmallCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("realises every registered graph")
	}
	reg, err := srg.Build(context.Background(), feasible.Enumerate(1, 64), srg.WithWorkers(4))
	require.NoError(t, err)
	srg.Close(reg)

	f := srg.NewFactory(newOracle())
	for _, p := range reg.Keys() {
		if p.V > 64 {
			continue
		}
		e, _ := reg.Get(p)
		require.NoError(t, srg.Verify(e.Recipe, f, p), "%s via %s", p, e.Recipe)
	}
}
