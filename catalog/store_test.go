// SPDX-License-Identifier: MIT

package catalog_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/catalog"
	"github.com/katalvlaran/srgcat/srg"
)

func newTestStore(t *testing.T, path string) *catalog.Store {
	t.Helper()
	s, err := catalog.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, ":memory:")

	empty, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	cat, err := catalog.ParseBrouwer(strings.NewReader(sample))
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, cat))

	back, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, cat, back)

	// Saving replaces.
	small := srg.Catalog{pp(16, 5, 0, 2): {Status: srg.StatusExists, Comments: "Clebsch"}}
	require.NoError(t, s.SaveCatalog(ctx, small))
	back, err = s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, small, back)
}

func TestStore_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, ":memory:")
	require.NoError(t, s.SaveCatalog(ctx, srg.Catalog{pp(5, 2, 0, 1): {Status: srg.StatusExists}}))

	err := s.SaveCatalog(ctx, srg.Catalog{pp(9, 4, 1, 2): {}})
	require.ErrorIs(t, err, catalog.ErrUnknownStatus)

	// The failed save rolled back.
	back, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, back, 1)
}

func TestStore_Registry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, filepath.Join(t.TempDir(), "srg.db"))

	reg := srg.NewRegistry()
	reg.Insert(pp(13, 6, 2, 3), srg.Entry{Recipe: srg.Direct(srg.PaleyGraph, 13), Family: srg.FamilyPaley})
	reg.Insert(pp(10, 6, 3, 4), srg.Entry{Recipe: srg.Direct(srg.JohnsonGraph, 5), Family: srg.FamilyJohnson})
	srg.Close(reg)

	require.NoError(t, s.SaveRegistry(ctx, "run-a", reg))
	require.NoError(t, s.SaveRegistry(ctx, "run-b", srg.NewRegistry()))

	rows, err := s.LoadRegistry(ctx, "run-a")
	require.NoError(t, err)
	require.Equal(t, []catalog.RegistryRow{
		{Params: pp(10, 3, 0, 1), Family: srg.FamilyComplement, Recipe: "complement(JohnsonGraph(5))"},
		{Params: pp(10, 6, 3, 4), Family: srg.FamilyJohnson, Recipe: "JohnsonGraph(5)"},
		{Params: pp(13, 6, 2, 3), Family: srg.FamilyPaley, Recipe: "PaleyGraph(13)"},
	}, rows)

	// Re-saving a run replaces its rows.
	require.NoError(t, s.SaveRegistry(ctx, "run-a", srg.NewRegistry()))
	rows, err = s.LoadRegistry(ctx, "run-a")
	require.NoError(t, err)
	require.Empty(t, rows)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"run-a", "run-b"}, runs)
}

func TestStore_LoadRegistryRejectsUnknownFamily(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, ":memory:")

	reg := srg.NewRegistry()
	reg.Insert(pp(13, 6, 2, 3), srg.Entry{Recipe: srg.Direct(srg.PaleyGraph, 13), Family: srg.Family(42)})
	require.NoError(t, s.SaveRegistry(ctx, "bad", reg))

	_, err := s.LoadRegistry(ctx, "bad")
	require.ErrorIs(t, err, srg.ErrUnknownFamily)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "srg.db")

	s, err := catalog.Open(path)
	require.NoError(t, err)
	cat := srg.Catalog{pp(16, 5, 0, 2): {Status: srg.StatusExists, Comments: "Clebsch"}}
	require.NoError(t, s.SaveCatalog(ctx, cat))
	require.NoError(t, s.Close())

	s = newTestStore(t, path)
	back, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, cat, back)
}
