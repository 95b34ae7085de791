// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/srg"
)

func TestMetrics_BuildObserver(t *testing.T) {
	m := New()
	tuples := []srg.Params{
		{V: 13, K: 6, Lambda: 2, Mu: 3},
		{V: 10, K: 6, Lambda: 3, Mu: 4},
		{V: 50, K: 7, Lambda: 0, Mu: 1},
	}
	reg, err := srg.Build(context.Background(), tuples, srg.WithObserver(m.Observe))
	require.NoError(t, err)
	m.ObserveClosure(srg.Close(reg))
	m.SetFeasible(len(tuples))
	m.SetRegistry(reg)
	m.SetLeftovers(2)
	m.ObserveDuration(3 * time.Millisecond)

	require.Equal(t, 6.0, testutil.ToFloat64(m.classified.WithLabelValues("sporadic")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.classified.WithLabelValues("paley")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.classified.WithLabelValues("johnson")))
	require.Equal(t, float64(reg.Len()), testutil.ToFloat64(m.entries))
	require.Equal(t, 3.0, testutil.ToFloat64(m.feasible))
	require.Equal(t, 2.0, testutil.ToFloat64(m.leftovers))

	added := testutil.ToFloat64(m.classified.WithLabelValues("complement"))
	require.Equal(t, float64(reg.Len()-8), added)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.Observe(srg.Params{}, srg.FamilySteiner)
	m.SetLeftovers(7)

	path := filepath.Join(t.TempDir(), "srgcat.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `srgcat_classified_total{family="steiner"} 1`)
	require.Contains(t, string(data), "srgcat_leftovers 7")
	require.Contains(t, string(data), "# TYPE srgcat_build_duration_seconds histogram")

	n, err := testutil.GatherAndCount(m.Gatherer(), "srgcat_leftovers")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
