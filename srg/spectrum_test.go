// SPDX-License-Identifier: MIT

package srg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgcat/srg"
)

func TestParams_Spectrum(t *testing.T) {
	s := pp(10, 3, 0, 1).Spectrum()
	require.Equal(t, srg.Spectrum{K: 3, R: 1, S: -2, F: 5, G: 4}, s)
	require.Equal(t, "3^1 1^5 -2^4", srg.FormatEigenvalues(s.Eigenvalues()))

	// Conference graphs have irrational eigenvalues and equal multiplicities.
	c := pp(13, 6, 2, 3).Spectrum()
	require.InDelta(t, (-1+math.Sqrt(13))/2, c.R, 1e-12)
	require.InDelta(t, 6, c.F, 1e-12)
	require.InDelta(t, 6, c.G, 1e-12)

	// Non-integral multiplicities rule a tuple out.
	bad := pp(7, 3, 0, 2).Spectrum()
	require.NotEqual(t, math.Round(bad.F), bad.F)
}

func TestVerifySpectrum(t *testing.T) {
	f := srg.NewFactory(newOracle())

	require.NoError(t, srg.VerifySpectrum(srg.Direct(srg.PaleyGraph, 13), f, pp(13, 6, 2, 3)))
	require.NoError(t, srg.VerifySpectrum(srg.ComplementOf(srg.Direct(srg.JohnsonGraph, 5)), f, pp(10, 3, 0, 1)))
	require.NoError(t, srg.VerifySpectrum(srg.Direct(srg.SchlaefliGraph), f, pp(27, 16, 10, 8)))

	err := srg.VerifySpectrum(srg.Direct(srg.JohnsonGraph, 5), f, pp(10, 3, 0, 1))
	require.ErrorIs(t, err, srg.ErrSpectrumMismatch)

	_, err = srg.GraphSpectrum(srg.Recipe{}, f)
	require.ErrorIs(t, err, srg.ErrBadRecipe)
}
