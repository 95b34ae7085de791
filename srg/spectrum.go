// SPDX-License-Identifier: MIT

package srg

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/srgcat/core"
	"github.com/katalvlaran/srgcat/matrix"
)

// Numeric policy for spectral checks.
const (
	spectrumTol       = 1e-9 // Jacobi off-diagonal threshold
	spectrumCluster   = 1e-6 // eigenvalues closer than this are equal
	spectrumMaxSweeps = 100
)

// Spectrum is the adjacency spectrum an SRG with given parameters must have:
// k once, R with multiplicity F, S with multiplicity G. F and G are
// non-integral exactly when no such graph exists.
type Spectrum struct {
	K    float64
	R, S float64
	F, G float64
}

// Spectrum computes the eigenvalues
//
//	r, s = ((λ−μ) ± √Δ) / 2,  Δ = (λ−μ)² + 4(k−μ)
//
// and their multiplicities f, g = ½[(v−1) ∓ (2k + (v−1)(λ−μ)) / √Δ].
func (p Params) Spectrum() Spectrum {
	d := float64(p.Lambda - p.Mu)
	sq := math.Sqrt(d*d + 4*float64(p.K-p.Mu))
	v1 := float64(p.V - 1)
	t := (2*float64(p.K) + v1*d) / sq
	return Spectrum{
		K: float64(p.K),
		R: (d + sq) / 2,
		S: (d - sq) / 2,
		F: (v1 - t) / 2,
		G: (v1 + t) / 2,
	}
}

// Eigenvalues returns the spectrum as ascending (value, multiplicity) pairs
// with rounded multiplicities.
func (s Spectrum) Eigenvalues() []matrix.Eigenvalue {
	return []matrix.Eigenvalue{
		{Value: s.S, Multiplicity: int(math.Round(s.G))},
		{Value: s.R, Multiplicity: int(math.Round(s.F))},
		{Value: s.K, Multiplicity: 1},
	}
}

// FormatEigenvalues renders pairs as "value^multiplicity" in descending order.
func FormatEigenvalues(ev []matrix.Eigenvalue) string {
	parts := make([]string, 0, len(ev))
	for i := len(ev) - 1; i >= 0; i-- {
		parts = append(parts, fmt.Sprintf("%.4g^%d", ev[i].Value, ev[i].Multiplicity))
	}
	return strings.Join(parts, " ")
}

// GraphSpectrum realises r and returns its clustered adjacency spectrum.
func GraphSpectrum(r Recipe, f GraphFactory) ([]matrix.Eigenvalue, error) {
	g, err := Realize(r, f)
	if err != nil {
		return nil, err
	}
	ev, err := Eigenvalues(g)
	if err != nil {
		return nil, fmt.Errorf("srg: GraphSpectrum(%s): %w", r, err)
	}
	return ev, nil
}

// Eigenvalues returns the clustered adjacency spectrum of g.
func Eigenvalues(g *core.Graph) ([]matrix.Eigenvalue, error) {
	a, _, err := matrix.Adjacency(g)
	if err != nil {
		return nil, err
	}
	vals, err := matrix.EigenSym(a, spectrumTol, spectrumMaxSweeps)
	if err != nil {
		return nil, err
	}
	return matrix.Cluster(vals, spectrumCluster), nil
}

// VerifySpectrum realises r and checks its adjacency spectrum against
// p.Spectrum(). Like Verify it is opt-in and never part of classification.
func VerifySpectrum(r Recipe, f GraphFactory, p Params) error {
	got, err := GraphSpectrum(r, f)
	if err != nil {
		return err
	}
	if err := CheckSpectrum(got, p); err != nil {
		return fmt.Errorf("srg: VerifySpectrum(%s): %w", r, err)
	}
	return nil
}

// CheckSpectrum compares an already computed spectrum with p.Spectrum().
func CheckSpectrum(got []matrix.Eigenvalue, p Params) error {
	want := p.Spectrum().Eigenvalues()
	if !sameSpectrum(got, want) {
		return fmt.Errorf("got %s, want %s: %w", FormatEigenvalues(got), FormatEigenvalues(want), ErrSpectrumMismatch)
	}
	return nil
}

func sameSpectrum(a, b []matrix.Eigenvalue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Multiplicity != b[i].Multiplicity || math.Abs(a[i].Value-b[i].Value) > spectrumCluster {
			return false
		}
	}
	return true
}
