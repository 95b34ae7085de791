// SPDX-License-Identifier: MIT

package srg_test

import (
	"errors"

	"github.com/katalvlaran/srgcat/design"
	"github.com/katalvlaran/srgcat/srg"
)

// fixedOracle answers every existence question with the same verdicts.
type fixedOracle struct {
	oa, bibd bool
}

func (o fixedOracle) OrthogonalArrayExists(int, int) bool { return o.oa }
func (o fixedOracle) BIBDExists(int, int) bool            { return o.bibd }

// brokenOracle claims existence and then hands out garbage.
type brokenOracle struct{}

func (brokenOracle) OrthogonalArrayExists(int, int) bool { return true }
func (brokenOracle) BIBDExists(int, int) bool            { return true }
func (brokenOracle) OrthogonalArray(m, n int) ([][]int, error) {
	rows := make([][]int, m)
	for r := range rows {
		rows[r] = make([]int, n*n) // all-zero columns repeat every pair
	}
	return rows, nil
}
func (brokenOracle) BIBD(int, int) ([][]int, error) {
	return nil, errors.New("no blocks today")
}

// acceptAll matches every tuple as a Paley graph of order v.
type acceptAll struct{}

func (acceptAll) Family() srg.Family { return srg.FamilyPaley }
func (acceptAll) Match(p srg.Params) (srg.Recipe, bool) {
	return srg.Direct(srg.PaleyGraph, p.V), true
}

func newOracle() *design.Oracle { return design.NewOracle() }

func pp(v, k, l, m int) srg.Params { return srg.Params{V: v, K: k, Lambda: l, Mu: m} }
