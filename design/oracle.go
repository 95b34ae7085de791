// SPDX-License-Identifier: MIT

package design

import (
	"fmt"
	"sync"
)

// Oracle bundles the existence queries with memoised realisations. A
// realised design is validated once before it is cached, so callers can
// trust every array and block list it hands out.
//
// The zero value is ready to use and safe for concurrent use.
type Oracle struct {
	mu    sync.Mutex
	oas   map[[2]int][][]int
	bibds map[[2]int][][]int
}

// NewOracle returns an empty Oracle.
func NewOracle() *Oracle { return &Oracle{} }

// OrthogonalArrayExists reports whether OA(m, n) can be realised.
func (o *Oracle) OrthogonalArrayExists(m, n int) bool { return OrthogonalArrayExists(m, n) }

// BIBDExists reports whether S(2, m, n) can be realised.
func (o *Oracle) BIBDExists(n, m int) bool { return BIBDExists(n, m) }

// OrthogonalArray returns a validated OA(m, n).
func (o *Oracle) OrthogonalArray(m, n int) ([][]int, error) {
	key := [2]int{m, n}
	o.mu.Lock()
	defer o.mu.Unlock()
	if oa, ok := o.oas[key]; ok {
		return oa, nil
	}
	oa, err := OrthogonalArray(m, n)
	if err != nil {
		return nil, err
	}
	if err = ValidateOA(m, n, oa); err != nil {
		return nil, fmt.Errorf("OrthogonalArray(%d,%d): %w", m, n, err)
	}
	if o.oas == nil {
		o.oas = make(map[[2]int][][]int)
	}
	o.oas[key] = oa

	return oa, nil
}

// BIBD returns a validated S(2, m, n).
func (o *Oracle) BIBD(n, m int) ([][]int, error) {
	key := [2]int{n, m}
	o.mu.Lock()
	defer o.mu.Unlock()
	if b, ok := o.bibds[key]; ok {
		return b, nil
	}
	b, err := BIBD(n, m)
	if err != nil {
		return nil, err
	}
	if err = ValidateBIBD(n, m, b); err != nil {
		return nil, fmt.Errorf("BIBD(%d,%d): %w", n, m, err)
	}
	if o.bibds == nil {
		o.bibds = make(map[[2]int][][]int)
	}
	o.bibds[key] = b

	return b, nil
}
