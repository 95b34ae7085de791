// SPDX-License-Identifier: MIT

package srg

import "sort"

// Diff returns the catalog tuples with StatusExists that are not registry
// keys, sorted by Params.Less, with their catalog comments.
func Diff(reg *Registry, cat Catalog) []Leftover {
	var out []Leftover
	for p, e := range cat {
		if e.Status == StatusExists && !reg.Has(p) {
			out = append(out, Leftover{Params: p, Comments: e.Comments})
		}
	}
	// Catalog keys are unique, so the order is total.
	sort.Slice(out, func(i, j int) bool { return out[i].Params.Less(out[j].Params) })
	return out
}
