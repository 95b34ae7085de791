// SPDX-License-Identifier: MIT

package srg

// Close adds, for every entry present when it is called, the complement
// tuple with a ComplementOf recipe if that tuple is absent. It is a single
// pass over a snapshot: entries added here are not complemented again (their
// complement is the entry they came from). Returns the number of insertions.
//
// Close must run after classification has finished.
func Close(reg *Registry) int {
	snap := reg.Snapshot()
	keys := make([]Params, 0, len(snap))
	for p := range snap {
		keys = append(keys, p)
	}
	sortParams(keys)

	added := 0
	for _, p := range keys {
		if reg.Insert(p.Complement(), Entry{Recipe: ComplementOf(snap[p].Recipe), Family: FamilyComplement}) {
			added++
		}
	}
	return added
}
