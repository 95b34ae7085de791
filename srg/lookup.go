// SPDX-License-Identifier: MIT

package srg

// Lookup answers for a single tuple what Build followed by Close would
// register for it: the sporadic recipe, else the classifier's match, else
// the complement of either for p.Complement().
func Lookup(c *Classifier, p Params) (Entry, bool) {
	if e, ok := lookupDirect(c, p); ok {
		return e, true
	}
	if e, ok := lookupDirect(c, p.Complement()); ok {
		return Entry{Recipe: ComplementOf(e.Recipe), Family: FamilyComplement}, true
	}
	return Entry{}, false
}

func lookupDirect(c *Classifier, p Params) (Entry, bool) {
	if r, ok := Exceptional()[p]; ok {
		return Entry{Recipe: r, Family: FamilySporadic}, true
	}
	if r, f, ok := c.Classify(p); ok {
		return Entry{Recipe: r, Family: f}, true
	}
	return Entry{}, false
}
