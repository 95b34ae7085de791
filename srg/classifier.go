// SPDX-License-Identifier: MIT

package srg

// Classifier tries an ordered list of matchers and returns the first match.
// It is immutable after construction and safe for concurrent use as long as
// its matchers are.
type Classifier struct {
	matchers []Matcher
}

// NewClassifier returns the default classifier: Paley, Johnson,
// OrthogonalArrayBlock, Steiner, AffinePolar, consulting oracle for the
// design-backed families.
func NewClassifier(oracle ExistenceOracle) *Classifier {
	return NewClassifierWith(DefaultMatchers(oracle)...)
}

// NewClassifierWith builds a classifier over matchers in the given order.
func NewClassifierWith(matchers ...Matcher) *Classifier {
	return &Classifier{matchers: append([]Matcher(nil), matchers...)}
}

// Classify returns the first matching recipe and its family.
func (c *Classifier) Classify(p Params) (Recipe, Family, bool) {
	for _, m := range c.matchers {
		if r, ok := m.Match(p); ok {
			return r, m.Family(), true
		}
	}
	return Recipe{}, FamilyNone, false
}

// Matches returns every family whose matcher accepts p, in priority order.
func (c *Classifier) Matches(p Params) []Family {
	var out []Family
	for _, m := range c.matchers {
		if _, ok := m.Match(p); ok {
			out = append(out, m.Family())
		}
	}
	return out
}
