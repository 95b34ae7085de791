// SPDX-License-Identifier: MIT

package srg

import (
	"strconv"
	"strings"
)

// Constructor is the name of a graph factory a Direct recipe invokes.
type Constructor string

// Known constructors and their argument lists.
const (
	PaleyGraph                 Constructor = "PaleyGraph"                 // (q)
	JohnsonGraph               Constructor = "JohnsonGraph"               // (m)
	OrthogonalArrayBlockGraph  Constructor = "OrthogonalArrayBlockGraph"  // (m, n)
	SteinerBlockGraph          Constructor = "SteinerBlockGraph"          // (n, m)
	AffineOrthogonalPolarGraph Constructor = "AffineOrthogonalPolarGraph" // (d, q, ±1)
	SchlaefliGraph             Constructor = "SchlaefliGraph"
	HoffmanSingletonGraph      Constructor = "HoffmanSingletonGraph"
	SimsGewirtzGraph           Constructor = "SimsGewirtzGraph"
	M22Graph                   Constructor = "M22Graph"
	CameronGraph               Constructor = "CameronGraph"
	McLaughlinGraph            Constructor = "McLaughlinGraph"
)

// arity is the argument count of every known constructor.
var arity = map[Constructor]int{
	PaleyGraph:                 1,
	JohnsonGraph:               1,
	OrthogonalArrayBlockGraph:  2,
	SteinerBlockGraph:          2,
	AffineOrthogonalPolarGraph: 3,
	SchlaefliGraph:             0,
	HoffmanSingletonGraph:      0,
	SimsGewirtzGraph:           0,
	M22Graph:                   0,
	CameronGraph:               0,
	McLaughlinGraph:            0,
}

// Kind discriminates the Recipe variants.
type Kind int

const (
	// KindNone is the zero Recipe.
	KindNone Kind = iota
	// KindDirect applies a Constructor to integer arguments.
	KindDirect
	// KindComplement realises Base and complements the result.
	KindComplement
)

// Recipe is a lazy construction: Direct(constructor, args...) or
// ComplementOf(base). Creating one never builds a graph. Recipes are
// immutable; accessors return copies.
type Recipe struct {
	kind Kind
	ctor Constructor
	args []int
	base *Recipe
}

// Direct returns the recipe "apply c to args".
func Direct(c Constructor, args ...int) Recipe {
	return Recipe{kind: KindDirect, ctor: c, args: append([]int(nil), args...)}
}

// ComplementOf returns the recipe "realise base, then complement it".
func ComplementOf(base Recipe) Recipe {
	b := base
	return Recipe{kind: KindComplement, base: &b}
}

// Kind returns the variant tag.
func (r Recipe) Kind() Kind { return r.kind }

// IsZero reports whether r is the zero Recipe.
func (r Recipe) IsZero() bool { return r.kind == KindNone }

// Constructor returns the factory name of a Direct recipe, "" otherwise.
func (r Recipe) Constructor() Constructor { return r.ctor }

// Args returns a copy of a Direct recipe's arguments.
func (r Recipe) Args() []int { return append([]int(nil), r.args...) }

// Base returns the wrapped recipe of a ComplementOf recipe.
func (r Recipe) Base() (Recipe, bool) {
	if r.kind != KindComplement || r.base == nil {
		return Recipe{}, false
	}
	return *r.base, true
}

// String renders e.g. PaleyGraph(13) or complement(JohnsonGraph(7)).
func (r Recipe) String() string {
	switch r.kind {
	case KindDirect:
		var sb strings.Builder
		sb.WriteString(string(r.ctor))
		sb.WriteByte('(')
		for i, a := range r.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(a))
		}
		sb.WriteByte(')')
		return sb.String()
	case KindComplement:
		if r.base == nil {
			return "complement(?)"
		}
		return "complement(" + r.base.String() + ")"
	default:
		return "<none>"
	}
}
