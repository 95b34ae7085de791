// SPDX-License-Identifier: MIT

package srg

import "fmt"

// Family names the origin of a registry entry.
type Family int

// Families in classifier priority order, then the two non-matcher origins.
const (
	FamilyNone Family = iota
	FamilyPaley
	FamilyJohnson
	FamilyOrthogonalArrayBlock
	FamilySteiner
	FamilyAffinePolar
	FamilySporadic
	FamilyComplement
)

var familyNames = [...]string{
	FamilyNone:                 "none",
	FamilyPaley:                "paley",
	FamilyJohnson:              "johnson",
	FamilyOrthogonalArrayBlock: "oa-block",
	FamilySteiner:              "steiner",
	FamilyAffinePolar:          "affine-polar",
	FamilySporadic:             "sporadic",
	FamilyComplement:           "complement",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if name == s {
			return Family(f), nil
		}
	}
	return FamilyNone, fmt.Errorf("ParseFamily(%q): %w", s, ErrUnknownFamily)
}
