// SPDX-License-Identifier: MIT

package srg

import (
	"fmt"
	"strings"
)

// Status is a reference catalog verdict.
type Status int

const (
	StatusUnknown Status = iota
	// StatusExists marks tuples realised by some known graph.
	StatusExists
	// StatusImpossible marks tuples proven not to be realisable.
	StatusImpossible
	// StatusOpen marks undecided tuples.
	StatusOpen
)

func (s Status) String() string {
	switch s {
	case StatusExists:
		return "exists"
	case StatusImpossible:
		return "impossible"
	case StatusOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ParseStatus is the case-insensitive inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exists":
		return StatusExists, nil
	case "impossible":
		return StatusImpossible, nil
	case "open":
		return StatusOpen, nil
	}
	return StatusUnknown, fmt.Errorf("ParseStatus(%q): %w", s, ErrUnknownStatus)
}

// CatalogEntry is the reference catalog value for one tuple.
type CatalogEntry struct {
	Status   Status
	Comments string
}

// Catalog is the read-only reference table.
type Catalog map[Params]CatalogEntry

// Leftover is a catalog "exists" tuple without a registered recipe.
type Leftover struct {
	Params   Params
	Comments string
}
