// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// impl_sporadic.go: Schlaefli() and HoffmanSingleton().
//
// Schläfli graph (27,16,10,8):
//   • Vertices are the 27 lines on a smooth cubic surface:
//     a_i, b_i (i = 0..5) and c_ij (i<j), in that order.
//   • Lines meet as follows: a_i–b_j for i≠j; a_i and b_i meet c_jk iff
//     i ∈ {j,k}; c_ij–c_kl iff {i,j} ∩ {k,l} = ∅. a's are mutually skew,
//     as are b's.
//   • The graph joins SKEW lines (the complement of the (27,10,1,5) meeting
//     graph).
//
// Hoffman–Singleton graph (50,7,0,1), Robertson's construction:
//   • Pentagons P_h (vertices 5h+j): j ~ j±1.
//   • Pentagrams Q_i (vertices 25+5i+j): j ~ j±2.
//   • P_h[j] ~ Q_i[h·i + j mod 5].

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/srgcat/core"
)

const (
	schlaefliPoints = 6
	hsGroups        = 5
)

// cubicLine is one of the 27 lines: kind 'a' / 'b' use i, 'c' uses i<j.
type cubicLine struct {
	kind byte
	i, j int
}

func (l cubicLine) String() string {
	if l.kind == 'c' {
		return "c" + strconv.Itoa(l.i+1) + strconv.Itoa(l.j+1)
	}
	return string(l.kind) + strconv.Itoa(l.i+1)
}

func (l cubicLine) touches(i int) bool { return l.i == i || l.j == i }

// meets reports whether two distinct lines intersect.
func (l cubicLine) meets(o cubicLine) bool {
	if l.kind > o.kind {
		l, o = o, l
	}
	switch {
	case l.kind == o.kind && l.kind != 'c':
		return false
	case l.kind == 'a' && o.kind == 'b':
		return l.i != o.i
	case o.kind == 'c' && l.kind != 'c':
		return o.touches(l.i)
	default: // c, c
		return !o.touches(l.i) && !o.touches(l.j)
	}
}

func cubicLines() []cubicLine {
	lines := make([]cubicLine, 0, 27)
	for _, kind := range []byte{'a', 'b'} {
		for i := 0; i < schlaefliPoints; i++ {
			lines = append(lines, cubicLine{kind: kind, i: i, j: -1})
		}
	}
	for i := 0; i < schlaefliPoints; i++ {
		for j := i + 1; j < schlaefliPoints; j++ {
			lines = append(lines, cubicLine{kind: 'c', i: i, j: j})
		}
	}

	return lines
}

// Schlaefli returns a Constructor for the Schläfli graph.
func Schlaefli() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		lines := cubicLines()
		ids, err := addIndexedVertices(g, cfg, MethodSchlaefli, len(lines), func(i int) string {
			return lines[i].String()
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodSchlaefli, ids, func(i, j int) bool {
			return !lines[i].meets(lines[j])
		})
	}
}

// HoffmanSingleton returns a Constructor for the Hoffman–Singleton graph.
func HoffmanSingleton() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const half = hsGroups * hsGroups
		ids, err := addIndexedVertices(g, cfg, MethodHoffmanSingleton, 2*half, func(i int) string {
			kind := "P"
			if i >= half {
				kind, i = "Q", i-half
			}
			return fmt.Sprintf("%s%d[%d]", kind, i/hsGroups, i%hsGroups)
		})
		if err != nil {
			return err
		}

		return connectWhere(g, MethodHoffmanSingleton, ids, func(x, y int) bool {
			// x < y, so a P vertex always comes first.
			gx, jx := (x%half)/hsGroups, x%hsGroups
			gy, jy := (y%half)/hsGroups, y%hsGroups
			diff := (jy - jx + hsGroups) % hsGroups
			switch {
			case y < half: // P, P
				return gx == gy && (diff == 1 || diff == hsGroups-1)
			case x >= half: // Q, Q
				return gx == gy && (diff == 2 || diff == hsGroups-2)
			default: // P_h[j], Q_i[k]
				return jy == (gx*gy+jx)%hsGroups
			}
		})
	}
}
