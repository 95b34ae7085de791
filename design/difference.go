// SPDX-License-Identifier: MIT
// Package: srgcat/design
//
// difference.go: designs developed from base objects over an abelian group.
//
// Group encoding:
//   • G = Z_{m1} × … × Z_{mk}; an element (x1, …, xk) is stored in mixed
//     radix as x1·m2·…·mk + … + xk, so the identity is 0.
//
// Objects:
//   • Difference family: base blocks whose translates form S(2, m, |G|).
//     Short orbits are listed as cosets of a subgroup and deduplicated on
//     development.
//   • Difference matrix: k rows over G with every row difference hitting
//     each element once; gives OA(k+1, |G|).
//   • Quasi-difference matrix (|G|, k; 1, 1; 1): k rows, |G|+2 columns,
//     row i blank in column i; gives OA(k, |G|+1) with ∞ ↦ |G|.

package design

// group is Z_{mods[0]} × … in mixed radix.
type group []int

func (g group) order() int {
	n := 1
	for _, m := range g {
		n *= m
	}
	return n
}

func (g group) add(x, y int) int {
	sum, place := 0, 1
	for i := len(g) - 1; i >= 0; i-- {
		m := g[i]
		sum += ((x%m + y%m) % m) * place
		x, y, place = x/m, y/m, place*m
	}
	return sum
}

type differenceFamily struct {
	group group
	base  [][]int
}

// differenceFamilies holds S(2, m, n) not covered by the geometric or
// triple constructions, keyed by {n, m}.
var differenceFamilies = map[[2]int]differenceFamily{
	{25, 4}: {group{5, 5}, [][]int{{0, 1, 5, 12}, {0, 2, 8, 17}}},
	{37, 4}: {group{37}, [][]int{{0, 1, 13, 30}, {0, 2, 23, 34}, {0, 4, 22, 31}}},
	{49, 4}: {group{49}, [][]int{{0, 1, 20, 26}, {0, 2, 7, 11}, {0, 3, 15, 36}, {0, 8, 18, 35}}},
	{52, 4}: {group{52}, [][]int{
		{0, 1, 9, 37}, {0, 2, 21, 48}, {0, 3, 23, 41}, {0, 5, 35, 45},
		{0, 13, 26, 39},
	}},
	{41, 5}: {group{41}, [][]int{{0, 1, 17, 23, 27}, {0, 2, 5, 13, 34}}},
	{45, 5}: {group{3, 15}, [][]int{
		{0, 16, 29, 34, 41}, {0, 1, 11, 24, 39},
		{0, 3, 6, 9, 12},
	}},
	{61, 5}: {group{61}, [][]int{{0, 1, 18, 34, 58}, {0, 2, 9, 38, 48}, {0, 5, 35, 47, 55}}},
}

// develop translates every base block by every group element, dropping
// repeats from short orbits.
func (df differenceFamily) develop() [][]int {
	order := df.group.order()
	var out [][]int
	for _, b := range df.base {
		for g := 0; g < order; g++ {
			blk := make([]int, len(b))
			for i, x := range b {
				blk[i] = df.group.add(x, g)
			}
			out = append(out, blk)
		}
	}

	return dedupe(canonical(out))
}

// dedupe drops adjacent equal blocks from a canonical list.
func dedupe(blocks [][]int) [][]int {
	out := blocks[:0]
	for i, b := range blocks {
		if i > 0 && !lessInts(blocks[i-1], b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// arraySource builds the largest OA of one order outside MacNeish reach.
type arraySource struct {
	rows  int
	build func() [][]int
}

// arraySources is keyed by the order n.
var arraySources = map[int]arraySource{
	10: {rows: 4, build: func() [][]int { return quasiDifferenceOA(group{9}, qdm9) }},
	12: {rows: 7, build: func() [][]int { return differenceOA(group{2, 6}, dm12) }},
	14: {rows: 4, build: func() [][]int { return quasiDifferenceOA(group{13}, qdm13) }},
	15: {rows: 5, build: func() [][]int { return differenceOA(group{15}, dm15) }},
}

var dm12 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	{0, 7, 11, 5, 2, 6, 4, 10, 9, 8, 3, 1},
	{0, 3, 9, 8, 5, 11, 10, 6, 4, 1, 7, 2},
	{0, 8, 5, 7, 6, 3, 11, 9, 2, 10, 1, 4},
	{0, 11, 8, 6, 1, 4, 7, 3, 10, 2, 5, 9},
}

var dm15 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	{0, 10, 3, 1, 12, 11, 13, 9, 7, 6, 5, 14, 8, 2, 4},
	{0, 7, 14, 11, 6, 3, 2, 10, 13, 8, 4, 12, 1, 5, 9},
}

// blank marks the missing entry of a quasi-difference matrix.
const blank = -1

var qdm9 = [][]int{
	{blank, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, blank, 3, 7, 8, 0, 1, 4, 6, 2, 5},
	{5, 8, blank, 5, 0, 3, 7, 6, 1, 2, 4},
	{3, 1, 3, blank, 5, 2, 8, 0, 7, 6, 4},
}

var qdm13 = [][]int{
	{blank, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{5, blank, 8, 11, 9, 7, 4, 3, 2, 1, 12, 5, 6, 10, 0},
	{9, 12, blank, 1, 4, 5, 11, 3, 8, 0, 9, 10, 7, 6, 2},
	{5, 11, 10, blank, 7, 3, 12, 8, 5, 2, 9, 4, 0, 1, 6},
}

// differenceOA develops column j of d over G into the columns (j, h), with
// an extra row holding j.
func differenceOA(g group, d [][]int) [][]int {
	order := g.order()
	out := make([][]int, len(d)+1)
	for r := range out {
		out[r] = make([]int, 0, order*order)
	}
	for j := 0; j < order; j++ {
		for h := 0; h < order; h++ {
			for i, row := range d {
				out[i] = append(out[i], g.add(row[j], h))
			}
			out[len(d)] = append(out[len(d)], j)
		}
	}

	return out
}

// quasiDifferenceOA develops every column of q over G, then appends the
// constant ∞ column.
func quasiDifferenceOA(g group, q [][]int) [][]int {
	order := g.order()
	inf := order
	out := make([][]int, len(q))
	for r := range out {
		out[r] = make([]int, 0, (order+1)*(order+1))
	}
	for c := range q[0] {
		for h := 0; h < order; h++ {
			for i, row := range q {
				if row[c] == blank {
					out[i] = append(out[i], inf)
					continue
				}
				out[i] = append(out[i], g.add(row[c], h))
			}
		}
	}
	for i := range out {
		out[i] = append(out[i], inf)
	}

	return out
}
