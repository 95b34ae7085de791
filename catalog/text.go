// SPDX-License-Identifier: MIT

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/srgcat/srg"
)

// WriteText writes one fixed-width line per entry, sorted by parameters:
//
//	v    k    λ    μ    status     comments
func WriteText(w io.Writer, cat srg.Catalog) error {
	bw := bufio.NewWriter(w)
	for _, p := range sortedKeys(cat) {
		e := cat[p]
		if _, err := fmt.Fprintf(bw, "%-4d %-4d %-4d %-4d %-10s %s\n",
			p.V, p.K, p.Lambda, p.Mu, e.Status, e.Comments); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLeftovers writes the leftover report in the order given.
func WriteLeftovers(w io.Writer, left []srg.Leftover) error {
	bw := bufio.NewWriter(w)
	for _, l := range left {
		p := l.Params
		if _, err := fmt.Fprintf(bw, "(%-4d, %-4d, %-4d, %-4d): %s\n",
			p.V, p.K, p.Lambda, p.Mu, l.Comments); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Summary counts catalog entries per status.
type Summary struct {
	Impossible int
	Open       int
	Realizable int
	Unknown    int
}

// Total is the number of counted entries.
func (s Summary) Total() int { return s.Impossible + s.Open + s.Realizable + s.Unknown }

// Stats counts cat by status.
func Stats(cat srg.Catalog) Summary {
	var s Summary
	for _, e := range cat {
		switch e.Status {
		case srg.StatusImpossible:
			s.Impossible++
		case srg.StatusOpen:
			s.Open++
		case srg.StatusExists:
			s.Realizable++
		default:
			s.Unknown++
		}
	}
	return s
}

// WriteStats prints s as a short bullet list.
func WriteStats(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "statistics:\n - %d impossible\n - %d open\n - %d realizable\n",
		s.Impossible, s.Open, s.Realizable)
	return err
}

func sortedKeys(cat srg.Catalog) []srg.Params {
	keys := make([]srg.Params, 0, len(cat))
	for p := range cat {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
