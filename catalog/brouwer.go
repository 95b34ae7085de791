// SPDX-License-Identifier: MIT

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/srgcat/srg"
)

// Row colours of the Brouwer table.
const (
	ColorExists     = "#b0ffb0"
	ColorImpossible = "#ffb0b0"
	ColorOpen       = "#ffffb0"
)

// brouwerFields is the column count of one row.
const brouwerFields = 9

var colorStatus = map[string]srg.Status{
	ColorExists:     srg.StatusExists,
	ColorImpossible: srg.StatusImpossible,
	ColorOpen:       srg.StatusOpen,
}

var statusColor = map[srg.Status]string{
	srg.StatusExists:     ColorExists,
	srg.StatusImpossible: ColorImpossible,
	srg.StatusOpen:       ColorOpen,
}

// ParseBrouwer reads rows of the form
//
//	color|chr|v|k|lambda|mu|r^f|s^g|comments
//
// An empty v column repeats the v of the previous row. Blank lines are
// skipped. A tuple listed twice keeps its last row. Errors carry the 1-based
// line number and wrap ErrMalformedLine or ErrUnknownStatus.
func ParseBrouwer(r io.Reader) (srg.Catalog, error) {
	cat := make(srg.Catalog)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line, prevV := 0, -1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cols := strings.SplitN(text, "|", brouwerFields)
		if len(cols) != brouwerFields {
			return nil, fmt.Errorf("ParseBrouwer: line %d: %d columns, want %d: %w",
				line, len(cols), brouwerFields, ErrMalformedLine)
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}

		status, ok := colorStatus[strings.ToLower(cols[0])]
		if !ok {
			return nil, fmt.Errorf("ParseBrouwer: line %d: colour %q: %w", line, cols[0], ErrUnknownStatus)
		}

		if cols[2] == "" {
			if prevV < 0 {
				return nil, fmt.Errorf("ParseBrouwer: line %d: empty v on first row: %w", line, ErrMalformedLine)
			}
			cols[2] = strconv.Itoa(prevV)
		}
		var xs [4]int
		for i := 0; i < 4; i++ {
			x, err := strconv.Atoi(cols[2+i])
			if err != nil {
				return nil, fmt.Errorf("ParseBrouwer: line %d: column %d %q: %w", line, 3+i, cols[2+i], ErrMalformedLine)
			}
			xs[i] = x
		}
		prevV = xs[0]

		p := srg.Params{V: xs[0], K: xs[1], Lambda: xs[2], Mu: xs[3]}
		cat[p] = srg.CatalogEntry{Status: status, Comments: cols[8]}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseBrouwer: read: %w", err)
	}

	return cat, nil
}

// WriteBrouwer writes cat in the Brouwer row format, sorted by parameters.
// The chr, r^f and s^g columns are left empty, and v is left empty when it
// repeats the previous row. Entries with StatusUnknown are rejected.
func WriteBrouwer(w io.Writer, cat srg.Catalog) error {
	bw := bufio.NewWriter(w)
	prevV := -1
	for _, p := range sortedKeys(cat) {
		e := cat[p]
		color, ok := statusColor[e.Status]
		if !ok {
			return fmt.Errorf("WriteBrouwer: %s: %w", p, ErrUnknownStatus)
		}
		v := strconv.Itoa(p.V)
		if p.V == prevV {
			v = ""
		}
		prevV = p.V
		if _, err := fmt.Fprintf(bw, "%s||%s|%d|%d|%d|||%s\n", color, v, p.K, p.Lambda, p.Mu, e.Comments); err != nil {
			return err
		}
	}

	return bw.Flush()
}
