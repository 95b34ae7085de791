// SPDX-License-Identifier: MIT

package feasible

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/srgcat/srg"
)

// ErrMalformedLine reports a line that is not four integers.
var ErrMalformedLine = errors.New("feasible: malformed line")

// Parse reads one tuple per line: four integers separated by whitespace
// and/or commas, optionally wrapped in parentheses. Blank lines and text
// after '#' are ignored.
func Parse(r io.Reader) ([]srg.Params, error) {
	var out []srg.Params
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == '(' || r == ')' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: %d fields: %w", line, len(fields), ErrMalformedLine)
		}
		var xs [4]int
		for i, f := range fields {
			x, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrMalformedLine)
			}
			xs[i] = x
		}
		out = append(out, srg.Params{V: xs[0], K: xs[1], Lambda: xs[2], Mu: xs[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("feasible: read: %w", err)
	}
	return out, nil
}
