// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/srgcat/srg"
)

// yamlEntry is one catalog row on disk.
type yamlEntry struct {
	V        int    `yaml:"v"`
	K        int    `yaml:"k"`
	Lambda   int    `yaml:"lambda"`
	Mu       int    `yaml:"mu"`
	Status   string `yaml:"status"`
	Comments string `yaml:"comments,omitempty"`
}

// ReadYAML decodes a YAML list of {v,k,lambda,mu,status,comments}.
// An empty document is an empty catalog.
func ReadYAML(r io.Reader) (srg.Catalog, error) {
	var rows []yamlEntry
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	cat := make(srg.Catalog, len(rows))
	for i, row := range rows {
		st, err := srg.ParseStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("ReadYAML: entry %d: %w: %w", i, err, ErrUnknownStatus)
		}
		p := srg.Params{V: row.V, K: row.K, Lambda: row.Lambda, Mu: row.Mu}
		cat[p] = srg.CatalogEntry{Status: st, Comments: row.Comments}
	}

	return cat, nil
}

// WriteYAML encodes cat as a YAML list sorted by parameters.
func WriteYAML(w io.Writer, cat srg.Catalog) error {
	keys := sortedKeys(cat)
	rows := make([]yamlEntry, 0, len(keys))
	for _, p := range keys {
		e := cat[p]
		if e.Status == srg.StatusUnknown {
			return fmt.Errorf("WriteYAML: %s: %w", p, ErrUnknownStatus)
		}
		rows = append(rows, yamlEntry{
			V: p.V, K: p.K, Lambda: p.Lambda, Mu: p.Mu,
			Status:   e.Status.String(),
			Comments: e.Comments,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	return enc.Close()
}
