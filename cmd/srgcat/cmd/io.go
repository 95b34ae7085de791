// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/srgcat/catalog"
	"github.com/katalvlaran/srgcat/feasible"
	"github.com/katalvlaran/srgcat/internal/config"
	"github.com/katalvlaran/srgcat/srg"
)

// parseParams reads v k λ μ from four positional arguments.
func parseParams(args []string) (srg.Params, error) {
	if len(args) != 4 {
		return srg.Params{}, fmt.Errorf("want 4 integers v k lambda mu, got %d arguments", len(args))
	}
	var xs [4]int
	for i, s := range args {
		x, err := strconv.Atoi(s)
		if err != nil {
			return srg.Params{}, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
		}
		xs[i] = x
	}
	return srg.Params{V: xs[0], K: xs[1], Lambda: xs[2], Mu: xs[3]}, nil
}

// loadFeasible reads feasible.path, or enumerates feasible.vmin..vmax.
func loadFeasible(cfg *config.Config) ([]srg.Params, error) {
	if cfg.Feasible.Path == "" {
		return feasible.Enumerate(cfg.Feasible.VMin, cfg.Feasible.VMax), nil
	}
	f, err := os.Open(cfg.Feasible.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return feasible.Parse(f)
}

// loadCatalog reads catalog.path in catalog.format. An empty path yields
// an empty catalog, except for sqlite where store.path is the fallback.
func loadCatalog(ctx context.Context, cfg *config.Config) (srg.Catalog, error) {
	path := cfg.Catalog.Path
	if cfg.Catalog.Format == config.FormatSQLite {
		if path == "" {
			path = cfg.Store.Path
		}
		if path == "" {
			return srg.Catalog{}, nil
		}
		s, err := catalog.Open(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.LoadCatalog(ctx)
	}

	if path == "" {
		return srg.Catalog{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if cfg.Catalog.Format == config.FormatYAML {
		return catalog.ReadYAML(f)
	}
	return catalog.ParseBrouwer(f)
}
