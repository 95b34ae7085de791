// SPDX-License-Identifier: MIT

package srg

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/srgcat/design"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	classifier *Classifier
	workers    int
	logger     *zap.Logger
	observer   func(Params, Family)
}

// WithClassifier replaces the default classifier (backed by design.NewOracle).
// Panics on nil.
func WithClassifier(c *Classifier) BuildOption {
	if c == nil {
		panic("srg: WithClassifier(nil)")
	}
	return func(cfg *buildConfig) { cfg.classifier = c }
}

// WithWorkers classifies with up to n goroutines. n ≤ 1 is serial.
func WithWorkers(n int) BuildOption {
	return func(cfg *buildConfig) { cfg.workers = n }
}

// WithLogger sets the logger. Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) BuildOption {
	if l == nil {
		panic("srg: WithLogger(nil)")
	}
	return func(cfg *buildConfig) { cfg.logger = l }
}

// WithObserver registers a hook called once per inserted entry, in
// insertion order, from the calling goroutine.
func WithObserver(fn func(Params, Family)) BuildOption {
	return func(cfg *buildConfig) { cfg.observer = fn }
}

type classified struct {
	recipe Recipe
	family Family
	ok     bool
}

// Build seeds a new registry with the sporadic table, then classifies every
// feasible tuple and inserts matches that are not already present. Sporadic
// entries are never overwritten. With WithWorkers the classification fans
// out, but results are merged serially in input order, so the registry and
// the observer sequence do not depend on scheduling.
//
// Context cancellation is checked between tuples.
func Build(ctx context.Context, feasible []Params, opts ...BuildOption) (*Registry, error) {
	cfg := buildConfig{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.classifier == nil {
		cfg.classifier = NewClassifier(design.NewOracle())
	}
	log := cfg.logger

	reg := NewRegistry()
	exc := Exceptional()
	seeds := make([]Params, 0, len(exc))
	for p := range exc {
		seeds = append(seeds, p)
	}
	sortParams(seeds)
	for _, p := range seeds {
		reg.Insert(p, Entry{Recipe: exc[p], Family: FamilySporadic})
		cfg.notify(p, FamilySporadic)
	}

	results, err := classifyAll(ctx, cfg, feasible)
	if err != nil {
		return nil, err
	}

	for i, res := range results {
		if !res.ok {
			continue
		}
		p := feasible[i]
		if !reg.Insert(p, Entry{Recipe: res.recipe, Family: res.family}) {
			log.Debug("tuple already registered", zap.Stringer("params", p), zap.Stringer("family", res.family))
			continue
		}
		log.Debug("classified", zap.Stringer("params", p), zap.Stringer("family", res.family), zap.Stringer("recipe", res.recipe))
		cfg.notify(p, res.family)
	}

	log.Info("registry built",
		zap.Int("feasible", len(feasible)),
		zap.Int("entries", reg.Len()),
		zap.Int("workers", cfg.workers))
	return reg, nil
}

func (cfg buildConfig) notify(p Params, f Family) {
	if cfg.observer != nil {
		cfg.observer(p, f)
	}
}

// classifyAll fills an index-addressed result slice.
func classifyAll(ctx context.Context, cfg buildConfig, feasible []Params) ([]classified, error) {
	results := make([]classified, len(feasible))
	c := cfg.classifier

	if cfg.workers <= 1 {
		for i, p := range feasible {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("srg: Build: %w", err)
			}
			r, f, ok := c.Classify(p)
			results[i] = classified{recipe: r, family: f, ok: ok}
		}
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, p := range feasible {
		i, p := i, p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, f, ok := c.Classify(p)
			results[i] = classified{recipe: r, family: f, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("srg: Build: %w", err)
	}
	// errgroup only cancels gCtx on a goroutine error; a parent
	// cancellation after the last check must still fail the build.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("srg: Build: %w", err)
	}
	return results, nil
}
