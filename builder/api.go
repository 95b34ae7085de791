// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/srgcat/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices via cfg.idFn in a documented index order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidParameter, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure producing a strongly regular graph.
//
// Paley(q)                  q ≡ 1 (mod 4) prime power.            (q, (q-1)/2, (q-5)/4, (q-1)/4)
// Johnson(m)                J(m,2) on 2-subsets, m ≥ 2.           (m(m-1)/2, 2(m-2), m-2, 4)
// OrthogonalArrayBlock(oa)  columns of an OA(m,n), n ≥ 2.         (n², m(n-1), (m-1)(m-2)+n-2, m(m-1))
// BlockIntersection(blocks) blocks meeting in at least one point. (Steiner 2-designs give SRGs)
// AffinePolar(d, q, sign)   VO±(d,q), d even, Q(x-y) = 0.
// Schlaefli()               (27,16,10,8)
// HoffmanSingleton()        (50,7,0,1)
// SimsGewirtz()             (56,10,0,2)
// M22()                     (77,16,0,4)
// Cameron()                 (231,30,9,3)
// McLaughlin()              (275,112,30,56)
