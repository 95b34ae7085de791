// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn ("0","1","2",...)
//   • withLabel = true (vertex Metadata[MetaLabel] holds the combinatorial object)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// Attach a human-readable label to each vertex.
	withLabel bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		withLabel: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
