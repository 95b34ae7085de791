// SPDX-License-Identifier: MIT
// Package: srgcat/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix sets the ID scheme to SymbolNumberIDFn(prefix): "v0","v1",...
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithoutLabels skips the per-vertex MetaLabel metadata. Large realisations
// that only need parameters use it to save allocations.
func WithoutLabels() BuilderOption {
	return func(c *builderConfig) {
		c.withLabel = false
	}
}
