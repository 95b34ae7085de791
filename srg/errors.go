// SPDX-License-Identifier: MIT

package srg

import "errors"

// Sentinel errors. "No match" is never an error.
var (
	// ErrOracleIntegrity indicates the design oracle reported existence but
	// failed to produce a valid design.
	ErrOracleIntegrity = errors.New("srg: design oracle integrity fault")

	// ErrUnknownConstructor indicates a recipe names an unsupported constructor.
	ErrUnknownConstructor = errors.New("srg: unknown constructor")

	// ErrBadRecipe indicates a recipe with the wrong argument count or an
	// empty complement base.
	ErrBadRecipe = errors.New("srg: malformed recipe")

	// ErrParameterMismatch indicates a realised graph does not have the
	// parameters it was registered under.
	ErrParameterMismatch = errors.New("srg: realised parameters differ")

	// ErrSpectrumMismatch indicates a realised graph's adjacency spectrum is
	// not the one its parameters predict.
	ErrSpectrumMismatch = errors.New("srg: realised spectrum differs")

	// ErrUnknownStatus indicates a status word outside exists/impossible/open.
	ErrUnknownStatus = errors.New("srg: unknown status")

	// ErrUnknownFamily indicates a family name no Family prints as.
	ErrUnknownFamily = errors.New("srg: unknown family")
)
