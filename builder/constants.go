// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent error prefixes and parameter minima across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodPaley                = "Paley"
	MethodJohnson              = "Johnson"
	MethodOrthogonalArrayBlock = "OrthogonalArrayBlock"
	MethodBlockIntersection    = "BlockIntersection"
	MethodAffinePolar          = "AffinePolar"
	MethodSchlaefli            = "Schlaefli"
	MethodHoffmanSingleton     = "HoffmanSingleton"
	MethodSimsGewirtz          = "SimsGewirtz"
	MethodM22                  = "M22"
	MethodCameron              = "Cameron"
	MethodMcLaughlin           = "McLaughlin"
)

//-----------------------------------------------------------------------------
// Parameter minima
//-----------------------------------------------------------------------------

const (
	// MinJohnsonPoints is the smallest m for which J(m,2) has a vertex.
	MinJohnsonPoints = 2
	// MinOASymbols is the smallest alphabet of an orthogonal array.
	MinOASymbols = 2
	// MinPolarDim is the smallest even dimension of VO±(d,q).
	MinPolarDim = 2
	// MinBlocks is the smallest block count of an intersection graph.
	MinBlocks = 1
)

// MetaLabel is the Vertex.Metadata key holding the combinatorial object a
// vertex was built from (field element, pair, column, block, vector).
const MetaLabel = "label"
