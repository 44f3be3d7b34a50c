// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the mesh constructors.
package builder

// Method names used as error context prefixes.
const (
	MethodBuildMesh     = "BuildMesh"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodGrid          = "Grid"
	MethodFan           = "Fan"
)

// MinGridDim is the smallest number of cells along either grid axis.
const MinGridDim = 1

// MinFanTriangles is the smallest fan that closes around its centre
// without repeating an edge.
const MinFanTriangles = 3

// DefaultScale is the circumradius of the solids and the cell size of grids.
const DefaultScale = 1.0
