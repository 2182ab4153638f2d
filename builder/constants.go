// SPDX-License-Identifier: MIT

package builder

// Method names prefix errors with the constructor that raised them.
const (
	methodBuildGraph    = "BuildGraph"
	methodPolygon       = "Polygon"
	methodWheel         = "Wheel"
	methodGrid          = "Grid"
	methodPlatonicSolid = "PlatonicSolid"
	methodIndices       = "Indices"
)

// MinPolygonSides is the smallest ring a face may bound.
const MinPolygonSides = 3

// MinGridDim is the smallest allowed number of rows or columns of quads.
const MinGridDim = 1
