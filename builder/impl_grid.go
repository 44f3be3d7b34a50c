// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Canonical model:
//   • (rows+1)×(cols+1) vertices in row-major order; vertex (r,c) sits at
//     (c, r, 0) before scaling.
//   • rows×cols quads [ (r,c) (r,c+1) (r+1,c+1) (r+1,c) ], facing +z.
//   • With WithTriangulate each quad becomes two triangles sharing the
//     (r,c)-(r+1,c+1) diagonal.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim, else ErrTooFewVertices.
//
// Complexity: O(rows·cols) time and space.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Grid returns a Constructor that appends a rows×cols grid of unit cells.
func Grid(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		stride := cols + 1
		s := shell{
			points: make([]r3.Vec, 0, (rows+1)*stride),
			faces:  make([][]int, 0, rows*cols),
		}
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				s.points = append(s.points, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*stride + c
				s.faces = append(s.faces, []int{at, at + 1, at + stride + 1, at + stride})
			}
		}

		return addShell(m, cfg, MethodGrid, s)
	}
}
