// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_fan.go - implementation of the Fan(n) constructor.
//
// Canonical model:
//   • Centre vertex first, then n rim vertices on the unit circle in the z=0
//     plane, counter-clockwise from +x.
//   • n triangles [centre, rim(k), rim(k+1 mod n)]; the centre is interior,
//     every rim vertex lies on the single boundary loop.
//
// Contract:
//   • n ≥ MinFanTriangles, else ErrTooFewVertices.
//
// Complexity: O(n).

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Fan returns a Constructor that appends a disk of n triangles around a
// centre vertex.
func Fan(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodFan, "n", n, MinFanTriangles); err != nil {
			return err
		}

		s := shell{points: make([]r3.Vec, 0, n+1), faces: make([][]int, 0, n)}
		s.points = append(s.points, r3.Vec{})
		for k := 0; k < n; k++ {
			a := 2 * math.Pi * float64(k) / float64(n)
			s.points = append(s.points, r3.Vec{X: math.Cos(a), Y: math.Sin(a)})
		}
		for k := 0; k < n; k++ {
			s.faces = append(s.faces, []int{0, 1 + k, 1 + (k+1)%n})
		}

		return addShell(m, cfg, MethodFan, s)
	}
}
