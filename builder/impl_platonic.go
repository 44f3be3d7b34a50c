// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go - implementation of the PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrOptionViolation before any element is created.
//   • Vertices are appended in dataset order, faces in dataset order.
//   • The result is a closed 2-manifold with no boundary halfedge.
//
// Complexity: O(V+F) for the chosen solid (V ≤ 20, F ≤ 20).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// PlatonicSolid returns a Constructor that appends the named solid.
// With WithTriangulate the Cube and Dodecahedron become triangle meshes.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		s, ok := platonicShells[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", MethodPlatonicSolid, int(name), ErrOptionViolation)
		}

		return addShell(m, cfg, MethodPlatonicSolid+"("+name.String()+")", s)
	}
}
