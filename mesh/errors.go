// SPDX-License-Identifier: MIT

package mesh

import "errors"

// Sentinel errors for mesh editing. Every AddFace error leaves the mesh untouched.
var (
	// ErrTooFewVertices indicates a face boundary with fewer than three vertices.
	ErrTooFewVertices = errors.New("mesh: face needs at least 3 vertices")

	// ErrDegenerateFace indicates a vertex appears more than once in one face boundary.
	ErrDegenerateFace = errors.New("mesh: repeated vertex in face")

	// ErrNonManifoldVertex indicates a face vertex is not on the boundary, so the
	// new face would attach a second fan to it.
	ErrNonManifoldVertex = errors.New("mesh: complex vertex")

	// ErrNonBoundaryEdge indicates a face edge already has faces on both sides.
	ErrNonBoundaryEdge = errors.New("mesh: complex edge")

	// ErrPatchRelink indicates two existing face edges meet at a vertex whose
	// boundary offers no free gap to move the fan between them into.
	ErrPatchRelink = errors.New("mesh: patch re-linking failed")

	// ErrInvariant is returned by Topology.Validate when adjacency is inconsistent.
	ErrInvariant = errors.New("mesh: topology invariant violated")
)
