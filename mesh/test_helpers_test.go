// SPDX-License-Identifier: MIT
// Package mesh_test contains fixtures shared by the mesh tests.

package mesh_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Common fixture sizes (avoid magic numbers in test bodies).
const (
	FanSize      = 6
	NManyVertex  = 32
	ReserveCount = 15
)

// NewTriangle RETURNS a mesh holding the single face [v0,v1,v2].
func NewTriangle(t *testing.T) (*mesh.Mesh, []handle.Vertex, handle.Face) {
	t.Helper()
	m := mesh.New()
	vs := m.AddVertices(3)
	f, err := m.AddFace(vs...)
	require.NoError(t, err, "AddFace(v0,v1,v2)")

	return m, vs, f
}

// NewTwoTriangles RETURNS [v0,v1,v2] and [v2,v1,v3] sharing edge v1-v2.
func NewTwoTriangles(t *testing.T) (*mesh.Mesh, []handle.Vertex, [2]handle.Face) {
	t.Helper()
	m := mesh.New()
	vs := m.AddVertices(4)
	f0, err := m.AddFace(vs[0], vs[1], vs[2])
	require.NoError(t, err, "AddFace(v0,v1,v2)")
	f1, err := m.AddFace(vs[2], vs[1], vs[3])
	require.NoError(t, err, "AddFace(v2,v1,v3)")

	return m, vs, [2]handle.Face{f0, f1}
}

// NewClosedFan RETURNS n triangles [c, r_i, r_i+1] closed around centre c,
// so c is an interior vertex. vs[0] is c, vs[1..n] the ring.
func NewClosedFan(t *testing.T, n int) (*mesh.Mesh, []handle.Vertex) {
	t.Helper()
	m := mesh.New()
	vs := m.AddVertices(n + 1)
	c, ring := vs[0], vs[1:]
	for i := 0; i < n; i++ {
		_, err := m.AddFace(c, ring[i], ring[(i+1)%n])
		require.NoError(t, err, "AddFace fan wedge %d", i)
	}

	return m, vs
}

// NewTetrahedron RETURNS a closed, consistently oriented tetrahedron.
func NewTetrahedron(t *testing.T) (*mesh.Mesh, []handle.Vertex) {
	t.Helper()
	m := mesh.New()
	vs := m.AddVertices(4)
	for _, tri := range [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}} {
		_, err := m.AddFace(vs[tri[0]], vs[tri[1]], vs[tri[2]])
		require.NoError(t, err, "AddFace%v", tri)
	}

	return m, vs
}

// MustValid FAILS the test if the mesh adjacency is inconsistent.
func MustValid(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	require.NoError(t, m.Topology().Validate())
}

// Counts RETURNS (vertices, edges, faces, halfedges) of m.
func Counts(m *mesh.Mesh) [4]int {
	return [4]int{m.NVertices(), m.NEdges(), m.NFaces(), m.NHalfedges()}
}

// RotateToFirst RETURNS got rotated so that it starts with want[0], for
// comparing cyclic sequences.
func RotateToFirst[H comparable](got, want []H) []H {
	if len(want) == 0 {
		return got
	}
	i := slices.Index(got, want[0])
	if i < 0 {
		return got
	}

	return append(slices.Clone(got[i:]), got[:i]...)
}
