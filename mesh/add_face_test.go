// SPDX-License-Identifier: MIT

package mesh_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

func TestAddFace_SingleTriangle(t *testing.T) {
	m, vs, f := NewTriangle(t)
	topo := m.Topology()

	assert.Equal(t, 0, f.Idx())
	assert.Equal(t, [4]int{3, 3, 1, 6}, Counts(m))

	h, ok := topo.FindHalfedge(vs[0], vs[1])
	require.True(t, ok, "FindHalfedge(v0,v1)")
	assert.False(t, topo.IsBoundaryHalfedge(h))
	assert.True(t, topo.IsBoundaryHalfedge(topo.Opposite(h)))
	assert.Equal(t, vs[0], topo.FromVertex(h))
	assert.Equal(t, vs[1], topo.ToVertex(h))

	got, inner := topo.Face(h)
	require.True(t, inner)
	assert.Equal(t, f, got)

	for _, v := range vs {
		assert.True(t, topo.IsBoundaryVertex(v), "%s stays on the boundary", v)
		out, ok := topo.Halfedge(v)
		require.True(t, ok)
		assert.True(t, topo.IsBoundaryHalfedge(out), "%s stores a boundary outgoing halfedge", v)
	}
	MustValid(t, m)
}

func TestAddFace_CWRotated(t *testing.T) {
	m, vs, _ := NewTriangle(t)
	topo := m.Topology()

	h0, ok := topo.FindHalfedge(vs[0], vs[1])
	require.True(t, ok)
	h1, ok := topo.FindHalfedge(vs[0], vs[2])
	require.True(t, ok)

	assert.Equal(t, h1, topo.CWRotated(h0))
	assert.Equal(t, h0, topo.CWRotated(h1))
	assert.Equal(t, h0, topo.CCWRotated(topo.CWRotated(h0)))
}

func TestAddFace_TwoTrianglesShareEdge(t *testing.T) {
	m, vs, fs := NewTwoTriangles(t)
	topo := m.Topology()

	assert.Equal(t, [4]int{4, 5, 2, 10}, Counts(m))

	h, ok := topo.FindHalfedge(vs[1], vs[2])
	require.True(t, ok)
	fa, okA := topo.Face(h)
	fb, okB := topo.Face(topo.Opposite(h))
	require.True(t, okA && okB, "shared edge must be interior on both sides")
	assert.NotEqual(t, fa, fb)
	assert.ElementsMatch(t, fs[:], []handle.Face{fa, fb})
	assert.False(t, topo.IsBoundaryEdge(topo.Edge(h)))
	MustValid(t, m)

	_, err := m.AddFace(vs[2], vs[1], vs[3])
	require.ErrorIs(t, err, mesh.ErrNonBoundaryEdge)
	assert.Equal(t, 2, m.NFaces())
	MustValid(t, m)
}

func TestAddFace_SameListTwice(t *testing.T) {
	m, vs, _ := NewTriangle(t)
	before := Counts(m)

	_, err := m.AddFace(vs...)
	require.ErrorIs(t, err, mesh.ErrNonBoundaryEdge)
	assert.Equal(t, before, Counts(m))
}

func TestAddFace_ReversedTriangleClosesSheet(t *testing.T) {
	m, vs, _ := NewTriangle(t)

	_, err := m.AddFace(vs[0], vs[2], vs[1])
	require.NoError(t, err, "the back side of a lone triangle is all boundary")
	assert.Equal(t, [4]int{3, 3, 2, 6}, Counts(m))
	for _, v := range vs {
		assert.False(t, m.Topology().IsBoundaryVertex(v))
	}
	MustValid(t, m)
}

func TestAddFace_InteriorVertexRejected(t *testing.T) {
	m, vs := NewClosedFan(t, FanSize)
	c := vs[0]
	require.False(t, m.Topology().IsBoundaryVertex(c), "fan centre must be interior")
	MustValid(t, m)

	x := m.AddVertex()
	before := Counts(m)

	_, err := m.AddFace(c, vs[1], x)
	require.ErrorIs(t, err, mesh.ErrNonManifoldVertex)
	assert.Equal(t, before, Counts(m))
	assert.True(t, m.Topology().IsIsolated(x), "rejected face must not touch x")
	MustValid(t, m)
}

func TestAddFace_ClosedTetrahedron(t *testing.T) {
	m, vs := NewTetrahedron(t)
	topo := m.Topology()

	assert.Equal(t, [4]int{4, 6, 4, 12}, Counts(m))
	for h := range topo.Halfedges() {
		assert.False(t, topo.IsBoundaryHalfedge(h), "%s of a closed mesh", h)
	}
	for _, v := range vs {
		assert.False(t, topo.IsBoundaryVertex(v))
		assert.Equal(t, 3, topo.Valence(v))
	}
	MustValid(t, m)

	before := Counts(m)
	_, err := m.AddFace(vs[0], vs[1], vs[2])
	require.ErrorIs(t, err, mesh.ErrNonManifoldVertex)
	assert.Equal(t, before, Counts(m))
}

func TestAddFace_Quad(t *testing.T) {
	m := mesh.New()
	vs := m.AddVertices(4)
	f, err := m.AddFace(vs...)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Topology().FaceDegree(f))
	assert.Equal(t, [4]int{4, 4, 1, 8}, Counts(m))
	MustValid(t, m)
}

func TestAddFace_BothEdgesNewAtConnectedVertex(t *testing.T) {
	// Two wedges [c,a,b] and [c,d,e] meet only at c (a bow-tie); the second
	// wedge is spliced into c's boundary loop.
	m := mesh.New()
	vs := m.AddVertices(5)
	c, a, b, d, e := vs[0], vs[1], vs[2], vs[3], vs[4]

	_, err := m.AddFace(c, a, b)
	require.NoError(t, err)
	_, err = m.AddFace(c, d, e)
	require.NoError(t, err)
	MustValid(t, m)

	topo := m.Topology()
	assert.True(t, topo.IsBoundaryVertex(c))
	assert.Equal(t, 4, topo.Valence(c))
	assert.Len(t, slices.Collect(topo.FacesAroundVertex(c)), 2)

	// Filling the gap between the wedges reuses two existing edges.
	_, err = m.AddFace(c, b, d)
	require.NoError(t, err)
	MustValid(t, m)
	assert.Len(t, slices.Collect(topo.FacesAroundVertex(c)), 3)
	out, ok := topo.Halfedge(c)
	require.True(t, ok)
	assert.True(t, topo.IsBoundaryHalfedge(out))
}

func TestAddFace_PatchRelink(t *testing.T) {
	// Three wedges around c. The face [c,b,d] uses the existing edges d->c
	// and c->b, which are not consecutive on c's boundary, so the wedge
	// [c,f,g] between them has to be moved into another gap.
	m := mesh.New()
	vs := m.AddVertices(7)
	c, a, b, d, e, f, g := vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6]

	for _, tri := range [][3]handle.Vertex{{c, a, b}, {c, d, e}, {c, f, g}} {
		_, err := m.AddFace(tri[0], tri[1], tri[2])
		require.NoError(t, err)
	}
	MustValid(t, m)

	_, err := m.AddFace(c, b, d)
	require.NoError(t, err)
	MustValid(t, m)

	topo := m.Topology()
	assert.True(t, topo.IsBoundaryVertex(c))
	assert.Len(t, slices.Collect(topo.FacesAroundVertex(c)), 4)
	assert.Equal(t, 6, topo.Valence(c))
}

func TestAddFace_PatchRelinkFails(t *testing.T) {
	// Closing the back of wedge [c,a,b] while another wedge hangs off c leaves
	// no free gap at c for that wedge.
	m := mesh.New()
	vs := m.AddVertices(7)
	c, a, b, d, e, f, g := vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6]
	for _, tri := range [][3]handle.Vertex{{c, a, b}, {c, d, e}, {c, f, g}} {
		_, err := m.AddFace(tri[0], tri[1], tri[2])
		require.NoError(t, err)
	}
	before := Counts(m)

	_, err := m.AddFace(c, b, a)
	require.ErrorIs(t, err, mesh.ErrPatchRelink)
	assert.Equal(t, before, Counts(m))
	MustValid(t, m)
}

func TestAddFace_InputValidation(t *testing.T) {
	m := mesh.New()
	vs := m.AddVertices(4)

	cases := []struct {
		name string
		face []handle.Vertex
		want error
	}{
		{"empty", nil, mesh.ErrTooFewVertices},
		{"two vertices", vs[:2], mesh.ErrTooFewVertices},
		{"repeated vertex", []handle.Vertex{vs[0], vs[1], vs[0]}, mesh.ErrDegenerateFace},
		{"repeated non-adjacent", []handle.Vertex{vs[0], vs[1], vs[0], vs[2]}, mesh.ErrDegenerateFace},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.AddFace(tc.face...)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, [4]int{4, 0, 0, 0}, Counts(m))
		})
	}

	outside := handle.New[handle.VertexKind](99)
	assert.Panics(t, func() { _, _ = m.AddFace(vs[0], vs[1], outside) })
}

func TestAddFace_LinkInvariants(t *testing.T) {
	m, _ := NewClosedFan(t, FanSize)
	topo := m.Topology()

	for h := range topo.Halfedges() {
		assert.Equal(t, h, topo.Opposite(topo.Opposite(h)))
		assert.Equal(t, h, topo.Next(topo.Prev(h)))
		assert.Equal(t, h, topo.Prev(topo.Next(h)))
		assert.Equal(t, topo.Edge(h), topo.Edge(topo.Opposite(h)))
	}
	for e := range topo.Edges() {
		assert.Equal(t, 2*e.Idx(), topo.EdgeHalfedge(e, 0).Idx())
		assert.Equal(t, 2*e.Idx()+1, topo.EdgeHalfedge(e, 1).Idx())
	}
}

func TestAddFace_FaceLoopMatchesInput(t *testing.T) {
	m := mesh.New()
	vs := m.AddVertices(5)
	f, err := m.AddFace(vs...)
	require.NoError(t, err)

	got := slices.Collect(m.Topology().VerticesAroundFace(f))
	assert.Equal(t, vs, RotateToFirst(got, vs))
	assert.Len(t, slices.Collect(m.Topology().HalfedgesAroundFace(f)), len(vs))
}
