// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for every Constructor,
// verifying element counts, closedness, orientation and positions.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

const eps = 1e-9

// newellNormal returns the area-weighted normal of face f.
func newellNormal(m *mesh.Mesh, f handle.Face) r3.Vec {
	pos, _ := mesh.Positions(m)
	var corners []r3.Vec
	for v := range m.Topology().VerticesAroundFace(f) {
		corners = append(corners, pos.At(v))
	}
	var n r3.Vec
	for i, p := range corners {
		n = r3.Add(n, r3.Cross(p, corners[(i+1)%len(corners)]))
	}

	return n
}

func faceCentroid(m *mesh.Mesh, f handle.Face) r3.Vec {
	pos, _ := mesh.Positions(m)
	var c r3.Vec
	n := 0
	for v := range m.Topology().VerticesAroundFace(f) {
		c = r3.Add(c, pos.At(v))
		n++
	}

	return r3.Scale(1/float64(n), c)
}

func isClosed(m *mesh.Mesh) bool {
	for h := range m.Halfedges() {
		if m.Topology().IsBoundaryHalfedge(h) {
			return false
		}
	}

	return true
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tri := []builder.BuilderOption{builder.WithTriangulate()}
	tests := []struct {
		name         string
		ctor         builder.Constructor
		opts         []builder.BuilderOption
		wantV, wantE int
		wantF        int
		closed       bool
		faceDegree   int
	}{
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), nil, 4, 6, 4, true, 3},
		{"Cube", builder.PlatonicSolid(builder.Cube), nil, 8, 12, 6, true, 4},
		{"Cube/triangulated", builder.PlatonicSolid(builder.Cube), tri, 8, 18, 12, true, 3},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), nil, 6, 12, 8, true, 3},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron), nil, 20, 30, 12, true, 5},
		{"Dodecahedron/triangulated", builder.PlatonicSolid(builder.Dodecahedron), tri, 20, 54, 36, true, 3},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), nil, 12, 30, 20, true, 3},
		{"Grid(2,3)", builder.Grid(2, 3), nil, 12, 17, 6, false, 4},
		{"Grid(2,3)/triangulated", builder.Grid(2, 3), tri, 12, 23, 12, false, 3},
		{"Grid(1,1)", builder.Grid(1, 1), nil, 4, 4, 1, false, 4},
		{"Fan(6)", builder.Fan(6), nil, 7, 12, 6, false, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, m.Topology().Validate())

			assert.Equal(t, tc.wantV, m.NVertices(), "vertices")
			assert.Equal(t, tc.wantE, m.NEdges(), "edges")
			assert.Equal(t, tc.wantF, m.NFaces(), "faces")
			assert.Equal(t, tc.closed, isClosed(m), "closed")
			for f := range m.Faces() {
				assert.Equal(t, tc.faceDegree, m.Topology().FaceDegree(f), "degree of %s", f)
			}
			if tc.closed {
				assert.Equal(t, 2, m.NVertices()-m.NEdges()+m.NFaces(), "Euler characteristic of a sphere")
			}
		})
	}
}

func TestPlatonicSolid_OutwardUnitShell(t *testing.T) {
	t.Parallel()

	for _, name := range []builder.PlatonicName{
		builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Dodecahedron, builder.Icosahedron,
	} {
		t.Run(name.String(), func(t *testing.T) {
			m, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(name))
			require.NoError(t, err)

			pos, err := mesh.Positions(m)
			require.NoError(t, err)
			for v := range m.Vertices() {
				assert.InDelta(t, 1.0, r3.Norm(pos.At(v)), eps, "%s on the unit sphere", v)
			}
			for f := range m.Faces() {
				n := newellNormal(m, f)
				assert.Positive(t, r3.Dot(n, faceCentroid(m, f)), "%s faces outward", f)
			}

			// Regular solids: every vertex has the same valence.
			first := m.Topology().Valence(handle.New[handle.VertexKind](0))
			for v := range m.Vertices() {
				assert.Equal(t, first, m.Topology().Valence(v))
			}
		})
	}
}

func TestBuildMesh_ScaleAndCenter(t *testing.T) {
	t.Parallel()

	center := r3.Vec{X: 1, Y: 2, Z: 3}
	m, err := builder.BuildMesh(nil,
		[]builder.BuilderOption{builder.WithScale(2), builder.WithCenter(center)},
		builder.PlatonicSolid(builder.Icosahedron))
	require.NoError(t, err)

	pos, err := mesh.Positions(m)
	require.NoError(t, err)
	for v := range m.Vertices() {
		assert.InDelta(t, 2.0, r3.Norm(r3.Sub(pos.At(v), center)), eps)
	}
}

func TestGrid_Positions(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithScale(0.5)}, builder.Grid(2, 3))
	require.NoError(t, err)
	pos, err := mesh.Positions(m)
	require.NoError(t, err)

	// Row-major: vertex (r,c) has index r*(cols+1)+c.
	assert.Equal(t, r3.Vec{X: 1.5, Y: 1}, pos.At(handle.New[handle.VertexKind](2*4+3)))
	for f := range m.Faces() {
		assert.Positive(t, newellNormal(m, f).Z, "grid faces +z")
	}
}

func TestFan_CentreIsInterior(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(nil, nil, builder.Fan(5))
	require.NoError(t, err)
	topo := m.Topology()

	centre := handle.New[handle.VertexKind](0)
	assert.False(t, topo.IsBoundaryVertex(centre))
	assert.Equal(t, 5, topo.Valence(centre))
	for v := range m.Vertices() {
		if v != centre {
			assert.True(t, topo.IsBoundaryVertex(v))
			assert.Equal(t, 3, topo.Valence(v))
		}
	}
}

func TestBuildMesh_Composition(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(
		[]mesh.Option{mesh.WithVertexCapacity(12)},
		nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.PlatonicSolid(builder.Cube),
	)
	require.NoError(t, err)
	require.NoError(t, m.Topology().Validate())
	assert.Equal(t, 12, m.NVertices())
	assert.Equal(t, 10, m.NFaces())

	// The cube starts after the tetrahedron and shares none of its vertices.
	for u := range m.Topology().VerticesAroundVertex(handle.New[handle.VertexKind](4)) {
		assert.GreaterOrEqual(t, u.Idx(), 4)
	}
}

func TestBuildMesh_Jitter(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *mesh.Mesh {
		m, err := builder.BuildMesh(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(0.1)},
			builder.PlatonicSolid(builder.Octahedron))
		require.NoError(t, err)

		return m
	}
	a, b, c := build(7), build(7), build(8)
	pa, _ := mesh.Positions(a)
	pb, _ := mesh.Positions(b)
	pc, _ := mesh.Positions(c)

	differs := false
	for v := range a.Vertices() {
		assert.Equal(t, pa.At(v), pb.At(v), "same seed, same positions")
		d := r3.Sub(pa.At(v), r3.Vec{})
		assert.InDelta(t, 1.0, r3.Norm(d), 0.1*math.Sqrt(3)+eps)
		if pa.At(v) != pc.At(v) {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds diverge")
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Grid rows=0", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid cols=0", nil, builder.Grid(3, 0), builder.ErrTooFewVertices},
		{"Fan(2)", nil, builder.Fan(2), builder.ErrTooFewVertices},
		{"unknown solid", nil, builder.PlatonicSolid(builder.PlatonicName(99)), builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"jitter without rng", []builder.BuilderOption{builder.WithJitter(0.5)}, builder.Fan(3), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(-1) })
	assert.Panics(t, func() { builder.WithScale(math.NaN()) })
	assert.Panics(t, func() { builder.WithScale(math.Inf(1)) })
	assert.Panics(t, func() { builder.WithJitter(-0.1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.WithJitter(0) })
}

func TestPlatonicName_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dodecahedron", builder.Dodecahedron.String())
	assert.Equal(t, "Unknown", builder.PlatonicName(-1).String())
}
