// SPDX-License-Identifier: MIT
//
// File: loop.go
// Role: Loop subdivision of triangle meshes.
//
// Output layout for one level over an input with V vertices, E edges and
// F faces:
//   - vertices 0..V-1 are the smoothed input vertices, in input order;
//   - vertices V..V+E-1 are the edge points, in input edge order;
//   - faces come in groups of four per input face, in input face order.

package subdivision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/property"
)

type positions = property.Property[handle.VertexKind, r3.Vec]

// Loop returns the Loop subdivision of m. The result has its own
// mesh.PositionName column and no other properties.
//
// Complexity: O(V + E + F) per iteration; element counts grow about 4× per
// iteration.
func Loop(m *mesh.Mesh, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)

	cur := m
	for i := 0; i < cfg.iterations; i++ {
		next, err := loopOnce(cur)
		if err != nil {
			return nil, fmt.Errorf("Loop: iteration %d: %w", i+1, err)
		}
		cur = next
	}

	return cur, nil
}

func loopOnce(m *mesh.Mesh) (*mesh.Mesh, error) {
	pos, err := mesh.Positions(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingPosition, err)
	}
	topo := m.Topology()
	for f := range topo.Faces() {
		if d := topo.FaceDegree(f); d != 3 {
			return nil, fmt.Errorf("%s has %d corners: %w", f, d, ErrNotTriangleMesh)
		}
	}

	nv, ne, nf := m.NVertices(), m.NEdges(), m.NFaces()
	out := mesh.New(
		mesh.WithVertexCapacity(nv+ne),
		mesh.WithEdgeCapacity(2*ne+3*nf),
		mesh.WithFaceCapacity(4*nf),
	)
	spos, err := mesh.EnsurePositions(out)
	if err != nil {
		return nil, err
	}

	for v := range topo.Vertices() {
		p, err := vertexPoint(topo, pos, v)
		if err != nil {
			return nil, err
		}
		spos.Set(out.AddVertex(), p)
	}

	edgePoint := make([]handle.Vertex, ne)
	for e := range topo.Edges() {
		sv := out.AddVertex()
		edgePoint[e.Idx()] = sv
		spos.Set(sv, edgeMask(topo, pos, e))
	}

	for f := range topo.Faces() {
		var corner, mid [3]handle.Vertex
		i := 0
		for h := range topo.HalfedgesAroundFace(f) {
			corner[i] = topo.FromVertex(h)
			mid[i] = edgePoint[topo.Edge(h).Idx()]
			i++
		}
		for _, tri := range [4][3]handle.Vertex{
			{corner[0], mid[0], mid[2]},
			{mid[0], mid[1], mid[2]},
			{mid[0], corner[1], mid[1]},
			{mid[1], corner[2], mid[2]},
		} {
			if _, err := out.AddFace(tri[0], tri[1], tri[2]); err != nil {
				return nil, fmt.Errorf("splitting %s: %w", f, err)
			}
		}
	}

	return out, nil
}

// vertexPoint smooths v. Isolated vertices keep their position.
func vertexPoint(topo *mesh.Topology, pos positions, v handle.Vertex) (r3.Vec, error) {
	p := pos.At(v)
	out, ok := topo.Halfedge(v)
	if !ok {
		return p, nil
	}

	if topo.IsBoundaryHalfedge(out) {
		a := pos.At(topo.ToVertex(out))
		b := pos.At(topo.FromVertex(topo.Prev(out)))

		return r3.Add(r3.Scale(3.0/4, p), r3.Scale(1.0/8, r3.Add(a, b))), nil
	}

	var sum r3.Vec
	n := 0
	for u := range topo.VerticesAroundVertex(v) {
		sum = r3.Add(sum, pos.At(u))
		n++
	}
	if n < 3 {
		return r3.Vec{}, fmt.Errorf("%s has %d neighbours: %w", v, n, ErrLowValence)
	}
	beta := loopBeta(n)

	return r3.Add(r3.Scale(1-beta*float64(n), p), r3.Scale(beta, sum)), nil
}

// loopBeta is Loop's neighbour weight for an interior vertex of valence n.
// Valence 3 uses Warren's 3/16.
func loopBeta(n int) float64 {
	if n == 3 {
		return 3.0 / 16
	}
	t := 3.0/8 + math.Cos(2*math.Pi/float64(n))/4

	return (5.0/8 - t*t) / float64(n)
}

// edgeMask places the new vertex of e. Boundary edges use the midpoint.
func edgeMask(topo *mesh.Topology, pos positions, e handle.Edge) r3.Vec {
	h := topo.EdgeHalfedge(e, 0)
	a := pos.At(topo.ToVertex(h))
	b := pos.At(topo.FromVertex(h))
	if topo.IsBoundaryEdge(e) {
		return r3.Scale(0.5, r3.Add(a, b))
	}
	c := pos.At(topo.ToVertex(topo.Next(h)))
	d := pos.At(topo.ToVertex(topo.Next(topo.Opposite(h))))

	return r3.Add(r3.Scale(3.0/8, r3.Add(a, b)), r3.Scale(1.0/8, r3.Add(c, d)))
}
