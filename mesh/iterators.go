// SPDX-License-Identifier: MIT
//
// File: iterators.go
// Role: Flat iteration over every element of one kind.
//
// Each sequence re-reads the live element count before every step, so
// elements appended during iteration are visited too. Every call returns a
// fresh, independent sequence.

package mesh

import (
	"iter"

	"github.com/katalvlaran/lvmesh/handle"
)

// Vertices yields v0, v1, ... up to the current vertex count.
func (t *Topology) Vertices() iter.Seq[handle.Vertex] {
	return sequence[handle.VertexKind](t.NVertices)
}

// Faces yields f0, f1, ... up to the current face count.
func (t *Topology) Faces() iter.Seq[handle.Face] {
	return sequence[handle.FaceKind](t.NFaces)
}

// Edges yields e0, e1, ... up to the current edge count.
func (t *Topology) Edges() iter.Seq[handle.Edge] {
	return sequence[handle.EdgeKind](t.NEdges)
}

// Halfedges yields h0, h1, ... up to the current halfedge count.
func (t *Topology) Halfedges() iter.Seq[handle.Halfedge] {
	return sequence[handle.HalfedgeKind](t.NHalfedges)
}

func sequence[K handle.Kind](count func() int) iter.Seq[handle.Handle[K]] {
	return func(yield func(handle.Handle[K]) bool) {
		for i := 0; i < count(); i++ {
			if !yield(handle.New[K](i)) {
				return
			}
		}
	}
}

// Vertices is shorthand for m.Topology().Vertices().
func (m *Mesh) Vertices() iter.Seq[handle.Vertex] { return m.topo.Vertices() }

// Faces is shorthand for m.Topology().Faces().
func (m *Mesh) Faces() iter.Seq[handle.Face] { return m.topo.Faces() }

// Edges is shorthand for m.Topology().Edges().
func (m *Mesh) Edges() iter.Seq[handle.Edge] { return m.topo.Edges() }

// Halfedges is shorthand for m.Topology().Halfedges().
func (m *Mesh) Halfedges() iter.Seq[handle.Halfedge] { return m.topo.Halfedges() }
