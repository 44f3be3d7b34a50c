// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Halfedge adjacency storage and O(1) adjacency queries.
//
// Invariants (hold after every completed Mesh operation):
//   - Prev(Next(h)) == h and Next(Prev(h)) == h for every halfedge.
//   - ToVertex(h) == FromVertex(Next(h)).
//   - A boundary vertex stores a boundary halfedge as its outgoing halfedge.
//
// Concurrency:
//   - No internal locking. Concurrent readers are safe; any writer must be
//     exclusive (see Guarded).

package mesh

import (
	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/property"
)

// Column names of the connectivity records.
const (
	vertexConnectivityName   = "v:connectivity"
	halfedgeConnectivityName = "h:connectivity"
	faceConnectivityName     = "f:connectivity"
)

// Topology owns the connectivity columns of a mesh and answers adjacency
// queries. It is only mutated through its Mesh.
type Topology struct {
	vconn *property.Vector[handle.VertexKind, VertexConnectivity]
	hconn *property.Vector[handle.HalfedgeKind, HalfedgeConnectivity]
	fconn *property.Vector[handle.FaceKind, FaceConnectivity]
}

func newTopology() *Topology {
	return &Topology{
		vconn: property.NewVector[handle.VertexKind](vertexConnectivityName, VertexConnectivity{}),
		hconn: property.NewVector[handle.HalfedgeKind](halfedgeConnectivityName, HalfedgeConnectivity{}),
		fconn: property.NewVector[handle.FaceKind](faceConnectivityName, FaceConnectivity{}),
	}
}

// NVertices returns the number of vertices.
func (t *Topology) NVertices() int { return t.vconn.Len() }

// NFaces returns the number of faces.
func (t *Topology) NFaces() int { return t.fconn.Len() }

// NEdges returns the number of edges.
func (t *Topology) NEdges() int { return t.hconn.Len() / 2 }

// NHalfedges returns the number of halfedges, always 2*NEdges().
func (t *Topology) NHalfedges() int { return t.hconn.Len() }

// Connectivity returns a copy of the adjacency record of v.
func (t *Topology) Connectivity(v handle.Vertex) VertexConnectivity { return t.vconn.At(v) }

// Halfedge returns the outgoing halfedge of v, or false if v is isolated.
func (t *Topology) Halfedge(v handle.Vertex) (handle.Halfedge, bool) {
	c := t.Connectivity(v)

	return c.Outgoing, c.Connected
}

// Face returns the face incident to h, or false if h is a boundary halfedge.
func (t *Topology) Face(h handle.Halfedge) (handle.Face, bool) {
	c := t.hconn.At(h)

	return c.Face, c.HasFace
}

// FaceHalfedge returns the representative halfedge of f.
func (t *Topology) FaceHalfedge(f handle.Face) handle.Halfedge { return t.fconn.At(f).Halfedge }

// EdgeHalfedge returns halfedge i (0 or 1) of e.
func (t *Topology) EdgeHalfedge(e handle.Edge, i int) handle.Halfedge { return handle.HalfedgeOf(e, i) }

// Edge returns the edge owning h.
func (t *Topology) Edge(h handle.Halfedge) handle.Edge { return handle.EdgeOf(h) }

// ToVertex returns the vertex h points to.
func (t *Topology) ToVertex(h handle.Halfedge) handle.Vertex { return t.hconn.At(h).To }

// FromVertex returns the vertex h leaves. It equals ToVertex(Prev(h)) on
// linked halfedges and is read from the opposite halfedge.
func (t *Topology) FromVertex(h handle.Halfedge) handle.Vertex {
	return t.ToVertex(handle.Opposite(h))
}

// Next returns the halfedge following h in its face or boundary loop.
func (t *Topology) Next(h handle.Halfedge) handle.Halfedge { return t.hconn.At(h).Next }

// Prev returns the halfedge preceding h in its face or boundary loop.
func (t *Topology) Prev(h handle.Halfedge) handle.Halfedge { return t.hconn.At(h).Prev }

// Opposite returns the other halfedge of h's edge.
func (t *Topology) Opposite(h handle.Halfedge) handle.Halfedge { return handle.Opposite(h) }

// CWRotated returns the next outgoing halfedge clockwise around FromVertex(h).
func (t *Topology) CWRotated(h handle.Halfedge) handle.Halfedge {
	return t.Next(handle.Opposite(h))
}

// CCWRotated returns the next outgoing halfedge counter-clockwise around
// FromVertex(h). It undoes CWRotated.
func (t *Topology) CCWRotated(h handle.Halfedge) handle.Halfedge {
	return handle.Opposite(t.Prev(h))
}

// IsBoundaryHalfedge reports whether h has no incident face.
func (t *Topology) IsBoundaryHalfedge(h handle.Halfedge) bool { return !t.hconn.At(h).HasFace }

// IsBoundaryEdge reports whether either side of e has no incident face.
func (t *Topology) IsBoundaryEdge(e handle.Edge) bool {
	return t.IsBoundaryHalfedge(handle.HalfedgeOf(e, 0)) || t.IsBoundaryHalfedge(handle.HalfedgeOf(e, 1))
}

// IsBoundaryVertex reports whether v is isolated or its outgoing halfedge is
// a boundary halfedge.
func (t *Topology) IsBoundaryVertex(v handle.Vertex) bool {
	h, ok := t.Halfedge(v)

	return !ok || t.IsBoundaryHalfedge(h)
}

// IsIsolated reports whether v has no incident edge.
func (t *Topology) IsIsolated(v handle.Vertex) bool { return !t.Connectivity(v).Connected }

// FindHalfedge returns the halfedge from start to end, rotating clockwise
// around start. Complexity: O(valence(start)).
func (t *Topology) FindHalfedge(start, end handle.Vertex) (handle.Halfedge, bool) {
	h, ok := t.Halfedge(start)
	if !ok {
		return 0, false
	}
	first := h
	for {
		if t.ToVertex(h) == end {
			return h, true
		}
		h = t.CWRotated(h)
		if h == first {
			return 0, false
		}
	}
}

// Valence returns the number of edges incident to v.
func (t *Topology) Valence(v handle.Vertex) int {
	n := 0
	c := t.VertexHalfedgeCirculator(v)
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n++
	}

	return n
}

// FaceDegree returns the number of halfedges bounding f.
func (t *Topology) FaceDegree(f handle.Face) int {
	n := 0
	c := t.FaceHalfedgeCirculator(f)
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n++
	}

	return n
}

// --- mutation (package-internal, driven by Mesh) ---------------------------

func (t *Topology) setHalfedge(v handle.Vertex, h handle.Halfedge) {
	*t.vconn.Ptr(v) = VertexConnectivity{Outgoing: h, Connected: true}
}

func (t *Topology) setFace(h handle.Halfedge, f handle.Face) {
	c := t.hconn.Ptr(h)
	c.Face, c.HasFace = f, true
}

func (t *Topology) setVertex(h handle.Halfedge, v handle.Vertex) {
	t.hconn.Ptr(h).To = v
}

// setNext links h -> nh, keeping Prev(nh) == h.
func (t *Topology) setNext(h, nh handle.Halfedge) {
	t.hconn.Ptr(h).Next = nh
	t.hconn.Ptr(nh).Prev = h
}

// adjustOutgoing rotates v's outgoing halfedge onto a boundary halfedge if
// one exists. A vertex that turned fully interior keeps its current halfedge.
func (t *Topology) adjustOutgoing(v handle.Vertex) {
	h, ok := t.Halfedge(v)
	if !ok {
		return
	}
	first := h
	for {
		if t.IsBoundaryHalfedge(h) {
			t.setHalfedge(v, h)
			return
		}
		h = t.CWRotated(h)
		if h == first {
			return
		}
	}
}
