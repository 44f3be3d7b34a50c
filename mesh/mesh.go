// SPDX-License-Identifier: MIT
//
// File: mesh.go
// Role: Mesh construction, element creation and capacity management.
//
// Policy:
//   - Every element creation pushes the topology column and the matching
//     property container together, so all columns of a kind keep one length.
//   - Edges are always created as a contiguous halfedge pair.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
)

// Option configures a Mesh at construction time.
type Option func(m *Mesh)

// WithVertexCapacity reserves room for n vertices. Panics if n < 0.
func WithVertexCapacity(n int) Option {
	mustNonNegative("WithVertexCapacity", n)

	return func(m *Mesh) { m.VertexReserve(n) }
}

// WithEdgeCapacity reserves room for n edges (2n halfedges). Panics if n < 0.
func WithEdgeCapacity(n int) Option {
	mustNonNegative("WithEdgeCapacity", n)

	return func(m *Mesh) { m.EdgeReserve(n) }
}

// WithFaceCapacity reserves room for n faces. Panics if n < 0.
func WithFaceCapacity(n int) Option {
	mustNonNegative("WithFaceCapacity", n)

	return func(m *Mesh) { m.FaceReserve(n) }
}

func mustNonNegative(op string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("mesh: %s(%d): count must be non-negative", op, n))
	}
}

// Mesh is a mutable halfedge polygon mesh with per-element properties.
//
// A Mesh is not safe for concurrent use while it is being mutated. Wrap it
// in a Guarded to share it between goroutines.
type Mesh struct {
	topo  *Topology
	props *Properties
}

// New returns an empty Mesh with the given options applied in order.
func New(opts ...Option) *Mesh {
	m := &Mesh{
		topo:  newTopology(),
		props: newProperties(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Topology returns the adjacency view of m. It stays valid for the lifetime of m.
func (m *Mesh) Topology() *Topology { return m.topo }

// Properties returns the property registry of m.
func (m *Mesh) Properties() *Properties { return m.props }

// NVertices returns the number of vertices.
func (m *Mesh) NVertices() int { return m.topo.NVertices() }

// NEdges returns the number of edges.
func (m *Mesh) NEdges() int { return m.topo.NEdges() }

// NFaces returns the number of faces.
func (m *Mesh) NFaces() int { return m.topo.NFaces() }

// NHalfedges returns the number of halfedges.
func (m *Mesh) NHalfedges() int { return m.topo.NHalfedges() }

// VertexReserve pre-allocates room for n vertices in the topology and in
// every vertex property.
func (m *Mesh) VertexReserve(n int) {
	m.topo.vconn.Reserve(n)
	m.props.vprop.Reserve(n)
}

// VertexCapacity returns how many vertices fit without reallocation.
func (m *Mesh) VertexCapacity() int { return m.topo.vconn.Cap() }

// EdgeReserve pre-allocates room for n edges, i.e. 2n halfedges, in the
// topology and in every edge and halfedge property.
func (m *Mesh) EdgeReserve(n int) {
	m.topo.hconn.Reserve(2 * n)
	m.props.eprop.Reserve(n)
	m.props.hprop.Reserve(2 * n)
}

// EdgeCapacity returns how many edges fit without reallocation.
func (m *Mesh) EdgeCapacity() int { return m.topo.hconn.Cap() / 2 }

// FaceReserve pre-allocates room for n faces in the topology and in every
// face property.
func (m *Mesh) FaceReserve(n int) {
	m.topo.fconn.Reserve(n)
	m.props.fprop.Reserve(n)
}

// FaceCapacity returns how many faces fit without reallocation.
func (m *Mesh) FaceCapacity() int { return m.topo.fconn.Cap() }

// AddVertex appends an isolated vertex and returns its handle.
// Complexity: O(vertex properties) amortized.
func (m *Mesh) AddVertex() handle.Vertex {
	m.props.vprop.Push()
	m.topo.vconn.Push()

	return handle.New[handle.VertexKind](m.topo.vconn.Len() - 1)
}

// AddVertices appends n isolated vertices, reserving room for all of them first.
// Panics if n is negative.
func (m *Mesh) AddVertices(n int) []handle.Vertex {
	mustNonNegative("AddVertices", n)
	if need := m.NVertices() + n; m.VertexCapacity() < need {
		m.VertexReserve(need)
	}
	vs := make([]handle.Vertex, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, m.AddVertex())
	}

	return vs
}

// newEdge appends an edge from start to end and returns its first halfedge
// (start -> end). Next, Prev and Face of both halfedges are left unset.
// Panics if start == end.
func (m *Mesh) newEdge(start, end handle.Vertex) handle.Halfedge {
	if start == end {
		panic(fmt.Sprintf("mesh: degenerate edge %s -> %s", start, end))
	}

	m.props.eprop.Push()
	m.props.hprop.Push()
	m.props.hprop.Push()
	m.topo.hconn.Push()
	m.topo.hconn.Push()

	h0 := handle.New[handle.HalfedgeKind](m.topo.hconn.Len() - 2)
	h1 := handle.Opposite(h0)
	m.topo.setVertex(h0, end)
	m.topo.setVertex(h1, start)

	return h0
}

// newFace appends a face whose representative halfedge is h.
func (m *Mesh) newFace(h handle.Halfedge) handle.Face {
	m.props.fprop.Push()
	m.topo.fconn.Push()
	f := handle.New[handle.FaceKind](m.topo.fconn.Len() - 1)
	*m.topo.fconn.Ptr(f) = FaceConnectivity{Halfedge: h}

	return f
}
