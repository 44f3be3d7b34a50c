// SPDX-License-Identifier: MIT
//
// File: circulators.go
// Role: Ordered traversal of the elements around a vertex or a face.
//
// Vertex circulators start at the vertex's outgoing halfedge and step with
// CWRotated; face circulators start at the face's representative halfedge
// and step with Next. Both stop when the step returns to the start. An
// isolated vertex yields nothing.
//
// The circulator types keep explicit state (Next() (handle, bool)); the
// ...Around... methods wrap a fresh circulator in an iter.Seq. None of them
// mutate the mesh, and none of them may run concurrently with a mutation.

package mesh

import (
	"iter"

	"github.com/katalvlaran/lvmesh/handle"
)

// ring walks a closed loop of halfedges from start until it returns there.
type ring struct {
	step   func(handle.Halfedge) handle.Halfedge
	start  handle.Halfedge
	cur    handle.Halfedge
	empty  bool
	active bool
}

func (r *ring) next() (handle.Halfedge, bool) {
	if r.empty || (r.active && r.cur == r.start) {
		return 0, false
	}
	r.active = true
	h := r.cur
	r.cur = r.step(h)

	return h, true
}

func (t *Topology) vertexRing(v handle.Vertex) ring {
	h, ok := t.Halfedge(v)

	return ring{step: t.CWRotated, start: h, cur: h, empty: !ok}
}

func (t *Topology) faceRing(f handle.Face) ring {
	h := t.FaceHalfedge(f)

	return ring{step: t.Next, start: h, cur: h}
}

// VertexHalfedgeCirculator yields the outgoing halfedges of a vertex.
type VertexHalfedgeCirculator struct{ r ring }

// Next returns the next outgoing halfedge, or false when the ring is exhausted.
func (c *VertexHalfedgeCirculator) Next() (handle.Halfedge, bool) { return c.r.next() }

// VertexVertexCirculator yields the neighbours of a vertex.
type VertexVertexCirculator struct {
	t *Topology
	r ring
}

// Next returns the next neighbour, or false when the ring is exhausted.
func (c *VertexVertexCirculator) Next() (handle.Vertex, bool) {
	h, ok := c.r.next()
	if !ok {
		return 0, false
	}

	return c.t.ToVertex(h), true
}

// VertexFaceCirculator yields the faces incident to a vertex, skipping
// boundary gaps. Each incident face is yielded once.
type VertexFaceCirculator struct {
	t *Topology
	r ring
}

// Next returns the next incident face, or false when the ring is exhausted.
func (c *VertexFaceCirculator) Next() (handle.Face, bool) {
	for {
		h, ok := c.r.next()
		if !ok {
			return 0, false
		}
		if f, inner := c.t.Face(h); inner {
			return f, true
		}
	}
}

// FaceHalfedgeCirculator yields the halfedges bounding a face in loop order.
type FaceHalfedgeCirculator struct{ r ring }

// Next returns the next halfedge of the face, or false after a full loop.
func (c *FaceHalfedgeCirculator) Next() (handle.Halfedge, bool) { return c.r.next() }

// FaceVertexCirculator yields the corners of a face in loop order.
type FaceVertexCirculator struct {
	t *Topology
	r ring
}

// Next returns the next corner of the face, or false after a full loop.
func (c *FaceVertexCirculator) Next() (handle.Vertex, bool) {
	h, ok := c.r.next()
	if !ok {
		return 0, false
	}

	return c.t.ToVertex(h), true
}

// VertexHalfedgeCirculator returns a fresh circulator over the outgoing halfedges of v.
func (t *Topology) VertexHalfedgeCirculator(v handle.Vertex) *VertexHalfedgeCirculator {
	return &VertexHalfedgeCirculator{r: t.vertexRing(v)}
}

// VertexVertexCirculator returns a fresh circulator over the neighbours of v.
func (t *Topology) VertexVertexCirculator(v handle.Vertex) *VertexVertexCirculator {
	return &VertexVertexCirculator{t: t, r: t.vertexRing(v)}
}

// VertexFaceCirculator returns a fresh circulator over the faces around v.
func (t *Topology) VertexFaceCirculator(v handle.Vertex) *VertexFaceCirculator {
	return &VertexFaceCirculator{t: t, r: t.vertexRing(v)}
}

// FaceHalfedgeCirculator returns a fresh circulator over the halfedges of f.
func (t *Topology) FaceHalfedgeCirculator(f handle.Face) *FaceHalfedgeCirculator {
	return &FaceHalfedgeCirculator{r: t.faceRing(f)}
}

// FaceVertexCirculator returns a fresh circulator over the corners of f.
func (t *Topology) FaceVertexCirculator(f handle.Face) *FaceVertexCirculator {
	return &FaceVertexCirculator{t: t, r: t.faceRing(f)}
}

// HalfedgesAroundVertex yields the outgoing halfedges of v, clockwise.
func (t *Topology) HalfedgesAroundVertex(v handle.Vertex) iter.Seq[handle.Halfedge] {
	return drain(func() func() (handle.Halfedge, bool) { return t.VertexHalfedgeCirculator(v).Next })
}

// VerticesAroundVertex yields the neighbours of v, clockwise.
func (t *Topology) VerticesAroundVertex(v handle.Vertex) iter.Seq[handle.Vertex] {
	return drain(func() func() (handle.Vertex, bool) { return t.VertexVertexCirculator(v).Next })
}

// FacesAroundVertex yields the faces incident to v, clockwise.
func (t *Topology) FacesAroundVertex(v handle.Vertex) iter.Seq[handle.Face] {
	return drain(func() func() (handle.Face, bool) { return t.VertexFaceCirculator(v).Next })
}

// HalfedgesAroundFace yields the halfedges of f in loop order.
func (t *Topology) HalfedgesAroundFace(f handle.Face) iter.Seq[handle.Halfedge] {
	return drain(func() func() (handle.Halfedge, bool) { return t.FaceHalfedgeCirculator(f).Next })
}

// VerticesAroundFace yields the corners of f in loop order, starting at the
// head of the face's representative halfedge.
func (t *Topology) VerticesAroundFace(f handle.Face) iter.Seq[handle.Vertex] {
	return drain(func() func() (handle.Vertex, bool) { return t.FaceVertexCirculator(f).Next })
}

// drain adapts a circulator factory to iter.Seq. The factory runs once per
// range loop so every loop starts from a fresh state.
func drain[H any](fresh func() func() (H, bool)) iter.Seq[H] {
	return func(yield func(H) bool) {
		next := fresh()
		for h, ok := next(); ok; h, ok = next() {
			if !yield(h) {
				return
			}
		}
	}
}
