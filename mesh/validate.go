// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
)

// Validate checks every adjacency invariant of t and reports the first
// violation wrapped in ErrInvariant. It is meant for tests and debugging.
//
// Checked:
//   - Next/Prev are mutual inverses and chain ToVertex into FromVertex.
//   - Both halfedges of a loop step share the same face (or both are boundary).
//   - Every face loop starts at a halfedge of that face, closes, and has >= 3 halfedges.
//   - Every connected vertex's outgoing halfedge leaves it, and is a boundary
//     halfedge whenever the vertex has any boundary halfedge.
//
// Complexity: O(V·E) in the worst case; use it on test-sized meshes.
func (t *Topology) Validate() error {
	nh := t.NHalfedges()
	for h := range t.Halfedges() {
		next, prev := t.Next(h), t.Prev(h)
		if next.Idx() >= nh || prev.Idx() >= nh {
			return fmt.Errorf("%w: %s links outside [0,%d)", ErrInvariant, h, nh)
		}
		if t.Prev(next) != h || t.Next(prev) != h {
			return fmt.Errorf("%w: %s next/prev not inverse", ErrInvariant, h)
		}
		if t.ToVertex(h) != t.FromVertex(next) {
			return fmt.Errorf("%w: %s does not chain into %s", ErrInvariant, h, next)
		}
		f, inner := t.Face(h)
		nf, ninner := t.Face(next)
		if inner != ninner || (inner && f != nf) {
			return fmt.Errorf("%w: %s and %s lie on different loops", ErrInvariant, h, next)
		}
	}

	for f := range t.Faces() {
		start := t.FaceHalfedge(f)
		h, steps := start, 0
		for {
			if g, inner := t.Face(h); !inner || g != f {
				return fmt.Errorf("%w: %s loop reaches %s", ErrInvariant, f, h)
			}
			steps++
			h = t.Next(h)
			if h == start {
				break
			}
			if steps > nh {
				return fmt.Errorf("%w: %s loop does not close", ErrInvariant, f)
			}
		}
		if steps < minFaceDegree {
			return fmt.Errorf("%w: %s has %d halfedges", ErrInvariant, f, steps)
		}
	}

	for v := range t.Vertices() {
		out, ok := t.Halfedge(v)
		if !ok {
			continue
		}
		if t.FromVertex(out) != v {
			return fmt.Errorf("%w: outgoing %s does not leave %s", ErrInvariant, out, v)
		}
		if t.IsBoundaryHalfedge(out) {
			continue
		}
		if hasBoundaryOutgoing(t, v) {
			return fmt.Errorf("%w: boundary %s stores interior %s", ErrInvariant, v, out)
		}
	}

	return nil
}

// hasBoundaryOutgoing scans the halfedge array rather than the ring around v,
// so it also sees boundary halfedges a broken ring would skip.
func hasBoundaryOutgoing(t *Topology, v handle.Vertex) bool {
	for h := range t.Halfedges() {
		if t.FromVertex(h) == v && t.IsBoundaryHalfedge(h) {
			return true
		}
	}

	return false
}
