// SPDX-License-Identifier: MIT
//
// File: add_face.go
// Role: Face insertion, the only topology-editing primitive.
//
// Implementation:
//   - Stage 1: Validate every vertex and every existing edge; queue patch relinks.
//   - Stage 2: Create the missing edges.
//   - Stage 3: Create the face.
//   - Stage 4: Decide the next/prev relinks around each corner into a cache.
//   - Stage 5: Apply the cache.
//   - Stage 6: Re-seat outgoing halfedges of vertices that may have turned interior.
//
// Stage 1 is the only stage that can fail, and it performs no mutation.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
)

const minFaceDegree = 3

// link is one queued setNext(from, to).
type link struct {
	from, to handle.Halfedge
}

// AddFace inserts the polygon bounded by vs (closing edge from the last
// vertex to the first) and returns the new face.
//
// Errors (the mesh is unchanged on every error):
//   - ErrTooFewVertices if len(vs) < 3.
//   - ErrDegenerateFace if a vertex repeats.
//   - ErrNonManifoldVertex if a vertex is not a boundary vertex.
//   - ErrNonBoundaryEdge if an edge of the polygon already has two faces.
//   - ErrPatchRelink if two existing edges meet at a vertex whose fan cannot
//     be moved out of the way.
//
// Panics if a vertex handle is out of range.
//
// Complexity: O(n + Σ valence(v)) for a polygon with n vertices.
func (m *Mesh) AddFace(vs ...handle.Vertex) (handle.Face, error) {
	t := m.topo
	n := len(vs)
	if n < minFaceDegree {
		return 0, fmt.Errorf("AddFace: %d vertices: %w", n, ErrTooFewVertices)
	}

	seen := make(map[handle.Vertex]struct{}, n)
	for _, v := range vs {
		if v.Idx() >= t.NVertices() {
			panic(fmt.Sprintf("mesh: AddFace: %s out of range (%d vertices)", v, t.NVertices()))
		}
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("AddFace: %s: %w", v, ErrDegenerateFace)
		}
		seen[v] = struct{}{}
	}

	// Stage 1: validation.
	hs := make([]handle.Halfedge, n)
	isNew := make([]bool, n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if !t.IsBoundaryVertex(vs[i]) {
			return 0, fmt.Errorf("AddFace: %s: %w", vs[i], ErrNonManifoldVertex)
		}
		h, ok := t.FindHalfedge(vs[i], vs[ii])
		if !ok {
			isNew[i] = true
			continue
		}
		if !t.IsBoundaryHalfedge(h) {
			return 0, fmt.Errorf("AddFace: %s -> %s: %w", vs[i], vs[ii], ErrNonBoundaryEdge)
		}
		hs[i] = h
	}

	cache := make([]link, 0, 3*n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if isNew[i] || isNew[ii] {
			continue
		}
		innerPrev, innerNext := hs[i], hs[ii]
		if t.Next(innerPrev) == innerNext {
			continue
		}
		// Both edges exist but are not consecutive on the boundary: move the
		// patch between them into another boundary gap of vs[ii].
		outerPrev := handle.Opposite(innerNext)
		boundaryPrev := outerPrev
		for {
			boundaryPrev = handle.Opposite(t.Next(boundaryPrev))
			if t.IsBoundaryHalfedge(boundaryPrev) {
				break
			}
		}
		if boundaryPrev == innerPrev {
			return 0, fmt.Errorf("AddFace: at %s: %w", vs[ii], ErrPatchRelink)
		}
		boundaryNext := t.Next(boundaryPrev)
		patchStart := t.Next(innerPrev)
		patchEnd := t.Prev(innerNext)
		cache = append(cache,
			link{boundaryPrev, patchStart},
			link{patchEnd, boundaryNext},
			link{innerPrev, innerNext},
		)
	}

	// Stage 2: missing edges.
	for i := 0; i < n; i++ {
		if isNew[i] {
			hs[i] = m.newEdge(vs[i], vs[(i+1)%n])
		}
	}

	// Stage 3: the face.
	f := m.newFace(hs[n-1])

	// Stage 4: decide relinks corner by corner. Reads see the pre-insertion
	// next/prev state because nothing in the cache is applied yet.
	needsAdjust := make([]bool, n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		v := vs[ii]
		innerPrev, innerNext := hs[i], hs[ii]

		if isNew[i] || isNew[ii] {
			outerPrev := handle.Opposite(innerNext)
			outerNext := handle.Opposite(innerPrev)

			switch {
			case !isNew[ii]: // incoming edge new, outgoing edge existed
				boundaryPrev := t.Prev(innerNext)
				cache = append(cache, link{boundaryPrev, outerNext})
				t.setHalfedge(v, outerNext)
			case !isNew[i]: // outgoing edge new, incoming edge existed
				boundaryNext := t.Next(innerPrev)
				cache = append(cache, link{outerPrev, boundaryNext})
				t.setHalfedge(v, boundaryNext)
			default: // both new
				if out, ok := t.Halfedge(v); ok {
					// Splice the new wedge in right before v's recorded outgoing halfedge.
					boundaryPrev := t.Prev(out)
					cache = append(cache, link{boundaryPrev, outerNext}, link{outerPrev, out})
				} else {
					t.setHalfedge(v, outerNext)
					cache = append(cache, link{outerPrev, outerNext})
				}
			}
			cache = append(cache, link{innerPrev, innerNext})
		} else {
			out, _ := t.Halfedge(v)
			needsAdjust[ii] = out == innerNext
		}

		t.setFace(innerPrev, f)
	}

	// Stage 5: apply.
	for _, l := range cache {
		t.setNext(l.from, l.to)
	}

	// Stage 6: keep "boundary vertex => boundary outgoing halfedge".
	for i, adjust := range needsAdjust {
		if adjust {
			t.adjustOutgoing(vs[i])
		}
	}

	return f, nil
}
