// SPDX-License-Identifier: MIT
//
// File: handle.go
// Role: Phantom-kind element indices and the edge/halfedge index relation.

package handle

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags a Handle with the element array it indexes.
// The interface is sealed; only the four kinds below implement it.
type Kind interface {
	prefix() string
}

// VertexKind tags vertex handles.
type VertexKind struct{}

// FaceKind tags face handles.
type FaceKind struct{}

// EdgeKind tags edge handles.
type EdgeKind struct{}

// HalfedgeKind tags halfedge handles.
type HalfedgeKind struct{}

func (VertexKind) prefix() string   { return "v" }
func (FaceKind) prefix() string     { return "f" }
func (EdgeKind) prefix() string     { return "e" }
func (HalfedgeKind) prefix() string { return "h" }

// Handle is a zero-based index into the element array selected by K.
// Handles are comparable with == and totally ordered by index with <.
type Handle[K Kind] uint32

// Element handle aliases.
type (
	Vertex   = Handle[VertexKind]
	Face     = Handle[FaceKind]
	Edge     = Handle[EdgeKind]
	Halfedge = Handle[HalfedgeKind]
)

// New returns the handle of kind K for index i.
// Panics if i is negative or does not fit in 32 bits.
func New[K Kind](i int) Handle[K] {
	if i < 0 || uint64(i) > math.MaxUint32 {
		panic(fmt.Sprintf("handle: index %d out of range", i))
	}

	return Handle[K](i)
}

// Idx returns the array index of h.
func (h Handle[K]) Idx() int { return int(h) }

// String renders h as kind prefix plus index, e.g. "v3" or "h10".
func (h Handle[K]) String() string {
	var k K

	return k.prefix() + strconv.FormatUint(uint64(h), 10)
}

// EdgeOf returns the edge owning halfedge h.
func EdgeOf(h Halfedge) Edge { return Edge(h >> 1) }

// HalfedgeOf returns halfedge i (0 or 1) of edge e.
// Panics for any other i.
func HalfedgeOf(e Edge, i int) Halfedge {
	if i != 0 && i != 1 {
		panic(fmt.Sprintf("handle: edge side %d (must be 0 or 1)", i))
	}

	return Halfedge(uint32(e)<<1 | uint32(i))
}

// Opposite returns the other halfedge of h's edge.
func Opposite(h Halfedge) Halfedge { return h ^ 1 }
