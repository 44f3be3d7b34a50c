// SPDX-License-Identifier: MIT

// Package handle defines the typed element indices used across lvmesh.
//
// A Handle is a plain integer index into one of the dense, append-only element
// arrays of a mesh. The element kind (vertex, face, edge, halfedge) is carried
// as a phantom type parameter, so a Vertex can never be passed where a Face is
// expected, while the runtime representation stays a bare uint32:
//
//	v := handle.New[handle.VertexKind](3) // "v3"
//	var f handle.Face = v                 // compile error
//
// Edges are never stored on their own. Edge e owns the halfedge pair
// (2e, 2e+1), which gives the following identities:
//
//	HalfedgeOf(e, 0).Idx() == 2*e.Idx()
//	HalfedgeOf(e, 1).Idx() == 2*e.Idx()+1
//	EdgeOf(h).Idx()        == h.Idx()/2
//	Opposite(h)            == h with the low bit flipped
//
// Handles carry no validity bit. Every handle produced by the mesh indexes an
// existing element; fabricating out-of-range handles is a programming error.
package handle
