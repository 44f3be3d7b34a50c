// SPDX-License-Identifier: MIT

package mesh

import "github.com/katalvlaran/lvmesh/handle"

// VertexConnectivity stores the adjacency of one vertex.
// A vertex without an outgoing halfedge is isolated.
type VertexConnectivity struct {
	// Outgoing is a halfedge leaving the vertex; meaningful only if Connected.
	// On a boundary vertex it is always a boundary halfedge.
	Outgoing handle.Halfedge

	// Connected is false for isolated vertices.
	Connected bool
}

// HalfedgeConnectivity stores the adjacency of one halfedge.
type HalfedgeConnectivity struct {
	// Face is the incident face; meaningful only if HasFace.
	Face handle.Face

	// HasFace is false for boundary halfedges.
	HasFace bool

	// To is the vertex the halfedge points to.
	To handle.Vertex

	// Next and Prev link the halfedge into its face or boundary loop.
	Next handle.Halfedge
	Prev handle.Halfedge
}

// FaceConnectivity stores one representative halfedge of a face.
type FaceConnectivity struct {
	Halfedge handle.Halfedge
}
