// Package mesh provides a mutable, in-memory halfedge polygon mesh with
// typed per-element properties.
//
// Elements live in dense, append-only arrays addressed by handle.Vertex,
// handle.Edge, handle.Halfedge and handle.Face. Adjacency is stored as
// plain handles (an arena of indices), never as pointers:
//
//	VertexConnectivity   { Outgoing halfedge, Connected }
//	HalfedgeConnectivity { Face, HasFace, To vertex, Next, Prev }
//	FaceConnectivity     { Halfedge }
//
// A halfedge without a face lies on a boundary loop. A vertex is a boundary
// vertex iff it is isolated or its outgoing halfedge is a boundary halfedge;
// the mesh keeps that outgoing halfedge on the boundary whenever one exists.
//
// Quick example (one triangle):
//
//	m := mesh.New()
//	v0, v1, v2 := m.AddVertex(), m.AddVertex(), m.AddVertex()
//	f, err := m.AddFace(v0, v1, v2)
//
//	      v2
//	     /  \
//	   v0 ── v1      NFaces()==1, NEdges()==3, NHalfedges()==6
//
// Core Methods:
//
//	// Construction
//	New(opts ...Option) *Mesh
//	AddVertex() handle.Vertex                       // O(1) amortized
//	AddVertices(n int) []handle.Vertex              // reserves first
//	AddFace(vs ...handle.Vertex) (handle.Face, error) // O(n + Σ valence)
//
//	// Capacity
//	VertexReserve/EdgeReserve/FaceReserve(n)         // edges reserve 2n halfedges
//	VertexCapacity/EdgeCapacity/FaceCapacity() int
//
//	// Properties
//	AddVertexProperty[T](m.Properties(), name, def)  // also Edge/Face/Halfedge
//	GetVertexProperty[T](m.Properties(), name)
//	prop.At(h) / prop.Ptr(h) / prop.Set(h, v)
//
//	// Adjacency (Topology)
//	Face, Halfedge, ToVertex, FromVertex, Next, Prev, Opposite, CWRotated,
//	CCWRotated, FindHalfedge, IsBoundaryVertex, IsBoundaryHalfedge, Validate
//
//	// Traversal (iter.Seq, fresh state per range loop)
//	Vertices, Edges, Faces, Halfedges
//	VerticesAroundVertex, HalfedgesAroundVertex, FacesAroundVertex
//	VerticesAroundFace, HalfedgesAroundFace
//
// Errors:
//
//	ErrTooFewVertices    - AddFace with fewer than 3 vertices.
//	ErrDegenerateFace    - AddFace with a repeated vertex.
//	ErrNonManifoldVertex - AddFace through an interior vertex.
//	ErrNonBoundaryEdge   - AddFace over an edge that already has two faces.
//	ErrPatchRelink       - AddFace cannot reorder the fan at a vertex.
//	ErrInvariant         - Validate found inconsistent adjacency.
//
// A failing AddFace never mutates the mesh. Out-of-range handles and misused
// properties panic; they indicate a bug in the caller, not bad input.
//
// Concurrency: a Mesh has no internal locking. Read-only traversals may run
// in parallel with each other, never with a mutation. Guarded provides the
// single exclusive-writer lock for shared meshes.
//
// There is no element removal; build a new mesh instead.
package mesh
