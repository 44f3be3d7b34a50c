// Package lvmesh is an in-memory halfedge mesh library: build, query,
// traverse and annotate polygon surface meshes.
//
// What is inside:
//
//	handle/      - typed element handles (Vertex, Edge, Halfedge, Face)
//	property/    - named, typed per-element columns
//	mesh/        - halfedge topology, AddFace, iterators and circulators
//	meshio/      - Wavefront OBJ load/save
//	builder/     - positioned fixtures: Platonic solids, grids, fans
//	subdivision/ - Loop subdivision
//
// Why lvmesh?
//
//   - Handles, not pointers: adjacency is an arena of indices, so meshes
//     copy, grow and serialize without pointer chasing.
//   - Typed properties: attach any Go type to any element kind; misuse is
//     caught at the first access.
//   - iter.Seq everywhere: range over vertices, faces or the ring around a
//     vertex with plain for-range loops.
//
// Quick example:
//
//	m := mesh.New()
//	vs := m.AddVertices(4)
//	m.AddFace(vs[0], vs[1], vs[2])
//	m.AddFace(vs[2], vs[1], vs[3])
//
//	    v2───v3
//	    │ ╲  │
//	    │  ╲ │      two triangles sharing edge v1–v2
//	    v0───v1
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
