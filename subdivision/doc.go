// Package subdivision refines triangle meshes.
//
// Loop applies Charles Loop's subdivision scheme: every triangle is split
// into four, original vertices are smoothed with the valence-dependent
// weight β, and each edge gains a vertex at the 3/8-3/8-1/8-1/8 average of
// its endpoints and opposite corners. Boundary vertices and edges use the
// curve masks (1/8, 3/4, 1/8) and (1/2, 1/2), so open meshes keep their
// rim on the subdivided boundary curve.
//
// The input must carry a mesh.PositionName column of r3.Vec and contain
// only triangles. The input mesh is never modified; each level produces a
// fresh mesh with a fresh position column.
//
//	m, _ := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Icosahedron))
//	fine, err := subdivision.Loop(m, subdivision.WithIterations(3))
package subdivision
