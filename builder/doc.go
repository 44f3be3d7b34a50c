// Package builder provides deterministic, positioned mesh fixtures built on
// the mesh package, composed in the functional-options style.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMesh(mopts, bopts, cons...): creates the mesh, registers the
//     mesh.PositionName column and applies constructors in order.
//   - Constructors (each appends one connected component):
//     – PlatonicSolid(name): Tetrahedron, Cube, Octahedron, Dodecahedron,
//     Icosahedron; closed, outward-oriented, unit circumradius.
//     – Grid(rows, cols):  rows×cols unit quads in the z=0 plane.
//     – Fan(n):            n triangles around a centre vertex (a disk).
//   - Configuration primitives (BuilderOption):
//     – WithScale, WithCenter:   similarity transform of generated positions.
//     – WithTriangulate:         split every polygon into a triangle fan.
//     – WithSeed, WithRand:      RNG for WithJitter.
//     – WithJitter:              uniform per-coordinate noise in [-a,a].
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical meshes (vertex order, face
//     order and positions).
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors wrapped with their method name.
//   - Every face is oriented consistently, so constructors never fail on
//     topology unless the mesh was handed in already inconsistent.
//
// Example:
//
//	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithScale(2)},
//		builder.PlatonicSolid(builder.Icosahedron))
package builder
