// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go - canonical data for the Platonic solids.
//
// Design:
//   • Single source of truth for the five solids: unit circumradius, centred
//     at the origin, faces counter-clockwise seen from outside.
//   • Tetrahedron, Cube and Octahedron are literal tables; the Icosahedron is
//     generated as two pentagon rings plus poles; the Dodecahedron is its dual.
//   • Datasets are built once at init() and never mutated afterwards.

package builder

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4 triangles
	Cube                             // V=8,  E=12, F=6 quads
	Octahedron                       // V=6,  E=12, F=8 triangles
	Dodecahedron                     // V=20, E=30, F=12 pentagons
	Icosahedron                      // V=12, E=30, F=20 triangles
)

// platonicShells maps each PlatonicName to its canonical shell.
var platonicShells map[PlatonicName]shell

func init() {
	ico := icosahedronShell()
	platonicShells = map[PlatonicName]shell{
		Tetrahedron:  tetrahedronShell(),
		Cube:         cubeShell(),
		Octahedron:   octahedronShell(),
		Icosahedron:  ico,
		Dodecahedron: dualShell(ico),
	}
}

// tetrahedronShell uses alternate corners of the cube [-1,1]^3.
func tetrahedronShell() shell {
	k := 1 / math.Sqrt(3)

	return shell{
		points: []r3.Vec{{X: k, Y: k, Z: k}, {X: k, Y: -k, Z: -k}, {X: -k, Y: k, Z: -k}, {X: -k, Y: -k, Z: k}},
		faces:  [][]int{{0, 1, 2}, {1, 0, 3}, {2, 1, 3}, {0, 2, 3}},
	}
}

// cubeShell numbers the bottom square 0..3 and the top square 4..7, both
// counter-clockwise seen from +z.
//
//	  7────6
//	 /|   /|
//	4────5 |
//	| 3──|─2
//	|/   |/
//	0────1
func cubeShell() shell {
	k := 1 / math.Sqrt(3)

	return shell{
		points: []r3.Vec{
			{X: -k, Y: -k, Z: -k}, {X: k, Y: -k, Z: -k}, {X: k, Y: k, Z: -k}, {X: -k, Y: k, Z: -k},
			{X: -k, Y: -k, Z: k}, {X: k, Y: -k, Z: k}, {X: k, Y: k, Z: k}, {X: -k, Y: k, Z: k},
		},
		faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{3, 7, 6, 2}, // back
			{0, 4, 7, 3}, // left
			{1, 2, 6, 5}, // right
		},
	}
}

// octahedronShell places vertices on the axes: +x, -x, +y, -y, +z, -z.
// One triangle per octant.
func octahedronShell() shell {
	return shell{
		points: []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}},
		faces: [][]int{
			{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {0, 5, 2},
			{1, 3, 4}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
		},
	}
}

// icosahedronShell builds the top pole 0, the top ring 1..5, the bottom ring
// 6..10 rotated by half a step, and the bottom pole 11. Top ring vertex Ti
// touches bottom ring vertices Bi and B(i+1 mod 5).
func icosahedronShell() shell {
	const ring = 5
	var (
		z = 1 / math.Sqrt(5)
		r = 2 / math.Sqrt(5)
	)

	pts := make([]r3.Vec, 0, 2*ring+2)
	pts = append(pts, r3.Vec{Z: 1})
	for k := 0; k < ring; k++ {
		a := 2 * math.Pi * float64(k) / ring
		pts = append(pts, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z})
	}
	for k := 0; k < ring; k++ {
		a := 2 * math.Pi * (float64(k) + 0.5) / ring
		pts = append(pts, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: -z})
	}
	pts = append(pts, r3.Vec{Z: -1})

	top := func(k int) int { return 1 + k%ring }
	bot := func(k int) int { return 1 + ring + k%ring }
	south := 2*ring + 1

	faces := make([][]int, 0, 4*ring)
	for k := 0; k < ring; k++ {
		faces = append(faces,
			[]int{0, top(k), top(k + 1)},
			[]int{top(k), bot(k), top(k + 1)},
			[]int{bot(k), bot(k + 1), top(k + 1)},
			[]int{south, bot(k + 1), bot(k)},
		)
	}

	return shell{points: pts, faces: faces}
}

// dualShell returns the polar dual of a closed shell: one vertex per face
// (the centroid pushed out to the unit sphere) and one face per vertex.
// Faces around a vertex come clockwise from the circulator, so each dual
// polygon is reversed to keep it counter-clockwise from outside.
func dualShell(s shell) shell {
	m := mesh.New()
	vs := m.AddVertices(len(s.points))
	corners := make([]handle.Vertex, 0, 5)
	for fi, face := range s.faces {
		corners = corners[:0]
		for _, i := range face {
			corners = append(corners, vs[i])
		}
		if _, err := m.AddFace(corners...); err != nil {
			panic(fmt.Sprintf("builder: dual of malformed shell, face %d: %v", fi, err))
		}
	}

	d := shell{points: make([]r3.Vec, 0, len(s.faces)), faces: make([][]int, 0, len(s.points))}
	for _, face := range s.faces {
		var c r3.Vec
		for _, i := range face {
			c = r3.Add(c, s.points[i])
		}
		d.points = append(d.points, r3.Unit(c))
	}

	topo := m.Topology()
	for v := range m.Vertices() {
		around := slices.Collect(topo.FacesAroundVertex(v))
		slices.Reverse(around)
		face := make([]int, len(around))
		for i, f := range around {
			face[i] = f.Idx()
		}
		d.faces = append(d.faces, face)
	}

	return d
}
