// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

// shell is an indexed polygon list: faces hold indices into points, listed
// counter-clockwise as seen from the front side.
type shell struct {
	points []r3.Vec
	faces  [][]int
}

// addShell appends s to m: one positioned vertex per point, then one face
// per polygon (or a triangle fan per polygon when cfg.triangulate is set).
func addShell(m *mesh.Mesh, cfg builderConfig, method string, s shell) error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: jitter %g: %w", method, cfg.jitter, ErrNeedRandSource)
	}
	pos, err := mesh.EnsurePositions(m)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	m.FaceReserve(m.NFaces() + len(s.faces))
	vs := m.AddVertices(len(s.points))
	for i, p := range s.points {
		pos.Set(vs[i], cfg.place(p))
	}

	corners := make([]handle.Vertex, 0, 5)
	for fi, face := range s.faces {
		corners = corners[:0]
		for _, i := range face {
			corners = append(corners, vs[i])
		}
		if err := addPolygon(m, corners, cfg.triangulate); err != nil {
			return fmt.Errorf("%s: face %d: %w: %w", method, fi, ErrConstructFailed, err)
		}
	}

	return nil
}

func addPolygon(m *mesh.Mesh, corners []handle.Vertex, triangulate bool) error {
	if !triangulate || len(corners) == 3 {
		_, err := m.AddFace(corners...)

		return err
	}
	for i := 1; i+1 < len(corners); i++ {
		if _, err := m.AddFace(corners[0], corners[i], corners[i+1]); err != nil {
			return err
		}
	}

	return nil
}
