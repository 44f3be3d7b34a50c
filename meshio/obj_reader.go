// SPDX-License-Identifier: MIT
//
// File: obj_reader.go
// Role: Wavefront OBJ parsing into a positioned mesh.
//
// Tokenizing is done by the go-data-front OBJ scanner, which reports records
// as events in file order. All records are collected before any face is
// added, so a face may reference a vertex declared later in the file.
// Negative indices resolve against the vertices read up to their own record.

package meshio

import (
	"errors"
	"fmt"
	"io"

	"github.com/mokiat/go-data-front/common"
	objscan "github.com/mokiat/go-data-front/scanner/obj"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/mesh"
)

// polygon is one "f" record with indices already made 0-based.
type polygon struct {
	ordinal int
	corners []int
}

// objCollector gathers scanner events. The scanner drops handler errors for
// reference events, so an unresolvable corner is remembered in badRef and
// reported when the face closes.
type objCollector struct {
	positions []r3.Vec
	polygons  []polygon
	face      *polygon
	badRef    int64
	hasBadRef bool
}

func (c *objCollector) handle(event common.Event) error {
	switch ev := event.(type) {
	case objscan.VertexEvent:
		c.positions = append(c.positions, r3.Vec{X: ev.X, Y: ev.Y, Z: ev.Z})
	case objscan.FaceStartEvent:
		c.face = &polygon{ordinal: len(c.polygons) + 1}
		c.hasBadRef = false
	case objscan.VertexReferenceEvent:
		c.addCorner(ev.VertexIndex)
	case objscan.FaceEndEvent:
		return c.closeFace()
	}

	return nil
}

func (c *objCollector) addCorner(idx int64) {
	seen := int64(len(c.positions))
	switch {
	case idx > 0:
		c.face.corners = append(c.face.corners, int(idx-1))
	case idx < 0 && seen+idx >= 0:
		c.face.corners = append(c.face.corners, int(seen+idx))
	case !c.hasBadRef:
		c.badRef, c.hasBadRef = idx, true
	}
}

func (c *objCollector) closeFace() error {
	if c.hasBadRef {
		return fmt.Errorf("face %d: index %d of %d vertices: %w",
			c.face.ordinal, c.badRef, len(c.positions), ErrBadIndex)
	}
	c.polygons = append(c.polygons, *c.face)
	c.face = nil

	return nil
}

// where names the record a scanner error belongs to.
func (c *objCollector) where() string {
	if c.face != nil {
		return fmt.Sprintf("face %d", c.face.ordinal)
	}

	return fmt.Sprintf("after vertex %d", len(c.positions))
}

// ReadOBJ parses an OBJ stream into a new mesh with a mesh.PositionName column.
func ReadOBJ(r io.Reader, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)

	var col objCollector
	if err := objscan.NewScanner().Scan(r, col.handle); err != nil {
		if errors.Is(err, ErrBadIndex) {
			return nil, fmt.Errorf("ReadOBJ: %w", err)
		}
		return nil, fmt.Errorf("ReadOBJ: %s: %w: %w", col.where(), ErrSyntax, err)
	}

	m := mesh.New(mesh.WithVertexCapacity(len(col.positions)), mesh.WithFaceCapacity(len(col.polygons)))
	pos, err := mesh.EnsurePositions(m)
	if err != nil {
		return nil, fmt.Errorf("ReadOBJ: %w", err)
	}
	vs := m.AddVertices(len(col.positions))
	for i, p := range col.positions {
		pos.Set(vs[i], p)
	}

	face := make([]handle.Vertex, 0, 4)
	for _, poly := range col.polygons {
		face = face[:0]
		for _, c := range poly.corners {
			if c >= len(vs) {
				return nil, fmt.Errorf("ReadOBJ: face %d: index %d of %d vertices: %w",
					poly.ordinal, c+1, len(vs), ErrBadIndex)
			}
			face = append(face, vs[c])
		}
		if _, err := m.AddFace(face...); err != nil {
			return nil, fmt.Errorf("ReadOBJ: face %d: %w: %w", poly.ordinal, ErrTopology, err)
		}
	}
	cfg.logger.Debug("obj loaded", "vertices", m.NVertices(), "faces", m.NFaces())

	return m, nil
}
