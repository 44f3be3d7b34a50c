// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvmesh/mesh"
)

// WriteOBJ writes the positions and faces of m to w. Vertex i is written as
// OBJ index i+1.
func WriteOBJ(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	cfg := newConfig(opts...)
	pos, err := mesh.Positions(m)
	if err != nil {
		return fmt.Errorf("WriteOBJ: %w: %w", ErrMissingPosition, err)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for v := range m.Vertices() {
		p := pos.At(v)
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteOBJ: %w", err)
		}
	}

	topo := m.Topology()
	for f := range m.Faces() {
		buf = append(buf[:0], 'f')
		for v := range topo.VerticesAroundFace(f) {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v.Idx()+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteOBJ: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteOBJ: %w", err)
	}
	cfg.logger.Debug("obj written", "vertices", m.NVertices(), "faces", m.NFaces())

	return nil
}
