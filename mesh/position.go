// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/property"
)

// PositionName is the conventional name of the vertex position column.
// Loaders, writers, builders and subdivision all agree on it.
const PositionName = "v:position"

// Positions returns the r3.Vec position column of m.
// Fails with property.ErrNotFound or property.ErrTypeMismatch.
func Positions(m *Mesh) (property.Property[handle.VertexKind, r3.Vec], error) {
	pos, err := property.Get[r3.Vec](m.props.vprop, PositionName)
	if err != nil {
		return pos, fmt.Errorf("Positions: %w", err)
	}

	return pos, nil
}

// EnsurePositions returns the position column of m, registering it with a
// zero default when it does not exist yet. A column of the same name and a
// different type is reported as property.ErrTypeMismatch.
func EnsurePositions(m *Mesh) (property.Property[handle.VertexKind, r3.Vec], error) {
	if !m.props.vprop.Has(PositionName) {
		return AddVertexProperty(m.props, PositionName, r3.Vec{})
	}

	return Positions(m)
}
