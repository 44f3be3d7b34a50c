// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Per-kind property registry and typed registration helpers.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
	"github.com/katalvlaran/lvmesh/property"
)

// Properties groups the four property containers of a mesh, one per element kind.
// Containers grow together with the mesh; callers only register and access columns.
type Properties struct {
	vprop *property.Container[handle.VertexKind]
	hprop *property.Container[handle.HalfedgeKind]
	eprop *property.Container[handle.EdgeKind]
	fprop *property.Container[handle.FaceKind]
}

func newProperties() *Properties {
	return &Properties{
		vprop: property.NewContainer[handle.VertexKind](),
		hprop: property.NewContainer[handle.HalfedgeKind](),
		eprop: property.NewContainer[handle.EdgeKind](),
		fprop: property.NewContainer[handle.FaceKind](),
	}
}

// VertexContainer returns the vertex property container.
func (p *Properties) VertexContainer() *property.Container[handle.VertexKind] { return p.vprop }

// HalfedgeContainer returns the halfedge property container.
func (p *Properties) HalfedgeContainer() *property.Container[handle.HalfedgeKind] { return p.hprop }

// EdgeContainer returns the edge property container.
func (p *Properties) EdgeContainer() *property.Container[handle.EdgeKind] { return p.eprop }

// FaceContainer returns the face property container.
func (p *Properties) FaceContainer() *property.Container[handle.FaceKind] { return p.fprop }

// AddVertexProperty registers a vertex column of T named name.
// Fails with property.ErrDuplicateName if the name is taken.
func AddVertexProperty[T any](p *Properties, name string, def T) (property.Property[handle.VertexKind, T], error) {
	prop, err := property.Add(p.vprop, name, def)
	if err != nil {
		return prop, fmt.Errorf("AddVertexProperty: %w", err)
	}

	return prop, nil
}

// AddHalfedgeProperty registers a halfedge column of T named name.
func AddHalfedgeProperty[T any](p *Properties, name string, def T) (property.Property[handle.HalfedgeKind, T], error) {
	prop, err := property.Add(p.hprop, name, def)
	if err != nil {
		return prop, fmt.Errorf("AddHalfedgeProperty: %w", err)
	}

	return prop, nil
}

// AddEdgeProperty registers an edge column of T named name.
func AddEdgeProperty[T any](p *Properties, name string, def T) (property.Property[handle.EdgeKind, T], error) {
	prop, err := property.Add(p.eprop, name, def)
	if err != nil {
		return prop, fmt.Errorf("AddEdgeProperty: %w", err)
	}

	return prop, nil
}

// AddFaceProperty registers a face column of T named name.
func AddFaceProperty[T any](p *Properties, name string, def T) (property.Property[handle.FaceKind, T], error) {
	prop, err := property.Add(p.fprop, name, def)
	if err != nil {
		return prop, fmt.Errorf("AddFaceProperty: %w", err)
	}

	return prop, nil
}

// GetVertexProperty looks up the vertex column name as a column of T.
// Fails with property.ErrNotFound or property.ErrTypeMismatch.
func GetVertexProperty[T any](p *Properties, name string) (property.Property[handle.VertexKind, T], error) {
	prop, err := property.Get[T](p.vprop, name)
	if err != nil {
		return prop, fmt.Errorf("GetVertexProperty: %w", err)
	}

	return prop, nil
}

// GetHalfedgeProperty looks up the halfedge column name as a column of T.
func GetHalfedgeProperty[T any](p *Properties, name string) (property.Property[handle.HalfedgeKind, T], error) {
	prop, err := property.Get[T](p.hprop, name)
	if err != nil {
		return prop, fmt.Errorf("GetHalfedgeProperty: %w", err)
	}

	return prop, nil
}

// GetEdgeProperty looks up the edge column name as a column of T.
func GetEdgeProperty[T any](p *Properties, name string) (property.Property[handle.EdgeKind, T], error) {
	prop, err := property.Get[T](p.eprop, name)
	if err != nil {
		return prop, fmt.Errorf("GetEdgeProperty: %w", err)
	}

	return prop, nil
}

// GetFaceProperty looks up the face column name as a column of T.
func GetFaceProperty[T any](p *Properties, name string) (property.Property[handle.FaceKind, T], error) {
	prop, err := property.Get[T](p.fprop, name)
	if err != nil {
		return prop, fmt.Errorf("GetFaceProperty: %w", err)
	}

	return prop, nil
}
