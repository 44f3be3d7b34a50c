// SPDX-License-Identifier: MIT

package meshio

import "errors"

// ErrNoExtension indicates a path without a file extension.
var ErrNoExtension = errors.New("meshio: no file extension")

// ErrUnknownExtension indicates a file extension with no matching format.
var ErrUnknownExtension = errors.New("meshio: unknown file extension")

// ErrSyntax indicates a record that could not be parsed.
var ErrSyntax = errors.New("meshio: syntax error")

// ErrBadIndex indicates a face index that names no vertex.
var ErrBadIndex = errors.New("meshio: vertex index out of range")

// ErrTopology indicates a face the mesh refused to add.
var ErrTopology = errors.New("meshio: face rejected by mesh topology")

// ErrMissingPosition indicates a mesh without a usable position column.
var ErrMissingPosition = errors.New("meshio: mesh has no vertex positions")
