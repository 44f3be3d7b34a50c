// SPDX-License-Identifier: MIT

// Package property implements the typed, name-keyed column store that lvmesh
// attaches to every element kind.
//
// A Container[K] holds any number of columns, each of an arbitrary Go type,
// all indexed by handle.Handle[K] and all of the same length. The container is
// not generic over the value types it stores; columns are kept behind a small
// type-erased interface and recovered with a checked type assertion whenever
// a Property is dereferenced.
//
//	c := property.NewContainer[handle.VertexKind]()
//	mark, _ := property.Add(c, "v:mark", false)
//	c.Push()                        // every column grows by one default slot
//	mark.Set(handle.New[handle.VertexKind](0), true)
//
// Columns are registered once per name (the value type is not part of the
// key) and live as long as their container. New elements receive the
// column's default value. Defaults are copied by assignment, so reference
// types (slices, maps, pointers) share their backing storage between slots.
//
// Errors:
//
//	ErrEmptyName     - Add called with "".
//	ErrDuplicateName - a column with that name already exists.
//	ErrNotFound      - Get for an unknown name.
//	ErrTypeMismatch  - Get for a known name under a different value type.
//
// Dereferencing a Property with an out-of-range handle, through a foreign
// container, or before it was bound, is a programming error and panics.
package property
