// SPDX-License-Identifier: MIT
//
// File: vector.go
// Role: Vector, the concrete typed column, and the erased column interface.

package property

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvmesh/handle"
)

// column is the type-erased capability set every Vector exposes to a Container.
type column interface {
	Name() string
	Len() int
	Cap() int
	Reserve(n int)
	Push()
	TypeName() string
}

// Vector is a growable column of T indexed by handle.Handle[K].
// Growth always fills new slots with the column default.
type Vector[K handle.Kind, T any] struct {
	name string
	def  T
	data []T
}

// NewVector returns an empty column named name whose new slots hold def.
func NewVector[K handle.Kind, T any](name string, def T) *Vector[K, T] {
	return &Vector[K, T]{name: name, def: def}
}

// Name returns the column name.
func (v *Vector[K, T]) Name() string { return v.name }

// Default returns the value assigned to newly pushed slots.
func (v *Vector[K, T]) Default() T { return v.def }

// Len returns the number of slots.
func (v *Vector[K, T]) Len() int { return len(v.data) }

// Cap returns the number of slots the column can hold without reallocating.
func (v *Vector[K, T]) Cap() int { return cap(v.data) }

// TypeName returns the Go type name of T, used in diagnostics.
func (v *Vector[K, T]) TypeName() string { return typeName[T]() }

// Reserve grows the backing storage so that Cap() >= n. Len is unchanged.
func (v *Vector[K, T]) Reserve(n int) {
	if n <= cap(v.data) {
		return
	}
	grown := make([]T, len(v.data), n)
	copy(grown, v.data)
	v.data = grown
}

// Push appends one default-valued slot.
func (v *Vector[K, T]) Push() {
	v.data = append(v.data, v.def)
}

// resize appends default slots until Len() == n. It never shrinks.
func (v *Vector[K, T]) resize(n int) {
	for len(v.data) < n {
		v.data = append(v.data, v.def)
	}
}

// At returns the value stored for h.
func (v *Vector[K, T]) At(h handle.Handle[K]) T {
	return v.data[v.check(h)]
}

// Ptr returns a pointer to the slot for h. The pointer is invalidated by the
// next growth of the column.
func (v *Vector[K, T]) Ptr(h handle.Handle[K]) *T {
	return &v.data[v.check(h)]
}

// Set stores val in the slot for h.
func (v *Vector[K, T]) Set(h handle.Handle[K], val T) {
	v.data[v.check(h)] = val
}

func (v *Vector[K, T]) check(h handle.Handle[K]) int {
	i := h.Idx()
	if i >= len(v.data) {
		panic(fmt.Sprintf("property: %s out of range for column %q (len %d)", h, v.name, len(v.data)))
	}

	return i
}

func typeName[T any]() string { return reflect.TypeFor[T]().String() }
