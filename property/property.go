// SPDX-License-Identifier: MIT

package property

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
)

// Property identifies one column of T inside the Container it was obtained
// from. The zero Property is unbound; dereferencing it panics.
type Property[K handle.Kind, T any] struct {
	owner *Container[K]
	slot  int
}

// Valid reports whether p is bound to a container.
func (p Property[K, T]) Valid() bool { return p.owner != nil }

// Name returns the column name.
func (p Property[K, T]) Name() string { return p.column().Name() }

// Default returns the column default value.
func (p Property[K, T]) Default() T { return p.column().Default() }

// At returns the value stored for h.
func (p Property[K, T]) At(h handle.Handle[K]) T { return p.column().At(h) }

// Ptr returns a pointer to the slot for h, valid until the container grows.
func (p Property[K, T]) Ptr(h handle.Handle[K]) *T { return p.column().Ptr(h) }

// Set stores val in the slot for h.
func (p Property[K, T]) Set(h handle.Handle[K], val T) { p.column().Set(h, val) }

// BelongsTo reports whether p was obtained from c.
func (p Property[K, T]) BelongsTo(c *Container[K]) bool { return p.owner == c }

func (p Property[K, T]) column() *Vector[K, T] {
	if p.owner == nil {
		panic("property: use of unbound property")
	}
	col, ok := p.owner.columns[p.slot].(*Vector[K, T])
	if !ok {
		raw := p.owner.columns[p.slot]
		panic(fmt.Sprintf("property: column %q stores %s, accessed as %s",
			raw.Name(), raw.TypeName(), typeName[T]()))
	}

	return col
}
