// SPDX-License-Identifier: MIT
//
// File: container.go
// Role: Container, the heterogeneous set of equal-length columns for one element kind.
//
// Invariant:
//   - every column has exactly Len() slots.

package property

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/handle"
)

// Container hosts named columns of arbitrary value types, all indexed by
// handle.Handle[K] and all sharing one logical length.
//
// A Container is not safe for concurrent mutation.
type Container[K handle.Kind] struct {
	columns  []column
	byName   map[string]int
	size     int
	capacity int
}

// NewContainer returns an empty Container.
func NewContainer[K handle.Kind]() *Container[K] {
	return &Container[K]{byName: make(map[string]int)}
}

// Len returns the number of elements every column holds.
func (c *Container[K]) Len() int { return c.size }

// Capacity returns the largest capacity requested through Reserve, or Len
// if the container has already grown past it.
func (c *Container[K]) Capacity() int { return max(c.capacity, c.size) }

// Reserve pre-allocates room for n elements in every current column and
// records n for columns registered later. Len is unchanged.
func (c *Container[K]) Reserve(n int) {
	if n > c.capacity {
		c.capacity = n
	}
	for _, col := range c.columns {
		col.Reserve(n)
	}
}

// Push appends one default-valued slot to every column.
// Complexity: O(number of columns) amortized.
func (c *Container[K]) Push() {
	for _, col := range c.columns {
		col.Push()
	}
	c.size++
}

// Has reports whether a column named name exists.
func (c *Container[K]) Has(name string) bool {
	_, ok := c.byName[name]

	return ok
}

// Names returns the column names in registration order.
func (c *Container[K]) Names() []string {
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name()
	}

	return names
}

// Add registers a column of T under name, backfilled with def up to the
// container's current length.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrDuplicateName if any column (of any type) already uses name.
func Add[T any, K handle.Kind](c *Container[K], name string, def T) (Property[K, T], error) {
	if name == "" {
		return Property[K, T]{}, ErrEmptyName
	}
	if _, exists := c.byName[name]; exists {
		return Property[K, T]{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	col := NewVector[K](name, def)
	col.Reserve(max(c.capacity, c.size))
	col.resize(c.size)

	c.byName[name] = len(c.columns)
	c.columns = append(c.columns, col)

	return Property[K, T]{owner: c, slot: c.byName[name]}, nil
}

// Get looks up the column registered under name as a column of T.
//
// Errors:
//   - ErrNotFound if no column uses name.
//   - ErrTypeMismatch if the column stores a type other than T.
func Get[T any, K handle.Kind](c *Container[K], name string) (Property[K, T], error) {
	slot, ok := c.byName[name]
	if !ok {
		return Property[K, T]{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	col := c.columns[slot]
	if _, typed := col.(*Vector[K, T]); !typed {
		return Property[K, T]{}, fmt.Errorf("%w: %q stores %s, requested %s",
			ErrTypeMismatch, name, col.TypeName(), typeName[T]())
	}

	return Property[K, T]{owner: c, slot: slot}, nil
}

// Access returns a pointer to the slot of p for h, after checking that p was
// obtained from c. Panics on a foreign or unbound property and on an
// out-of-range handle.
func Access[T any, K handle.Kind](c *Container[K], p Property[K, T], h handle.Handle[K]) *T {
	if p.owner != c {
		panic(fmt.Sprintf("property: column slot %d does not belong to this container", p.slot))
	}

	return p.Ptr(h)
}
