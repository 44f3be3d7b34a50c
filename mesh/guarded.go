// SPDX-License-Identifier: MIT
//
// File: guarded.go
// Role: One coarse RWMutex around a whole Mesh for callers that share it.
//
// AddFace touches many vertices and halfedges at once, so locking is done
// per mesh, never per element.

package mesh

import "sync"

// Guarded serializes access to a Mesh: any number of concurrent readers, or
// one writer.
type Guarded struct {
	mu sync.RWMutex
	m  *Mesh
}

// NewGuarded wraps m. The caller must stop using m directly.
func NewGuarded(m *Mesh) *Guarded {
	return &Guarded{m: m}
}

// Read runs fn under the read lock. fn must not mutate the mesh nor retain
// it after returning.
func (g *Guarded) Read(fn func(m *Mesh) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(g.m)
}

// Write runs fn under the exclusive write lock.
func (g *Guarded) Write(fn func(m *Mesh) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.m)
}
