// SPDX-License-Identifier: MIT

package mesh_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mesh"
)

func TestGuarded_ConcurrentReadersOneWriter(t *testing.T) {
	const writers, readers = 4, 8
	g := mesh.NewGuarded(mesh.New())

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Write(func(m *mesh.Mesh) error {
				vs := m.AddVertices(3)
				_, err := m.AddFace(vs...)

				return err
			})
			assert.NoError(t, err)
		}()
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Read(func(m *mesh.Mesh) error {
				assert.Equal(t, 3*m.NFaces(), m.NVertices(), "readers never see a half-built face")

				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, g.Read(func(m *mesh.Mesh) error {
		assert.Equal(t, writers, m.NFaces())

		return m.Topology().Validate()
	}))
}

func TestGuarded_PropagatesError(t *testing.T) {
	g := mesh.NewGuarded(mesh.New())
	err := g.Write(func(m *mesh.Mesh) error {
		_, err := m.AddFace(m.AddVertices(2)...)

		return err
	})
	assert.True(t, errors.Is(err, mesh.ErrTooFewVertices))
}
