// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   • One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves
//     cfg, runs cons in order.
//   • Constructors append; vertex handles of a later constructor start after
//     the vertices of every earlier one.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Constructor appends a deterministic component to m using the resolved
// builderConfig. Constructors validate their parameters before creating any
// element and report failures as wrapped sentinels.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a new mesh with mesh options mopts, registers the
// mesh.PositionName column, resolves the builder configuration from bopts
// and applies all constructors in order. The first constructor error is
// returned as "BuildMesh: %w"; the partly built mesh is discarded.
//
// Complexity: Σ cost of each constructor, linear in the elements created.
func BuildMesh(mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.New(mopts...)
	if _, err := mesh.EnsurePositions(m); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
	}

	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: jitter %g: %w", MethodBuildMesh, cfg.jitter, ErrNeedRandSource)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMesh, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
	}

	return m, nil
}
