// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale       = DefaultScale (unit circumradius / unit cells)
//   • center      = origin
//   • triangulate = false (polygons are kept as generated)
//   • rng         = nil   (no randomness unless seeded)
//   • jitter      = 0
//
// newBuilderConfig applies options in order; later options override earlier ones.

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	scale       float64
	center      r3.Vec
	triangulate bool
	rng         *rand.Rand
	jitter      float64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical point into the configured frame: scale about the
// origin, translate to center, then jitter each coordinate.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	q := r3.Add(r3.Scale(c.scale, p), c.center)
	if c.jitter > 0 {
		q.X += c.jitter * (2*c.rng.Float64() - 1)
		q.Y += c.jitter * (2*c.rng.Float64() - 1)
		q.Z += c.jitter * (2*c.rng.Float64() - 1)
	}

	return q
}
