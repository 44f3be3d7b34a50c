// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves return errors.
//   • Randomness only enters through WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// any element is created.
type BuilderOption func(*builderConfig)

// WithScale multiplies every generated position by s. Panics unless s is
// finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) { c.scale = s }
}

// WithCenter translates every generated position by p.
func WithCenter(p r3.Vec) BuilderOption {
	return func(c *builderConfig) { c.center = p }
}

// WithTriangulate splits every generated polygon with more than three
// corners into a fan of triangles around its first corner.
func WithTriangulate() BuilderOption {
	return func(c *builderConfig) { c.triangulate = true }
}

// WithRand provides an explicit RNG for WithJitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs each coordinate of every generated position by a
// uniform draw from [-a, a]. Requires WithSeed or WithRand. Panics if a < 0.
func WithJitter(a float64) BuilderOption {
	if a < 0 || math.IsNaN(a) {
		panic("builder: WithJitter(a<0)")
	}

	return func(c *builderConfig) { c.jitter = a }
}
