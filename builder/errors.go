// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: detail: %w".
//   • Option constructors (WithX) panic instead of returning errors.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates WithJitter without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a parameter outside the constructor's domain,
// such as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates that the mesh rejected a generated element,
// usually because earlier constructors left it inconsistent.
var ErrConstructFailed = errors.New("builder: construction failed")
