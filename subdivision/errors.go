// SPDX-License-Identifier: MIT

package subdivision

import "errors"

// ErrMissingPosition indicates an input mesh without an r3.Vec position column.
var ErrMissingPosition = errors.New("subdivision: mesh has no vertex positions")

// ErrNotTriangleMesh indicates an input face with more than three corners.
var ErrNotTriangleMesh = errors.New("subdivision: face is not a triangle")

// ErrLowValence indicates an interior vertex with fewer than three
// neighbours, for which the smoothing weight is undefined.
var ErrLowValence = errors.New("subdivision: interior vertex valence below 3")
