// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got >= min, reporting ErrTooFewVertices with the
// method and parameter name otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
