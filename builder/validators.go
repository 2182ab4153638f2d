// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got ≥ least, naming the parameter in the error.
func validateMin(method, name string, got, least int) error {
	if got < least {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, least, ErrTooFewVertices)
	}

	return nil
}
