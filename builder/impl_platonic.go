// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
//     (else ErrOptionViolation).
//   • Allocates the solid's vertices and records its faces in the order
//     listed in variants_platonic.go.
//   • The result is closed: no boundary arcs.
//
// Complexity: O(V+F) for the chosen solid (V ≤ 20, F ≤ 20).

package builder

import "fmt"

// PlatonicSolid returns a Constructor that records the closed surface of
// the named solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *Surface, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: missing face set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		base := s.AddVertices(n)
		for _, ring := range faces {
			if err := emit(s, cfg, base, ring...); err != nil {
				return fmt.Errorf("%s(%s): %w", methodPlatonicSolid, name, err)
			}
		}

		return nil
	}
}
