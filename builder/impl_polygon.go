// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_polygon.go — implementation of Polygon(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Allocates n vertices and records one face 0→1→…→n-1.
//   • Every edge is a boundary edge on one side.
//
// Complexity: O(n).

package builder

// Polygon returns a Constructor that records a single n-sided face.
func Polygon(n int) Constructor {
	return func(s *Surface, cfg builderConfig) error {
		if err := validateMin(methodPolygon, "n", n, MinPolygonSides); err != nil {
			return err
		}
		base := s.AddVertices(n)
		ring := make([]int, n)
		for i := range ring {
			ring[i] = i
		}

		return emit(s, cfg, base, ring...)
	}
}
