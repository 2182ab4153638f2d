// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 3 rim vertices (else ErrTooFewVertices).
//   • Allocates the hub first (local index 0), then rim vertices 1..n.
//   • Records n triangles (0, i, i+1), rim wrapping from n back to 1, in
//     ascending i.
//
// Complexity: O(n).

package builder

// Wheel returns a Constructor that records a triangle fan of n blades
// around a hub vertex.
func Wheel(n int) Constructor {
	return func(s *Surface, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinPolygonSides); err != nil {
			return err
		}
		base := s.AddVertices(n + 1)
		for i := 1; i <= n; i++ {
			if err := emit(s, cfg, base, 0, i, i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}
