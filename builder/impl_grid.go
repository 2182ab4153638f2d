// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols quads over (rows+1)×(cols+1) vertices.
//   • Vertex (r, c) has local index r*(cols+1)+c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Records quads row-major, each wound (r,c)→(r,c+1)→(r+1,c+1)→(r+1,c).
//
// Complexity: O(rows*cols).

package builder

// Grid returns a Constructor that records a rows×cols sheet of quads.
func Grid(rows, cols int) Constructor {
	return func(s *Surface, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		base := s.AddVertices((rows + 1) * (cols + 1))
		at := func(r, c int) int { return r*(cols+1) + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := emit(s, cfg, base, at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
