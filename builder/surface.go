// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// surface.go — the index-level recording constructors write into.
//
// Contract:
//   • Vertex indices are dense, starting at 0, in allocation order.
//   • AddFace accepts only allocated indices and rings of ≥ MinPolygonSides
//     distinct vertices; topology between faces is checked at realization.

package builder

import (
	"fmt"
	"slices"
)

// Surface records vertices (by index) and faces (as index rings).
type Surface struct {
	vertices int
	faces    [][]int
}

// AddVertices allocates n vertex indices and returns the first one.
func (s *Surface) AddVertices(n int) int {
	base := s.vertices
	s.vertices += max(n, 0)

	return base
}

// AddFace records a face over the given vertex indices, in winding order.
//
// Errors:
//   - ErrTooFewVertices for fewer than MinPolygonSides indices.
//   - ErrBadIndexBuffer for an unallocated or repeated index.
func (s *Surface) AddFace(ring ...int) error {
	if len(ring) < MinPolygonSides {
		return fmt.Errorf("AddFace: %d indices < min=%d: %w", len(ring), MinPolygonSides, ErrTooFewVertices)
	}
	for i, idx := range ring {
		if idx < 0 || idx >= s.vertices {
			return fmt.Errorf("AddFace: index %d outside [0,%d): %w", idx, s.vertices, ErrBadIndexBuffer)
		}
		if slices.Contains(ring[:i], idx) {
			return fmt.Errorf("AddFace: index %d repeated: %w", idx, ErrBadIndexBuffer)
		}
	}
	s.faces = append(s.faces, slices.Clone(ring))

	return nil
}

// VertexCount returns the number of allocated vertex indices.
func (s *Surface) VertexCount() int { return s.vertices }

// Faces returns a copy of the recorded rings.
func (s *Surface) Faces() [][]int {
	out := make([][]int, len(s.faces))
	for i, f := range s.faces {
		out[i] = slices.Clone(f)
	}

	return out
}

// emit records ring offset by base, reversed when the config asks for it.
func emit(s *Surface, cfg builderConfig, base int, ring ...int) error {
	out := make([]int, len(ring))
	for i, idx := range ring {
		out[i] = base + idx
	}
	if cfg.reversed {
		slices.Reverse(out)
	}

	return s.AddFace(out...)
}
