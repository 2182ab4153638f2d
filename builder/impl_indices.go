// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_indices.go — implementation of Indices(buffer, arity) constructor.
//
// Contract:
//   • arity ≥ 3 (else ErrTooFewVertices).
//   • len(buffer) is a non-zero multiple of arity and every index is ≥ 0
//     (else ErrBadIndexBuffer).
//   • Allocates max(buffer)+1 vertices; every arity consecutive indices form
//     one face. An allocated index no face uses fails at realization with
//     core.ErrTopologyMalformed.
//
// Complexity: O(len(buffer)).

package builder

import (
	"fmt"
	"slices"
)

// Indices returns a Constructor that records the faces of a flat index
// buffer of fixed arity.
func Indices(buffer []int, arity int) Constructor {
	return func(s *Surface, cfg builderConfig) error {
		if err := validateMin(methodIndices, "arity", arity, MinPolygonSides); err != nil {
			return err
		}
		if len(buffer) == 0 || len(buffer)%arity != 0 {
			return fmt.Errorf("%s: %d indices not a multiple of arity %d: %w", methodIndices, len(buffer), arity, ErrBadIndexBuffer)
		}
		if lo := slices.Min(buffer); lo < 0 {
			return fmt.Errorf("%s: negative index %d: %w", methodIndices, lo, ErrBadIndexBuffer)
		}
		base := s.AddVertices(slices.Max(buffer) + 1)
		for i := 0; i < len(buffer); i += arity {
			if err := emit(s, cfg, base, buffer[i:i+arity]...); err != nil {
				return fmt.Errorf("%s: face %d: %w", methodIndices, i/arity, err)
			}
		}

		return nil
	}
}
