// SPDX-License-Identifier: MIT
// Package: lvmesh/core
//
// methods_clone.go — deep copy of a Core.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/storage"
)

// cloneSlot copies one slot; empty slots stay empty.
func cloneSlot[K comparable, E any](method string, s storage.Storage[K, E]) (storage.Storage[K, E], error) {
	if s == nil {
		return nil, nil
	}
	c, ok := s.(storage.Cloner[K, E])
	if !ok {
		return nil, fmt.Errorf("%s: %s storage cannot be cloned: %w", method, s.Kind(), ErrStorageKind)
	}

	return c.Clone(), nil
}

// Clone returns a Core whose storages are independent copies of c's.
// Entity records are copied by value, so Data fields holding pointers,
// maps or slices are shared with the original.
//
// Errors:
//   - ErrStorageKind if a fused storage does not implement storage.Cloner.
//
// Complexity: O(V + A + E + F).
func (c *Core[V, A, E, F]) Clone() (*Core[V, A, E, F], error) {
	var (
		out Core[V, A, E, F]
		err error
	)
	if out.vertices, err = cloneSlot("Clone(vertices)", c.vertices); err != nil {
		return nil, err
	}
	if out.arcs, err = cloneSlot("Clone(arcs)", c.arcs); err != nil {
		return nil, err
	}
	if out.edges, err = cloneSlot("Clone(edges)", c.edges); err != nil {
		return nil, err
	}
	if out.faces, err = cloneSlot("Clone(faces)", c.faces); err != nil {
		return nil, err
	}

	return &out, nil
}
