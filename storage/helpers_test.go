// SPDX-License-Identifier: MIT

package storage_test

import "github.com/katalvlaran/lvmesh/storage"

// testKey is a distinct key type built on SlotKey, the way entity keys are.
type testKey storage.SlotKey

// item is a small copyable entity.
type item struct {
	Name  string
	Value int
}

// collect snapshots the visible contents of r.
func collect[K comparable, E any](r storage.Reader[K, E]) map[K]E {
	out := make(map[K]E, r.Len())
	for k, e := range r.All() {
		out[k] = e
	}

	return out
}

// count enumerates r and returns the number of yielded entries.
func count[K comparable, E any](r storage.Reader[K, E]) int {
	n := 0
	for range r.All() {
		n++
	}

	return n
}
