// SPDX-License-Identifier: MIT

package storage

// Rekeying maps provisional keys handed out by a journal to the keys their
// entities received at commit time. Keys absent from the map resolve to
// themselves, so backend-native keys pass through unchanged.
type Rekeying[K comparable] map[K]K

// Resolve returns the committed key for key.
func (r Rekeying[K]) Resolve(key K) K {
	if to, ok := r[key]; ok {
		return to
	}

	return key
}
