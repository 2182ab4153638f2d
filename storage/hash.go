// SPDX-License-Identifier: MIT

package storage

import "iter"

// HashMap stores entities under caller-assigned keys.
// Entities are boxed so GetMut can hand out stable pointers.
type HashMap[K comparable, E any] struct {
	entries map[K]*E
}

// NewHashMap returns an empty HashMap.
func NewHashMap[K comparable, E any]() *HashMap[K, E] {
	return &HashMap[K, E]{entries: make(map[K]*E)}
}

// Kind reports KindHash.
func (m *HashMap[K, E]) Kind() Kind { return KindHash }

// Len returns the number of live entities.
func (m *HashMap[K, E]) Len() int { return len(m.entries) }

// InsertWithKey stores entity under key, returning the displaced occupant.
func (m *HashMap[K, E]) InsertWithKey(key K, entity E) (E, bool) {
	if p, ok := m.entries[key]; ok {
		old := *p
		*p = entity
		return old, true
	}
	m.entries[key] = &entity
	var zero E

	return zero, false
}

// Get returns a copy of the entity stored under key.
func (m *HashMap[K, E]) Get(key K) (E, bool) {
	if p, ok := m.entries[key]; ok {
		return *p, true
	}
	var zero E

	return zero, false
}

// GetMut returns a pointer to the stored entity; it stays valid until key is removed.
func (m *HashMap[K, E]) GetMut(key K) (*E, bool) {
	p, ok := m.entries[key]

	return p, ok
}

// Contains reports whether key is live.
func (m *HashMap[K, E]) Contains(key K) bool {
	_, ok := m.entries[key]

	return ok
}

// Remove deletes key.
func (m *HashMap[K, E]) Remove(key K) (E, bool) {
	p, ok := m.entries[key]
	if !ok {
		var zero E
		return zero, false
	}
	delete(m.entries, key)

	return *p, true
}

// All yields live entries in map order.
func (m *HashMap[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for k, p := range m.entries {
			if !yield(k, *p) {
				return
			}
		}
	}
}

// Keys yields live keys in map order.
func (m *HashMap[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.entries {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Entities are copied by value.
func (m *HashMap[K, E]) Clone() Storage[K, E] {
	out := &HashMap[K, E]{entries: make(map[K]*E, len(m.entries))}
	for k, p := range m.entries {
		e := *p
		out.entries[k] = &e
	}

	return out
}
