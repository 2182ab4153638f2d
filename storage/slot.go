// SPDX-License-Identifier: MIT
// Package: lvmesh/storage
//
// slot.go — generational slot backend.
//
// Layout:
//   • slots[0] is reserved and never occupied, so the zero SlotKey is never live.
//   • A slot is occupied iff its generation is odd. Insert and Remove each bump
//     the generation by one, so a key (index, gen) can only match one occupancy.
//   • Vacated indices go to a LIFO free list. A slot whose generation would wrap
//     is retired instead of being reused.
//
// Complexity:
//   • Insert/Get/GetMut/Remove/Contains: O(1).
//   • All/Keys: O(Capacity()).

package storage

import (
	"fmt"
	"iter"
	"math"
)

// SlotKey addresses an entity in a SlotMap.
// Generation 0 never identifies a live entity; the zero SlotKey means "no key".
type SlotKey struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether k is the zero (absent) key.
func (k SlotKey) IsZero() bool { return k.Generation == 0 }

// String renders the key as "index#generation".
func (k SlotKey) String() string { return fmt.Sprintf("%d#%d", k.Index, k.Generation) }

// Slotted is satisfied by SlotKey and every type defined on top of it
// (for example `type VertexKey storage.SlotKey`).
type Slotted interface {
	~struct {
		Index      uint32
		Generation uint32
	}
}

type slot[E any] struct {
	value      E
	generation uint32
}

func (s *slot[E]) occupied() bool { return s.generation%2 == 1 }

// SlotMap stores entities under backend-assigned generational keys.
type SlotMap[K Slotted, E any] struct {
	slots []slot[E]
	free  []uint32
	len   int
}

// NewSlotMap returns an empty SlotMap.
func NewSlotMap[K Slotted, E any]() *SlotMap[K, E] {
	return &SlotMap[K, E]{slots: make([]slot[E], 1)}
}

// Kind reports KindSlot.
func (m *SlotMap[K, E]) Kind() Kind { return KindSlot }

// Capacity returns the number of slot indices handed out so far (occupied,
// free or retired). Keys assigned by Insert always have Index <= Capacity()+1.
func (m *SlotMap[K, E]) Capacity() int { return len(m.slots) - 1 }

// Len returns the number of live entities.
func (m *SlotMap[K, E]) Len() int { return m.len }

// Insert stores entity and returns its new key.
func (m *SlotMap[K, E]) Insert(entity E) K {
	var index uint32
	if n := len(m.free); n > 0 {
		index = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		if uint64(len(m.slots)) > math.MaxUint32 {
			panic(fmt.Errorf("slot map: %w", ErrKeySpaceExhausted))
		}
		index = uint32(len(m.slots))
		m.slots = append(m.slots, slot[E]{})
	}
	s := &m.slots[index]
	s.generation++
	s.value = entity
	m.len++

	return K(SlotKey{Index: index, Generation: s.generation})
}

// lookup returns the occupied slot addressed by key, or nil.
func (m *SlotMap[K, E]) lookup(key K) *slot[E] {
	sk := SlotKey(key)
	if sk.Index == 0 || int(sk.Index) >= len(m.slots) {
		return nil
	}
	s := &m.slots[sk.Index]
	if !s.occupied() || s.generation != sk.Generation {
		return nil
	}

	return s
}

// Get returns a copy of the entity stored under key.
func (m *SlotMap[K, E]) Get(key K) (E, bool) {
	if s := m.lookup(key); s != nil {
		return s.value, true
	}
	var zero E

	return zero, false
}

// GetMut returns a pointer into the slot array. The pointer is invalidated by
// the next Insert that grows the array.
func (m *SlotMap[K, E]) GetMut(key K) (*E, bool) {
	if s := m.lookup(key); s != nil {
		return &s.value, true
	}

	return nil, false
}

// Contains reports whether key is live.
func (m *SlotMap[K, E]) Contains(key K) bool { return m.lookup(key) != nil }

// Remove vacates the slot addressed by key.
func (m *SlotMap[K, E]) Remove(key K) (E, bool) {
	var zero E
	s := m.lookup(key)
	if s == nil {
		return zero, false
	}
	entity := s.value
	s.value = zero
	m.len--
	if s.generation == math.MaxUint32 {
		// Wrapping would make old keys live again: retire the slot.
		s.generation = 0
		return entity, true
	}
	s.generation++
	m.free = append(m.free, SlotKey(key).Index)

	return entity, true
}

// All yields live entries in ascending index order.
func (m *SlotMap[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for i := 1; i < len(m.slots); i++ {
			s := &m.slots[i]
			if !s.occupied() {
				continue
			}
			if !yield(K(SlotKey{Index: uint32(i), Generation: s.generation}), s.value) {
				return
			}
		}
	}
}

// Keys yields live keys in ascending index order.
func (m *SlotMap[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Entities are copied by value.
func (m *SlotMap[K, E]) Clone() Storage[K, E] {
	return &SlotMap[K, E]{
		slots: append([]slot[E](nil), m.slots...),
		free:  append([]uint32(nil), m.free...),
		len:   m.len,
	}
}

// SyntheticKeys returns a generator whose keys start strictly above the
// current capacity. Such keys are never assigned by Insert before at least as
// many appends have happened, which lets a journal hand them out as
// provisional keys.
func (m *SlotMap[K, E]) SyntheticKeys() KeyGenerator[K] {
	floor := uint32(math.MaxUint32)
	if c := uint64(m.Capacity()); c < math.MaxUint32 {
		floor = uint32(c) + 1
	}

	return &SlotKeyGenerator[K]{floor: floor, index: floor, generation: 1}
}

// SlotKeyGenerator produces synthetic slot keys: generation 1 from the floor
// index upwards, then generation 3, 5, ... each time the index space wraps.
type SlotKeyGenerator[K Slotted] struct {
	floor      uint32
	index      uint32
	generation uint32
	exhausted  bool
}

// Next returns the next synthetic key. It panics with ErrKeySpaceExhausted
// once every odd generation has been used.
func (g *SlotKeyGenerator[K]) Next() K {
	if g.exhausted {
		panic(fmt.Errorf("slot key generator: %w", ErrKeySpaceExhausted))
	}
	key := SlotKey{Index: g.index, Generation: g.generation}
	if g.index == math.MaxUint32 {
		if g.generation > math.MaxUint32-2 {
			g.exhausted = true
		} else {
			g.generation += 2
			g.index = g.floor
		}
	} else {
		g.index++
	}

	return K(key)
}
