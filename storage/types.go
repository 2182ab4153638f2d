// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"iter"
)

// Sentinel panics. Storage never returns errors; these surface only through panic.
var (
	// ErrKeySpaceExhausted indicates a synthetic key generator has no generations left.
	ErrKeySpaceExhausted = errors.New("storage: synthetic key space exhausted")

	// ErrNoKeyGenerator indicates Insert on a journal whose backend cannot synthesize keys.
	ErrNoKeyGenerator = errors.New("storage: backend does not synthesize keys")

	// ErrJournalClosed indicates a journal was used after Commit or Abort.
	ErrJournalClosed = errors.New("storage: journal closed")
)

// Kind identifies a backend implementation.
type Kind uint8

const (
	// KindSlot is the generational slot backend (backend-assigned keys).
	KindSlot Kind = iota + 1
	// KindHash is the hash backend (caller-assigned keys).
	KindHash
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Reader is read-only access to a keyed collection of entities.
type Reader[K comparable, E any] interface {
	// Kind reports the backend implementation behind this reader.
	Kind() Kind
	// Get returns a copy of the entity stored under key.
	Get(key K) (E, bool)
	// Contains reports whether key is live.
	Contains(key K) bool
	// Len returns the number of live entities.
	Len() int
	// All yields every live (key, entity) pair. Order is unspecified.
	All() iter.Seq2[K, E]
	// Keys yields every live key. Order is unspecified.
	Keys() iter.Seq[K]
}

// Storage is mutable access to a keyed collection of entities.
type Storage[K comparable, E any] interface {
	Reader[K, E]
	// GetMut returns a pointer to the stored entity. The pointer is valid
	// until the next Insert, InsertWithKey or Remove on the same storage.
	GetMut(key K) (*E, bool)
	// Remove deletes key and returns the entity that was stored under it.
	Remove(key K) (E, bool)
}

// Intrinsic is a storage that assigns keys itself.
type Intrinsic[K comparable, E any] interface {
	Storage[K, E]
	Insert(entity E) K
}

// Extrinsic is a storage that accepts caller-assigned keys.
type Extrinsic[K comparable, E any] interface {
	Storage[K, E]
	// InsertWithKey stores entity under key and returns the displaced occupant, if any.
	InsertWithKey(key K, entity E) (E, bool)
}

// KeyGenerator produces keys that a backend will never assign on its own
// before the generator's owner commits.
type KeyGenerator[K comparable] interface {
	Next() K
}

// Synthesizer is implemented by backends able to seed a KeyGenerator.
type Synthesizer[K comparable] interface {
	SyntheticKeys() KeyGenerator[K]
}

// Cloner is implemented by backends that can produce an independent deep copy.
type Cloner[K comparable, E any] interface {
	Clone() Storage[K, E]
}
