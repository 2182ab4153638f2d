// SPDX-License-Identifier: MIT
// Package: lvmesh/storage
//
// journal.go — staged mutations over any backend.
//
// A Journal records Insert/Remove/Write entries per key in an ordered log.
// Reads consult the newest entry of a key first and fall back to the backend.
// Nothing reaches the backend until Commit; Abort hands the backend back as-is.
//
// Log shape:
//   • order - keys in order of their first log entry (commit order).
//   • log   - key → entries, oldest first. Only the newest entry matters for
//             reads and for Commit; older entries are kept so Pending() can
//             report the full history length.

package storage

import (
	"fmt"
	"iter"
)

// Op is the kind of a journal entry.
type Op uint8

const (
	// OpInsert stages a new entity (or a replacement under a caller key).
	OpInsert Op = iota + 1
	// OpRemove stages a deletion.
	OpRemove
	// OpWrite stages an in-place modification obtained through GetMut.
	OpWrite
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

type record[E any] struct {
	op     Op
	entity E
}

// Journal stages mutations against a backend storage.
//
// A Journal is itself a Storage: it implements both Insert (when the backend
// is a Synthesizer) and InsertWithKey, so one type serves every entity kind.
type Journal[K comparable, E any] struct {
	backend Storage[K, E]
	keys    KeyGenerator[K]
	order   []K
	log     map[K][]*record[E]
	pending int
	closed  bool
}

// NewJournal wraps backend. The backend must not be used directly until the
// journal is committed or aborted.
func NewJournal[K comparable, E any](backend Storage[K, E]) *Journal[K, E] {
	j := &Journal[K, E]{
		backend: backend,
		log:     make(map[K][]*record[E]),
	}
	if s, ok := backend.(Synthesizer[K]); ok {
		j.keys = s.SyntheticKeys()
	}

	return j
}

func (j *Journal[K, E]) live() {
	if j.closed {
		panic(ErrJournalClosed)
	}
}

// Kind reports the backend kind.
func (j *Journal[K, E]) Kind() Kind { return j.backend.Kind() }

// Synthesizes reports whether Insert is available.
func (j *Journal[K, E]) Synthesizes() bool { return j.keys != nil }

// Pending returns the number of log entries recorded so far.
func (j *Journal[K, E]) Pending() int { return j.pending }

func (j *Journal[K, E]) append(key K, op Op, entity E) *record[E] {
	entries, seen := j.log[key]
	if !seen {
		j.order = append(j.order, key)
	}
	r := &record[E]{op: op, entity: entity}
	j.log[key] = append(entries, r)
	j.pending++

	return r
}

func (j *Journal[K, E]) latest(key K) *record[E] {
	entries := j.log[key]
	if len(entries) == 0 {
		return nil
	}

	return entries[len(entries)-1]
}

// Get returns the newest staged state of key, falling back to the backend.
func (j *Journal[K, E]) Get(key K) (E, bool) {
	j.live()
	if r := j.latest(key); r != nil {
		if r.op == OpRemove {
			var zero E
			return zero, false
		}
		return r.entity, true
	}

	return j.backend.Get(key)
}

// Contains reports whether key is live in the staged view.
func (j *Journal[K, E]) Contains(key K) bool {
	_, ok := j.Get(key)

	return ok
}

// GetMut copies the visible entity into a new OpWrite entry and returns a
// pointer to that copy. The backend entity is never touched. The pointer stays
// valid for the life of the journal, but only the newest entry for key is
// observed by reads and by Commit.
func (j *Journal[K, E]) GetMut(key K) (*E, bool) {
	entity, ok := j.Get(key)
	if !ok {
		return nil, false
	}
	r := j.append(key, OpWrite, entity)

	return &r.entity, true
}

// Insert stages entity under a fresh synthetic key. Panics with
// ErrNoKeyGenerator if the backend cannot synthesize keys.
func (j *Journal[K, E]) Insert(entity E) K {
	j.live()
	if j.keys == nil {
		panic(fmt.Errorf("journal over %s backend: %w", j.backend.Kind(), ErrNoKeyGenerator))
	}
	key := j.keys.Next()
	j.append(key, OpInsert, entity)

	return key
}

// InsertWithKey stages entity under key and returns the visible occupant.
func (j *Journal[K, E]) InsertWithKey(key K, entity E) (E, bool) {
	occupant, ok := j.Get(key)
	j.append(key, OpInsert, entity)

	return occupant, ok
}

// Remove stages a deletion. An entry is always appended, even when key is not
// visible, so the deletion also applies to the backend at commit time.
func (j *Journal[K, E]) Remove(key K) (E, bool) {
	occupant, ok := j.Get(key)
	var zero E
	j.append(key, OpRemove, zero)

	return occupant, ok
}

// Len returns the staged entity count: backend entries minus staged removals
// of backend keys plus staged inserts of keys the backend lacks.
func (j *Journal[K, E]) Len() int {
	j.live()
	n := j.backend.Len()
	for _, key := range j.order {
		visible := j.latest(key).op != OpRemove
		stored := j.backend.Contains(key)
		switch {
		case visible && !stored:
			n++
		case !visible && stored:
			n--
		}
	}

	return n
}

// All yields backend entries without a log entry, then the newest staged
// state of each logged key in log order, skipping removals.
func (j *Journal[K, E]) All() iter.Seq2[K, E] {
	j.live()
	return func(yield func(K, E) bool) {
		for key, entity := range j.backend.All() {
			if _, logged := j.log[key]; logged {
				continue
			}
			if !yield(key, entity) {
				return
			}
		}
		for _, key := range j.order {
			r := j.latest(key)
			if r.op == OpRemove {
				continue
			}
			if !yield(key, r.entity) {
				return
			}
		}
	}
}

// Keys yields every key visible through All.
func (j *Journal[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range j.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Commit applies the newest entry of every logged key to the backend, in log
// order, and returns the backend with the rekeying of every surviving logged
// key.
//
// Implementation:
//   - Stage 1: OpRemove → remove the key from the backend if present.
//   - Stage 2: OpInsert/OpWrite → overwrite the backend occupant if present;
//     otherwise insert under the same key (Extrinsic backend) or under a
//     backend-assigned key (Intrinsic backend).
//
// Complexity: O(len(log keys)) backend operations.
//
// The journal is closed afterwards.
func (j *Journal[K, E]) Commit() (Storage[K, E], Rekeying[K]) {
	return j.commit(nil)
}

// Abort discards the log and returns the untouched backend.
// The journal is closed afterwards.
func (j *Journal[K, E]) Abort() Storage[K, E] {
	j.live()
	backend := j.backend
	j.close()

	return backend
}

func (j *Journal[K, E]) close() {
	j.closed = true
	j.log = nil
	j.order = nil
}

func (j *Journal[K, E]) commit(rekey func(K, E) (K, E)) (Storage[K, E], Rekeying[K]) {
	j.live()
	rekeying := make(Rekeying[K], len(j.order))
	for _, key := range j.order {
		r := j.latest(key)
		if r.op == OpRemove {
			j.backend.Remove(key)
			continue
		}
		target, entity := key, r.entity
		if rekey != nil {
			target, entity = rekey(key, entity)
		}
		if p, ok := j.backend.GetMut(target); ok {
			*p = entity
			rekeying[key] = target
			continue
		}
		switch b := j.backend.(type) {
		case Extrinsic[K, E]:
			b.InsertWithKey(target, entity)
			rekeying[key] = target
		case Intrinsic[K, E]:
			rekeying[key] = b.Insert(entity)
		default:
			panic(fmt.Errorf("journal: %s backend accepts no inserts", j.backend.Kind()))
		}
	}
	backend := j.backend
	j.close()

	return backend, rekeying
}

// CommitWithRekeying commits a journal whose keys and entities refer to keys
// of another storage that has already been committed. rekey maps each staged
// (key, entity) through foreign before it is applied; removals are applied
// under their original key since only backend keys can be removed from the
// backend.
func CommitWithRekeying[K comparable, E any, F comparable](
	j *Journal[K, E],
	foreign Rekeying[F],
	rekey func(key K, entity E, foreign Rekeying[F]) (K, E),
) (Storage[K, E], Rekeying[K]) {
	return j.commit(func(key K, entity E) (K, E) {
		return rekey(key, entity, foreign)
	})
}
