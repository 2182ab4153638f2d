// SPDX-License-Identifier: MIT
// Package storage provides keyed entity storage for mesh entities and a
// journal that stages mutations against a storage until they are committed
// or discarded.
//
// 🚀 What is storage?
//
//	A small set of interfaces over two concrete backends:
//	  • SlotMap - dense, generational keys assigned by the backend (intrinsic keys).
//	  • HashMap - caller-assigned keys of any comparable type (extrinsic keys).
//	and a Journal that wraps either backend and records every change in an
//	ordered log instead of touching the backend.
//
// ✨ Key features:
//   - Reader / Storage / Intrinsic / Extrinsic split read-only access from
//     mutable access and intrinsic from extrinsic key assignment.
//   - Generational slot keys: a removed key never becomes live again.
//   - Journal reads through its log: Get, Len and All always reflect staged
//     changes, while the backend stays untouched until Commit.
//   - Journal.Insert hands out synthetic keys that cannot collide with keys
//     the backend assigns during Commit; Commit reports a Rekeying from every
//     provisional key to the key it finally received.
//   - Journal.Abort returns the backend exactly as it was.
//
// Errors:
//
//	Storage operations never return errors: absence is reported as (zero, false).
//	Programmer errors and fatal conditions panic with a sentinel:
//	  ErrKeySpaceExhausted - synthetic key generation ran out of generations.
//	  ErrNoKeyGenerator    - Journal.Insert over a backend without key synthesis.
//	  ErrJournalClosed     - journal used after Commit or Abort.
//
// Concurrency:
//
//	Nothing here is safe for concurrent use. A storage (and a journal over it)
//	is owned by exactly one mutation session at a time.
//
// Complexity:
//
//	SlotMap Insert/Get/Remove are O(1). HashMap operations are O(1) average.
//	Journal Get/Insert/Remove are O(1) amortized; Len and All are O(n + log).
//	Commit is O(log) backend operations.
package storage
