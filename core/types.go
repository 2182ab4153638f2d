// SPDX-License-Identifier: MIT
// Package: lvmesh/core
//
// types.go — sentinel errors, entity keys and entity records.

package core

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/storage"
)

// Sentinel errors for mesh topology and Core assembly.
var (
	// ErrEntityNotFound indicates a key that does not name a live entity.
	ErrEntityNotFound = errors.New("core: entity not found")

	// ErrTopologyMalformed indicates the mesh violates a structural invariant.
	ErrTopologyMalformed = errors.New("core: topology malformed")

	// ErrTopologyConflict indicates an operation whose structural precondition
	// does not hold (for example a face over an arc that already has one).
	ErrTopologyConflict = errors.New("core: topology conflict")

	// ErrGeometry indicates a geometric computation failed. Core never
	// returns it; it is reserved for collaborators that compute positions.
	ErrGeometry = errors.New("core: geometry error")

	// ErrSlotFused indicates a storage slot that already holds a storage.
	ErrSlotFused = errors.New("core: storage slot already fused")

	// ErrIncompleteCore indicates a Core missing at least one storage.
	ErrIncompleteCore = errors.New("core: core is incomplete")

	// ErrNilStorage indicates a nil storage passed to a Fuse method.
	ErrNilStorage = errors.New("core: nil storage")

	// ErrStorageKind indicates a storage that cannot serve the requested role.
	ErrStorageKind = errors.New("core: unsupported storage kind")
)

// VertexKey addresses a vertex.
type VertexKey storage.SlotKey

// IsZero reports whether k is the absent key.
func (k VertexKey) IsZero() bool { return k.Generation == 0 }

// String renders the key as "v<index>#<generation>".
func (k VertexKey) String() string { return "v" + storage.SlotKey(k).String() }

// Compare orders vertex keys by index, then generation.
func (k VertexKey) Compare(o VertexKey) int {
	if c := cmp.Compare(k.Index, o.Index); c != 0 {
		return c
	}

	return cmp.Compare(k.Generation, o.Generation)
}

// EdgeKey addresses an edge.
type EdgeKey storage.SlotKey

// IsZero reports whether k is the absent key.
func (k EdgeKey) IsZero() bool { return k.Generation == 0 }

// String renders the key as "e<index>#<generation>".
func (k EdgeKey) String() string { return "e" + storage.SlotKey(k).String() }

// Compare orders edge keys by index, then generation.
func (k EdgeKey) Compare(o EdgeKey) int {
	return VertexKey(k).Compare(VertexKey(o))
}

// FaceKey addresses a face.
type FaceKey storage.SlotKey

// IsZero reports whether k is the absent key.
func (k FaceKey) IsZero() bool { return k.Generation == 0 }

// String renders the key as "f<index>#<generation>".
func (k FaceKey) String() string { return "f" + storage.SlotKey(k).String() }

// Compare orders face keys by index, then generation.
func (k FaceKey) Compare(o FaceKey) int {
	return VertexKey(k).Compare(VertexKey(o))
}

// ArcKey addresses the arc leaving Source towards Destination.
// At most one arc exists per ordered vertex pair.
type ArcKey struct {
	Source      VertexKey
	Destination VertexKey
}

// IsZero reports whether k is the absent key.
func (k ArcKey) IsZero() bool { return k.Source.IsZero() && k.Destination.IsZero() }

// Opposite returns the key of the arc running the other way along the same edge.
func (k ArcKey) Opposite() ArcKey {
	return ArcKey{Source: k.Destination, Destination: k.Source}
}

// String renders the key as "source->destination".
func (k ArcKey) String() string {
	return fmt.Sprintf("%s->%s", k.Source, k.Destination)
}

// Compare orders arc keys by source, then destination.
func (k ArcKey) Compare(o ArcKey) int {
	if c := k.Source.Compare(o.Source); c != 0 {
		return c
	}

	return k.Destination.Compare(o.Destination)
}

// Vertex is a mesh vertex. Arc is its leading outgoing arc; it is zero only
// while the vertex is under construction inside a mutation.
type Vertex[V any] struct {
	Data V
	Arc  ArcKey
}

// Arc is a directed half-edge. Next and Previous link the arcs of the face
// the arc bounds; they are zero on boundary arcs (zero Face).
type Arc[A any] struct {
	Data     A
	Next     ArcKey
	Previous ArcKey
	Edge     EdgeKey
	Face     FaceKey
}

// Edge pairs an arc with its opposite. Arc names one of the two.
type Edge[E any] struct {
	Data E
	Arc  ArcKey
}

// Face is a closed ring of arcs. Arc names any arc of the ring.
type Face[F any] struct {
	Data F
	Arc  ArcKey
}
