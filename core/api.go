// SPDX-License-Identifier: MIT
// Package: lvmesh/core
//
// api.go — Core: one storage slot per entity type.
//
// Contract:
//   • A slot is either empty (nil) or fused (owns a storage).
//   • Fuse* on a fused slot → ErrSlotFused; Fuse*(nil) → ErrNilStorage.
//   • Unfuse requires all four slots (ErrIncompleteCore) and empties the Core.
//   • Readers returned by Vertices/Arcs/Edges/Faces are nil for empty slots.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/storage"
)

// Source is read-only access to the four entity storages of a mesh.
// It is implemented by *Core and by an in-flight mutation.
type Source[V, A, E, F any] interface {
	Vertices() storage.Reader[VertexKey, Vertex[V]]
	Arcs() storage.Reader[ArcKey, Arc[A]]
	Edges() storage.Reader[EdgeKey, Edge[E]]
	Faces() storage.Reader[FaceKey, Face[F]]
}

// Core owns up to four entity storages.
type Core[V, A, E, F any] struct {
	vertices storage.Storage[VertexKey, Vertex[V]]
	arcs     storage.Storage[ArcKey, Arc[A]]
	edges    storage.Storage[EdgeKey, Edge[E]]
	faces    storage.Storage[FaceKey, Face[F]]
}

// Empty returns a Core with no fused storage.
func Empty[V, A, E, F any]() *Core[V, A, E, F] {
	return &Core[V, A, E, F]{}
}

// New returns a complete Core over empty canonical backends.
func New[V, A, E, F any]() *Core[V, A, E, F] {
	return &Core[V, A, E, F]{
		vertices: storage.NewSlotMap[VertexKey, Vertex[V]](),
		arcs:     storage.NewHashMap[ArcKey, Arc[A]](),
		edges:    storage.NewSlotMap[EdgeKey, Edge[E]](),
		faces:    storage.NewSlotMap[FaceKey, Face[F]](),
	}
}

// Fuse returns a complete Core over the given storages.
func Fuse[V, A, E, F any](
	vertices storage.Storage[VertexKey, Vertex[V]],
	arcs storage.Storage[ArcKey, Arc[A]],
	edges storage.Storage[EdgeKey, Edge[E]],
	faces storage.Storage[FaceKey, Face[F]],
) (*Core[V, A, E, F], error) {
	c := Empty[V, A, E, F]()
	if err := c.FuseVertices(vertices); err != nil {
		return nil, err
	}
	if err := c.FuseArcs(arcs); err != nil {
		return nil, err
	}
	if err := c.FuseEdges(edges); err != nil {
		return nil, err
	}
	if err := c.FuseFaces(faces); err != nil {
		return nil, err
	}

	return c, nil
}

// fuseSlot attaches s to *slot unless the slot is already fused.
func fuseSlot[K comparable, E any](method string, slot *storage.Storage[K, E], s storage.Storage[K, E]) error {
	if s == nil {
		return fmt.Errorf("%s: %w", method, ErrNilStorage)
	}
	if *slot != nil {
		return fmt.Errorf("%s: %w", method, ErrSlotFused)
	}
	*slot = s

	return nil
}

// FuseVertices attaches the vertex storage.
func (c *Core[V, A, E, F]) FuseVertices(s storage.Storage[VertexKey, Vertex[V]]) error {
	return fuseSlot("FuseVertices", &c.vertices, s)
}

// FuseArcs attaches the arc storage.
func (c *Core[V, A, E, F]) FuseArcs(s storage.Storage[ArcKey, Arc[A]]) error {
	return fuseSlot("FuseArcs", &c.arcs, s)
}

// FuseEdges attaches the edge storage.
func (c *Core[V, A, E, F]) FuseEdges(s storage.Storage[EdgeKey, Edge[E]]) error {
	return fuseSlot("FuseEdges", &c.edges, s)
}

// FuseFaces attaches the face storage.
func (c *Core[V, A, E, F]) FuseFaces(s storage.Storage[FaceKey, Face[F]]) error {
	return fuseSlot("FuseFaces", &c.faces, s)
}

// IsComplete reports whether all four slots are fused.
func (c *Core[V, A, E, F]) IsComplete() bool {
	return c.vertices != nil && c.arcs != nil && c.edges != nil && c.faces != nil
}

// Unfuse moves the four storages out of a complete Core and leaves it empty.
func (c *Core[V, A, E, F]) Unfuse() (
	storage.Storage[VertexKey, Vertex[V]],
	storage.Storage[ArcKey, Arc[A]],
	storage.Storage[EdgeKey, Edge[E]],
	storage.Storage[FaceKey, Face[F]],
	error,
) {
	if !c.IsComplete() {
		return nil, nil, nil, nil, fmt.Errorf("Unfuse: %w", ErrIncompleteCore)
	}
	vertices, arcs, edges, faces := c.vertices, c.arcs, c.edges, c.faces
	*c = Core[V, A, E, F]{}

	return vertices, arcs, edges, faces, nil
}

// Vertices returns read-only access to the vertex storage.
func (c *Core[V, A, E, F]) Vertices() storage.Reader[VertexKey, Vertex[V]] {
	if c.vertices == nil {
		return nil
	}

	return c.vertices
}

// Arcs returns read-only access to the arc storage.
func (c *Core[V, A, E, F]) Arcs() storage.Reader[ArcKey, Arc[A]] {
	if c.arcs == nil {
		return nil
	}

	return c.arcs
}

// Edges returns read-only access to the edge storage.
func (c *Core[V, A, E, F]) Edges() storage.Reader[EdgeKey, Edge[E]] {
	if c.edges == nil {
		return nil
	}

	return c.edges
}

// Faces returns read-only access to the face storage.
func (c *Core[V, A, E, F]) Faces() storage.Reader[FaceKey, Face[F]] {
	if c.faces == nil {
		return nil
	}

	return c.faces
}

// VerticesMut returns mutable access to the vertex storage.
func (c *Core[V, A, E, F]) VerticesMut() storage.Storage[VertexKey, Vertex[V]] { return c.vertices }

// ArcsMut returns mutable access to the arc storage.
func (c *Core[V, A, E, F]) ArcsMut() storage.Storage[ArcKey, Arc[A]] { return c.arcs }

// EdgesMut returns mutable access to the edge storage.
func (c *Core[V, A, E, F]) EdgesMut() storage.Storage[EdgeKey, Edge[E]] { return c.edges }

// FacesMut returns mutable access to the face storage.
func (c *Core[V, A, E, F]) FacesMut() storage.Storage[FaceKey, Face[F]] { return c.faces }
