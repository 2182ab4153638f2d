// SPDX-License-Identifier: MIT
// Package: lvmesh/graph
//
// graph.go — Graph type, construction, reads and the session runner.
//
// Contract:
//   • A Graph always owns a complete Core that passed commit validation.
//   • Reads take the read lock; every edit holds the write lock for one session.
//   • run is the only place a session is opened; it reinstalls whatever Core
//     the session hands back.

package graph

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/mutation"
)

// Graph owns a consistent half-edge mesh.
type Graph[V, A, E, F any] struct {
	mu   sync.RWMutex // guards core
	core *core.Core[V, A, E, F]
	log  logrus.FieldLogger
}

// New returns an empty Graph over the canonical storage backends.
// Complexity: O(1).
func New[V, A, E, F any](opts ...GraphOption) *Graph[V, A, E, F] {
	cfg := newConfig(opts...)

	return &Graph[V, A, E, F]{core: core.New[V, A, E, F](), log: cfg.logger}
}

// FromCore takes ownership of c after validating it with an empty session.
// On success c is left empty; on error c is restored and the Graph is nil.
//
// Errors:
//   - core.ErrIncompleteCore, core.ErrStorageKind if no session can open on c.
//   - an error matching core.ErrTopologyMalformed if c is inconsistent.
func FromCore[V, A, E, F any](c *core.Core[V, A, E, F], opts ...GraphOption) (*Graph[V, A, E, F], error) {
	cfg := newConfig(opts...)
	m, err := mutation.New(c, mutation.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("FromCore: %w", err)
	}
	checked, _, err := m.Commit()
	if err != nil {
		*c = *checked
		return nil, fmt.Errorf("FromCore: %w", err)
	}

	return &Graph[V, A, E, F]{core: checked, log: cfg.logger}, nil
}

// VertexCount returns the number of vertices.
func (g *Graph[V, A, E, F]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Vertices().Len()
}

// ArcCount returns the number of arcs (twice the number of edges).
func (g *Graph[V, A, E, F]) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Arcs().Len()
}

// EdgeCount returns the number of edges.
func (g *Graph[V, A, E, F]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Edges().Len()
}

// FaceCount returns the number of faces.
func (g *Graph[V, A, E, F]) FaceCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Faces().Len()
}

// Vertex returns a copy of the vertex at k.
func (g *Graph[V, A, E, F]) Vertex(k core.VertexKey) (core.Vertex[V], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Vertices().Get(k)
}

// Arc returns a copy of the arc at k.
func (g *Graph[V, A, E, F]) Arc(k core.ArcKey) (core.Arc[A], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Arcs().Get(k)
}

// Edge returns a copy of the edge at k.
func (g *Graph[V, A, E, F]) Edge(k core.EdgeKey) (core.Edge[E], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Edges().Get(k)
}

// Face returns a copy of the face at k.
func (g *Graph[V, A, E, F]) Face(k core.FaceKey) (core.Face[F], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.core.Faces().Get(k)
}

// VertexKeys returns every vertex key in ascending order.
func (g *Graph[V, A, E, F]) VertexKeys() []core.VertexKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.SortedFunc(g.core.Vertices().Keys(), core.VertexKey.Compare)
}

// EdgeKeys returns every edge key in ascending order.
func (g *Graph[V, A, E, F]) EdgeKeys() []core.EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.SortedFunc(g.core.Edges().Keys(), core.EdgeKey.Compare)
}

// FaceKeys returns every face key in ascending order.
func (g *Graph[V, A, E, F]) FaceKeys() []core.FaceKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.SortedFunc(g.core.Faces().Keys(), core.FaceKey.Compare)
}

// FaceVertices returns the vertices around f, starting at the source of its
// leading arc.
func (g *Graph[V, A, E, F]) FaceVertices(f core.FaceKey) ([]core.VertexKey, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return core.FaceVertices[V, A, E, F](g.core, f)
}

// Arity returns the number of sides of f.
func (g *Graph[V, A, E, F]) Arity(f core.FaceKey) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ring, err := core.FaceRing[V, A, E, F](g.core, f)
	if err != nil {
		return 0, err
	}

	return len(ring), nil
}

// View calls fn with read access to the mesh. fn must not retain src.
func (g *Graph[V, A, E, F]) View(fn func(src core.Source[V, A, E, F])) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.core)
}

// Clone returns an independent Graph with a copy of every storage.
// Entity data is copied by value.
func (g *Graph[V, A, E, F]) Clone() (*Graph[V, A, E, F], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, err := g.core.Clone()
	if err != nil {
		return nil, fmt.Errorf("Clone: %w", err)
	}

	return &Graph[V, A, E, F]{core: c, log: g.log}, nil
}

// Mutate runs fn in one session and commits it. On error the Graph is
// unchanged, except after a failed Immediate session, which leaves it empty.
// fn must not call Commit or Abort; if it does, the Graph keeps the Core the
// session ended with and Mutate returns an error matching mutation.ErrClosed.
func (g *Graph[V, A, E, F]) Mutate(fn func(m *mutation.Mutation[V, A, E, F]) error, opts ...mutation.Option) (mutation.Rekeying, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, rk, err := run(g, "Mutate", func(m *mutation.Mutation[V, A, E, F]) (struct{}, error) {
		return struct{}{}, fn(m)
	}, opts...)

	return rk, err
}

// run opens a session on g's Core, passes it to fn and commits. The caller
// holds g.mu for writing.
func run[V, A, E, F, T any](
	g *Graph[V, A, E, F],
	method string,
	fn func(*mutation.Mutation[V, A, E, F]) (T, error),
	opts ...mutation.Option,
) (T, mutation.Rekeying, error) {
	var zero T
	m, err := mutation.New(g.core, append([]mutation.Option{mutation.WithLogger(g.log)}, opts...)...)
	if err != nil {
		return zero, mutation.Rekeying{}, fmt.Errorf("%s: %w", method, err)
	}
	c, out, rk, err := mutation.CommitWith(m, fn)
	if c == nil {
		g.log.WithFields(logrus.Fields{"mutation": m.ID(), "op": method}).Warn("mesh lost by failed session; graph reset")
		c = core.New[V, A, E, F]()
	}
	g.core = c
	if err != nil {
		return zero, mutation.Rekeying{}, fmt.Errorf("%s: %w", method, err)
	}

	return out, rk, nil
}
