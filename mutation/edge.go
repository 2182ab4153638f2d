// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// edge.go — composite edges (an edge plus its two arcs), edge split and
// join, and arc access.

package mutation

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// GetOrInsertEdge returns the edge joining a and b, inserting it together
// with arcs a->b and b->a when it does not exist. Either endpoint without a
// leading arc receives the new arc leaving it.
//
// Errors:
//   - core.ErrEntityNotFound if a or b is not live.
//   - core.ErrTopologyConflict if a == b.
//   - core.ErrTopologyMalformed if only one of the two arcs exists.
func (m *Mutation[V, A, E, F]) GetOrInsertEdge(a, b core.VertexKey, data E) (core.EdgeKey, error) {
	if err := m.usable(); err != nil {
		return core.EdgeKey{}, err
	}
	e, _, err := m.getOrInsertEdge(a, b, data)
	if err != nil {
		return core.EdgeKey{}, m.fail(err)
	}

	return e, nil
}

// getOrInsertEdge reports whether the edge was inserted. It does not poison
// the session; callers do.
func (m *Mutation[V, A, E, F]) getOrInsertEdge(a, b core.VertexKey, data E) (core.EdgeKey, bool, error) {
	if a == b {
		return core.EdgeKey{}, false, fmt.Errorf("edge %s-%s: self loop: %w", a, b, core.ErrTopologyConflict)
	}
	for _, v := range [2]core.VertexKey{a, b} {
		if !m.vertices.Contains(v) {
			return core.EdgeKey{}, false, fmt.Errorf("edge %s-%s: vertex %s: %w", a, b, v, core.ErrEntityNotFound)
		}
	}
	ab := core.ArcKey{Source: a, Destination: b}
	ba := ab.Opposite()
	arc, abOK := m.arcs.Get(ab)
	_, baOK := m.arcs.Get(ba)
	switch {
	case abOK && baOK:
		return arc.Edge, false, nil
	case abOK || baOK:
		return core.EdgeKey{}, false, fmt.Errorf("edge %s-%s: unpaired arc: %w", a, b, core.ErrTopologyMalformed)
	}

	e := m.edges.Insert(core.Edge[E]{Data: data, Arc: ab})
	m.arcs.InsertWithKey(ab, core.Arc[A]{Edge: e})
	m.arcs.InsertWithKey(ba, core.Arc[A]{Edge: e})
	m.leadIfBare(a, ab)
	m.leadIfBare(b, ba)

	return e, true, nil
}

// arcMut returns a mutable arc or core.ErrEntityNotFound.
func (m *Mutation[V, A, E, F]) arcMut(ab core.ArcKey) (*core.Arc[A], error) {
	arc, ok := m.arcs.GetMut(ab)
	if !ok {
		return nil, fmt.Errorf("arc %s: %w", ab, core.ErrEntityNotFound)
	}

	return arc, nil
}

// link makes ring a closed cycle bounding f.
func (m *Mutation[V, A, E, F]) link(ring []core.ArcKey, f core.FaceKey) error {
	n := len(ring)
	for i, ab := range ring {
		arc, err := m.arcMut(ab)
		if err != nil {
			return err
		}
		arc.Face = f
		arc.Next = ring[(i+1)%n]
		arc.Previous = ring[(i+n-1)%n]
	}

	return nil
}

// detach clears the face and links of ab, leaving a boundary arc.
func (m *Mutation[V, A, E, F]) detach(ab core.ArcKey) error {
	arc, err := m.arcMut(ab)
	if err != nil {
		return err
	}
	arc.Face = core.FaceKey{}
	arc.Next = core.ArcKey{}
	arc.Previous = core.ArcKey{}

	return nil
}

// SplitEdge inserts a vertex carrying data in the middle of the planned edge
// a-b and returns it. The edge keeps the a side; a new edge with a copy of
// its data takes the b side. Arcs inherit the data of the arc they replace,
// and the faces on both sides gain the new vertex in their rings.
//
// Errors:
//   - core.ErrEntityNotFound if the edge or its arcs are gone.
func (m *Mutation[V, A, E, F]) SplitEdge(cache EdgeSplitCache, data V) (core.VertexKey, error) {
	if err := m.usable(); err != nil {
		return core.VertexKey{}, err
	}
	ab := cache.arc
	ba := ab.Opposite()
	edge, ok := m.edges.Get(cache.edge)
	if !ok || (edge.Arc != ab && edge.Arc != ba) {
		return core.VertexKey{}, m.fail(fmt.Errorf("SplitEdge(%s): %w", cache.edge, core.ErrEntityNotFound))
	}
	abArc, abOK := m.arcs.Remove(ab)
	baArc, baOK := m.arcs.Remove(ba)
	if !abOK || !baOK {
		return core.VertexKey{}, m.fail(fmt.Errorf("SplitEdge(%s): arc %s: %w", cache.edge, ab, core.ErrEntityNotFound))
	}

	c := m.InsertVertex(data)
	ac := core.ArcKey{Source: ab.Source, Destination: c}
	cb := core.ArcKey{Source: c, Destination: ab.Destination}
	bc, ca := cb.Opposite(), ac.Opposite()
	tail := m.edges.Insert(core.Edge[E]{Data: edge.Data, Arc: cb})
	if e, ok := m.edges.GetMut(cache.edge); ok {
		e.Arc = ac
	}
	m.arcs.InsertWithKey(ac, core.Arc[A]{Data: abArc.Data, Edge: cache.edge})
	m.arcs.InsertWithKey(ca, core.Arc[A]{Data: baArc.Data, Edge: cache.edge})
	m.arcs.InsertWithKey(cb, core.Arc[A]{Data: abArc.Data, Edge: tail})
	m.arcs.InsertWithKey(bc, core.Arc[A]{Data: baArc.Data, Edge: tail})
	if err := m.ConnectOutgoingArc(c, cb); err != nil {
		return core.VertexKey{}, err
	}

	for _, side := range [2]struct {
		old           core.ArcKey
		arc           core.Arc[A]
		first, second core.ArcKey
	}{{ab, abArc, ac, cb}, {ba, baArc, bc, ca}} {
		if err := m.splice(side.old, side.arc, side.first, side.second); err != nil {
			return core.VertexKey{}, m.fail(fmt.Errorf("SplitEdge(%s): %w", cache.edge, err))
		}
	}

	return c, nil
}

// splice replaces the removed arc old (whose record was arc) by the path
// first, second: in its face ring and as a leading arc.
func (m *Mutation[V, A, E, F]) splice(old core.ArcKey, arc core.Arc[A], first, second core.ArcKey) error {
	if v, ok := m.vertices.Get(old.Source); ok && v.Arc == old {
		if p, ok := m.vertices.GetMut(old.Source); ok {
			p.Arc = first
		}
	}
	if arc.Face.IsZero() {
		return nil
	}
	prev, err := m.arcMut(arc.Previous)
	if err != nil {
		return err
	}
	prev.Next = first
	next, err := m.arcMut(arc.Next)
	if err != nil {
		return err
	}
	next.Previous = second
	a, err := m.arcMut(first)
	if err != nil {
		return err
	}
	a.Face, a.Previous, a.Next = arc.Face, arc.Previous, second
	b, err := m.arcMut(second)
	if err != nil {
		return err
	}
	b.Face, b.Previous, b.Next = arc.Face, first, arc.Next
	if face, ok := m.faces.GetMut(arc.Face); ok && face.Arc == old {
		face.Arc = first
	}

	return nil
}

// JoinEdges inserts the planned quad between two edges and returns it.
func (m *Mutation[V, A, E, F]) JoinEdges(cache EdgeJoinCache[F]) (core.FaceKey, error) {
	f, err := m.InsertFace(cache.face)
	if err != nil {
		return core.FaceKey{}, fmt.Errorf("JoinEdges: %w", err)
	}

	return f, nil
}

// removeEdge deletes an edge and both of its arcs.
func (m *Mutation[V, A, E, F]) removeEdge(e core.EdgeKey, ab core.ArcKey) error {
	if _, ok := m.edges.Remove(e); !ok {
		return fmt.Errorf("edge %s: %w", e, core.ErrEntityNotFound)
	}
	for _, k := range [2]core.ArcKey{ab, ab.Opposite()} {
		if _, ok := m.arcs.Remove(k); !ok {
			return fmt.Errorf("edge %s: arc %s: %w", e, k, core.ErrEntityNotFound)
		}
	}

	return nil
}
