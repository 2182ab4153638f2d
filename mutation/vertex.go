// SPDX-License-Identifier: MIT

package mutation

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// InsertVertex inserts a vertex with no leading arc. The vertex must receive
// one (ConnectOutgoingArc, or any edge/face primitive) before Commit.
// In Transacted mode the returned key is provisional.
func (m *Mutation[V, A, E, F]) InsertVertex(data V) core.VertexKey {
	if m.closed {
		panic(fmt.Errorf("InsertVertex: %w", ErrClosed))
	}

	return m.vertices.Insert(core.Vertex[V]{Data: data})
}

// ConnectOutgoingArc makes ab the leading arc of a.
func (m *Mutation[V, A, E, F]) ConnectOutgoingArc(a core.VertexKey, ab core.ArcKey) error {
	if err := m.usable(); err != nil {
		return err
	}
	v, ok := m.vertices.GetMut(a)
	if !ok {
		return m.fail(fmt.Errorf("ConnectOutgoingArc(%s): %w", a, core.ErrEntityNotFound))
	}
	v.Arc = ab

	return nil
}

// DisconnectOutgoingArc clears the leading arc of a and returns it (zero if
// a had none).
func (m *Mutation[V, A, E, F]) DisconnectOutgoingArc(a core.VertexKey) (core.ArcKey, error) {
	if err := m.usable(); err != nil {
		return core.ArcKey{}, err
	}
	v, ok := m.vertices.GetMut(a)
	if !ok {
		return core.ArcKey{}, m.fail(fmt.Errorf("DisconnectOutgoingArc(%s): %w", a, core.ErrEntityNotFound))
	}
	ab := v.Arc
	v.Arc = core.ArcKey{}

	return ab, nil
}

// leadIfBare connects ab as a's leading arc when a has none.
func (m *Mutation[V, A, E, F]) leadIfBare(a core.VertexKey, ab core.ArcKey) {
	if v, ok := m.vertices.Get(a); ok && v.Arc.IsZero() {
		if p, ok := m.vertices.GetMut(a); ok {
			p.Arc = ab
		}
	}
}
