// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// mutation.go — session lifecycle: New, Commit, Abort, CommitWith.

package mutation

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/storage"
)

// Mutation is an exclusive editing session over a mesh.
// It implements core.Source, so caches can be snapshotted from it mid-session.
type Mutation[V, A, E, F any] struct {
	id   string
	mode Mode
	log  *logrus.Entry

	vertices storage.Intrinsic[core.VertexKey, core.Vertex[V]]
	arcs     storage.Extrinsic[core.ArcKey, core.Arc[A]]
	edges    storage.Intrinsic[core.EdgeKey, core.Edge[E]]
	faces    storage.Intrinsic[core.FaceKey, core.Face[F]]

	// Journals behind the storages above; nil in Immediate mode.
	vj *storage.Journal[core.VertexKey, core.Vertex[V]]
	aj *storage.Journal[core.ArcKey, core.Arc[A]]
	ej *storage.Journal[core.EdgeKey, core.Edge[E]]
	fj *storage.Journal[core.FaceKey, core.Face[F]]

	err    error
	closed bool
	out    *core.Core[V, A, E, F] // the Core handed back when the session closed
}

// intrinsicRole checks that s can assign its own keys in the given mode.
func intrinsicRole[K comparable, E any](name string, s storage.Reader[K, E], mode Mode) error {
	if _, ok := s.(storage.Intrinsic[K, E]); !ok {
		return fmt.Errorf("New: %s storage (%s) cannot assign keys: %w", name, s.Kind(), core.ErrStorageKind)
	}
	if _, ok := s.(storage.Synthesizer[K]); mode == Transacted && !ok {
		return fmt.Errorf("New: %s storage (%s) cannot synthesize keys: %w", name, s.Kind(), core.ErrStorageKind)
	}

	return nil
}

// New opens a session over c and takes ownership of its storages: c is left
// empty until Commit or Abort returns a Core again. A core rejected by New is
// left untouched.
//
// Errors:
//   - core.ErrIncompleteCore if c is nil or not complete.
//   - core.ErrStorageKind if the vertex, edge or face storage cannot assign
//     keys (or synthesize them, in Transacted mode), or the arc storage does
//     not accept caller keys.
func New[V, A, E, F any](c *core.Core[V, A, E, F], opts ...Option) (*Mutation[V, A, E, F], error) {
	cfg := newConfig(opts...)
	if c == nil || !c.IsComplete() {
		return nil, fmt.Errorf("New: %w", core.ErrIncompleteCore)
	}
	if err := intrinsicRole("vertex", c.Vertices(), cfg.mode); err != nil {
		return nil, err
	}
	if err := intrinsicRole("edge", c.Edges(), cfg.mode); err != nil {
		return nil, err
	}
	if err := intrinsicRole("face", c.Faces(), cfg.mode); err != nil {
		return nil, err
	}
	if _, ok := c.Arcs().(storage.Extrinsic[core.ArcKey, core.Arc[A]]); !ok {
		return nil, fmt.Errorf("New: arc storage (%s) rejects caller keys: %w", c.Arcs().Kind(), core.ErrStorageKind)
	}

	vs, as, es, fs, err := c.Unfuse()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	m := &Mutation[V, A, E, F]{
		id:   cfg.id,
		mode: cfg.mode,
		log:  cfg.logger.WithFields(logrus.Fields{"mutation": cfg.id, "mode": cfg.mode.String()}),
	}
	switch cfg.mode {
	case Transacted:
		m.vj = storage.NewJournal[core.VertexKey, core.Vertex[V]](vs)
		m.aj = storage.NewJournal[core.ArcKey, core.Arc[A]](as)
		m.ej = storage.NewJournal[core.EdgeKey, core.Edge[E]](es)
		m.fj = storage.NewJournal[core.FaceKey, core.Face[F]](fs)
		m.vertices, m.arcs, m.edges, m.faces = m.vj, m.aj, m.ej, m.fj
	case Immediate:
		m.vertices = vs.(storage.Intrinsic[core.VertexKey, core.Vertex[V]])
		m.arcs = as.(storage.Extrinsic[core.ArcKey, core.Arc[A]])
		m.edges = es.(storage.Intrinsic[core.EdgeKey, core.Edge[E]])
		m.faces = fs.(storage.Intrinsic[core.FaceKey, core.Face[F]])
	}
	m.log.Debug("mutation opened")

	return m, nil
}

// ID returns the session identifier.
func (m *Mutation[V, A, E, F]) ID() string { return m.id }

// Mode returns the session mode.
func (m *Mutation[V, A, E, F]) Mode() Mode { return m.mode }

// Err returns the error that poisoned the session, if any.
func (m *Mutation[V, A, E, F]) Err() error { return m.err }

// Vertices returns the session's view of the vertex storage.
func (m *Mutation[V, A, E, F]) Vertices() storage.Reader[core.VertexKey, core.Vertex[V]] {
	return m.vertices
}

// Arcs returns the session's view of the arc storage.
func (m *Mutation[V, A, E, F]) Arcs() storage.Reader[core.ArcKey, core.Arc[A]] { return m.arcs }

// Edges returns the session's view of the edge storage.
func (m *Mutation[V, A, E, F]) Edges() storage.Reader[core.EdgeKey, core.Edge[E]] { return m.edges }

// Faces returns the session's view of the face storage.
func (m *Mutation[V, A, E, F]) Faces() storage.Reader[core.FaceKey, core.Face[F]] { return m.faces }

// VerticesMut returns mutable access to the vertex storage.
func (m *Mutation[V, A, E, F]) VerticesMut() storage.Storage[core.VertexKey, core.Vertex[V]] {
	return m.vertices
}

// ArcsMut returns mutable access to the arc storage.
func (m *Mutation[V, A, E, F]) ArcsMut() storage.Storage[core.ArcKey, core.Arc[A]] { return m.arcs }

// EdgesMut returns mutable access to the edge storage.
func (m *Mutation[V, A, E, F]) EdgesMut() storage.Storage[core.EdgeKey, core.Edge[E]] { return m.edges }

// FacesMut returns mutable access to the face storage.
func (m *Mutation[V, A, E, F]) FacesMut() storage.Storage[core.FaceKey, core.Face[F]] { return m.faces }

// usable reports ErrClosed or the poisoning error.
func (m *Mutation[V, A, E, F]) usable() error {
	if m.closed {
		return ErrClosed
	}

	return m.err
}

// fail poisons the session with err (first error wins) and returns err.
func (m *Mutation[V, A, E, F]) fail(err error) error {
	if m.err == nil {
		m.err = err
	}

	return err
}

// mustFuse reassembles storages owned by the session. All four are non-nil
// for a session that was opened by New.
func mustFuse[V, A, E, F any](
	vs storage.Storage[core.VertexKey, core.Vertex[V]],
	as storage.Storage[core.ArcKey, core.Arc[A]],
	es storage.Storage[core.EdgeKey, core.Edge[E]],
	fs storage.Storage[core.FaceKey, core.Face[F]],
) *core.Core[V, A, E, F] {
	c, err := core.Fuse(vs, as, es, fs)
	if err != nil {
		panic(err)
	}

	return c
}

// Abort ends the session and returns the Core. In Transacted mode it is the
// Core exactly as New received it; in Immediate mode it holds every write
// made so far. Abort on a closed session returns nil.
func (m *Mutation[V, A, E, F]) Abort() *core.Core[V, A, E, F] {
	if m.closed {
		return nil
	}
	m.closed = true
	var c *core.Core[V, A, E, F]
	if m.mode == Transacted {
		c = mustFuse(m.vj.Abort(), m.aj.Abort(), m.ej.Abort(), m.fj.Abort())
	} else {
		c = mustFuse[V, A, E, F](m.vertices, m.arcs, m.edges, m.faces)
	}
	m.out = c
	m.log.Debug("mutation aborted")

	return c
}

// reject ends a session whose commit cannot proceed.
func (m *Mutation[V, A, E, F]) reject(err error) (*core.Core[V, A, E, F], Rekeying, error) {
	if m.mode == Immediate {
		m.closed = true
		m.log.WithError(err).Warn("mutation failed without staging; core discarded")
		return nil, Rekeying{}, err
	}
	m.log.WithError(err).Warn("commit rejected")

	return m.Abort(), Rekeying{}, err
}

// Commit validates the mesh and, on success, returns the committed Core and
// the Rekeying of every key handed out during the session.
//
// Implementation (Transacted):
//   - Stage 1: validate every visible entity; on any violation abort and
//     return the original Core with the joined error.
//   - Stage 2: commit vertex, edge and face journals (independent key spaces).
//   - Stage 3: commit the arc journal through storage.CommitWithRekeying,
//     rewriting arc keys and every key an arc holds.
//   - Stage 4: rewrite the arc key held by every vertex, edge and face that
//     the session touched, then fuse the four storages.
//
// Errors:
//   - ErrClosed on a closed session.
//   - The poisoning error, if a primitive failed.
//   - An error matching core.ErrTopologyMalformed if validation fails.
//
// On error the returned Core is the original (Transacted) or nil (Immediate).
func (m *Mutation[V, A, E, F]) Commit() (*core.Core[V, A, E, F], Rekeying, error) {
	if m.closed {
		return nil, Rekeying{}, fmt.Errorf("Commit: %w", ErrClosed)
	}
	if m.err != nil {
		return m.reject(fmt.Errorf("Commit: %w", m.err))
	}
	if err := m.validate(); err != nil {
		return m.reject(fmt.Errorf("Commit: %w", err))
	}
	m.closed = true

	if m.mode == Immediate {
		c := mustFuse[V, A, E, F](m.vertices, m.arcs, m.edges, m.faces)
		m.out = c
		m.logCommitted(c)
		return c, Rekeying{}, nil
	}

	pending := m.vj.Pending() + m.aj.Pending() + m.ej.Pending() + m.fj.Pending()
	vs, vr := m.vj.Commit()
	es, er := m.ej.Commit()
	fs, fr := m.fj.Commit()
	as, ar := storage.CommitWithRekeying(m.aj, vr,
		func(ab core.ArcKey, arc core.Arc[A], vr storage.Rekeying[core.VertexKey]) (core.ArcKey, core.Arc[A]) {
			arc.Next = rekeyArc(vr, arc.Next)
			arc.Previous = rekeyArc(vr, arc.Previous)
			arc.Edge = er.Resolve(arc.Edge)
			arc.Face = fr.Resolve(arc.Face)
			return rekeyArc(vr, ab), arc
		})
	for _, k := range vr {
		if v, ok := vs.GetMut(k); ok {
			v.Arc = rekeyArc(vr, v.Arc)
		}
	}
	for _, k := range er {
		if e, ok := es.GetMut(k); ok {
			e.Arc = rekeyArc(vr, e.Arc)
		}
	}
	for _, k := range fr {
		if f, ok := fs.GetMut(k); ok {
			f.Arc = rekeyArc(vr, f.Arc)
		}
	}

	c := mustFuse(vs, as, es, fs)
	m.out = c
	m.log.WithField("pending", pending).Debug("journals applied")
	m.logCommitted(c)

	return c, Rekeying{Vertices: vr, Arcs: ar, Edges: er, Faces: fr}, nil
}

func (m *Mutation[V, A, E, F]) logCommitted(c *core.Core[V, A, E, F]) {
	m.log.WithFields(logrus.Fields{
		"vertices": c.Vertices().Len(),
		"arcs":     c.Arcs().Len(),
		"edges":    c.Edges().Len(),
		"faces":    c.Faces().Len(),
	}).Debug("mutation committed")
}

// rekeyArc rewrites both endpoints of ab through the vertex rekeying.
func rekeyArc(vr storage.Rekeying[core.VertexKey], ab core.ArcKey) core.ArcKey {
	if ab.IsZero() {
		return ab
	}

	return core.ArcKey{Source: vr.Resolve(ab.Source), Destination: vr.Resolve(ab.Destination)}
}

// CommitWith runs fn inside m and commits. If fn fails the session is
// aborted and fn's error returned; otherwise the result is Commit's, with
// fn's output passed through. Keys inside out are provisional: resolve them
// through the returned Rekeying.
//
// fn must not end the session. If it does, CommitWith returns the Core the
// session handed back when it closed (nil only after a failed Immediate
// commit) with an error matching ErrClosed.
func CommitWith[V, A, E, F, T any](
	m *Mutation[V, A, E, F],
	fn func(*Mutation[V, A, E, F]) (T, error),
) (*core.Core[V, A, E, F], T, Rekeying, error) {
	var zero T
	out, err := fn(m)
	if m.closed {
		misuse := fmt.Errorf("CommitWith: session ended inside fn: %w", ErrClosed)
		return m.out, zero, Rekeying{}, errors.Join(err, misuse)
	}
	if err != nil {
		m.fail(err)
		c, _, rerr := m.reject(err)
		return c, zero, Rekeying{}, rerr
	}
	c, rk, err := m.Commit()
	if err != nil {
		return c, zero, rk, err
	}

	return c, out, rk, nil
}
