// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// face.go — face primitives: insert, split, merge, poke, bridge.
//
// Every primitive replays a cache taken by the matching Snapshot* function.
// On error the session is poisoned; whatever was written stays staged and is
// discarded by the abort that follows.

package mutation

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// InsertFace inserts a face over the planned ring, creating missing edges.
//
// Errors:
//   - core.ErrTopologyConflict if a ring arc gained a face since the snapshot.
//   - any error of GetOrInsertEdge.
func (m *Mutation[V, A, E, F]) InsertFace(cache FaceInsertCache[F]) (core.FaceKey, error) {
	if err := m.usable(); err != nil {
		return core.FaceKey{}, err
	}
	if len(cache.ring) < minArity {
		return core.FaceKey{}, m.fail(fmt.Errorf("InsertFace: empty cache: %w", core.ErrTopologyMalformed))
	}
	for _, ab := range cache.ring {
		if arc, ok := m.arcs.Get(ab); ok && !arc.Face.IsZero() {
			return core.FaceKey{}, m.fail(fmt.Errorf("InsertFace: arc %s bounds %s: %w", ab, arc.Face, core.ErrTopologyConflict))
		}
	}
	var data E
	for _, ab := range cache.ring {
		if _, _, err := m.getOrInsertEdge(ab.Source, ab.Destination, data); err != nil {
			return core.FaceKey{}, m.fail(fmt.Errorf("InsertFace: %w", err))
		}
	}
	f := m.faces.Insert(core.Face[F]{Data: cache.data, Arc: cache.ring[0]})
	if err := m.link(cache.ring, f); err != nil {
		return core.FaceKey{}, m.fail(fmt.Errorf("InsertFace: %w", err))
	}

	return f, nil
}

// SplitFace divides a face with a new edge between the planned vertices and
// returns the new arc from source to destination. The original face keeps the
// ring containing that arc; a new face with a copy of its data takes the
// ring containing the opposite arc.
func (m *Mutation[V, A, E, F]) SplitFace(cache FaceSplitCache[F]) (core.ArcKey, error) {
	if err := m.usable(); err != nil {
		return core.ArcKey{}, err
	}
	if !m.faces.Contains(cache.face) {
		return core.ArcKey{}, m.fail(fmt.Errorf("SplitFace(%s): %w", cache.face, core.ErrEntityNotFound))
	}
	source := cache.left[0].Source
	destination := cache.right[0].Source
	var data E
	_, inserted, err := m.getOrInsertEdge(source, destination, data)
	if err != nil {
		return core.ArcKey{}, m.fail(fmt.Errorf("SplitFace(%s): %w", cache.face, err))
	}
	if !inserted {
		return core.ArcKey{}, m.fail(fmt.Errorf("SplitFace(%s): %s and %s already joined: %w", cache.face, source, destination, core.ErrTopologyConflict))
	}
	ab := core.ArcKey{Source: source, Destination: destination}
	ba := ab.Opposite()

	g := m.faces.Insert(core.Face[F]{Data: cache.data, Arc: ba})
	if err := m.link(append([]core.ArcKey{ab}, cache.right...), cache.face); err != nil {
		return core.ArcKey{}, m.fail(fmt.Errorf("SplitFace(%s): %w", cache.face, err))
	}
	if err := m.link(append([]core.ArcKey{ba}, cache.left...), g); err != nil {
		return core.ArcKey{}, m.fail(fmt.Errorf("SplitFace(%s): %w", cache.face, err))
	}
	if face, ok := m.faces.GetMut(cache.face); ok {
		face.Arc = ab
	}

	return ab, nil
}

// MergeFaces removes the shared edge and the absorbed face, leaving one face
// (the first one passed to SnapshotFaceMerge) bounded by both rings.
func (m *Mutation[V, A, E, F]) MergeFaces(cache FaceMergeCache) (core.FaceKey, error) {
	if err := m.usable(); err != nil {
		return core.FaceKey{}, err
	}
	if _, ok := m.faces.Remove(cache.absorb); !ok {
		return core.FaceKey{}, m.fail(fmt.Errorf("MergeFaces: face %s: %w", cache.absorb, core.ErrEntityNotFound))
	}
	if err := m.removeEdge(cache.edge, cache.shared); err != nil {
		return core.FaceKey{}, m.fail(fmt.Errorf("MergeFaces: %w", err))
	}
	if err := m.link(cache.ring, cache.face); err != nil {
		return core.FaceKey{}, m.fail(fmt.Errorf("MergeFaces: %w", err))
	}
	face, ok := m.faces.GetMut(cache.face)
	if !ok {
		return core.FaceKey{}, m.fail(fmt.Errorf("MergeFaces: face %s: %w", cache.face, core.ErrEntityNotFound))
	}
	face.Arc = cache.ring[0]

	// The shared arcs may have led their source vertices; the merged ring
	// holds another arc leaving each of them.
	for _, ab := range cache.ring {
		v, ok := m.vertices.Get(ab.Source)
		if !ok {
			return core.FaceKey{}, m.fail(fmt.Errorf("MergeFaces: vertex %s: %w", ab.Source, core.ErrEntityNotFound))
		}
		if v.Arc == cache.shared || v.Arc == cache.shared.Opposite() {
			if err := m.ConnectOutgoingArc(ab.Source, ab); err != nil {
				return core.FaceKey{}, err
			}
		}
	}

	return cache.face, nil
}

// PokeFace inserts a vertex with the given data and replaces the face by a
// fan of triangles, one per ring arc, around it. The original face keeps the
// triangle over the first ring arc. It returns the new vertex.
func (m *Mutation[V, A, E, F]) PokeFace(cache FacePokeCache[F], data V) (core.VertexKey, error) {
	if err := m.usable(); err != nil {
		return core.VertexKey{}, err
	}
	if !m.faces.Contains(cache.face) {
		return core.VertexKey{}, m.fail(fmt.Errorf("PokeFace(%s): %w", cache.face, core.ErrEntityNotFound))
	}
	c := m.InsertVertex(data)
	var edgeData E
	for _, ab := range cache.ring {
		if _, _, err := m.getOrInsertEdge(c, ab.Source, edgeData); err != nil {
			return core.VertexKey{}, m.fail(fmt.Errorf("PokeFace(%s): %w", cache.face, err))
		}
	}
	for i, ab := range cache.ring {
		tri := []core.ArcKey{
			ab,
			{Source: ab.Destination, Destination: c},
			{Source: c, Destination: ab.Source},
		}
		f := cache.face
		if i > 0 {
			f = m.faces.Insert(core.Face[F]{Data: cache.data, Arc: ab})
		}
		if err := m.link(tri, f); err != nil {
			return core.VertexKey{}, m.fail(fmt.Errorf("PokeFace(%s): %w", cache.face, err))
		}
	}
	if face, ok := m.faces.GetMut(cache.face); ok {
		face.Arc = cache.ring[0]
	}

	return c, nil
}

// BridgeFaces removes both planned faces and joins their rings with one quad
// per side, each carrying the source face's data. It returns the quads in
// source ring order.
func (m *Mutation[V, A, E, F]) BridgeFaces(cache FaceBridgeCache[F]) ([]core.FaceKey, error) {
	if err := m.usable(); err != nil {
		return nil, err
	}
	if len(cache.from) < minArity {
		return nil, m.fail(fmt.Errorf("BridgeFaces: empty cache: %w", core.ErrTopologyMalformed))
	}
	for _, f := range [2]core.FaceKey{cache.source, cache.destination} {
		if _, ok := m.faces.Remove(f); !ok {
			return nil, m.fail(fmt.Errorf("BridgeFaces: face %s: %w", f, core.ErrEntityNotFound))
		}
	}
	for _, ring := range [2][]core.ArcKey{cache.from, cache.to} {
		for _, ab := range ring {
			if err := m.detach(ab); err != nil {
				return nil, m.fail(fmt.Errorf("BridgeFaces: %w", err))
			}
		}
	}
	quads := cache.quads()
	out := make([]core.FaceKey, len(quads))
	for i, ring := range quads {
		f, err := m.InsertFace(FaceInsertCache[F]{ring: ring, data: cache.data})
		if err != nil {
			return nil, fmt.Errorf("BridgeFaces: %w", err)
		}
		out[i] = f
	}

	return out, nil
}
