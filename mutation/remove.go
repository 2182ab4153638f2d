// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// remove.go — cascading removal of faces, edges and vertices.
//
// Cascade rules (applied when the cache is snapshotted):
//   • Removing a face also removes every bounding edge whose other arc has no
//     surviving face; arcs of the face whose edge survives become boundary arcs.
//   • Removing an edge removes the faces on both of its sides first.
//   • Removing a vertex removes every face around it and every edge at it.
//   • A vertex left without outgoing arcs is removed; a surviving vertex
//     whose leading arc is removed is re-pointed to its smallest surviving
//     outgoing arc.

package mutation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/core"
)

type edgeRemoval struct {
	edge core.EdgeKey
	arc  core.ArcKey
}

type leadUpdate struct {
	vertex core.VertexKey
	arc    core.ArcKey
}

// RemoveCache is the plan for Remove: every entity the removal deletes or
// rewires, recorded before anything is written.
type RemoveCache struct {
	faces    []core.FaceKey
	detached []core.ArcKey
	edges    []edgeRemoval
	leads    []leadUpdate
	vertices []core.VertexKey
}

// Faces returns the faces the plan removes.
func (c RemoveCache) Faces() []core.FaceKey { return slices.Clone(c.faces) }

// Edges returns the edges the plan removes.
func (c RemoveCache) Edges() []core.EdgeKey {
	out := make([]core.EdgeKey, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.edge
	}

	return out
}

// Vertices returns the vertices the plan removes.
func (c RemoveCache) Vertices() []core.VertexKey { return slices.Clone(c.vertices) }

// SnapshotFaceRemove plans removing f.
func SnapshotFaceRemove[V, A, E, F any](src core.Source[V, A, E, F], f core.FaceKey) (RemoveCache, error) {
	if !src.Faces().Contains(f) {
		return RemoveCache{}, fmt.Errorf("SnapshotFaceRemove(%s): %w", f, core.ErrEntityNotFound)
	}

	return planRemoval(src, []core.FaceKey{f}, nil, nil)
}

// SnapshotEdgeRemove plans removing e and the faces on both of its sides.
func SnapshotEdgeRemove[V, A, E, F any](src core.Source[V, A, E, F], e core.EdgeKey) (RemoveCache, error) {
	edge, ok := src.Edges().Get(e)
	if !ok {
		return RemoveCache{}, fmt.Errorf("SnapshotEdgeRemove(%s): %w", e, core.ErrEntityNotFound)
	}
	var faces []core.FaceKey
	for _, ab := range [2]core.ArcKey{edge.Arc, edge.Arc.Opposite()} {
		if arc, ok := src.Arcs().Get(ab); ok && !arc.Face.IsZero() {
			faces = append(faces, arc.Face)
		}
	}

	return planRemoval(src, faces, []core.EdgeKey{e}, nil)
}

// SnapshotVertexRemove plans removing v with every face and edge around it.
func SnapshotVertexRemove[V, A, E, F any](src core.Source[V, A, E, F], v core.VertexKey) (RemoveCache, error) {
	if !src.Vertices().Contains(v) {
		return RemoveCache{}, fmt.Errorf("SnapshotVertexRemove(%s): %w", v, core.ErrEntityNotFound)
	}
	var edges []core.EdgeKey
	for _, ab := range core.OutgoingArcs(src, v) {
		if arc, ok := src.Arcs().Get(ab); ok {
			edges = append(edges, arc.Edge)
		}
	}

	return planRemoval(src, core.IncidentFaces(src, v), edges, []core.VertexKey{v})
}

// planRemoval expands explicit faces, edges and vertices into a full plan.
//
// Implementation:
//   - Stage 1: collect the rings of the removed faces.
//   - Stage 2: add every ring edge whose opposite arc keeps no face.
//   - Stage 3: ring arcs on surviving edges are detached from their face.
//   - Stage 4: endpoints of removed edges lose their dead arcs; they are
//     removed when nothing leaves them, re-pointed when their lead died.
//
// Complexity: O(R + k·A) for R ring arcs and k touched vertices.
func planRemoval[V, A, E, F any](src core.Source[V, A, E, F], faces []core.FaceKey, edges []core.EdgeKey, vertices []core.VertexKey) (RemoveCache, error) {
	arcs := src.Arcs()
	faces = slices.Clone(faces)
	slices.SortFunc(faces, core.FaceKey.Compare)
	faces = slices.Compact(faces)
	removedFace := make(map[core.FaceKey]bool, len(faces))
	for _, f := range faces {
		removedFace[f] = true
	}

	// Stage 1–2.
	var ringArcs []core.ArcKey
	edgeSet := make(map[core.EdgeKey]bool, len(edges))
	for _, e := range edges {
		edgeSet[e] = true
	}
	for _, f := range faces {
		ring, err := core.FaceRing(src, f)
		if err != nil {
			return RemoveCache{}, fmt.Errorf("planRemoval: %w", err)
		}
		for _, ab := range ring {
			ringArcs = append(ringArcs, ab)
			opposite, ok := arcs.Get(ab.Opposite())
			if !ok || opposite.Face.IsZero() || removedFace[opposite.Face] {
				arc, _ := arcs.Get(ab)
				edgeSet[arc.Edge] = true
			}
		}
	}

	plan := RemoveCache{faces: faces}
	deadArc := make(map[core.ArcKey]bool)
	for e := range edgeSet {
		edge, ok := src.Edges().Get(e)
		if !ok {
			return RemoveCache{}, fmt.Errorf("planRemoval: edge %s: %w", e, core.ErrEntityNotFound)
		}
		plan.edges = append(plan.edges, edgeRemoval{edge: e, arc: edge.Arc})
		deadArc[edge.Arc] = true
		deadArc[edge.Arc.Opposite()] = true
	}
	slices.SortFunc(plan.edges, func(a, b edgeRemoval) int { return a.edge.Compare(b.edge) })

	// Stage 3.
	for _, ab := range ringArcs {
		if !deadArc[ab] {
			plan.detached = append(plan.detached, ab)
		}
	}

	// Stage 4.
	removedVertex := make(map[core.VertexKey]bool, len(vertices))
	for _, v := range vertices {
		removedVertex[v] = true
	}
	var touched []core.VertexKey
	for ab := range deadArc {
		if !removedVertex[ab.Source] {
			touched = append(touched, ab.Source)
		}
	}
	slices.SortFunc(touched, core.VertexKey.Compare)
	touched = slices.Compact(touched)
	for _, u := range touched {
		vertex, ok := src.Vertices().Get(u)
		if !ok {
			return RemoveCache{}, fmt.Errorf("planRemoval: vertex %s: %w", u, core.ErrEntityNotFound)
		}
		var survivor core.ArcKey
		for _, ab := range core.OutgoingArcs(src, u) {
			if !deadArc[ab] {
				survivor = ab
				break
			}
		}
		switch {
		case survivor.IsZero():
			removedVertex[u] = true
		case vertex.Arc.IsZero() || deadArc[vertex.Arc]:
			plan.leads = append(plan.leads, leadUpdate{vertex: u, arc: survivor})
		}
	}
	for v := range removedVertex {
		plan.vertices = append(plan.vertices, v)
	}
	slices.SortFunc(plan.vertices, core.VertexKey.Compare)

	return plan, nil
}

// Remove replays a removal plan: faces, then detached arcs, then edges with
// their arcs, then leading-arc updates, then vertices.
//
// Errors:
//   - core.ErrEntityNotFound if an entity recorded in the plan is gone.
func (m *Mutation[V, A, E, F]) Remove(cache RemoveCache) error {
	if err := m.usable(); err != nil {
		return err
	}
	for _, f := range cache.faces {
		if _, ok := m.faces.Remove(f); !ok {
			return m.fail(fmt.Errorf("Remove: face %s: %w", f, core.ErrEntityNotFound))
		}
	}
	for _, ab := range cache.detached {
		if err := m.detach(ab); err != nil {
			return m.fail(fmt.Errorf("Remove: %w", err))
		}
	}
	for _, e := range cache.edges {
		if err := m.removeEdge(e.edge, e.arc); err != nil {
			return m.fail(fmt.Errorf("Remove: %w", err))
		}
	}
	for _, l := range cache.leads {
		if err := m.ConnectOutgoingArc(l.vertex, l.arc); err != nil {
			return err
		}
	}
	for _, v := range cache.vertices {
		if _, ok := m.vertices.Remove(v); !ok {
			return m.fail(fmt.Errorf("Remove: vertex %s: %w", v, core.ErrEntityNotFound))
		}
	}

	return nil
}
