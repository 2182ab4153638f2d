// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// cache.go — immutable snapshots for face and edge operations.
//
// Contract:
//   • A cache is taken from a core.Source before the operation writes anything.
//   • Snapshot* validates the operation's preconditions against that view and
//     records everything the operation will touch.
//   • The matching primitive replays the recorded plan and never re-derives it.

package mutation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/core"
)

// minArity is the smallest polygon a face may bound.
const minArity = 3

// FaceInsertCache is the plan for InsertFace.
type FaceInsertCache[F any] struct {
	ring []core.ArcKey
	data F
}

// SnapshotFaceInsert plans a face bounded by the given vertices in order.
//
// Errors:
//   - core.ErrTopologyMalformed for fewer than three vertices or a repeated vertex.
//   - core.ErrEntityNotFound if a vertex is not live.
//   - core.ErrTopologyConflict if an arc of the ring already bounds a face.
func SnapshotFaceInsert[V, A, E, F any](src core.Source[V, A, E, F], vertices []core.VertexKey, data F) (FaceInsertCache[F], error) {
	n := len(vertices)
	if n < minArity {
		return FaceInsertCache[F]{}, fmt.Errorf("SnapshotFaceInsert: %d vertices: %w", n, core.ErrTopologyMalformed)
	}
	seen := make(map[core.VertexKey]bool, n)
	for _, v := range vertices {
		if seen[v] {
			return FaceInsertCache[F]{}, fmt.Errorf("SnapshotFaceInsert: repeated vertex %s: %w", v, core.ErrTopologyMalformed)
		}
		seen[v] = true
		if !src.Vertices().Contains(v) {
			return FaceInsertCache[F]{}, fmt.Errorf("SnapshotFaceInsert: vertex %s: %w", v, core.ErrEntityNotFound)
		}
	}
	ring := make([]core.ArcKey, n)
	for i := range vertices {
		ring[i] = core.ArcKey{Source: vertices[i], Destination: vertices[(i+1)%n]}
		if arc, ok := src.Arcs().Get(ring[i]); ok && !arc.Face.IsZero() {
			return FaceInsertCache[F]{}, fmt.Errorf("SnapshotFaceInsert: arc %s bounds %s: %w", ring[i], arc.Face, core.ErrTopologyConflict)
		}
	}

	return FaceInsertCache[F]{ring: ring, data: data}, nil
}

// FaceSplitCache is the plan for SplitFace.
type FaceSplitCache[F any] struct {
	face  core.FaceKey
	data  F
	left  []core.ArcKey // source → destination along the ring
	right []core.ArcKey // destination → source along the ring
}

// SnapshotFaceSplit plans splitting f along a new edge from source to
// destination, both vertices of f at least two ring steps apart in each
// direction.
//
// Errors:
//   - core.ErrEntityNotFound if f is not live or a vertex is not on its ring.
//   - core.ErrTopologyConflict if the vertices are equal or adjacent, or
//     already joined by an edge.
func SnapshotFaceSplit[V, A, E, F any](src core.Source[V, A, E, F], f core.FaceKey, source, destination core.VertexKey) (FaceSplitCache[F], error) {
	face, ok := src.Faces().Get(f)
	if !ok {
		return FaceSplitCache[F]{}, fmt.Errorf("SnapshotFaceSplit(%s): %w", f, core.ErrEntityNotFound)
	}
	ring, err := core.FaceRing(src, f)
	if err != nil {
		return FaceSplitCache[F]{}, fmt.Errorf("SnapshotFaceSplit: %w", err)
	}
	n := len(ring)
	i := slices.IndexFunc(ring, func(ab core.ArcKey) bool { return ab.Source == source })
	j := slices.IndexFunc(ring, func(ab core.ArcKey) bool { return ab.Source == destination })
	if i < 0 || j < 0 {
		return FaceSplitCache[F]{}, fmt.Errorf("SnapshotFaceSplit(%s): %s or %s not on ring: %w", f, source, destination, core.ErrEntityNotFound)
	}
	d := (j - i + n) % n
	if d < 2 || n-d < 2 {
		return FaceSplitCache[F]{}, fmt.Errorf("SnapshotFaceSplit(%s): %s and %s are %d steps apart: %w", f, source, destination, min(d, n-d), core.ErrTopologyConflict)
	}
	if src.Arcs().Contains(core.ArcKey{Source: source, Destination: destination}) {
		return FaceSplitCache[F]{}, fmt.Errorf("SnapshotFaceSplit(%s): %s and %s already joined: %w", f, source, destination, core.ErrTopologyConflict)
	}

	return FaceSplitCache[F]{
		face:  f,
		data:  face.Data,
		left:  rotate(ring, i)[:d],
		right: rotate(ring, j)[:n-d],
	}, nil
}

// FaceMergeCache is the plan for MergeFaces.
type FaceMergeCache struct {
	face   core.FaceKey
	absorb core.FaceKey
	shared core.ArcKey // the arc of face on the shared edge
	edge   core.EdgeKey
	ring   []core.ArcKey
}

// SnapshotFaceMerge plans absorbing other into face across their single
// shared edge.
//
// Errors:
//   - core.ErrEntityNotFound if either face is not live.
//   - core.ErrTopologyConflict if the faces are the same, not adjacent, or
//     share more than one edge.
func SnapshotFaceMerge[V, A, E, F any](src core.Source[V, A, E, F], face, other core.FaceKey) (FaceMergeCache, error) {
	if face == other {
		return FaceMergeCache{}, fmt.Errorf("SnapshotFaceMerge(%s): merge with itself: %w", face, core.ErrTopologyConflict)
	}
	ring, err := core.FaceRing(src, face)
	if err != nil {
		return FaceMergeCache{}, fmt.Errorf("SnapshotFaceMerge: %w", err)
	}
	otherRing, err := core.FaceRing(src, other)
	if err != nil {
		return FaceMergeCache{}, fmt.Errorf("SnapshotFaceMerge: %w", err)
	}
	k := -1
	for i, ab := range ring {
		if slices.Contains(otherRing, ab.Opposite()) {
			if k >= 0 {
				return FaceMergeCache{}, fmt.Errorf("SnapshotFaceMerge(%s, %s): more than one shared edge: %w", face, other, core.ErrTopologyConflict)
			}
			k = i
		}
	}
	if k < 0 {
		return FaceMergeCache{}, fmt.Errorf("SnapshotFaceMerge(%s, %s): not adjacent: %w", face, other, core.ErrTopologyConflict)
	}
	shared := ring[k]
	arc, _ := src.Arcs().Get(shared)
	l := slices.Index(otherRing, shared.Opposite())

	// face's ring after the shared arc, then other's ring after its opposite.
	merged := append(rotate(ring, k+1)[:len(ring)-1], rotate(otherRing, l+1)[:len(otherRing)-1]...)

	return FaceMergeCache{face: face, absorb: other, shared: shared, edge: arc.Edge, ring: merged}, nil
}

// FacePokeCache is the plan for PokeFace.
type FacePokeCache[F any] struct {
	face core.FaceKey
	data F
	ring []core.ArcKey
}

// SnapshotFacePoke plans replacing f by a fan of triangles around a new vertex.
func SnapshotFacePoke[V, A, E, F any](src core.Source[V, A, E, F], f core.FaceKey) (FacePokeCache[F], error) {
	face, ok := src.Faces().Get(f)
	if !ok {
		return FacePokeCache[F]{}, fmt.Errorf("SnapshotFacePoke(%s): %w", f, core.ErrEntityNotFound)
	}
	ring, err := core.FaceRing(src, f)
	if err != nil {
		return FacePokeCache[F]{}, fmt.Errorf("SnapshotFacePoke: %w", err)
	}

	return FacePokeCache[F]{face: f, data: face.Data, ring: ring}, nil
}

// FaceBridgeCache is the plan for BridgeFaces.
type FaceBridgeCache[F any] struct {
	source      core.FaceKey
	destination core.FaceKey
	data        F
	from        []core.ArcKey // source ring
	to          []core.ArcKey // destination ring, from its leading arc
}

// SnapshotFaceBridge plans removing source and destination and joining their
// rings with one quad per side. The leading vertex of source is paired with
// the leading vertex of destination, and the rings are paired walking in
// opposite directions, so the quads keep the winding of both faces.
//
// Errors:
//   - core.ErrEntityNotFound if either face is not live.
//   - core.ErrTopologyConflict if the faces are the same, differ in arity,
//     share a vertex, or a paired vertex couple is already joined by an edge.
func SnapshotFaceBridge[V, A, E, F any](src core.Source[V, A, E, F], source, destination core.FaceKey) (FaceBridgeCache[F], error) {
	if source == destination {
		return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge(%s): bridge to itself: %w", source, core.ErrTopologyConflict)
	}
	face, ok := src.Faces().Get(source)
	if !ok {
		return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge(%s): %w", source, core.ErrEntityNotFound)
	}
	from, err := core.FaceRing(src, source)
	if err != nil {
		return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge: %w", err)
	}
	to, err := core.FaceRing(src, destination)
	if err != nil {
		return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge: %w", err)
	}
	if len(from) != len(to) {
		return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge(%s, %s): arity %d != %d: %w", source, destination, len(from), len(to), core.ErrTopologyConflict)
	}
	n := len(from)
	for i, ab := range from {
		if slices.ContainsFunc(to, func(cd core.ArcKey) bool { return cd.Source == ab.Source }) {
			return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge(%s, %s): shared vertex %s: %w", source, destination, ab.Source, core.ErrTopologyConflict)
		}
		partner := to[(n-i)%n].Source
		if src.Arcs().Contains(core.ArcKey{Source: ab.Source, Destination: partner}) {
			return FaceBridgeCache[F]{}, fmt.Errorf("SnapshotFaceBridge(%s, %s): %s and %s already joined: %w", source, destination, ab.Source, partner, core.ErrTopologyConflict)
		}
	}

	return FaceBridgeCache[F]{source: source, destination: destination, data: face.Data, from: from, to: to}, nil
}

// quads returns the rings of the bridging faces, one per source arc.
// Quad i runs a(i) -> a(i+1) -> d(-i-1) -> d(-i) over source vertices a and
// destination vertices d.
func (c FaceBridgeCache[F]) quads() [][]core.ArcKey {
	n := len(c.from)
	d := func(i int) core.VertexKey { return c.to[((-i%n)+n)%n].Source }
	out := make([][]core.ArcKey, n)
	for i, ab := range c.from {
		out[i] = []core.ArcKey{
			ab,
			{Source: ab.Destination, Destination: d(i + 1)},
			{Source: d(i + 1), Destination: d(i)},
			{Source: d(i), Destination: ab.Source},
		}
	}

	return out
}

// EdgeSplitCache is the plan for SplitEdge.
type EdgeSplitCache struct {
	edge core.EdgeKey
	arc  core.ArcKey // the edge's arc; the new vertex lands between its endpoints
}

// SnapshotEdgeSplit plans inserting a vertex in the middle of e.
//
// Errors:
//   - core.ErrEntityNotFound if e or its arcs are not live.
func SnapshotEdgeSplit[V, A, E, F any](src core.Source[V, A, E, F], e core.EdgeKey) (EdgeSplitCache, error) {
	edge, ok := src.Edges().Get(e)
	if !ok {
		return EdgeSplitCache{}, fmt.Errorf("SnapshotEdgeSplit(%s): %w", e, core.ErrEntityNotFound)
	}
	for _, ab := range [2]core.ArcKey{edge.Arc, edge.Arc.Opposite()} {
		if !src.Arcs().Contains(ab) {
			return EdgeSplitCache{}, fmt.Errorf("SnapshotEdgeSplit(%s): arc %s: %w", e, ab, core.ErrEntityNotFound)
		}
	}

	return EdgeSplitCache{edge: e, arc: edge.Arc}, nil
}

// EdgeJoinCache is the plan for JoinEdges.
type EdgeJoinCache[F any] struct {
	face FaceInsertCache[F]
}

// SnapshotEdgeJoin plans a quad between two edges through their boundary
// arcs a->b and c->d, bounded by a->b, b->c, c->d and d->a.
//
// Errors:
//   - core.ErrEntityNotFound if an edge is not live.
//   - core.ErrTopologyConflict if the edges are the same, an edge has no
//     boundary arc, or the edges share a vertex.
//   - any error of SnapshotFaceInsert for the quad.
func SnapshotEdgeJoin[V, A, E, F any](src core.Source[V, A, E, F], source, destination core.EdgeKey, data F) (EdgeJoinCache[F], error) {
	if source == destination {
		return EdgeJoinCache[F]{}, fmt.Errorf("SnapshotEdgeJoin(%s): join with itself: %w", source, core.ErrTopologyConflict)
	}
	ab, err := boundaryArc(src, source)
	if err != nil {
		return EdgeJoinCache[F]{}, fmt.Errorf("SnapshotEdgeJoin: %w", err)
	}
	cd, err := boundaryArc(src, destination)
	if err != nil {
		return EdgeJoinCache[F]{}, fmt.Errorf("SnapshotEdgeJoin: %w", err)
	}
	if ab.Source == cd.Source || ab.Source == cd.Destination || ab.Destination == cd.Source || ab.Destination == cd.Destination {
		return EdgeJoinCache[F]{}, fmt.Errorf("SnapshotEdgeJoin(%s, %s): shared vertex: %w", source, destination, core.ErrTopologyConflict)
	}
	face, err := SnapshotFaceInsert(src, []core.VertexKey{ab.Source, ab.Destination, cd.Source, cd.Destination}, data)
	if err != nil {
		return EdgeJoinCache[F]{}, fmt.Errorf("SnapshotEdgeJoin: %w", err)
	}

	return EdgeJoinCache[F]{face: face}, nil
}

// boundaryArc returns the arc of e that bounds no face, preferring the
// edge's own arc when both are free.
func boundaryArc[V, A, E, F any](src core.Source[V, A, E, F], e core.EdgeKey) (core.ArcKey, error) {
	edge, ok := src.Edges().Get(e)
	if !ok {
		return core.ArcKey{}, fmt.Errorf("edge %s: %w", e, core.ErrEntityNotFound)
	}
	for _, ab := range [2]core.ArcKey{edge.Arc, edge.Arc.Opposite()} {
		arc, ok := src.Arcs().Get(ab)
		if !ok {
			return core.ArcKey{}, fmt.Errorf("edge %s: arc %s: %w", e, ab, core.ErrEntityNotFound)
		}
		if arc.Face.IsZero() {
			return ab, nil
		}
	}

	return core.ArcKey{}, fmt.Errorf("edge %s: both sides faced: %w", e, core.ErrTopologyConflict)
}

// rotate returns a copy of ring starting at index start (mod len).
func rotate(ring []core.ArcKey, start int) []core.ArcKey {
	n := len(ring)
	out := make([]core.ArcKey, n)
	for i := range out {
		out[i] = ring[(start+i)%n]
	}

	return out
}
