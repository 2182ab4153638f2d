// SPDX-License-Identifier: MIT
// Package: lvmesh/core
//
// view.go — topology read helpers over a Source.
//
// These helpers are the minimal traversal a mutation needs to snapshot its
// caches and validate a commit. Results are deterministic: rings follow Next
// from the face's leading arc, and key lists are sorted.

package core

import (
	"fmt"
	"slices"
)

// FaceRing returns the arcs bounding f, starting at the face's leading arc
// and following Next.
//
// Errors:
//   - ErrEntityNotFound if f is not live.
//   - ErrTopologyMalformed if the ring reaches a missing arc, an arc naming
//     another face, or does not close within Arcs().Len() steps.
//
// Complexity: O(k) for a ring of k arcs.
func FaceRing[V, A, E, F any](src Source[V, A, E, F], f FaceKey) ([]ArcKey, error) {
	face, ok := src.Faces().Get(f)
	if !ok {
		return nil, fmt.Errorf("FaceRing(%s): %w", f, ErrEntityNotFound)
	}
	arcs := src.Arcs()
	limit := arcs.Len()
	ring := make([]ArcKey, 0, 4)
	for cur := face.Arc; ; {
		arc, ok := arcs.Get(cur)
		if !ok {
			return nil, fmt.Errorf("FaceRing(%s): missing arc %s: %w", f, cur, ErrTopologyMalformed)
		}
		if arc.Face != f {
			return nil, fmt.Errorf("FaceRing(%s): arc %s bounds %s: %w", f, cur, arc.Face, ErrTopologyMalformed)
		}
		ring = append(ring, cur)
		cur = arc.Next
		if cur == face.Arc {
			return ring, nil
		}
		if len(ring) >= limit {
			return nil, fmt.Errorf("FaceRing(%s): ring does not close: %w", f, ErrTopologyMalformed)
		}
	}
}

// FaceVertices returns the source vertex of every arc in f's ring.
func FaceVertices[V, A, E, F any](src Source[V, A, E, F], f FaceKey) ([]VertexKey, error) {
	ring, err := FaceRing(src, f)
	if err != nil {
		return nil, err
	}
	out := make([]VertexKey, len(ring))
	for i, ab := range ring {
		out[i] = ab.Source
	}

	return out, nil
}

// OutgoingArcs returns every arc leaving v, sorted by key.
// Complexity: O(A); arcs are scanned since boundary arcs carry no links.
func OutgoingArcs[V, A, E, F any](src Source[V, A, E, F], v VertexKey) []ArcKey {
	var out []ArcKey
	for ab := range src.Arcs().Keys() {
		if ab.Source == v {
			out = append(out, ab)
		}
	}
	slices.SortFunc(out, ArcKey.Compare)

	return out
}

// IncidentFaces returns the faces bounded by an arc leaving or entering v,
// sorted and without duplicates.
func IncidentFaces[V, A, E, F any](src Source[V, A, E, F], v VertexKey) []FaceKey {
	arcs := src.Arcs()
	var out []FaceKey
	for _, ab := range OutgoingArcs(src, v) {
		for _, k := range [2]ArcKey{ab, ab.Opposite()} {
			if arc, ok := arcs.Get(k); ok && !arc.Face.IsZero() {
				out = append(out, arc.Face)
			}
		}
	}
	slices.SortFunc(out, FaceKey.Compare)

	return slices.Compact(out)
}
