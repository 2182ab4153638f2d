// SPDX-License-Identifier: MIT
// Package: lvmesh/graph
//
// ops.go — composite topology operations, one session each.
//
// Single-step operations snapshot their cache from the owned Core before a
// session opens, so a failed precondition never opens a session at all.
// Triangulate snapshots from the session itself, between its splits.

package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/mutation"
)

// SplitFace divides f with a new edge from a to b and returns the arc a->b.
// f keeps the side holding that arc; the other side becomes a new face with
// a copy of f's data.
//
// Errors:
//   - core.ErrEntityNotFound if f is not live or a or b is not on its ring.
//   - core.ErrTopologyConflict if a and b are equal, adjacent or already joined.
func (g *Graph[V, A, E, F]) SplitFace(f core.FaceKey, a, b core.VertexKey) (core.ArcKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotFaceSplit[V, A, E, F](g.core, f, a, b)
	if err != nil {
		return core.ArcKey{}, fmt.Errorf("SplitFace: %w", err)
	}
	ab, rk, err := run(g, "SplitFace", func(m *mutation.Mutation[V, A, E, F]) (core.ArcKey, error) {
		return m.SplitFace(cache)
	})
	if err != nil {
		return core.ArcKey{}, err
	}

	return rk.Arc(ab), nil
}

// MergeFaces removes the edge shared by f and other; f survives and is
// returned.
//
// Errors:
//   - core.ErrEntityNotFound if either face is not live.
//   - core.ErrTopologyConflict if the faces do not share exactly one edge.
func (g *Graph[V, A, E, F]) MergeFaces(f, other core.FaceKey) (core.FaceKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotFaceMerge[V, A, E, F](g.core, f, other)
	if err != nil {
		return core.FaceKey{}, fmt.Errorf("MergeFaces: %w", err)
	}
	merged, rk, err := run(g, "MergeFaces", func(m *mutation.Mutation[V, A, E, F]) (core.FaceKey, error) {
		return m.MergeFaces(cache)
	})
	if err != nil {
		return core.FaceKey{}, err
	}

	return rk.Face(merged), nil
}

// PokeFace inserts a vertex carrying data inside f and fans f into one
// triangle per side. It returns the new vertex.
func (g *Graph[V, A, E, F]) PokeFace(f core.FaceKey, data V) (core.VertexKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotFacePoke[V, A, E, F](g.core, f)
	if err != nil {
		return core.VertexKey{}, fmt.Errorf("PokeFace: %w", err)
	}
	v, rk, err := run(g, "PokeFace", func(m *mutation.Mutation[V, A, E, F]) (core.VertexKey, error) {
		return m.PokeFace(cache, data)
	})
	if err != nil {
		return core.VertexKey{}, err
	}

	return rk.Vertex(v), nil
}

// BridgeFaces removes f and other, two faces of equal arity with no common
// vertex, and joins their rings with one quad per side. The quads carry f's
// data and are returned in the order of f's ring.
//
// Errors:
//   - core.ErrEntityNotFound if either face is not live.
//   - core.ErrTopologyConflict if the arities differ, the faces share a
//     vertex, or two paired vertices are already joined.
func (g *Graph[V, A, E, F]) BridgeFaces(f, other core.FaceKey) ([]core.FaceKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotFaceBridge[V, A, E, F](g.core, f, other)
	if err != nil {
		return nil, fmt.Errorf("BridgeFaces: %w", err)
	}
	quads, rk, err := run(g, "BridgeFaces", func(m *mutation.Mutation[V, A, E, F]) ([]core.FaceKey, error) {
		return m.BridgeFaces(cache)
	})
	if err != nil {
		return nil, err
	}
	for i, q := range quads {
		quads[i] = rk.Face(q)
	}

	return quads, nil
}

// SplitEdge inserts a vertex carrying data in the middle of e and returns it.
// The faces on both sides of e gain one side each.
func (g *Graph[V, A, E, F]) SplitEdge(e core.EdgeKey, data V) (core.VertexKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotEdgeSplit[V, A, E, F](g.core, e)
	if err != nil {
		return core.VertexKey{}, fmt.Errorf("SplitEdge: %w", err)
	}
	v, rk, err := run(g, "SplitEdge", func(m *mutation.Mutation[V, A, E, F]) (core.VertexKey, error) {
		return m.SplitEdge(cache, data)
	})
	if err != nil {
		return core.VertexKey{}, err
	}

	return rk.Vertex(v), nil
}

// JoinEdges inserts a quad carrying data between two boundary edges with no
// common vertex and returns it.
//
// Errors:
//   - core.ErrEntityNotFound if either edge is not live.
//   - core.ErrTopologyConflict if an edge has faces on both sides, the edges
//     share a vertex, or a closing side already bounds a face.
func (g *Graph[V, A, E, F]) JoinEdges(e, other core.EdgeKey, data F) (core.FaceKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cache, err := mutation.SnapshotEdgeJoin[V, A, E, F](g.core, e, other, data)
	if err != nil {
		return core.FaceKey{}, fmt.Errorf("JoinEdges: %w", err)
	}
	f, rk, err := run(g, "JoinEdges", func(m *mutation.Mutation[V, A, E, F]) (core.FaceKey, error) {
		return m.JoinEdges(cache)
	})
	if err != nil {
		return core.FaceKey{}, err
	}

	return rk.Face(f), nil
}

// RemoveFace removes f, every edge no other face uses, and every vertex left
// without edges.
func (g *Graph[V, A, E, F]) RemoveFace(f core.FaceKey) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	plan, err := mutation.SnapshotFaceRemove[V, A, E, F](g.core, f)
	if err != nil {
		return fmt.Errorf("RemoveFace: %w", err)
	}

	return g.remove("RemoveFace", plan)
}

// RemoveEdge removes e together with the faces on both of its sides.
func (g *Graph[V, A, E, F]) RemoveEdge(e core.EdgeKey) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	plan, err := mutation.SnapshotEdgeRemove[V, A, E, F](g.core, e)
	if err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}

	return g.remove("RemoveEdge", plan)
}

// RemoveVertex removes v together with every face and edge around it.
func (g *Graph[V, A, E, F]) RemoveVertex(v core.VertexKey) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	plan, err := mutation.SnapshotVertexRemove[V, A, E, F](g.core, v)
	if err != nil {
		return fmt.Errorf("RemoveVertex: %w", err)
	}

	return g.remove("RemoveVertex", plan)
}

func (g *Graph[V, A, E, F]) remove(method string, plan mutation.RemoveCache) error {
	_, _, err := run(g, method, func(m *mutation.Mutation[V, A, E, F]) (struct{}, error) {
		return struct{}{}, m.Remove(plan)
	})

	return err
}

// Triangulate fan-splits every face with more than three sides from the
// source of its leading arc and returns the number of faces added.
// Either every face is triangulated or the Graph is unchanged; a fan
// diagonal that is already an edge elsewhere fails with
// core.ErrTopologyConflict.
//
// Complexity: O(F·k + A·s) for rings of k arcs and s splits.
func (g *Graph[V, A, E, F]) Triangulate() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	added, _, err := run(g, "Triangulate", func(m *mutation.Mutation[V, A, E, F]) (int, error) {
		faces := slices.SortedFunc(m.Faces().Keys(), core.FaceKey.Compare)
		n := 0
		for _, f := range faces {
			for {
				ring, err := core.FaceVertices[V, A, E, F](m, f)
				if err != nil {
					return n, err
				}
				if len(ring) <= 3 {
					break
				}
				cache, err := mutation.SnapshotFaceSplit[V, A, E, F](m, f, ring[0], ring[2])
				if err != nil {
					return n, err
				}
				if _, err := m.SplitFace(cache); err != nil {
					return n, err
				}
				n++
			}
		}

		return n, nil
	})

	return added, err
}
