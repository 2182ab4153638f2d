// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go — public entry point and constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(vertexData, bopts, cons...). Resolves the
//     config, records every constructor into one Surface, then realizes the
//     Surface in a single mutation session.
//   - Determinism: same inputs, options and constructor order ⇒ identical
//     graphs, keys included.
//   - Safety: constructors never panic; a failed build returns no Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/graph"
	"github.com/katalvlaran/lvmesh/mutation"
	"github.com/katalvlaran/lvmesh/storage"
)

// Constructor records part of a mesh into s using the resolved config.
// Constructors MUST validate parameters before recording anything and
// return sentinel errors wrapped with their method name.
type Constructor func(s *Surface, cfg builderConfig) error

// BuildGraph records cons in order and realizes the result as a new Graph.
// vertexData supplies the data of vertex index i; nil leaves every vertex
// with the zero V. Faces, arcs and edges carry zero data.
//
// Errors (wrapped as "BuildGraph: ..."):
//   - ErrConstructFailed for a nil constructor.
//   - any constructor sentinel (ErrTooFewVertices, ErrBadIndexBuffer, ...).
//   - core.ErrTopologyConflict if two faces claim the same arc.
//   - core.ErrTopologyMalformed if an allocated vertex is used by no face.
//
// Complexity: O(N + R) recording and realization for N vertices and R ring
// indices, plus commit validation.
func BuildGraph[V, A, E, F any](vertexData func(int) V, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[V, A, E, F], error) {
	cfg := newBuilderConfig(bopts...)
	s := &Surface{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	g := graph.New[V, A, E, F](graph.WithLogger(cfg.logger))
	_, err := g.Mutate(func(m *mutation.Mutation[V, A, E, F]) error {
		return realize(m, s, vertexData)
	}, cfg.sessionOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}
	cfg.logger.WithField("vertices", g.VertexCount()).WithField("faces", g.FaceCount()).Debug("mesh built")

	return g, nil
}

// realize inserts the recorded vertices and faces into m.
func realize[V, A, E, F any](m *mutation.Mutation[V, A, E, F], s *Surface, vertexData func(int) V) error {
	index := storage.NewHashMap[int, core.VertexKey]()
	for i := 0; i < s.vertices; i++ {
		var data V
		if vertexData != nil {
			data = vertexData(i)
		}
		index.InsertWithKey(i, m.InsertVertex(data))
	}

	var data F
	for n, face := range s.faces {
		ring := make([]core.VertexKey, len(face))
		for j, idx := range face {
			k, ok := index.Get(idx)
			if !ok {
				return fmt.Errorf("face %d: index %d: %w", n, idx, ErrBadIndexBuffer)
			}
			ring[j] = k
		}
		cache, err := mutation.SnapshotFaceInsert[V, A, E, F](m, ring, data)
		if err != nil {
			return fmt.Errorf("face %d: %w", n, err)
		}
		if _, err := m.InsertFace(cache); err != nil {
			return fmt.Errorf("face %d: %w", n, err)
		}
	}

	return nil
}
