// SPDX-License-Identifier: MIT
// Package core_test contains fixtures for lvmesh/core.
//
// Purpose:
//   - Assemble small meshes directly in storage, without the mutation layer,
//     so core can be tested on its own.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/storage"
)

// unit is the data type of entities that carry nothing.
type unit = struct{}

// testCore is the Core shape used across core tests.
type testCore = core.Core[string, unit, unit, unit]

// polygonCore RETURNS a Core holding one n-gon built straight into storage.
//
// Implementation:
//   - Stage 1: insert n vertices named "v0".."v{n-1}".
//   - Stage 2: for each ring step insert the interior arc, its boundary
//     opposite and the edge joining them.
//   - Stage 3: insert the face and link Next/Previous around the ring.
//
// Returns the core, the vertex keys in ring order and the face key.
func polygonCore(t *testing.T, n int) (*testCore, []core.VertexKey, core.FaceKey) {
	t.Helper()
	c := core.New[string, unit, unit, unit]()
	vertices := c.VerticesMut().(*storage.SlotMap[core.VertexKey, core.Vertex[string]])
	arcs := c.ArcsMut().(*storage.HashMap[core.ArcKey, core.Arc[unit]])
	edges := c.EdgesMut().(*storage.SlotMap[core.EdgeKey, core.Edge[unit]])
	faces := c.FacesMut().(*storage.SlotMap[core.FaceKey, core.Face[unit]])

	keys := make([]core.VertexKey, n)
	for i := range keys {
		keys[i] = vertices.Insert(core.Vertex[string]{Data: "v" + string(rune('0'+i))})
	}
	ring := make([]core.ArcKey, n)
	for i := range ring {
		ring[i] = core.ArcKey{Source: keys[i], Destination: keys[(i+1)%n]}
	}
	f := faces.Insert(core.Face[unit]{Arc: ring[0]})
	for i, ab := range ring {
		e := edges.Insert(core.Edge[unit]{Arc: ab})
		arcs.InsertWithKey(ab, core.Arc[unit]{
			Next:     ring[(i+1)%n],
			Previous: ring[(i+n-1)%n],
			Edge:     e,
			Face:     f,
		})
		arcs.InsertWithKey(ab.Opposite(), core.Arc[unit]{Edge: e})
		v, ok := vertices.GetMut(keys[i])
		require.True(t, ok)
		v.Arc = ab
	}

	return c, keys, f
}
