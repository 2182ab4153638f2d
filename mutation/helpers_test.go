// SPDX-License-Identifier: MIT
// Package mutation_test contains fixtures shared by the mutation tests.

package mutation_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/mutation"
	"github.com/katalvlaran/lvmesh/storage"
)

type unit = struct{}

type (
	mesh    = core.Core[string, unit, unit, unit]
	session = mutation.Mutation[string, unit, unit, unit]
)

// quiet returns a logger that drops everything.
func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// open starts a session over c with a silent logger.
func open(t *testing.T, c *mesh, opts ...mutation.Option) *session {
	t.Helper()
	m, err := mutation.New(c, append([]mutation.Option{mutation.WithLogger(quiet())}, opts...)...)
	require.NoError(t, err)

	return m
}

// insertPolygon inserts one vertex per name and a face over them in order.
func insertPolygon(t *testing.T, m *session, names ...string) ([]core.VertexKey, core.FaceKey) {
	t.Helper()
	keys := make([]core.VertexKey, len(names))
	for i, name := range names {
		keys[i] = m.InsertVertex(name)
	}

	return keys, insertFace(t, m, keys...)
}

// insertFace inserts a face over existing vertices.
func insertFace(t *testing.T, m *session, keys ...core.VertexKey) core.FaceKey {
	t.Helper()
	cache, err := mutation.SnapshotFaceInsert[string, unit, unit, unit](m, keys, unit{})
	require.NoError(t, err)
	f, err := m.InsertFace(cache)
	require.NoError(t, err)

	return f
}

// commit commits m and fails the test on error.
func commit(t *testing.T, m *session) (*mesh, mutation.Rekeying) {
	t.Helper()
	c, rk, err := m.Commit()
	require.NoError(t, err)

	return c, rk
}

// resolve maps provisional vertex keys through rk.
func resolve(rk mutation.Rekeying, keys []core.VertexKey) []core.VertexKey {
	out := make([]core.VertexKey, len(keys))
	for i, k := range keys {
		out[i] = rk.Vertex(k)
	}

	return out
}

// quad returns a committed core holding the single face a-b-c-d.
func quad(t *testing.T) (*mesh, []core.VertexKey, core.FaceKey) {
	t.Helper()
	m := open(t, core.New[string, unit, unit, unit]())
	keys, f := insertPolygon(t, m, "a", "b", "c", "d")
	c, rk := commit(t, m)

	return c, resolve(rk, keys), rk.Face(f)
}

// strip returns two quads sharing the edge v1-v4:
//
//	v0 - v1 - v2
//	|  A |  B |
//	v3 - v4 - v5
func strip(t *testing.T) (*mesh, []core.VertexKey, [2]core.FaceKey) {
	t.Helper()
	m := open(t, core.New[string, unit, unit, unit]())
	v := make([]core.VertexKey, 6)
	for i := range v {
		v[i] = m.InsertVertex(string(rune('0' + i)))
	}
	a := insertFace(t, m, v[0], v[1], v[4], v[3])
	b := insertFace(t, m, v[1], v[2], v[5], v[4])
	c, rk := commit(t, m)

	return c, resolve(rk, v), [2]core.FaceKey{rk.Face(a), rk.Face(b)}
}

// cubeFaces lists the six outward-wound quads of a cube over vertices 0..7.
var cubeFaces = [][]int{
	{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
	{2, 3, 7, 6}, {0, 4, 7, 3}, {1, 2, 6, 5},
}

// cube returns a committed closed cube.
func cube(t *testing.T) (*mesh, []core.VertexKey) {
	t.Helper()
	m := open(t, core.New[string, unit, unit, unit]())
	v := make([]core.VertexKey, 8)
	for i := range v {
		v[i] = m.InsertVertex(string(rune('0' + i)))
	}
	for _, face := range cubeFaces {
		keys := make([]core.VertexKey, len(face))
		for i, idx := range face {
			keys[i] = v[idx]
		}
		insertFace(t, m, keys...)
	}
	c, rk := commit(t, m)

	return c, resolve(rk, v)
}

// counts returns (vertices, arcs, edges, faces).
func counts(c core.Source[string, unit, unit, unit]) [4]int {
	return [4]int{c.Vertices().Len(), c.Arcs().Len(), c.Edges().Len(), c.Faces().Len()}
}

// contents snapshots every storage of c for deep comparison.
type contents struct {
	Vertices map[core.VertexKey]core.Vertex[string]
	Arcs     map[core.ArcKey]core.Arc[unit]
	Edges    map[core.EdgeKey]core.Edge[unit]
	Faces    map[core.FaceKey]core.Face[unit]
}

func snapshot(c core.Source[string, unit, unit, unit]) contents {
	return contents{
		Vertices: collect(c.Vertices()),
		Arcs:     collect(c.Arcs()),
		Edges:    collect(c.Edges()),
		Faces:    collect(c.Faces()),
	}
}

func collect[K comparable, E any](r storage.Reader[K, E]) map[K]E {
	out := make(map[K]E, r.Len())
	for k, e := range r.All() {
		out[k] = e
	}

	return out
}

// storageKey returns a first-generation slot key that no fixture hands out.
func storageKey(i uint32) storage.SlotKey {
	return storage.SlotKey{Index: 1000 + i, Generation: 1}
}
