// SPDX-License-Identifier: MIT

package graph_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/graph"
	"github.com/katalvlaran/lvmesh/mutation"
)

type unit = struct{}

type (
	mesh    = graph.Graph[string, unit, unit, unit]
	session = mutation.Mutation[string, unit, unit, unit]
)

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// build returns a Graph with n vertices named "0".."n-1" and one face per
// index list, together with the final vertex and face keys.
func build(tb testing.TB, n int, faces ...[]int) (*mesh, []core.VertexKey, []core.FaceKey) {
	tb.Helper()
	g := graph.New[string, unit, unit, unit](graph.WithLogger(quiet()))
	var (
		vs []core.VertexKey
		fs []core.FaceKey
	)
	rk, err := g.Mutate(func(m *session) error {
		vs = make([]core.VertexKey, n)
		for i := range vs {
			vs[i] = m.InsertVertex(strconv.Itoa(i))
		}
		for _, face := range faces {
			keys := make([]core.VertexKey, len(face))
			for i, idx := range face {
				keys[i] = vs[idx]
			}
			cache, err := mutation.SnapshotFaceInsert[string, unit, unit, unit](m, keys, unit{})
			if err != nil {
				return err
			}
			f, err := m.InsertFace(cache)
			if err != nil {
				return err
			}
			fs = append(fs, f)
		}
		return nil
	})
	require.NoError(tb, err)
	for i := range vs {
		vs[i] = rk.Vertex(vs[i])
	}
	for i := range fs {
		fs[i] = rk.Face(fs[i])
	}

	return g, vs, fs
}

var (
	quadFaces  = [][]int{{0, 1, 2, 3}}
	stripFaces = [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	cubeFaces  = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{2, 3, 7, 6}, {0, 4, 7, 3}, {1, 2, 6, 5},
	}
)

// grid returns rows×cols quads over (rows+1)×(cols+1) vertices.
func grid(tb testing.TB, rows, cols int) *mesh {
	tb.Helper()
	at := func(r, c int) int { return r*(cols+1) + c }
	var faces [][]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			faces = append(faces, []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)})
		}
	}
	g, _, _ := build(tb, (rows+1)*(cols+1), faces...)

	return g
}

// counts returns (vertices, arcs, edges, faces).
func counts(g *mesh) [4]int {
	return [4]int{g.VertexCount(), g.ArcCount(), g.EdgeCount(), g.FaceCount()}
}

// contents is a deep snapshot of a Graph's storages.
type contents struct {
	Vertices map[core.VertexKey]core.Vertex[string]
	Arcs     map[core.ArcKey]core.Arc[unit]
	Edges    map[core.EdgeKey]core.Edge[unit]
	Faces    map[core.FaceKey]core.Face[unit]
}

func snapshot(g *mesh) contents {
	var out contents
	g.View(func(src core.Source[string, unit, unit, unit]) {
		out.Vertices = make(map[core.VertexKey]core.Vertex[string])
		for k, v := range src.Vertices().All() {
			out.Vertices[k] = v
		}
		out.Arcs = make(map[core.ArcKey]core.Arc[unit])
		for k, a := range src.Arcs().All() {
			out.Arcs[k] = a
		}
		out.Edges = make(map[core.EdgeKey]core.Edge[unit])
		for k, e := range src.Edges().All() {
			out.Edges[k] = e
		}
		out.Faces = make(map[core.FaceKey]core.Face[unit])
		for k, f := range src.Faces().All() {
			out.Faces[k] = f
		}
	})

	return out
}
