// SPDX-License-Identifier: MIT

package builder_test

import (
	"io"
	"slices"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/graph"
	"github.com/katalvlaran/lvmesh/mutation"
)

type unit = struct{}

type mesh = graph.Graph[string, unit, unit, unit]

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func name(i int) string { return strconv.Itoa(i) }

func build(cons ...builder.Constructor) (*mesh, error) {
	return buildWith(nil, cons...)
}

func buildWith(opts []builder.BuilderOption, cons ...builder.Constructor) (*mesh, error) {
	opts = append([]builder.BuilderOption{builder.WithLogger(quiet())}, opts...)

	return builder.BuildGraph[string, unit, unit, unit](name, opts, cons...)
}

func requireCounts(t *testing.T, g *mesh, v, a, e, f int) {
	t.Helper()
	require.Equal(t, []int{v, a, e, f}, []int{g.VertexCount(), g.ArcCount(), g.EdgeCount(), g.FaceCount()},
		"vertices, arcs, edges, faces")
}

// ring returns the vertex names of face f rotated to start at its smallest name.
func ring(t *testing.T, g *mesh, f core.FaceKey) []string {
	t.Helper()
	keys, err := g.FaceVertices(f)
	require.NoError(t, err)
	names := make([]string, len(keys))
	for i, k := range keys {
		v, ok := g.Vertex(k)
		require.True(t, ok)
		names[i] = v.Data
	}
	lo := slices.IndexFunc(names, func(s string) bool {
		n, _ := strconv.Atoi(s)
		for _, o := range names {
			m, _ := strconv.Atoi(o)
			if m < n {
				return false
			}
		}
		return true
	})

	return append(names[lo:], names[:lo]...)
}

func TestBuildGraph_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		cons       builder.Constructor
		v, e, f    int
		boundaries bool
	}{
		{"Polygon(5)", builder.Polygon(5), 5, 5, 1, true},
		{"Wheel(4)", builder.Wheel(4), 5, 8, 4, true},
		{"Grid(2,3)", builder.Grid(2, 3), 12, 17, 6, true},
		{"Grid(1,1)", builder.Grid(1, 1), 4, 4, 1, true},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 4, false},
		{"Cube", builder.PlatonicSolid(builder.Cube), 8, 12, 6, false},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 8, false},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron), 20, 30, 12, false},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 20, false},
		{"Indices(strip)", builder.Indices([]int{0, 1, 2, 0, 2, 3}, 3), 4, 5, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := build(tc.cons)
			require.NoError(t, err)
			requireCounts(t, g, tc.v, 2*tc.e, tc.e, tc.f)

			boundary := 0
			g.View(func(src core.Source[string, unit, unit, unit]) {
				for _, a := range src.Arcs().All() {
					if a.Face.IsZero() {
						boundary++
					}
				}
			})
			assert.Equal(t, tc.boundaries, boundary > 0, "boundary arcs: %d", boundary)
		})
	}
}

func TestBuildGraph_Arity(t *testing.T) {
	g, err := build(builder.PlatonicSolid(builder.Dodecahedron))
	require.NoError(t, err)
	for _, f := range g.FaceKeys() {
		n, err := g.Arity(f)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	}

	g, err = build(builder.Wheel(6))
	require.NoError(t, err)
	for _, f := range g.FaceKeys() {
		r := ring(t, g, f)
		assert.Equal(t, "0", r[0], "every blade touches the hub")
		assert.Len(t, r, 3)
	}
}

func TestBuildGraph_VertexData(t *testing.T) {
	g, err := build(builder.Polygon(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, ring(t, g, g.FaceKeys()[0]))

	// nil vertexData leaves the zero value.
	z, err := builder.BuildGraph[int, unit, unit, unit](nil, []builder.BuilderOption{builder.WithLogger(quiet())}, builder.Polygon(3))
	require.NoError(t, err)
	for _, k := range z.VertexKeys() {
		v, ok := z.Vertex(k)
		require.True(t, ok)
		assert.Zero(t, v.Data)
	}
}

func TestBuildGraph_ReversedWinding(t *testing.T) {
	g, err := buildWith([]builder.BuilderOption{builder.WithReversedWinding()}, builder.Polygon(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "4", "3", "2", "1"}, ring(t, g, g.FaceKeys()[0]))

	// Reversal keeps closed solids consistent.
	g, err = buildWith([]builder.BuilderOption{builder.WithReversedWinding()}, builder.PlatonicSolid(builder.Icosahedron))
	require.NoError(t, err)
	requireCounts(t, g, 12, 60, 30, 20)
}

func TestBuildGraph_ImmediateMode(t *testing.T) {
	g, err := buildWith([]builder.BuilderOption{builder.WithMode(mutation.Immediate)}, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)
	requireCounts(t, g, 8, 24, 12, 6)

	_, err = buildWith([]builder.BuilderOption{builder.WithMode(mutation.Immediate)}, builder.Indices([]int{0, 1, 3}, 3))
	require.ErrorIs(t, err, core.ErrTopologyMalformed)
}

func TestBuildGraph_Composition(t *testing.T) {
	g, err := build(builder.Polygon(3), builder.Polygon(4))
	require.NoError(t, err)
	requireCounts(t, g, 7, 14, 7, 2)

	patches, err := g.Patches()
	require.NoError(t, err)
	assert.Len(t, patches, 2)

	// Later constructors allocate after earlier ones.
	names := [][]string{ring(t, g, g.FaceKeys()[0]), ring(t, g, g.FaceKeys()[1])}
	slices.SortFunc(names, func(a, b []string) int { return len(a) - len(b) })
	assert.Equal(t, [][]string{{"0", "1", "2"}, {"3", "4", "5", "6"}}, names)
}

func TestBuildGraph_Deterministic(t *testing.T) {
	a, err := build(builder.Grid(3, 3))
	require.NoError(t, err)
	b, err := build(builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, a.VertexKeys(), b.VertexKeys())
	assert.Equal(t, a.EdgeKeys(), b.EdgeKeys())
	assert.Equal(t, a.FaceKeys(), b.FaceKeys())
	for _, f := range a.FaceKeys() {
		assert.Equal(t, ring(t, a, f), ring(t, b, f))
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"polygon too small", []builder.Constructor{builder.Polygon(2)}, builder.ErrTooFewVertices},
		{"wheel too small", []builder.Constructor{builder.Wheel(2)}, builder.ErrTooFewVertices},
		{"grid zero rows", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"grid zero cols", []builder.Constructor{builder.Grid(3, 0)}, builder.ErrTooFewVertices},
		{"indices arity", []builder.Constructor{builder.Indices([]int{0, 1}, 2)}, builder.ErrTooFewVertices},
		{"indices empty", []builder.Constructor{builder.Indices(nil, 3)}, builder.ErrBadIndexBuffer},
		{"indices ragged", []builder.Constructor{builder.Indices([]int{0, 1, 2, 3}, 3)}, builder.ErrBadIndexBuffer},
		{"indices negative", []builder.Constructor{builder.Indices([]int{0, -1, 2}, 3)}, builder.ErrBadIndexBuffer},
		{"indices repeated", []builder.Constructor{builder.Indices([]int{0, 1, 1}, 3)}, builder.ErrBadIndexBuffer},
		{"unknown solid", []builder.Constructor{builder.PlatonicSolid(builder.PlatonicName(42))}, builder.ErrOptionViolation},
		{"nil constructor", []builder.Constructor{builder.Polygon(3), nil}, builder.ErrConstructFailed},
		{"unused vertex", []builder.Constructor{builder.Indices([]int{0, 1, 3}, 3)}, core.ErrTopologyMalformed},
		{"same winding twice", []builder.Constructor{builder.Indices([]int{0, 1, 2, 0, 1, 2}, 3)}, core.ErrTopologyConflict},
		{"shared arc", []builder.Constructor{builder.Indices([]int{0, 1, 2, 0, 1, 3}, 3)}, core.ErrTopologyConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := build(tc.cons...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), "BuildGraph")
		})
	}
}

func TestPlatonicName_String(t *testing.T) {
	assert.Equal(t, "Tetrahedron", builder.Tetrahedron.String())
	assert.Equal(t, "Icosahedron", builder.Icosahedron.String())
	assert.Equal(t, "Unknown", builder.PlatonicName(-1).String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithLogger(nil) })
	assert.Panics(t, func() { builder.WithMode(mutation.Mode(99)) })
}
