// SPDX-License-Identifier: MIT

package builder

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mutation"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, mutation.Transacted, cfg.mode)
	assert.NotNil(t, cfg.logger)
	assert.False(t, cfg.reversed)
}

func TestBuilderConfig_LastWins(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	cfg := newBuilderConfig(
		WithMode(mutation.Immediate),
		WithMode(mutation.Transacted),
		WithLogger(l),
		WithReversedWinding(),
	)
	assert.Equal(t, mutation.Transacted, cfg.mode)
	assert.Same(t, l, cfg.logger)
	assert.True(t, cfg.reversed)
	assert.Len(t, cfg.sessionOptions(), 2)
}

func TestSurface_Recording(t *testing.T) {
	var s Surface
	assert.Equal(t, 0, s.AddVertices(3))
	assert.Equal(t, 3, s.AddVertices(2))
	assert.Equal(t, 3, s.AddVertices(-1), "negative counts allocate nothing")
	require.Equal(t, 5, s.VertexCount())

	require.NoError(t, s.AddFace(0, 1, 2))
	require.ErrorIs(t, s.AddFace(0, 1), ErrTooFewVertices)
	require.ErrorIs(t, s.AddFace(0, 1, 5), ErrBadIndexBuffer)
	require.ErrorIs(t, s.AddFace(0, 2, 0), ErrBadIndexBuffer)

	faces := s.Faces()
	require.Equal(t, [][]int{{0, 1, 2}}, faces)
	faces[0][0] = 4
	assert.Equal(t, [][]int{{0, 1, 2}}, s.Faces(), "Faces returns a copy")
}

func TestEmit_OffsetAndReverse(t *testing.T) {
	var s Surface
	s.AddVertices(6)
	require.NoError(t, emit(&s, newBuilderConfig(), 3, 0, 1, 2))
	require.NoError(t, emit(&s, newBuilderConfig(WithReversedWinding()), 0, 0, 1, 2))
	assert.Equal(t, [][]int{{3, 4, 5}, {2, 1, 0}}, s.Faces())
}

func TestValidateMin(t *testing.T) {
	require.NoError(t, validateMin(methodGrid, "rows", 1, MinGridDim))
	err := validateMin(methodGrid, "rows", 0, MinGridDim)
	require.ErrorIs(t, err, ErrTooFewVertices)
	assert.EqualError(t, err, "Grid: rows=0 < min=1: builder: parameter too small")
}

func TestPlatonicFaces_Consistent(t *testing.T) {
	for name, faces := range platonicFaces {
		n := platonicVertexCounts[name]
		arcs := make(map[[2]int]bool)
		used := make(map[int]bool)
		for _, f := range faces {
			for i, v := range f {
				a := [2]int{v, f[(i+1)%len(f)]}
				require.False(t, arcs[a], "%s: arc %v repeated", name, a)
				arcs[a] = true
				used[v] = true
			}
		}
		for a := range arcs {
			assert.True(t, arcs[[2]int{a[1], a[0]}], "%s: arc %v unpaired", name, a)
		}
		assert.Len(t, used, n, "%s: every vertex used", name)
		assert.Equal(t, 2, n-len(arcs)/2+len(faces), "%s: Euler characteristic", name)
	}
}
