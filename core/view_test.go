// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
)

func TestFaceRing_Quad(t *testing.T) {
	c, keys, f := polygonCore(t, 4)

	ring, err := core.FaceRing[string, unit, unit, unit](c, f)
	require.NoError(t, err)
	require.Len(t, ring, 4)
	for i, ab := range ring {
		assert.Equal(t, keys[i], ab.Source)
		assert.Equal(t, keys[(i+1)%4], ab.Destination)
	}

	vs, err := core.FaceVertices[string, unit, unit, unit](c, f)
	require.NoError(t, err)
	assert.Equal(t, keys, vs)
}

func TestFaceRing_Errors(t *testing.T) {
	c, keys, f := polygonCore(t, 3)

	_, err := core.FaceRing[string, unit, unit, unit](c, core.FaceKey{Index: 9, Generation: 1})
	assert.ErrorIs(t, err, core.ErrEntityNotFound)

	// Break the ring: the last arc no longer leads back to the first.
	last := core.ArcKey{Source: keys[2], Destination: keys[0]}
	arc, ok := c.ArcsMut().GetMut(last)
	require.True(t, ok)
	arc.Next = last.Opposite()

	_, err = core.FaceRing[string, unit, unit, unit](c, f)
	assert.ErrorIs(t, err, core.ErrTopologyMalformed)
}

func TestOutgoingArcsAndIncidentFaces(t *testing.T) {
	c, keys, f := polygonCore(t, 4)

	out := core.OutgoingArcs[string, unit, unit, unit](c, keys[1])
	assert.Equal(t, []core.ArcKey{
		{Source: keys[1], Destination: keys[0]},
		{Source: keys[1], Destination: keys[2]},
	}, out)

	assert.Equal(t, []core.FaceKey{f}, core.IncidentFaces[string, unit, unit, unit](c, keys[1]))
	assert.Empty(t, core.OutgoingArcs[string, unit, unit, unit](c, core.VertexKey{Index: 42, Generation: 1}))
}
