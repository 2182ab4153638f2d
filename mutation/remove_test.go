// SPDX-License-Identifier: MIT

package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/mutation"
)

func TestRemoveFace_LoneQuadEmptiesMesh(t *testing.T) {
	c, _, f := quad(t)

	m := open(t, c)
	plan, err := mutation.SnapshotFaceRemove[string, unit, unit, unit](m, f)
	require.NoError(t, err)
	assert.Len(t, plan.Edges(), 4)
	assert.Len(t, plan.Vertices(), 4)
	require.NoError(t, m.Remove(plan))
	c, _ = commit(t, m)

	assert.Equal(t, [4]int{0, 0, 0, 0}, counts(c))
}

func TestRemoveFace_KeepsSharedEdge(t *testing.T) {
	c, v, faces := strip(t)
	shared := core.ArcKey{Source: v[1], Destination: v[4]}

	m := open(t, c)
	plan, err := mutation.SnapshotFaceRemove[string, unit, unit, unit](m, faces[0])
	require.NoError(t, err)
	assert.Equal(t, []core.FaceKey{faces[0]}, plan.Faces())
	assert.Len(t, plan.Edges(), 3)
	assert.ElementsMatch(t, []core.VertexKey{v[0], v[3]}, plan.Vertices())
	require.NoError(t, m.Remove(plan))
	c, _ = commit(t, m)

	assert.Equal(t, [4]int{4, 8, 4, 1}, counts(c))
	arc, ok := c.Arcs().Get(shared)
	require.True(t, ok)
	assert.True(t, arc.Face.IsZero(), "the surviving arc becomes a boundary arc")
	assert.True(t, arc.Next.IsZero())

	// v1 led with 1->0, which is gone.
	v1, ok := c.Vertices().Get(v[1])
	require.True(t, ok)
	assert.Equal(t, v[1], v1.Arc.Source)
	assert.True(t, c.Arcs().Contains(v1.Arc))

	ring, err := core.FaceVertices[string, unit, unit, unit](c, faces[1])
	require.NoError(t, err)
	assert.Equal(t, []core.VertexKey{v[1], v[2], v[5], v[4]}, ring)
}

func TestRemoveEdge_Cube(t *testing.T) {
	c, v := cube(t)
	require.Equal(t, [4]int{8, 24, 12, 6}, counts(c))
	arc, ok := c.Arcs().Get(core.ArcKey{Source: v[0], Destination: v[1]})
	require.True(t, ok)

	m := open(t, c)
	plan, err := mutation.SnapshotEdgeRemove[string, unit, unit, unit](m, arc.Edge)
	require.NoError(t, err)
	assert.Len(t, plan.Faces(), 2)
	assert.Equal(t, []core.EdgeKey{arc.Edge}, plan.Edges())
	assert.Empty(t, plan.Vertices())
	require.NoError(t, m.Remove(plan))
	c, _ = commit(t, m)

	assert.Equal(t, [4]int{8, 22, 11, 4}, counts(c))
}

func TestRemoveVertex_Cube(t *testing.T) {
	c, v := cube(t)

	m := open(t, c)
	plan, err := mutation.SnapshotVertexRemove[string, unit, unit, unit](m, v[0])
	require.NoError(t, err)
	assert.Len(t, plan.Faces(), 3)
	assert.Len(t, plan.Edges(), 3)
	assert.Equal(t, []core.VertexKey{v[0]}, plan.Vertices())
	require.NoError(t, m.Remove(plan))
	c, _ = commit(t, m)

	assert.Equal(t, [4]int{7, 18, 9, 3}, counts(c))
	assert.False(t, c.Vertices().Contains(v[0]))
	for _, k := range []int{1, 3, 4} {
		vertex, ok := c.Vertices().Get(v[k])
		require.True(t, ok)
		assert.True(t, c.Arcs().Contains(vertex.Arc), "vertex %d keeps a live leading arc", k)
	}
}

func TestRemove_StalePlan(t *testing.T) {
	c, _, faces := strip(t)

	m := open(t, c)
	first, err := mutation.SnapshotFaceRemove[string, unit, unit, unit](m, faces[0])
	require.NoError(t, err)
	second, err := mutation.SnapshotFaceRemove[string, unit, unit, unit](m, faces[0])
	require.NoError(t, err)

	require.NoError(t, m.Remove(first))
	err = m.Remove(second)
	require.ErrorIs(t, err, core.ErrEntityNotFound)
	assert.ErrorIs(t, m.Err(), core.ErrEntityNotFound)

	back, _, err := m.Commit()
	require.Error(t, err)
	assert.Equal(t, [4]int{6, 14, 7, 2}, counts(back), "the rejected commit restores the strip")
}

func TestSnapshotRemove_NotFound(t *testing.T) {
	c, _, _ := quad(t)
	missing := storageKey(9)

	_, err := mutation.SnapshotFaceRemove[string, unit, unit, unit](c, core.FaceKey(missing))
	assert.ErrorIs(t, err, core.ErrEntityNotFound)
	_, err = mutation.SnapshotEdgeRemove[string, unit, unit, unit](c, core.EdgeKey(missing))
	assert.ErrorIs(t, err, core.ErrEntityNotFound)
	_, err = mutation.SnapshotVertexRemove[string, unit, unit, unit](c, core.VertexKey(missing))
	assert.ErrorIs(t, err, core.ErrEntityNotFound)
}
