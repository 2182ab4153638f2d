// SPDX-License-Identifier: MIT

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/storage"
)

func TestHashMap_InsertWithKeyDisplaces(t *testing.T) {
	m := storage.NewHashMap[string, item]()
	assert.Equal(t, storage.KindHash, m.Kind())

	_, displaced := m.InsertWithKey("x", item{Name: "first"})
	assert.False(t, displaced)

	old, displaced := m.InsertWithKey("x", item{Name: "second"})
	require.True(t, displaced)
	assert.Equal(t, "first", old.Name)
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)
}

func TestHashMap_GetMutIsStable(t *testing.T) {
	m := storage.NewHashMap[int, item]()
	m.InsertWithKey(1, item{Value: 1})
	p, ok := m.GetMut(1)
	require.True(t, ok)

	for i := 2; i < 100; i++ {
		m.InsertWithKey(i, item{Value: i})
	}
	p.Value = 42
	got, _ := m.Get(1)
	assert.Equal(t, 42, got.Value, "pointer must survive map growth")

	_, ok = m.GetMut(1000)
	assert.False(t, ok)
}

func TestHashMap_RemoveAndClone(t *testing.T) {
	m := storage.NewHashMap[int, int]()
	for i := 0; i < 4; i++ {
		m.InsertWithKey(i, i*i)
	}
	c := m.Clone()

	v, ok := m.Remove(3)
	require.True(t, ok)
	assert.Equal(t, 9, v)
	_, ok = m.Remove(3)
	assert.False(t, ok)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 4, 3: 9}, collect[int, int](c))
	assert.Equal(t, m.Len(), count[int, int](m))
}
