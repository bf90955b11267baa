package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfiniteHashTable_Basic(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	it.Set("lin", 1)
	v, err := it.Get("lin")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, it.Len())

	// Overwrite.
	it.Set("lin", 5)
	v, err = it.Get("lin")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, it.Len())

	_, err = it.Get("leg")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, it.Delete("leg"), ErrKeyNotFound)

	require.NoError(t, it.Delete("lin"))
	assert.False(t, it.Contains("lin"))
	assert.Equal(t, 0, it.Len())
}

func TestInfiniteHashTable_CollisionNesting(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	// All three share 'l' and collide in the root node.
	it.Set("lin", 1)
	it.Set("leg", 2)
	it.Set("low", 3)

	assert.Equal(t, 3, it.Len())
	for key, want := range map[string]int{"lin": 1, "leg": 2, "low": 3} {
		v, err := it.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	// 'l' = 108 -> slot 4; the nested node routes on the second
	// character: 'i' -> 1, 'e' -> 23, 'o' -> 7.
	path, err := it.Path("lin")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, path)

	path, err = it.Path("leg")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 23}, path)

	path, err = it.Path("low")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 7}, path)
}

func TestInfiniteHashTable_DeepNesting(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	// Shared two-character prefix: the pair separates at level 2.
	it.Set("aaa", 1)
	it.Set("aab", 2)

	assert.Equal(t, 2, it.Len())

	path, err := it.Path("aaa")
	require.NoError(t, err)
	assert.Equal(t, []int{19, 19, 19}, path)

	path, err = it.Path("aab")
	require.NoError(t, err)
	assert.Equal(t, []int{19, 19, 20}, path)
}

func TestInfiniteHashTable_OverflowSlot(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	// "x" is exhausted at level 1 and falls to the overflow slot of
	// the nested node; "xy" still has a character to route on.
	it.Set("x", 1)
	it.Set("xy", 2)

	v, err := it.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = it.Get("xy")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	path, err := it.Path("x")
	require.NoError(t, err)
	assert.Equal(t, []int{16, 26}, path)
}

func TestInfiniteHashTable_CollapseOnDelete(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	it.Set("lin", 1)
	it.Set("leg", 2)

	// The collision forced a nested node.
	path, err := it.Path("lin")
	require.NoError(t, err)
	require.Len(t, path, 2)

	require.NoError(t, it.Delete("leg"))

	// The nested node collapsed back into a single leaf at the
	// parent level, not a nested node of size 1.
	path, err = it.Path("lin")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, path)

	v, err := it.Get("lin")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, it.Len())
}

func TestInfiniteHashTable_DeleteCountsThroughLevels(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	it.Set("lin", 1)
	it.Set("leg", 2)
	it.Set("low", 3)
	it.Set("mine", 4)
	require.Equal(t, 4, it.Len())

	require.NoError(t, it.Delete("low"))
	assert.Equal(t, 3, it.Len())

	require.NoError(t, it.Delete("lin"))
	assert.Equal(t, 2, it.Len())

	// "leg" collapsed back to the root level after its siblings left.
	path, err := it.Path("leg")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, path)

	require.NoError(t, it.Delete("leg"))
	require.NoError(t, it.Delete("mine"))
	assert.Equal(t, 0, it.Len())
}

func TestInfiniteHashTable_PathMissing(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	_, err := it.Path("lin")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	it.Set("lin", 1)
	_, err = it.Path("leg")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// A mismatched leaf along the way also means not-found.
	it.Set("leg", 2)
	_, err = it.Path("lost")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestInfiniteHashTable_ItemsAndSortedKeys(t *testing.T) {
	it := NewInfiniteHashTable[int]()

	entries := map[string]int{
		"lin": 1, "leg": 2, "low": 3, "mine": 4, "jake": 5, "linger": 6,
	}
	for k, v := range entries {
		it.Set(k, v)
	}

	items := it.Items()
	require.Len(t, items, len(entries))
	collected := make(map[string]int, len(items))
	for _, item := range items {
		collected[item.Key] = item.Value
	}
	assert.Equal(t, entries, collected)

	assert.Equal(t,
		[]string{"jake", "leg", "lin", "linger", "low", "mine"},
		it.SortedKeys())
}
