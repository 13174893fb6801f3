package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	arr := makeInts(t, 0, 1, 2, 3, 4)
	iter := arr.Iterator()
	i := 0
	for iter.HasNext() {
		v, err := iter.Next()
		require.NoError(t, err)
		if v != i {
			t.Errorf("wrong value at: %d", i)
		}
		i++
	}
	assert.Equal(t, 5, i)
	_, err := iter.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.False(t, iter.HasNext())
}

func TestIterator_Empty(t *testing.T) {
	arr := makeInts(t)
	iter := arr.Iterator()
	assert.False(t, iter.HasNext())
	_, err := iter.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.ErrorIs(t, iter.Remove(), ErrIllegalCursorState)
}

func TestIterator_RemoveAll(t *testing.T) {
	for size := 0; size < 10; size++ {
		arr, err := MakeWithDefault(size, 1)
		require.NoError(t, err)
		iter := arr.Iterator()
		removed := 0
		for iter.HasNext() {
			_, err := iter.Next()
			require.NoError(t, err)
			require.NoError(t, iter.Remove())
			removed++
			assert.Equal(t, size-removed, arr.Size())
		}
		assert.Equal(t, size, removed)
		assert.Equal(t, 0, arr.Size())
		assert.Nil(t, arr.head.next)
	}
}

func TestIterator_RemoveSome(t *testing.T) {
	arr := makeInts(t, 0, 1, 2, 3, 4, 5, 6, 7)
	iter := arr.Iterator()
	var seen []int
	for iter.HasNext() {
		v, err := iter.Next()
		require.NoError(t, err)
		seen = append(seen, v)
		if v%2 == 0 {
			require.NoError(t, iter.Remove())
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, seen)
	assert.Equal(t, []int{1, 3, 5, 7}, arr.Slice())
	assert.Equal(t, 4, arr.Size())
	assert.Equal(t, 4, countNodes(&arr.head))
}

func TestIterator_IllegalRemove(t *testing.T) {
	arr := makeInts(t, 1, 2, 3)
	iter := arr.Iterator()
	assert.ErrorIs(t, iter.Remove(), ErrIllegalCursorState)

	v, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, iter.Remove())
	assert.ErrorIs(t, iter.Remove(), ErrIllegalCursorState)
	assert.Equal(t, []int{2, 3}, arr.Slice())

	// removal is legal again after advancing
	v, err = iter.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, iter.Remove())
	assert.Equal(t, []int{3}, arr.Slice())
	assert.Equal(t, 1, arr.Size())
}

func TestIterator_RemoveLast(t *testing.T) {
	arr := makeInts(t, 1, 2, 3)
	iter := arr.Iterator()
	for iter.HasNext() {
		_, _ = iter.Next()
	}
	require.NoError(t, iter.Remove())
	assert.False(t, iter.HasNext())
	assert.Equal(t, []int{1, 2}, arr.Slice())

	// the array stays usable after the tail was removed through the cursor
	require.NoError(t, arr.Resize(4))
	assert.Equal(t, []int{1, 2, 0, 0}, arr.Slice())
}

func TestIterator_Cursor(t *testing.T) {
	arr := makeInts(t, 7)
	var cursor Cursor[int] = arr.Iterator()
	assert.True(t, cursor.HasNext())
	v, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	require.NoError(t, cursor.Remove())
	assert.True(t, arr.Empty())
}
