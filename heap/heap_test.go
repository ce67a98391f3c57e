package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/heap"
)

func TestHeap_InsertDeleteMinOrder(t *testing.T) {
	h := heap.New(5)
	require.NoError(t, h.Insert(3.0, 0))
	require.NoError(t, h.Insert(1.0, 1))
	require.NoError(t, h.Insert(4.0, 2))
	require.NoError(t, h.Insert(1.5, 3))
	require.NoError(t, h.Insert(2.0, 4))
	require.Equal(t, 5, h.Size())

	want := []int{1, 3, 4, 0, 2}
	for _, id := range want {
		require.True(t, h.Contains(id))
		got := h.DeleteMin()
		require.Equal(t, id, got)
	}
	require.Equal(t, 0, h.Size())
}

func TestHeap_UpdateDecreaseAndIncrease(t *testing.T) {
	h := heap.New(3)
	require.NoError(t, h.Insert(10, 0))
	require.NoError(t, h.Insert(20, 1))
	require.NoError(t, h.Insert(30, 2))

	require.NoError(t, h.Update(2, 5))
	require.Equal(t, 2, h.DeleteMin())

	require.NoError(t, h.Update(1, 100))
	require.Equal(t, 0, h.DeleteMin())
	require.Equal(t, 1, h.DeleteMin())
}

func TestHeap_UpdateUnknownID(t *testing.T) {
	h := heap.New(2)
	require.NoError(t, h.Insert(1, 0))
	require.ErrorIs(t, h.Update(1, 5), heap.ErrUnknownID)
}

func TestHeap_InsertOutOfRange(t *testing.T) {
	h := heap.New(2)
	require.ErrorIs(t, h.Insert(1, 5), heap.ErrIDOutOfRange)
}

func TestHeap_ContainsAfterDelete(t *testing.T) {
	h := heap.New(2)
	require.NoError(t, h.Insert(1, 0))
	require.True(t, h.Contains(0))
	h.DeleteMin()
	require.False(t, h.Contains(0))
}
