package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mullner-go/hclust/pqueue"
)

func TestBuild_EstablishesHeapArray(t *testing.T) {
	priorities := []float64{2, 1, 10, 5, 4, 4.5}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })
	assert.Equal(t, []int{1, 0, 5, 3, 4, 2}, h.ToArray())
}

func TestPop_ReturnsAscendingPriorityOrder(t *testing.T) {
	priorities := []float64{2, 1, 10, 5, 4, 4.5}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })

	var popped []int
	for i := 0; i < 4; i++ {
		popped = append(popped, h.Pop())
	}
	assert.Equal(t, []int{1, 0, 4, 5}, popped)
}

func TestPriorityOf_ErrorsAfterPop(t *testing.T) {
	priorities := []float64{2, 1, 10}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })
	popped := h.Pop()
	_, err := h.PriorityOf(popped)
	assert.ErrorIs(t, err, pqueue.ErrPopped)

	remaining := h.Peek()
	p, err := h.PriorityOf(remaining)
	require.NoError(t, err)
	assert.Equal(t, priorities[remaining], p)
}

func TestSetPriority_LoweringSiftsUp(t *testing.T) {
	priorities := []float64{5, 4, 3, 2, 1}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })
	require.Equal(t, 4, h.Peek())

	h.SetPriority(0, 0) // lower id 0's priority below everything
	assert.Equal(t, 0, h.Peek())
	p, err := h.PriorityOf(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestSetPriority_RaisingSiftsDown(t *testing.T) {
	priorities := []float64{1, 2, 3, 4, 5}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })
	require.Equal(t, 0, h.Peek())

	h.SetPriority(0, 100)
	assert.Equal(t, 1, h.Peek())
}

func TestHeap_FullDrainIsSorted(t *testing.T) {
	priorities := []float64{9, 3, 7, 1, 8, 2, 6, 4, 0, 5}
	h := pqueue.Build(len(priorities), func(i int) float64 { return priorities[i] })

	var got []float64
	for h.Len() > 0 {
		id := h.Pop()
		got = append(got, priorities[id])
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
}
