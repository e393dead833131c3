package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue(8)

	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))
	require.NoError(t, q.Push("c"))
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Pop(time.Second)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueue_PushFullReturnsError(t *testing.T) {
	q := NewQueue(1)

	require.NoError(t, q.Push("a"))
	assert.ErrorIs(t, q.Push("b"), ErrQueueFull)

	// Draining frees capacity.
	_, ok := q.Pop(time.Second)
	require.True(t, ok)
	assert.NoError(t, q.Push("b"))
}

func TestQueue_PushWaitTimesOutWhenFull(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.Push("a"))

	start := time.Now()
	assert.ErrorIs(t, q.PushWait("b", 50*time.Millisecond), ErrQueueFull)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestQueue_PushWaitSucceedsWhenDrained(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.Push("a"))

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Pop(time.Second)
	}()

	require.NoError(t, q.PushWait("b", time.Second))
	got, ok := q.Pop(time.Second)
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestQueue_PopTimeout(t *testing.T) {
	q := NewQueue(1)

	start := time.Now()
	_, ok := q.Pop(50 * time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
