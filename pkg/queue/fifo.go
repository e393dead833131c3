package queue

import "time"

// Queue is the in-memory FIFO hand-off of task identifiers from producers to
// workers. It is not the source of truth; the store is. The queue exists so
// worker wakeup is prompt and producers never wait on workers.
//
// Delivery is at-least-once: after a crash the startup requeue re-pushes
// every task still queued in the store, so consumers must check the task's
// current status before processing.
type Queue struct {
	ch chan string
}

// NewQueue creates a queue with the given capacity. Push returns ErrQueueFull
// once the capacity is reached, which back-pressures producers.
func NewQueue(capacity int) *Queue {
	return &Queue{ch: make(chan string, capacity)}
}

// Push enqueues a task identifier without blocking.
func (q *Queue) Push(taskID string) error {
	select {
	case q.ch <- taskID:
		return nil
	default:
		return ErrQueueFull
	}
}

// PushWait enqueues a task identifier, blocking up to timeout for capacity.
// Returns ErrQueueFull when the timeout elapses with the queue still full.
// Producers that persisted the task first use this as their bounded retry;
// the periodic stale-queued sweep covers anything that still misses.
func (q *Queue) PushWait(taskID string, timeout time.Duration) error {
	select {
	case q.ch <- taskID:
		return nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case q.ch <- taskID:
		return nil
	case <-timer.C:
		return ErrQueueFull
	}
}

// Pop dequeues the next task identifier, blocking up to timeout.
// Returns false when the timeout elapses with nothing available.
func (q *Queue) Pop(timeout time.Duration) (string, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case taskID := <-q.ch:
		return taskID, true
	case <-timer.C:
		return "", false
	}
}

// Len returns the current queue depth.
func (q *Queue) Len() int {
	return len(q.ch)
}
