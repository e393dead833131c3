// Package queue provides the durable task queue and worker pool that turn
// queued task identifiers into executed tasks with full accounting.
package queue

import (
	"context"
	"errors"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrQueueFull indicates the in-memory queue is at capacity; the caller
	// should surface back-pressure instead of blocking.
	ErrQueueFull = errors.New("task queue is full")
)

// TaskExecutor runs one claimed task end to end: prompt assembly, CLI
// invocation, output streaming and periodic store flushes.
//
// The executor streams progressively during execution; the worker handles
// claiming, the task timeout, terminal status writes, conversation and
// session bookkeeping, and event cleanup.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one task execution. Accounting
// fields may be partial when the task failed midway.
type ExecutionResult struct {
	Status task.Status // completed, failed, cancelled
	Result models.TaskResult
	Err    error // details when Status is failed or cancelled
}

// CompletionNotifier sends a best-effort outbound notification when a task
// reaches a terminal state. May be nil (notifications disabled).
type CompletionNotifier interface {
	NotifyTaskFinished(ctx context.Context, t *ent.Task, result *ExecutionResult)
}

// CombineNotifiers fans a terminal notification out to several notifiers.
// Nil entries are skipped; nil is returned when none remain.
func CombineNotifiers(notifiers ...CompletionNotifier) CompletionNotifier {
	active := make([]CompletionNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return multiNotifier(active)
}

type multiNotifier []CompletionNotifier

func (m multiNotifier) NotifyTaskFinished(ctx context.Context, t *ent.Task, result *ExecutionResult) {
	for _, n := range m {
		n.NotifyTaskFinished(ctx, t, result)
	}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	RunningTasks   int            `json:"running_tasks"`
	QueueDepth     int            `json:"queue_depth"`
	QueuedInStore  int            `json:"queued_in_store"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastSweep      string         `json:"last_sweep,omitempty"`
	TasksReclaimed int            `json:"tasks_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string `json:"id"`
	Status         string `json:"status"` // "idle" or "working"
	CurrentTaskID  string `json:"current_task_id,omitempty"`
	TasksProcessed int    `json:"tasks_processed"`
	LastActivity   string `json:"last_activity"`
}
