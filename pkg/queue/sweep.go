package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/droverhq/drover/pkg/services"
)

// staleQueuedThreshold is how long a task may sit queued in the store before
// the sweep re-pushes it. Normal tasks are delivered at creation; only tasks
// whose Push hit a full queue wait this long. Duplicate deliveries are safe,
// the claim is a conditional update.
const staleQueuedThreshold = time.Minute

// sweepState tracks worker-loss sweep metrics (thread-safe).
type sweepState struct {
	mu             sync.Mutex
	lastSweep      time.Time
	tasksReclaimed int
}

// runSweep periodically reclaims tasks stuck in running with no output
// activity. The operation is idempotent; a task a live worker is still
// heartbeating never crosses the threshold.
func (p *WorkerPool) runSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reclaimLostTasks(ctx); err != nil {
				slog.Error("Worker-loss sweep failed", "error", err)
			}
			if err := p.requeueStaleQueued(ctx); err != nil {
				slog.Error("Stale-queued sweep failed", "error", err)
			}
		}
	}
}

// reclaimLostTasks fails running tasks whose last output activity is older
// than the worker-loss threshold.
func (p *WorkerPool) reclaimLostTasks(ctx context.Context) error {
	orphans, err := p.deps.Tasks.FindOrphanedTasks(ctx, p.config.WorkerLossThreshold)
	if err != nil {
		return fmt.Errorf("querying orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.sweep.mu.Lock()
		p.sweep.lastSweep = time.Now()
		p.sweep.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	reclaimed := 0
	for _, t := range orphans {
		if err := p.reclaimTask(ctx, t.ID); err != nil {
			slog.Error("Failed to reclaim orphaned task", "task_id", t.ID, "error", err)
			continue
		}
		reclaimed++
	}

	p.sweep.mu.Lock()
	p.sweep.lastSweep = time.Now()
	p.sweep.tasksReclaimed += reclaimed
	p.sweep.mu.Unlock()

	return nil
}

// requeueStaleQueued re-pushes tasks that are queued in the store but were
// never delivered in memory (their Push hit a full queue). Stops at the first
// ErrQueueFull; the next sweep picks up where this one left off.
func (p *WorkerPool) requeueStaleQueued(ctx context.Context) error {
	stale, err := p.deps.Tasks.ListStaleQueuedTasks(ctx, staleQueuedThreshold)
	if err != nil {
		return fmt.Errorf("querying stale queued tasks: %w", err)
	}

	for _, t := range stale {
		if err := p.queue.Push(t.ID); err != nil {
			slog.Warn("Queue still full during stale-queued sweep",
				"task_id", t.ID, "remaining", len(stale))
			return nil
		}
		slog.Info("Re-enqueued stale queued task", "task_id", t.ID)
	}
	return nil
}

// reclaimTask marks a single orphaned task as failed and publishes the
// terminal event.
func (p *WorkerPool) reclaimTask(ctx context.Context, taskID string) error {
	err := p.deps.Tasks.FailTask(ctx, taskID, "worker lost", nil)
	if err != nil {
		// Another sweep or a late worker finalized it first; their write
		// stands.
		if errors.Is(err, services.ErrInvalidTransition) || errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}

	t, err := p.deps.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("reloading reclaimed task: %w", err)
	}
	p.deps.Publisher.PublishTerminal(t)

	slog.Warn("Orphaned task marked as failed", "task_id", taskID)
	return nil
}

// FailStartupOrphans fails every task left running by a previous process.
// Called once during startup before the pool begins processing: with a
// single-process deployment any running task at boot has no worker.
func FailStartupOrphans(ctx context.Context, tasks *services.TaskService, publisher TaskEventPublisher) error {
	orphans, err := tasks.FindOrphanedTasks(ctx, 0)
	if err != nil {
		return fmt.Errorf("querying startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "count", len(orphans))

	for _, t := range orphans {
		if err := tasks.FailTask(ctx, t.ID, "worker lost: process restarted mid-task", nil); err != nil {
			slog.Error("Failed to mark startup orphan", "task_id", t.ID, "error", err)
			continue
		}
		if reloaded, err := tasks.GetTask(ctx, t.ID); err == nil {
			publisher.PublishTerminal(reloaded)
		}
		slog.Info("Startup orphan recovered", "task_id", t.ID)
	}

	return nil
}
