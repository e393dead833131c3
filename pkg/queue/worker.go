package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// heartbeatInterval is how often a worker touches its task's last_output_at
// while the CLI runs, so a long silent invocation is not reclaimed by the
// worker-loss sweep.
const heartbeatInterval = time.Minute

// dropChannelGrace is how long a terminal task's hub channel stays alive so
// subscribers can receive the final events before the ring is released.
const dropChannelGrace = 60 * time.Second

// Deps bundles the collaborators a worker needs to finalize tasks.
type Deps struct {
	Tasks         *services.TaskService
	Conversations *services.ConversationService
	Sessions      *services.SessionService
	Publisher     TaskEventPublisher
	Notifier      CompletionNotifier // may be nil
}

// TaskEventPublisher publishes task lifecycle and cleanup events.
// Implemented by events.TaskPublisher.
type TaskEventPublisher interface {
	PublishCreated(t *ent.Task)
	PublishRunning(t *ent.Task)
	PublishTerminal(t *ent.Task)
	PublishOutput(taskID, sessionID, chunk string) int64
	DropTaskChannel(taskID string)
}

// TaskRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// Worker is a single queue worker that pops task identifiers and processes
// them.
type Worker struct {
	id       string
	queue    *Queue
	config   *config.QueueConfig
	executor TaskExecutor
	deps     Deps
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id string, q *Queue, cfg *config.QueueConfig, executor TaskExecutor, deps Deps, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		queue:        q,
		config:       cfg,
		executor:     executor,
		deps:         deps,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// task. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity.Format(time.RFC3339),
	}
}

// run is the main worker loop: pop, process, loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			taskID, ok := w.queue.Pop(w.config.PopTimeout)
			if !ok {
				continue
			}
			if err := w.process(ctx, taskID); err != nil {
				log.Error("Error processing task", "task_id", taskID, "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// process claims and executes a single task.
func (w *Worker) process(ctx context.Context, taskID string) error {
	log := slog.With("task_id", taskID, "worker_id", w.id)

	// 1. Load. Missing or already-terminal tasks are dropped silently; the
	//    queue is at-least-once and redelivery after a crash is expected.
	t, err := w.deps.Tasks.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Debug("Dropping unknown task id from queue")
			return nil
		}
		return fmt.Errorf("loading task: %w", err)
	}
	if t.Status != task.StatusQueued {
		log.Debug("Dropping task in non-queued state", "status", t.Status)
		return nil
	}

	// 2. Claim. The conditional queued → running update is the idempotence
	//    point: exactly one worker wins a duplicated delivery.
	claimed, err := w.deps.Tasks.ClaimTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("claiming task: %w", err)
	}
	if !claimed {
		log.Debug("Task claimed elsewhere, dropping")
		return nil
	}

	t, err = w.deps.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("reloading claimed task: %w", err)
	}

	log.Info("Task claimed", "agent", t.AgentName, "source", t.Source)
	w.deps.Publisher.PublishRunning(t)

	w.setStatus(WorkerStatusWorking, taskID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Task context with timeout, registered for API-triggered cancellation.
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()
	w.pool.RegisterTask(taskID, cancelTask)
	defer w.pool.UnregisterTask(taskID)

	// 4. Heartbeat keeps last_output_at fresh while the CLI is silent.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	go w.runHeartbeat(heartbeatCtx, taskID)

	// 5. Execute.
	result := w.executor.Execute(taskCtx, t)
	cancelHeartbeat()

	result = w.synthesizeResult(taskCtx, result)

	// 6. Finalize with a background context; the task context may already be
	//    cancelled or expired.
	if err := w.finalize(context.Background(), t, result); err != nil {
		log.Error("Failed to finalize task", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// synthesizeResult guards against a nil or incomplete executor result by
// deriving the terminal status from the task context.
func (w *Worker) synthesizeResult(taskCtx context.Context, result *ExecutionResult) *ExecutionResult {
	if result == nil {
		result = &ExecutionResult{}
	}
	if result.Status != "" {
		return result
	}
	switch {
	case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
		result.Status = task.StatusFailed
		result.Err = fmt.Errorf("task timed out after %v", w.config.TaskTimeout)
	case errors.Is(taskCtx.Err(), context.Canceled):
		result.Status = task.StatusCancelled
		result.Err = context.Canceled
	default:
		result.Status = task.StatusFailed
		result.Err = fmt.Errorf("executor returned no terminal status")
	}
	return result
}

// finalize writes the terminal state, appends the assistant message, updates
// aggregates, and publishes the terminal event. Store writes retry with
// exponential backoff on transient errors; a task that cannot be finalized is
// left running for the worker-loss sweep to reclaim.
func (w *Worker) finalize(ctx context.Context, t *ent.Task, result *ExecutionResult) error {
	log := slog.With("task_id", t.ID, "worker_id", w.id)

	err := w.retryFinalize(func() error {
		return w.writeTerminalStatus(ctx, t.ID, result)
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			// Already terminal: an API cancellation or the sweep got there
			// first. Their write stands.
			log.Info("Task already finalized elsewhere")
		} else {
			return fmt.Errorf("writing terminal status: %w", err)
		}
	}

	// Conversation and session bookkeeping is best-effort after the terminal
	// write; the task row is the durable record.
	if result.Status == task.StatusCompleted && t.ConversationID != nil && result.Result.Output != "" {
		if _, err := w.deps.Conversations.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: *t.ConversationID,
			Role:           "assistant",
			Content:        result.Result.Output,
			TaskID:         t.ID,
		}); err != nil {
			log.Error("Failed to append assistant message", "error", err)
		}
	}

	if result.Status == task.StatusCompleted || result.Status == task.StatusFailed {
		if t.ConversationID != nil {
			if err := w.deps.Conversations.ApplyTaskCompletion(ctx, *t.ConversationID, result.Result); err != nil {
				log.Error("Failed to update conversation aggregates", "error", err)
			}
		}
		if err := w.deps.Sessions.ApplyTaskCompletion(ctx, t.SessionID, result.Result); err != nil {
			log.Error("Failed to update session aggregates", "error", err)
		}
	}

	terminal, err := w.deps.Tasks.GetTask(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("reloading terminal task: %w", err)
	}
	w.deps.Publisher.PublishTerminal(terminal)

	if w.deps.Notifier != nil {
		w.deps.Notifier.NotifyTaskFinished(ctx, terminal, result)
	}

	// Release the hub ring after a grace period so attached clients receive
	// the final events.
	w.scheduleChannelDrop(t.ID)

	return nil
}

// writeTerminalStatus maps the execution result onto the store's state
// machine.
func (w *Worker) writeTerminalStatus(ctx context.Context, taskID string, result *ExecutionResult) error {
	switch result.Status {
	case task.StatusCompleted:
		return w.deps.Tasks.CompleteTask(ctx, taskID, result.Result)
	case task.StatusCancelled:
		_, err := w.deps.Tasks.CancelTask(ctx, taskID)
		return err
	default:
		msg := "task failed"
		if result.Err != nil {
			msg = result.Err.Error()
		} else if result.Result.ErrorMessage != "" {
			msg = result.Result.ErrorMessage
		}
		return w.deps.Tasks.FailTask(ctx, taskID, msg, &result.Result)
	}
}

// retryFinalize retries a terminal store write with exponential backoff.
// State-machine conflicts are not retried; they mean another writer won.
func (w *Worker) retryFinalize(fn func() error) error {
	backoff := 500 * time.Millisecond
	var err error
	for attempt := 0; attempt <= w.config.FinalizeRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		err = fn()
		if err == nil ||
			errors.Is(err, services.ErrInvalidTransition) ||
			errors.Is(err, services.ErrNotFound) {
			return err
		}
		slog.Warn("Terminal status write failed, retrying",
			"worker_id", w.id, "attempt", attempt+1, "error", err)
	}
	return err
}

// runHeartbeat periodically touches the task so the worker-loss sweep does
// not reclaim it during long silent CLI stretches.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.deps.Tasks.TouchTask(ctx, taskID); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// scheduleChannelDrop releases the task's hub channel after the grace period.
func (w *Worker) scheduleChannelDrop(taskID string) {
	publisher := w.deps.Publisher
	time.AfterFunc(dropChannelGrace, func() {
		publisher.DropTaskChannel(taskID)
	})
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
