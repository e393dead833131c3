package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
)

// WorkerPool manages a fixed set of queue workers plus the worker-loss sweep.
type WorkerPool struct {
	client   *ent.Client
	config   *config.QueueConfig
	queue    *Queue
	executor TaskExecutor
	deps     Deps
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Worker-loss sweep state
	sweep sweepState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(client *ent.Client, cfg *config.QueueConfig, q *Queue, executor TaskExecutor, deps Deps) *WorkerPool {
	return &WorkerPool{
		client:      client,
		config:      cfg,
		queue:       q,
		executor:    executor,
		deps:        deps,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Start requeues stranded tasks, spawns worker goroutines, and starts the
// worker-loss sweep. Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)

	if err := p.requeueStoredTasks(ctx); err != nil {
		return fmt.Errorf("requeueing stored tasks: %w", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		worker := NewWorker(workerID, p.queue, p.config, p.executor, p.deps, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tasks to complete",
			"count", len(active),
			"task_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// requeueStoredTasks pushes every task still queued in the store onto the
// in-memory queue. Called on startup so tasks enqueued before a restart are
// not stranded until someone retries them.
func (p *WorkerPool) requeueStoredTasks(ctx context.Context) error {
	tasks, err := p.deps.Tasks.ListQueuedTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	slog.Info("Requeueing stored tasks from previous run", "count", len(tasks))
	for _, t := range tasks {
		if err := p.queue.Push(t.ID); err != nil {
			// A full queue here just delays the task; workers drain the
			// store-backed backlog as capacity frees up via later requeues.
			slog.Warn("Queue full during startup requeue", "task_id", t.ID)
			return nil
		}
	}
	return nil
}

// RegisterTask stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask triggers context cancellation for a running task, which kills
// the CLI subprocess. Returns true if the task was executing here.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queuedInStore, errQ := p.client.Task.Query().
		Where(
			enttask.StatusEQ(enttask.StatusQueued),
			enttask.DeletedAtIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queued tasks for health check", "error", errQ)
	}

	runningTasks, errR := p.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusRunning)).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running tasks for health check", "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if the store is unreachable the pool
	// cannot make progress.
	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.sweep.mu.Lock()
	lastSweep := p.sweep.lastSweep
	tasksReclaimed := p.sweep.tasksReclaimed
	p.sweep.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queued tasks query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running tasks query failed: %v", errR)
		}
	}

	health := &PoolHealth{
		IsHealthy:      isHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		RunningTasks:   runningTasks,
		QueueDepth:     p.queue.Len(),
		QueuedInStore:  queuedInStore,
		WorkerStats:    workerStats,
		TasksReclaimed: tasksReclaimed,
	}
	if !lastSweep.IsZero() {
		health.LastSweep = lastSweep.Format(time.RFC3339)
	}
	return health
}

// activeTaskIDs returns IDs of currently processing tasks (for logging).
func (p *WorkerPool) activeTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}
