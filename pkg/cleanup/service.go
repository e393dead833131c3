// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/services"
)

// staleMachineThreshold is how long a machine may miss heartbeats before the
// sweep flags it. Tasks claimed by a dead machine are reclaimed by the worker
// pool's own sweep; this one only surfaces the condition.
const staleMachineThreshold = 5 * time.Minute

// Service periodically enforces retention policies:
//   - Prunes idle sessions that disconnected and never ran a task
//   - Soft-deletes terminal tasks past the retention window
//   - Flags daemon instances with stale heartbeats
//
// All operations are idempotent and safe to run from multiple instances.
type Service struct {
	config   *config.RetentionConfig
	sessions *services.SessionService
	tasks    *services.TaskService
	machines *services.MachineService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessions *services.SessionService,
	tasks *services.TaskService,
	machines *services.MachineService,
) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		tasks:    tasks,
		machines: machines,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_idle_threshold", s.config.SessionIdleThreshold,
		"task_retention_days", s.config.TaskRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneIdleSessions(ctx)
	s.softDeleteOldTasks(ctx)
	s.flagStaleMachines(ctx)
}

func (s *Service) pruneIdleSessions(ctx context.Context) {
	count, err := s.sessions.PruneIdleSessions(ctx, s.config.SessionIdleThreshold)
	if err != nil {
		slog.Error("Retention: pruning idle sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned idle sessions", "count", count)
	}
}

func (s *Service) softDeleteOldTasks(ctx context.Context) {
	count, err := s.tasks.SoftDeleteOldTasks(ctx, s.config.TaskRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete tasks failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old tasks", "count", count)
	}
}

func (s *Service) flagStaleMachines(ctx context.Context) {
	if s.machines == nil {
		return
	}
	stale, err := s.machines.FindStaleMachines(ctx, staleMachineThreshold)
	if err != nil {
		slog.Error("Retention: stale machine query failed", "error", err)
		return
	}
	for _, m := range stale {
		slog.Warn("Machine heartbeat is stale",
			"machine_id", m.ID,
			"hostname", m.Hostname,
			"last_heartbeat_at", m.LastHeartbeatAt)
	}
}
