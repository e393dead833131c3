// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
)

// Task status transitions:
//
//	queued  -> running, cancelled
//	running -> completed, failed, cancelled
//
// Terminal states never transition. All status changes go through conditional
// updates so concurrent workers cannot double-claim or double-finish a task.

// taskSortColumns whitelists ListTasks sort keys.
var taskSortColumns = map[string]string{
	"created_at":   enttask.FieldCreatedAt,
	"completed_at": enttask.FieldCompletedAt,
	"cost_usd":     enttask.FieldCostUsd,
	"status":       enttask.FieldStatus,
	"agent_name":   enttask.FieldAgentName,
}

// TaskService manages the task lifecycle and state machine.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask persists a new task in "queued" status.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.FlowID == "" {
		return nil, NewValidationError("flow_id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.AgentKind == "" {
		return nil, NewValidationError("agent_kind", "required")
	}
	if req.Input == "" {
		return nil, NewValidationError("input", "required")
	}
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taskID := req.ID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	builder := s.client.Task.Create().
		SetID(taskID).
		SetSessionID(req.SessionID).
		SetFlowID(req.FlowID).
		SetAgentName(req.AgentName).
		SetAgentKind(req.AgentKind).
		SetInput(req.Input).
		SetSource(enttask.Source(req.Source)).
		SetStatus(enttask.StatusQueued)

	if req.ConversationID != "" {
		builder.SetConversationID(req.ConversationID)
	}
	if req.ExternalID != "" {
		builder.SetExternalID(req.ExternalID)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if req.SourceMetadata != nil {
		builder.SetSourceMetadata(req.SourceMetadata)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(enttask.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ClaimTask atomically transitions a task from queued to running.
// Returns false when the task was already claimed, finished, or cancelled;
// claiming is therefore idempotent and safe under duplicate queue entries.
func (s *TaskService) ClaimTask(ctx context.Context, taskID string) (bool, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusQueued),
		).
		SetStatus(enttask.StatusRunning).
		SetStartedAt(now).
		SetLastOutputAt(now).
		Save(claimCtx)
	if err != nil {
		return false, fmt.Errorf("failed to claim task: %w", err)
	}

	return count > 0, nil
}

// CompleteTask transitions a running task to completed and records the final
// result accounting.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string, result models.TaskResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusRunning),
		).
		SetStatus(enttask.StatusCompleted).
		SetCostUsd(result.CostUSD).
		SetInputTokens(result.InputTokens).
		SetOutputTokens(result.OutputTokens).
		SetDurationSeconds(result.DurationSeconds).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, taskID)
	}

	return nil
}

// FailTask transitions a running task to failed with an error message.
// Partial accounting from the CLI result is preserved when available.
func (s *TaskService) FailTask(ctx context.Context, taskID, errorMessage string, result *models.TaskResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusRunning),
		).
		SetStatus(enttask.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now())

	if result != nil {
		update.
			SetCostUsd(result.CostUSD).
			SetInputTokens(result.InputTokens).
			SetOutputTokens(result.OutputTokens).
			SetDurationSeconds(result.DurationSeconds)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail task: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, taskID)
	}

	return nil
}

// CancelTask transitions a queued or running task to cancelled. Returns the
// status the task held before cancellation so the caller can decide whether a
// live subprocess needs to be killed.
func (s *TaskService) CancelTask(ctx context.Context, taskID string) (enttask.Status, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	task, err := tx.Task.Query().
		Where(enttask.IDEQ(taskID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get task: %w", err)
	}

	if task.Status != enttask.StatusQueued && task.Status != enttask.StatusRunning {
		return "", ErrInvalidTransition
	}
	priorStatus := task.Status

	count, err := tx.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(priorStatus),
		).
		SetStatus(enttask.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to cancel task: %w", err)
	}
	if count == 0 {
		return "", ErrConcurrentModification
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return priorStatus, nil
}

// AppendOutputChunk appends CLI output to a running task's transcript and
// refreshes the activity timestamp. Chunks arriving for a task that is no
// longer running are dropped silently; late output after cancellation or
// worker-loss failure must not resurrect the transcript.
func (s *TaskService) AppendOutputChunk(ctx context.Context, taskID, chunk string) error {
	if chunk == "" {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	task, err := tx.Task.Query().
		Where(enttask.IDEQ(taskID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	if task.Status != enttask.StatusRunning {
		return nil
	}

	count, err := tx.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusRunning),
		).
		SetOutputStream(task.OutputStream + chunk).
		SetLastOutputAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to append output: %w", err)
	}
	if count == 0 {
		// Task finished between read and write; drop the chunk.
		return nil
	}

	return tx.Commit()
}

// TouchTask refreshes a running task's activity timestamp without writing
// output. Used as a heartbeat while the CLI is quiet.
func (s *TaskService) TouchTask(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusRunning),
		).
		SetLastOutputAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to touch task: %w", err)
	}
	return nil
}

// ListQueuedTasks returns all queued tasks in creation order. Used on startup
// to repopulate the in-memory queue from the store.
func (s *TaskService) ListQueuedTasks(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusQueued)).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued tasks: %w", err)
	}
	return tasks, nil
}

// ListStaleQueuedTasks returns queued tasks created before the cutoff, in
// creation order. A task can sit queued in the store with no in-memory
// delivery when the queue was full at creation time; the periodic sweep
// re-enqueues these.
func (s *TaskService) ListStaleQueuedTasks(ctx context.Context, olderThan time.Duration) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(
			enttask.StatusEQ(enttask.StatusQueued),
			enttask.CreatedAtLT(time.Now().Add(-olderThan)),
		).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale queued tasks: %w", err)
	}
	return tasks, nil
}

// FindOrphanedTasks finds running tasks with no output activity past the
// threshold. These are presumed abandoned by a dead worker.
func (s *TaskService) FindOrphanedTasks(ctx context.Context, threshold time.Duration) ([]*ent.Task, error) {
	cutoff := time.Now().Add(-threshold)

	tasks, err := s.client.Task.Query().
		Where(
			enttask.StatusEQ(enttask.StatusRunning),
			enttask.LastOutputAtNotNil(),
			enttask.LastOutputAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned tasks: %w", err)
	}

	return tasks, nil
}

// ListTasks lists tasks with filtering, whitelisted sorting, and pagination.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	if filters.Status != "" {
		query = query.Where(enttask.StatusEQ(enttask.Status(filters.Status)))
	}
	if filters.AgentName != "" {
		query = query.Where(enttask.AgentNameEQ(filters.AgentName))
	}
	if filters.SessionID != "" {
		query = query.Where(enttask.SessionIDEQ(filters.SessionID))
	}
	if filters.ConversationID != "" {
		query = query.Where(enttask.ConversationIDEQ(filters.ConversationID))
	}
	if filters.FlowID != "" {
		query = query.Where(enttask.FlowIDEQ(filters.FlowID))
	}
	if filters.Source != "" {
		query = query.Where(enttask.SourceEQ(enttask.Source(filters.Source)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(enttask.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(enttask.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(enttask.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	// Whitelisted sorting; unknown columns are rejected rather than passed
	// through to SQL.
	sortColumn := enttask.FieldCreatedAt
	if filters.SortBy != "" {
		col, ok := taskSortColumns[filters.SortBy]
		if !ok {
			return nil, NewValidationError("sort_by", fmt.Sprintf("unknown sort column '%s'", filters.SortBy))
		}
		sortColumn = col
	}
	order := ent.Desc(sortColumn)
	if filters.SortOrder == "asc" {
		order = ent.Asc(sortColumn)
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SoftDeleteOldTasks soft deletes finished tasks older than the retention
// period.
func (s *TaskService) SoftDeleteOldTasks(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			enttask.CompletedAtLT(cutoff),
			enttask.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete tasks: %w", err)
	}

	return count, nil
}

// transitionConflict distinguishes a missing task from an illegal transition
// after a conditional update matched zero rows.
func (s *TaskService) transitionConflict(ctx context.Context, taskID string) error {
	exists, err := s.client.Task.Query().
		Where(enttask.IDEQ(taskID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
