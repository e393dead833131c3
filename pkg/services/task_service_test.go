package services

import (
	"context"
	"testing"
	"time"

	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, client.Client)

	t.Run("creates task in queued status", func(t *testing.T) {
		task, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			SessionID: session.ID,
			FlowID:    "flow-1",
			AgentName: "planning",
			AgentKind: "planning",
			Input:     "analyze issue 42",
			Source:    "webhook",
			SourceMetadata: map[string]any{
				"provider":   "github",
				"event_type": "issue_comment.created",
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, enttask.StatusQueued, task.Status)
		assert.Nil(t, task.StartedAt)
		assert.Equal(t, float64(0), task.CostUsd)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			SessionID: session.ID,
			FlowID:    "flow-1",
			AgentName: "planning",
			AgentKind: "planning",
			Source:    "chat",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate task id", func(t *testing.T) {
		req := models.CreateTaskRequest{
			ID:        "dup-task",
			SessionID: session.ID,
			FlowID:    "flow-1",
			AgentName: "planning",
			AgentKind: "planning",
			Input:     "x",
			Source:    "chat",
		}
		_, err := taskService.CreateTask(ctx, req)
		require.NoError(t, err)

		_, err = taskService.CreateTask(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestTaskService_StateMachine(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, client.Client)

	t.Run("claim is idempotent", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)

		claimed, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, claimed)

		// Second claim (duplicate queue entry) must lose.
		claimed, err = taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, claimed)

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusRunning, got.Status)
		assert.NotNil(t, got.StartedAt)
	})

	t.Run("complete records accounting", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)

		err = taskService.CompleteTask(ctx, task.ID, models.TaskResult{
			CostUSD:         0.42,
			InputTokens:     1200,
			OutputTokens:    800,
			DurationSeconds: 12.5,
		})
		require.NoError(t, err)

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusCompleted, got.Status)
		assert.Equal(t, 0.42, got.CostUsd)
		assert.Equal(t, 1200, got.InputTokens)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("cannot complete a queued task", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)

		err := taskService.CompleteTask(ctx, task.ID, models.TaskResult{})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)
		require.NoError(t, taskService.CompleteTask(ctx, task.ID, models.TaskResult{}))

		err = taskService.FailTask(ctx, task.ID, "late failure", nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = taskService.CancelTask(ctx, task.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		claimed, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("fail preserves partial accounting", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)

		err = taskService.FailTask(ctx, task.ID, "CLI exited with code 1", &models.TaskResult{
			CostUSD:     0.05,
			InputTokens: 300,
		})
		require.NoError(t, err)

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "CLI exited with code 1", *got.ErrorMessage)
		assert.Equal(t, 0.05, got.CostUsd)
	})

	t.Run("cancel reports prior status", func(t *testing.T) {
		queued := createTestTask(t, client.Client, session.ID)
		prior, err := taskService.CancelTask(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusQueued, prior)

		running := createTestTask(t, client.Client, session.ID)
		_, err = taskService.ClaimTask(ctx, running.ID)
		require.NoError(t, err)
		prior, err = taskService.CancelTask(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusRunning, prior)
	})

	t.Run("not found mapping", func(t *testing.T) {
		_, err := taskService.GetTask(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		err = taskService.CompleteTask(ctx, "missing", models.TaskResult{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_AppendOutputChunk(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, client.Client)

	t.Run("appends while running", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)

		require.NoError(t, taskService.AppendOutputChunk(ctx, task.ID, "hello "))
		require.NoError(t, taskService.AppendOutputChunk(ctx, task.ID, "world"))

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello world", got.OutputStream)
		assert.NotNil(t, got.LastOutputAt)
	})

	t.Run("drops chunks after terminal state", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)
		require.NoError(t, taskService.AppendOutputChunk(ctx, task.ID, "before"))
		require.NoError(t, taskService.CompleteTask(ctx, task.ID, models.TaskResult{}))

		// Late chunk must be a silent no-op.
		require.NoError(t, taskService.AppendOutputChunk(ctx, task.ID, " after"))

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "before", got.OutputStream)
	})

	t.Run("no-op on queued task", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)

		require.NoError(t, taskService.AppendOutputChunk(ctx, task.ID, "early"))

		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Empty(t, got.OutputStream)
	})
}

func TestTaskService_ListAndSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, client.Client)

	t.Run("lists queued tasks in creation order", func(t *testing.T) {
		first := createTestTask(t, client.Client, session.ID)
		second := createTestTask(t, client.Client, session.ID)

		queued, err := taskService.ListQueuedTasks(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(queued), 2)

		var ids []string
		for _, task := range queued {
			ids = append(ids, task.ID)
		}
		assert.Contains(t, ids, first.ID)
		assert.Contains(t, ids, second.ID)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		_, err := taskService.ListTasks(ctx, models.TaskFilters{SortBy: "input; DROP TABLE tasks"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("filters by status", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)

		resp, err := taskService.ListTasks(ctx, models.TaskFilters{Status: "running"})
		require.NoError(t, err)
		for _, item := range resp.Tasks {
			assert.Equal(t, enttask.StatusRunning, item.Status)
		}
	})

	t.Run("finds orphaned tasks past threshold", func(t *testing.T) {
		task := createTestTask(t, client.Client, session.ID)
		_, err := taskService.ClaimTask(ctx, task.ID)
		require.NoError(t, err)

		// Backdate the activity timestamp past the sweep threshold.
		err = client.Task.UpdateOneID(task.ID).
			SetLastOutputAt(time.Now().Add(-time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := taskService.FindOrphanedTasks(ctx, 30*time.Minute)
		require.NoError(t, err)

		var ids []string
		for _, o := range orphans {
			ids = append(ids, o.ID)
		}
		assert.Contains(t, ids, task.ID)

		// Sweep resolution: fail with worker-lost message.
		require.NoError(t, taskService.FailTask(ctx, task.ID, "worker lost", nil))
		got, err := taskService.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusFailed, got.Status)
	})
}
