package services

import (
	"context"
	"testing"
	"time"

	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	analyticsService := NewAnalyticsService(client.Client, client.DB())
	ctx := context.Background()

	session := createTestSession(t, client.Client)

	// One completed, one failed, one still queued.
	completed := createTestTask(t, client.Client, session.ID)
	_, err := taskService.ClaimTask(ctx, completed.ID)
	require.NoError(t, err)
	require.NoError(t, taskService.CompleteTask(ctx, completed.ID, models.TaskResult{
		CostUSD:         0.40,
		InputTokens:     1000,
		OutputTokens:    400,
		DurationSeconds: 10,
	}))

	failed := createTestTask(t, client.Client, session.ID)
	_, err = taskService.ClaimTask(ctx, failed.ID)
	require.NoError(t, err)
	require.NoError(t, taskService.FailTask(ctx, failed.ID, "boom", &models.TaskResult{
		CostUSD:         0.10,
		DurationSeconds: 2,
	}))

	createTestTask(t, client.Client, session.ID)

	summary, err := analyticsService.Summary(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.Equal(t, 1, summary.FailedTasks)
	assert.InDelta(t, 0.50, summary.TotalCostUSD, 1e-9)
	assert.Equal(t, 1000, summary.TotalInputTokens)
	assert.InDelta(t, 6.0, summary.AvgDurationSeconds, 1e-9)

	t.Run("daily costs cover recent tasks", func(t *testing.T) {
		daily, err := analyticsService.DailyCosts(ctx, 7)
		require.NoError(t, err)
		require.NotEmpty(t, daily)

		var total float64
		var count int
		for _, day := range daily {
			total += day.CostUSD
			count += day.TaskCount
		}
		assert.InDelta(t, 0.50, total, 1e-9)
		assert.Equal(t, 3, count)
	})

	t.Run("per-agent rollup", func(t *testing.T) {
		byAgent, err := analyticsService.ByAgent(ctx, time.Time{})
		require.NoError(t, err)
		require.NotEmpty(t, byAgent)
		assert.Equal(t, "planning", byAgent[0].AgentName)
		assert.InDelta(t, 0.50, byAgent[0].CostUSD, 1e-9)
	})
}

func TestWebhookEventService_Audit(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewWebhookEventService(client.Client)
	ctx := context.Background()

	event, err := eventService.RecordEvent(ctx, models.RecordWebhookEventRequest{
		WebhookID: "github",
		Provider:  "github",
		EventType: "issue_comment.created",
		Payload:   map[string]any{"action": "created"},
	})
	require.NoError(t, err)
	assert.False(t, event.ResponseSent)

	require.NoError(t, eventService.MarkResponseSent(ctx, event.ID))
	require.NoError(t, eventService.AttachTask(ctx, event.ID, "task-1"))

	events, err := eventService.ListEvents(ctx, "github", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].ResponseSent)
	require.NotNil(t, events[0].TaskID)
	assert.Equal(t, "task-1", *events[0].TaskID)
}

func TestMachineService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	machineService := NewMachineService(client.Client)
	ctx := context.Background()

	machine, err := machineService.RegisterMachine(ctx, "", "worker-1")
	require.NoError(t, err)

	// Heartbeat is monotonic: backdating directly then heartbeating advances it.
	err = client.Machine.UpdateOneID(machine.ID).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, machineService.Heartbeat(ctx, machine.ID))

	got, err := client.Machine.Get(ctx, machine.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.LastHeartbeatAt, 5*time.Second)

	t.Run("unknown machine", func(t *testing.T) {
		err := machineService.Heartbeat(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stale machine detection", func(t *testing.T) {
		stale, err := machineService.RegisterMachine(ctx, "", "worker-2")
		require.NoError(t, err)
		err = client.Machine.UpdateOneID(stale.ID).
			SetLastHeartbeatAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		machines, err := machineService.FindStaleMachines(ctx, time.Hour)
		require.NoError(t, err)

		var ids []string
		for _, m := range machines {
			ids = append(ids, m.ID)
		}
		assert.Contains(t, ids, stale.ID)
		assert.NotContains(t, ids, machine.ID)
	})
}
