package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

func setupServices(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.RetentionConfig{
		SessionIdleThreshold: 24 * time.Hour,
		TaskRetentionDays:    365,
		CleanupInterval:      time.Hour,
	}
	svc := NewService(cfg,
		services.NewSessionService(client.Client),
		services.NewTaskService(client.Client),
		services.NewMachineService(client.Client),
	)
	return client, svc
}

func TestService_PrunesIdleSessions(t *testing.T) {
	client, svc := setupServices(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	idle, err := sessions.CreateSession(ctx, models.CreateSessionRequest{ID: uuid.New().String()})
	require.NoError(t, err)
	err = client.Client.Session.UpdateOneID(idle.ID).
		SetDisconnectedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = sessions.GetSession(ctx, idle.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_KeepsSessionsWithTasks(t *testing.T) {
	client, svc := setupServices(t)
	sessions := services.NewSessionService(client.Client)
	tasks := services.NewTaskService(client.Client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{ID: uuid.New().String()})
	require.NoError(t, err)
	_, err = tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID: session.ID,
		AgentName: "planning",
		AgentKind: "planning",
		Input:     "hello",
		Source:    "chat",
	})
	require.NoError(t, err)
	require.NoError(t, sessions.ApplyTaskCompletion(ctx, session.ID, models.TaskResult{CostUSD: 0.1}))
	err = client.Client.Session.UpdateOneID(session.ID).
		SetDisconnectedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	kept, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, kept.ID)
}

func TestService_SoftDeletesOldTasks(t *testing.T) {
	client, svc := setupServices(t)
	sessions := services.NewSessionService(client.Client)
	tasks := services.NewTaskService(client.Client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{ID: uuid.New().String()})
	require.NoError(t, err)

	old, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID: session.ID,
		AgentName: "planning",
		AgentKind: "planning",
		Input:     "ancient history",
		Source:    "chat",
	})
	require.NoError(t, err)
	err = client.Client.Task.UpdateOneID(old.ID).
		SetStatus(enttask.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recent, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID: session.ID,
		AgentName: "planning",
		AgentKind: "planning",
		Input:     "fresh",
		Source:    "chat",
	})
	require.NoError(t, err)
	err = client.Client.Task.UpdateOneID(recent.ID).
		SetStatus(enttask.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	gone, err := client.Client.Task.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, gone.DeletedAt)

	kept, err := client.Client.Task.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupServices(t)

	svc.Start(context.Background())
	svc.Stop()
}
