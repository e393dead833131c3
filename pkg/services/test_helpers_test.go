package services

import (
	"context"
	"testing"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createTestSession creates a session for tests that need a task container.
func createTestSession(t *testing.T, client *ent.Client) *ent.Session {
	t.Helper()
	session, err := NewSessionService(client).CreateSession(context.Background(), models.CreateSessionRequest{
		ID: uuid.New().String(),
	})
	require.NoError(t, err)
	return session
}

// createTestTask creates a queued task bound to the given session.
func createTestTask(t *testing.T, client *ent.Client, sessionID string) *ent.Task {
	t.Helper()
	task, err := NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		SessionID: sessionID,
		FlowID:    uuid.New().String(),
		AgentName: "planning",
		AgentKind: "planning",
		Input:     "analyze this",
		Source:    "chat",
	})
	require.NoError(t, err)
	return task
}
