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

func TestSessionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates session with generated id", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{UserID: "alice"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.False(t, session.Synthetic)
	})

	t.Run("synthetic session for webhook path", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{Synthetic: true})
		require.NoError(t, err)
		assert.True(t, session.Synthetic)
	})

	t.Run("get or create resumes known session", func(t *testing.T) {
		session, created, err := sessionService.GetOrCreateSession(ctx, models.CreateSessionRequest{ID: "resume-me"})
		require.NoError(t, err)
		assert.True(t, created)

		again, created, err := sessionService.GetOrCreateSession(ctx, models.CreateSessionRequest{ID: "resume-me"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, session.ID, again.ID)
	})

	t.Run("aggregates accumulate", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{})
		require.NoError(t, err)

		require.NoError(t, sessionService.ApplyTaskCompletion(ctx, session.ID, models.TaskResult{CostUSD: 0.1}))
		require.NoError(t, sessionService.ApplyTaskCompletion(ctx, session.ID, models.TaskResult{CostUSD: 0.2}))

		got, err := sessionService.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.InDelta(t, 0.3, got.TotalCostUsd, 1e-9)
		assert.Equal(t, 2, got.TaskCount)
	})
}

func TestSessionService_Prune(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	// Idle empty session, disconnected long ago.
	idle, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{})
	require.NoError(t, err)
	err = client.Session.UpdateOneID(idle.ID).
		SetDisconnectedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Disconnected session that accrued tasks stays for accounting.
	billed, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{})
	require.NoError(t, err)
	require.NoError(t, sessionService.ApplyTaskCompletion(ctx, billed.ID, models.TaskResult{CostUSD: 0.5}))
	err = client.Session.UpdateOneID(billed.ID).
		SetDisconnectedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Recently disconnected session stays.
	recent, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{})
	require.NoError(t, err)
	require.NoError(t, sessionService.MarkDisconnected(ctx, recent.ID))

	pruned, err := sessionService.PruneIdleSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = sessionService.GetSession(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = sessionService.GetSession(ctx, billed.ID)
	assert.NoError(t, err)

	_, err = sessionService.GetSession(ctx, recent.ID)
	assert.NoError(t, err)
}
