package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates and retrieves conversation", func(t *testing.T) {
		conversation, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			Title:  "Issue 42",
			UserID: "alice",
			FlowID: "flow-42",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, conversation.ID)
		assert.Equal(t, "flow-42", conversation.FlowID)

		got, err := conversationService.GetConversation(ctx, conversation.ID, false)
		require.NoError(t, err)
		assert.Equal(t, conversation.ID, got.ID)
	})

	t.Run("requires flow id", func(t *testing.T) {
		_, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("flow lookup reuses existing conversation", func(t *testing.T) {
		first, created, err := conversationService.GetOrCreateByFlow(ctx, "flow-reuse", "t", "alice")
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := conversationService.GetOrCreateByFlow(ctx, "flow-reuse", "t", "alice")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("duplicate active flow rejected by unique index", func(t *testing.T) {
		first, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			FlowID: "flow-dup",
		})
		require.NoError(t, err)

		_, err = conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			FlowID: "flow-dup",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		// A racer that loses the create still resolves to the winner's row.
		got, created, err := conversationService.GetOrCreateByFlow(ctx, "flow-dup", "t", "alice")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("archiving frees the flow for a new conversation", func(t *testing.T) {
		conversation, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			FlowID: "flow-freed",
		})
		require.NoError(t, err)
		require.NoError(t, conversationService.ArchiveConversation(ctx, conversation.ID))

		replacement, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			FlowID: "flow-freed",
		})
		require.NoError(t, err)
		assert.NotEqual(t, conversation.ID, replacement.ID)
	})

	t.Run("archived conversations are skipped by flow lookup", func(t *testing.T) {
		conversation, created, err := conversationService.GetOrCreateByFlow(ctx, "flow-archived", "t", "alice")
		require.NoError(t, err)
		assert.True(t, created)

		require.NoError(t, conversationService.ArchiveConversation(ctx, conversation.ID))

		replacement, created, err := conversationService.GetOrCreateByFlow(ctx, "flow-archived", "t", "alice")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, conversation.ID, replacement.ID)
	})
}

func TestConversationService_Messages(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	conversation, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
		FlowID: "flow-msgs",
	})
	require.NoError(t, err)

	t.Run("messages are strictly ordered", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			_, err := conversationService.AppendMessage(ctx, models.AppendMessageRequest{
				ConversationID: conversation.ID,
				Role:           "user",
				Content:        fmt.Sprintf("message %d", i),
			})
			require.NoError(t, err)
		}

		messages, err := conversationService.ListMessages(ctx, conversation.ID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		for i, msg := range messages {
			assert.Equal(t, i+1, msg.SequenceNumber)
			assert.Equal(t, fmt.Sprintf("message %d", i+1), msg.Content)
		}
	})

	t.Run("context returns trailing window in chronological order", func(t *testing.T) {
		messages, err := conversationService.GetContext(ctx, conversation.ID, 2)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "message 2", messages[0].Content)
		assert.Equal(t, "message 3", messages[1].Content)
	})

	t.Run("rejects message to missing conversation", func(t *testing.T) {
		_, err := conversationService.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: "missing",
			Role:           "user",
			Content:        "hi",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("clear removes messages but keeps aggregates", func(t *testing.T) {
		require.NoError(t, conversationService.ApplyTaskCompletion(ctx, conversation.ID, models.TaskResult{
			CostUSD:      0.3,
			InputTokens:  100,
			OutputTokens: 50,
		}))

		removed, err := conversationService.ClearConversation(ctx, conversation.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, removed)

		got, err := conversationService.GetConversation(ctx, conversation.ID, true)
		require.NoError(t, err)
		assert.Empty(t, got.Edges.Messages)
		assert.Equal(t, 0.3, got.TotalCostUsd)
		assert.Equal(t, 1, got.TaskCount)
	})
}

func TestConversationService_Aggregates(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	conversation, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
		FlowID: "flow-agg",
	})
	require.NoError(t, err)

	require.NoError(t, conversationService.ApplyTaskCompletion(ctx, conversation.ID, models.TaskResult{
		CostUSD:      0.10,
		InputTokens:  1000,
		OutputTokens: 500,
	}))
	require.NoError(t, conversationService.ApplyTaskCompletion(ctx, conversation.ID, models.TaskResult{
		CostUSD:      0.25,
		InputTokens:  2000,
		OutputTokens: 700,
	}))

	got, err := conversationService.GetConversation(ctx, conversation.ID, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.35, got.TotalCostUsd, 1e-9)
	assert.Equal(t, 3000, got.TotalInputTokens)
	assert.Equal(t, 1200, got.TotalOutputTokens)
	assert.Equal(t, 2, got.TaskCount)
}
