package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/credentials"
	"github.com/droverhq/drover/pkg/models"
)

func TestChat_FirstMessageOpensConversation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat?session_id=chat-s1", map[string]any{
		"message": "Investigate the flaky deploy\nfull context below",
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	taskID, _ := body["task_id"].(string)
	conversationID, _ := body["conversation_id"].(string)
	require.NotEmpty(t, taskID)
	require.NotEmpty(t, conversationID)
	assert.NotEmpty(t, body["flow_id"])

	ctx := context.Background()
	task, err := f.deps.Tasks.GetTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusQueued, task.Status)
	assert.Equal(t, enttask.SourceChat, task.Source)
	assert.Equal(t, "planning", task.AgentName)

	conv, err := f.deps.Conversations.GetConversation(ctx, conversationID, true)
	require.NoError(t, err)
	assert.Equal(t, "Investigate the flaky deploy", conv.Title)
	require.Len(t, conv.Edges.Messages, 1)
	assert.Equal(t, "Investigate the flaky deploy\nfull context below", conv.Edges.Messages[0].Content)

	// The task made it onto the in-memory queue too.
	queued, ok := f.deps.Queue.Pop(time.Second)
	require.True(t, ok)
	assert.Equal(t, taskID, queued)
}

func TestChat_FollowUpStaysInConversation(t *testing.T) {
	f := newAPIFixture(t)

	first := decodeBody(t, f.do(t, http.MethodPost, "/api/chat?session_id=chat-s2", map[string]any{
		"message": "hello there",
	}))
	conversationID := first["conversation_id"].(string)

	rec := f.do(t, http.MethodPost, "/api/chat?session_id=chat-s2", map[string]any{
		"message":         "and a follow-up",
		"conversation_id": conversationID,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	second := decodeBody(t, rec)
	assert.Equal(t, conversationID, second["conversation_id"])
	assert.Equal(t, first["flow_id"], second["flow_id"])

	msgs, err := f.deps.Conversations.ListMessages(context.Background(), conversationID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestChat_Rejections(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "no session"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/chat?session_id=s", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/chat?session_id=s", map[string]any{
		"message":         "hi",
		"conversation_id": "no-such-conversation",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasks_GetListCancel(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	session, _, err := f.deps.Sessions.GetOrCreateSession(ctx, models.CreateSessionRequest{ID: "task-api-s"})
	require.NoError(t, err)
	task, err := f.deps.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID: session.ID,
		AgentName: "planning",
		AgentKind: "planning",
		Input:     "list my repos",
		Source:    "chat",
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/tasks/"+task.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.ID, decodeBody(t, rec)["id"])

	rec = f.do(t, http.MethodGet, "/api/tasks/no-such-task", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/tasks/table?status=queued&page_size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	table := decodeBody(t, rec)
	assert.Equal(t, float64(1), table["total_count"])

	rec = f.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/output", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "queued", decodeBody(t, rec)["status"])

	rec = f.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decodeBody(t, rec)["status"])

	// A second cancel hits a terminal task.
	rec = f.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConversations_CRUD(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/conversations", map[string]any{"title": "release planning"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id := created["id"].(string)
	assert.NotEmpty(t, created["flow_id"])

	rec = f.do(t, http.MethodPost, "/api/conversations/"+id+"/messages", map[string]any{
		"role": "user", "content": "first",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/conversations/"+id+"/messages", map[string]any{
		"role": "assistant", "content": "second",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/conversations/"+id+"/context?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	window := decodeBody(t, rec)["messages"].([]any)
	require.Len(t, window, 1)
	assert.Equal(t, "second", window[0].(map[string]any)["content"])

	rec = f.do(t, http.MethodPut, "/api/conversations/"+id, map[string]any{"title": "renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decodeBody(t, rec)["title"])

	rec = f.do(t, http.MethodPost, "/api/conversations/"+id+"/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["removed_messages"])

	rec = f.do(t, http.MethodDelete, "/api/conversations/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Archived conversations drop out of the default listing.
	rec = f.do(t, http.MethodGet, "/api/conversations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["total_count"])

	rec = f.do(t, http.MethodGet, "/api/conversations?include_archived=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["total_count"])
}

func TestWebhookConfigs_AdminCRUD(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/webhooks", map[string]any{
		"name":               "deploy hook",
		"provider":           "custom",
		"path":               "deploys",
		"default_agent":      "ops",
		"requires_signature": false,
		"commands": []map[string]any{
			{"name": "rollout", "agent": "ops", "trigger": "deploy.finished"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cfg := decodeBody(t, rec)
	id := cfg["id"].(string)

	// Same provider+path again violates endpoint uniqueness.
	rec = f.do(t, http.MethodPost, "/api/webhooks", map[string]any{
		"name":          "deploy hook copy",
		"provider":      "custom",
		"path":          "deploys",
		"default_agent": "ops",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/webhooks/"+id, map[string]any{"name": "renamed hook"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed hook", decodeBody(t, rec)["name"])

	rec = f.do(t, http.MethodPost, "/api/webhooks/"+id+"/commands", map[string]any{
		"name": "halt", "agent": "ops", "trigger": "deploy.failed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	cmdID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPut, "/api/webhooks/"+id+"/commands/"+cmdID, map[string]any{
		"priority": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["priority"])

	rec = f.do(t, http.MethodDelete, "/api/webhooks/"+id+"/commands/"+cmdID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/webhooks/"+id+"/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/webhooks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = f.do(t, http.MethodGet, "/api/webhooks/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookStatus_ListsEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/webhooks/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "https://drover.test", body["public_domain"])

	endpoints := body["endpoints"].([]any)
	urls := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		urls = append(urls, e.(map[string]any)["url"].(string))
	}
	assert.Contains(t, urls, "https://drover.test/webhooks/github")
}

func TestWebhookIngress(t *testing.T) {
	f := newAPIFixture(t)

	payload := []byte(`{
		"action": "created",
		"repository": {"full_name": "acme/web"},
		"issue": {"number": 42, "title": "crash on boot"},
		"comment": {"id": 7, "body": "@agent analyze this crash"}
	}`)

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-GitHub-Event", "issue_comment")
	header.Set("X-Hub-Signature-256", signGitHub(testGitHubSecret, payload))

	rec := f.doRaw(t, http.MethodPost, "/webhooks/github", payload, header)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "accepted", body["status"])
	assert.NotEmpty(t, body["task_ids"])

	// Tampered signature.
	header.Set("X-Hub-Signature-256", signGitHub("wrong-secret", payload))
	rec = f.doRaw(t, http.MethodPost, "/webhooks/github", payload, header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown provider.
	rec = f.doRaw(t, http.MethodPost, "/webhooks/gitlab", payload, header)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Valid signature over a non-JSON body.
	junk := []byte("not json at all")
	header.Set("X-Hub-Signature-256", signGitHub(testGitHubSecret, junk))
	rec = f.doRaw(t, http.MethodPost, "/webhooks/github", junk, header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCredentials_UploadAndStatus(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/credentials/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)["credentials"].(map[string]any)
	assert.Equal(t, false, status["present"])

	rec = f.do(t, http.MethodPost, "/api/credentials/upload", credentials.Credentials{
		AccessToken:  "tok-1234567890",
		RefreshToken: "ref-1234567890",
		ExpiresAt:    time.Now().Add(time.Hour).UnixMilli(),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/credentials/status", nil)
	status = decodeBody(t, rec)["credentials"].(map[string]any)
	assert.Equal(t, true, status["present"])
	assert.Equal(t, false, status["expired"])

	// Expired artifacts are rejected at upload time.
	rec = f.do(t, http.MethodPost, "/api/credentials/upload", credentials.Credentials{
		AccessToken:  "tok-1234567890",
		RefreshToken: "ref-1234567890",
		ExpiresAt:    time.Now().Add(-time.Hour).UnixMilli(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// So are placeholder-length tokens.
	rec = f.do(t, http.MethodPost, "/api/credentials/upload", credentials.Credentials{
		AccessToken: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsAndHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/analytics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Contains(t, body, "today")
	assert.Contains(t, body, "all_time")

	rec = f.do(t, http.MethodGet, "/api/analytics/costs/daily?days=7", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/analytics/costs/by-subagent", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
}
