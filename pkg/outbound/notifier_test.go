package outbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PostsOutcomeToOrigin(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(Config{JiraBaseURL: server.URL, JiraEmail: "bot@acme.test", JiraToken: "tok"})
	notifier := NewNotifier(dispatcher)

	task := &ent.Task{
		ID:     "task-1",
		Source: enttask.SourceWebhook,
		SourceMetadata: map[string]any{
			"provider": "jira",
			"payload":  map[string]any{"issue": map[string]any{"key": "PROJ-9"}},
		},
	}
	notifier.NotifyTaskFinished(context.Background(), task, &queue.ExecutionResult{
		Status: enttask.StatusCompleted,
		Result: models.TaskResult{Output: "root cause identified"},
	})

	assert.Equal(t, "/rest/api/2/issue/PROJ-9/comment", gotPath)
	require.NotNil(t, gotBody)
	assert.Contains(t, gotBody["body"], "root cause identified")
}

func TestNotifier_IgnoresNonWebhookTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no outbound call expected for chat tasks")
	}))
	defer server.Close()

	dispatcher := NewDispatcher(Config{JiraBaseURL: server.URL})
	notifier := NewNotifier(dispatcher)

	notifier.NotifyTaskFinished(context.Background(), &ent.Task{
		ID:     "task-2",
		Source: enttask.SourceChat,
	}, &queue.ExecutionResult{Status: enttask.StatusCompleted})
}

func TestFormatOutcome(t *testing.T) {
	t.Run("failure carries the error message", func(t *testing.T) {
		text := formatOutcome(&ent.Task{}, &queue.ExecutionResult{
			Status: enttask.StatusFailed,
			Result: models.TaskResult{ErrorMessage: "task timed out"},
		})
		assert.Equal(t, "Task failed: task timed out", text)
	})

	t.Run("cancellation is its own message", func(t *testing.T) {
		text := formatOutcome(&ent.Task{}, &queue.ExecutionResult{Status: enttask.StatusCancelled})
		assert.Contains(t, text, "cancelled")
	})

	t.Run("long output truncated", func(t *testing.T) {
		text := formatOutcome(&ent.Task{}, &queue.ExecutionResult{
			Status: enttask.StatusCompleted,
			Result: models.TaskResult{Output: strings.Repeat("x", maxResultExcerpt+100)},
		})
		assert.Contains(t, text, "(truncated)")
		assert.Less(t, len(text), maxResultExcerpt+100)
	})
}
