package slack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic.
	s.NotifyTaskFinished(context.Background(), &ent.Task{ID: "t-1"}, nil)
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_NotifyTaskFinished_PostsToChannel(t *testing.T) {
	var posted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat.postMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "C123", r.Form.Get("channel"))
		assert.Contains(t, r.Form.Get("blocks"), "Task Completed")
		posted = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"ts":"1700000000.1"}`))
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "https://dash.example.com")

	task := &ent.Task{
		ID:        "task-1",
		AgentName: "planning",
		Source:    enttask.SourceChat,
		Status:    enttask.StatusCompleted,
		CostUsd:   0.25,
	}
	svc.NotifyTaskFinished(context.Background(), task, &queue.ExecutionResult{
		Status: enttask.StatusCompleted,
		Result: models.TaskResult{Output: "all checks passed"},
	})

	assert.True(t, posted)
}

func TestService_NotifyTaskFinished_SurvivesAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "")

	errMsg := "spawn failed"
	task := &ent.Task{
		ID:           "task-2",
		AgentName:    "ops",
		Source:       enttask.SourceWebhook,
		Status:       enttask.StatusFailed,
		ErrorMessage: &errMsg,
	}
	// Errors are logged, never returned or panicked on.
	svc.NotifyTaskFinished(context.Background(), task, &queue.ExecutionResult{
		Status: enttask.StatusFailed,
		Err:    errors.New("spawn failed"),
	})
}
