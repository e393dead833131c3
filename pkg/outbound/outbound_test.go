package outbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestGithubRefFrom(t *testing.T) {
	t.Run("issue comment event", func(t *testing.T) {
		payload := parsePayload(t, `{
			"repository": {"full_name": "acme/web"},
			"issue": {"number": 42},
			"comment": {"id": 9000001}
		}`)
		ref, err := githubRefFrom(payload)
		require.NoError(t, err)
		assert.Equal(t, "acme", ref.owner)
		assert.Equal(t, "web", ref.repo)
		assert.Equal(t, 42, ref.number)
		assert.Equal(t, int64(9000001), ref.commentID)
	})

	t.Run("pull request event", func(t *testing.T) {
		payload := parsePayload(t, `{
			"repository": {"full_name": "acme/web"},
			"pull_request": {"number": 7}
		}`)
		ref, err := githubRefFrom(payload)
		require.NoError(t, err)
		assert.Equal(t, 7, ref.number)
		assert.Zero(t, ref.commentID)
	})

	t.Run("missing repository", func(t *testing.T) {
		_, err := githubRefFrom(parsePayload(t, `{"issue":{"number":1}}`))
		assert.Error(t, err)
	})

	t.Run("missing number", func(t *testing.T) {
		_, err := githubRefFrom(parsePayload(t, `{"repository":{"full_name":"a/b"}}`))
		assert.Error(t, err)
	})
}

func TestGithubReaction(t *testing.T) {
	assert.Equal(t, "eyes", githubReaction("eyes"))
	assert.Equal(t, "+1", githubReaction("thumbsup"))
	assert.Equal(t, "hooray", githubReaction("tada"))
	assert.Equal(t, "eyes", githubReaction("sparkles"))
}

func TestSlackRef(t *testing.T) {
	t.Run("thread reply anchor wins", func(t *testing.T) {
		payload := parsePayload(t, `{"event":{"channel":"C1","ts":"2.0","thread_ts":"1.0"}}`)
		channel, ts, err := slackRef(payload)
		require.NoError(t, err)
		assert.Equal(t, "C1", channel)
		assert.Equal(t, "1.0", ts)
	})

	t.Run("plain message uses its own ts", func(t *testing.T) {
		payload := parsePayload(t, `{"event":{"channel":"C1","ts":"2.0"}}`)
		_, ts, err := slackRef(payload)
		require.NoError(t, err)
		assert.Equal(t, "2.0", ts)
	})

	t.Run("missing channel", func(t *testing.T) {
		_, _, err := slackRef(parsePayload(t, `{"event":{}}`))
		assert.Error(t, err)
	})
}

func TestJiraClient(t *testing.T) {
	jiraPayload := parsePayload(t, `{"issue":{"key":"PROJ-123"}}`)

	t.Run("comment posts to the issue", func(t *testing.T) {
		var gotPath, gotUser string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, _, _ = r.BasicAuth()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := newJiraClient(server.Client(), server.URL, "bot@acme.test", "token")
		require.NoError(t, client.Comment(context.Background(), jiraPayload, "analysis in progress"))

		assert.Equal(t, "/rest/api/2/issue/PROJ-123/comment", gotPath)
		assert.Equal(t, "bot@acme.test", gotUser)
		assert.Equal(t, map[string]any{"body": "analysis in progress"}, gotBody)
	})

	t.Run("label updates the issue", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newJiraClient(server.Client(), server.URL, "bot@acme.test", "token")
		require.NoError(t, client.Label(context.Background(), jiraPayload, []string{"triaged"}))
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/rest/api/2/issue/PROJ-123", gotPath)
	})

	t.Run("api error surfaces status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "no such issue", http.StatusNotFound)
		}))
		defer server.Close()

		client := newJiraClient(server.Client(), server.URL, "bot@acme.test", "token")
		err := client.Comment(context.Background(), jiraPayload, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("missing issue key", func(t *testing.T) {
		client := newJiraClient(http.DefaultClient, "http://unused.test", "", "")
		assert.Error(t, client.Comment(context.Background(), map[string]any{}, "hello"))
	})
}

func TestSentryClient_Comment(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newSentryClient(server.Client(), server.URL, "sn-token")
	payload := parsePayload(t, `{"data":{"issue":{"id":"9001"}}}`)
	require.NoError(t, client.Comment(context.Background(), payload, "investigating"))

	assert.Equal(t, "/api/0/issues/9001/comments/", gotPath)
	assert.Equal(t, "Bearer sn-token", gotAuth)
}

func TestDispatcher_Forward(t *testing.T) {
	t.Run("delivers payload as json", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewDispatcher(Config{})
		err := d.Forward(context.Background(), server.URL, map[string]any{"event": "ping"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"event": "ping"}, gotBody)
	})

	t.Run("retries once on failure", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewDispatcher(Config{})
		require.NoError(t, d.Forward(context.Background(), server.URL, map[string]any{}))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after the retry", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		d := NewDispatcher(Config{})
		assert.Error(t, d.Forward(context.Background(), server.URL, map[string]any{}))
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestDispatcher_UnconfiguredProviderIsNoop(t *testing.T) {
	d := NewDispatcher(Config{})
	ctx := context.Background()

	assert.NoError(t, d.Comment(ctx, "github", map[string]any{}, "hi"))
	assert.NoError(t, d.React(ctx, "slack", map[string]any{}, "eyes"))
	assert.NoError(t, d.Label(ctx, "jira", map[string]any{}, []string{"x"}))
}
