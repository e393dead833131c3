package flow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromExternalID_Stable(t *testing.T) {
	a := FromExternalID("github:o/r:42")
	b := FromExternalID("github:o/r:42")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, FromExternalID("github:o/r:43"))

	// The mapping must never change: existing flows in the database depend
	// on it surviving upgrades.
	assert.Equal(t, "flow-8ed1e29b2648d18b", FromExternalID("jira:PROJ-123"))
}

func TestNewFlowID_Unique(t *testing.T) {
	assert.NotEqual(t, NewFlowID(), NewFlowID())
}

func TestResolve(t *testing.T) {
	t.Run("parent wins", func(t *testing.T) {
		assert.Equal(t, "flow-parent", Resolve("flow-parent", "jira:PROJ-1"))
	})

	t.Run("external id when no parent", func(t *testing.T) {
		assert.Equal(t, FromExternalID("jira:PROJ-1"), Resolve("", "jira:PROJ-1"))
	})

	t.Run("fresh otherwise", func(t *testing.T) {
		assert.NotEqual(t, Resolve("", ""), Resolve("", ""))
	})
}

func decodePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestDeriveExternalID(t *testing.T) {
	t.Run("github issue comment", func(t *testing.T) {
		payload := decodePayload(t, `{
			"action": "created",
			"issue": {"number": 42, "title": "Bug in login"},
			"comment": {"body": "@agent analyze", "id": 111},
			"repository": {"full_name": "o/r"}
		}`)
		assert.Equal(t, "github:o/r:42", DeriveExternalID("github", payload))
	})

	t.Run("github pull request", func(t *testing.T) {
		payload := decodePayload(t, `{
			"pull_request": {"number": 7},
			"repository": {"full_name": "o/r"}
		}`)
		assert.Equal(t, "github:o/r:7", DeriveExternalID("github", payload))
	})

	t.Run("github without issue", func(t *testing.T) {
		payload := decodePayload(t, `{"repository": {"full_name": "o/r"}}`)
		assert.Empty(t, DeriveExternalID("github", payload))
	})

	t.Run("jira issue", func(t *testing.T) {
		payload := decodePayload(t, `{
			"webhookEvent": "jira:issue_updated",
			"issue": {"key": "PROJ-123", "fields": {"summary": "S"}}
		}`)
		assert.Equal(t, "jira:PROJ-123", DeriveExternalID("jira", payload))
	})

	t.Run("slack thread reply joins thread flow", func(t *testing.T) {
		payload := decodePayload(t, `{
			"event": {"channel": "C123", "ts": "2.0", "thread_ts": "1.0"}
		}`)
		assert.Equal(t, "slack:C123:1.0", DeriveExternalID("slack", payload))
	})

	t.Run("slack unthreaded message uses its own ts", func(t *testing.T) {
		payload := decodePayload(t, `{"event": {"channel": "C123", "ts": "2.0"}}`)
		assert.Equal(t, "slack:C123:2.0", DeriveExternalID("slack", payload))
	})

	t.Run("sentry issue", func(t *testing.T) {
		payload := decodePayload(t, `{"issue": {"id": "12345"}}`)
		assert.Equal(t, "sentry:12345", DeriveExternalID("sentry", payload))
	})

	t.Run("sentry nested under data", func(t *testing.T) {
		payload := decodePayload(t, `{"data": {"issue": {"id": 12345}}}`)
		assert.Equal(t, "sentry:12345", DeriveExternalID("sentry", payload))
	})

	t.Run("custom provider passthrough", func(t *testing.T) {
		payload := decodePayload(t, `{"external_id": "build-991"}`)
		assert.Equal(t, "deploybot:build-991", DeriveExternalID("deploybot", payload))
	})

	t.Run("underivable returns empty", func(t *testing.T) {
		assert.Empty(t, DeriveExternalID("github", map[string]any{}))
		assert.Empty(t, DeriveExternalID("deploybot", map[string]any{}))
	})
}

func TestWantsNewConversation(t *testing.T) {
	t.Run("metadata flag", func(t *testing.T) {
		assert.True(t, WantsNewConversation(map[string]any{"new_conversation": true}, ""))
		assert.False(t, WantsNewConversation(map[string]any{"new_conversation": false}, ""))
	})

	t.Run("prompt marker", func(t *testing.T) {
		assert.True(t, WantsNewConversation(nil, "Please start a NEW conversation about deploys"))
		assert.False(t, WantsNewConversation(nil, "continue the analysis"))
	})
}
