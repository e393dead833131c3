package webhook

import (
	"encoding/json"
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

func TestRenderTemplate(t *testing.T) {
	payload := parsePayload(t, `{
		"issue": {"number": 42, "title": "Login broken", "body": "Stack trace attached"},
		"repository": {"full_name": "acme/web"},
		"flag": true
	}`)

	t.Run("substitutes dotted paths", func(t *testing.T) {
		out := RenderTemplate("Issue #{{issue.number}} in {{repository.full_name}}: {{issue.title}}", payload)
		assert.Equal(t, "Issue #42 in acme/web: Login broken", out)
	})

	t.Run("missing path renders empty", func(t *testing.T) {
		out := RenderTemplate("before [{{issue.assignee.login}}] after", payload)
		assert.Equal(t, "before [] after", out)
	})

	t.Run("inner whitespace tolerated", func(t *testing.T) {
		assert.Equal(t, "Login broken", RenderTemplate("{{ issue.title }}", payload))
	})

	t.Run("non-string scalars formatted", func(t *testing.T) {
		assert.Equal(t, "true", RenderTemplate("{{flag}}", payload))
	})

	t.Run("objects render empty", func(t *testing.T) {
		assert.Equal(t, "", RenderTemplate("{{issue}}", payload))
	})

	t.Run("no placeholders passes through", func(t *testing.T) {
		assert.Equal(t, "plain text", RenderTemplate("plain text", payload))
	})
}

func TestLookupPath(t *testing.T) {
	payload := parsePayload(t, `{"a":{"b":{"c":"deep"}},"n":7}`)

	value, ok := LookupPath(payload, "a.b.c")
	require.True(t, ok)
	assert.Equal(t, "deep", value)

	_, ok = LookupPath(payload, "a.b.missing")
	assert.False(t, ok)

	// Descending through a scalar fails, not panics.
	_, ok = LookupPath(payload, "n.deeper")
	assert.False(t, ok)

	_, ok = LookupPath(payload, "")
	assert.False(t, ok)
}

func TestConditionsMatch(t *testing.T) {
	payload := parsePayload(t, `{
		"issue": {"fields": {"assignee": {"displayName": "AI Agent"}, "priority": 1}}
	}`)

	t.Run("subset match", func(t *testing.T) {
		assert.True(t, conditionsMatch(map[string]any{
			"issue.fields.assignee.displayName": "AI Agent",
		}, payload))
	})

	t.Run("value mismatch", func(t *testing.T) {
		assert.False(t, conditionsMatch(map[string]any{
			"issue.fields.assignee.displayName": "Someone Else",
		}, payload))
	})

	t.Run("missing path", func(t *testing.T) {
		assert.False(t, conditionsMatch(map[string]any{"issue.fields.labels": "bug"}, payload))
	})

	t.Run("numeric condition matches json number", func(t *testing.T) {
		assert.True(t, conditionsMatch(map[string]any{"issue.fields.priority": 1}, payload))
	})
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, containsPhrase(" please investigate this", "investigate"))
	assert.True(t, containsPhrase("FIX it", "fix"))
	assert.False(t, containsPhrase("prefix matching", "fix"))
	assert.False(t, containsPhrase("fixture", "fix"))
	assert.True(t, containsPhrase("fix", "fix"))
}
