package webhook

import (
	"net/http"
	"testing"

	"github.com/droverhq/drover/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchDef() *config.WebhookDefinition {
	return &config.WebhookDefinition{
		Provider:       config.ProviderGitHub,
		CommandPrefix:  "@agent",
		DefaultCommand: "analyze",
		Commands: []config.CommandDefinition{
			{Name: "ack-react", Trigger: "issue_comment.created", Priority: 0, Action: config.ActionReact},
			{Name: "analyze", Aliases: []string{"investigate"}, Priority: 10, Action: config.ActionCreateTask},
			{Name: "implement", Aliases: []string{"fix"}, Priority: 11, Action: config.ActionCreateTask},
			{
				Name:       "triage-bug",
				Trigger:    "issues.opened",
				Conditions: map[string]any{"issue.state": "open"},
				Priority:   15,
				Action:     config.ActionCreateTask,
			},
		},
	}
}

func TestMatchCommands_Trigger(t *testing.T) {
	def := matchDef()

	t.Run("trigger with passing conditions", func(t *testing.T) {
		payload := parsePayload(t, `{"issue":{"state":"open"}}`)
		matched := MatchCommands(def, "issues.opened", payload)
		require.Len(t, matched, 1)
		assert.Equal(t, "triage-bug", matched[0].Name)
	})

	t.Run("trigger with failing conditions", func(t *testing.T) {
		payload := parsePayload(t, `{"issue":{"state":"closed"}}`)
		assert.Empty(t, MatchCommands(def, "issues.opened", payload))
	})

	t.Run("unknown event type", func(t *testing.T) {
		payload := parsePayload(t, `{}`)
		assert.Empty(t, MatchCommands(def, "issues.labeled", payload))
	})
}

func TestMatchCommands_Prefix(t *testing.T) {
	def := matchDef()

	t.Run("command named after prefix", func(t *testing.T) {
		payload := parsePayload(t, `{"comment":{"body":"@agent implement the fix please"}}`)
		matched := MatchCommands(def, "", payload)
		require.Len(t, matched, 1)
		assert.Equal(t, "implement", matched[0].Name)
	})

	t.Run("alias selects its command", func(t *testing.T) {
		payload := parsePayload(t, `{"comment":{"body":"hey @agent investigate this"}}`)
		matched := MatchCommands(def, "", payload)
		require.Len(t, matched, 1)
		assert.Equal(t, "analyze", matched[0].Name)
	})

	t.Run("prefix without known command falls back to default", func(t *testing.T) {
		payload := parsePayload(t, `{"comment":{"body":"@agent do something clever"}}`)
		matched := MatchCommands(def, "", payload)
		require.Len(t, matched, 1)
		assert.Equal(t, "analyze", matched[0].Name)
	})

	t.Run("text without prefix matches nothing", func(t *testing.T) {
		payload := parsePayload(t, `{"comment":{"body":"just chatting about the fix"}}`)
		assert.Empty(t, MatchCommands(def, "", payload))
	})

	t.Run("issue body searched when no comment", func(t *testing.T) {
		payload := parsePayload(t, `{"issue":{"body":"@agent analyze"}}`)
		matched := MatchCommands(def, "", payload)
		require.Len(t, matched, 1)
		assert.Equal(t, "analyze", matched[0].Name)
	})
}

func TestMatchCommands_ModesCombineAndSort(t *testing.T) {
	def := matchDef()
	payload := parsePayload(t, `{"comment":{"body":"@agent investigate"},"issue":{"state":"open"}}`)

	matched := MatchCommands(def, "issue_comment.created", payload)
	require.Len(t, matched, 2)

	// Priority ascending: the acknowledgement runs before the task command.
	assert.Equal(t, "ack-react", matched[0].Name)
	assert.Equal(t, "analyze", matched[1].Name)
}

func TestMatchCommands_PriorityTieBreak(t *testing.T) {
	def := &config.WebhookDefinition{
		Commands: []config.CommandDefinition{
			{ID: "cmd-b", Name: "beta", Trigger: "ev", Priority: 5},
			{ID: "cmd-a", Name: "alpha", Trigger: "ev", Priority: 5},
		},
	}
	matched := MatchCommands(def, "ev", map[string]any{})
	require.Len(t, matched, 2)
	assert.Equal(t, "alpha", matched[0].Name)
	assert.Equal(t, "beta", matched[1].Name)
}

func TestExtractEventType(t *testing.T) {
	t.Run("github header plus action", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderGitHub}
		header := headerWith(headerGitHubEvent, "issues")
		payload := parsePayload(t, `{"action":"opened"}`)
		assert.Equal(t, "issues.opened", ExtractEventType(def, header, payload))
	})

	t.Run("github header without action", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderGitHub}
		header := headerWith(headerGitHubEvent, "push")
		assert.Equal(t, "push", ExtractEventType(def, header, map[string]any{}))
	})

	t.Run("jira webhookEvent", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderJira}
		payload := parsePayload(t, `{"webhookEvent":"jira:issue_updated"}`)
		assert.Equal(t, "jira:issue_updated", ExtractEventType(def, nil, payload))
	})

	t.Run("slack event subscription inner type wins", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderSlack}
		payload := parsePayload(t, `{"type":"event_callback","event":{"type":"app_mention"}}`)
		assert.Equal(t, "app_mention", ExtractEventType(def, nil, payload))
	})

	t.Run("sentry event field", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderSentry}
		payload := parsePayload(t, `{"event":"created"}`)
		assert.Equal(t, "created", ExtractEventType(def, nil, payload))
	})

	t.Run("custom configured expression", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderCustom, EventTypeExpr: "meta.kind"}
		payload := parsePayload(t, `{"meta":{"kind":"deploy.finished"}}`)
		assert.Equal(t, "deploy.finished", ExtractEventType(def, nil, payload))
	})

	t.Run("custom default field", func(t *testing.T) {
		def := &config.WebhookDefinition{Provider: config.ProviderCustom}
		payload := parsePayload(t, `{"event_type":"ping"}`)
		assert.Equal(t, "ping", ExtractEventType(def, nil, payload))
	})
}

func headerWith(key, value string) http.Header {
	h := http.Header{}
	h.Set(key, value)
	return h
}
