package flow

import "fmt"

// DeriveExternalID computes the provider-scoped external identifier for a
// webhook payload, e.g. "github:o/r:42" or "jira:PROJ-123". Returns "" when
// the payload carries no derivable identity; such tasks get a fresh flow.
func DeriveExternalID(provider string, payload map[string]any) string {
	switch provider {
	case "github":
		return deriveGitHub(payload)
	case "jira":
		return deriveJira(payload)
	case "slack":
		return deriveSlack(payload)
	case "sentry":
		return deriveSentry(payload)
	default:
		// Custom providers may supply their identity directly.
		if id := stringField(payload, "external_id"); id != "" {
			return provider + ":" + id
		}
		return ""
	}
}

// deriveGitHub keys on repository plus issue or pull request number, so every
// comment on the same issue joins one flow.
func deriveGitHub(payload map[string]any) string {
	repo := stringField(mapField(payload, "repository"), "full_name")
	if repo == "" {
		return ""
	}
	for _, key := range []string{"issue", "pull_request"} {
		if number, ok := numberField(mapField(payload, key), "number"); ok {
			return fmt.Sprintf("github:%s:%d", repo, number)
		}
	}
	return ""
}

func deriveJira(payload map[string]any) string {
	key := stringField(mapField(payload, "issue"), "key")
	if key == "" {
		return ""
	}
	return "jira:" + key
}

// deriveSlack keys on channel plus thread timestamp, so replies in a thread
// share a flow. An unthreaded message starts its own flow keyed by its ts.
func deriveSlack(payload map[string]any) string {
	event := mapField(payload, "event")
	channel := stringField(event, "channel")
	if channel == "" {
		return ""
	}
	ts := stringField(event, "thread_ts")
	if ts == "" {
		ts = stringField(event, "ts")
	}
	if ts == "" {
		return "slack:" + channel
	}
	return fmt.Sprintf("slack:%s:%s", channel, ts)
}

func deriveSentry(payload map[string]any) string {
	issue := mapField(payload, "issue")
	if issue == nil {
		issue = mapField(mapField(payload, "data"), "issue")
	}
	id := stringField(issue, "id")
	if id == "" {
		if number, ok := numberField(issue, "id"); ok {
			id = fmt.Sprintf("%d", number)
		}
	}
	if id == "" {
		return ""
	}
	return "sentry:" + id
}

func mapField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// numberField reads a JSON number. encoding/json decodes into float64.
func numberField(m map[string]any, key string) (int64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
