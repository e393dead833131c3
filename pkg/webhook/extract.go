package webhook

import (
	"net/http"

	"github.com/droverhq/drover/pkg/config"
)

const headerGitHubEvent = "X-GitHub-Event"

// ExtractEventType derives the provider-normalized event type for matching.
// github concatenates the event header with the payload action
// ("issues.opened"); the other providers carry the type in the payload.
func ExtractEventType(def *config.WebhookDefinition, header http.Header, payload map[string]any) string {
	switch def.Provider {
	case config.ProviderGitHub:
		event := header.Get(headerGitHubEvent)
		if event == "" {
			return ""
		}
		if action := LookupString(payload, "action"); action != "" {
			return event + "." + action
		}
		return event
	case config.ProviderJira:
		return LookupString(payload, "webhookEvent")
	case config.ProviderSlack:
		// Event subscriptions wrap the interesting type one level down.
		if inner := LookupString(payload, "event.type"); inner != "" {
			return inner
		}
		return LookupString(payload, "type")
	case config.ProviderSentry:
		return LookupString(payload, "event")
	default:
		if def.EventTypeExpr != "" {
			return LookupString(payload, def.EventTypeExpr)
		}
		return LookupString(payload, "event_type")
	}
}

// commandTextPaths lists, per provider, the payload fields searched for a
// command phrase, in precedence order.
var commandTextPaths = map[string][]string{
	config.ProviderGitHub: {"comment.body", "issue.body", "pull_request.body"},
	config.ProviderJira:   {"comment.body", "issue.fields.description"},
	config.ProviderSlack:  {"event.text", "text"},
	config.ProviderSentry: {},
}

// ExtractCommandText returns the first non-empty comment-style text blob for
// prefix matching. Providers without comment-style payloads return "".
func ExtractCommandText(provider string, payload map[string]any) string {
	paths, ok := commandTextPaths[provider]
	if !ok {
		paths = []string{"text", "message"}
	}
	for _, path := range paths {
		if text := LookupString(payload, path); text != "" {
			return text
		}
	}
	return ""
}
