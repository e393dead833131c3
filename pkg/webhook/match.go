package webhook

import (
	"sort"
	"strings"

	"github.com/droverhq/drover/pkg/config"
)

// MatchCommands selects the commands to execute for one incoming event. The
// two modes are non-exclusive: a comment can name a command after the prefix
// while the same event also fires trigger-bound commands. The result is
// deduplicated by command name and sorted by ascending priority, ties broken
// by command identifier.
func MatchCommands(def *config.WebhookDefinition, eventType string, payload map[string]any) []config.CommandDefinition {
	byName := make(map[string]config.CommandDefinition)

	for _, cmd := range matchByTrigger(def, eventType, payload) {
		byName[cmd.Name] = cmd
	}
	for _, cmd := range matchByPrefix(def, payload) {
		byName[cmd.Name] = cmd
	}

	matched := make([]config.CommandDefinition, 0, len(byName))
	for _, cmd := range byName {
		matched = append(matched, cmd)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority < matched[j].Priority
		}
		return commandKey(matched[i]) < commandKey(matched[j])
	})
	return matched
}

// matchByTrigger selects commands whose trigger equals the event type and
// whose conditions subset-match the payload.
func matchByTrigger(def *config.WebhookDefinition, eventType string, payload map[string]any) []config.CommandDefinition {
	if eventType == "" {
		return nil
	}
	var matched []config.CommandDefinition
	for _, cmd := range def.Commands {
		if cmd.Trigger != eventType {
			continue
		}
		if len(cmd.Conditions) > 0 && !conditionsMatch(cmd.Conditions, payload) {
			continue
		}
		matched = append(matched, cmd)
	}
	return matched
}

// matchByPrefix handles comment-style payloads: when the text contains the
// webhook's command prefix, the phrase after it selects a command by name or
// alias, falling back to default_command when nothing is named.
func matchByPrefix(def *config.WebhookDefinition, payload map[string]any) []config.CommandDefinition {
	if def.CommandPrefix == "" {
		return nil
	}
	text := ExtractCommandText(def.Provider, payload)
	if text == "" {
		return nil
	}

	idx := strings.Index(strings.ToLower(text), strings.ToLower(def.CommandPrefix))
	if idx < 0 {
		return nil
	}
	after := text[idx+len(def.CommandPrefix):]

	for _, cmd := range def.Commands {
		if containsPhrase(after, cmd.Name) {
			return []config.CommandDefinition{cmd}
		}
		for _, alias := range cmd.Aliases {
			if containsPhrase(after, alias) {
				return []config.CommandDefinition{cmd}
			}
		}
	}

	if def.DefaultCommand != "" {
		if cmd := def.Command(def.DefaultCommand); cmd != nil {
			return []config.CommandDefinition{*cmd}
		}
	}
	return nil
}

func commandKey(cmd config.CommandDefinition) string {
	if cmd.ID != "" {
		return cmd.ID
	}
	return cmd.Name
}
