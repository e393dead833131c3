package config

import (
	"fmt"
	"sort"
)

// WebhookSource distinguishes where a webhook definition came from.
type WebhookSource string

// Webhook definition sources.
const (
	SourceBuiltin WebhookSource = "builtin"
	SourceDynamic WebhookSource = "dynamic"
)

// Action kinds a command may perform.
const (
	ActionCreateTask = "create_task"
	ActionComment    = "comment"
	ActionReact      = "react"
	ActionLabel      = "label"
	ActionAsk        = "ask"
	ActionRespond    = "respond"
	ActionForward    = "forward"
)

// Providers with static handlers.
const (
	ProviderGitHub = "github"
	ProviderJira   = "jira"
	ProviderSlack  = "slack"
	ProviderSentry = "sentry"
	ProviderCustom = "custom"
)

// CommandDefinition is one match rule plus its action. Dynamic commands from
// the store are converted into this shape before matching, so the engine only
// ever sees the unified model.
type CommandDefinition struct {
	ID         string                 `yaml:"id,omitempty"`
	Name       string                 `yaml:"name"`
	Aliases    []string               `yaml:"aliases,omitempty"`
	Agent      string                 `yaml:"agent"`
	Template   string                 `yaml:"template,omitempty"`
	Trigger    string                 `yaml:"trigger,omitempty"`
	Conditions map[string]interface{} `yaml:"conditions,omitempty"`
	Priority   int                    `yaml:"priority"`
	Action     string                 `yaml:"action"`
	ActionArgs map[string]interface{} `yaml:"action_args,omitempty"`
}

// WebhookDefinition is the unified webhook config model used at match time.
// Built-ins are declared in builtin.go; dynamic rows are converted by the
// webhook service. Dynamic definitions override built-in commands on name
// collision.
type WebhookDefinition struct {
	ID                string              `yaml:"id,omitempty"`
	Name              string              `yaml:"name"`
	Provider          string              `yaml:"provider"`
	Path              string              `yaml:"path"`
	DefaultAgent      string              `yaml:"default_agent"`
	DefaultCommand    string              `yaml:"default_command,omitempty"`
	CommandPrefix     string              `yaml:"command_prefix,omitempty"`
	SecretEnv         string              `yaml:"secret_env,omitempty"`
	RequiresSignature bool                `yaml:"requires_signature"`
	EventTypeExpr     string              `yaml:"event_type_expr,omitempty"`
	BrainPreamble     string              `yaml:"brain_preamble,omitempty"`
	Enabled           bool                `yaml:"enabled"`
	Source            WebhookSource       `yaml:"-"`
	Commands          []CommandDefinition `yaml:"commands"`
}

// Command returns the command with the given name or alias, or nil.
func (w *WebhookDefinition) Command(name string) *CommandDefinition {
	for i := range w.Commands {
		cmd := &w.Commands[i]
		if cmd.Name == name {
			return cmd
		}
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd
			}
		}
	}
	return nil
}

// MergeCommands overlays dynamic commands onto this definition's command set.
// Dynamic wins on name collision; the result is sorted by (priority, id).
func (w *WebhookDefinition) MergeCommands(dynamic []CommandDefinition) []CommandDefinition {
	byName := make(map[string]CommandDefinition, len(w.Commands)+len(dynamic))
	for _, cmd := range w.Commands {
		byName[cmd.Name] = cmd
	}
	for _, cmd := range dynamic {
		byName[cmd.Name] = cmd
	}

	merged := make([]CommandDefinition, 0, len(byName))
	for _, cmd := range byName {
		merged = append(merged, cmd)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Priority != merged[j].Priority {
			return merged[i].Priority < merged[j].Priority
		}
		return commandTieBreak(merged[i]) < commandTieBreak(merged[j])
	})
	return merged
}

// commandTieBreak returns the deterministic tie-break key for equal priorities.
func commandTieBreak(cmd CommandDefinition) string {
	if cmd.ID != "" {
		return cmd.ID
	}
	return cmd.Name
}

// WebhookRegistry provides lookup of built-in webhook definitions by provider
// and path. Read-only after construction.
type WebhookRegistry struct {
	byProvider map[string]*WebhookDefinition
}

// NewWebhookRegistry builds a registry from built-in definitions and enforces
// the endpoint-path uniqueness invariant among enabled configs.
func NewWebhookRegistry(defs []WebhookDefinition) (*WebhookRegistry, error) {
	byProvider := make(map[string]*WebhookDefinition, len(defs))
	seenPaths := make(map[string]string)

	for i := range defs {
		def := &defs[i]
		def.Source = SourceBuiltin
		if def.Provider == "" {
			return nil, NewValidationError("webhook", def.Name, "provider", ErrMissingRequiredField)
		}
		if !def.Enabled {
			continue
		}
		key := def.Provider + "/" + def.Path
		if other, ok := seenPaths[key]; ok {
			return nil, fmt.Errorf("%w: %q claimed by both %q and %q",
				ErrDuplicateEndpointPath, key, other, def.Name)
		}
		seenPaths[key] = def.Name
		byProvider[def.Provider] = def
	}

	return &WebhookRegistry{byProvider: byProvider}, nil
}

// Get returns the built-in definition for a provider, or nil.
func (r *WebhookRegistry) Get(provider string) *WebhookDefinition {
	return r.byProvider[provider]
}

// Providers returns the sorted list of providers with built-in definitions.
func (r *WebhookRegistry) Providers() []string {
	out := make([]string, 0, len(r.byProvider))
	for p := range r.byProvider {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered built-in definitions.
func (r *WebhookRegistry) Len() int {
	return len(r.byProvider)
}
