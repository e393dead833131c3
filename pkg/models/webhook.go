package models

// CreateWebhookCommandRequest declares one command on a dynamic webhook config.
type CreateWebhookCommandRequest struct {
	Name       string         `json:"name"`
	Aliases    []string       `json:"aliases,omitempty"`
	Agent      string         `json:"agent"`
	Template   string         `json:"template,omitempty"`
	Trigger    string         `json:"trigger,omitempty"`
	Conditions map[string]any `json:"conditions,omitempty"`
	Priority   *int           `json:"priority,omitempty"` // defaults to 10
	Action     string         `json:"action,omitempty"`   // defaults to create_task
	ActionArgs map[string]any `json:"action_args,omitempty"`
}

// CreateWebhookConfigRequest registers a dynamic webhook endpoint.
type CreateWebhookConfigRequest struct {
	Name              string                        `json:"name"`
	Provider          string                        `json:"provider"`
	Path              string                        `json:"path"`
	DefaultAgent      string                        `json:"default_agent"`
	DefaultCommand    string                        `json:"default_command,omitempty"`
	CommandPrefix     string                        `json:"command_prefix,omitempty"`
	SecretEnv         string                        `json:"secret_env,omitempty"`
	RequiresSignature *bool                         `json:"requires_signature,omitempty"` // defaults to true
	EventTypeExpr     string                        `json:"event_type_expr,omitempty"`
	BrainPreamble     string                        `json:"brain_preamble,omitempty"`
	Enabled           *bool                         `json:"enabled,omitempty"` // defaults to true
	CreatedBy         string                        `json:"created_by,omitempty"`
	Commands          []CreateWebhookCommandRequest `json:"commands,omitempty"`
}

// UpdateWebhookConfigRequest modifies a dynamic webhook config. Nil fields
// are left unchanged.
type UpdateWebhookConfigRequest struct {
	Name              *string `json:"name,omitempty"`
	DefaultAgent      *string `json:"default_agent,omitempty"`
	DefaultCommand    *string `json:"default_command,omitempty"`
	CommandPrefix     *string `json:"command_prefix,omitempty"`
	SecretEnv         *string `json:"secret_env,omitempty"`
	RequiresSignature *bool   `json:"requires_signature,omitempty"`
	EventTypeExpr     *string `json:"event_type_expr,omitempty"`
	BrainPreamble     *string `json:"brain_preamble,omitempty"`
	Enabled           *bool   `json:"enabled,omitempty"`
}

// RecordWebhookEventRequest writes one audit row for an accepted webhook
// request.
type RecordWebhookEventRequest struct {
	WebhookID      string
	Provider       string
	EventType      string
	Payload        map[string]any
	MatchedCommand string
	TaskID         string
}

// UpdateWebhookCommandRequest modifies a command on a dynamic webhook config.
// Nil fields are left unchanged.
type UpdateWebhookCommandRequest struct {
	Name       *string         `json:"name,omitempty"`
	Aliases    *[]string       `json:"aliases,omitempty"`
	Agent      *string         `json:"agent,omitempty"`
	Template   *string         `json:"template,omitempty"`
	Trigger    *string         `json:"trigger,omitempty"`
	Conditions *map[string]any `json:"conditions,omitempty"`
	Priority   *int            `json:"priority,omitempty"`
	Action     *string         `json:"action,omitempty"`
	ActionArgs *map[string]any `json:"action_args,omitempty"`
}
