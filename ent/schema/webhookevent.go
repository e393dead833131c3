package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the audit record written for every accepted webhook
// request, whether or not it produced a task.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("webhook_id").
			Comment("Config id, or the provider name for built-ins"),
		field.String("provider"),
		field.String("event_type"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Raw normalized payload"),
		field.String("matched_command").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Bool("response_sent").
			Default(false).
			Comment("Whether the immediate acknowledgement succeeded"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("webhook_id", "received_at"),
		index.Fields("provider"),
	}
}
