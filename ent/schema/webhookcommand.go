package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookCommand holds the schema definition for commands attached to a
// dynamic webhook config. Execution order on a single event is ascending
// priority, ties broken by command id.
type WebhookCommand struct {
	ent.Schema
}

// Fields of the WebhookCommand.
func (WebhookCommand) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("command_id").
			Unique().
			Immutable(),
		field.String("webhook_id").
			Immutable(),
		field.String("name"),
		field.JSON("aliases", []string{}).
			Optional(),
		field.String("agent").
			Comment("Target agent for create_task actions"),
		field.Text("template").
			Optional().
			Comment("Prompt template with {{dotted.path}} placeholders"),
		field.String("trigger").
			Optional().
			Nillable().
			Comment("Event type this command fires on (structural matching)"),
		field.JSON("conditions", map[string]interface{}{}).
			Optional().
			Comment("Subset-match conditions against the payload (dotted paths)"),
		field.Int("priority").
			Default(10).
			Comment("0-9 immediate acknowledgements, 10+ task-creating actions"),
		field.Enum("action").
			Values("create_task", "comment", "react", "label", "ask", "respond", "forward").
			Default("create_task"),
		field.JSON("action_args", map[string]interface{}{}).
			Optional().
			Comment("Action-specific arguments (emoji, labels, forward URL, response body)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookCommand.
func (WebhookCommand) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("webhook", WebhookConfig.Type).
			Ref("commands").
			Field("webhook_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookCommand.
func (WebhookCommand) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("webhook_id", "name").
			Unique(),
		index.Fields("webhook_id", "priority"),
	}
}
