package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// One task is one invocation of the headless LM CLI with a rendered prompt.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("flow_id").
			Immutable().
			Comment("End-to-end causal chain identifier; stable across restarts when derivable"),
		field.String("external_id").
			Optional().
			Nillable().
			Comment("Provider-scoped identity (e.g. github:org/repo:42) for webhook-initiated tasks"),
		field.String("parent_task_id").
			Optional().
			Nillable(),
		field.String("agent_name").
			Comment("Agent the task runs as (e.g. 'planning')"),
		field.String("agent_kind").
			Comment("Semantic role used for model routing (planning, brain, executor, default)"),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "cancelled").
			Default("queued"),
		field.Text("input").
			Comment("Fully rendered prompt handed to the CLI"),
		field.Text("output_stream").
			Optional().
			Comment("Captured transcript; grows only while running"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("duration_seconds").
			Default(0),
		field.Enum("source").
			Values("chat", "webhook", "subagent"),
		field.JSON("source_metadata", map[string]interface{}{}).
			Optional().
			Comment("Opaque provider payload plus provider/event type for webhook tasks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set on the queued -> running transition"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_output_at").
			Optional().
			Nillable().
			Comment("Last output activity; drives the worker-loss sweep"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id"),
		index.Fields("conversation_id"),
		index.Fields("flow_id"),
		index.Fields("agent_name"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_output_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
