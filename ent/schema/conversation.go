package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// An ordered message log associated with zero or more tasks; carries the
// flow identifier so webhook follow-ups land in the same conversation.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional().
			Nillable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("flow_id").
			Comment("Flow this conversation belongs to"),
		field.Float("total_cost_usd").
			Default(0),
		field.Int("total_input_tokens").
			Default(0),
		field.Int("total_output_tokens").
			Default(0),
		field.Int("task_count").
			Default(0),
		field.Bool("archived").
			Default(false).
			Comment("Soft archive; excluded from default listings"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		// Partial unique index: at most one ACTIVE conversation per flow, so
		// concurrent deliveries for the same external entity cannot race past
		// the query-then-create in GetOrCreateByFlow.
		index.Fields("flow_id").
			Annotations(entsql.IndexWhere("NOT archived")).
			Unique(),
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
