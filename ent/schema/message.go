package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Strictly append-only within a conversation; ordering is created_at plus
// sequence_number (insertion sequence breaks ties deterministically).
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.String("task_id").
			Optional().
			Nillable().
			Comment("Task that produced this message (assistant results)"),
		field.Int("sequence_number").
			Comment("Conversation-scoped insertion order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "sequence_number"),
		index.Fields("task_id"),
	}
}
