package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A client-scoped container for tasks: created when a WebSocket attaches or
// synthesized when a webhook arrives without one. Immutable apart from
// aggregates and disconnect time.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("machine_id").
			Optional().
			Nillable(),
		field.Bool("synthetic").
			Default(false).
			Comment("Created by the webhook path rather than a WebSocket attach"),
		field.Float("total_cost_usd").
			Default(0),
		field.Int("task_count").
			Default(0),
		field.Time("connected_at").
			Default(time.Now).
			Immutable(),
		field.Time("disconnected_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("disconnected_at"),
		index.Fields("user_id"),
	}
}
