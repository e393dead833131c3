package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Machine holds heartbeat scaffolding for multi-instance deployments.
// The heartbeat is monotonic: updates never move it backwards.
type Machine struct {
	ent.Schema
}

// Fields of the Machine.
func (Machine) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("machine_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Optional().
			Nillable(),
		field.String("hostname"),
		field.Time("last_heartbeat_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Machine.
func (Machine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("last_heartbeat_at"),
	}
}
