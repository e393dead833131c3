package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account holds identity scaffolding for multi-tenant deployments.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
