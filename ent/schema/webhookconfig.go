package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookConfig holds the schema definition for dynamic webhook configs.
// Built-in configs are loaded from static declarations at startup and never
// stored here; uniqueness of enabled endpoint paths across both sources is
// enforced at startup and via a partial unique index (pkg/database).
type WebhookConfig struct {
	ent.Schema
}

// Fields of the WebhookConfig.
func (WebhookConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("provider").
			Comment("github, jira, slack, sentry, custom"),
		field.String("path").
			Comment("Endpoint path under /webhooks/<provider>/"),
		field.String("default_agent"),
		field.String("default_command").
			Optional().
			Nillable(),
		field.String("command_prefix").
			Optional().
			Nillable().
			Comment("Mention prefix for comment-style matching (e.g. '@agent')"),
		field.String("secret_env").
			Optional().
			Nillable().
			Comment("Name of the environment variable holding the signing secret"),
		field.Bool("requires_signature").
			Default(true),
		field.String("event_type_expr").
			Optional().
			Nillable().
			Comment("Dotted payload path yielding the event type (custom provider only)"),
		field.Text("brain_preamble").
			Optional().
			Comment("Delegation preamble wrapped around webhook task prompts"),
		field.Bool("enabled").
			Default(true),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the WebhookConfig.
func (WebhookConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("commands", WebhookCommand.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WebhookConfig.
func (WebhookConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		// Partial unique index: no two ENABLED configs share an endpoint path.
		index.Fields("provider", "path").
			Annotations(entsql.IndexWhere("enabled")).
			Unique(),
	}
}
