// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/webhookconfig"
)

// WebhookConfig is the model entity for the WebhookConfig schema.
type WebhookConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// github, jira, slack, sentry, custom
	Provider string `json:"provider,omitempty"`
	// Endpoint path under /webhooks/<provider>/
	Path string `json:"path,omitempty"`
	// DefaultAgent holds the value of the "default_agent" field.
	DefaultAgent string `json:"default_agent,omitempty"`
	// DefaultCommand holds the value of the "default_command" field.
	DefaultCommand *string `json:"default_command,omitempty"`
	// Mention prefix for comment-style matching (e.g. '@agent')
	CommandPrefix *string `json:"command_prefix,omitempty"`
	// Name of the environment variable holding the signing secret
	SecretEnv *string `json:"secret_env,omitempty"`
	// RequiresSignature holds the value of the "requires_signature" field.
	RequiresSignature bool `json:"requires_signature,omitempty"`
	// Dotted payload path yielding the event type (custom provider only)
	EventTypeExpr *string `json:"event_type_expr,omitempty"`
	// Delegation preamble wrapped around webhook task prompts
	BrainPreamble string `json:"brain_preamble,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookConfigQuery when eager-loading is set.
	Edges        WebhookConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookConfigEdges holds the relations/edges for other nodes in the graph.
type WebhookConfigEdges struct {
	// Commands holds the value of the commands edge.
	Commands []*WebhookCommand `json:"commands,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CommandsOrErr returns the Commands value or an error if the edge
// was not loaded in eager-loading.
func (e WebhookConfigEdges) CommandsOrErr() ([]*WebhookCommand, error) {
	if e.loadedTypes[0] {
		return e.Commands, nil
	}
	return nil, &NotLoadedError{edge: "commands"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookconfig.FieldRequiresSignature, webhookconfig.FieldEnabled:
			values[i] = new(sql.NullBool)
		case webhookconfig.FieldID, webhookconfig.FieldName, webhookconfig.FieldProvider, webhookconfig.FieldPath, webhookconfig.FieldDefaultAgent, webhookconfig.FieldDefaultCommand, webhookconfig.FieldCommandPrefix, webhookconfig.FieldSecretEnv, webhookconfig.FieldEventTypeExpr, webhookconfig.FieldBrainPreamble, webhookconfig.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case webhookconfig.FieldCreatedAt, webhookconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookConfig fields.
func (_m *WebhookConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case webhookconfig.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case webhookconfig.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case webhookconfig.FieldDefaultAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_agent", values[i])
			} else if value.Valid {
				_m.DefaultAgent = value.String
			}
		case webhookconfig.FieldDefaultCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_command", values[i])
			} else if value.Valid {
				_m.DefaultCommand = new(string)
				*_m.DefaultCommand = value.String
			}
		case webhookconfig.FieldCommandPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_prefix", values[i])
			} else if value.Valid {
				_m.CommandPrefix = new(string)
				*_m.CommandPrefix = value.String
			}
		case webhookconfig.FieldSecretEnv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret_env", values[i])
			} else if value.Valid {
				_m.SecretEnv = new(string)
				*_m.SecretEnv = value.String
			}
		case webhookconfig.FieldRequiresSignature:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_signature", values[i])
			} else if value.Valid {
				_m.RequiresSignature = value.Bool
			}
		case webhookconfig.FieldEventTypeExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type_expr", values[i])
			} else if value.Valid {
				_m.EventTypeExpr = new(string)
				*_m.EventTypeExpr = value.String
			}
		case webhookconfig.FieldBrainPreamble:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brain_preamble", values[i])
			} else if value.Valid {
				_m.BrainPreamble = value.String
			}
		case webhookconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case webhookconfig.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case webhookconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case webhookconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookConfig.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCommands queries the "commands" edge of the WebhookConfig entity.
func (_m *WebhookConfig) QueryCommands() *WebhookCommandQuery {
	return NewWebhookConfigClient(_m.config).QueryCommands(_m)
}

// Update returns a builder for updating this WebhookConfig.
// Note that you need to call WebhookConfig.Unwrap() before calling this method if this WebhookConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookConfig) Update() *WebhookConfigUpdateOne {
	return NewWebhookConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookConfig) Unwrap() *WebhookConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookConfig) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("default_agent=")
	builder.WriteString(_m.DefaultAgent)
	builder.WriteString(", ")
	if v := _m.DefaultCommand; v != nil {
		builder.WriteString("default_command=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommandPrefix; v != nil {
		builder.WriteString("command_prefix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SecretEnv; v != nil {
		builder.WriteString("secret_env=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("requires_signature=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresSignature))
	builder.WriteString(", ")
	if v := _m.EventTypeExpr; v != nil {
		builder.WriteString("event_type_expr=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("brain_preamble=")
	builder.WriteString(_m.BrainPreamble)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookConfigs is a parsable slice of WebhookConfig.
type WebhookConfigs []*WebhookConfig
