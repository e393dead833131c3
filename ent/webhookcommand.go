// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/webhookcommand"
	"github.com/droverhq/drover/ent/webhookconfig"
)

// WebhookCommand is the model entity for the WebhookCommand schema.
type WebhookCommand struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WebhookID holds the value of the "webhook_id" field.
	WebhookID string `json:"webhook_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Aliases holds the value of the "aliases" field.
	Aliases []string `json:"aliases,omitempty"`
	// Target agent for create_task actions
	Agent string `json:"agent,omitempty"`
	// Prompt template with {{dotted.path}} placeholders
	Template string `json:"template,omitempty"`
	// Event type this command fires on (structural matching)
	Trigger *string `json:"trigger,omitempty"`
	// Subset-match conditions against the payload (dotted paths)
	Conditions map[string]interface{} `json:"conditions,omitempty"`
	// 0-9 immediate acknowledgements, 10+ task-creating actions
	Priority int `json:"priority,omitempty"`
	// Action holds the value of the "action" field.
	Action webhookcommand.Action `json:"action,omitempty"`
	// Action-specific arguments (emoji, labels, forward URL, response body)
	ActionArgs map[string]interface{} `json:"action_args,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookCommandQuery when eager-loading is set.
	Edges        WebhookCommandEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookCommandEdges holds the relations/edges for other nodes in the graph.
type WebhookCommandEdges struct {
	// Webhook holds the value of the webhook edge.
	Webhook *WebhookConfig `json:"webhook,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WebhookOrErr returns the Webhook value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebhookCommandEdges) WebhookOrErr() (*WebhookConfig, error) {
	if e.Webhook != nil {
		return e.Webhook, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: webhookconfig.Label}
	}
	return nil, &NotLoadedError{edge: "webhook"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookCommand) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookcommand.FieldAliases, webhookcommand.FieldConditions, webhookcommand.FieldActionArgs:
			values[i] = new([]byte)
		case webhookcommand.FieldPriority:
			values[i] = new(sql.NullInt64)
		case webhookcommand.FieldID, webhookcommand.FieldWebhookID, webhookcommand.FieldName, webhookcommand.FieldAgent, webhookcommand.FieldTemplate, webhookcommand.FieldTrigger, webhookcommand.FieldAction:
			values[i] = new(sql.NullString)
		case webhookcommand.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookCommand fields.
func (_m *WebhookCommand) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookcommand.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookcommand.FieldWebhookID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_id", values[i])
			} else if value.Valid {
				_m.WebhookID = value.String
			}
		case webhookcommand.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case webhookcommand.FieldAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aliases); err != nil {
					return fmt.Errorf("unmarshal field aliases: %w", err)
				}
			}
		case webhookcommand.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case webhookcommand.FieldTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template", values[i])
			} else if value.Valid {
				_m.Template = value.String
			}
		case webhookcommand.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = new(string)
				*_m.Trigger = value.String
			}
		case webhookcommand.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case webhookcommand.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case webhookcommand.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = webhookcommand.Action(value.String)
			}
		case webhookcommand.FieldActionArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionArgs); err != nil {
					return fmt.Errorf("unmarshal field action_args: %w", err)
				}
			}
		case webhookcommand.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookCommand.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookCommand) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWebhook queries the "webhook" edge of the WebhookCommand entity.
func (_m *WebhookCommand) QueryWebhook() *WebhookConfigQuery {
	return NewWebhookCommandClient(_m.config).QueryWebhook(_m)
}

// Update returns a builder for updating this WebhookCommand.
// Note that you need to call WebhookCommand.Unwrap() before calling this method if this WebhookCommand
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookCommand) Update() *WebhookCommandUpdateOne {
	return NewWebhookCommandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookCommand entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookCommand) Unwrap() *WebhookCommand {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookCommand is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookCommand) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookCommand(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("webhook_id=")
	builder.WriteString(_m.WebhookID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aliases))
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("template=")
	builder.WriteString(_m.Template)
	builder.WriteString(", ")
	if v := _m.Trigger; v != nil {
		builder.WriteString("trigger=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("action_args=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionArgs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookCommands is a parsable slice of WebhookCommand.
type WebhookCommands []*WebhookCommand
