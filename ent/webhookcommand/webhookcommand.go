// Code generated by ent, DO NOT EDIT.

package webhookcommand

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhookcommand type in the database.
	Label = "webhook_command"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "command_id"
	// FieldWebhookID holds the string denoting the webhook_id field in the database.
	FieldWebhookID = "webhook_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldTemplate holds the string denoting the template field in the database.
	FieldTemplate = "template"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldActionArgs holds the string denoting the action_args field in the database.
	FieldActionArgs = "action_args"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWebhook holds the string denoting the webhook edge name in mutations.
	EdgeWebhook = "webhook"
	// WebhookConfigFieldID holds the string denoting the ID field of the WebhookConfig.
	WebhookConfigFieldID = "webhook_id"
	// Table holds the table name of the webhookcommand in the database.
	Table = "webhook_commands"
	// WebhookTable is the table that holds the webhook relation/edge.
	WebhookTable = "webhook_commands"
	// WebhookInverseTable is the table name for the WebhookConfig entity.
	// It exists in this package in order to avoid circular dependency with the "webhookconfig" package.
	WebhookInverseTable = "webhook_configs"
	// WebhookColumn is the table column denoting the webhook relation/edge.
	WebhookColumn = "webhook_id"
)

// Columns holds all SQL columns for webhookcommand fields.
var Columns = []string{
	FieldID,
	FieldWebhookID,
	FieldName,
	FieldAliases,
	FieldAgent,
	FieldTemplate,
	FieldTrigger,
	FieldConditions,
	FieldPriority,
	FieldAction,
	FieldActionArgs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// ActionCreateTask is the default value of the Action enum.
const DefaultAction = ActionCreateTask

// Action values.
const (
	ActionCreateTask Action = "create_task"
	ActionComment    Action = "comment"
	ActionReact      Action = "react"
	ActionLabel      Action = "label"
	ActionAsk        Action = "ask"
	ActionRespond    Action = "respond"
	ActionForward    Action = "forward"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionCreateTask, ActionComment, ActionReact, ActionLabel, ActionAsk, ActionRespond, ActionForward:
		return nil
	default:
		return fmt.Errorf("webhookcommand: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the WebhookCommand queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWebhookID orders the results by the webhook_id field.
func ByWebhookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByTemplate orders the results by the template field.
func ByTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplate, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWebhookField orders the results by webhook field.
func ByWebhookField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWebhookStep(), sql.OrderByField(field, opts...))
	}
}
func newWebhookStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WebhookInverseTable, WebhookConfigFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WebhookTable, WebhookColumn),
	)
}
