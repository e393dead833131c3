// Code generated by ent, DO NOT EDIT.

package webhookconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhookconfig type in the database.
	Label = "webhook_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldDefaultAgent holds the string denoting the default_agent field in the database.
	FieldDefaultAgent = "default_agent"
	// FieldDefaultCommand holds the string denoting the default_command field in the database.
	FieldDefaultCommand = "default_command"
	// FieldCommandPrefix holds the string denoting the command_prefix field in the database.
	FieldCommandPrefix = "command_prefix"
	// FieldSecretEnv holds the string denoting the secret_env field in the database.
	FieldSecretEnv = "secret_env"
	// FieldRequiresSignature holds the string denoting the requires_signature field in the database.
	FieldRequiresSignature = "requires_signature"
	// FieldEventTypeExpr holds the string denoting the event_type_expr field in the database.
	FieldEventTypeExpr = "event_type_expr"
	// FieldBrainPreamble holds the string denoting the brain_preamble field in the database.
	FieldBrainPreamble = "brain_preamble"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCommands holds the string denoting the commands edge name in mutations.
	EdgeCommands = "commands"
	// WebhookCommandFieldID holds the string denoting the ID field of the WebhookCommand.
	WebhookCommandFieldID = "command_id"
	// Table holds the table name of the webhookconfig in the database.
	Table = "webhook_configs"
	// CommandsTable is the table that holds the commands relation/edge.
	CommandsTable = "webhook_commands"
	// CommandsInverseTable is the table name for the WebhookCommand entity.
	// It exists in this package in order to avoid circular dependency with the "webhookcommand" package.
	CommandsInverseTable = "webhook_commands"
	// CommandsColumn is the table column denoting the commands relation/edge.
	CommandsColumn = "webhook_id"
)

// Columns holds all SQL columns for webhookconfig fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProvider,
	FieldPath,
	FieldDefaultAgent,
	FieldDefaultCommand,
	FieldCommandPrefix,
	FieldSecretEnv,
	FieldRequiresSignature,
	FieldEventTypeExpr,
	FieldBrainPreamble,
	FieldEnabled,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultRequiresSignature holds the default value on creation for the "requires_signature" field.
	DefaultRequiresSignature bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the WebhookConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByDefaultAgent orders the results by the default_agent field.
func ByDefaultAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAgent, opts...).ToFunc()
}

// ByDefaultCommand orders the results by the default_command field.
func ByDefaultCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultCommand, opts...).ToFunc()
}

// ByCommandPrefix orders the results by the command_prefix field.
func ByCommandPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandPrefix, opts...).ToFunc()
}

// BySecretEnv orders the results by the secret_env field.
func BySecretEnv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretEnv, opts...).ToFunc()
}

// ByRequiresSignature orders the results by the requires_signature field.
func ByRequiresSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresSignature, opts...).ToFunc()
}

// ByEventTypeExpr orders the results by the event_type_expr field.
func ByEventTypeExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTypeExpr, opts...).ToFunc()
}

// ByBrainPreamble orders the results by the brain_preamble field.
func ByBrainPreamble(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrainPreamble, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCommandsCount orders the results by commands count.
func ByCommandsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommandsStep(), opts...)
	}
}

// ByCommands orders the results by commands terms.
func ByCommands(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommandsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCommandsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommandsInverseTable, WebhookCommandFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommandsTable, CommandsColumn),
	)
}
