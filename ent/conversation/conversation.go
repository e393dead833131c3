// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFlowID holds the string denoting the flow_id field in the database.
	FieldFlowID = "flow_id"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldTotalInputTokens holds the string denoting the total_input_tokens field in the database.
	FieldTotalInputTokens = "total_input_tokens"
	// FieldTotalOutputTokens holds the string denoting the total_output_tokens field in the database.
	FieldTotalOutputTokens = "total_output_tokens"
	// FieldTaskCount holds the string denoting the task_count field in the database.
	FieldTaskCount = "task_count"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldUserID,
	FieldFlowID,
	FieldTotalCostUsd,
	FieldTotalInputTokens,
	FieldTotalOutputTokens,
	FieldTaskCount,
	FieldArchived,
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
	// DefaultTotalCostUsd holds the default value on creation for the "total_cost_usd" field.
	DefaultTotalCostUsd float64
	// DefaultTotalInputTokens holds the default value on creation for the "total_input_tokens" field.
	DefaultTotalInputTokens int
	// DefaultTotalOutputTokens holds the default value on creation for the "total_output_tokens" field.
	DefaultTotalOutputTokens int
	// DefaultTaskCount holds the default value on creation for the "task_count" field.
	DefaultTaskCount int
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFlowID orders the results by the flow_id field.
func ByFlowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowID, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByTotalInputTokens orders the results by the total_input_tokens field.
func ByTotalInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInputTokens, opts...).ToFunc()
}

// ByTotalOutputTokens orders the results by the total_output_tokens field.
func ByTotalOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOutputTokens, opts...).ToFunc()
}

// ByTaskCount orders the results by the task_count field.
func ByTaskCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskCount, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
