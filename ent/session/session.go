// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMachineID holds the string denoting the machine_id field in the database.
	FieldMachineID = "machine_id"
	// FieldSynthetic holds the string denoting the synthetic field in the database.
	FieldSynthetic = "synthetic"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldTaskCount holds the string denoting the task_count field in the database.
	FieldTaskCount = "task_count"
	// FieldConnectedAt holds the string denoting the connected_at field in the database.
	FieldConnectedAt = "connected_at"
	// FieldDisconnectedAt holds the string denoting the disconnected_at field in the database.
	FieldDisconnectedAt = "disconnected_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMachineID,
	FieldSynthetic,
	FieldTotalCostUsd,
	FieldTaskCount,
	FieldConnectedAt,
	FieldDisconnectedAt,
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
	// DefaultSynthetic holds the default value on creation for the "synthetic" field.
	DefaultSynthetic bool
	// DefaultTotalCostUsd holds the default value on creation for the "total_cost_usd" field.
	DefaultTotalCostUsd float64
	// DefaultTaskCount holds the default value on creation for the "task_count" field.
	DefaultTaskCount int
	// DefaultConnectedAt holds the default value on creation for the "connected_at" field.
	DefaultConnectedAt func() time.Time
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMachineID orders the results by the machine_id field.
func ByMachineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMachineID, opts...).ToFunc()
}

// BySynthetic orders the results by the synthetic field.
func BySynthetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthetic, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByTaskCount orders the results by the task_count field.
func ByTaskCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskCount, opts...).ToFunc()
}

// ByConnectedAt orders the results by the connected_at field.
func ByConnectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectedAt, opts...).ToFunc()
}

// ByDisconnectedAt orders the results by the disconnected_at field.
func ByDisconnectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisconnectedAt, opts...).ToFunc()
}
