// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// MachineID holds the value of the "machine_id" field.
	MachineID *string `json:"machine_id,omitempty"`
	// Created by the webhook path rather than a WebSocket attach
	Synthetic bool `json:"synthetic,omitempty"`
	// TotalCostUsd holds the value of the "total_cost_usd" field.
	TotalCostUsd float64 `json:"total_cost_usd,omitempty"`
	// TaskCount holds the value of the "task_count" field.
	TaskCount int `json:"task_count,omitempty"`
	// ConnectedAt holds the value of the "connected_at" field.
	ConnectedAt time.Time `json:"connected_at,omitempty"`
	// DisconnectedAt holds the value of the "disconnected_at" field.
	DisconnectedAt *time.Time `json:"disconnected_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldSynthetic:
			values[i] = new(sql.NullBool)
		case session.FieldTotalCostUsd:
			values[i] = new(sql.NullFloat64)
		case session.FieldTaskCount:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldUserID, session.FieldMachineID:
			values[i] = new(sql.NullString)
		case session.FieldConnectedAt, session.FieldDisconnectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case session.FieldMachineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field machine_id", values[i])
			} else if value.Valid {
				_m.MachineID = new(string)
				*_m.MachineID = value.String
			}
		case session.FieldSynthetic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synthetic", values[i])
			} else if value.Valid {
				_m.Synthetic = value.Bool
			}
		case session.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = value.Float64
			}
		case session.FieldTaskCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_count", values[i])
			} else if value.Valid {
				_m.TaskCount = int(value.Int64)
			}
		case session.FieldConnectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field connected_at", values[i])
			} else if value.Valid {
				_m.ConnectedAt = value.Time
			}
		case session.FieldDisconnectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field disconnected_at", values[i])
			} else if value.Valid {
				_m.DisconnectedAt = new(time.Time)
				*_m.DisconnectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MachineID; v != nil {
		builder.WriteString("machine_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("synthetic=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthetic))
	builder.WriteString(", ")
	builder.WriteString("total_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCostUsd))
	builder.WriteString(", ")
	builder.WriteString("task_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskCount))
	builder.WriteString(", ")
	builder.WriteString("connected_at=")
	builder.WriteString(_m.ConnectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DisconnectedAt; v != nil {
		builder.WriteString("disconnected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
