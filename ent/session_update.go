// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdate) ClearUserID() *SessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetMachineID sets the "machine_id" field.
func (_u *SessionUpdate) SetMachineID(v string) *SessionUpdate {
	_u.mutation.SetMachineID(v)
	return _u
}

// SetNillableMachineID sets the "machine_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMachineID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetMachineID(*v)
	}
	return _u
}

// ClearMachineID clears the value of the "machine_id" field.
func (_u *SessionUpdate) ClearMachineID() *SessionUpdate {
	_u.mutation.ClearMachineID()
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *SessionUpdate) SetSynthetic(v bool) *SessionUpdate {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSynthetic(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *SessionUpdate) SetTotalCostUsd(v float64) *SessionUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalCostUsd(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *SessionUpdate) AddTotalCostUsd(v float64) *SessionUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *SessionUpdate) SetTaskCount(v int) *SessionUpdate {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTaskCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *SessionUpdate) AddTaskCount(v int) *SessionUpdate {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_u *SessionUpdate) SetDisconnectedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetDisconnectedAt(v)
	return _u
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDisconnectedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetDisconnectedAt(*v)
	}
	return _u
}

// ClearDisconnectedAt clears the value of the "disconnected_at" field.
func (_u *SessionUpdate) ClearDisconnectedAt() *SessionUpdate {
	_u.mutation.ClearDisconnectedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MachineID(); ok {
		_spec.SetField(session.FieldMachineID, field.TypeString, value)
	}
	if _u.mutation.MachineIDCleared() {
		_spec.ClearField(session.FieldMachineID, field.TypeString)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(session.FieldSynthetic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(session.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(session.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(session.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(session.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisconnectedAt(); ok {
		_spec.SetField(session.FieldDisconnectedAt, field.TypeTime, value)
	}
	if _u.mutation.DisconnectedAtCleared() {
		_spec.ClearField(session.FieldDisconnectedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdateOne) ClearUserID() *SessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetMachineID sets the "machine_id" field.
func (_u *SessionUpdateOne) SetMachineID(v string) *SessionUpdateOne {
	_u.mutation.SetMachineID(v)
	return _u
}

// SetNillableMachineID sets the "machine_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMachineID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetMachineID(*v)
	}
	return _u
}

// ClearMachineID clears the value of the "machine_id" field.
func (_u *SessionUpdateOne) ClearMachineID() *SessionUpdateOne {
	_u.mutation.ClearMachineID()
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *SessionUpdateOne) SetSynthetic(v bool) *SessionUpdateOne {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSynthetic(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *SessionUpdateOne) SetTotalCostUsd(v float64) *SessionUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalCostUsd(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *SessionUpdateOne) AddTotalCostUsd(v float64) *SessionUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *SessionUpdateOne) SetTaskCount(v int) *SessionUpdateOne {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTaskCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *SessionUpdateOne) AddTaskCount(v int) *SessionUpdateOne {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_u *SessionUpdateOne) SetDisconnectedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetDisconnectedAt(v)
	return _u
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDisconnectedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetDisconnectedAt(*v)
	}
	return _u
}

// ClearDisconnectedAt clears the value of the "disconnected_at" field.
func (_u *SessionUpdateOne) ClearDisconnectedAt() *SessionUpdateOne {
	_u.mutation.ClearDisconnectedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MachineID(); ok {
		_spec.SetField(session.FieldMachineID, field.TypeString, value)
	}
	if _u.mutation.MachineIDCleared() {
		_spec.ClearField(session.FieldMachineID, field.TypeString)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(session.FieldSynthetic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(session.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(session.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(session.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(session.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisconnectedAt(); ok {
		_spec.SetField(session.FieldDisconnectedAt, field.TypeTime, value)
	}
	if _u.mutation.DisconnectedAtCleared() {
		_spec.ClearField(session.FieldDisconnectedAt, field.TypeTime)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
