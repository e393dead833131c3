// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUserID(v *string) *SessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetMachineID sets the "machine_id" field.
func (_c *SessionCreate) SetMachineID(v string) *SessionCreate {
	_c.mutation.SetMachineID(v)
	return _c
}

// SetNillableMachineID sets the "machine_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMachineID(v *string) *SessionCreate {
	if v != nil {
		_c.SetMachineID(*v)
	}
	return _c
}

// SetSynthetic sets the "synthetic" field.
func (_c *SessionCreate) SetSynthetic(v bool) *SessionCreate {
	_c.mutation.SetSynthetic(v)
	return _c
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSynthetic(v *bool) *SessionCreate {
	if v != nil {
		_c.SetSynthetic(*v)
	}
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *SessionCreate) SetTotalCostUsd(v float64) *SessionCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalCostUsd(v *float64) *SessionCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetTaskCount sets the "task_count" field.
func (_c *SessionCreate) SetTaskCount(v int) *SessionCreate {
	_c.mutation.SetTaskCount(v)
	return _c
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTaskCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetTaskCount(*v)
	}
	return _c
}

// SetConnectedAt sets the "connected_at" field.
func (_c *SessionCreate) SetConnectedAt(v time.Time) *SessionCreate {
	_c.mutation.SetConnectedAt(v)
	return _c
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableConnectedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetConnectedAt(*v)
	}
	return _c
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_c *SessionCreate) SetDisconnectedAt(v time.Time) *SessionCreate {
	_c.mutation.SetDisconnectedAt(v)
	return _c
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDisconnectedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetDisconnectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Synthetic(); !ok {
		v := session.DefaultSynthetic
		_c.mutation.SetSynthetic(v)
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		v := session.DefaultTotalCostUsd
		_c.mutation.SetTotalCostUsd(v)
	}
	if _, ok := _c.mutation.TaskCount(); !ok {
		v := session.DefaultTaskCount
		_c.mutation.SetTaskCount(v)
	}
	if _, ok := _c.mutation.ConnectedAt(); !ok {
		v := session.DefaultConnectedAt()
		_c.mutation.SetConnectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.Synthetic(); !ok {
		return &ValidationError{Name: "synthetic", err: errors.New(`ent: missing required field "Session.synthetic"`)}
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		return &ValidationError{Name: "total_cost_usd", err: errors.New(`ent: missing required field "Session.total_cost_usd"`)}
	}
	if _, ok := _c.mutation.TaskCount(); !ok {
		return &ValidationError{Name: "task_count", err: errors.New(`ent: missing required field "Session.task_count"`)}
	}
	if _, ok := _c.mutation.ConnectedAt(); !ok {
		return &ValidationError{Name: "connected_at", err: errors.New(`ent: missing required field "Session.connected_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.MachineID(); ok {
		_spec.SetField(session.FieldMachineID, field.TypeString, value)
		_node.MachineID = &value
	}
	if value, ok := _c.mutation.Synthetic(); ok {
		_spec.SetField(session.FieldSynthetic, field.TypeBool, value)
		_node.Synthetic = value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(session.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = value
	}
	if value, ok := _c.mutation.TaskCount(); ok {
		_spec.SetField(session.FieldTaskCount, field.TypeInt, value)
		_node.TaskCount = value
	}
	if value, ok := _c.mutation.ConnectedAt(); ok {
		_spec.SetField(session.FieldConnectedAt, field.TypeTime, value)
		_node.ConnectedAt = value
	}
	if value, ok := _c.mutation.DisconnectedAt(); ok {
		_spec.SetField(session.FieldDisconnectedAt, field.TypeTime, value)
		_node.DisconnectedAt = &value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
