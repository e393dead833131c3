// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/conversation"
	"github.com/droverhq/drover/ent/message"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ConversationCreate) SetTitle(v string) *ConversationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTitle(v *string) *ConversationCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationCreate) SetUserID(v string) *ConversationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUserID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *ConversationCreate) SetFlowID(v string) *ConversationCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *ConversationCreate) SetTotalCostUsd(v float64) *ConversationCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalCostUsd(v *float64) *ConversationCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *ConversationCreate) SetTotalInputTokens(v int) *ConversationCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalInputTokens(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *ConversationCreate) SetTotalOutputTokens(v int) *ConversationCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalOutputTokens(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetTaskCount sets the "task_count" field.
func (_c *ConversationCreate) SetTaskCount(v int) *ConversationCreate {
	_c.mutation.SetTaskCount(v)
	return _c
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTaskCount(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTaskCount(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *ConversationCreate) SetArchived(v bool) *ConversationCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableArchived(v *bool) *ConversationCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		v := conversation.DefaultTotalCostUsd
		_c.mutation.SetTotalCostUsd(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := conversation.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := conversation.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.TaskCount(); !ok {
		v := conversation.DefaultTaskCount
		_c.mutation.SetTaskCount(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := conversation.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.FlowID(); !ok {
		return &ValidationError{Name: "flow_id", err: errors.New(`ent: missing required field "Conversation.flow_id"`)}
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		return &ValidationError{Name: "total_cost_usd", err: errors.New(`ent: missing required field "Conversation.total_cost_usd"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "Conversation.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "Conversation.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.TaskCount(); !ok {
		return &ValidationError{Name: "task_count", err: errors.New(`ent: missing required field "Conversation.task_count"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Conversation.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FlowID(); ok {
		_spec.SetField(conversation.FieldFlowID, field.TypeString, value)
		_node.FlowID = value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(conversation.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.TaskCount(); ok {
		_spec.SetField(conversation.FieldTaskCount, field.TypeInt, value)
		_node.TaskCount = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(conversation.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
