// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/webhookcommand"
	"github.com/droverhq/drover/ent/webhookconfig"
)

// WebhookCommandCreate is the builder for creating a WebhookCommand entity.
type WebhookCommandCreate struct {
	config
	mutation *WebhookCommandMutation
	hooks    []Hook
}

// SetWebhookID sets the "webhook_id" field.
func (_c *WebhookCommandCreate) SetWebhookID(v string) *WebhookCommandCreate {
	_c.mutation.SetWebhookID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WebhookCommandCreate) SetName(v string) *WebhookCommandCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAliases sets the "aliases" field.
func (_c *WebhookCommandCreate) SetAliases(v []string) *WebhookCommandCreate {
	_c.mutation.SetAliases(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *WebhookCommandCreate) SetAgent(v string) *WebhookCommandCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *WebhookCommandCreate) SetTemplate(v string) *WebhookCommandCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_c *WebhookCommandCreate) SetNillableTemplate(v *string) *WebhookCommandCreate {
	if v != nil {
		_c.SetTemplate(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *WebhookCommandCreate) SetTrigger(v string) *WebhookCommandCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *WebhookCommandCreate) SetNillableTrigger(v *string) *WebhookCommandCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *WebhookCommandCreate) SetConditions(v map[string]interface{}) *WebhookCommandCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WebhookCommandCreate) SetPriority(v int) *WebhookCommandCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WebhookCommandCreate) SetNillablePriority(v *int) *WebhookCommandCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *WebhookCommandCreate) SetAction(v webhookcommand.Action) *WebhookCommandCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *WebhookCommandCreate) SetNillableAction(v *webhookcommand.Action) *WebhookCommandCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetActionArgs sets the "action_args" field.
func (_c *WebhookCommandCreate) SetActionArgs(v map[string]interface{}) *WebhookCommandCreate {
	_c.mutation.SetActionArgs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookCommandCreate) SetCreatedAt(v time.Time) *WebhookCommandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookCommandCreate) SetNillableCreatedAt(v *time.Time) *WebhookCommandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookCommandCreate) SetID(v string) *WebhookCommandCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWebhook sets the "webhook" edge to the WebhookConfig entity.
func (_c *WebhookCommandCreate) SetWebhook(v *WebhookConfig) *WebhookCommandCreate {
	return _c.SetWebhookID(v.ID)
}

// Mutation returns the WebhookCommandMutation object of the builder.
func (_c *WebhookCommandCreate) Mutation() *WebhookCommandMutation {
	return _c.mutation
}

// Save creates the WebhookCommand in the database.
func (_c *WebhookCommandCreate) Save(ctx context.Context) (*WebhookCommand, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookCommandCreate) SaveX(ctx context.Context) *WebhookCommand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCommandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCommandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookCommandCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := webhookcommand.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Action(); !ok {
		v := webhookcommand.DefaultAction
		_c.mutation.SetAction(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookcommand.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookCommandCreate) check() error {
	if _, ok := _c.mutation.WebhookID(); !ok {
		return &ValidationError{Name: "webhook_id", err: errors.New(`ent: missing required field "WebhookCommand.webhook_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WebhookCommand.name"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "WebhookCommand.agent"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "WebhookCommand.priority"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "WebhookCommand.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := webhookcommand.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WebhookCommand.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookCommand.created_at"`)}
	}
	if len(_c.mutation.WebhookIDs()) == 0 {
		return &ValidationError{Name: "webhook", err: errors.New(`ent: missing required edge "WebhookCommand.webhook"`)}
	}
	return nil
}

func (_c *WebhookCommandCreate) sqlSave(ctx context.Context) (*WebhookCommand, error) {
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
			return nil, fmt.Errorf("unexpected WebhookCommand.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookCommandCreate) createSpec() (*WebhookCommand, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookCommand{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookcommand.Table, sqlgraph.NewFieldSpec(webhookcommand.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(webhookcommand.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Aliases(); ok {
		_spec.SetField(webhookcommand.FieldAliases, field.TypeJSON, value)
		_node.Aliases = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(webhookcommand.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(webhookcommand.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(webhookcommand.FieldTrigger, field.TypeString, value)
		_node.Trigger = &value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(webhookcommand.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(webhookcommand.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(webhookcommand.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ActionArgs(); ok {
		_spec.SetField(webhookcommand.FieldActionArgs, field.TypeJSON, value)
		_node.ActionArgs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookcommand.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WebhookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookcommand.WebhookTable,
			Columns: []string{webhookcommand.WebhookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WebhookID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookCommandCreateBulk is the builder for creating many WebhookCommand entities in bulk.
type WebhookCommandCreateBulk struct {
	config
	err      error
	builders []*WebhookCommandCreate
}

// Save creates the WebhookCommand entities in the database.
func (_c *WebhookCommandCreateBulk) Save(ctx context.Context) ([]*WebhookCommand, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookCommand, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookCommandMutation)
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
func (_c *WebhookCommandCreateBulk) SaveX(ctx context.Context) []*WebhookCommand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCommandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCommandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
