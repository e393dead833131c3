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

// WebhookConfigCreate is the builder for creating a WebhookConfig entity.
type WebhookConfigCreate struct {
	config
	mutation *WebhookConfigMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WebhookConfigCreate) SetName(v string) *WebhookConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *WebhookConfigCreate) SetProvider(v string) *WebhookConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *WebhookConfigCreate) SetPath(v string) *WebhookConfigCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetDefaultAgent sets the "default_agent" field.
func (_c *WebhookConfigCreate) SetDefaultAgent(v string) *WebhookConfigCreate {
	_c.mutation.SetDefaultAgent(v)
	return _c
}

// SetDefaultCommand sets the "default_command" field.
func (_c *WebhookConfigCreate) SetDefaultCommand(v string) *WebhookConfigCreate {
	_c.mutation.SetDefaultCommand(v)
	return _c
}

// SetNillableDefaultCommand sets the "default_command" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableDefaultCommand(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetDefaultCommand(*v)
	}
	return _c
}

// SetCommandPrefix sets the "command_prefix" field.
func (_c *WebhookConfigCreate) SetCommandPrefix(v string) *WebhookConfigCreate {
	_c.mutation.SetCommandPrefix(v)
	return _c
}

// SetNillableCommandPrefix sets the "command_prefix" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableCommandPrefix(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetCommandPrefix(*v)
	}
	return _c
}

// SetSecretEnv sets the "secret_env" field.
func (_c *WebhookConfigCreate) SetSecretEnv(v string) *WebhookConfigCreate {
	_c.mutation.SetSecretEnv(v)
	return _c
}

// SetNillableSecretEnv sets the "secret_env" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableSecretEnv(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetSecretEnv(*v)
	}
	return _c
}

// SetRequiresSignature sets the "requires_signature" field.
func (_c *WebhookConfigCreate) SetRequiresSignature(v bool) *WebhookConfigCreate {
	_c.mutation.SetRequiresSignature(v)
	return _c
}

// SetNillableRequiresSignature sets the "requires_signature" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableRequiresSignature(v *bool) *WebhookConfigCreate {
	if v != nil {
		_c.SetRequiresSignature(*v)
	}
	return _c
}

// SetEventTypeExpr sets the "event_type_expr" field.
func (_c *WebhookConfigCreate) SetEventTypeExpr(v string) *WebhookConfigCreate {
	_c.mutation.SetEventTypeExpr(v)
	return _c
}

// SetNillableEventTypeExpr sets the "event_type_expr" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableEventTypeExpr(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetEventTypeExpr(*v)
	}
	return _c
}

// SetBrainPreamble sets the "brain_preamble" field.
func (_c *WebhookConfigCreate) SetBrainPreamble(v string) *WebhookConfigCreate {
	_c.mutation.SetBrainPreamble(v)
	return _c
}

// SetNillableBrainPreamble sets the "brain_preamble" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableBrainPreamble(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetBrainPreamble(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *WebhookConfigCreate) SetEnabled(v bool) *WebhookConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableEnabled(v *bool) *WebhookConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *WebhookConfigCreate) SetCreatedBy(v string) *WebhookConfigCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableCreatedBy(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookConfigCreate) SetCreatedAt(v time.Time) *WebhookConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableCreatedAt(v *time.Time) *WebhookConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookConfigCreate) SetUpdatedAt(v time.Time) *WebhookConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableUpdatedAt(v *time.Time) *WebhookConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookConfigCreate) SetID(v string) *WebhookConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCommandIDs adds the "commands" edge to the WebhookCommand entity by IDs.
func (_c *WebhookConfigCreate) AddCommandIDs(ids ...string) *WebhookConfigCreate {
	_c.mutation.AddCommandIDs(ids...)
	return _c
}

// AddCommands adds the "commands" edges to the WebhookCommand entity.
func (_c *WebhookConfigCreate) AddCommands(v ...*WebhookCommand) *WebhookConfigCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommandIDs(ids...)
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_c *WebhookConfigCreate) Mutation() *WebhookConfigMutation {
	return _c.mutation
}

// Save creates the WebhookConfig in the database.
func (_c *WebhookConfigCreate) Save(ctx context.Context) (*WebhookConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookConfigCreate) SaveX(ctx context.Context) *WebhookConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookConfigCreate) defaults() {
	if _, ok := _c.mutation.RequiresSignature(); !ok {
		v := webhookconfig.DefaultRequiresSignature
		_c.mutation.SetRequiresSignature(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := webhookconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookConfigCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WebhookConfig.name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "WebhookConfig.provider"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "WebhookConfig.path"`)}
	}
	if _, ok := _c.mutation.DefaultAgent(); !ok {
		return &ValidationError{Name: "default_agent", err: errors.New(`ent: missing required field "WebhookConfig.default_agent"`)}
	}
	if _, ok := _c.mutation.RequiresSignature(); !ok {
		return &ValidationError{Name: "requires_signature", err: errors.New(`ent: missing required field "WebhookConfig.requires_signature"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "WebhookConfig.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookConfig.updated_at"`)}
	}
	return nil
}

func (_c *WebhookConfigCreate) sqlSave(ctx context.Context) (*WebhookConfig, error) {
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
			return nil, fmt.Errorf("unexpected WebhookConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookConfigCreate) createSpec() (*WebhookConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookconfig.Table, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(webhookconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(webhookconfig.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(webhookconfig.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.DefaultAgent(); ok {
		_spec.SetField(webhookconfig.FieldDefaultAgent, field.TypeString, value)
		_node.DefaultAgent = value
	}
	if value, ok := _c.mutation.DefaultCommand(); ok {
		_spec.SetField(webhookconfig.FieldDefaultCommand, field.TypeString, value)
		_node.DefaultCommand = &value
	}
	if value, ok := _c.mutation.CommandPrefix(); ok {
		_spec.SetField(webhookconfig.FieldCommandPrefix, field.TypeString, value)
		_node.CommandPrefix = &value
	}
	if value, ok := _c.mutation.SecretEnv(); ok {
		_spec.SetField(webhookconfig.FieldSecretEnv, field.TypeString, value)
		_node.SecretEnv = &value
	}
	if value, ok := _c.mutation.RequiresSignature(); ok {
		_spec.SetField(webhookconfig.FieldRequiresSignature, field.TypeBool, value)
		_node.RequiresSignature = value
	}
	if value, ok := _c.mutation.EventTypeExpr(); ok {
		_spec.SetField(webhookconfig.FieldEventTypeExpr, field.TypeString, value)
		_node.EventTypeExpr = &value
	}
	if value, ok := _c.mutation.BrainPreamble(); ok {
		_spec.SetField(webhookconfig.FieldBrainPreamble, field.TypeString, value)
		_node.BrainPreamble = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(webhookconfig.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CommandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookconfig.CommandsTable,
			Columns: []string{webhookconfig.CommandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookcommand.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookConfigCreateBulk is the builder for creating many WebhookConfig entities in bulk.
type WebhookConfigCreateBulk struct {
	config
	err      error
	builders []*WebhookConfigCreate
}

// Save creates the WebhookConfig entities in the database.
func (_c *WebhookConfigCreateBulk) Save(ctx context.Context) ([]*WebhookConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookConfigMutation)
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
func (_c *WebhookConfigCreateBulk) SaveX(ctx context.Context) []*WebhookConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
