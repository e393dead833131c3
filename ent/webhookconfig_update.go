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
	"github.com/droverhq/drover/ent/webhookcommand"
	"github.com/droverhq/drover/ent/webhookconfig"
)

// WebhookConfigUpdate is the builder for updating WebhookConfig entities.
type WebhookConfigUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookConfigMutation
}

// Where appends a list predicates to the WebhookConfigUpdate builder.
func (_u *WebhookConfigUpdate) Where(ps ...predicate.WebhookConfig) *WebhookConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WebhookConfigUpdate) SetName(v string) *WebhookConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableName(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WebhookConfigUpdate) SetProvider(v string) *WebhookConfigUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableProvider(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *WebhookConfigUpdate) SetPath(v string) *WebhookConfigUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillablePath(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetDefaultAgent sets the "default_agent" field.
func (_u *WebhookConfigUpdate) SetDefaultAgent(v string) *WebhookConfigUpdate {
	_u.mutation.SetDefaultAgent(v)
	return _u
}

// SetNillableDefaultAgent sets the "default_agent" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableDefaultAgent(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetDefaultAgent(*v)
	}
	return _u
}

// SetDefaultCommand sets the "default_command" field.
func (_u *WebhookConfigUpdate) SetDefaultCommand(v string) *WebhookConfigUpdate {
	_u.mutation.SetDefaultCommand(v)
	return _u
}

// SetNillableDefaultCommand sets the "default_command" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableDefaultCommand(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetDefaultCommand(*v)
	}
	return _u
}

// ClearDefaultCommand clears the value of the "default_command" field.
func (_u *WebhookConfigUpdate) ClearDefaultCommand() *WebhookConfigUpdate {
	_u.mutation.ClearDefaultCommand()
	return _u
}

// SetCommandPrefix sets the "command_prefix" field.
func (_u *WebhookConfigUpdate) SetCommandPrefix(v string) *WebhookConfigUpdate {
	_u.mutation.SetCommandPrefix(v)
	return _u
}

// SetNillableCommandPrefix sets the "command_prefix" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableCommandPrefix(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetCommandPrefix(*v)
	}
	return _u
}

// ClearCommandPrefix clears the value of the "command_prefix" field.
func (_u *WebhookConfigUpdate) ClearCommandPrefix() *WebhookConfigUpdate {
	_u.mutation.ClearCommandPrefix()
	return _u
}

// SetSecretEnv sets the "secret_env" field.
func (_u *WebhookConfigUpdate) SetSecretEnv(v string) *WebhookConfigUpdate {
	_u.mutation.SetSecretEnv(v)
	return _u
}

// SetNillableSecretEnv sets the "secret_env" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableSecretEnv(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetSecretEnv(*v)
	}
	return _u
}

// ClearSecretEnv clears the value of the "secret_env" field.
func (_u *WebhookConfigUpdate) ClearSecretEnv() *WebhookConfigUpdate {
	_u.mutation.ClearSecretEnv()
	return _u
}

// SetRequiresSignature sets the "requires_signature" field.
func (_u *WebhookConfigUpdate) SetRequiresSignature(v bool) *WebhookConfigUpdate {
	_u.mutation.SetRequiresSignature(v)
	return _u
}

// SetNillableRequiresSignature sets the "requires_signature" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableRequiresSignature(v *bool) *WebhookConfigUpdate {
	if v != nil {
		_u.SetRequiresSignature(*v)
	}
	return _u
}

// SetEventTypeExpr sets the "event_type_expr" field.
func (_u *WebhookConfigUpdate) SetEventTypeExpr(v string) *WebhookConfigUpdate {
	_u.mutation.SetEventTypeExpr(v)
	return _u
}

// SetNillableEventTypeExpr sets the "event_type_expr" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableEventTypeExpr(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetEventTypeExpr(*v)
	}
	return _u
}

// ClearEventTypeExpr clears the value of the "event_type_expr" field.
func (_u *WebhookConfigUpdate) ClearEventTypeExpr() *WebhookConfigUpdate {
	_u.mutation.ClearEventTypeExpr()
	return _u
}

// SetBrainPreamble sets the "brain_preamble" field.
func (_u *WebhookConfigUpdate) SetBrainPreamble(v string) *WebhookConfigUpdate {
	_u.mutation.SetBrainPreamble(v)
	return _u
}

// SetNillableBrainPreamble sets the "brain_preamble" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableBrainPreamble(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetBrainPreamble(*v)
	}
	return _u
}

// ClearBrainPreamble clears the value of the "brain_preamble" field.
func (_u *WebhookConfigUpdate) ClearBrainPreamble() *WebhookConfigUpdate {
	_u.mutation.ClearBrainPreamble()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WebhookConfigUpdate) SetEnabled(v bool) *WebhookConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableEnabled(v *bool) *WebhookConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *WebhookConfigUpdate) SetCreatedBy(v string) *WebhookConfigUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableCreatedBy(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *WebhookConfigUpdate) ClearCreatedBy() *WebhookConfigUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookConfigUpdate) SetUpdatedAt(v time.Time) *WebhookConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableUpdatedAt(v *time.Time) *WebhookConfigUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddCommandIDs adds the "commands" edge to the WebhookCommand entity by IDs.
func (_u *WebhookConfigUpdate) AddCommandIDs(ids ...string) *WebhookConfigUpdate {
	_u.mutation.AddCommandIDs(ids...)
	return _u
}

// AddCommands adds the "commands" edges to the WebhookCommand entity.
func (_u *WebhookConfigUpdate) AddCommands(v ...*WebhookCommand) *WebhookConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandIDs(ids...)
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_u *WebhookConfigUpdate) Mutation() *WebhookConfigMutation {
	return _u.mutation
}

// ClearCommands clears all "commands" edges to the WebhookCommand entity.
func (_u *WebhookConfigUpdate) ClearCommands() *WebhookConfigUpdate {
	_u.mutation.ClearCommands()
	return _u
}

// RemoveCommandIDs removes the "commands" edge to WebhookCommand entities by IDs.
func (_u *WebhookConfigUpdate) RemoveCommandIDs(ids ...string) *WebhookConfigUpdate {
	_u.mutation.RemoveCommandIDs(ids...)
	return _u
}

// RemoveCommands removes "commands" edges to WebhookCommand entities.
func (_u *WebhookConfigUpdate) RemoveCommands(v ...*WebhookCommand) *WebhookConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookconfig.Table, webhookconfig.Columns, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(webhookconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(webhookconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(webhookconfig.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultAgent(); ok {
		_spec.SetField(webhookconfig.FieldDefaultAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCommand(); ok {
		_spec.SetField(webhookconfig.FieldDefaultCommand, field.TypeString, value)
	}
	if _u.mutation.DefaultCommandCleared() {
		_spec.ClearField(webhookconfig.FieldDefaultCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CommandPrefix(); ok {
		_spec.SetField(webhookconfig.FieldCommandPrefix, field.TypeString, value)
	}
	if _u.mutation.CommandPrefixCleared() {
		_spec.ClearField(webhookconfig.FieldCommandPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEnv(); ok {
		_spec.SetField(webhookconfig.FieldSecretEnv, field.TypeString, value)
	}
	if _u.mutation.SecretEnvCleared() {
		_spec.ClearField(webhookconfig.FieldSecretEnv, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresSignature(); ok {
		_spec.SetField(webhookconfig.FieldRequiresSignature, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventTypeExpr(); ok {
		_spec.SetField(webhookconfig.FieldEventTypeExpr, field.TypeString, value)
	}
	if _u.mutation.EventTypeExprCleared() {
		_spec.ClearField(webhookconfig.FieldEventTypeExpr, field.TypeString)
	}
	if value, ok := _u.mutation.BrainPreamble(); ok {
		_spec.SetField(webhookconfig.FieldBrainPreamble, field.TypeString, value)
	}
	if _u.mutation.BrainPreambleCleared() {
		_spec.ClearField(webhookconfig.FieldBrainPreamble, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(webhookconfig.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(webhookconfig.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandsIDs(); len(nodes) > 0 && !_u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookConfigUpdateOne is the builder for updating a single WebhookConfig entity.
type WebhookConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookConfigMutation
}

// SetName sets the "name" field.
func (_u *WebhookConfigUpdateOne) SetName(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableName(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WebhookConfigUpdateOne) SetProvider(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableProvider(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *WebhookConfigUpdateOne) SetPath(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillablePath(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetDefaultAgent sets the "default_agent" field.
func (_u *WebhookConfigUpdateOne) SetDefaultAgent(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetDefaultAgent(v)
	return _u
}

// SetNillableDefaultAgent sets the "default_agent" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableDefaultAgent(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetDefaultAgent(*v)
	}
	return _u
}

// SetDefaultCommand sets the "default_command" field.
func (_u *WebhookConfigUpdateOne) SetDefaultCommand(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetDefaultCommand(v)
	return _u
}

// SetNillableDefaultCommand sets the "default_command" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableDefaultCommand(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetDefaultCommand(*v)
	}
	return _u
}

// ClearDefaultCommand clears the value of the "default_command" field.
func (_u *WebhookConfigUpdateOne) ClearDefaultCommand() *WebhookConfigUpdateOne {
	_u.mutation.ClearDefaultCommand()
	return _u
}

// SetCommandPrefix sets the "command_prefix" field.
func (_u *WebhookConfigUpdateOne) SetCommandPrefix(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetCommandPrefix(v)
	return _u
}

// SetNillableCommandPrefix sets the "command_prefix" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableCommandPrefix(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetCommandPrefix(*v)
	}
	return _u
}

// ClearCommandPrefix clears the value of the "command_prefix" field.
func (_u *WebhookConfigUpdateOne) ClearCommandPrefix() *WebhookConfigUpdateOne {
	_u.mutation.ClearCommandPrefix()
	return _u
}

// SetSecretEnv sets the "secret_env" field.
func (_u *WebhookConfigUpdateOne) SetSecretEnv(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetSecretEnv(v)
	return _u
}

// SetNillableSecretEnv sets the "secret_env" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableSecretEnv(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetSecretEnv(*v)
	}
	return _u
}

// ClearSecretEnv clears the value of the "secret_env" field.
func (_u *WebhookConfigUpdateOne) ClearSecretEnv() *WebhookConfigUpdateOne {
	_u.mutation.ClearSecretEnv()
	return _u
}

// SetRequiresSignature sets the "requires_signature" field.
func (_u *WebhookConfigUpdateOne) SetRequiresSignature(v bool) *WebhookConfigUpdateOne {
	_u.mutation.SetRequiresSignature(v)
	return _u
}

// SetNillableRequiresSignature sets the "requires_signature" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableRequiresSignature(v *bool) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetRequiresSignature(*v)
	}
	return _u
}

// SetEventTypeExpr sets the "event_type_expr" field.
func (_u *WebhookConfigUpdateOne) SetEventTypeExpr(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetEventTypeExpr(v)
	return _u
}

// SetNillableEventTypeExpr sets the "event_type_expr" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableEventTypeExpr(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetEventTypeExpr(*v)
	}
	return _u
}

// ClearEventTypeExpr clears the value of the "event_type_expr" field.
func (_u *WebhookConfigUpdateOne) ClearEventTypeExpr() *WebhookConfigUpdateOne {
	_u.mutation.ClearEventTypeExpr()
	return _u
}

// SetBrainPreamble sets the "brain_preamble" field.
func (_u *WebhookConfigUpdateOne) SetBrainPreamble(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetBrainPreamble(v)
	return _u
}

// SetNillableBrainPreamble sets the "brain_preamble" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableBrainPreamble(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetBrainPreamble(*v)
	}
	return _u
}

// ClearBrainPreamble clears the value of the "brain_preamble" field.
func (_u *WebhookConfigUpdateOne) ClearBrainPreamble() *WebhookConfigUpdateOne {
	_u.mutation.ClearBrainPreamble()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WebhookConfigUpdateOne) SetEnabled(v bool) *WebhookConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableEnabled(v *bool) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *WebhookConfigUpdateOne) SetCreatedBy(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableCreatedBy(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *WebhookConfigUpdateOne) ClearCreatedBy() *WebhookConfigUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookConfigUpdateOne) SetUpdatedAt(v time.Time) *WebhookConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableUpdatedAt(v *time.Time) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddCommandIDs adds the "commands" edge to the WebhookCommand entity by IDs.
func (_u *WebhookConfigUpdateOne) AddCommandIDs(ids ...string) *WebhookConfigUpdateOne {
	_u.mutation.AddCommandIDs(ids...)
	return _u
}

// AddCommands adds the "commands" edges to the WebhookCommand entity.
func (_u *WebhookConfigUpdateOne) AddCommands(v ...*WebhookCommand) *WebhookConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandIDs(ids...)
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_u *WebhookConfigUpdateOne) Mutation() *WebhookConfigMutation {
	return _u.mutation
}

// ClearCommands clears all "commands" edges to the WebhookCommand entity.
func (_u *WebhookConfigUpdateOne) ClearCommands() *WebhookConfigUpdateOne {
	_u.mutation.ClearCommands()
	return _u
}

// RemoveCommandIDs removes the "commands" edge to WebhookCommand entities by IDs.
func (_u *WebhookConfigUpdateOne) RemoveCommandIDs(ids ...string) *WebhookConfigUpdateOne {
	_u.mutation.RemoveCommandIDs(ids...)
	return _u
}

// RemoveCommands removes "commands" edges to WebhookCommand entities.
func (_u *WebhookConfigUpdateOne) RemoveCommands(v ...*WebhookCommand) *WebhookConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandIDs(ids...)
}

// Where appends a list predicates to the WebhookConfigUpdate builder.
func (_u *WebhookConfigUpdateOne) Where(ps ...predicate.WebhookConfig) *WebhookConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookConfigUpdateOne) Select(field string, fields ...string) *WebhookConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookConfig entity.
func (_u *WebhookConfigUpdateOne) Save(ctx context.Context) (*WebhookConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookConfigUpdateOne) SaveX(ctx context.Context) *WebhookConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookConfigUpdateOne) sqlSave(ctx context.Context) (_node *WebhookConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookconfig.Table, webhookconfig.Columns, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookconfig.FieldID)
		for _, f := range fields {
			if !webhookconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookconfig.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(webhookconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(webhookconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(webhookconfig.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultAgent(); ok {
		_spec.SetField(webhookconfig.FieldDefaultAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCommand(); ok {
		_spec.SetField(webhookconfig.FieldDefaultCommand, field.TypeString, value)
	}
	if _u.mutation.DefaultCommandCleared() {
		_spec.ClearField(webhookconfig.FieldDefaultCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CommandPrefix(); ok {
		_spec.SetField(webhookconfig.FieldCommandPrefix, field.TypeString, value)
	}
	if _u.mutation.CommandPrefixCleared() {
		_spec.ClearField(webhookconfig.FieldCommandPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEnv(); ok {
		_spec.SetField(webhookconfig.FieldSecretEnv, field.TypeString, value)
	}
	if _u.mutation.SecretEnvCleared() {
		_spec.ClearField(webhookconfig.FieldSecretEnv, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresSignature(); ok {
		_spec.SetField(webhookconfig.FieldRequiresSignature, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventTypeExpr(); ok {
		_spec.SetField(webhookconfig.FieldEventTypeExpr, field.TypeString, value)
	}
	if _u.mutation.EventTypeExprCleared() {
		_spec.ClearField(webhookconfig.FieldEventTypeExpr, field.TypeString)
	}
	if value, ok := _u.mutation.BrainPreamble(); ok {
		_spec.SetField(webhookconfig.FieldBrainPreamble, field.TypeString, value)
	}
	if _u.mutation.BrainPreambleCleared() {
		_spec.ClearField(webhookconfig.FieldBrainPreamble, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(webhookconfig.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(webhookconfig.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandsIDs(); len(nodes) > 0 && !_u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
