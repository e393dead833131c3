// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/webhookcommand"
)

// WebhookCommandUpdate is the builder for updating WebhookCommand entities.
type WebhookCommandUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookCommandMutation
}

// Where appends a list predicates to the WebhookCommandUpdate builder.
func (_u *WebhookCommandUpdate) Where(ps ...predicate.WebhookCommand) *WebhookCommandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WebhookCommandUpdate) SetName(v string) *WebhookCommandUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillableName(v *string) *WebhookCommandUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *WebhookCommandUpdate) SetAliases(v []string) *WebhookCommandUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *WebhookCommandUpdate) AppendAliases(v []string) *WebhookCommandUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *WebhookCommandUpdate) ClearAliases() *WebhookCommandUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetAgent sets the "agent" field.
func (_u *WebhookCommandUpdate) SetAgent(v string) *WebhookCommandUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillableAgent(v *string) *WebhookCommandUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *WebhookCommandUpdate) SetTemplate(v string) *WebhookCommandUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillableTemplate(v *string) *WebhookCommandUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *WebhookCommandUpdate) ClearTemplate() *WebhookCommandUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *WebhookCommandUpdate) SetTrigger(v string) *WebhookCommandUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillableTrigger(v *string) *WebhookCommandUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *WebhookCommandUpdate) ClearTrigger() *WebhookCommandUpdate {
	_u.mutation.ClearTrigger()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *WebhookCommandUpdate) SetConditions(v map[string]interface{}) *WebhookCommandUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *WebhookCommandUpdate) ClearConditions() *WebhookCommandUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WebhookCommandUpdate) SetPriority(v int) *WebhookCommandUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillablePriority(v *int) *WebhookCommandUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WebhookCommandUpdate) AddPriority(v int) *WebhookCommandUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *WebhookCommandUpdate) SetAction(v webhookcommand.Action) *WebhookCommandUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *WebhookCommandUpdate) SetNillableAction(v *webhookcommand.Action) *WebhookCommandUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActionArgs sets the "action_args" field.
func (_u *WebhookCommandUpdate) SetActionArgs(v map[string]interface{}) *WebhookCommandUpdate {
	_u.mutation.SetActionArgs(v)
	return _u
}

// ClearActionArgs clears the value of the "action_args" field.
func (_u *WebhookCommandUpdate) ClearActionArgs() *WebhookCommandUpdate {
	_u.mutation.ClearActionArgs()
	return _u
}

// Mutation returns the WebhookCommandMutation object of the builder.
func (_u *WebhookCommandUpdate) Mutation() *WebhookCommandMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookCommandUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookCommandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookCommandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookCommandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookCommandUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := webhookcommand.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WebhookCommand.action": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookCommand.webhook"`)
	}
	return nil
}

func (_u *WebhookCommandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookcommand.Table, webhookcommand.Columns, sqlgraph.NewFieldSpec(webhookcommand.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(webhookcommand.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(webhookcommand.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookcommand.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(webhookcommand.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(webhookcommand.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(webhookcommand.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(webhookcommand.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(webhookcommand.FieldTrigger, field.TypeString, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(webhookcommand.FieldTrigger, field.TypeString)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(webhookcommand.FieldConditions, field.TypeJSON, value)
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(webhookcommand.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(webhookcommand.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(webhookcommand.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(webhookcommand.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionArgs(); ok {
		_spec.SetField(webhookcommand.FieldActionArgs, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgsCleared() {
		_spec.ClearField(webhookcommand.FieldActionArgs, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookcommand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookCommandUpdateOne is the builder for updating a single WebhookCommand entity.
type WebhookCommandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookCommandMutation
}

// SetName sets the "name" field.
func (_u *WebhookCommandUpdateOne) SetName(v string) *WebhookCommandUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillableName(v *string) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *WebhookCommandUpdateOne) SetAliases(v []string) *WebhookCommandUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *WebhookCommandUpdateOne) AppendAliases(v []string) *WebhookCommandUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *WebhookCommandUpdateOne) ClearAliases() *WebhookCommandUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetAgent sets the "agent" field.
func (_u *WebhookCommandUpdateOne) SetAgent(v string) *WebhookCommandUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillableAgent(v *string) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *WebhookCommandUpdateOne) SetTemplate(v string) *WebhookCommandUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillableTemplate(v *string) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *WebhookCommandUpdateOne) ClearTemplate() *WebhookCommandUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *WebhookCommandUpdateOne) SetTrigger(v string) *WebhookCommandUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillableTrigger(v *string) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *WebhookCommandUpdateOne) ClearTrigger() *WebhookCommandUpdateOne {
	_u.mutation.ClearTrigger()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *WebhookCommandUpdateOne) SetConditions(v map[string]interface{}) *WebhookCommandUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *WebhookCommandUpdateOne) ClearConditions() *WebhookCommandUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WebhookCommandUpdateOne) SetPriority(v int) *WebhookCommandUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillablePriority(v *int) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WebhookCommandUpdateOne) AddPriority(v int) *WebhookCommandUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *WebhookCommandUpdateOne) SetAction(v webhookcommand.Action) *WebhookCommandUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *WebhookCommandUpdateOne) SetNillableAction(v *webhookcommand.Action) *WebhookCommandUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActionArgs sets the "action_args" field.
func (_u *WebhookCommandUpdateOne) SetActionArgs(v map[string]interface{}) *WebhookCommandUpdateOne {
	_u.mutation.SetActionArgs(v)
	return _u
}

// ClearActionArgs clears the value of the "action_args" field.
func (_u *WebhookCommandUpdateOne) ClearActionArgs() *WebhookCommandUpdateOne {
	_u.mutation.ClearActionArgs()
	return _u
}

// Mutation returns the WebhookCommandMutation object of the builder.
func (_u *WebhookCommandUpdateOne) Mutation() *WebhookCommandMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookCommandUpdate builder.
func (_u *WebhookCommandUpdateOne) Where(ps ...predicate.WebhookCommand) *WebhookCommandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookCommandUpdateOne) Select(field string, fields ...string) *WebhookCommandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookCommand entity.
func (_u *WebhookCommandUpdateOne) Save(ctx context.Context) (*WebhookCommand, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookCommandUpdateOne) SaveX(ctx context.Context) *WebhookCommand {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookCommandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookCommandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookCommandUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := webhookcommand.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WebhookCommand.action": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookCommand.webhook"`)
	}
	return nil
}

func (_u *WebhookCommandUpdateOne) sqlSave(ctx context.Context) (_node *WebhookCommand, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookcommand.Table, webhookcommand.Columns, sqlgraph.NewFieldSpec(webhookcommand.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookCommand.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookcommand.FieldID)
		for _, f := range fields {
			if !webhookcommand.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookcommand.FieldID {
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
		_spec.SetField(webhookcommand.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(webhookcommand.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookcommand.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(webhookcommand.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(webhookcommand.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(webhookcommand.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(webhookcommand.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(webhookcommand.FieldTrigger, field.TypeString, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(webhookcommand.FieldTrigger, field.TypeString)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(webhookcommand.FieldConditions, field.TypeJSON, value)
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(webhookcommand.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(webhookcommand.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(webhookcommand.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(webhookcommand.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionArgs(); ok {
		_spec.SetField(webhookcommand.FieldActionArgs, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgsCleared() {
		_spec.ClearField(webhookcommand.FieldActionArgs, field.TypeJSON)
	}
	_node = &WebhookCommand{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookcommand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
