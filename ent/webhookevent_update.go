// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWebhookID sets the "webhook_id" field.
func (_u *WebhookEventUpdate) SetWebhookID(v string) *WebhookEventUpdate {
	_u.mutation.SetWebhookID(v)
	return _u
}

// SetNillableWebhookID sets the "webhook_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableWebhookID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetWebhookID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WebhookEventUpdate) SetProvider(v string) *WebhookEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProvider(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdate) SetEventType(v string) *WebhookEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableEventType(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdate) SetPayload(v map[string]interface{}) *WebhookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookEventUpdate) ClearPayload() *WebhookEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetMatchedCommand sets the "matched_command" field.
func (_u *WebhookEventUpdate) SetMatchedCommand(v string) *WebhookEventUpdate {
	_u.mutation.SetMatchedCommand(v)
	return _u
}

// SetNillableMatchedCommand sets the "matched_command" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableMatchedCommand(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetMatchedCommand(*v)
	}
	return _u
}

// ClearMatchedCommand clears the value of the "matched_command" field.
func (_u *WebhookEventUpdate) ClearMatchedCommand() *WebhookEventUpdate {
	_u.mutation.ClearMatchedCommand()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *WebhookEventUpdate) SetTaskID(v string) *WebhookEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableTaskID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *WebhookEventUpdate) ClearTaskID() *WebhookEventUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetResponseSent sets the "response_sent" field.
func (_u *WebhookEventUpdate) SetResponseSent(v bool) *WebhookEventUpdate {
	_u.mutation.SetResponseSent(v)
	return _u
}

// SetNillableResponseSent sets the "response_sent" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableResponseSent(v *bool) *WebhookEventUpdate {
	if v != nil {
		_u.SetResponseSent(*v)
	}
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WebhookID(); ok {
		_spec.SetField(webhookevent.FieldWebhookID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(webhookevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedCommand(); ok {
		_spec.SetField(webhookevent.FieldMatchedCommand, field.TypeString, value)
	}
	if _u.mutation.MatchedCommandCleared() {
		_spec.ClearField(webhookevent.FieldMatchedCommand, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(webhookevent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(webhookevent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSent(); ok {
		_spec.SetField(webhookevent.FieldResponseSent, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetWebhookID sets the "webhook_id" field.
func (_u *WebhookEventUpdateOne) SetWebhookID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetWebhookID(v)
	return _u
}

// SetNillableWebhookID sets the "webhook_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableWebhookID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetWebhookID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WebhookEventUpdateOne) SetProvider(v string) *WebhookEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProvider(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdateOne) SetEventType(v string) *WebhookEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableEventType(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdateOne) SetPayload(v map[string]interface{}) *WebhookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookEventUpdateOne) ClearPayload() *WebhookEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetMatchedCommand sets the "matched_command" field.
func (_u *WebhookEventUpdateOne) SetMatchedCommand(v string) *WebhookEventUpdateOne {
	_u.mutation.SetMatchedCommand(v)
	return _u
}

// SetNillableMatchedCommand sets the "matched_command" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableMatchedCommand(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetMatchedCommand(*v)
	}
	return _u
}

// ClearMatchedCommand clears the value of the "matched_command" field.
func (_u *WebhookEventUpdateOne) ClearMatchedCommand() *WebhookEventUpdateOne {
	_u.mutation.ClearMatchedCommand()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *WebhookEventUpdateOne) SetTaskID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableTaskID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *WebhookEventUpdateOne) ClearTaskID() *WebhookEventUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetResponseSent sets the "response_sent" field.
func (_u *WebhookEventUpdateOne) SetResponseSent(v bool) *WebhookEventUpdateOne {
	_u.mutation.SetResponseSent(v)
	return _u
}

// SetNillableResponseSent sets the "response_sent" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableResponseSent(v *bool) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetResponseSent(*v)
	}
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
	if value, ok := _u.mutation.WebhookID(); ok {
		_spec.SetField(webhookevent.FieldWebhookID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(webhookevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedCommand(); ok {
		_spec.SetField(webhookevent.FieldMatchedCommand, field.TypeString, value)
	}
	if _u.mutation.MatchedCommandCleared() {
		_spec.ClearField(webhookevent.FieldMatchedCommand, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(webhookevent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(webhookevent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSent(); ok {
		_spec.SetField(webhookevent.FieldResponseSent, field.TypeBool, value)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
