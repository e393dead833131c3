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
	"github.com/droverhq/drover/ent/conversation"
	"github.com/droverhq/drover/ent/message"
	"github.com/droverhq/drover/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConversationUpdate) SetTitle(v string) *ConversationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTitle(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationUpdate) ClearTitle() *ConversationUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdate) SetUserID(v string) *ConversationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUserID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdate) ClearUserID() *ConversationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *ConversationUpdate) SetFlowID(v string) *ConversationUpdate {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableFlowID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *ConversationUpdate) SetTotalCostUsd(v float64) *ConversationUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalCostUsd(v *float64) *ConversationUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *ConversationUpdate) AddTotalCostUsd(v float64) *ConversationUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ConversationUpdate) SetTotalInputTokens(v int) *ConversationUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalInputTokens(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ConversationUpdate) AddTotalInputTokens(v int) *ConversationUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ConversationUpdate) SetTotalOutputTokens(v int) *ConversationUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalOutputTokens(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ConversationUpdate) AddTotalOutputTokens(v int) *ConversationUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *ConversationUpdate) SetTaskCount(v int) *ConversationUpdate {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTaskCount(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *ConversationUpdate) AddTaskCount(v int) *ConversationUpdate {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ConversationUpdate) SetArchived(v bool) *ConversationUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableArchived(v *bool) *ConversationUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUpdatedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversation.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(conversation.FieldFlowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(conversation.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(conversation.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(conversation.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(conversation.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(conversation.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetTitle sets the "title" field.
func (_u *ConversationUpdateOne) SetTitle(v string) *ConversationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTitle(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationUpdateOne) ClearTitle() *ConversationUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdateOne) SetUserID(v string) *ConversationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUserID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdateOne) ClearUserID() *ConversationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *ConversationUpdateOne) SetFlowID(v string) *ConversationUpdateOne {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableFlowID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *ConversationUpdateOne) SetTotalCostUsd(v float64) *ConversationUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalCostUsd(v *float64) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *ConversationUpdateOne) AddTotalCostUsd(v float64) *ConversationUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ConversationUpdateOne) SetTotalInputTokens(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalInputTokens(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ConversationUpdateOne) AddTotalInputTokens(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ConversationUpdateOne) SetTotalOutputTokens(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalOutputTokens(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ConversationUpdateOne) AddTotalOutputTokens(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *ConversationUpdateOne) SetTaskCount(v int) *ConversationUpdateOne {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTaskCount(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *ConversationUpdateOne) AddTaskCount(v int) *ConversationUpdateOne {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ConversationUpdateOne) SetArchived(v bool) *ConversationUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableArchived(v *bool) *ConversationUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUpdatedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversation.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(conversation.FieldFlowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(conversation.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(conversation.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(conversation.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(conversation.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(conversation.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
