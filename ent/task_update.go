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
	"github.com/droverhq/drover/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *TaskUpdate) SetConversationID(v string) *TaskUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableConversationID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TaskUpdate) ClearConversationID() *TaskUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *TaskUpdate) SetExternalID(v string) *TaskUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExternalID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *TaskUpdate) ClearExternalID() *TaskUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskUpdate) SetAgentName(v string) *TaskUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentKind sets the "agent_kind" field.
func (_u *TaskUpdate) SetAgentKind(v string) *TaskUpdate {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentKind(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *TaskUpdate) SetInput(v string) *TaskUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInput(v *string) *TaskUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutputStream sets the "output_stream" field.
func (_u *TaskUpdate) SetOutputStream(v string) *TaskUpdate {
	_u.mutation.SetOutputStream(v)
	return _u
}

// SetNillableOutputStream sets the "output_stream" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOutputStream(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOutputStream(*v)
	}
	return _u
}

// ClearOutputStream clears the value of the "output_stream" field.
func (_u *TaskUpdate) ClearOutputStream() *TaskUpdate {
	_u.mutation.ClearOutputStream()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *TaskUpdate) SetCostUsd(v float64) *TaskUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCostUsd(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *TaskUpdate) AddCostUsd(v float64) *TaskUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TaskUpdate) SetInputTokens(v int) *TaskUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInputTokens(v *int) *TaskUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TaskUpdate) AddInputTokens(v int) *TaskUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TaskUpdate) SetOutputTokens(v int) *TaskUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOutputTokens(v *int) *TaskUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TaskUpdate) AddOutputTokens(v int) *TaskUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TaskUpdate) SetDurationSeconds(v float64) *TaskUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDurationSeconds(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TaskUpdate) AddDurationSeconds(v float64) *TaskUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TaskUpdate) SetSource(v task.Source) *TaskUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSource(v *task.Source) *TaskUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceMetadata sets the "source_metadata" field.
func (_u *TaskUpdate) SetSourceMetadata(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetSourceMetadata(v)
	return _u
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (_u *TaskUpdate) ClearSourceMetadata() *TaskUpdate {
	_u.mutation.ClearSourceMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastOutputAt sets the "last_output_at" field.
func (_u *TaskUpdate) SetLastOutputAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastOutputAt(v)
	return _u
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastOutputAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastOutputAt(*v)
	}
	return _u
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (_u *TaskUpdate) ClearLastOutputAt() *TaskUpdate {
	_u.mutation.ClearLastOutputAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdate) SetDeletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdate) ClearDeletedAt() *TaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := task.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Task.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(task.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(task.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(task.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(task.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(task.FieldAgentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(task.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputStream(); ok {
		_spec.SetField(task.FieldOutputStream, field.TypeString, value)
	}
	if _u.mutation.OutputStreamCleared() {
		_spec.ClearField(task.FieldOutputStream, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(task.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(task.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(task.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(task.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(task.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(task.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(task.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(task.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(task.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMetadata(); ok {
		_spec.SetField(task.FieldSourceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SourceMetadataCleared() {
		_spec.ClearField(task.FieldSourceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutputAt(); ok {
		_spec.SetField(task.FieldLastOutputAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutputAtCleared() {
		_spec.ClearField(task.FieldLastOutputAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *TaskUpdateOne) SetConversationID(v string) *TaskUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableConversationID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TaskUpdateOne) ClearConversationID() *TaskUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *TaskUpdateOne) SetExternalID(v string) *TaskUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExternalID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *TaskUpdateOne) ClearExternalID() *TaskUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskUpdateOne) SetAgentName(v string) *TaskUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentKind sets the "agent_kind" field.
func (_u *TaskUpdateOne) SetAgentKind(v string) *TaskUpdateOne {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentKind(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *TaskUpdateOne) SetInput(v string) *TaskUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInput(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutputStream sets the "output_stream" field.
func (_u *TaskUpdateOne) SetOutputStream(v string) *TaskUpdateOne {
	_u.mutation.SetOutputStream(v)
	return _u
}

// SetNillableOutputStream sets the "output_stream" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOutputStream(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOutputStream(*v)
	}
	return _u
}

// ClearOutputStream clears the value of the "output_stream" field.
func (_u *TaskUpdateOne) ClearOutputStream() *TaskUpdateOne {
	_u.mutation.ClearOutputStream()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *TaskUpdateOne) SetCostUsd(v float64) *TaskUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCostUsd(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *TaskUpdateOne) AddCostUsd(v float64) *TaskUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TaskUpdateOne) SetInputTokens(v int) *TaskUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInputTokens(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TaskUpdateOne) AddInputTokens(v int) *TaskUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TaskUpdateOne) SetOutputTokens(v int) *TaskUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOutputTokens(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TaskUpdateOne) AddOutputTokens(v int) *TaskUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TaskUpdateOne) SetDurationSeconds(v float64) *TaskUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDurationSeconds(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TaskUpdateOne) AddDurationSeconds(v float64) *TaskUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TaskUpdateOne) SetSource(v task.Source) *TaskUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSource(v *task.Source) *TaskUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceMetadata sets the "source_metadata" field.
func (_u *TaskUpdateOne) SetSourceMetadata(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetSourceMetadata(v)
	return _u
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (_u *TaskUpdateOne) ClearSourceMetadata() *TaskUpdateOne {
	_u.mutation.ClearSourceMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastOutputAt sets the "last_output_at" field.
func (_u *TaskUpdateOne) SetLastOutputAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastOutputAt(v)
	return _u
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastOutputAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastOutputAt(*v)
	}
	return _u
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (_u *TaskUpdateOne) ClearLastOutputAt() *TaskUpdateOne {
	_u.mutation.ClearLastOutputAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdateOne) SetDeletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdateOne) ClearDeletedAt() *TaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := task.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Task.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(task.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(task.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(task.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(task.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(task.FieldAgentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(task.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputStream(); ok {
		_spec.SetField(task.FieldOutputStream, field.TypeString, value)
	}
	if _u.mutation.OutputStreamCleared() {
		_spec.ClearField(task.FieldOutputStream, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(task.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(task.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(task.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(task.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(task.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(task.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(task.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(task.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(task.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMetadata(); ok {
		_spec.SetField(task.FieldSourceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SourceMetadataCleared() {
		_spec.ClearField(task.FieldSourceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutputAt(); ok {
		_spec.SetField(task.FieldLastOutputAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutputAtCleared() {
		_spec.ClearField(task.FieldLastOutputAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
