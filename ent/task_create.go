// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TaskCreate) SetSessionID(v string) *TaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *TaskCreate) SetConversationID(v string) *TaskCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableConversationID(v *string) *TaskCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *TaskCreate) SetFlowID(v string) *TaskCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *TaskCreate) SetExternalID(v string) *TaskCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableExternalID(v *string) *TaskCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v string) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *TaskCreate) SetAgentName(v string) *TaskCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *TaskCreate) SetAgentKind(v string) *TaskCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *TaskCreate) SetInput(v string) *TaskCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutputStream sets the "output_stream" field.
func (_c *TaskCreate) SetOutputStream(v string) *TaskCreate {
	_c.mutation.SetOutputStream(v)
	return _c
}

// SetNillableOutputStream sets the "output_stream" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOutputStream(v *string) *TaskCreate {
	if v != nil {
		_c.SetOutputStream(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *TaskCreate) SetCostUsd(v float64) *TaskCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCostUsd(v *float64) *TaskCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *TaskCreate) SetInputTokens(v int) *TaskCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *TaskCreate) SetNillableInputTokens(v *int) *TaskCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *TaskCreate) SetOutputTokens(v int) *TaskCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOutputTokens(v *int) *TaskCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *TaskCreate) SetDurationSeconds(v float64) *TaskCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDurationSeconds(v *float64) *TaskCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *TaskCreate) SetSource(v task.Source) *TaskCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceMetadata sets the "source_metadata" field.
func (_c *TaskCreate) SetSourceMetadata(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetSourceMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastOutputAt sets the "last_output_at" field.
func (_c *TaskCreate) SetLastOutputAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastOutputAt(v)
	return _c
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastOutputAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastOutputAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TaskCreate) SetDeletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := task.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := task.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := task.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := task.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Task.session_id"`)}
	}
	if _, ok := _c.mutation.FlowID(); !ok {
		return &ValidationError{Name: "flow_id", err: errors.New(`ent: missing required field "Task.flow_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Task.agent_name"`)}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "Task.agent_kind"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "Task.input"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "Task.cost_usd"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Task.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Task.output_tokens"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "Task.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Task.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := task.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Task.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(task.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(task.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.FlowID(); ok {
		_spec.SetField(task.FieldFlowID, field.TypeString, value)
		_node.FlowID = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(task.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(task.FieldAgentKind, field.TypeString, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(task.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.OutputStream(); ok {
		_spec.SetField(task.FieldOutputStream, field.TypeString, value)
		_node.OutputStream = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(task.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(task.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(task.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(task.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(task.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceMetadata(); ok {
		_spec.SetField(task.FieldSourceMetadata, field.TypeJSON, value)
		_node.SourceMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastOutputAt(); ok {
		_spec.SetField(task.FieldLastOutputAt, field.TypeTime, value)
		_node.LastOutputAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
