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
	"github.com/scout-research/scout/ent/predicate"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
)

// WorkflowCheckpointUpdate is the builder for updating WorkflowCheckpoint entities.
type WorkflowCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowCheckpointMutation
}

// Where appends a list predicates to the WorkflowCheckpointUpdate builder.
func (_u *WorkflowCheckpointUpdate) Where(ps ...predicate.WorkflowCheckpoint) *WorkflowCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *WorkflowCheckpointUpdate) SetThreadID(v string) *WorkflowCheckpointUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdate) SetNillableThreadID(v *string) *WorkflowCheckpointUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *WorkflowCheckpointUpdate) SetPhase(v string) *WorkflowCheckpointUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdate) SetNillablePhase(v *string) *WorkflowCheckpointUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *WorkflowCheckpointUpdate) SetState(v map[string]interface{}) *WorkflowCheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowCheckpointUpdate) SetCreatedAt(v time.Time) *WorkflowCheckpointUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowCheckpointUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowCheckpointMutation object of the builder.
func (_u *WorkflowCheckpointUpdate) Mutation() *WorkflowCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowCheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowCheckpointUpdate) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := workflowcheckpoint.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := workflowcheckpoint.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowcheckpoint.Table, workflowcheckpoint.Columns, sqlgraph.NewFieldSpec(workflowcheckpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(workflowcheckpoint.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(workflowcheckpoint.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowcheckpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowcheckpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowCheckpointUpdateOne is the builder for updating a single WorkflowCheckpoint entity.
type WorkflowCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowCheckpointMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *WorkflowCheckpointUpdateOne) SetThreadID(v string) *WorkflowCheckpointUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdateOne) SetNillableThreadID(v *string) *WorkflowCheckpointUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *WorkflowCheckpointUpdateOne) SetPhase(v string) *WorkflowCheckpointUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdateOne) SetNillablePhase(v *string) *WorkflowCheckpointUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *WorkflowCheckpointUpdateOne) SetState(v map[string]interface{}) *WorkflowCheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowCheckpointUpdateOne) SetCreatedAt(v time.Time) *WorkflowCheckpointUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowCheckpointUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowCheckpointUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowCheckpointMutation object of the builder.
func (_u *WorkflowCheckpointUpdateOne) Mutation() *WorkflowCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowCheckpointUpdate builder.
func (_u *WorkflowCheckpointUpdateOne) Where(ps ...predicate.WorkflowCheckpoint) *WorkflowCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowCheckpointUpdateOne) Select(field string, fields ...string) *WorkflowCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowCheckpoint entity.
func (_u *WorkflowCheckpointUpdateOne) Save(ctx context.Context) (*WorkflowCheckpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowCheckpointUpdateOne) SaveX(ctx context.Context) *WorkflowCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowCheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := workflowcheckpoint.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := workflowcheckpoint.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowCheckpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowcheckpoint.Table, workflowcheckpoint.Columns, sqlgraph.NewFieldSpec(workflowcheckpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowcheckpoint.FieldID)
		for _, f := range fields {
			if !workflowcheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowcheckpoint.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(workflowcheckpoint.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(workflowcheckpoint.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowcheckpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowcheckpoint.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &WorkflowCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
