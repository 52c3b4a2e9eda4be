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
	"github.com/scout-research/scout/ent/researchtask"
)

// ResearchTaskUpdate is the builder for updating ResearchTask entities.
type ResearchTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdate) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResearchTaskUpdate) SetEmail(v string) *ResearchTaskUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableEmail(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetResearchTopic sets the "research_topic" field.
func (_u *ResearchTaskUpdate) SetResearchTopic(v string) *ResearchTaskUpdate {
	_u.mutation.SetResearchTopic(v)
	return _u
}

// SetNillableResearchTopic sets the "research_topic" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableResearchTopic(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetResearchTopic(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *ResearchTaskUpdate) SetFrequency(v researchtask.Frequency) *ResearchTaskUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableFrequency(v *researchtask.Frequency) *ResearchTaskUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetScheduleTime sets the "schedule_time" field.
func (_u *ResearchTaskUpdate) SetScheduleTime(v string) *ResearchTaskUpdate {
	_u.mutation.SetScheduleTime(v)
	return _u
}

// SetNillableScheduleTime sets the "schedule_time" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableScheduleTime(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetScheduleTime(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ResearchTaskUpdate) SetIsActive(v bool) *ResearchTaskUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableIsActive(v *bool) *ResearchTaskUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ResearchTaskUpdate) SetLastRunAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableLastRunAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ResearchTaskUpdate) ClearLastRunAt() *ResearchTaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdate) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := researchtask.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResearchTopic(); ok {
		if err := researchtask.ResearchTopicValidator(v); err != nil {
			return &ValidationError{Name: "research_topic", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := researchtask.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(researchtask.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchTopic(); ok {
		_spec.SetField(researchtask.FieldResearchTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(researchtask.FieldFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleTime(); ok {
		_spec.SetField(researchtask.FieldScheduleTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(researchtask.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(researchtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(researchtask.FieldLastRunAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchTaskUpdateOne is the builder for updating a single ResearchTask entity.
type ResearchTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// SetEmail sets the "email" field.
func (_u *ResearchTaskUpdateOne) SetEmail(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableEmail(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetResearchTopic sets the "research_topic" field.
func (_u *ResearchTaskUpdateOne) SetResearchTopic(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetResearchTopic(v)
	return _u
}

// SetNillableResearchTopic sets the "research_topic" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableResearchTopic(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetResearchTopic(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *ResearchTaskUpdateOne) SetFrequency(v researchtask.Frequency) *ResearchTaskUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableFrequency(v *researchtask.Frequency) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetScheduleTime sets the "schedule_time" field.
func (_u *ResearchTaskUpdateOne) SetScheduleTime(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetScheduleTime(v)
	return _u
}

// SetNillableScheduleTime sets the "schedule_time" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableScheduleTime(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetScheduleTime(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ResearchTaskUpdateOne) SetIsActive(v bool) *ResearchTaskUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableIsActive(v *bool) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ResearchTaskUpdateOne) SetLastRunAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableLastRunAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ResearchTaskUpdateOne) ClearLastRunAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdateOne) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdateOne) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchTaskUpdateOne) Select(field string, fields ...string) *ResearchTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchTask entity.
func (_u *ResearchTaskUpdateOne) Save(ctx context.Context) (*ResearchTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) SaveX(ctx context.Context) *ResearchTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := researchtask.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResearchTopic(); ok {
		if err := researchtask.ResearchTopicValidator(v); err != nil {
			return &ValidationError{Name: "research_topic", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := researchtask.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdateOne) sqlSave(ctx context.Context) (_node *ResearchTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchtask.FieldID)
		for _, f := range fields {
			if !researchtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchtask.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(researchtask.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchTopic(); ok {
		_spec.SetField(researchtask.FieldResearchTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(researchtask.FieldFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleTime(); ok {
		_spec.SetField(researchtask.FieldScheduleTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(researchtask.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(researchtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(researchtask.FieldLastRunAt, field.TypeTime)
	}
	_node = &ResearchTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
