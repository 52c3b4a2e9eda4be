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
	"github.com/scout-research/scout/ent/strategyrecord"
)

// StrategyRecordUpdate is the builder for updating StrategyRecord entities.
type StrategyRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StrategyRecordMutation
}

// Where appends a list predicates to the StrategyRecordUpdate builder.
func (_u *StrategyRecordUpdate) Where(ps ...predicate.StrategyRecord) *StrategyRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *StrategyRecordUpdate) SetSlug(v string) *StrategyRecordUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *StrategyRecordUpdate) SetNillableSlug(v *string) *StrategyRecordUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetYamlContent sets the "yaml_content" field.
func (_u *StrategyRecordUpdate) SetYamlContent(v map[string]interface{}) *StrategyRecordUpdate {
	_u.mutation.SetYamlContent(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StrategyRecordUpdate) SetPriority(v int) *StrategyRecordUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StrategyRecordUpdate) SetNillablePriority(v *int) *StrategyRecordUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StrategyRecordUpdate) AddPriority(v int) *StrategyRecordUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StrategyRecordUpdate) SetIsActive(v bool) *StrategyRecordUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StrategyRecordUpdate) SetNillableIsActive(v *bool) *StrategyRecordUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StrategyRecordUpdate) SetUpdatedAt(v time.Time) *StrategyRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StrategyRecordMutation object of the builder.
func (_u *StrategyRecordUpdate) Mutation() *StrategyRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StrategyRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategyRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StrategyRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategyRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StrategyRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := strategyrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategyRecordUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := strategyrecord.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "StrategyRecord.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *StrategyRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategyrecord.Table, strategyrecord.Columns, sqlgraph.NewFieldSpec(strategyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(strategyrecord.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.YamlContent(); ok {
		_spec.SetField(strategyrecord.FieldYamlContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(strategyrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(strategyrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(strategyrecord.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(strategyrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strategyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StrategyRecordUpdateOne is the builder for updating a single StrategyRecord entity.
type StrategyRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StrategyRecordMutation
}

// SetSlug sets the "slug" field.
func (_u *StrategyRecordUpdateOne) SetSlug(v string) *StrategyRecordUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *StrategyRecordUpdateOne) SetNillableSlug(v *string) *StrategyRecordUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetYamlContent sets the "yaml_content" field.
func (_u *StrategyRecordUpdateOne) SetYamlContent(v map[string]interface{}) *StrategyRecordUpdateOne {
	_u.mutation.SetYamlContent(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StrategyRecordUpdateOne) SetPriority(v int) *StrategyRecordUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StrategyRecordUpdateOne) SetNillablePriority(v *int) *StrategyRecordUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StrategyRecordUpdateOne) AddPriority(v int) *StrategyRecordUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StrategyRecordUpdateOne) SetIsActive(v bool) *StrategyRecordUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StrategyRecordUpdateOne) SetNillableIsActive(v *bool) *StrategyRecordUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StrategyRecordUpdateOne) SetUpdatedAt(v time.Time) *StrategyRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StrategyRecordMutation object of the builder.
func (_u *StrategyRecordUpdateOne) Mutation() *StrategyRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StrategyRecordUpdate builder.
func (_u *StrategyRecordUpdateOne) Where(ps ...predicate.StrategyRecord) *StrategyRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StrategyRecordUpdateOne) Select(field string, fields ...string) *StrategyRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StrategyRecord entity.
func (_u *StrategyRecordUpdateOne) Save(ctx context.Context) (*StrategyRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategyRecordUpdateOne) SaveX(ctx context.Context) *StrategyRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StrategyRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategyRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StrategyRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := strategyrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategyRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := strategyrecord.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "StrategyRecord.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *StrategyRecordUpdateOne) sqlSave(ctx context.Context) (_node *StrategyRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategyrecord.Table, strategyrecord.Columns, sqlgraph.NewFieldSpec(strategyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StrategyRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, strategyrecord.FieldID)
		for _, f := range fields {
			if !strategyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != strategyrecord.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(strategyrecord.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.YamlContent(); ok {
		_spec.SetField(strategyrecord.FieldYamlContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(strategyrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(strategyrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(strategyrecord.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(strategyrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StrategyRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strategyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
