// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scout-research/scout/ent/globalsetting"
	"github.com/scout-research/scout/ent/predicate"
)

// GlobalSettingDelete is the builder for deleting a GlobalSetting entity.
type GlobalSettingDelete struct {
	config
	hooks    []Hook
	mutation *GlobalSettingMutation
}

// Where appends a list predicates to the GlobalSettingDelete builder.
func (_d *GlobalSettingDelete) Where(ps ...predicate.GlobalSetting) *GlobalSettingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GlobalSettingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlobalSettingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GlobalSettingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(globalsetting.Table, sqlgraph.NewFieldSpec(globalsetting.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GlobalSettingDeleteOne is the builder for deleting a single GlobalSetting entity.
type GlobalSettingDeleteOne struct {
	_d *GlobalSettingDelete
}

// Where appends a list predicates to the GlobalSettingDelete builder.
func (_d *GlobalSettingDeleteOne) Where(ps ...predicate.GlobalSetting) *GlobalSettingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GlobalSettingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{globalsetting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlobalSettingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
