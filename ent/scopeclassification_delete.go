// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scout-research/scout/ent/predicate"
	"github.com/scout-research/scout/ent/scopeclassification"
)

// ScopeClassificationDelete is the builder for deleting a ScopeClassification entity.
type ScopeClassificationDelete struct {
	config
	hooks    []Hook
	mutation *ScopeClassificationMutation
}

// Where appends a list predicates to the ScopeClassificationDelete builder.
func (_d *ScopeClassificationDelete) Where(ps ...predicate.ScopeClassification) *ScopeClassificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScopeClassificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScopeClassificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScopeClassificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scopeclassification.Table, sqlgraph.NewFieldSpec(scopeclassification.FieldID, field.TypeString))
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

// ScopeClassificationDeleteOne is the builder for deleting a single ScopeClassification entity.
type ScopeClassificationDeleteOne struct {
	_d *ScopeClassificationDelete
}

// Where appends a list predicates to the ScopeClassificationDelete builder.
func (_d *ScopeClassificationDeleteOne) Where(ps ...predicate.ScopeClassification) *ScopeClassificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScopeClassificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scopeclassification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScopeClassificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
