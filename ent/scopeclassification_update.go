// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scout-research/scout/ent/predicate"
	"github.com/scout-research/scout/ent/scopeclassification"
)

// ScopeClassificationUpdate is the builder for updating ScopeClassification entities.
type ScopeClassificationUpdate struct {
	config
	hooks    []Hook
	mutation *ScopeClassificationMutation
}

// Where appends a list predicates to the ScopeClassificationUpdate builder.
func (_u *ScopeClassificationUpdate) Where(ps ...predicate.ScopeClassification) *ScopeClassificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResult sets the "result" field.
func (_u *ScopeClassificationUpdate) SetResult(v map[string]interface{}) *ScopeClassificationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// Mutation returns the ScopeClassificationMutation object of the builder.
func (_u *ScopeClassificationUpdate) Mutation() *ScopeClassificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScopeClassificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeClassificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScopeClassificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeClassificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScopeClassificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scopeclassification.Table, scopeclassification.Columns, sqlgraph.NewFieldSpec(scopeclassification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(scopeclassification.FieldResult, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scopeclassification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScopeClassificationUpdateOne is the builder for updating a single ScopeClassification entity.
type ScopeClassificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScopeClassificationMutation
}

// SetResult sets the "result" field.
func (_u *ScopeClassificationUpdateOne) SetResult(v map[string]interface{}) *ScopeClassificationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// Mutation returns the ScopeClassificationMutation object of the builder.
func (_u *ScopeClassificationUpdateOne) Mutation() *ScopeClassificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScopeClassificationUpdate builder.
func (_u *ScopeClassificationUpdateOne) Where(ps ...predicate.ScopeClassification) *ScopeClassificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScopeClassificationUpdateOne) Select(field string, fields ...string) *ScopeClassificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScopeClassification entity.
func (_u *ScopeClassificationUpdateOne) Save(ctx context.Context) (*ScopeClassification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeClassificationUpdateOne) SaveX(ctx context.Context) *ScopeClassification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScopeClassificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeClassificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScopeClassificationUpdateOne) sqlSave(ctx context.Context) (_node *ScopeClassification, err error) {
	_spec := sqlgraph.NewUpdateSpec(scopeclassification.Table, scopeclassification.Columns, sqlgraph.NewFieldSpec(scopeclassification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScopeClassification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scopeclassification.FieldID)
		for _, f := range fields {
			if !scopeclassification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scopeclassification.FieldID {
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
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(scopeclassification.FieldResult, field.TypeJSON, value)
	}
	_node = &ScopeClassification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scopeclassification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
