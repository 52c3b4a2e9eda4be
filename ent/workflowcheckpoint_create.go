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
	"github.com/scout-research/scout/ent/workflowcheckpoint"
)

// WorkflowCheckpointCreate is the builder for creating a WorkflowCheckpoint entity.
type WorkflowCheckpointCreate struct {
	config
	mutation *WorkflowCheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *WorkflowCheckpointCreate) SetThreadID(v string) *WorkflowCheckpointCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *WorkflowCheckpointCreate) SetPhase(v string) *WorkflowCheckpointCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetState sets the "state" field.
func (_c *WorkflowCheckpointCreate) SetState(v map[string]interface{}) *WorkflowCheckpointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCheckpointCreate) SetCreatedAt(v time.Time) *WorkflowCheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCheckpointCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkflowCheckpointMutation object of the builder.
func (_c *WorkflowCheckpointCreate) Mutation() *WorkflowCheckpointMutation {
	return _c.mutation
}

// Save creates the WorkflowCheckpoint in the database.
func (_c *WorkflowCheckpointCreate) Save(ctx context.Context) (*WorkflowCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCheckpointCreate) SaveX(ctx context.Context) *WorkflowCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowcheckpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCheckpointCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "WorkflowCheckpoint.thread_id"`)}
	}
	if v, ok := _c.mutation.ThreadID(); ok {
		if err := workflowcheckpoint.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.thread_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "WorkflowCheckpoint.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := workflowcheckpoint.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "WorkflowCheckpoint.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "WorkflowCheckpoint.state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowCheckpoint.created_at"`)}
	}
	return nil
}

func (_c *WorkflowCheckpointCreate) sqlSave(ctx context.Context) (*WorkflowCheckpoint, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCheckpointCreate) createSpec() (*WorkflowCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowcheckpoint.Table, sqlgraph.NewFieldSpec(workflowcheckpoint.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(workflowcheckpoint.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(workflowcheckpoint.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(workflowcheckpoint.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowcheckpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowCheckpoint.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowCheckpointUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCheckpointCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowCheckpointUpsertOne {
	_c.conflict = opts
	return &WorkflowCheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCheckpointCreate) OnConflictColumns(columns ...string) *WorkflowCheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowCheckpointUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowCheckpointUpsertOne is the builder for "upsert"-ing
	//  one WorkflowCheckpoint node.
	WorkflowCheckpointUpsertOne struct {
		create *WorkflowCheckpointCreate
	}

	// WorkflowCheckpointUpsert is the "OnConflict" setter.
	WorkflowCheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetThreadID sets the "thread_id" field.
func (u *WorkflowCheckpointUpsert) SetThreadID(v string) *WorkflowCheckpointUpsert {
	u.Set(workflowcheckpoint.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsert) UpdateThreadID() *WorkflowCheckpointUpsert {
	u.SetExcluded(workflowcheckpoint.FieldThreadID)
	return u
}

// SetPhase sets the "phase" field.
func (u *WorkflowCheckpointUpsert) SetPhase(v string) *WorkflowCheckpointUpsert {
	u.Set(workflowcheckpoint.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsert) UpdatePhase() *WorkflowCheckpointUpsert {
	u.SetExcluded(workflowcheckpoint.FieldPhase)
	return u
}

// SetState sets the "state" field.
func (u *WorkflowCheckpointUpsert) SetState(v map[string]interface{}) *WorkflowCheckpointUpsert {
	u.Set(workflowcheckpoint.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsert) UpdateState() *WorkflowCheckpointUpsert {
	u.SetExcluded(workflowcheckpoint.FieldState)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkflowCheckpointUpsert) SetCreatedAt(v time.Time) *WorkflowCheckpointUpsert {
	u.Set(workflowcheckpoint.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsert) UpdateCreatedAt() *WorkflowCheckpointUpsert {
	u.SetExcluded(workflowcheckpoint.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkflowCheckpointUpsertOne) UpdateNewValues() *WorkflowCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowCheckpointUpsertOne) Ignore() *WorkflowCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowCheckpointUpsertOne) DoNothing() *WorkflowCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCheckpointCreate.OnConflict
// documentation for more info.
func (u *WorkflowCheckpointUpsertOne) Update(set func(*WorkflowCheckpointUpsert)) *WorkflowCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *WorkflowCheckpointUpsertOne) SetThreadID(v string) *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertOne) UpdateThreadID() *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateThreadID()
	})
}

// SetPhase sets the "phase" field.
func (u *WorkflowCheckpointUpsertOne) SetPhase(v string) *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertOne) UpdatePhase() *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdatePhase()
	})
}

// SetState sets the "state" field.
func (u *WorkflowCheckpointUpsertOne) SetState(v map[string]interface{}) *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertOne) UpdateState() *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateState()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkflowCheckpointUpsertOne) SetCreatedAt(v time.Time) *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertOne) UpdateCreatedAt() *WorkflowCheckpointUpsertOne {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowCheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowCheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowCheckpointUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowCheckpointUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowCheckpointCreateBulk is the builder for creating many WorkflowCheckpoint entities in bulk.
type WorkflowCheckpointCreateBulk struct {
	config
	err      error
	builders []*WorkflowCheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowCheckpoint entities in the database.
func (_c *WorkflowCheckpointCreateBulk) Save(ctx context.Context) ([]*WorkflowCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowCheckpointMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *WorkflowCheckpointCreateBulk) SaveX(ctx context.Context) []*WorkflowCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowCheckpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowCheckpointUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowCheckpointUpsertBulk {
	_c.conflict = opts
	return &WorkflowCheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCheckpointCreateBulk) OnConflictColumns(columns ...string) *WorkflowCheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowCheckpointUpsertBulk{
		create: _c,
	}
}

// WorkflowCheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowCheckpoint nodes.
type WorkflowCheckpointUpsertBulk struct {
	create *WorkflowCheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkflowCheckpointUpsertBulk) UpdateNewValues() *WorkflowCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowCheckpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowCheckpointUpsertBulk) Ignore() *WorkflowCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowCheckpointUpsertBulk) DoNothing() *WorkflowCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowCheckpointUpsertBulk) Update(set func(*WorkflowCheckpointUpsert)) *WorkflowCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *WorkflowCheckpointUpsertBulk) SetThreadID(v string) *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertBulk) UpdateThreadID() *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateThreadID()
	})
}

// SetPhase sets the "phase" field.
func (u *WorkflowCheckpointUpsertBulk) SetPhase(v string) *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertBulk) UpdatePhase() *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdatePhase()
	})
}

// SetState sets the "state" field.
func (u *WorkflowCheckpointUpsertBulk) SetState(v map[string]interface{}) *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertBulk) UpdateState() *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateState()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkflowCheckpointUpsertBulk) SetCreatedAt(v time.Time) *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkflowCheckpointUpsertBulk) UpdateCreatedAt() *WorkflowCheckpointUpsertBulk {
	return u.Update(func(s *WorkflowCheckpointUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowCheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowCheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowCheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
