// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scout-research/scout/ent/scopeclassification"
)

// ScopeClassificationCreate is the builder for creating a ScopeClassification entity.
type ScopeClassificationCreate struct {
	config
	mutation *ScopeClassificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResult sets the "result" field.
func (_c *ScopeClassificationCreate) SetResult(v map[string]interface{}) *ScopeClassificationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScopeClassificationCreate) SetCreatedAt(v time.Time) *ScopeClassificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScopeClassificationCreate) SetNillableCreatedAt(v *time.Time) *ScopeClassificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScopeClassificationCreate) SetID(v string) *ScopeClassificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScopeClassificationMutation object of the builder.
func (_c *ScopeClassificationCreate) Mutation() *ScopeClassificationMutation {
	return _c.mutation
}

// Save creates the ScopeClassification in the database.
func (_c *ScopeClassificationCreate) Save(ctx context.Context) (*ScopeClassification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScopeClassificationCreate) SaveX(ctx context.Context) *ScopeClassification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeClassificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeClassificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScopeClassificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scopeclassification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScopeClassificationCreate) check() error {
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "ScopeClassification.result"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScopeClassification.created_at"`)}
	}
	return nil
}

func (_c *ScopeClassificationCreate) sqlSave(ctx context.Context) (*ScopeClassification, error) {
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
			return nil, fmt.Errorf("unexpected ScopeClassification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScopeClassificationCreate) createSpec() (*ScopeClassification, *sqlgraph.CreateSpec) {
	var (
		_node = &ScopeClassification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scopeclassification.Table, sqlgraph.NewFieldSpec(scopeclassification.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(scopeclassification.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scopeclassification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScopeClassification.Create().
//		SetResult(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScopeClassificationUpsert) {
//			SetResult(v+v).
//		}).
//		Exec(ctx)
func (_c *ScopeClassificationCreate) OnConflict(opts ...sql.ConflictOption) *ScopeClassificationUpsertOne {
	_c.conflict = opts
	return &ScopeClassificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScopeClassificationCreate) OnConflictColumns(columns ...string) *ScopeClassificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScopeClassificationUpsertOne{
		create: _c,
	}
}

type (
	// ScopeClassificationUpsertOne is the builder for "upsert"-ing
	//  one ScopeClassification node.
	ScopeClassificationUpsertOne struct {
		create *ScopeClassificationCreate
	}

	// ScopeClassificationUpsert is the "OnConflict" setter.
	ScopeClassificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetResult sets the "result" field.
func (u *ScopeClassificationUpsert) SetResult(v map[string]interface{}) *ScopeClassificationUpsert {
	u.Set(scopeclassification.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ScopeClassificationUpsert) UpdateResult() *ScopeClassificationUpsert {
	u.SetExcluded(scopeclassification.FieldResult)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scopeclassification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScopeClassificationUpsertOne) UpdateNewValues() *ScopeClassificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scopeclassification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scopeclassification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScopeClassificationUpsertOne) Ignore() *ScopeClassificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScopeClassificationUpsertOne) DoNothing() *ScopeClassificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScopeClassificationCreate.OnConflict
// documentation for more info.
func (u *ScopeClassificationUpsertOne) Update(set func(*ScopeClassificationUpsert)) *ScopeClassificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScopeClassificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetResult sets the "result" field.
func (u *ScopeClassificationUpsertOne) SetResult(v map[string]interface{}) *ScopeClassificationUpsertOne {
	return u.Update(func(s *ScopeClassificationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ScopeClassificationUpsertOne) UpdateResult() *ScopeClassificationUpsertOne {
	return u.Update(func(s *ScopeClassificationUpsert) {
		s.UpdateResult()
	})
}

// Exec executes the query.
func (u *ScopeClassificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScopeClassificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScopeClassificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScopeClassificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScopeClassificationUpsertOne.ID is not supported by MySQL driver. Use ScopeClassificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScopeClassificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScopeClassificationCreateBulk is the builder for creating many ScopeClassification entities in bulk.
type ScopeClassificationCreateBulk struct {
	config
	err      error
	builders []*ScopeClassificationCreate
	conflict []sql.ConflictOption
}

// Save creates the ScopeClassification entities in the database.
func (_c *ScopeClassificationCreateBulk) Save(ctx context.Context) ([]*ScopeClassification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScopeClassification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScopeClassificationMutation)
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
func (_c *ScopeClassificationCreateBulk) SaveX(ctx context.Context) []*ScopeClassification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeClassificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeClassificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScopeClassification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScopeClassificationUpsert) {
//			SetResult(v+v).
//		}).
//		Exec(ctx)
func (_c *ScopeClassificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScopeClassificationUpsertBulk {
	_c.conflict = opts
	return &ScopeClassificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScopeClassificationCreateBulk) OnConflictColumns(columns ...string) *ScopeClassificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScopeClassificationUpsertBulk{
		create: _c,
	}
}

// ScopeClassificationUpsertBulk is the builder for "upsert"-ing
// a bulk of ScopeClassification nodes.
type ScopeClassificationUpsertBulk struct {
	create *ScopeClassificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scopeclassification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScopeClassificationUpsertBulk) UpdateNewValues() *ScopeClassificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scopeclassification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scopeclassification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScopeClassification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScopeClassificationUpsertBulk) Ignore() *ScopeClassificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScopeClassificationUpsertBulk) DoNothing() *ScopeClassificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScopeClassificationCreateBulk.OnConflict
// documentation for more info.
func (u *ScopeClassificationUpsertBulk) Update(set func(*ScopeClassificationUpsert)) *ScopeClassificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScopeClassificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetResult sets the "result" field.
func (u *ScopeClassificationUpsertBulk) SetResult(v map[string]interface{}) *ScopeClassificationUpsertBulk {
	return u.Update(func(s *ScopeClassificationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ScopeClassificationUpsertBulk) UpdateResult() *ScopeClassificationUpsertBulk {
	return u.Update(func(s *ScopeClassificationUpsert) {
		s.UpdateResult()
	})
}

// Exec executes the query.
func (u *ScopeClassificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScopeClassificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScopeClassificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScopeClassificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
