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
	"github.com/scout-research/scout/ent/strategyrecord"
)

// StrategyRecordCreate is the builder for creating a StrategyRecord entity.
type StrategyRecordCreate struct {
	config
	mutation *StrategyRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (_c *StrategyRecordCreate) SetSlug(v string) *StrategyRecordCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetYamlContent sets the "yaml_content" field.
func (_c *StrategyRecordCreate) SetYamlContent(v map[string]interface{}) *StrategyRecordCreate {
	_c.mutation.SetYamlContent(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *StrategyRecordCreate) SetPriority(v int) *StrategyRecordCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *StrategyRecordCreate) SetNillablePriority(v *int) *StrategyRecordCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StrategyRecordCreate) SetIsActive(v bool) *StrategyRecordCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StrategyRecordCreate) SetNillableIsActive(v *bool) *StrategyRecordCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StrategyRecordCreate) SetCreatedAt(v time.Time) *StrategyRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StrategyRecordCreate) SetNillableCreatedAt(v *time.Time) *StrategyRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StrategyRecordCreate) SetUpdatedAt(v time.Time) *StrategyRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StrategyRecordCreate) SetNillableUpdatedAt(v *time.Time) *StrategyRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StrategyRecordMutation object of the builder.
func (_c *StrategyRecordCreate) Mutation() *StrategyRecordMutation {
	return _c.mutation
}

// Save creates the StrategyRecord in the database.
func (_c *StrategyRecordCreate) Save(ctx context.Context) (*StrategyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StrategyRecordCreate) SaveX(ctx context.Context) *StrategyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StrategyRecordCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := strategyrecord.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := strategyrecord.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := strategyrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := strategyrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StrategyRecordCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "StrategyRecord.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := strategyrecord.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "StrategyRecord.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YamlContent(); !ok {
		return &ValidationError{Name: "yaml_content", err: errors.New(`ent: missing required field "StrategyRecord.yaml_content"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "StrategyRecord.priority"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "StrategyRecord.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StrategyRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StrategyRecord.updated_at"`)}
	}
	return nil
}

func (_c *StrategyRecordCreate) sqlSave(ctx context.Context) (*StrategyRecord, error) {
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

func (_c *StrategyRecordCreate) createSpec() (*StrategyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StrategyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(strategyrecord.Table, sqlgraph.NewFieldSpec(strategyrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(strategyrecord.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.YamlContent(); ok {
		_spec.SetField(strategyrecord.FieldYamlContent, field.TypeJSON, value)
		_node.YamlContent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(strategyrecord.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(strategyrecord.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(strategyrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(strategyrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StrategyRecord.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StrategyRecordUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *StrategyRecordCreate) OnConflict(opts ...sql.ConflictOption) *StrategyRecordUpsertOne {
	_c.conflict = opts
	return &StrategyRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StrategyRecordCreate) OnConflictColumns(columns ...string) *StrategyRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StrategyRecordUpsertOne{
		create: _c,
	}
}

type (
	// StrategyRecordUpsertOne is the builder for "upsert"-ing
	//  one StrategyRecord node.
	StrategyRecordUpsertOne struct {
		create *StrategyRecordCreate
	}

	// StrategyRecordUpsert is the "OnConflict" setter.
	StrategyRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *StrategyRecordUpsert) SetSlug(v string) *StrategyRecordUpsert {
	u.Set(strategyrecord.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *StrategyRecordUpsert) UpdateSlug() *StrategyRecordUpsert {
	u.SetExcluded(strategyrecord.FieldSlug)
	return u
}

// SetYamlContent sets the "yaml_content" field.
func (u *StrategyRecordUpsert) SetYamlContent(v map[string]interface{}) *StrategyRecordUpsert {
	u.Set(strategyrecord.FieldYamlContent, v)
	return u
}

// UpdateYamlContent sets the "yaml_content" field to the value that was provided on create.
func (u *StrategyRecordUpsert) UpdateYamlContent() *StrategyRecordUpsert {
	u.SetExcluded(strategyrecord.FieldYamlContent)
	return u
}

// SetPriority sets the "priority" field.
func (u *StrategyRecordUpsert) SetPriority(v int) *StrategyRecordUpsert {
	u.Set(strategyrecord.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StrategyRecordUpsert) UpdatePriority() *StrategyRecordUpsert {
	u.SetExcluded(strategyrecord.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *StrategyRecordUpsert) AddPriority(v int) *StrategyRecordUpsert {
	u.Add(strategyrecord.FieldPriority, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *StrategyRecordUpsert) SetIsActive(v bool) *StrategyRecordUpsert {
	u.Set(strategyrecord.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StrategyRecordUpsert) UpdateIsActive() *StrategyRecordUpsert {
	u.SetExcluded(strategyrecord.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StrategyRecordUpsert) SetUpdatedAt(v time.Time) *StrategyRecordUpsert {
	u.Set(strategyrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StrategyRecordUpsert) UpdateUpdatedAt() *StrategyRecordUpsert {
	u.SetExcluded(strategyrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StrategyRecordUpsertOne) UpdateNewValues() *StrategyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(strategyrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StrategyRecordUpsertOne) Ignore() *StrategyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StrategyRecordUpsertOne) DoNothing() *StrategyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StrategyRecordCreate.OnConflict
// documentation for more info.
func (u *StrategyRecordUpsertOne) Update(set func(*StrategyRecordUpsert)) *StrategyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StrategyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *StrategyRecordUpsertOne) SetSlug(v string) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *StrategyRecordUpsertOne) UpdateSlug() *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateSlug()
	})
}

// SetYamlContent sets the "yaml_content" field.
func (u *StrategyRecordUpsertOne) SetYamlContent(v map[string]interface{}) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetYamlContent(v)
	})
}

// UpdateYamlContent sets the "yaml_content" field to the value that was provided on create.
func (u *StrategyRecordUpsertOne) UpdateYamlContent() *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateYamlContent()
	})
}

// SetPriority sets the "priority" field.
func (u *StrategyRecordUpsertOne) SetPriority(v int) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *StrategyRecordUpsertOne) AddPriority(v int) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StrategyRecordUpsertOne) UpdatePriority() *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdatePriority()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StrategyRecordUpsertOne) SetIsActive(v bool) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StrategyRecordUpsertOne) UpdateIsActive() *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StrategyRecordUpsertOne) SetUpdatedAt(v time.Time) *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StrategyRecordUpsertOne) UpdateUpdatedAt() *StrategyRecordUpsertOne {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StrategyRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StrategyRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StrategyRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StrategyRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StrategyRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StrategyRecordCreateBulk is the builder for creating many StrategyRecord entities in bulk.
type StrategyRecordCreateBulk struct {
	config
	err      error
	builders []*StrategyRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the StrategyRecord entities in the database.
func (_c *StrategyRecordCreateBulk) Save(ctx context.Context) ([]*StrategyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StrategyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StrategyRecordMutation)
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
func (_c *StrategyRecordCreateBulk) SaveX(ctx context.Context) []*StrategyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StrategyRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StrategyRecordUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *StrategyRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *StrategyRecordUpsertBulk {
	_c.conflict = opts
	return &StrategyRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StrategyRecordCreateBulk) OnConflictColumns(columns ...string) *StrategyRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StrategyRecordUpsertBulk{
		create: _c,
	}
}

// StrategyRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of StrategyRecord nodes.
type StrategyRecordUpsertBulk struct {
	create *StrategyRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StrategyRecordUpsertBulk) UpdateNewValues() *StrategyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(strategyrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StrategyRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StrategyRecordUpsertBulk) Ignore() *StrategyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StrategyRecordUpsertBulk) DoNothing() *StrategyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StrategyRecordCreateBulk.OnConflict
// documentation for more info.
func (u *StrategyRecordUpsertBulk) Update(set func(*StrategyRecordUpsert)) *StrategyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StrategyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *StrategyRecordUpsertBulk) SetSlug(v string) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *StrategyRecordUpsertBulk) UpdateSlug() *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateSlug()
	})
}

// SetYamlContent sets the "yaml_content" field.
func (u *StrategyRecordUpsertBulk) SetYamlContent(v map[string]interface{}) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetYamlContent(v)
	})
}

// UpdateYamlContent sets the "yaml_content" field to the value that was provided on create.
func (u *StrategyRecordUpsertBulk) UpdateYamlContent() *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateYamlContent()
	})
}

// SetPriority sets the "priority" field.
func (u *StrategyRecordUpsertBulk) SetPriority(v int) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *StrategyRecordUpsertBulk) AddPriority(v int) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StrategyRecordUpsertBulk) UpdatePriority() *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdatePriority()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StrategyRecordUpsertBulk) SetIsActive(v bool) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StrategyRecordUpsertBulk) UpdateIsActive() *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StrategyRecordUpsertBulk) SetUpdatedAt(v time.Time) *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StrategyRecordUpsertBulk) UpdateUpdatedAt() *StrategyRecordUpsertBulk {
	return u.Update(func(s *StrategyRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StrategyRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StrategyRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StrategyRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StrategyRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
