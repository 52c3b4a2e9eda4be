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
	"github.com/scout-research/scout/ent/researchtask"
)

// ResearchTaskCreate is the builder for creating a ResearchTask entity.
type ResearchTaskCreate struct {
	config
	mutation *ResearchTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmail sets the "email" field.
func (_c *ResearchTaskCreate) SetEmail(v string) *ResearchTaskCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetResearchTopic sets the "research_topic" field.
func (_c *ResearchTaskCreate) SetResearchTopic(v string) *ResearchTaskCreate {
	_c.mutation.SetResearchTopic(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *ResearchTaskCreate) SetFrequency(v researchtask.Frequency) *ResearchTaskCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetScheduleTime sets the "schedule_time" field.
func (_c *ResearchTaskCreate) SetScheduleTime(v string) *ResearchTaskCreate {
	_c.mutation.SetScheduleTime(v)
	return _c
}

// SetNillableScheduleTime sets the "schedule_time" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableScheduleTime(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetScheduleTime(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ResearchTaskCreate) SetIsActive(v bool) *ResearchTaskCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableIsActive(v *bool) *ResearchTaskCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchTaskCreate) SetCreatedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableCreatedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ResearchTaskCreate) SetLastRunAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableLastRunAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchTaskCreate) SetID(v string) *ResearchTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_c *ResearchTaskCreate) Mutation() *ResearchTaskMutation {
	return _c.mutation
}

// Save creates the ResearchTask in the database.
func (_c *ResearchTaskCreate) Save(ctx context.Context) (*ResearchTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchTaskCreate) SaveX(ctx context.Context) *ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchTaskCreate) defaults() {
	if _, ok := _c.mutation.ScheduleTime(); !ok {
		v := researchtask.DefaultScheduleTime
		_c.mutation.SetScheduleTime(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := researchtask.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchTaskCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "ResearchTask.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := researchtask.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResearchTopic(); !ok {
		return &ValidationError{Name: "research_topic", err: errors.New(`ent: missing required field "ResearchTask.research_topic"`)}
	}
	if v, ok := _c.mutation.ResearchTopic(); ok {
		if err := researchtask.ResearchTopicValidator(v); err != nil {
			return &ValidationError{Name: "research_topic", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "ResearchTask.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := researchtask.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduleTime(); !ok {
		return &ValidationError{Name: "schedule_time", err: errors.New(`ent: missing required field "ResearchTask.schedule_time"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ResearchTask.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchTask.created_at"`)}
	}
	return nil
}

func (_c *ResearchTaskCreate) sqlSave(ctx context.Context) (*ResearchTask, error) {
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
			return nil, fmt.Errorf("unexpected ResearchTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchTaskCreate) createSpec() (*ResearchTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchtask.Table, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(researchtask.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.ResearchTopic(); ok {
		_spec.SetField(researchtask.FieldResearchTopic, field.TypeString, value)
		_node.ResearchTopic = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(researchtask.FieldFrequency, field.TypeEnum, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.ScheduleTime(); ok {
		_spec.SetField(researchtask.FieldScheduleTime, field.TypeString, value)
		_node.ScheduleTime = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(researchtask.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(researchtask.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchTask.Create().
//		SetEmail(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchTaskUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchTaskCreate) OnConflict(opts ...sql.ConflictOption) *ResearchTaskUpsertOne {
	_c.conflict = opts
	return &ResearchTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchTaskCreate) OnConflictColumns(columns ...string) *ResearchTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchTaskUpsertOne{
		create: _c,
	}
}

type (
	// ResearchTaskUpsertOne is the builder for "upsert"-ing
	//  one ResearchTask node.
	ResearchTaskUpsertOne struct {
		create *ResearchTaskCreate
	}

	// ResearchTaskUpsert is the "OnConflict" setter.
	ResearchTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmail sets the "email" field.
func (u *ResearchTaskUpsert) SetEmail(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateEmail() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldEmail)
	return u
}

// SetResearchTopic sets the "research_topic" field.
func (u *ResearchTaskUpsert) SetResearchTopic(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldResearchTopic, v)
	return u
}

// UpdateResearchTopic sets the "research_topic" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateResearchTopic() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldResearchTopic)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *ResearchTaskUpsert) SetFrequency(v researchtask.Frequency) *ResearchTaskUpsert {
	u.Set(researchtask.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateFrequency() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldFrequency)
	return u
}

// SetScheduleTime sets the "schedule_time" field.
func (u *ResearchTaskUpsert) SetScheduleTime(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldScheduleTime, v)
	return u
}

// UpdateScheduleTime sets the "schedule_time" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateScheduleTime() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldScheduleTime)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ResearchTaskUpsert) SetIsActive(v bool) *ResearchTaskUpsert {
	u.Set(researchtask.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateIsActive() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldIsActive)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ResearchTaskUpsert) SetLastRunAt(v time.Time) *ResearchTaskUpsert {
	u.Set(researchtask.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateLastRunAt() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ResearchTaskUpsert) ClearLastRunAt() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldLastRunAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchTaskUpsertOne) UpdateNewValues() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(researchtask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(researchtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResearchTaskUpsertOne) Ignore() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchTaskUpsertOne) DoNothing() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchTaskCreate.OnConflict
// documentation for more info.
func (u *ResearchTaskUpsertOne) Update(set func(*ResearchTaskUpsert)) *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *ResearchTaskUpsertOne) SetEmail(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateEmail() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateEmail()
	})
}

// SetResearchTopic sets the "research_topic" field.
func (u *ResearchTaskUpsertOne) SetResearchTopic(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchTopic(v)
	})
}

// UpdateResearchTopic sets the "research_topic" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateResearchTopic() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchTopic()
	})
}

// SetFrequency sets the "frequency" field.
func (u *ResearchTaskUpsertOne) SetFrequency(v researchtask.Frequency) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateFrequency() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateFrequency()
	})
}

// SetScheduleTime sets the "schedule_time" field.
func (u *ResearchTaskUpsertOne) SetScheduleTime(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetScheduleTime(v)
	})
}

// UpdateScheduleTime sets the "schedule_time" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateScheduleTime() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateScheduleTime()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ResearchTaskUpsertOne) SetIsActive(v bool) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateIsActive() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ResearchTaskUpsertOne) SetLastRunAt(v time.Time) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateLastRunAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ResearchTaskUpsertOne) ClearLastRunAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearLastRunAt()
	})
}

// Exec executes the query.
func (u *ResearchTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResearchTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResearchTaskUpsertOne.ID is not supported by MySQL driver. Use ResearchTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResearchTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResearchTaskCreateBulk is the builder for creating many ResearchTask entities in bulk.
type ResearchTaskCreateBulk struct {
	config
	err      error
	builders []*ResearchTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ResearchTask entities in the database.
func (_c *ResearchTaskCreateBulk) Save(ctx context.Context) ([]*ResearchTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchTaskMutation)
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
func (_c *ResearchTaskCreateBulk) SaveX(ctx context.Context) []*ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchTaskUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResearchTaskUpsertBulk {
	_c.conflict = opts
	return &ResearchTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchTaskCreateBulk) OnConflictColumns(columns ...string) *ResearchTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchTaskUpsertBulk{
		create: _c,
	}
}

// ResearchTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ResearchTask nodes.
type ResearchTaskUpsertBulk struct {
	create *ResearchTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchTaskUpsertBulk) UpdateNewValues() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(researchtask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(researchtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResearchTaskUpsertBulk) Ignore() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchTaskUpsertBulk) DoNothing() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ResearchTaskUpsertBulk) Update(set func(*ResearchTaskUpsert)) *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *ResearchTaskUpsertBulk) SetEmail(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateEmail() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateEmail()
	})
}

// SetResearchTopic sets the "research_topic" field.
func (u *ResearchTaskUpsertBulk) SetResearchTopic(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchTopic(v)
	})
}

// UpdateResearchTopic sets the "research_topic" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateResearchTopic() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchTopic()
	})
}

// SetFrequency sets the "frequency" field.
func (u *ResearchTaskUpsertBulk) SetFrequency(v researchtask.Frequency) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateFrequency() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateFrequency()
	})
}

// SetScheduleTime sets the "schedule_time" field.
func (u *ResearchTaskUpsertBulk) SetScheduleTime(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetScheduleTime(v)
	})
}

// UpdateScheduleTime sets the "schedule_time" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateScheduleTime() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateScheduleTime()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ResearchTaskUpsertBulk) SetIsActive(v bool) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateIsActive() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ResearchTaskUpsertBulk) SetLastRunAt(v time.Time) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateLastRunAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ResearchTaskUpsertBulk) ClearLastRunAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearLastRunAt()
	})
}

// Exec executes the query.
func (u *ResearchTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResearchTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
