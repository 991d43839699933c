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
	"github.com/vidsage/vidsage/ent/cronjob"
)

// CronJobCreate is the builder for creating a CronJob entity.
type CronJobCreate struct {
	config
	mutation *CronJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStableID sets the "stable_id" field.
func (_c *CronJobCreate) SetStableID(v string) *CronJobCreate {
	_c.mutation.SetStableID(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *CronJobCreate) SetQueue(v string) *CronJobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CronJobCreate) SetName(v string) *CronJobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CronJobCreate) SetPayload(v map[string]interface{}) *CronJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCronPattern sets the "cron_pattern" field.
func (_c *CronJobCreate) SetCronPattern(v string) *CronJobCreate {
	_c.mutation.SetCronPattern(v)
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *CronJobCreate) SetNextRunAt(v time.Time) *CronJobCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (_c *CronJobCreate) SetLastEnqueuedAt(v time.Time) *CronJobCreate {
	_c.mutation.SetLastEnqueuedAt(v)
	return _c
}

// SetNillableLastEnqueuedAt sets the "last_enqueued_at" field if the given value is not nil.
func (_c *CronJobCreate) SetNillableLastEnqueuedAt(v *time.Time) *CronJobCreate {
	if v != nil {
		_c.SetLastEnqueuedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CronJobCreate) SetCreatedAt(v time.Time) *CronJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CronJobCreate) SetNillableCreatedAt(v *time.Time) *CronJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CronJobCreate) SetUpdatedAt(v time.Time) *CronJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CronJobCreate) SetNillableUpdatedAt(v *time.Time) *CronJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CronJobCreate) SetID(v string) *CronJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CronJobMutation object of the builder.
func (_c *CronJobCreate) Mutation() *CronJobMutation {
	return _c.mutation
}

// Save creates the CronJob in the database.
func (_c *CronJobCreate) Save(ctx context.Context) (*CronJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CronJobCreate) SaveX(ctx context.Context) *CronJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CronJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CronJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CronJobCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cronjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cronjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CronJobCreate) check() error {
	if _, ok := _c.mutation.StableID(); !ok {
		return &ValidationError{Name: "stable_id", err: errors.New(`ent: missing required field "CronJob.stable_id"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "CronJob.queue"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CronJob.name"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "CronJob.payload"`)}
	}
	if _, ok := _c.mutation.CronPattern(); !ok {
		return &ValidationError{Name: "cron_pattern", err: errors.New(`ent: missing required field "CronJob.cron_pattern"`)}
	}
	if _, ok := _c.mutation.NextRunAt(); !ok {
		return &ValidationError{Name: "next_run_at", err: errors.New(`ent: missing required field "CronJob.next_run_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CronJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CronJob.updated_at"`)}
	}
	return nil
}

func (_c *CronJobCreate) sqlSave(ctx context.Context) (*CronJob, error) {
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
			return nil, fmt.Errorf("unexpected CronJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CronJobCreate) createSpec() (*CronJob, *sqlgraph.CreateSpec) {
	var (
		_node = &CronJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cronjob.Table, sqlgraph.NewFieldSpec(cronjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StableID(); ok {
		_spec.SetField(cronjob.FieldStableID, field.TypeString, value)
		_node.StableID = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(cronjob.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(cronjob.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(cronjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CronPattern(); ok {
		_spec.SetField(cronjob.FieldCronPattern, field.TypeString, value)
		_node.CronPattern = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(cronjob.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = value
	}
	if value, ok := _c.mutation.LastEnqueuedAt(); ok {
		_spec.SetField(cronjob.FieldLastEnqueuedAt, field.TypeTime, value)
		_node.LastEnqueuedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cronjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CronJob.Create().
//		SetStableID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CronJobUpsert) {
//			SetStableID(v+v).
//		}).
//		Exec(ctx)
func (_c *CronJobCreate) OnConflict(opts ...sql.ConflictOption) *CronJobUpsertOne {
	_c.conflict = opts
	return &CronJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CronJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CronJobCreate) OnConflictColumns(columns ...string) *CronJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CronJobUpsertOne{
		create: _c,
	}
}

type (
	// CronJobUpsertOne is the builder for "upsert"-ing
	//  one CronJob node.
	CronJobUpsertOne struct {
		create *CronJobCreate
	}

	// CronJobUpsert is the "OnConflict" setter.
	CronJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetStableID sets the "stable_id" field.
func (u *CronJobUpsert) SetStableID(v string) *CronJobUpsert {
	u.Set(cronjob.FieldStableID, v)
	return u
}

// UpdateStableID sets the "stable_id" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateStableID() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldStableID)
	return u
}

// SetQueue sets the "queue" field.
func (u *CronJobUpsert) SetQueue(v string) *CronJobUpsert {
	u.Set(cronjob.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateQueue() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldQueue)
	return u
}

// SetName sets the "name" field.
func (u *CronJobUpsert) SetName(v string) *CronJobUpsert {
	u.Set(cronjob.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateName() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldName)
	return u
}

// SetPayload sets the "payload" field.
func (u *CronJobUpsert) SetPayload(v map[string]interface{}) *CronJobUpsert {
	u.Set(cronjob.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CronJobUpsert) UpdatePayload() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldPayload)
	return u
}

// SetCronPattern sets the "cron_pattern" field.
func (u *CronJobUpsert) SetCronPattern(v string) *CronJobUpsert {
	u.Set(cronjob.FieldCronPattern, v)
	return u
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateCronPattern() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldCronPattern)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobUpsert) SetNextRunAt(v time.Time) *CronJobUpsert {
	u.Set(cronjob.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateNextRunAt() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldNextRunAt)
	return u
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (u *CronJobUpsert) SetLastEnqueuedAt(v time.Time) *CronJobUpsert {
	u.Set(cronjob.FieldLastEnqueuedAt, v)
	return u
}

// UpdateLastEnqueuedAt sets the "last_enqueued_at" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateLastEnqueuedAt() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldLastEnqueuedAt)
	return u
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (u *CronJobUpsert) ClearLastEnqueuedAt() *CronJobUpsert {
	u.SetNull(cronjob.FieldLastEnqueuedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CronJobUpsert) SetCreatedAt(v time.Time) *CronJobUpsert {
	u.Set(cronjob.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateCreatedAt() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobUpsert) SetUpdatedAt(v time.Time) *CronJobUpsert {
	u.Set(cronjob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobUpsert) UpdateUpdatedAt() *CronJobUpsert {
	u.SetExcluded(cronjob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CronJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cronjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CronJobUpsertOne) UpdateNewValues() *CronJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cronjob.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CronJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CronJobUpsertOne) Ignore() *CronJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CronJobUpsertOne) DoNothing() *CronJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CronJobCreate.OnConflict
// documentation for more info.
func (u *CronJobUpsertOne) Update(set func(*CronJobUpsert)) *CronJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CronJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStableID sets the "stable_id" field.
func (u *CronJobUpsertOne) SetStableID(v string) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetStableID(v)
	})
}

// UpdateStableID sets the "stable_id" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateStableID() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateStableID()
	})
}

// SetQueue sets the "queue" field.
func (u *CronJobUpsertOne) SetQueue(v string) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateQueue() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateQueue()
	})
}

// SetName sets the "name" field.
func (u *CronJobUpsertOne) SetName(v string) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateName() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateName()
	})
}

// SetPayload sets the "payload" field.
func (u *CronJobUpsertOne) SetPayload(v map[string]interface{}) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdatePayload() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdatePayload()
	})
}

// SetCronPattern sets the "cron_pattern" field.
func (u *CronJobUpsertOne) SetCronPattern(v string) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetCronPattern(v)
	})
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateCronPattern() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateCronPattern()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobUpsertOne) SetNextRunAt(v time.Time) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateNextRunAt() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (u *CronJobUpsertOne) SetLastEnqueuedAt(v time.Time) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetLastEnqueuedAt(v)
	})
}

// UpdateLastEnqueuedAt sets the "last_enqueued_at" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateLastEnqueuedAt() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateLastEnqueuedAt()
	})
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (u *CronJobUpsertOne) ClearLastEnqueuedAt() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.ClearLastEnqueuedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CronJobUpsertOne) SetCreatedAt(v time.Time) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateCreatedAt() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobUpsertOne) SetUpdatedAt(v time.Time) *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobUpsertOne) UpdateUpdatedAt() *CronJobUpsertOne {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CronJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CronJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CronJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CronJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CronJobUpsertOne.ID is not supported by MySQL driver. Use CronJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CronJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CronJobCreateBulk is the builder for creating many CronJob entities in bulk.
type CronJobCreateBulk struct {
	config
	err      error
	builders []*CronJobCreate
	conflict []sql.ConflictOption
}

// Save creates the CronJob entities in the database.
func (_c *CronJobCreateBulk) Save(ctx context.Context) ([]*CronJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CronJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CronJobMutation)
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
func (_c *CronJobCreateBulk) SaveX(ctx context.Context) []*CronJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CronJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CronJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CronJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CronJobUpsert) {
//			SetStableID(v+v).
//		}).
//		Exec(ctx)
func (_c *CronJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *CronJobUpsertBulk {
	_c.conflict = opts
	return &CronJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CronJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CronJobCreateBulk) OnConflictColumns(columns ...string) *CronJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CronJobUpsertBulk{
		create: _c,
	}
}

// CronJobUpsertBulk is the builder for "upsert"-ing
// a bulk of CronJob nodes.
type CronJobUpsertBulk struct {
	create *CronJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CronJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cronjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CronJobUpsertBulk) UpdateNewValues() *CronJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cronjob.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CronJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CronJobUpsertBulk) Ignore() *CronJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CronJobUpsertBulk) DoNothing() *CronJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CronJobCreateBulk.OnConflict
// documentation for more info.
func (u *CronJobUpsertBulk) Update(set func(*CronJobUpsert)) *CronJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CronJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStableID sets the "stable_id" field.
func (u *CronJobUpsertBulk) SetStableID(v string) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetStableID(v)
	})
}

// UpdateStableID sets the "stable_id" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateStableID() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateStableID()
	})
}

// SetQueue sets the "queue" field.
func (u *CronJobUpsertBulk) SetQueue(v string) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateQueue() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateQueue()
	})
}

// SetName sets the "name" field.
func (u *CronJobUpsertBulk) SetName(v string) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateName() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateName()
	})
}

// SetPayload sets the "payload" field.
func (u *CronJobUpsertBulk) SetPayload(v map[string]interface{}) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdatePayload() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdatePayload()
	})
}

// SetCronPattern sets the "cron_pattern" field.
func (u *CronJobUpsertBulk) SetCronPattern(v string) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetCronPattern(v)
	})
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateCronPattern() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateCronPattern()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobUpsertBulk) SetNextRunAt(v time.Time) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateNextRunAt() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (u *CronJobUpsertBulk) SetLastEnqueuedAt(v time.Time) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetLastEnqueuedAt(v)
	})
}

// UpdateLastEnqueuedAt sets the "last_enqueued_at" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateLastEnqueuedAt() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateLastEnqueuedAt()
	})
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (u *CronJobUpsertBulk) ClearLastEnqueuedAt() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.ClearLastEnqueuedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CronJobUpsertBulk) SetCreatedAt(v time.Time) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateCreatedAt() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobUpsertBulk) SetUpdatedAt(v time.Time) *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobUpsertBulk) UpdateUpdatedAt() *CronJobUpsertBulk {
	return u.Update(func(s *CronJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CronJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CronJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CronJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CronJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
