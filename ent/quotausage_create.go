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
	"github.com/vidsage/vidsage/ent/quotausage"
)

// QuotaUsageCreate is the builder for creating a QuotaUsage entity.
type QuotaUsageCreate struct {
	config
	mutation *QuotaUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetModel sets the "model" field.
func (_c *QuotaUsageCreate) SetModel(v string) *QuotaUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetWindow sets the "window" field.
func (_c *QuotaUsageCreate) SetWindow(v quotausage.Window) *QuotaUsageCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetEpoch sets the "epoch" field.
func (_c *QuotaUsageCreate) SetEpoch(v int64) *QuotaUsageCreate {
	_c.mutation.SetEpoch(v)
	return _c
}

// SetRequests sets the "requests" field.
func (_c *QuotaUsageCreate) SetRequests(v int64) *QuotaUsageCreate {
	_c.mutation.SetRequests(v)
	return _c
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableRequests(v *int64) *QuotaUsageCreate {
	if v != nil {
		_c.SetRequests(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *QuotaUsageCreate) SetTokens(v int64) *QuotaUsageCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableTokens(v *int64) *QuotaUsageCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaUsageCreate) SetUpdatedAt(v time.Time) *QuotaUsageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableUpdatedAt(v *time.Time) *QuotaUsageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaUsageCreate) SetID(v string) *QuotaUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_c *QuotaUsageCreate) Mutation() *QuotaUsageMutation {
	return _c.mutation
}

// Save creates the QuotaUsage in the database.
func (_c *QuotaUsageCreate) Save(ctx context.Context) (*QuotaUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaUsageCreate) SaveX(ctx context.Context) *QuotaUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaUsageCreate) defaults() {
	if _, ok := _c.mutation.Requests(); !ok {
		v := quotausage.DefaultRequests
		_c.mutation.SetRequests(v)
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		v := quotausage.DefaultTokens
		_c.mutation.SetTokens(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotausage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaUsageCreate) check() error {
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "QuotaUsage.model"`)}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "QuotaUsage.window"`)}
	}
	if v, ok := _c.mutation.Window(); ok {
		if err := quotausage.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.window": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Epoch(); !ok {
		return &ValidationError{Name: "epoch", err: errors.New(`ent: missing required field "QuotaUsage.epoch"`)}
	}
	if _, ok := _c.mutation.Requests(); !ok {
		return &ValidationError{Name: "requests", err: errors.New(`ent: missing required field "QuotaUsage.requests"`)}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "QuotaUsage.tokens"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaUsage.updated_at"`)}
	}
	return nil
}

func (_c *QuotaUsageCreate) sqlSave(ctx context.Context) (*QuotaUsage, error) {
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
			return nil, fmt.Errorf("unexpected QuotaUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuotaUsageCreate) createSpec() (*QuotaUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotausage.Table, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(quotausage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(quotausage.FieldWindow, field.TypeEnum, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.Epoch(); ok {
		_spec.SetField(quotausage.FieldEpoch, field.TypeInt64, value)
		_node.Epoch = value
	}
	if value, ok := _c.mutation.Requests(); ok {
		_spec.SetField(quotausage.FieldRequests, field.TypeInt64, value)
		_node.Requests = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(quotausage.FieldTokens, field.TypeInt64, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaUsage.Create().
//		SetModel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaUsageUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaUsageCreate) OnConflict(opts ...sql.ConflictOption) *QuotaUsageUpsertOne {
	_c.conflict = opts
	return &QuotaUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaUsageCreate) OnConflictColumns(columns ...string) *QuotaUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaUsageUpsertOne{
		create: _c,
	}
}

type (
	// QuotaUsageUpsertOne is the builder for "upsert"-ing
	//  one QuotaUsage node.
	QuotaUsageUpsertOne struct {
		create *QuotaUsageCreate
	}

	// QuotaUsageUpsert is the "OnConflict" setter.
	QuotaUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetModel sets the "model" field.
func (u *QuotaUsageUpsert) SetModel(v string) *QuotaUsageUpsert {
	u.Set(quotausage.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateModel() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldModel)
	return u
}

// SetWindow sets the "window" field.
func (u *QuotaUsageUpsert) SetWindow(v quotausage.Window) *QuotaUsageUpsert {
	u.Set(quotausage.FieldWindow, v)
	return u
}

// UpdateWindow sets the "window" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateWindow() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldWindow)
	return u
}

// SetEpoch sets the "epoch" field.
func (u *QuotaUsageUpsert) SetEpoch(v int64) *QuotaUsageUpsert {
	u.Set(quotausage.FieldEpoch, v)
	return u
}

// UpdateEpoch sets the "epoch" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateEpoch() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldEpoch)
	return u
}

// AddEpoch adds v to the "epoch" field.
func (u *QuotaUsageUpsert) AddEpoch(v int64) *QuotaUsageUpsert {
	u.Add(quotausage.FieldEpoch, v)
	return u
}

// SetRequests sets the "requests" field.
func (u *QuotaUsageUpsert) SetRequests(v int64) *QuotaUsageUpsert {
	u.Set(quotausage.FieldRequests, v)
	return u
}

// UpdateRequests sets the "requests" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateRequests() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldRequests)
	return u
}

// AddRequests adds v to the "requests" field.
func (u *QuotaUsageUpsert) AddRequests(v int64) *QuotaUsageUpsert {
	u.Add(quotausage.FieldRequests, v)
	return u
}

// SetTokens sets the "tokens" field.
func (u *QuotaUsageUpsert) SetTokens(v int64) *QuotaUsageUpsert {
	u.Set(quotausage.FieldTokens, v)
	return u
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateTokens() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldTokens)
	return u
}

// AddTokens adds v to the "tokens" field.
func (u *QuotaUsageUpsert) AddTokens(v int64) *QuotaUsageUpsert {
	u.Add(quotausage.FieldTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsert) SetUpdatedAt(v time.Time) *QuotaUsageUpsert {
	u.Set(quotausage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateUpdatedAt() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotausage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaUsageUpsertOne) UpdateNewValues() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(quotausage.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuotaUsageUpsertOne) Ignore() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaUsageUpsertOne) DoNothing() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaUsageCreate.OnConflict
// documentation for more info.
func (u *QuotaUsageUpsertOne) Update(set func(*QuotaUsageUpsert)) *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *QuotaUsageUpsertOne) SetModel(v string) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateModel() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateModel()
	})
}

// SetWindow sets the "window" field.
func (u *QuotaUsageUpsertOne) SetWindow(v quotausage.Window) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetWindow(v)
	})
}

// UpdateWindow sets the "window" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateWindow() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateWindow()
	})
}

// SetEpoch sets the "epoch" field.
func (u *QuotaUsageUpsertOne) SetEpoch(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetEpoch(v)
	})
}

// AddEpoch adds v to the "epoch" field.
func (u *QuotaUsageUpsertOne) AddEpoch(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddEpoch(v)
	})
}

// UpdateEpoch sets the "epoch" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateEpoch() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateEpoch()
	})
}

// SetRequests sets the "requests" field.
func (u *QuotaUsageUpsertOne) SetRequests(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetRequests(v)
	})
}

// AddRequests adds v to the "requests" field.
func (u *QuotaUsageUpsertOne) AddRequests(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddRequests(v)
	})
}

// UpdateRequests sets the "requests" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateRequests() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateRequests()
	})
}

// SetTokens sets the "tokens" field.
func (u *QuotaUsageUpsertOne) SetTokens(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *QuotaUsageUpsertOne) AddTokens(v int64) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateTokens() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsertOne) SetUpdatedAt(v time.Time) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateUpdatedAt() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuotaUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuotaUsageUpsertOne.ID is not supported by MySQL driver. Use QuotaUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuotaUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotaUsageCreateBulk is the builder for creating many QuotaUsage entities in bulk.
type QuotaUsageCreateBulk struct {
	config
	err      error
	builders []*QuotaUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the QuotaUsage entities in the database.
func (_c *QuotaUsageCreateBulk) Save(ctx context.Context) ([]*QuotaUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaUsageMutation)
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
func (_c *QuotaUsageCreateBulk) SaveX(ctx context.Context) []*QuotaUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaUsageUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuotaUsageUpsertBulk {
	_c.conflict = opts
	return &QuotaUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaUsageCreateBulk) OnConflictColumns(columns ...string) *QuotaUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaUsageUpsertBulk{
		create: _c,
	}
}

// QuotaUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of QuotaUsage nodes.
type QuotaUsageUpsertBulk struct {
	create *QuotaUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotausage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaUsageUpsertBulk) UpdateNewValues() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(quotausage.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuotaUsageUpsertBulk) Ignore() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaUsageUpsertBulk) DoNothing() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaUsageCreateBulk.OnConflict
// documentation for more info.
func (u *QuotaUsageUpsertBulk) Update(set func(*QuotaUsageUpsert)) *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *QuotaUsageUpsertBulk) SetModel(v string) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateModel() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateModel()
	})
}

// SetWindow sets the "window" field.
func (u *QuotaUsageUpsertBulk) SetWindow(v quotausage.Window) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetWindow(v)
	})
}

// UpdateWindow sets the "window" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateWindow() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateWindow()
	})
}

// SetEpoch sets the "epoch" field.
func (u *QuotaUsageUpsertBulk) SetEpoch(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetEpoch(v)
	})
}

// AddEpoch adds v to the "epoch" field.
func (u *QuotaUsageUpsertBulk) AddEpoch(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddEpoch(v)
	})
}

// UpdateEpoch sets the "epoch" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateEpoch() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateEpoch()
	})
}

// SetRequests sets the "requests" field.
func (u *QuotaUsageUpsertBulk) SetRequests(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetRequests(v)
	})
}

// AddRequests adds v to the "requests" field.
func (u *QuotaUsageUpsertBulk) AddRequests(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddRequests(v)
	})
}

// UpdateRequests sets the "requests" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateRequests() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateRequests()
	})
}

// SetTokens sets the "tokens" field.
func (u *QuotaUsageUpsertBulk) SetTokens(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *QuotaUsageUpsertBulk) AddTokens(v int64) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateTokens() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsertBulk) SetUpdatedAt(v time.Time) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateUpdatedAt() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuotaUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
