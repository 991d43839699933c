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
	"github.com/vidsage/vidsage/ent/quotaviolation"
)

// QuotaViolationCreate is the builder for creating a QuotaViolation entity.
type QuotaViolationCreate struct {
	config
	mutation *QuotaViolationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetModel sets the "model" field.
func (_c *QuotaViolationCreate) SetModel(v string) *QuotaViolationCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QuotaViolationCreate) SetKind(v quotaviolation.Kind) *QuotaViolationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (_c *QuotaViolationCreate) SetRetryDelaySec(v int) *QuotaViolationCreate {
	_c.mutation.SetRetryDelaySec(v)
	return _c
}

// SetNillableRetryDelaySec sets the "retry_delay_sec" field if the given value is not nil.
func (_c *QuotaViolationCreate) SetNillableRetryDelaySec(v *int) *QuotaViolationCreate {
	if v != nil {
		_c.SetRetryDelaySec(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *QuotaViolationCreate) SetRawPayload(v string) *QuotaViolationCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetNillableRawPayload sets the "raw_payload" field if the given value is not nil.
func (_c *QuotaViolationCreate) SetNillableRawPayload(v *string) *QuotaViolationCreate {
	if v != nil {
		_c.SetRawPayload(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuotaViolationCreate) SetCreatedAt(v time.Time) *QuotaViolationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuotaViolationCreate) SetNillableCreatedAt(v *time.Time) *QuotaViolationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaViolationCreate) SetID(v string) *QuotaViolationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuotaViolationMutation object of the builder.
func (_c *QuotaViolationCreate) Mutation() *QuotaViolationMutation {
	return _c.mutation
}

// Save creates the QuotaViolation in the database.
func (_c *QuotaViolationCreate) Save(ctx context.Context) (*QuotaViolation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaViolationCreate) SaveX(ctx context.Context) *QuotaViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaViolationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaViolationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaViolationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quotaviolation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaViolationCreate) check() error {
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "QuotaViolation.model"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QuotaViolation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := quotaviolation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QuotaViolation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuotaViolation.created_at"`)}
	}
	return nil
}

func (_c *QuotaViolationCreate) sqlSave(ctx context.Context) (*QuotaViolation, error) {
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
			return nil, fmt.Errorf("unexpected QuotaViolation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuotaViolationCreate) createSpec() (*QuotaViolation, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaViolation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotaviolation.Table, sqlgraph.NewFieldSpec(quotaviolation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(quotaviolation.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(quotaviolation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.RetryDelaySec(); ok {
		_spec.SetField(quotaviolation.FieldRetryDelaySec, field.TypeInt, value)
		_node.RetryDelaySec = &value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(quotaviolation.FieldRawPayload, field.TypeString, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quotaviolation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaViolation.Create().
//		SetModel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaViolationUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaViolationCreate) OnConflict(opts ...sql.ConflictOption) *QuotaViolationUpsertOne {
	_c.conflict = opts
	return &QuotaViolationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaViolationCreate) OnConflictColumns(columns ...string) *QuotaViolationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaViolationUpsertOne{
		create: _c,
	}
}

type (
	// QuotaViolationUpsertOne is the builder for "upsert"-ing
	//  one QuotaViolation node.
	QuotaViolationUpsertOne struct {
		create *QuotaViolationCreate
	}

	// QuotaViolationUpsert is the "OnConflict" setter.
	QuotaViolationUpsert struct {
		*sql.UpdateSet
	}
)

// SetModel sets the "model" field.
func (u *QuotaViolationUpsert) SetModel(v string) *QuotaViolationUpsert {
	u.Set(quotaviolation.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaViolationUpsert) UpdateModel() *QuotaViolationUpsert {
	u.SetExcluded(quotaviolation.FieldModel)
	return u
}

// SetKind sets the "kind" field.
func (u *QuotaViolationUpsert) SetKind(v quotaviolation.Kind) *QuotaViolationUpsert {
	u.Set(quotaviolation.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuotaViolationUpsert) UpdateKind() *QuotaViolationUpsert {
	u.SetExcluded(quotaviolation.FieldKind)
	return u
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (u *QuotaViolationUpsert) SetRetryDelaySec(v int) *QuotaViolationUpsert {
	u.Set(quotaviolation.FieldRetryDelaySec, v)
	return u
}

// UpdateRetryDelaySec sets the "retry_delay_sec" field to the value that was provided on create.
func (u *QuotaViolationUpsert) UpdateRetryDelaySec() *QuotaViolationUpsert {
	u.SetExcluded(quotaviolation.FieldRetryDelaySec)
	return u
}

// AddRetryDelaySec adds v to the "retry_delay_sec" field.
func (u *QuotaViolationUpsert) AddRetryDelaySec(v int) *QuotaViolationUpsert {
	u.Add(quotaviolation.FieldRetryDelaySec, v)
	return u
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (u *QuotaViolationUpsert) ClearRetryDelaySec() *QuotaViolationUpsert {
	u.SetNull(quotaviolation.FieldRetryDelaySec)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *QuotaViolationUpsert) SetRawPayload(v string) *QuotaViolationUpsert {
	u.Set(quotaviolation.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *QuotaViolationUpsert) UpdateRawPayload() *QuotaViolationUpsert {
	u.SetExcluded(quotaviolation.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *QuotaViolationUpsert) ClearRawPayload() *QuotaViolationUpsert {
	u.SetNull(quotaviolation.FieldRawPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotaviolation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaViolationUpsertOne) UpdateNewValues() *QuotaViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(quotaviolation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(quotaviolation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuotaViolationUpsertOne) Ignore() *QuotaViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaViolationUpsertOne) DoNothing() *QuotaViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaViolationCreate.OnConflict
// documentation for more info.
func (u *QuotaViolationUpsertOne) Update(set func(*QuotaViolationUpsert)) *QuotaViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaViolationUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *QuotaViolationUpsertOne) SetModel(v string) *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaViolationUpsertOne) UpdateModel() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateModel()
	})
}

// SetKind sets the "kind" field.
func (u *QuotaViolationUpsertOne) SetKind(v quotaviolation.Kind) *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuotaViolationUpsertOne) UpdateKind() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateKind()
	})
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (u *QuotaViolationUpsertOne) SetRetryDelaySec(v int) *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetRetryDelaySec(v)
	})
}

// AddRetryDelaySec adds v to the "retry_delay_sec" field.
func (u *QuotaViolationUpsertOne) AddRetryDelaySec(v int) *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.AddRetryDelaySec(v)
	})
}

// UpdateRetryDelaySec sets the "retry_delay_sec" field to the value that was provided on create.
func (u *QuotaViolationUpsertOne) UpdateRetryDelaySec() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateRetryDelaySec()
	})
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (u *QuotaViolationUpsertOne) ClearRetryDelaySec() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.ClearRetryDelaySec()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *QuotaViolationUpsertOne) SetRawPayload(v string) *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *QuotaViolationUpsertOne) UpdateRawPayload() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *QuotaViolationUpsertOne) ClearRawPayload() *QuotaViolationUpsertOne {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.ClearRawPayload()
	})
}

// Exec executes the query.
func (u *QuotaViolationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaViolationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaViolationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuotaViolationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuotaViolationUpsertOne.ID is not supported by MySQL driver. Use QuotaViolationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuotaViolationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotaViolationCreateBulk is the builder for creating many QuotaViolation entities in bulk.
type QuotaViolationCreateBulk struct {
	config
	err      error
	builders []*QuotaViolationCreate
	conflict []sql.ConflictOption
}

// Save creates the QuotaViolation entities in the database.
func (_c *QuotaViolationCreateBulk) Save(ctx context.Context) ([]*QuotaViolation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaViolation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaViolationMutation)
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
func (_c *QuotaViolationCreateBulk) SaveX(ctx context.Context) []*QuotaViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaViolationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaViolationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaViolation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaViolationUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaViolationCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuotaViolationUpsertBulk {
	_c.conflict = opts
	return &QuotaViolationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaViolationCreateBulk) OnConflictColumns(columns ...string) *QuotaViolationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaViolationUpsertBulk{
		create: _c,
	}
}

// QuotaViolationUpsertBulk is the builder for "upsert"-ing
// a bulk of QuotaViolation nodes.
type QuotaViolationUpsertBulk struct {
	create *QuotaViolationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotaviolation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaViolationUpsertBulk) UpdateNewValues() *QuotaViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(quotaviolation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(quotaviolation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaViolation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuotaViolationUpsertBulk) Ignore() *QuotaViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaViolationUpsertBulk) DoNothing() *QuotaViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaViolationCreateBulk.OnConflict
// documentation for more info.
func (u *QuotaViolationUpsertBulk) Update(set func(*QuotaViolationUpsert)) *QuotaViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaViolationUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *QuotaViolationUpsertBulk) SetModel(v string) *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuotaViolationUpsertBulk) UpdateModel() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateModel()
	})
}

// SetKind sets the "kind" field.
func (u *QuotaViolationUpsertBulk) SetKind(v quotaviolation.Kind) *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *QuotaViolationUpsertBulk) UpdateKind() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateKind()
	})
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (u *QuotaViolationUpsertBulk) SetRetryDelaySec(v int) *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetRetryDelaySec(v)
	})
}

// AddRetryDelaySec adds v to the "retry_delay_sec" field.
func (u *QuotaViolationUpsertBulk) AddRetryDelaySec(v int) *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.AddRetryDelaySec(v)
	})
}

// UpdateRetryDelaySec sets the "retry_delay_sec" field to the value that was provided on create.
func (u *QuotaViolationUpsertBulk) UpdateRetryDelaySec() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateRetryDelaySec()
	})
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (u *QuotaViolationUpsertBulk) ClearRetryDelaySec() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.ClearRetryDelaySec()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *QuotaViolationUpsertBulk) SetRawPayload(v string) *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *QuotaViolationUpsertBulk) UpdateRawPayload() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *QuotaViolationUpsertBulk) ClearRawPayload() *QuotaViolationUpsertBulk {
	return u.Update(func(s *QuotaViolationUpsert) {
		s.ClearRawPayload()
	})
}

// Exec executes the query.
func (u *QuotaViolationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuotaViolationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaViolationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaViolationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
