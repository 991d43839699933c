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
	"github.com/vidsage/vidsage/ent/prompt"
)

// PromptCreate is the builder for creating a Prompt entity.
type PromptCreate struct {
	config
	mutation *PromptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PromptCreate) SetName(v string) *PromptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PromptCreate) SetVersion(v int) *PromptCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PromptCreate) SetNillableVersion(v *int) *PromptCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetTemplate sets the "template" field.
func (_c *PromptCreate) SetTemplate(v string) *PromptCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PromptCreate) SetIsActive(v bool) *PromptCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PromptCreate) SetNillableIsActive(v *bool) *PromptCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPromptType sets the "prompt_type" field.
func (_c *PromptCreate) SetPromptType(v prompt.PromptType) *PromptCreate {
	_c.mutation.SetPromptType(v)
	return _c
}

// SetResponseSchema sets the "response_schema" field.
func (_c *PromptCreate) SetResponseSchema(v map[string]interface{}) *PromptCreate {
	_c.mutation.SetResponseSchema(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *PromptCreate) SetMimeType(v string) *PromptCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *PromptCreate) SetNillableMimeType(v *string) *PromptCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptCreate) SetCreatedAt(v time.Time) *PromptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptCreate) SetNillableCreatedAt(v *time.Time) *PromptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptCreate) SetUpdatedAt(v time.Time) *PromptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptCreate) SetNillableUpdatedAt(v *time.Time) *PromptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptCreate) SetID(v string) *PromptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptMutation object of the builder.
func (_c *PromptCreate) Mutation() *PromptMutation {
	return _c.mutation
}

// Save creates the Prompt in the database.
func (_c *PromptCreate) Save(ctx context.Context) (*Prompt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptCreate) SaveX(ctx context.Context) *Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := prompt.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := prompt.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prompt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Prompt.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Prompt.version"`)}
	}
	if _, ok := _c.mutation.Template(); !ok {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required field "Prompt.template"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Prompt.is_active"`)}
	}
	if _, ok := _c.mutation.PromptType(); !ok {
		return &ValidationError{Name: "prompt_type", err: errors.New(`ent: missing required field "Prompt.prompt_type"`)}
	}
	if v, ok := _c.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prompt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prompt.updated_at"`)}
	}
	return nil
}

func (_c *PromptCreate) sqlSave(ctx context.Context) (*Prompt, error) {
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
			return nil, fmt.Errorf("unexpected Prompt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptCreate) createSpec() (*Prompt, *sqlgraph.CreateSpec) {
	var (
		_node = &Prompt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompt.Table, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(prompt.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
		_node.PromptType = value
	}
	if value, ok := _c.mutation.ResponseSchema(); ok {
		_spec.SetField(prompt.FieldResponseSchema, field.TypeJSON, value)
		_node.ResponseSchema = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(prompt.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prompt.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptCreate) OnConflict(opts ...sql.ConflictOption) *PromptUpsertOne {
	_c.conflict = opts
	return &PromptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptCreate) OnConflictColumns(columns ...string) *PromptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptUpsertOne{
		create: _c,
	}
}

type (
	// PromptUpsertOne is the builder for "upsert"-ing
	//  one Prompt node.
	PromptUpsertOne struct {
		create *PromptCreate
	}

	// PromptUpsert is the "OnConflict" setter.
	PromptUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PromptUpsert) SetName(v string) *PromptUpsert {
	u.Set(prompt.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsert) UpdateName() *PromptUpsert {
	u.SetExcluded(prompt.FieldName)
	return u
}

// SetVersion sets the "version" field.
func (u *PromptUpsert) SetVersion(v int) *PromptUpsert {
	u.Set(prompt.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PromptUpsert) UpdateVersion() *PromptUpsert {
	u.SetExcluded(prompt.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *PromptUpsert) AddVersion(v int) *PromptUpsert {
	u.Add(prompt.FieldVersion, v)
	return u
}

// SetTemplate sets the "template" field.
func (u *PromptUpsert) SetTemplate(v string) *PromptUpsert {
	u.Set(prompt.FieldTemplate, v)
	return u
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *PromptUpsert) UpdateTemplate() *PromptUpsert {
	u.SetExcluded(prompt.FieldTemplate)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PromptUpsert) SetIsActive(v bool) *PromptUpsert {
	u.Set(prompt.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PromptUpsert) UpdateIsActive() *PromptUpsert {
	u.SetExcluded(prompt.FieldIsActive)
	return u
}

// SetPromptType sets the "prompt_type" field.
func (u *PromptUpsert) SetPromptType(v prompt.PromptType) *PromptUpsert {
	u.Set(prompt.FieldPromptType, v)
	return u
}

// UpdatePromptType sets the "prompt_type" field to the value that was provided on create.
func (u *PromptUpsert) UpdatePromptType() *PromptUpsert {
	u.SetExcluded(prompt.FieldPromptType)
	return u
}

// SetResponseSchema sets the "response_schema" field.
func (u *PromptUpsert) SetResponseSchema(v map[string]interface{}) *PromptUpsert {
	u.Set(prompt.FieldResponseSchema, v)
	return u
}

// UpdateResponseSchema sets the "response_schema" field to the value that was provided on create.
func (u *PromptUpsert) UpdateResponseSchema() *PromptUpsert {
	u.SetExcluded(prompt.FieldResponseSchema)
	return u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (u *PromptUpsert) ClearResponseSchema() *PromptUpsert {
	u.SetNull(prompt.FieldResponseSchema)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *PromptUpsert) SetMimeType(v string) *PromptUpsert {
	u.Set(prompt.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PromptUpsert) UpdateMimeType() *PromptUpsert {
	u.SetExcluded(prompt.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *PromptUpsert) ClearMimeType() *PromptUpsert {
	u.SetNull(prompt.FieldMimeType)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PromptUpsert) SetCreatedAt(v time.Time) *PromptUpsert {
	u.Set(prompt.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PromptUpsert) UpdateCreatedAt() *PromptUpsert {
	u.SetExcluded(prompt.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PromptUpsert) SetUpdatedAt(v time.Time) *PromptUpsert {
	u.Set(prompt.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromptUpsert) UpdateUpdatedAt() *PromptUpsert {
	u.SetExcluded(prompt.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptUpsertOne) UpdateNewValues() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prompt.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromptUpsertOne) Ignore() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptUpsertOne) DoNothing() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptCreate.OnConflict
// documentation for more info.
func (u *PromptUpsertOne) Update(set func(*PromptUpsert)) *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PromptUpsertOne) SetName(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateName() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *PromptUpsertOne) SetVersion(v int) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PromptUpsertOne) AddVersion(v int) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateVersion() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateVersion()
	})
}

// SetTemplate sets the "template" field.
func (u *PromptUpsertOne) SetTemplate(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetTemplate(v)
	})
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateTemplate() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateTemplate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PromptUpsertOne) SetIsActive(v bool) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateIsActive() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateIsActive()
	})
}

// SetPromptType sets the "prompt_type" field.
func (u *PromptUpsertOne) SetPromptType(v prompt.PromptType) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetPromptType(v)
	})
}

// UpdatePromptType sets the "prompt_type" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdatePromptType() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdatePromptType()
	})
}

// SetResponseSchema sets the "response_schema" field.
func (u *PromptUpsertOne) SetResponseSchema(v map[string]interface{}) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetResponseSchema(v)
	})
}

// UpdateResponseSchema sets the "response_schema" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateResponseSchema() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateResponseSchema()
	})
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (u *PromptUpsertOne) ClearResponseSchema() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.ClearResponseSchema()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *PromptUpsertOne) SetMimeType(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateMimeType() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *PromptUpsertOne) ClearMimeType() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.ClearMimeType()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PromptUpsertOne) SetCreatedAt(v time.Time) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateCreatedAt() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PromptUpsertOne) SetUpdatedAt(v time.Time) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateUpdatedAt() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PromptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PromptUpsertOne.ID is not supported by MySQL driver. Use PromptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromptCreateBulk is the builder for creating many Prompt entities in bulk.
type PromptCreateBulk struct {
	config
	err      error
	builders []*PromptCreate
	conflict []sql.ConflictOption
}

// Save creates the Prompt entities in the database.
func (_c *PromptCreateBulk) Save(ctx context.Context) ([]*Prompt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prompt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptMutation)
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
func (_c *PromptCreateBulk) SaveX(ctx context.Context) []*Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prompt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromptUpsertBulk {
	_c.conflict = opts
	return &PromptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptCreateBulk) OnConflictColumns(columns ...string) *PromptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptUpsertBulk{
		create: _c,
	}
}

// PromptUpsertBulk is the builder for "upsert"-ing
// a bulk of Prompt nodes.
type PromptUpsertBulk struct {
	create *PromptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptUpsertBulk) UpdateNewValues() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prompt.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromptUpsertBulk) Ignore() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptUpsertBulk) DoNothing() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptCreateBulk.OnConflict
// documentation for more info.
func (u *PromptUpsertBulk) Update(set func(*PromptUpsert)) *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PromptUpsertBulk) SetName(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateName() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *PromptUpsertBulk) SetVersion(v int) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PromptUpsertBulk) AddVersion(v int) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateVersion() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateVersion()
	})
}

// SetTemplate sets the "template" field.
func (u *PromptUpsertBulk) SetTemplate(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetTemplate(v)
	})
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateTemplate() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateTemplate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PromptUpsertBulk) SetIsActive(v bool) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateIsActive() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateIsActive()
	})
}

// SetPromptType sets the "prompt_type" field.
func (u *PromptUpsertBulk) SetPromptType(v prompt.PromptType) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetPromptType(v)
	})
}

// UpdatePromptType sets the "prompt_type" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdatePromptType() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdatePromptType()
	})
}

// SetResponseSchema sets the "response_schema" field.
func (u *PromptUpsertBulk) SetResponseSchema(v map[string]interface{}) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetResponseSchema(v)
	})
}

// UpdateResponseSchema sets the "response_schema" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateResponseSchema() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateResponseSchema()
	})
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (u *PromptUpsertBulk) ClearResponseSchema() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.ClearResponseSchema()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *PromptUpsertBulk) SetMimeType(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateMimeType() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *PromptUpsertBulk) ClearMimeType() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.ClearMimeType()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PromptUpsertBulk) SetCreatedAt(v time.Time) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateCreatedAt() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PromptUpsertBulk) SetUpdatedAt(v time.Time) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateUpdatedAt() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PromptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PromptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
