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
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
)

// ChannelCreate is the builder for creating a Channel entity.
type ChannelCreate struct {
	config
	mutation *ChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceType sets the "source_type" field.
func (_c *ChannelCreate) SetSourceType(v channel.SourceType) *ChannelCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableSourceType(v *channel.SourceType) *ChannelCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ChannelCreate) SetExternalID(v string) *ChannelCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ChannelCreate) SetDisplayName(v string) *ChannelCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (_c *ChannelCreate) SetUploadCollectionID(v string) *ChannelCreate {
	_c.mutation.SetUploadCollectionID(v)
	return _c
}

// SetNillableUploadCollectionID sets the "upload_collection_id" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableUploadCollectionID(v *string) *ChannelCreate {
	if v != nil {
		_c.SetUploadCollectionID(*v)
	}
	return _c
}

// SetCronPattern sets the "cron_pattern" field.
func (_c *ChannelCreate) SetCronPattern(v string) *ChannelCreate {
	_c.mutation.SetCronPattern(v)
	return _c
}

// SetNillableCronPattern sets the "cron_pattern" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCronPattern(v *string) *ChannelCreate {
	if v != nil {
		_c.SetCronPattern(*v)
	}
	return _c
}

// SetFetchLastN sets the "fetch_last_n" field.
func (_c *ChannelCreate) SetFetchLastN(v int) *ChannelCreate {
	_c.mutation.SetFetchLastN(v)
	return _c
}

// SetNillableFetchLastN sets the "fetch_last_n" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableFetchLastN(v *int) *ChannelCreate {
	if v != nil {
		_c.SetFetchLastN(*v)
	}
	return _c
}

// SetAuthorContext sets the "author_context" field.
func (_c *ChannelCreate) SetAuthorContext(v string) *ChannelCreate {
	_c.mutation.SetAuthorContext(v)
	return _c
}

// SetNillableAuthorContext sets the "author_context" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableAuthorContext(v *string) *ChannelCreate {
	if v != nil {
		_c.SetAuthorContext(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelCreate) SetCreatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCreatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChannelCreate) SetUpdatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableUpdatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelCreate) SetID(v string) *ChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_c *ChannelCreate) AddContentIDs(ids ...string) *ChannelCreate {
	_c.mutation.AddContentIDs(ids...)
	return _c
}

// AddContents adds the "contents" edges to the Content entity.
func (_c *ChannelCreate) AddContents(v ...*Content) *ChannelCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContentIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_c *ChannelCreate) Mutation() *ChannelMutation {
	return _c.mutation
}

// Save creates the Channel in the database.
func (_c *ChannelCreate) Save(ctx context.Context) (*Channel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelCreate) SaveX(ctx context.Context) *Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := channel.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.CronPattern(); !ok {
		v := channel.DefaultCronPattern
		_c.mutation.SetCronPattern(v)
	}
	if _, ok := _c.mutation.FetchLastN(); !ok {
		v := channel.DefaultFetchLastN
		_c.mutation.SetFetchLastN(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := channel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelCreate) check() error {
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Channel.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := channel.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Channel.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Channel.external_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Channel.display_name"`)}
	}
	if _, ok := _c.mutation.CronPattern(); !ok {
		return &ValidationError{Name: "cron_pattern", err: errors.New(`ent: missing required field "Channel.cron_pattern"`)}
	}
	if _, ok := _c.mutation.FetchLastN(); !ok {
		return &ValidationError{Name: "fetch_last_n", err: errors.New(`ent: missing required field "Channel.fetch_last_n"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Channel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Channel.updated_at"`)}
	}
	return nil
}

func (_c *ChannelCreate) sqlSave(ctx context.Context) (*Channel, error) {
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
			return nil, fmt.Errorf("unexpected Channel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelCreate) createSpec() (*Channel, *sqlgraph.CreateSpec) {
	var (
		_node = &Channel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channel.Table, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(channel.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(channel.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(channel.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.UploadCollectionID(); ok {
		_spec.SetField(channel.FieldUploadCollectionID, field.TypeString, value)
		_node.UploadCollectionID = &value
	}
	if value, ok := _c.mutation.CronPattern(); ok {
		_spec.SetField(channel.FieldCronPattern, field.TypeString, value)
		_node.CronPattern = value
	}
	if value, ok := _c.mutation.FetchLastN(); ok {
		_spec.SetField(channel.FieldFetchLastN, field.TypeInt, value)
		_node.FetchLastN = value
	}
	if value, ok := _c.mutation.AuthorContext(); ok {
		_spec.SetField(channel.FieldAuthorContext, field.TypeString, value)
		_node.AuthorContext = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.ContentsTable,
			Columns: []string{channel.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.Create().
//		SetSourceType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetSourceType(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertOne {
	_c.conflict = opts
	return &ChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflictColumns(columns ...string) *ChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertOne{
		create: _c,
	}
}

type (
	// ChannelUpsertOne is the builder for "upsert"-ing
	//  one Channel node.
	ChannelUpsertOne struct {
		create *ChannelCreate
	}

	// ChannelUpsert is the "OnConflict" setter.
	ChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceType sets the "source_type" field.
func (u *ChannelUpsert) SetSourceType(v channel.SourceType) *ChannelUpsert {
	u.Set(channel.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateSourceType() *ChannelUpsert {
	u.SetExcluded(channel.FieldSourceType)
	return u
}

// SetExternalID sets the "external_id" field.
func (u *ChannelUpsert) SetExternalID(v string) *ChannelUpsert {
	u.Set(channel.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateExternalID() *ChannelUpsert {
	u.SetExcluded(channel.FieldExternalID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *ChannelUpsert) SetDisplayName(v string) *ChannelUpsert {
	u.Set(channel.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateDisplayName() *ChannelUpsert {
	u.SetExcluded(channel.FieldDisplayName)
	return u
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (u *ChannelUpsert) SetUploadCollectionID(v string) *ChannelUpsert {
	u.Set(channel.FieldUploadCollectionID, v)
	return u
}

// UpdateUploadCollectionID sets the "upload_collection_id" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateUploadCollectionID() *ChannelUpsert {
	u.SetExcluded(channel.FieldUploadCollectionID)
	return u
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (u *ChannelUpsert) ClearUploadCollectionID() *ChannelUpsert {
	u.SetNull(channel.FieldUploadCollectionID)
	return u
}

// SetCronPattern sets the "cron_pattern" field.
func (u *ChannelUpsert) SetCronPattern(v string) *ChannelUpsert {
	u.Set(channel.FieldCronPattern, v)
	return u
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateCronPattern() *ChannelUpsert {
	u.SetExcluded(channel.FieldCronPattern)
	return u
}

// SetFetchLastN sets the "fetch_last_n" field.
func (u *ChannelUpsert) SetFetchLastN(v int) *ChannelUpsert {
	u.Set(channel.FieldFetchLastN, v)
	return u
}

// UpdateFetchLastN sets the "fetch_last_n" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateFetchLastN() *ChannelUpsert {
	u.SetExcluded(channel.FieldFetchLastN)
	return u
}

// AddFetchLastN adds v to the "fetch_last_n" field.
func (u *ChannelUpsert) AddFetchLastN(v int) *ChannelUpsert {
	u.Add(channel.FieldFetchLastN, v)
	return u
}

// SetAuthorContext sets the "author_context" field.
func (u *ChannelUpsert) SetAuthorContext(v string) *ChannelUpsert {
	u.Set(channel.FieldAuthorContext, v)
	return u
}

// UpdateAuthorContext sets the "author_context" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateAuthorContext() *ChannelUpsert {
	u.SetExcluded(channel.FieldAuthorContext)
	return u
}

// ClearAuthorContext clears the value of the "author_context" field.
func (u *ChannelUpsert) ClearAuthorContext() *ChannelUpsert {
	u.SetNull(channel.FieldAuthorContext)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ChannelUpsert) SetCreatedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateCreatedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsert) SetUpdatedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateUpdatedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertOne) UpdateNewValues() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(channel.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChannelUpsertOne) Ignore() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertOne) DoNothing() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreate.OnConflict
// documentation for more info.
func (u *ChannelUpsertOne) Update(set func(*ChannelUpsert)) *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceType sets the "source_type" field.
func (u *ChannelUpsertOne) SetSourceType(v channel.SourceType) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateSourceType() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateSourceType()
	})
}

// SetExternalID sets the "external_id" field.
func (u *ChannelUpsertOne) SetExternalID(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateExternalID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateExternalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ChannelUpsertOne) SetDisplayName(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateDisplayName() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDisplayName()
	})
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (u *ChannelUpsertOne) SetUploadCollectionID(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUploadCollectionID(v)
	})
}

// UpdateUploadCollectionID sets the "upload_collection_id" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateUploadCollectionID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUploadCollectionID()
	})
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (u *ChannelUpsertOne) ClearUploadCollectionID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearUploadCollectionID()
	})
}

// SetCronPattern sets the "cron_pattern" field.
func (u *ChannelUpsertOne) SetCronPattern(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCronPattern(v)
	})
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateCronPattern() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCronPattern()
	})
}

// SetFetchLastN sets the "fetch_last_n" field.
func (u *ChannelUpsertOne) SetFetchLastN(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetFetchLastN(v)
	})
}

// AddFetchLastN adds v to the "fetch_last_n" field.
func (u *ChannelUpsertOne) AddFetchLastN(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.AddFetchLastN(v)
	})
}

// UpdateFetchLastN sets the "fetch_last_n" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateFetchLastN() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateFetchLastN()
	})
}

// SetAuthorContext sets the "author_context" field.
func (u *ChannelUpsertOne) SetAuthorContext(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAuthorContext(v)
	})
}

// UpdateAuthorContext sets the "author_context" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateAuthorContext() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAuthorContext()
	})
}

// ClearAuthorContext clears the value of the "author_context" field.
func (u *ChannelUpsertOne) ClearAuthorContext() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearAuthorContext()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ChannelUpsertOne) SetCreatedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateCreatedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertOne) SetUpdatedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateUpdatedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChannelUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChannelUpsertOne.ID is not supported by MySQL driver. Use ChannelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChannelUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChannelCreateBulk is the builder for creating many Channel entities in bulk.
type ChannelCreateBulk struct {
	config
	err      error
	builders []*ChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the Channel entities in the database.
func (_c *ChannelCreateBulk) Save(ctx context.Context) ([]*Channel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Channel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelMutation)
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
func (_c *ChannelCreateBulk) SaveX(ctx context.Context) []*Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetSourceType(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertBulk {
	_c.conflict = opts
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflictColumns(columns ...string) *ChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// ChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of Channel nodes.
type ChannelUpsertBulk struct {
	create *ChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertBulk) UpdateNewValues() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(channel.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChannelUpsertBulk) Ignore() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertBulk) DoNothing() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreateBulk.OnConflict
// documentation for more info.
func (u *ChannelUpsertBulk) Update(set func(*ChannelUpsert)) *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceType sets the "source_type" field.
func (u *ChannelUpsertBulk) SetSourceType(v channel.SourceType) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateSourceType() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateSourceType()
	})
}

// SetExternalID sets the "external_id" field.
func (u *ChannelUpsertBulk) SetExternalID(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateExternalID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateExternalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ChannelUpsertBulk) SetDisplayName(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateDisplayName() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDisplayName()
	})
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (u *ChannelUpsertBulk) SetUploadCollectionID(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUploadCollectionID(v)
	})
}

// UpdateUploadCollectionID sets the "upload_collection_id" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateUploadCollectionID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUploadCollectionID()
	})
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (u *ChannelUpsertBulk) ClearUploadCollectionID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearUploadCollectionID()
	})
}

// SetCronPattern sets the "cron_pattern" field.
func (u *ChannelUpsertBulk) SetCronPattern(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCronPattern(v)
	})
}

// UpdateCronPattern sets the "cron_pattern" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateCronPattern() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCronPattern()
	})
}

// SetFetchLastN sets the "fetch_last_n" field.
func (u *ChannelUpsertBulk) SetFetchLastN(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetFetchLastN(v)
	})
}

// AddFetchLastN adds v to the "fetch_last_n" field.
func (u *ChannelUpsertBulk) AddFetchLastN(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.AddFetchLastN(v)
	})
}

// UpdateFetchLastN sets the "fetch_last_n" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateFetchLastN() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateFetchLastN()
	})
}

// SetAuthorContext sets the "author_context" field.
func (u *ChannelUpsertBulk) SetAuthorContext(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAuthorContext(v)
	})
}

// UpdateAuthorContext sets the "author_context" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateAuthorContext() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAuthorContext()
	})
}

// ClearAuthorContext clears the value of the "author_context" field.
func (u *ChannelUpsertBulk) ClearAuthorContext() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearAuthorContext()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ChannelUpsertBulk) SetCreatedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateCreatedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertBulk) SetUpdatedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateUpdatedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
