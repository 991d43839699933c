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
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks     []Hook
	mutation  *ChannelMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ChannelUpdate) SetSourceType(v channel.SourceType) *ChannelUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableSourceType(v *channel.SourceType) *ChannelUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ChannelUpdate) SetExternalID(v string) *ChannelUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableExternalID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ChannelUpdate) SetDisplayName(v string) *ChannelUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableDisplayName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (_u *ChannelUpdate) SetUploadCollectionID(v string) *ChannelUpdate {
	_u.mutation.SetUploadCollectionID(v)
	return _u
}

// SetNillableUploadCollectionID sets the "upload_collection_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableUploadCollectionID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetUploadCollectionID(*v)
	}
	return _u
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (_u *ChannelUpdate) ClearUploadCollectionID() *ChannelUpdate {
	_u.mutation.ClearUploadCollectionID()
	return _u
}

// SetCronPattern sets the "cron_pattern" field.
func (_u *ChannelUpdate) SetCronPattern(v string) *ChannelUpdate {
	_u.mutation.SetCronPattern(v)
	return _u
}

// SetNillableCronPattern sets the "cron_pattern" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableCronPattern(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetCronPattern(*v)
	}
	return _u
}

// SetFetchLastN sets the "fetch_last_n" field.
func (_u *ChannelUpdate) SetFetchLastN(v int) *ChannelUpdate {
	_u.mutation.ResetFetchLastN()
	_u.mutation.SetFetchLastN(v)
	return _u
}

// SetNillableFetchLastN sets the "fetch_last_n" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableFetchLastN(v *int) *ChannelUpdate {
	if v != nil {
		_u.SetFetchLastN(*v)
	}
	return _u
}

// AddFetchLastN adds value to the "fetch_last_n" field.
func (_u *ChannelUpdate) AddFetchLastN(v int) *ChannelUpdate {
	_u.mutation.AddFetchLastN(v)
	return _u
}

// SetAuthorContext sets the "author_context" field.
func (_u *ChannelUpdate) SetAuthorContext(v string) *ChannelUpdate {
	_u.mutation.SetAuthorContext(v)
	return _u
}

// SetNillableAuthorContext sets the "author_context" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableAuthorContext(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetAuthorContext(*v)
	}
	return _u
}

// ClearAuthorContext clears the value of the "author_context" field.
func (_u *ChannelUpdate) ClearAuthorContext() *ChannelUpdate {
	_u.mutation.ClearAuthorContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChannelUpdate) SetCreatedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableCreatedAt(v *time.Time) *ChannelUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdate) SetUpdatedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_u *ChannelUpdate) AddContentIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the Content entity.
func (_u *ChannelUpdate) AddContents(v ...*Content) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearContents clears all "contents" edges to the Content entity.
func (_u *ChannelUpdate) ClearContents() *ChannelUpdate {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to Content entities by IDs.
func (_u *ChannelUpdate) RemoveContentIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to Content entities.
func (_u *ChannelUpdate) RemoveContents(v ...*Content) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := channel.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Channel.source_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ChannelUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ChannelUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(channel.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(channel.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(channel.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadCollectionID(); ok {
		_spec.SetField(channel.FieldUploadCollectionID, field.TypeString, value)
	}
	if _u.mutation.UploadCollectionIDCleared() {
		_spec.ClearField(channel.FieldUploadCollectionID, field.TypeString)
	}
	if value, ok := _u.mutation.CronPattern(); ok {
		_spec.SetField(channel.FieldCronPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchLastN(); ok {
		_spec.SetField(channel.FieldFetchLastN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchLastN(); ok {
		_spec.AddField(channel.FieldFetchLastN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorContext(); ok {
		_spec.SetField(channel.FieldAuthorContext, field.TypeString, value)
	}
	if _u.mutation.AuthorContextCleared() {
		_spec.ClearField(channel.FieldAuthorContext, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ChannelMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetSourceType sets the "source_type" field.
func (_u *ChannelUpdateOne) SetSourceType(v channel.SourceType) *ChannelUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableSourceType(v *channel.SourceType) *ChannelUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ChannelUpdateOne) SetExternalID(v string) *ChannelUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableExternalID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ChannelUpdateOne) SetDisplayName(v string) *ChannelUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableDisplayName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (_u *ChannelUpdateOne) SetUploadCollectionID(v string) *ChannelUpdateOne {
	_u.mutation.SetUploadCollectionID(v)
	return _u
}

// SetNillableUploadCollectionID sets the "upload_collection_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableUploadCollectionID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetUploadCollectionID(*v)
	}
	return _u
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (_u *ChannelUpdateOne) ClearUploadCollectionID() *ChannelUpdateOne {
	_u.mutation.ClearUploadCollectionID()
	return _u
}

// SetCronPattern sets the "cron_pattern" field.
func (_u *ChannelUpdateOne) SetCronPattern(v string) *ChannelUpdateOne {
	_u.mutation.SetCronPattern(v)
	return _u
}

// SetNillableCronPattern sets the "cron_pattern" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableCronPattern(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetCronPattern(*v)
	}
	return _u
}

// SetFetchLastN sets the "fetch_last_n" field.
func (_u *ChannelUpdateOne) SetFetchLastN(v int) *ChannelUpdateOne {
	_u.mutation.ResetFetchLastN()
	_u.mutation.SetFetchLastN(v)
	return _u
}

// SetNillableFetchLastN sets the "fetch_last_n" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableFetchLastN(v *int) *ChannelUpdateOne {
	if v != nil {
		_u.SetFetchLastN(*v)
	}
	return _u
}

// AddFetchLastN adds value to the "fetch_last_n" field.
func (_u *ChannelUpdateOne) AddFetchLastN(v int) *ChannelUpdateOne {
	_u.mutation.AddFetchLastN(v)
	return _u
}

// SetAuthorContext sets the "author_context" field.
func (_u *ChannelUpdateOne) SetAuthorContext(v string) *ChannelUpdateOne {
	_u.mutation.SetAuthorContext(v)
	return _u
}

// SetNillableAuthorContext sets the "author_context" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableAuthorContext(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetAuthorContext(*v)
	}
	return _u
}

// ClearAuthorContext clears the value of the "author_context" field.
func (_u *ChannelUpdateOne) ClearAuthorContext() *ChannelUpdateOne {
	_u.mutation.ClearAuthorContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChannelUpdateOne) SetCreatedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableCreatedAt(v *time.Time) *ChannelUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdateOne) SetUpdatedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_u *ChannelUpdateOne) AddContentIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the Content entity.
func (_u *ChannelUpdateOne) AddContents(v ...*Content) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearContents clears all "contents" edges to the Content entity.
func (_u *ChannelUpdateOne) ClearContents() *ChannelUpdateOne {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to Content entities by IDs.
func (_u *ChannelUpdateOne) RemoveContentIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to Content entities.
func (_u *ChannelUpdateOne) RemoveContents(v ...*Content) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := channel.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Channel.source_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ChannelUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ChannelUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
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
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(channel.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(channel.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(channel.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadCollectionID(); ok {
		_spec.SetField(channel.FieldUploadCollectionID, field.TypeString, value)
	}
	if _u.mutation.UploadCollectionIDCleared() {
		_spec.ClearField(channel.FieldUploadCollectionID, field.TypeString)
	}
	if value, ok := _u.mutation.CronPattern(); ok {
		_spec.SetField(channel.FieldCronPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchLastN(); ok {
		_spec.SetField(channel.FieldFetchLastN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchLastN(); ok {
		_spec.AddField(channel.FieldFetchLastN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorContext(); ok {
		_spec.SetField(channel.FieldAuthorContext, field.TypeString, value)
	}
	if _u.mutation.AuthorContextCleared() {
		_spec.ClearField(channel.FieldAuthorContext, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
