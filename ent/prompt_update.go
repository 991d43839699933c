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
	"github.com/vidsage/vidsage/ent/predicate"
	"github.com/vidsage/vidsage/ent/prompt"
)

// PromptUpdate is the builder for updating Prompt entities.
type PromptUpdate struct {
	config
	hooks     []Hook
	mutation  *PromptMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdate) Where(ps ...predicate.Prompt) *PromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PromptUpdate) SetName(v string) *PromptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableName(v *string) *PromptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdate) SetVersion(v int) *PromptUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableVersion(v *int) *PromptUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptUpdate) AddVersion(v int) *PromptUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *PromptUpdate) SetTemplate(v string) *PromptUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableTemplate(v *string) *PromptUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdate) SetIsActive(v bool) *PromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableIsActive(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdate) SetPromptType(v prompt.PromptType) *PromptUpdate {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdate) SetNillablePromptType(v *prompt.PromptType) *PromptUpdate {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *PromptUpdate) SetResponseSchema(v map[string]interface{}) *PromptUpdate {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *PromptUpdate) ClearResponseSchema() *PromptUpdate {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PromptUpdate) SetMimeType(v string) *PromptUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableMimeType(v *string) *PromptUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *PromptUpdate) ClearMimeType() *PromptUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptUpdate) SetCreatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableCreatedAt(v *time.Time) *PromptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdate) SetUpdatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdate) Mutation() *PromptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdate) check() error {
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *PromptUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *PromptUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *PromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(prompt.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(prompt.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(prompt.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(prompt.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(prompt.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(prompt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUpdateOne is the builder for updating a single Prompt entity.
type PromptUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *PromptMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetName sets the "name" field.
func (_u *PromptUpdateOne) SetName(v string) *PromptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableName(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdateOne) SetVersion(v int) *PromptUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableVersion(v *int) *PromptUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptUpdateOne) AddVersion(v int) *PromptUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *PromptUpdateOne) SetTemplate(v string) *PromptUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableTemplate(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdateOne) SetIsActive(v bool) *PromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableIsActive(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdateOne) SetPromptType(v prompt.PromptType) *PromptUpdateOne {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillablePromptType(v *prompt.PromptType) *PromptUpdateOne {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *PromptUpdateOne) SetResponseSchema(v map[string]interface{}) *PromptUpdateOne {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *PromptUpdateOne) ClearResponseSchema() *PromptUpdateOne {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PromptUpdateOne) SetMimeType(v string) *PromptUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableMimeType(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *PromptUpdateOne) ClearMimeType() *PromptUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptUpdateOne) SetCreatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableCreatedAt(v *time.Time) *PromptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdateOne) SetUpdatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdateOne) Mutation() *PromptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdateOne) Where(ps ...predicate.Prompt) *PromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUpdateOne) Select(field string, fields ...string) *PromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prompt entity.
func (_u *PromptUpdateOne) Save(ctx context.Context) (*Prompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdateOne) SaveX(ctx context.Context) *Prompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdateOne) check() error {
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *PromptUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *PromptUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *PromptUpdateOne) sqlSave(ctx context.Context) (_node *Prompt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompt.FieldID)
		for _, f := range fields {
			if !prompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompt.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(prompt.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(prompt.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(prompt.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(prompt.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(prompt.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(prompt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Prompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
