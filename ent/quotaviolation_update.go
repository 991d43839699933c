// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vidsage/vidsage/ent/predicate"
	"github.com/vidsage/vidsage/ent/quotaviolation"
)

// QuotaViolationUpdate is the builder for updating QuotaViolation entities.
type QuotaViolationUpdate struct {
	config
	hooks     []Hook
	mutation  *QuotaViolationMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the QuotaViolationUpdate builder.
func (_u *QuotaViolationUpdate) Where(ps ...predicate.QuotaViolation) *QuotaViolationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *QuotaViolationUpdate) SetModel(v string) *QuotaViolationUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuotaViolationUpdate) SetNillableModel(v *string) *QuotaViolationUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuotaViolationUpdate) SetKind(v quotaviolation.Kind) *QuotaViolationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuotaViolationUpdate) SetNillableKind(v *quotaviolation.Kind) *QuotaViolationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (_u *QuotaViolationUpdate) SetRetryDelaySec(v int) *QuotaViolationUpdate {
	_u.mutation.ResetRetryDelaySec()
	_u.mutation.SetRetryDelaySec(v)
	return _u
}

// SetNillableRetryDelaySec sets the "retry_delay_sec" field if the given value is not nil.
func (_u *QuotaViolationUpdate) SetNillableRetryDelaySec(v *int) *QuotaViolationUpdate {
	if v != nil {
		_u.SetRetryDelaySec(*v)
	}
	return _u
}

// AddRetryDelaySec adds value to the "retry_delay_sec" field.
func (_u *QuotaViolationUpdate) AddRetryDelaySec(v int) *QuotaViolationUpdate {
	_u.mutation.AddRetryDelaySec(v)
	return _u
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (_u *QuotaViolationUpdate) ClearRetryDelaySec() *QuotaViolationUpdate {
	_u.mutation.ClearRetryDelaySec()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *QuotaViolationUpdate) SetRawPayload(v string) *QuotaViolationUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// SetNillableRawPayload sets the "raw_payload" field if the given value is not nil.
func (_u *QuotaViolationUpdate) SetNillableRawPayload(v *string) *QuotaViolationUpdate {
	if v != nil {
		_u.SetRawPayload(*v)
	}
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *QuotaViolationUpdate) ClearRawPayload() *QuotaViolationUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// Mutation returns the QuotaViolationMutation object of the builder.
func (_u *QuotaViolationUpdate) Mutation() *QuotaViolationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaViolationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaViolationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaViolationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaViolationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaViolationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := quotaviolation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QuotaViolation.kind": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaViolationUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaViolationUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaViolationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotaviolation.Table, quotaviolation.Columns, sqlgraph.NewFieldSpec(quotaviolation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(quotaviolation.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quotaviolation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryDelaySec(); ok {
		_spec.SetField(quotaviolation.FieldRetryDelaySec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryDelaySec(); ok {
		_spec.AddField(quotaviolation.FieldRetryDelaySec, field.TypeInt, value)
	}
	if _u.mutation.RetryDelaySecCleared() {
		_spec.ClearField(quotaviolation.FieldRetryDelaySec, field.TypeInt)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(quotaviolation.FieldRawPayload, field.TypeString, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(quotaviolation.FieldRawPayload, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaViolationUpdateOne is the builder for updating a single QuotaViolation entity.
type QuotaViolationUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *QuotaViolationMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetModel sets the "model" field.
func (_u *QuotaViolationUpdateOne) SetModel(v string) *QuotaViolationUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuotaViolationUpdateOne) SetNillableModel(v *string) *QuotaViolationUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuotaViolationUpdateOne) SetKind(v quotaviolation.Kind) *QuotaViolationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuotaViolationUpdateOne) SetNillableKind(v *quotaviolation.Kind) *QuotaViolationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (_u *QuotaViolationUpdateOne) SetRetryDelaySec(v int) *QuotaViolationUpdateOne {
	_u.mutation.ResetRetryDelaySec()
	_u.mutation.SetRetryDelaySec(v)
	return _u
}

// SetNillableRetryDelaySec sets the "retry_delay_sec" field if the given value is not nil.
func (_u *QuotaViolationUpdateOne) SetNillableRetryDelaySec(v *int) *QuotaViolationUpdateOne {
	if v != nil {
		_u.SetRetryDelaySec(*v)
	}
	return _u
}

// AddRetryDelaySec adds value to the "retry_delay_sec" field.
func (_u *QuotaViolationUpdateOne) AddRetryDelaySec(v int) *QuotaViolationUpdateOne {
	_u.mutation.AddRetryDelaySec(v)
	return _u
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (_u *QuotaViolationUpdateOne) ClearRetryDelaySec() *QuotaViolationUpdateOne {
	_u.mutation.ClearRetryDelaySec()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *QuotaViolationUpdateOne) SetRawPayload(v string) *QuotaViolationUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// SetNillableRawPayload sets the "raw_payload" field if the given value is not nil.
func (_u *QuotaViolationUpdateOne) SetNillableRawPayload(v *string) *QuotaViolationUpdateOne {
	if v != nil {
		_u.SetRawPayload(*v)
	}
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *QuotaViolationUpdateOne) ClearRawPayload() *QuotaViolationUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// Mutation returns the QuotaViolationMutation object of the builder.
func (_u *QuotaViolationUpdateOne) Mutation() *QuotaViolationMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaViolationUpdate builder.
func (_u *QuotaViolationUpdateOne) Where(ps ...predicate.QuotaViolation) *QuotaViolationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaViolationUpdateOne) Select(field string, fields ...string) *QuotaViolationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaViolation entity.
func (_u *QuotaViolationUpdateOne) Save(ctx context.Context) (*QuotaViolation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaViolationUpdateOne) SaveX(ctx context.Context) *QuotaViolation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaViolationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaViolationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaViolationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := quotaviolation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QuotaViolation.kind": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaViolationUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaViolationUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaViolationUpdateOne) sqlSave(ctx context.Context) (_node *QuotaViolation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotaviolation.Table, quotaviolation.Columns, sqlgraph.NewFieldSpec(quotaviolation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaViolation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotaviolation.FieldID)
		for _, f := range fields {
			if !quotaviolation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotaviolation.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(quotaviolation.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quotaviolation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryDelaySec(); ok {
		_spec.SetField(quotaviolation.FieldRetryDelaySec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryDelaySec(); ok {
		_spec.AddField(quotaviolation.FieldRetryDelaySec, field.TypeInt, value)
	}
	if _u.mutation.RetryDelaySecCleared() {
		_spec.ClearField(quotaviolation.FieldRetryDelaySec, field.TypeInt)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(quotaviolation.FieldRawPayload, field.TypeString, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(quotaviolation.FieldRawPayload, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &QuotaViolation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
