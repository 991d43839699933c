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
	"github.com/vidsage/vidsage/ent/quotausage"
)

// QuotaUsageUpdate is the builder for updating QuotaUsage entities.
type QuotaUsageUpdate struct {
	config
	hooks     []Hook
	mutation  *QuotaUsageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the QuotaUsageUpdate builder.
func (_u *QuotaUsageUpdate) Where(ps ...predicate.QuotaUsage) *QuotaUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *QuotaUsageUpdate) SetModel(v string) *QuotaUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableModel(v *string) *QuotaUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *QuotaUsageUpdate) SetWindow(v quotausage.Window) *QuotaUsageUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableWindow(v *quotausage.Window) *QuotaUsageUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *QuotaUsageUpdate) SetEpoch(v int64) *QuotaUsageUpdate {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableEpoch(v *int64) *QuotaUsageUpdate {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *QuotaUsageUpdate) AddEpoch(v int64) *QuotaUsageUpdate {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetRequests sets the "requests" field.
func (_u *QuotaUsageUpdate) SetRequests(v int64) *QuotaUsageUpdate {
	_u.mutation.ResetRequests()
	_u.mutation.SetRequests(v)
	return _u
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableRequests(v *int64) *QuotaUsageUpdate {
	if v != nil {
		_u.SetRequests(*v)
	}
	return _u
}

// AddRequests adds value to the "requests" field.
func (_u *QuotaUsageUpdate) AddRequests(v int64) *QuotaUsageUpdate {
	_u.mutation.AddRequests(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *QuotaUsageUpdate) SetTokens(v int64) *QuotaUsageUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableTokens(v *int64) *QuotaUsageUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *QuotaUsageUpdate) AddTokens(v int64) *QuotaUsageUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaUsageUpdate) SetUpdatedAt(v time.Time) *QuotaUsageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_u *QuotaUsageUpdate) Mutation() *QuotaUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaUsageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaUsageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotausage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUsageUpdate) check() error {
	if v, ok := _u.mutation.Window(); ok {
		if err := quotausage.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.window": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaUsageUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaUsageUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotausage.Table, quotausage.Columns, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(quotausage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(quotausage.FieldWindow, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(quotausage.FieldEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(quotausage.FieldEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Requests(); ok {
		_spec.SetField(quotausage.FieldRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequests(); ok {
		_spec.AddField(quotausage.FieldRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(quotausage.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(quotausage.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotausage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaUsageUpdateOne is the builder for updating a single QuotaUsage entity.
type QuotaUsageUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *QuotaUsageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetModel sets the "model" field.
func (_u *QuotaUsageUpdateOne) SetModel(v string) *QuotaUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableModel(v *string) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *QuotaUsageUpdateOne) SetWindow(v quotausage.Window) *QuotaUsageUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableWindow(v *quotausage.Window) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *QuotaUsageUpdateOne) SetEpoch(v int64) *QuotaUsageUpdateOne {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableEpoch(v *int64) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *QuotaUsageUpdateOne) AddEpoch(v int64) *QuotaUsageUpdateOne {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetRequests sets the "requests" field.
func (_u *QuotaUsageUpdateOne) SetRequests(v int64) *QuotaUsageUpdateOne {
	_u.mutation.ResetRequests()
	_u.mutation.SetRequests(v)
	return _u
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableRequests(v *int64) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetRequests(*v)
	}
	return _u
}

// AddRequests adds value to the "requests" field.
func (_u *QuotaUsageUpdateOne) AddRequests(v int64) *QuotaUsageUpdateOne {
	_u.mutation.AddRequests(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *QuotaUsageUpdateOne) SetTokens(v int64) *QuotaUsageUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableTokens(v *int64) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *QuotaUsageUpdateOne) AddTokens(v int64) *QuotaUsageUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaUsageUpdateOne) SetUpdatedAt(v time.Time) *QuotaUsageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_u *QuotaUsageUpdateOne) Mutation() *QuotaUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaUsageUpdate builder.
func (_u *QuotaUsageUpdateOne) Where(ps ...predicate.QuotaUsage) *QuotaUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaUsageUpdateOne) Select(field string, fields ...string) *QuotaUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaUsage entity.
func (_u *QuotaUsageUpdateOne) Save(ctx context.Context) (*QuotaUsage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUsageUpdateOne) SaveX(ctx context.Context) *QuotaUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaUsageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotausage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUsageUpdateOne) check() error {
	if v, ok := _u.mutation.Window(); ok {
		if err := quotausage.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.window": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaUsageUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaUsageUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaUsageUpdateOne) sqlSave(ctx context.Context) (_node *QuotaUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotausage.Table, quotausage.Columns, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotausage.FieldID)
		for _, f := range fields {
			if !quotausage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotausage.FieldID {
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
		_spec.SetField(quotausage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(quotausage.FieldWindow, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(quotausage.FieldEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(quotausage.FieldEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Requests(); ok {
		_spec.SetField(quotausage.FieldRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequests(); ok {
		_spec.AddField(quotausage.FieldRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(quotausage.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(quotausage.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &QuotaUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotausage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
