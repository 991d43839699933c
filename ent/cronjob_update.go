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
	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/predicate"
)

// CronJobUpdate is the builder for updating CronJob entities.
type CronJobUpdate struct {
	config
	hooks     []Hook
	mutation  *CronJobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CronJobUpdate builder.
func (_u *CronJobUpdate) Where(ps ...predicate.CronJob) *CronJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStableID sets the "stable_id" field.
func (_u *CronJobUpdate) SetStableID(v string) *CronJobUpdate {
	_u.mutation.SetStableID(v)
	return _u
}

// SetNillableStableID sets the "stable_id" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableStableID(v *string) *CronJobUpdate {
	if v != nil {
		_u.SetStableID(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *CronJobUpdate) SetQueue(v string) *CronJobUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableQueue(v *string) *CronJobUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CronJobUpdate) SetName(v string) *CronJobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableName(v *string) *CronJobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CronJobUpdate) SetPayload(v map[string]interface{}) *CronJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCronPattern sets the "cron_pattern" field.
func (_u *CronJobUpdate) SetCronPattern(v string) *CronJobUpdate {
	_u.mutation.SetCronPattern(v)
	return _u
}

// SetNillableCronPattern sets the "cron_pattern" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableCronPattern(v *string) *CronJobUpdate {
	if v != nil {
		_u.SetCronPattern(*v)
	}
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *CronJobUpdate) SetNextRunAt(v time.Time) *CronJobUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableNextRunAt(v *time.Time) *CronJobUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (_u *CronJobUpdate) SetLastEnqueuedAt(v time.Time) *CronJobUpdate {
	_u.mutation.SetLastEnqueuedAt(v)
	return _u
}

// SetNillableLastEnqueuedAt sets the "last_enqueued_at" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableLastEnqueuedAt(v *time.Time) *CronJobUpdate {
	if v != nil {
		_u.SetLastEnqueuedAt(*v)
	}
	return _u
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (_u *CronJobUpdate) ClearLastEnqueuedAt() *CronJobUpdate {
	_u.mutation.ClearLastEnqueuedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CronJobUpdate) SetCreatedAt(v time.Time) *CronJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CronJobUpdate) SetNillableCreatedAt(v *time.Time) *CronJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CronJobUpdate) SetUpdatedAt(v time.Time) *CronJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CronJobMutation object of the builder.
func (_u *CronJobUpdate) Mutation() *CronJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CronJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CronJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CronJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CronJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CronJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cronjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CronJobUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CronJobUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CronJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cronjob.Table, cronjob.Columns, sqlgraph.NewFieldSpec(cronjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StableID(); ok {
		_spec.SetField(cronjob.FieldStableID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(cronjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cronjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(cronjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CronPattern(); ok {
		_spec.SetField(cronjob.FieldCronPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(cronjob.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEnqueuedAt(); ok {
		_spec.SetField(cronjob.FieldLastEnqueuedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnqueuedAtCleared() {
		_spec.ClearField(cronjob.FieldLastEnqueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cronjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cronjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CronJobUpdateOne is the builder for updating a single CronJob entity.
type CronJobUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CronJobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetStableID sets the "stable_id" field.
func (_u *CronJobUpdateOne) SetStableID(v string) *CronJobUpdateOne {
	_u.mutation.SetStableID(v)
	return _u
}

// SetNillableStableID sets the "stable_id" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableStableID(v *string) *CronJobUpdateOne {
	if v != nil {
		_u.SetStableID(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *CronJobUpdateOne) SetQueue(v string) *CronJobUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableQueue(v *string) *CronJobUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CronJobUpdateOne) SetName(v string) *CronJobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableName(v *string) *CronJobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CronJobUpdateOne) SetPayload(v map[string]interface{}) *CronJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCronPattern sets the "cron_pattern" field.
func (_u *CronJobUpdateOne) SetCronPattern(v string) *CronJobUpdateOne {
	_u.mutation.SetCronPattern(v)
	return _u
}

// SetNillableCronPattern sets the "cron_pattern" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableCronPattern(v *string) *CronJobUpdateOne {
	if v != nil {
		_u.SetCronPattern(*v)
	}
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *CronJobUpdateOne) SetNextRunAt(v time.Time) *CronJobUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableNextRunAt(v *time.Time) *CronJobUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (_u *CronJobUpdateOne) SetLastEnqueuedAt(v time.Time) *CronJobUpdateOne {
	_u.mutation.SetLastEnqueuedAt(v)
	return _u
}

// SetNillableLastEnqueuedAt sets the "last_enqueued_at" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableLastEnqueuedAt(v *time.Time) *CronJobUpdateOne {
	if v != nil {
		_u.SetLastEnqueuedAt(*v)
	}
	return _u
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (_u *CronJobUpdateOne) ClearLastEnqueuedAt() *CronJobUpdateOne {
	_u.mutation.ClearLastEnqueuedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CronJobUpdateOne) SetCreatedAt(v time.Time) *CronJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CronJobUpdateOne) SetNillableCreatedAt(v *time.Time) *CronJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CronJobUpdateOne) SetUpdatedAt(v time.Time) *CronJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CronJobMutation object of the builder.
func (_u *CronJobUpdateOne) Mutation() *CronJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the CronJobUpdate builder.
func (_u *CronJobUpdateOne) Where(ps ...predicate.CronJob) *CronJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CronJobUpdateOne) Select(field string, fields ...string) *CronJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CronJob entity.
func (_u *CronJobUpdateOne) Save(ctx context.Context) (*CronJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CronJobUpdateOne) SaveX(ctx context.Context) *CronJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CronJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CronJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CronJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cronjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CronJobUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CronJobUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CronJobUpdateOne) sqlSave(ctx context.Context) (_node *CronJob, err error) {
	_spec := sqlgraph.NewUpdateSpec(cronjob.Table, cronjob.Columns, sqlgraph.NewFieldSpec(cronjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CronJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cronjob.FieldID)
		for _, f := range fields {
			if !cronjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cronjob.FieldID {
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
	if value, ok := _u.mutation.StableID(); ok {
		_spec.SetField(cronjob.FieldStableID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(cronjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cronjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(cronjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CronPattern(); ok {
		_spec.SetField(cronjob.FieldCronPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(cronjob.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEnqueuedAt(); ok {
		_spec.SetField(cronjob.FieldLastEnqueuedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnqueuedAtCleared() {
		_spec.ClearField(cronjob.FieldLastEnqueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cronjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &CronJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cronjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
