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
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks     []Hook
	mutation  *JobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v job.State) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *job.State) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetJobKey sets the "job_key" field.
func (_u *JobUpdate) SetJobKey(v string) *JobUpdate {
	_u.mutation.SetJobKey(v)
	return _u
}

// SetNillableJobKey sets the "job_key" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobKey(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobKey(*v)
	}
	return _u
}

// ClearJobKey clears the value of the "job_key" field.
func (_u *JobUpdate) ClearJobKey() *JobUpdate {
	_u.mutation.ClearJobKey()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v int) *JobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *int) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdate) AddPriority(v int) *JobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *JobUpdate) SetRunAt(v time.Time) *JobUpdate {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRunAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdate) SetAttempts(v int) *JobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdate) AddAttempts(v int) *JobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdate) SetMaxAttempts(v int) *JobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdate) AddMaxAttempts(v int) *JobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_u *JobUpdate) SetBackoffBaseMs(v int64) *JobUpdate {
	_u.mutation.ResetBackoffBaseMs()
	_u.mutation.SetBackoffBaseMs(v)
	return _u
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_u *JobUpdate) SetNillableBackoffBaseMs(v *int64) *JobUpdate {
	if v != nil {
		_u.SetBackoffBaseMs(*v)
	}
	return _u
}

// AddBackoffBaseMs adds value to the "backoff_base_ms" field.
func (_u *JobUpdate) AddBackoffBaseMs(v int64) *JobUpdate {
	_u.mutation.AddBackoffBaseMs(v)
	return _u
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (_u *JobUpdate) SetRemoveOnComplete(v bool) *JobUpdate {
	_u.mutation.SetRemoveOnComplete(v)
	return _u
}

// SetNillableRemoveOnComplete sets the "remove_on_complete" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRemoveOnComplete(v *bool) *JobUpdate {
	if v != nil {
		_u.SetRemoveOnComplete(*v)
	}
	return _u
}

// SetStalledCount sets the "stalled_count" field.
func (_u *JobUpdate) SetStalledCount(v int) *JobUpdate {
	_u.mutation.ResetStalledCount()
	_u.mutation.SetStalledCount(v)
	return _u
}

// SetNillableStalledCount sets the "stalled_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStalledCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetStalledCount(*v)
	}
	return _u
}

// AddStalledCount adds value to the "stalled_count" field.
func (_u *JobUpdate) AddStalledCount(v int) *JobUpdate {
	_u.mutation.AddStalledCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdate) SetLastError(v string) *JobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastError(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdate) ClearLastError() *JobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdate) SetClaimedBy(v string) *JobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClaimedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdate) ClearClaimedBy() *JobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdate) SetHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdate) ClearHeartbeatAt() *JobUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdate) SetFinishedAt(v time.Time) *JobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinishedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdate) ClearFinishedAt() *JobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *JobUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *JobUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobKey(); ok {
		_spec.SetField(job.FieldJobKey, field.TypeString, value)
	}
	if _u.mutation.JobKeyCleared() {
		_spec.ClearField(job.FieldJobKey, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(job.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseMs(); ok {
		_spec.SetField(job.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseMs(); ok {
		_spec.AddField(job.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemoveOnComplete(); ok {
		_spec.SetField(job.FieldRemoveOnComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StalledCount(); ok {
		_spec.SetField(job.FieldStalledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStalledCount(); ok {
		_spec.AddField(job.FieldStalledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *JobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v job.State) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *job.State) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetJobKey sets the "job_key" field.
func (_u *JobUpdateOne) SetJobKey(v string) *JobUpdateOne {
	_u.mutation.SetJobKey(v)
	return _u
}

// SetNillableJobKey sets the "job_key" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobKey(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobKey(*v)
	}
	return _u
}

// ClearJobKey clears the value of the "job_key" field.
func (_u *JobUpdateOne) ClearJobKey() *JobUpdateOne {
	_u.mutation.ClearJobKey()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v int) *JobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdateOne) AddPriority(v int) *JobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *JobUpdateOne) SetRunAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRunAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdateOne) SetAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdateOne) AddAttempts(v int) *JobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdateOne) SetMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdateOne) AddMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_u *JobUpdateOne) SetBackoffBaseMs(v int64) *JobUpdateOne {
	_u.mutation.ResetBackoffBaseMs()
	_u.mutation.SetBackoffBaseMs(v)
	return _u
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableBackoffBaseMs(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetBackoffBaseMs(*v)
	}
	return _u
}

// AddBackoffBaseMs adds value to the "backoff_base_ms" field.
func (_u *JobUpdateOne) AddBackoffBaseMs(v int64) *JobUpdateOne {
	_u.mutation.AddBackoffBaseMs(v)
	return _u
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (_u *JobUpdateOne) SetRemoveOnComplete(v bool) *JobUpdateOne {
	_u.mutation.SetRemoveOnComplete(v)
	return _u
}

// SetNillableRemoveOnComplete sets the "remove_on_complete" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRemoveOnComplete(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetRemoveOnComplete(*v)
	}
	return _u
}

// SetStalledCount sets the "stalled_count" field.
func (_u *JobUpdateOne) SetStalledCount(v int) *JobUpdateOne {
	_u.mutation.ResetStalledCount()
	_u.mutation.SetStalledCount(v)
	return _u
}

// SetNillableStalledCount sets the "stalled_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStalledCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetStalledCount(*v)
	}
	return _u
}

// AddStalledCount adds value to the "stalled_count" field.
func (_u *JobUpdateOne) AddStalledCount(v int) *JobUpdateOne {
	_u.mutation.AddStalledCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdateOne) SetLastError(v string) *JobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdateOne) ClearLastError() *JobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdateOne) SetClaimedBy(v string) *JobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClaimedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdateOne) ClearClaimedBy() *JobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdateOne) SetHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdateOne) ClearHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdateOne) SetFinishedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinishedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdateOne) ClearFinishedAt() *JobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *JobUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *JobUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobKey(); ok {
		_spec.SetField(job.FieldJobKey, field.TypeString, value)
	}
	if _u.mutation.JobKeyCleared() {
		_spec.ClearField(job.FieldJobKey, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(job.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseMs(); ok {
		_spec.SetField(job.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseMs(); ok {
		_spec.AddField(job.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemoveOnComplete(); ok {
		_spec.SetField(job.FieldRemoveOnComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StalledCount(); ok {
		_spec.SetField(job.FieldStalledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStalledCount(); ok {
		_spec.AddField(job.FieldStalledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
