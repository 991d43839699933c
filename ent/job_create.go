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
	"github.com/vidsage/vidsage/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *JobCreate) SetQueue(v string) *JobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetName sets the "name" field.
func (_c *JobCreate) SetName(v string) *JobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobCreate) SetPayload(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetState sets the "state" field.
func (_c *JobCreate) SetState(v job.State) *JobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *JobCreate) SetNillableState(v *job.State) *JobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetJobKey sets the "job_key" field.
func (_c *JobCreate) SetJobKey(v string) *JobCreate {
	_c.mutation.SetJobKey(v)
	return _c
}

// SetNillableJobKey sets the "job_key" field if the given value is not nil.
func (_c *JobCreate) SetNillableJobKey(v *string) *JobCreate {
	if v != nil {
		_c.SetJobKey(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *JobCreate) SetRunAt(v time.Time) *JobCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableRunAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetRunAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *JobCreate) SetAttempts(v int) *JobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *JobCreate) SetMaxAttempts(v int) *JobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_c *JobCreate) SetBackoffBaseMs(v int64) *JobCreate {
	_c.mutation.SetBackoffBaseMs(v)
	return _c
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_c *JobCreate) SetNillableBackoffBaseMs(v *int64) *JobCreate {
	if v != nil {
		_c.SetBackoffBaseMs(*v)
	}
	return _c
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (_c *JobCreate) SetRemoveOnComplete(v bool) *JobCreate {
	_c.mutation.SetRemoveOnComplete(v)
	return _c
}

// SetNillableRemoveOnComplete sets the "remove_on_complete" field if the given value is not nil.
func (_c *JobCreate) SetNillableRemoveOnComplete(v *bool) *JobCreate {
	if v != nil {
		_c.SetRemoveOnComplete(*v)
	}
	return _c
}

// SetStalledCount sets the "stalled_count" field.
func (_c *JobCreate) SetStalledCount(v int) *JobCreate {
	_c.mutation.SetStalledCount(v)
	return _c
}

// SetNillableStalledCount sets the "stalled_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableStalledCount(v *int) *JobCreate {
	if v != nil {
		_c.SetStalledCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *JobCreate) SetLastError(v string) *JobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastError(v *string) *JobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *JobCreate) SetClaimedBy(v string) *JobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableClaimedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *JobCreate) SetHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *JobCreate) SetFinishedAt(v time.Time) *JobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinishedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := job.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		v := job.DefaultRunAt()
		_c.mutation.SetRunAt(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := job.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := job.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.BackoffBaseMs(); !ok {
		v := job.DefaultBackoffBaseMs
		_c.mutation.SetBackoffBaseMs(v)
	}
	if _, ok := _c.mutation.RemoveOnComplete(); !ok {
		v := job.DefaultRemoveOnComplete
		_c.mutation.SetRemoveOnComplete(v)
	}
	if _, ok := _c.mutation.StalledCount(); !ok {
		v := job.DefaultStalledCount
		_c.mutation.SetStalledCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "Job.queue"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Job.name"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Job.payload"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Job.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "Job.run_at"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Job.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Job.max_attempts"`)}
	}
	if _, ok := _c.mutation.BackoffBaseMs(); !ok {
		return &ValidationError{Name: "backoff_base_ms", err: errors.New(`ent: missing required field "Job.backoff_base_ms"`)}
	}
	if _, ok := _c.mutation.RemoveOnComplete(); !ok {
		return &ValidationError{Name: "remove_on_complete", err: errors.New(`ent: missing required field "Job.remove_on_complete"`)}
	}
	if _, ok := _c.mutation.StalledCount(); !ok {
		return &ValidationError{Name: "stalled_count", err: errors.New(`ent: missing required field "Job.stalled_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(job.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.JobKey(); ok {
		_spec.SetField(job.FieldJobKey, field.TypeString, value)
		_node.JobKey = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(job.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.BackoffBaseMs(); ok {
		_spec.SetField(job.FieldBackoffBaseMs, field.TypeInt64, value)
		_node.BackoffBaseMs = value
	}
	if value, ok := _c.mutation.RemoveOnComplete(); ok {
		_spec.SetField(job.FieldRemoveOnComplete, field.TypeBool, value)
		_node.RemoveOnComplete = value
	}
	if value, ok := _c.mutation.StalledCount(); ok {
		_spec.SetField(job.FieldStalledCount, field.TypeInt, value)
		_node.StalledCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetPayload sets the "payload" field.
func (u *JobUpsert) SetPayload(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsert) UpdatePayload() *JobUpsert {
	u.SetExcluded(job.FieldPayload)
	return u
}

// SetState sets the "state" field.
func (u *JobUpsert) SetState(v job.State) *JobUpsert {
	u.Set(job.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *JobUpsert) UpdateState() *JobUpsert {
	u.SetExcluded(job.FieldState)
	return u
}

// SetJobKey sets the "job_key" field.
func (u *JobUpsert) SetJobKey(v string) *JobUpsert {
	u.Set(job.FieldJobKey, v)
	return u
}

// UpdateJobKey sets the "job_key" field to the value that was provided on create.
func (u *JobUpsert) UpdateJobKey() *JobUpsert {
	u.SetExcluded(job.FieldJobKey)
	return u
}

// ClearJobKey clears the value of the "job_key" field.
func (u *JobUpsert) ClearJobKey() *JobUpsert {
	u.SetNull(job.FieldJobKey)
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsert) SetPriority(v int) *JobUpsert {
	u.Set(job.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsert) UpdatePriority() *JobUpsert {
	u.SetExcluded(job.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsert) AddPriority(v int) *JobUpsert {
	u.Add(job.FieldPriority, v)
	return u
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsert) SetRunAt(v time.Time) *JobUpsert {
	u.Set(job.FieldRunAt, v)
	return u
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateRunAt() *JobUpsert {
	u.SetExcluded(job.FieldRunAt)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsert) SetAttempts(v int) *JobUpsert {
	u.Set(job.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateAttempts() *JobUpsert {
	u.SetExcluded(job.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsert) AddAttempts(v int) *JobUpsert {
	u.Add(job.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsert) SetMaxAttempts(v int) *JobUpsert {
	u.Set(job.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateMaxAttempts() *JobUpsert {
	u.SetExcluded(job.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsert) AddMaxAttempts(v int) *JobUpsert {
	u.Add(job.FieldMaxAttempts, v)
	return u
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (u *JobUpsert) SetBackoffBaseMs(v int64) *JobUpsert {
	u.Set(job.FieldBackoffBaseMs, v)
	return u
}

// UpdateBackoffBaseMs sets the "backoff_base_ms" field to the value that was provided on create.
func (u *JobUpsert) UpdateBackoffBaseMs() *JobUpsert {
	u.SetExcluded(job.FieldBackoffBaseMs)
	return u
}

// AddBackoffBaseMs adds v to the "backoff_base_ms" field.
func (u *JobUpsert) AddBackoffBaseMs(v int64) *JobUpsert {
	u.Add(job.FieldBackoffBaseMs, v)
	return u
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (u *JobUpsert) SetRemoveOnComplete(v bool) *JobUpsert {
	u.Set(job.FieldRemoveOnComplete, v)
	return u
}

// UpdateRemoveOnComplete sets the "remove_on_complete" field to the value that was provided on create.
func (u *JobUpsert) UpdateRemoveOnComplete() *JobUpsert {
	u.SetExcluded(job.FieldRemoveOnComplete)
	return u
}

// SetStalledCount sets the "stalled_count" field.
func (u *JobUpsert) SetStalledCount(v int) *JobUpsert {
	u.Set(job.FieldStalledCount, v)
	return u
}

// UpdateStalledCount sets the "stalled_count" field to the value that was provided on create.
func (u *JobUpsert) UpdateStalledCount() *JobUpsert {
	u.SetExcluded(job.FieldStalledCount)
	return u
}

// AddStalledCount adds v to the "stalled_count" field.
func (u *JobUpsert) AddStalledCount(v int) *JobUpsert {
	u.Add(job.FieldStalledCount, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *JobUpsert) SetLastError(v string) *JobUpsert {
	u.Set(job.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastError() *JobUpsert {
	u.SetExcluded(job.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsert) ClearLastError() *JobUpsert {
	u.SetNull(job.FieldLastError)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *JobUpsert) SetClaimedBy(v string) *JobUpsert {
	u.Set(job.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *JobUpsert) UpdateClaimedBy() *JobUpsert {
	u.SetExcluded(job.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *JobUpsert) ClearClaimedBy() *JobUpsert {
	u.SetNull(job.FieldClaimedBy)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsert) SetHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsert) ClearHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsert) SetStartedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartedAt() *JobUpsert {
	u.SetExcluded(job.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsert) ClearStartedAt() *JobUpsert {
	u.SetNull(job.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsert) SetFinishedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateFinishedAt() *JobUpsert {
	u.SetExcluded(job.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsert) ClearFinishedAt() *JobUpsert {
	u.SetNull(job.FieldFinishedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsert) SetCreatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCreatedAt() *JobUpsert {
	u.SetExcluded(job.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(job.FieldQueue)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(job.FieldName)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *JobUpsertOne) SetPayload(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePayload() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePayload()
	})
}

// SetState sets the "state" field.
func (u *JobUpsertOne) SetState(v job.State) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateState() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateState()
	})
}

// SetJobKey sets the "job_key" field.
func (u *JobUpsertOne) SetJobKey(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetJobKey(v)
	})
}

// UpdateJobKey sets the "job_key" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateJobKey() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobKey()
	})
}

// ClearJobKey clears the value of the "job_key" field.
func (u *JobUpsertOne) ClearJobKey() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearJobKey()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertOne) SetPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertOne) AddPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePriority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsertOne) SetRunAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRunAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRunAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsertOne) SetAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsertOne) AddAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertOne) SetMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertOne) AddMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateMaxAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (u *JobUpsertOne) SetBackoffBaseMs(v int64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetBackoffBaseMs(v)
	})
}

// AddBackoffBaseMs adds v to the "backoff_base_ms" field.
func (u *JobUpsertOne) AddBackoffBaseMs(v int64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddBackoffBaseMs(v)
	})
}

// UpdateBackoffBaseMs sets the "backoff_base_ms" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateBackoffBaseMs() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBackoffBaseMs()
	})
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (u *JobUpsertOne) SetRemoveOnComplete(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRemoveOnComplete(v)
	})
}

// UpdateRemoveOnComplete sets the "remove_on_complete" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRemoveOnComplete() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRemoveOnComplete()
	})
}

// SetStalledCount sets the "stalled_count" field.
func (u *JobUpsertOne) SetStalledCount(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStalledCount(v)
	})
}

// AddStalledCount adds v to the "stalled_count" field.
func (u *JobUpsertOne) AddStalledCount(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddStalledCount(v)
	})
}

// UpdateStalledCount sets the "stalled_count" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStalledCount() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStalledCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobUpsertOne) SetLastError(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsertOne) ClearLastError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastError()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *JobUpsertOne) SetClaimedBy(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateClaimedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *JobUpsertOne) ClearClaimedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsertOne) SetHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsertOne) ClearHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertOne) SetStartedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertOne) ClearStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertOne) SetFinishedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertOne) ClearFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertOne) SetCreatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCreatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(job.FieldQueue)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(job.FieldName)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *JobUpsertBulk) SetPayload(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePayload() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePayload()
	})
}

// SetState sets the "state" field.
func (u *JobUpsertBulk) SetState(v job.State) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateState() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateState()
	})
}

// SetJobKey sets the "job_key" field.
func (u *JobUpsertBulk) SetJobKey(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetJobKey(v)
	})
}

// UpdateJobKey sets the "job_key" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateJobKey() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobKey()
	})
}

// ClearJobKey clears the value of the "job_key" field.
func (u *JobUpsertBulk) ClearJobKey() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearJobKey()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertBulk) SetPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertBulk) AddPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePriority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsertBulk) SetRunAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRunAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRunAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsertBulk) SetAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsertBulk) AddAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertBulk) SetMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertBulk) AddMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateMaxAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (u *JobUpsertBulk) SetBackoffBaseMs(v int64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetBackoffBaseMs(v)
	})
}

// AddBackoffBaseMs adds v to the "backoff_base_ms" field.
func (u *JobUpsertBulk) AddBackoffBaseMs(v int64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddBackoffBaseMs(v)
	})
}

// UpdateBackoffBaseMs sets the "backoff_base_ms" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateBackoffBaseMs() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBackoffBaseMs()
	})
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (u *JobUpsertBulk) SetRemoveOnComplete(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRemoveOnComplete(v)
	})
}

// UpdateRemoveOnComplete sets the "remove_on_complete" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRemoveOnComplete() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRemoveOnComplete()
	})
}

// SetStalledCount sets the "stalled_count" field.
func (u *JobUpsertBulk) SetStalledCount(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStalledCount(v)
	})
}

// AddStalledCount adds v to the "stalled_count" field.
func (u *JobUpsertBulk) AddStalledCount(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddStalledCount(v)
	})
}

// UpdateStalledCount sets the "stalled_count" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStalledCount() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStalledCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobUpsertBulk) SetLastError(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsertBulk) ClearLastError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastError()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *JobUpsertBulk) SetClaimedBy(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateClaimedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *JobUpsertBulk) ClearClaimedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsertBulk) SetHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsertBulk) ClearHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertBulk) SetStartedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertBulk) ClearStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertBulk) SetFinishedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertBulk) ClearFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertBulk) SetCreatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCreatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
