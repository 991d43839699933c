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
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/segment"
)

// SegmentCreate is the builder for creating a Segment entity.
type SegmentCreate struct {
	config
	mutation *SegmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContentID sets the "content_id" field.
func (_c *SegmentCreate) SetContentID(v string) *SegmentCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetIndex sets the "index" field.
func (_c *SegmentCreate) SetIndex(v int) *SegmentCreate {
	_c.mutation.SetIndex(v)
	return _c
}

// SetStartSec sets the "start_sec" field.
func (_c *SegmentCreate) SetStartSec(v int) *SegmentCreate {
	_c.mutation.SetStartSec(v)
	return _c
}

// SetEndSec sets the "end_sec" field.
func (_c *SegmentCreate) SetEndSec(v int) *SegmentCreate {
	_c.mutation.SetEndSec(v)
	return _c
}

// SetDurationSec sets the "duration_sec" field.
func (_c *SegmentCreate) SetDurationSec(v int) *SegmentCreate {
	_c.mutation.SetDurationSec(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SegmentCreate) SetState(v segment.State) *SegmentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableState(v *segment.State) *SegmentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAnalysisResult sets the "analysis_result" field.
func (_c *SegmentCreate) SetAnalysisResult(v map[string]interface{}) *SegmentCreate {
	_c.mutation.SetAnalysisResult(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *SegmentCreate) SetModelUsed(v string) *SegmentCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableModelUsed(v *string) *SegmentCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetProcessingMs sets the "processing_ms" field.
func (_c *SegmentCreate) SetProcessingMs(v int64) *SegmentCreate {
	_c.mutation.SetProcessingMs(v)
	return _c
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableProcessingMs(v *int64) *SegmentCreate {
	if v != nil {
		_c.SetProcessingMs(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *SegmentCreate) SetError(v string) *SegmentCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableError(v *string) *SegmentCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SegmentCreate) SetRetryCount(v int) *SegmentCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableRetryCount(v *int) *SegmentCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *SegmentCreate) SetPromptVersion(v string) *SegmentCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *SegmentCreate) SetNillablePromptVersion(v *string) *SegmentCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SegmentCreate) SetCreatedAt(v time.Time) *SegmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableCreatedAt(v *time.Time) *SegmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SegmentCreate) SetUpdatedAt(v time.Time) *SegmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableUpdatedAt(v *time.Time) *SegmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SegmentCreate) SetID(v string) *SegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContent sets the "content" edge to the Content entity.
func (_c *SegmentCreate) SetContent(v *Content) *SegmentCreate {
	return _c.SetContentID(v.ID)
}

// Mutation returns the SegmentMutation object of the builder.
func (_c *SegmentCreate) Mutation() *SegmentMutation {
	return _c.mutation
}

// Save creates the Segment in the database.
func (_c *SegmentCreate) Save(ctx context.Context) (*Segment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SegmentCreate) SaveX(ctx context.Context) *Segment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SegmentCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := segment.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := segment.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := segment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := segment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SegmentCreate) check() error {
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "Segment.content_id"`)}
	}
	if _, ok := _c.mutation.Index(); !ok {
		return &ValidationError{Name: "index", err: errors.New(`ent: missing required field "Segment.index"`)}
	}
	if _, ok := _c.mutation.StartSec(); !ok {
		return &ValidationError{Name: "start_sec", err: errors.New(`ent: missing required field "Segment.start_sec"`)}
	}
	if _, ok := _c.mutation.EndSec(); !ok {
		return &ValidationError{Name: "end_sec", err: errors.New(`ent: missing required field "Segment.end_sec"`)}
	}
	if _, ok := _c.mutation.DurationSec(); !ok {
		return &ValidationError{Name: "duration_sec", err: errors.New(`ent: missing required field "Segment.duration_sec"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Segment.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := segment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Segment.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Segment.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Segment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Segment.updated_at"`)}
	}
	if len(_c.mutation.ContentIDs()) == 0 {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required edge "Segment.content"`)}
	}
	return nil
}

func (_c *SegmentCreate) sqlSave(ctx context.Context) (*Segment, error) {
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
			return nil, fmt.Errorf("unexpected Segment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SegmentCreate) createSpec() (*Segment, *sqlgraph.CreateSpec) {
	var (
		_node = &Segment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(segment.Table, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Index(); ok {
		_spec.SetField(segment.FieldIndex, field.TypeInt, value)
		_node.Index = value
	}
	if value, ok := _c.mutation.StartSec(); ok {
		_spec.SetField(segment.FieldStartSec, field.TypeInt, value)
		_node.StartSec = value
	}
	if value, ok := _c.mutation.EndSec(); ok {
		_spec.SetField(segment.FieldEndSec, field.TypeInt, value)
		_node.EndSec = value
	}
	if value, ok := _c.mutation.DurationSec(); ok {
		_spec.SetField(segment.FieldDurationSec, field.TypeInt, value)
		_node.DurationSec = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(segment.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.AnalysisResult(); ok {
		_spec.SetField(segment.FieldAnalysisResult, field.TypeJSON, value)
		_node.AnalysisResult = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(segment.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = &value
	}
	if value, ok := _c.mutation.ProcessingMs(); ok {
		_spec.SetField(segment.FieldProcessingMs, field.TypeInt64, value)
		_node.ProcessingMs = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(segment.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(segment.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(segment.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(segment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(segment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   segment.ContentTable,
			Columns: []string{segment.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Segment.Create().
//		SetContentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SegmentUpsert) {
//			SetContentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SegmentCreate) OnConflict(opts ...sql.ConflictOption) *SegmentUpsertOne {
	_c.conflict = opts
	return &SegmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Segment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SegmentCreate) OnConflictColumns(columns ...string) *SegmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SegmentUpsertOne{
		create: _c,
	}
}

type (
	// SegmentUpsertOne is the builder for "upsert"-ing
	//  one Segment node.
	SegmentUpsertOne struct {
		create *SegmentCreate
	}

	// SegmentUpsert is the "OnConflict" setter.
	SegmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *SegmentUpsert) SetState(v segment.State) *SegmentUpsert {
	u.Set(segment.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateState() *SegmentUpsert {
	u.SetExcluded(segment.FieldState)
	return u
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *SegmentUpsert) SetAnalysisResult(v map[string]interface{}) *SegmentUpsert {
	u.Set(segment.FieldAnalysisResult, v)
	return u
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateAnalysisResult() *SegmentUpsert {
	u.SetExcluded(segment.FieldAnalysisResult)
	return u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *SegmentUpsert) ClearAnalysisResult() *SegmentUpsert {
	u.SetNull(segment.FieldAnalysisResult)
	return u
}

// SetModelUsed sets the "model_used" field.
func (u *SegmentUpsert) SetModelUsed(v string) *SegmentUpsert {
	u.Set(segment.FieldModelUsed, v)
	return u
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateModelUsed() *SegmentUpsert {
	u.SetExcluded(segment.FieldModelUsed)
	return u
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *SegmentUpsert) ClearModelUsed() *SegmentUpsert {
	u.SetNull(segment.FieldModelUsed)
	return u
}

// SetProcessingMs sets the "processing_ms" field.
func (u *SegmentUpsert) SetProcessingMs(v int64) *SegmentUpsert {
	u.Set(segment.FieldProcessingMs, v)
	return u
}

// UpdateProcessingMs sets the "processing_ms" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateProcessingMs() *SegmentUpsert {
	u.SetExcluded(segment.FieldProcessingMs)
	return u
}

// AddProcessingMs adds v to the "processing_ms" field.
func (u *SegmentUpsert) AddProcessingMs(v int64) *SegmentUpsert {
	u.Add(segment.FieldProcessingMs, v)
	return u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (u *SegmentUpsert) ClearProcessingMs() *SegmentUpsert {
	u.SetNull(segment.FieldProcessingMs)
	return u
}

// SetError sets the "error" field.
func (u *SegmentUpsert) SetError(v string) *SegmentUpsert {
	u.Set(segment.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateError() *SegmentUpsert {
	u.SetExcluded(segment.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *SegmentUpsert) ClearError() *SegmentUpsert {
	u.SetNull(segment.FieldError)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *SegmentUpsert) SetRetryCount(v int) *SegmentUpsert {
	u.Set(segment.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateRetryCount() *SegmentUpsert {
	u.SetExcluded(segment.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SegmentUpsert) AddRetryCount(v int) *SegmentUpsert {
	u.Add(segment.FieldRetryCount, v)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SegmentUpsert) SetPromptVersion(v string) *SegmentUpsert {
	u.Set(segment.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SegmentUpsert) UpdatePromptVersion() *SegmentUpsert {
	u.SetExcluded(segment.FieldPromptVersion)
	return u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SegmentUpsert) ClearPromptVersion() *SegmentUpsert {
	u.SetNull(segment.FieldPromptVersion)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SegmentUpsert) SetCreatedAt(v time.Time) *SegmentUpsert {
	u.Set(segment.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateCreatedAt() *SegmentUpsert {
	u.SetExcluded(segment.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SegmentUpsert) SetUpdatedAt(v time.Time) *SegmentUpsert {
	u.Set(segment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SegmentUpsert) UpdateUpdatedAt() *SegmentUpsert {
	u.SetExcluded(segment.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Segment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(segment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SegmentUpsertOne) UpdateNewValues() *SegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(segment.FieldID)
		}
		if _, exists := u.create.mutation.ContentID(); exists {
			s.SetIgnore(segment.FieldContentID)
		}
		if _, exists := u.create.mutation.Index(); exists {
			s.SetIgnore(segment.FieldIndex)
		}
		if _, exists := u.create.mutation.StartSec(); exists {
			s.SetIgnore(segment.FieldStartSec)
		}
		if _, exists := u.create.mutation.EndSec(); exists {
			s.SetIgnore(segment.FieldEndSec)
		}
		if _, exists := u.create.mutation.DurationSec(); exists {
			s.SetIgnore(segment.FieldDurationSec)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Segment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SegmentUpsertOne) Ignore() *SegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SegmentUpsertOne) DoNothing() *SegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SegmentCreate.OnConflict
// documentation for more info.
func (u *SegmentUpsertOne) Update(set func(*SegmentUpsert)) *SegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SegmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *SegmentUpsertOne) SetState(v segment.State) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateState() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateState()
	})
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *SegmentUpsertOne) SetAnalysisResult(v map[string]interface{}) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetAnalysisResult(v)
	})
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateAnalysisResult() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateAnalysisResult()
	})
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *SegmentUpsertOne) ClearAnalysisResult() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearAnalysisResult()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *SegmentUpsertOne) SetModelUsed(v string) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateModelUsed() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *SegmentUpsertOne) ClearModelUsed() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearModelUsed()
	})
}

// SetProcessingMs sets the "processing_ms" field.
func (u *SegmentUpsertOne) SetProcessingMs(v int64) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetProcessingMs(v)
	})
}

// AddProcessingMs adds v to the "processing_ms" field.
func (u *SegmentUpsertOne) AddProcessingMs(v int64) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.AddProcessingMs(v)
	})
}

// UpdateProcessingMs sets the "processing_ms" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateProcessingMs() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateProcessingMs()
	})
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (u *SegmentUpsertOne) ClearProcessingMs() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearProcessingMs()
	})
}

// SetError sets the "error" field.
func (u *SegmentUpsertOne) SetError(v string) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateError() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SegmentUpsertOne) ClearError() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearError()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SegmentUpsertOne) SetRetryCount(v int) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SegmentUpsertOne) AddRetryCount(v int) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateRetryCount() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateRetryCount()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SegmentUpsertOne) SetPromptVersion(v string) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdatePromptVersion() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SegmentUpsertOne) ClearPromptVersion() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearPromptVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SegmentUpsertOne) SetCreatedAt(v time.Time) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateCreatedAt() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SegmentUpsertOne) SetUpdatedAt(v time.Time) *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SegmentUpsertOne) UpdateUpdatedAt() *SegmentUpsertOne {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SegmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SegmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SegmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SegmentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SegmentUpsertOne.ID is not supported by MySQL driver. Use SegmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SegmentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SegmentCreateBulk is the builder for creating many Segment entities in bulk.
type SegmentCreateBulk struct {
	config
	err      error
	builders []*SegmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Segment entities in the database.
func (_c *SegmentCreateBulk) Save(ctx context.Context) ([]*Segment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Segment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SegmentMutation)
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
func (_c *SegmentCreateBulk) SaveX(ctx context.Context) []*Segment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Segment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SegmentUpsert) {
//			SetContentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SegmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *SegmentUpsertBulk {
	_c.conflict = opts
	return &SegmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Segment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SegmentCreateBulk) OnConflictColumns(columns ...string) *SegmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SegmentUpsertBulk{
		create: _c,
	}
}

// SegmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Segment nodes.
type SegmentUpsertBulk struct {
	create *SegmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Segment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(segment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SegmentUpsertBulk) UpdateNewValues() *SegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(segment.FieldID)
			}
			if _, exists := b.mutation.ContentID(); exists {
				s.SetIgnore(segment.FieldContentID)
			}
			if _, exists := b.mutation.Index(); exists {
				s.SetIgnore(segment.FieldIndex)
			}
			if _, exists := b.mutation.StartSec(); exists {
				s.SetIgnore(segment.FieldStartSec)
			}
			if _, exists := b.mutation.EndSec(); exists {
				s.SetIgnore(segment.FieldEndSec)
			}
			if _, exists := b.mutation.DurationSec(); exists {
				s.SetIgnore(segment.FieldDurationSec)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Segment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SegmentUpsertBulk) Ignore() *SegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SegmentUpsertBulk) DoNothing() *SegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SegmentCreateBulk.OnConflict
// documentation for more info.
func (u *SegmentUpsertBulk) Update(set func(*SegmentUpsert)) *SegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SegmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *SegmentUpsertBulk) SetState(v segment.State) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateState() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateState()
	})
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *SegmentUpsertBulk) SetAnalysisResult(v map[string]interface{}) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetAnalysisResult(v)
	})
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateAnalysisResult() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateAnalysisResult()
	})
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *SegmentUpsertBulk) ClearAnalysisResult() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearAnalysisResult()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *SegmentUpsertBulk) SetModelUsed(v string) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateModelUsed() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *SegmentUpsertBulk) ClearModelUsed() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearModelUsed()
	})
}

// SetProcessingMs sets the "processing_ms" field.
func (u *SegmentUpsertBulk) SetProcessingMs(v int64) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetProcessingMs(v)
	})
}

// AddProcessingMs adds v to the "processing_ms" field.
func (u *SegmentUpsertBulk) AddProcessingMs(v int64) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.AddProcessingMs(v)
	})
}

// UpdateProcessingMs sets the "processing_ms" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateProcessingMs() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateProcessingMs()
	})
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (u *SegmentUpsertBulk) ClearProcessingMs() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearProcessingMs()
	})
}

// SetError sets the "error" field.
func (u *SegmentUpsertBulk) SetError(v string) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateError() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SegmentUpsertBulk) ClearError() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearError()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SegmentUpsertBulk) SetRetryCount(v int) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SegmentUpsertBulk) AddRetryCount(v int) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateRetryCount() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateRetryCount()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SegmentUpsertBulk) SetPromptVersion(v string) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdatePromptVersion() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SegmentUpsertBulk) ClearPromptVersion() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.ClearPromptVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SegmentUpsertBulk) SetCreatedAt(v time.Time) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateCreatedAt() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SegmentUpsertBulk) SetUpdatedAt(v time.Time) *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SegmentUpsertBulk) UpdateUpdatedAt() *SegmentUpsertBulk {
	return u.Update(func(s *SegmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SegmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SegmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SegmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SegmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
