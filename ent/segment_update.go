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
	"github.com/vidsage/vidsage/ent/segment"
)

// SegmentUpdate is the builder for updating Segment entities.
type SegmentUpdate struct {
	config
	hooks     []Hook
	mutation  *SegmentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdate) Where(ps ...predicate.Segment) *SegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *SegmentUpdate) SetState(v segment.State) *SegmentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableState(v *segment.State) *SegmentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAnalysisResult sets the "analysis_result" field.
func (_u *SegmentUpdate) SetAnalysisResult(v map[string]interface{}) *SegmentUpdate {
	_u.mutation.SetAnalysisResult(v)
	return _u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (_u *SegmentUpdate) ClearAnalysisResult() *SegmentUpdate {
	_u.mutation.ClearAnalysisResult()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *SegmentUpdate) SetModelUsed(v string) *SegmentUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableModelUsed(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *SegmentUpdate) ClearModelUsed() *SegmentUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *SegmentUpdate) SetProcessingMs(v int64) *SegmentUpdate {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableProcessingMs(v *int64) *SegmentUpdate {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *SegmentUpdate) AddProcessingMs(v int64) *SegmentUpdate {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *SegmentUpdate) ClearProcessingMs() *SegmentUpdate {
	_u.mutation.ClearProcessingMs()
	return _u
}

// SetError sets the "error" field.
func (_u *SegmentUpdate) SetError(v string) *SegmentUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableError(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SegmentUpdate) ClearError() *SegmentUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SegmentUpdate) SetRetryCount(v int) *SegmentUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableRetryCount(v *int) *SegmentUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SegmentUpdate) AddRetryCount(v int) *SegmentUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SegmentUpdate) SetPromptVersion(v string) *SegmentUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillablePromptVersion(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SegmentUpdate) ClearPromptVersion() *SegmentUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SegmentUpdate) SetCreatedAt(v time.Time) *SegmentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableCreatedAt(v *time.Time) *SegmentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SegmentUpdate) SetUpdatedAt(v time.Time) *SegmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdate) Mutation() *SegmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SegmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SegmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := segment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := segment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Segment.state": %w`, err)}
		}
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.content"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SegmentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SegmentUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(segment.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisResult(); ok {
		_spec.SetField(segment.FieldAnalysisResult, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisResultCleared() {
		_spec.ClearField(segment.FieldAnalysisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(segment.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(segment.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(segment.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(segment.FieldProcessingMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(segment.FieldProcessingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(segment.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(segment.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(segment.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(segment.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(segment.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(segment.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(segment.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(segment.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SegmentUpdateOne is the builder for updating a single Segment entity.
type SegmentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SegmentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetState sets the "state" field.
func (_u *SegmentUpdateOne) SetState(v segment.State) *SegmentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableState(v *segment.State) *SegmentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAnalysisResult sets the "analysis_result" field.
func (_u *SegmentUpdateOne) SetAnalysisResult(v map[string]interface{}) *SegmentUpdateOne {
	_u.mutation.SetAnalysisResult(v)
	return _u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (_u *SegmentUpdateOne) ClearAnalysisResult() *SegmentUpdateOne {
	_u.mutation.ClearAnalysisResult()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *SegmentUpdateOne) SetModelUsed(v string) *SegmentUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableModelUsed(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *SegmentUpdateOne) ClearModelUsed() *SegmentUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *SegmentUpdateOne) SetProcessingMs(v int64) *SegmentUpdateOne {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableProcessingMs(v *int64) *SegmentUpdateOne {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *SegmentUpdateOne) AddProcessingMs(v int64) *SegmentUpdateOne {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *SegmentUpdateOne) ClearProcessingMs() *SegmentUpdateOne {
	_u.mutation.ClearProcessingMs()
	return _u
}

// SetError sets the "error" field.
func (_u *SegmentUpdateOne) SetError(v string) *SegmentUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableError(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SegmentUpdateOne) ClearError() *SegmentUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SegmentUpdateOne) SetRetryCount(v int) *SegmentUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableRetryCount(v *int) *SegmentUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SegmentUpdateOne) AddRetryCount(v int) *SegmentUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SegmentUpdateOne) SetPromptVersion(v string) *SegmentUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillablePromptVersion(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SegmentUpdateOne) ClearPromptVersion() *SegmentUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SegmentUpdateOne) SetCreatedAt(v time.Time) *SegmentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableCreatedAt(v *time.Time) *SegmentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SegmentUpdateOne) SetUpdatedAt(v time.Time) *SegmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdateOne) Mutation() *SegmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdateOne) Where(ps ...predicate.Segment) *SegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SegmentUpdateOne) Select(field string, fields ...string) *SegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Segment entity.
func (_u *SegmentUpdateOne) Save(ctx context.Context) (*Segment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdateOne) SaveX(ctx context.Context) *Segment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SegmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := segment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := segment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Segment.state": %w`, err)}
		}
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.content"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SegmentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SegmentUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SegmentUpdateOne) sqlSave(ctx context.Context) (_node *Segment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Segment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, segment.FieldID)
		for _, f := range fields {
			if !segment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != segment.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(segment.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisResult(); ok {
		_spec.SetField(segment.FieldAnalysisResult, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisResultCleared() {
		_spec.ClearField(segment.FieldAnalysisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(segment.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(segment.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(segment.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(segment.FieldProcessingMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(segment.FieldProcessingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(segment.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(segment.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(segment.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(segment.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(segment.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(segment.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(segment.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(segment.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Segment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
