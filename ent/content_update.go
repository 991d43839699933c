// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/predicate"
	"github.com/vidsage/vidsage/ent/segment"
)

// ContentUpdate is the builder for updating Content entities.
type ContentUpdate struct {
	config
	hooks     []Hook
	mutation  *ContentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdate) Where(ps ...predicate.Content) *ContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentUpdate) SetTitle(v string) *ContentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableTitle(v *string) *ContentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentUpdate) SetDescription(v string) *ContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableDescription(v *string) *ContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentUpdate) ClearDescription() *ContentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ContentUpdate) SetPublishedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ContentUpdate) SetNillablePublishedAt(v *time.Time) *ContentUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ContentUpdate) ClearPublishedAt() *ContentUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *ContentUpdate) SetDurationSec(v int) *ContentUpdate {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableDurationSec(v *int) *ContentUpdate {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *ContentUpdate) AddDurationSec(v int) *ContentUpdate {
	_u.mutation.AddDurationSec(v)
	return _u
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (_u *ContentUpdate) ClearDurationSec() *ContentUpdate {
	_u.mutation.ClearDurationSec()
	return _u
}

// SetViewCount sets the "view_count" field.
func (_u *ContentUpdate) SetViewCount(v int64) *ContentUpdate {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableViewCount(v *int64) *ContentUpdate {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *ContentUpdate) AddViewCount(v int64) *ContentUpdate {
	_u.mutation.AddViewCount(v)
	return _u
}

// ClearViewCount clears the value of the "view_count" field.
func (_u *ContentUpdate) ClearViewCount() *ContentUpdate {
	_u.mutation.ClearViewCount()
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *ContentUpdate) SetThumbnail(v string) *ContentUpdate {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableThumbnail(v *string) *ContentUpdate {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *ContentUpdate) ClearThumbnail() *ContentUpdate {
	_u.mutation.ClearThumbnail()
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *ContentUpdate) SetCanonicalURL(v string) *ContentUpdate {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableCanonicalURL(v *string) *ContentUpdate {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *ContentUpdate) ClearCanonicalURL() *ContentUpdate {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (_u *ContentUpdate) SetExpectedSegmentCount(v int) *ContentUpdate {
	_u.mutation.ResetExpectedSegmentCount()
	_u.mutation.SetExpectedSegmentCount(v)
	return _u
}

// SetNillableExpectedSegmentCount sets the "expected_segment_count" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableExpectedSegmentCount(v *int) *ContentUpdate {
	if v != nil {
		_u.SetExpectedSegmentCount(*v)
	}
	return _u
}

// AddExpectedSegmentCount adds value to the "expected_segment_count" field.
func (_u *ContentUpdate) AddExpectedSegmentCount(v int) *ContentUpdate {
	_u.mutation.AddExpectedSegmentCount(v)
	return _u
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (_u *ContentUpdate) ClearExpectedSegmentCount() *ContentUpdate {
	_u.mutation.ClearExpectedSegmentCount()
	return _u
}

// SetState sets the "state" field.
func (_u *ContentUpdate) SetState(v content.State) *ContentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableState(v *content.State) *ContentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (_u *ContentUpdate) SetCombinedAnalysis(v map[string]interface{}) *ContentUpdate {
	_u.mutation.SetCombinedAnalysis(v)
	return _u
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (_u *ContentUpdate) ClearCombinedAnalysis() *ContentUpdate {
	_u.mutation.ClearCombinedAnalysis()
	return _u
}

// SetModelsUsed sets the "models_used" field.
func (_u *ContentUpdate) SetModelsUsed(v []string) *ContentUpdate {
	_u.mutation.SetModelsUsed(v)
	return _u
}

// AppendModelsUsed appends value to the "models_used" field.
func (_u *ContentUpdate) AppendModelsUsed(v []string) *ContentUpdate {
	_u.mutation.AppendModelsUsed(v)
	return _u
}

// ClearModelsUsed clears the value of the "models_used" field.
func (_u *ContentUpdate) ClearModelsUsed() *ContentUpdate {
	_u.mutation.ClearModelsUsed()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ContentUpdate) SetPromptVersion(v string) *ContentUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ContentUpdate) SetNillablePromptVersion(v *string) *ContentUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *ContentUpdate) ClearPromptVersion() *ContentUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetCombinedAt sets the "combined_at" field.
func (_u *ContentUpdate) SetCombinedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetCombinedAt(v)
	return _u
}

// SetNillableCombinedAt sets the "combined_at" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableCombinedAt(v *time.Time) *ContentUpdate {
	if v != nil {
		_u.SetCombinedAt(*v)
	}
	return _u
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (_u *ContentUpdate) ClearCombinedAt() *ContentUpdate {
	_u.mutation.ClearCombinedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ContentUpdate) SetLastError(v string) *ContentUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableLastError(v *string) *ContentUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ContentUpdate) ClearLastError() *ContentUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetStatistics sets the "statistics" field.
func (_u *ContentUpdate) SetStatistics(v []map[string]interface{}) *ContentUpdate {
	_u.mutation.SetStatistics(v)
	return _u
}

// AppendStatistics appends value to the "statistics" field.
func (_u *ContentUpdate) AppendStatistics(v []map[string]interface{}) *ContentUpdate {
	_u.mutation.AppendStatistics(v)
	return _u
}

// ClearStatistics clears the value of the "statistics" field.
func (_u *ContentUpdate) ClearStatistics() *ContentUpdate {
	_u.mutation.ClearStatistics()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContentUpdate) SetCreatedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableCreatedAt(v *time.Time) *ContentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentUpdate) SetUpdatedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *ContentUpdate) AddSegmentIDs(ids ...string) *ContentUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *ContentUpdate) AddSegments(v ...*Segment) *ContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdate) Mutation() *ContentMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *ContentUpdate) ClearSegments() *ContentUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *ContentUpdate) RemoveSegmentIDs(ids ...string) *ContentUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *ContentUpdate) RemoveSegments(v ...*Segment) *ContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := content.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Content.state": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Content.channel"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ContentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContentUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(content.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(content.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(content.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(content.FieldDurationSec, field.TypeInt, value)
	}
	if _u.mutation.DurationSecCleared() {
		_spec.ClearField(content.FieldDurationSec, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(content.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(content.FieldViewCount, field.TypeInt64, value)
	}
	if _u.mutation.ViewCountCleared() {
		_spec.ClearField(content.FieldViewCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(content.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(content.FieldThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(content.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(content.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedSegmentCount(); ok {
		_spec.SetField(content.FieldExpectedSegmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedSegmentCount(); ok {
		_spec.AddField(content.FieldExpectedSegmentCount, field.TypeInt, value)
	}
	if _u.mutation.ExpectedSegmentCountCleared() {
		_spec.ClearField(content.FieldExpectedSegmentCount, field.TypeInt)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(content.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CombinedAnalysis(); ok {
		_spec.SetField(content.FieldCombinedAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.CombinedAnalysisCleared() {
		_spec.ClearField(content.FieldCombinedAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelsUsed(); ok {
		_spec.SetField(content.FieldModelsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldModelsUsed, value)
		})
	}
	if _u.mutation.ModelsUsedCleared() {
		_spec.ClearField(content.FieldModelsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(content.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(content.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.CombinedAt(); ok {
		_spec.SetField(content.FieldCombinedAt, field.TypeTime, value)
	}
	if _u.mutation.CombinedAtCleared() {
		_spec.ClearField(content.FieldCombinedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(content.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(content.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Statistics(); ok {
		_spec.SetField(content.FieldStatistics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatistics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldStatistics, value)
		})
	}
	if _u.mutation.StatisticsCleared() {
		_spec.ClearField(content.FieldStatistics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(content.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
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
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentUpdateOne is the builder for updating a single Content entity.
type ContentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ContentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetTitle sets the "title" field.
func (_u *ContentUpdateOne) SetTitle(v string) *ContentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableTitle(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentUpdateOne) SetDescription(v string) *ContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableDescription(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentUpdateOne) ClearDescription() *ContentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ContentUpdateOne) SetPublishedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillablePublishedAt(v *time.Time) *ContentUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ContentUpdateOne) ClearPublishedAt() *ContentUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *ContentUpdateOne) SetDurationSec(v int) *ContentUpdateOne {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableDurationSec(v *int) *ContentUpdateOne {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *ContentUpdateOne) AddDurationSec(v int) *ContentUpdateOne {
	_u.mutation.AddDurationSec(v)
	return _u
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (_u *ContentUpdateOne) ClearDurationSec() *ContentUpdateOne {
	_u.mutation.ClearDurationSec()
	return _u
}

// SetViewCount sets the "view_count" field.
func (_u *ContentUpdateOne) SetViewCount(v int64) *ContentUpdateOne {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableViewCount(v *int64) *ContentUpdateOne {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *ContentUpdateOne) AddViewCount(v int64) *ContentUpdateOne {
	_u.mutation.AddViewCount(v)
	return _u
}

// ClearViewCount clears the value of the "view_count" field.
func (_u *ContentUpdateOne) ClearViewCount() *ContentUpdateOne {
	_u.mutation.ClearViewCount()
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *ContentUpdateOne) SetThumbnail(v string) *ContentUpdateOne {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableThumbnail(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *ContentUpdateOne) ClearThumbnail() *ContentUpdateOne {
	_u.mutation.ClearThumbnail()
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *ContentUpdateOne) SetCanonicalURL(v string) *ContentUpdateOne {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableCanonicalURL(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *ContentUpdateOne) ClearCanonicalURL() *ContentUpdateOne {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (_u *ContentUpdateOne) SetExpectedSegmentCount(v int) *ContentUpdateOne {
	_u.mutation.ResetExpectedSegmentCount()
	_u.mutation.SetExpectedSegmentCount(v)
	return _u
}

// SetNillableExpectedSegmentCount sets the "expected_segment_count" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableExpectedSegmentCount(v *int) *ContentUpdateOne {
	if v != nil {
		_u.SetExpectedSegmentCount(*v)
	}
	return _u
}

// AddExpectedSegmentCount adds value to the "expected_segment_count" field.
func (_u *ContentUpdateOne) AddExpectedSegmentCount(v int) *ContentUpdateOne {
	_u.mutation.AddExpectedSegmentCount(v)
	return _u
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (_u *ContentUpdateOne) ClearExpectedSegmentCount() *ContentUpdateOne {
	_u.mutation.ClearExpectedSegmentCount()
	return _u
}

// SetState sets the "state" field.
func (_u *ContentUpdateOne) SetState(v content.State) *ContentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableState(v *content.State) *ContentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (_u *ContentUpdateOne) SetCombinedAnalysis(v map[string]interface{}) *ContentUpdateOne {
	_u.mutation.SetCombinedAnalysis(v)
	return _u
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (_u *ContentUpdateOne) ClearCombinedAnalysis() *ContentUpdateOne {
	_u.mutation.ClearCombinedAnalysis()
	return _u
}

// SetModelsUsed sets the "models_used" field.
func (_u *ContentUpdateOne) SetModelsUsed(v []string) *ContentUpdateOne {
	_u.mutation.SetModelsUsed(v)
	return _u
}

// AppendModelsUsed appends value to the "models_used" field.
func (_u *ContentUpdateOne) AppendModelsUsed(v []string) *ContentUpdateOne {
	_u.mutation.AppendModelsUsed(v)
	return _u
}

// ClearModelsUsed clears the value of the "models_used" field.
func (_u *ContentUpdateOne) ClearModelsUsed() *ContentUpdateOne {
	_u.mutation.ClearModelsUsed()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ContentUpdateOne) SetPromptVersion(v string) *ContentUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillablePromptVersion(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *ContentUpdateOne) ClearPromptVersion() *ContentUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetCombinedAt sets the "combined_at" field.
func (_u *ContentUpdateOne) SetCombinedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetCombinedAt(v)
	return _u
}

// SetNillableCombinedAt sets the "combined_at" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableCombinedAt(v *time.Time) *ContentUpdateOne {
	if v != nil {
		_u.SetCombinedAt(*v)
	}
	return _u
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (_u *ContentUpdateOne) ClearCombinedAt() *ContentUpdateOne {
	_u.mutation.ClearCombinedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ContentUpdateOne) SetLastError(v string) *ContentUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableLastError(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ContentUpdateOne) ClearLastError() *ContentUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetStatistics sets the "statistics" field.
func (_u *ContentUpdateOne) SetStatistics(v []map[string]interface{}) *ContentUpdateOne {
	_u.mutation.SetStatistics(v)
	return _u
}

// AppendStatistics appends value to the "statistics" field.
func (_u *ContentUpdateOne) AppendStatistics(v []map[string]interface{}) *ContentUpdateOne {
	_u.mutation.AppendStatistics(v)
	return _u
}

// ClearStatistics clears the value of the "statistics" field.
func (_u *ContentUpdateOne) ClearStatistics() *ContentUpdateOne {
	_u.mutation.ClearStatistics()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContentUpdateOne) SetCreatedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableCreatedAt(v *time.Time) *ContentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentUpdateOne) SetUpdatedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *ContentUpdateOne) AddSegmentIDs(ids ...string) *ContentUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *ContentUpdateOne) AddSegments(v ...*Segment) *ContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdateOne) Mutation() *ContentMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *ContentUpdateOne) ClearSegments() *ContentUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *ContentUpdateOne) RemoveSegmentIDs(ids ...string) *ContentUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *ContentUpdateOne) RemoveSegments(v ...*Segment) *ContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdateOne) Where(ps ...predicate.Content) *ContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentUpdateOne) Select(field string, fields ...string) *ContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Content entity.
func (_u *ContentUpdateOne) Save(ctx context.Context) (*Content, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdateOne) SaveX(ctx context.Context) *Content {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := content.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Content.state": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Content.channel"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ContentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContentUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ContentUpdateOne) sqlSave(ctx context.Context) (_node *Content, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Content.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, content.FieldID)
		for _, f := range fields {
			if !content.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != content.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(content.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(content.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(content.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(content.FieldDurationSec, field.TypeInt, value)
	}
	if _u.mutation.DurationSecCleared() {
		_spec.ClearField(content.FieldDurationSec, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(content.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(content.FieldViewCount, field.TypeInt64, value)
	}
	if _u.mutation.ViewCountCleared() {
		_spec.ClearField(content.FieldViewCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(content.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(content.FieldThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(content.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(content.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedSegmentCount(); ok {
		_spec.SetField(content.FieldExpectedSegmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedSegmentCount(); ok {
		_spec.AddField(content.FieldExpectedSegmentCount, field.TypeInt, value)
	}
	if _u.mutation.ExpectedSegmentCountCleared() {
		_spec.ClearField(content.FieldExpectedSegmentCount, field.TypeInt)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(content.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CombinedAnalysis(); ok {
		_spec.SetField(content.FieldCombinedAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.CombinedAnalysisCleared() {
		_spec.ClearField(content.FieldCombinedAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelsUsed(); ok {
		_spec.SetField(content.FieldModelsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldModelsUsed, value)
		})
	}
	if _u.mutation.ModelsUsedCleared() {
		_spec.ClearField(content.FieldModelsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(content.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(content.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.CombinedAt(); ok {
		_spec.SetField(content.FieldCombinedAt, field.TypeTime, value)
	}
	if _u.mutation.CombinedAtCleared() {
		_spec.ClearField(content.FieldCombinedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(content.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(content.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Statistics(); ok {
		_spec.SetField(content.FieldStatistics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatistics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldStatistics, value)
		})
	}
	if _u.mutation.StatisticsCleared() {
		_spec.ClearField(content.FieldStatistics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(content.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.SegmentsTable,
			Columns: []string{content.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Content{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
