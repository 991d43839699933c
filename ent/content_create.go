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
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/segment"
)

// ContentCreate is the builder for creating a Content entity.
type ContentCreate struct {
	config
	mutation *ContentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannelID sets the "channel_id" field.
func (_c *ContentCreate) SetChannelID(v string) *ContentCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetExternalVideoID sets the "external_video_id" field.
func (_c *ContentCreate) SetExternalVideoID(v string) *ContentCreate {
	_c.mutation.SetExternalVideoID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ContentCreate) SetTitle(v string) *ContentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ContentCreate) SetDescription(v string) *ContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ContentCreate) SetNillableDescription(v *string) *ContentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *ContentCreate) SetPublishedAt(v time.Time) *ContentCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillablePublishedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetDurationSec sets the "duration_sec" field.
func (_c *ContentCreate) SetDurationSec(v int) *ContentCreate {
	_c.mutation.SetDurationSec(v)
	return _c
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_c *ContentCreate) SetNillableDurationSec(v *int) *ContentCreate {
	if v != nil {
		_c.SetDurationSec(*v)
	}
	return _c
}

// SetViewCount sets the "view_count" field.
func (_c *ContentCreate) SetViewCount(v int64) *ContentCreate {
	_c.mutation.SetViewCount(v)
	return _c
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_c *ContentCreate) SetNillableViewCount(v *int64) *ContentCreate {
	if v != nil {
		_c.SetViewCount(*v)
	}
	return _c
}

// SetThumbnail sets the "thumbnail" field.
func (_c *ContentCreate) SetThumbnail(v string) *ContentCreate {
	_c.mutation.SetThumbnail(v)
	return _c
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_c *ContentCreate) SetNillableThumbnail(v *string) *ContentCreate {
	if v != nil {
		_c.SetThumbnail(*v)
	}
	return _c
}

// SetCanonicalURL sets the "canonical_url" field.
func (_c *ContentCreate) SetCanonicalURL(v string) *ContentCreate {
	_c.mutation.SetCanonicalURL(v)
	return _c
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_c *ContentCreate) SetNillableCanonicalURL(v *string) *ContentCreate {
	if v != nil {
		_c.SetCanonicalURL(*v)
	}
	return _c
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (_c *ContentCreate) SetExpectedSegmentCount(v int) *ContentCreate {
	_c.mutation.SetExpectedSegmentCount(v)
	return _c
}

// SetNillableExpectedSegmentCount sets the "expected_segment_count" field if the given value is not nil.
func (_c *ContentCreate) SetNillableExpectedSegmentCount(v *int) *ContentCreate {
	if v != nil {
		_c.SetExpectedSegmentCount(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ContentCreate) SetState(v content.State) *ContentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ContentCreate) SetNillableState(v *content.State) *ContentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (_c *ContentCreate) SetCombinedAnalysis(v map[string]interface{}) *ContentCreate {
	_c.mutation.SetCombinedAnalysis(v)
	return _c
}

// SetModelsUsed sets the "models_used" field.
func (_c *ContentCreate) SetModelsUsed(v []string) *ContentCreate {
	_c.mutation.SetModelsUsed(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ContentCreate) SetPromptVersion(v string) *ContentCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *ContentCreate) SetNillablePromptVersion(v *string) *ContentCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetCombinedAt sets the "combined_at" field.
func (_c *ContentCreate) SetCombinedAt(v time.Time) *ContentCreate {
	_c.mutation.SetCombinedAt(v)
	return _c
}

// SetNillableCombinedAt sets the "combined_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableCombinedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetCombinedAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ContentCreate) SetLastError(v string) *ContentCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ContentCreate) SetNillableLastError(v *string) *ContentCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetStatistics sets the "statistics" field.
func (_c *ContentCreate) SetStatistics(v []map[string]interface{}) *ContentCreate {
	_c.mutation.SetStatistics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentCreate) SetCreatedAt(v time.Time) *ContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableCreatedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentCreate) SetUpdatedAt(v time.Time) *ContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableUpdatedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentCreate) SetID(v string) *ContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_c *ContentCreate) SetChannel(v *Channel) *ContentCreate {
	return _c.SetChannelID(v.ID)
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_c *ContentCreate) AddSegmentIDs(ids ...string) *ContentCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_c *ContentCreate) AddSegments(v ...*Segment) *ContentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_c *ContentCreate) Mutation() *ContentMutation {
	return _c.mutation
}

// Save creates the Content in the database.
func (_c *ContentCreate) Save(ctx context.Context) (*Content, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentCreate) SaveX(ctx context.Context) *Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := content.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := content.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := content.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentCreate) check() error {
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Content.channel_id"`)}
	}
	if _, ok := _c.mutation.ExternalVideoID(); !ok {
		return &ValidationError{Name: "external_video_id", err: errors.New(`ent: missing required field "Content.external_video_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Content.title"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Content.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := content.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Content.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Content.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Content.updated_at"`)}
	}
	if len(_c.mutation.ChannelIDs()) == 0 {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required edge "Content.channel"`)}
	}
	return nil
}

func (_c *ContentCreate) sqlSave(ctx context.Context) (*Content, error) {
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
			return nil, fmt.Errorf("unexpected Content.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentCreate) createSpec() (*Content, *sqlgraph.CreateSpec) {
	var (
		_node = &Content{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(content.Table, sqlgraph.NewFieldSpec(content.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalVideoID(); ok {
		_spec.SetField(content.FieldExternalVideoID, field.TypeString, value)
		_node.ExternalVideoID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(content.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.DurationSec(); ok {
		_spec.SetField(content.FieldDurationSec, field.TypeInt, value)
		_node.DurationSec = &value
	}
	if value, ok := _c.mutation.ViewCount(); ok {
		_spec.SetField(content.FieldViewCount, field.TypeInt64, value)
		_node.ViewCount = &value
	}
	if value, ok := _c.mutation.Thumbnail(); ok {
		_spec.SetField(content.FieldThumbnail, field.TypeString, value)
		_node.Thumbnail = &value
	}
	if value, ok := _c.mutation.CanonicalURL(); ok {
		_spec.SetField(content.FieldCanonicalURL, field.TypeString, value)
		_node.CanonicalURL = &value
	}
	if value, ok := _c.mutation.ExpectedSegmentCount(); ok {
		_spec.SetField(content.FieldExpectedSegmentCount, field.TypeInt, value)
		_node.ExpectedSegmentCount = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(content.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CombinedAnalysis(); ok {
		_spec.SetField(content.FieldCombinedAnalysis, field.TypeJSON, value)
		_node.CombinedAnalysis = value
	}
	if value, ok := _c.mutation.ModelsUsed(); ok {
		_spec.SetField(content.FieldModelsUsed, field.TypeJSON, value)
		_node.ModelsUsed = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(content.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = &value
	}
	if value, ok := _c.mutation.CombinedAt(); ok {
		_spec.SetField(content.FieldCombinedAt, field.TypeTime, value)
		_node.CombinedAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(content.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.Statistics(); ok {
		_spec.SetField(content.FieldStatistics, field.TypeJSON, value)
		_node.Statistics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(content.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   content.ChannelTable,
			Columns: []string{content.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChannelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Content.Create().
//		SetChannelID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentCreate) OnConflict(opts ...sql.ConflictOption) *ContentUpsertOne {
	_c.conflict = opts
	return &ContentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentCreate) OnConflictColumns(columns ...string) *ContentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentUpsertOne{
		create: _c,
	}
}

type (
	// ContentUpsertOne is the builder for "upsert"-ing
	//  one Content node.
	ContentUpsertOne struct {
		create *ContentCreate
	}

	// ContentUpsert is the "OnConflict" setter.
	ContentUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ContentUpsert) SetTitle(v string) *ContentUpsert {
	u.Set(content.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsert) UpdateTitle() *ContentUpsert {
	u.SetExcluded(content.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ContentUpsert) SetDescription(v string) *ContentUpsert {
	u.Set(content.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContentUpsert) UpdateDescription() *ContentUpsert {
	u.SetExcluded(content.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ContentUpsert) ClearDescription() *ContentUpsert {
	u.SetNull(content.FieldDescription)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentUpsert) SetPublishedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdatePublishedAt() *ContentUpsert {
	u.SetExcluded(content.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentUpsert) ClearPublishedAt() *ContentUpsert {
	u.SetNull(content.FieldPublishedAt)
	return u
}

// SetDurationSec sets the "duration_sec" field.
func (u *ContentUpsert) SetDurationSec(v int) *ContentUpsert {
	u.Set(content.FieldDurationSec, v)
	return u
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *ContentUpsert) UpdateDurationSec() *ContentUpsert {
	u.SetExcluded(content.FieldDurationSec)
	return u
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *ContentUpsert) AddDurationSec(v int) *ContentUpsert {
	u.Add(content.FieldDurationSec, v)
	return u
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (u *ContentUpsert) ClearDurationSec() *ContentUpsert {
	u.SetNull(content.FieldDurationSec)
	return u
}

// SetViewCount sets the "view_count" field.
func (u *ContentUpsert) SetViewCount(v int64) *ContentUpsert {
	u.Set(content.FieldViewCount, v)
	return u
}

// UpdateViewCount sets the "view_count" field to the value that was provided on create.
func (u *ContentUpsert) UpdateViewCount() *ContentUpsert {
	u.SetExcluded(content.FieldViewCount)
	return u
}

// AddViewCount adds v to the "view_count" field.
func (u *ContentUpsert) AddViewCount(v int64) *ContentUpsert {
	u.Add(content.FieldViewCount, v)
	return u
}

// ClearViewCount clears the value of the "view_count" field.
func (u *ContentUpsert) ClearViewCount() *ContentUpsert {
	u.SetNull(content.FieldViewCount)
	return u
}

// SetThumbnail sets the "thumbnail" field.
func (u *ContentUpsert) SetThumbnail(v string) *ContentUpsert {
	u.Set(content.FieldThumbnail, v)
	return u
}

// UpdateThumbnail sets the "thumbnail" field to the value that was provided on create.
func (u *ContentUpsert) UpdateThumbnail() *ContentUpsert {
	u.SetExcluded(content.FieldThumbnail)
	return u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (u *ContentUpsert) ClearThumbnail() *ContentUpsert {
	u.SetNull(content.FieldThumbnail)
	return u
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *ContentUpsert) SetCanonicalURL(v string) *ContentUpsert {
	u.Set(content.FieldCanonicalURL, v)
	return u
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *ContentUpsert) UpdateCanonicalURL() *ContentUpsert {
	u.SetExcluded(content.FieldCanonicalURL)
	return u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *ContentUpsert) ClearCanonicalURL() *ContentUpsert {
	u.SetNull(content.FieldCanonicalURL)
	return u
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (u *ContentUpsert) SetExpectedSegmentCount(v int) *ContentUpsert {
	u.Set(content.FieldExpectedSegmentCount, v)
	return u
}

// UpdateExpectedSegmentCount sets the "expected_segment_count" field to the value that was provided on create.
func (u *ContentUpsert) UpdateExpectedSegmentCount() *ContentUpsert {
	u.SetExcluded(content.FieldExpectedSegmentCount)
	return u
}

// AddExpectedSegmentCount adds v to the "expected_segment_count" field.
func (u *ContentUpsert) AddExpectedSegmentCount(v int) *ContentUpsert {
	u.Add(content.FieldExpectedSegmentCount, v)
	return u
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (u *ContentUpsert) ClearExpectedSegmentCount() *ContentUpsert {
	u.SetNull(content.FieldExpectedSegmentCount)
	return u
}

// SetState sets the "state" field.
func (u *ContentUpsert) SetState(v content.State) *ContentUpsert {
	u.Set(content.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ContentUpsert) UpdateState() *ContentUpsert {
	u.SetExcluded(content.FieldState)
	return u
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (u *ContentUpsert) SetCombinedAnalysis(v map[string]interface{}) *ContentUpsert {
	u.Set(content.FieldCombinedAnalysis, v)
	return u
}

// UpdateCombinedAnalysis sets the "combined_analysis" field to the value that was provided on create.
func (u *ContentUpsert) UpdateCombinedAnalysis() *ContentUpsert {
	u.SetExcluded(content.FieldCombinedAnalysis)
	return u
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (u *ContentUpsert) ClearCombinedAnalysis() *ContentUpsert {
	u.SetNull(content.FieldCombinedAnalysis)
	return u
}

// SetModelsUsed sets the "models_used" field.
func (u *ContentUpsert) SetModelsUsed(v []string) *ContentUpsert {
	u.Set(content.FieldModelsUsed, v)
	return u
}

// UpdateModelsUsed sets the "models_used" field to the value that was provided on create.
func (u *ContentUpsert) UpdateModelsUsed() *ContentUpsert {
	u.SetExcluded(content.FieldModelsUsed)
	return u
}

// ClearModelsUsed clears the value of the "models_used" field.
func (u *ContentUpsert) ClearModelsUsed() *ContentUpsert {
	u.SetNull(content.FieldModelsUsed)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ContentUpsert) SetPromptVersion(v string) *ContentUpsert {
	u.Set(content.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ContentUpsert) UpdatePromptVersion() *ContentUpsert {
	u.SetExcluded(content.FieldPromptVersion)
	return u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *ContentUpsert) ClearPromptVersion() *ContentUpsert {
	u.SetNull(content.FieldPromptVersion)
	return u
}

// SetCombinedAt sets the "combined_at" field.
func (u *ContentUpsert) SetCombinedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldCombinedAt, v)
	return u
}

// UpdateCombinedAt sets the "combined_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdateCombinedAt() *ContentUpsert {
	u.SetExcluded(content.FieldCombinedAt)
	return u
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (u *ContentUpsert) ClearCombinedAt() *ContentUpsert {
	u.SetNull(content.FieldCombinedAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ContentUpsert) SetLastError(v string) *ContentUpsert {
	u.Set(content.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ContentUpsert) UpdateLastError() *ContentUpsert {
	u.SetExcluded(content.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ContentUpsert) ClearLastError() *ContentUpsert {
	u.SetNull(content.FieldLastError)
	return u
}

// SetStatistics sets the "statistics" field.
func (u *ContentUpsert) SetStatistics(v []map[string]interface{}) *ContentUpsert {
	u.Set(content.FieldStatistics, v)
	return u
}

// UpdateStatistics sets the "statistics" field to the value that was provided on create.
func (u *ContentUpsert) UpdateStatistics() *ContentUpsert {
	u.SetExcluded(content.FieldStatistics)
	return u
}

// ClearStatistics clears the value of the "statistics" field.
func (u *ContentUpsert) ClearStatistics() *ContentUpsert {
	u.SetNull(content.FieldStatistics)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ContentUpsert) SetCreatedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdateCreatedAt() *ContentUpsert {
	u.SetExcluded(content.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsert) SetUpdatedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdateUpdatedAt() *ContentUpsert {
	u.SetExcluded(content.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(content.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentUpsertOne) UpdateNewValues() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(content.FieldID)
		}
		if _, exists := u.create.mutation.ChannelID(); exists {
			s.SetIgnore(content.FieldChannelID)
		}
		if _, exists := u.create.mutation.ExternalVideoID(); exists {
			s.SetIgnore(content.FieldExternalVideoID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentUpsertOne) Ignore() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentUpsertOne) DoNothing() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentCreate.OnConflict
// documentation for more info.
func (u *ContentUpsertOne) Update(set func(*ContentUpsert)) *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ContentUpsertOne) SetTitle(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateTitle() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ContentUpsertOne) SetDescription(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateDescription() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ContentUpsertOne) ClearDescription() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDescription()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentUpsertOne) SetPublishedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdatePublishedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentUpsertOne) ClearPublishedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetDurationSec sets the "duration_sec" field.
func (u *ContentUpsertOne) SetDurationSec(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetDurationSec(v)
	})
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *ContentUpsertOne) AddDurationSec(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.AddDurationSec(v)
	})
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateDurationSec() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDurationSec()
	})
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (u *ContentUpsertOne) ClearDurationSec() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDurationSec()
	})
}

// SetViewCount sets the "view_count" field.
func (u *ContentUpsertOne) SetViewCount(v int64) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetViewCount(v)
	})
}

// AddViewCount adds v to the "view_count" field.
func (u *ContentUpsertOne) AddViewCount(v int64) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.AddViewCount(v)
	})
}

// UpdateViewCount sets the "view_count" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateViewCount() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateViewCount()
	})
}

// ClearViewCount clears the value of the "view_count" field.
func (u *ContentUpsertOne) ClearViewCount() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearViewCount()
	})
}

// SetThumbnail sets the "thumbnail" field.
func (u *ContentUpsertOne) SetThumbnail(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetThumbnail(v)
	})
}

// UpdateThumbnail sets the "thumbnail" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateThumbnail() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateThumbnail()
	})
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (u *ContentUpsertOne) ClearThumbnail() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearThumbnail()
	})
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *ContentUpsertOne) SetCanonicalURL(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetCanonicalURL(v)
	})
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateCanonicalURL() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCanonicalURL()
	})
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *ContentUpsertOne) ClearCanonicalURL() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCanonicalURL()
	})
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (u *ContentUpsertOne) SetExpectedSegmentCount(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetExpectedSegmentCount(v)
	})
}

// AddExpectedSegmentCount adds v to the "expected_segment_count" field.
func (u *ContentUpsertOne) AddExpectedSegmentCount(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.AddExpectedSegmentCount(v)
	})
}

// UpdateExpectedSegmentCount sets the "expected_segment_count" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateExpectedSegmentCount() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateExpectedSegmentCount()
	})
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (u *ContentUpsertOne) ClearExpectedSegmentCount() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearExpectedSegmentCount()
	})
}

// SetState sets the "state" field.
func (u *ContentUpsertOne) SetState(v content.State) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateState() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateState()
	})
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (u *ContentUpsertOne) SetCombinedAnalysis(v map[string]interface{}) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetCombinedAnalysis(v)
	})
}

// UpdateCombinedAnalysis sets the "combined_analysis" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateCombinedAnalysis() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCombinedAnalysis()
	})
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (u *ContentUpsertOne) ClearCombinedAnalysis() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCombinedAnalysis()
	})
}

// SetModelsUsed sets the "models_used" field.
func (u *ContentUpsertOne) SetModelsUsed(v []string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetModelsUsed(v)
	})
}

// UpdateModelsUsed sets the "models_used" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateModelsUsed() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateModelsUsed()
	})
}

// ClearModelsUsed clears the value of the "models_used" field.
func (u *ContentUpsertOne) ClearModelsUsed() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearModelsUsed()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ContentUpsertOne) SetPromptVersion(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdatePromptVersion() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *ContentUpsertOne) ClearPromptVersion() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearPromptVersion()
	})
}

// SetCombinedAt sets the "combined_at" field.
func (u *ContentUpsertOne) SetCombinedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetCombinedAt(v)
	})
}

// UpdateCombinedAt sets the "combined_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateCombinedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCombinedAt()
	})
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (u *ContentUpsertOne) ClearCombinedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCombinedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *ContentUpsertOne) SetLastError(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateLastError() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ContentUpsertOne) ClearLastError() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearLastError()
	})
}

// SetStatistics sets the "statistics" field.
func (u *ContentUpsertOne) SetStatistics(v []map[string]interface{}) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetStatistics(v)
	})
}

// UpdateStatistics sets the "statistics" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateStatistics() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateStatistics()
	})
}

// ClearStatistics clears the value of the "statistics" field.
func (u *ContentUpsertOne) ClearStatistics() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearStatistics()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ContentUpsertOne) SetCreatedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateCreatedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsertOne) SetUpdatedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateUpdatedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContentUpsertOne.ID is not supported by MySQL driver. Use ContentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentCreateBulk is the builder for creating many Content entities in bulk.
type ContentCreateBulk struct {
	config
	err      error
	builders []*ContentCreate
	conflict []sql.ConflictOption
}

// Save creates the Content entities in the database.
func (_c *ContentCreateBulk) Save(ctx context.Context) ([]*Content, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Content, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentMutation)
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
func (_c *ContentCreateBulk) SaveX(ctx context.Context) []*Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Content.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentUpsertBulk {
	_c.conflict = opts
	return &ContentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentCreateBulk) OnConflictColumns(columns ...string) *ContentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentUpsertBulk{
		create: _c,
	}
}

// ContentUpsertBulk is the builder for "upsert"-ing
// a bulk of Content nodes.
type ContentUpsertBulk struct {
	create *ContentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(content.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentUpsertBulk) UpdateNewValues() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(content.FieldID)
			}
			if _, exists := b.mutation.ChannelID(); exists {
				s.SetIgnore(content.FieldChannelID)
			}
			if _, exists := b.mutation.ExternalVideoID(); exists {
				s.SetIgnore(content.FieldExternalVideoID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentUpsertBulk) Ignore() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentUpsertBulk) DoNothing() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentCreateBulk.OnConflict
// documentation for more info.
func (u *ContentUpsertBulk) Update(set func(*ContentUpsert)) *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ContentUpsertBulk) SetTitle(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateTitle() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ContentUpsertBulk) SetDescription(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateDescription() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ContentUpsertBulk) ClearDescription() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDescription()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentUpsertBulk) SetPublishedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdatePublishedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentUpsertBulk) ClearPublishedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetDurationSec sets the "duration_sec" field.
func (u *ContentUpsertBulk) SetDurationSec(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetDurationSec(v)
	})
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *ContentUpsertBulk) AddDurationSec(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.AddDurationSec(v)
	})
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateDurationSec() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDurationSec()
	})
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (u *ContentUpsertBulk) ClearDurationSec() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDurationSec()
	})
}

// SetViewCount sets the "view_count" field.
func (u *ContentUpsertBulk) SetViewCount(v int64) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetViewCount(v)
	})
}

// AddViewCount adds v to the "view_count" field.
func (u *ContentUpsertBulk) AddViewCount(v int64) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.AddViewCount(v)
	})
}

// UpdateViewCount sets the "view_count" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateViewCount() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateViewCount()
	})
}

// ClearViewCount clears the value of the "view_count" field.
func (u *ContentUpsertBulk) ClearViewCount() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearViewCount()
	})
}

// SetThumbnail sets the "thumbnail" field.
func (u *ContentUpsertBulk) SetThumbnail(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetThumbnail(v)
	})
}

// UpdateThumbnail sets the "thumbnail" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateThumbnail() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateThumbnail()
	})
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (u *ContentUpsertBulk) ClearThumbnail() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearThumbnail()
	})
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *ContentUpsertBulk) SetCanonicalURL(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetCanonicalURL(v)
	})
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateCanonicalURL() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCanonicalURL()
	})
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *ContentUpsertBulk) ClearCanonicalURL() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCanonicalURL()
	})
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (u *ContentUpsertBulk) SetExpectedSegmentCount(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetExpectedSegmentCount(v)
	})
}

// AddExpectedSegmentCount adds v to the "expected_segment_count" field.
func (u *ContentUpsertBulk) AddExpectedSegmentCount(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.AddExpectedSegmentCount(v)
	})
}

// UpdateExpectedSegmentCount sets the "expected_segment_count" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateExpectedSegmentCount() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateExpectedSegmentCount()
	})
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (u *ContentUpsertBulk) ClearExpectedSegmentCount() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearExpectedSegmentCount()
	})
}

// SetState sets the "state" field.
func (u *ContentUpsertBulk) SetState(v content.State) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateState() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateState()
	})
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (u *ContentUpsertBulk) SetCombinedAnalysis(v map[string]interface{}) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetCombinedAnalysis(v)
	})
}

// UpdateCombinedAnalysis sets the "combined_analysis" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateCombinedAnalysis() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCombinedAnalysis()
	})
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (u *ContentUpsertBulk) ClearCombinedAnalysis() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCombinedAnalysis()
	})
}

// SetModelsUsed sets the "models_used" field.
func (u *ContentUpsertBulk) SetModelsUsed(v []string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetModelsUsed(v)
	})
}

// UpdateModelsUsed sets the "models_used" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateModelsUsed() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateModelsUsed()
	})
}

// ClearModelsUsed clears the value of the "models_used" field.
func (u *ContentUpsertBulk) ClearModelsUsed() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearModelsUsed()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ContentUpsertBulk) SetPromptVersion(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdatePromptVersion() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *ContentUpsertBulk) ClearPromptVersion() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearPromptVersion()
	})
}

// SetCombinedAt sets the "combined_at" field.
func (u *ContentUpsertBulk) SetCombinedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetCombinedAt(v)
	})
}

// UpdateCombinedAt sets the "combined_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateCombinedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCombinedAt()
	})
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (u *ContentUpsertBulk) ClearCombinedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearCombinedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *ContentUpsertBulk) SetLastError(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateLastError() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ContentUpsertBulk) ClearLastError() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearLastError()
	})
}

// SetStatistics sets the "statistics" field.
func (u *ContentUpsertBulk) SetStatistics(v []map[string]interface{}) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetStatistics(v)
	})
}

// UpdateStatistics sets the "statistics" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateStatistics() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateStatistics()
	})
}

// ClearStatistics clears the value of the "statistics" field.
func (u *ContentUpsertBulk) ClearStatistics() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearStatistics()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ContentUpsertBulk) SetCreatedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateCreatedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsertBulk) SetUpdatedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateUpdatedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
