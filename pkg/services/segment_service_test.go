package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/segment"
	testdb "github.com/vidsage/vidsage/test/database"
)

func twoSegmentPlan() []SegmentSpan {
	return []SegmentSpan{
		{Index: 0, StartSec: 0, EndSec: 900},
		{Index: 1, StartSec: 870, EndSec: 1500},
	}
}

func TestSegmentService_CreatePlanBulk(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	contentSvc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	segments, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, 900, segments[0].DurationSec)
	assert.Equal(t, 630, segments[1].DurationSec)

	// The plan commit freezes the expected count and starts processing.
	got, err := contentSvc.GetContent(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpectedSegmentCount)
	assert.Equal(t, 2, *got.ExpectedSegmentCount)
	assert.Equal(t, content.StateProcessing, got.State)

	t.Run("re-planning a committed content is rejected", func(t *testing.T) {
		_, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("invalid span", func(t *testing.T) {
		_, err := svc.CreatePlanBulk(ctx, c.ID, []SegmentSpan{{Index: 0, StartSec: 10, EndSec: 10}})
		assert.True(t, IsValidationError(err))
	})
}

func TestSegmentService_CreatePlanBulk_RollsBackOnMissingContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()

	_, err := svc.CreatePlanBulk(ctx, "missing-content", twoSegmentPlan())
	require.Error(t, err)

	// Nothing committed: the insert and the content update are one tx.
	n, err := client.Segment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSegmentService_ClaimForAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
	require.NoError(t, err)

	require.NoError(t, svc.ClaimForAnalysis(ctx, c.ID, 0))

	t.Run("processing is re-claimable", func(t *testing.T) {
		assert.NoError(t, svc.ClaimForAnalysis(ctx, c.ID, 0))
	})

	t.Run("analyzed is not claimable", func(t *testing.T) {
		require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 0,
			map[string]interface{}{"summary": "done"}, "gemini-2.5-pro", 1200, "1"))
		err := svc.ClaimForAnalysis(ctx, c.ID, 0)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("missing segment", func(t *testing.T) {
		err := svc.ClaimForAnalysis(ctx, c.ID, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSegmentService_MarkAnalyzed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
	require.NoError(t, err)

	require.NoError(t, svc.MarkFailed(ctx, c.ID, 0, "first try failed"))
	require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 0,
		map[string]interface{}{"summary": "recovered"}, "gemini-2.5-flash", 800, "1"))

	seg, err := svc.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateAnalyzed, seg.State)
	require.NotNil(t, seg.ModelUsed)
	assert.Equal(t, "gemini-2.5-flash", *seg.ModelUsed)
	// Success clears the stale error.
	assert.Nil(t, seg.Error)
}

func TestSegmentService_CountByStates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, []SegmentSpan{
		{Index: 0, StartSec: 0, EndSec: 300},
		{Index: 1, StartSec: 270, EndSec: 600},
		{Index: 2, StartSec: 570, EndSec: 900},
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 0,
		map[string]interface{}{"summary": "x"}, "gemini-2.5-pro", 100, "1"))
	require.NoError(t, svc.MarkFailed(ctx, c.ID, 1, "daily-quota"))

	counts, err := svc.CountByStates(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[segment.StateAnalyzed])
	assert.Equal(t, 1, counts[segment.StateFailed])
	assert.Equal(t, 1, counts[segment.StatePending])
}

func TestSegmentService_ListByState_OrderedByIndex(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
	require.NoError(t, err)

	// Finish out of order: index 1 first.
	require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 1,
		map[string]interface{}{"summary": "second half"}, "gemini-2.5-pro", 100, "1"))
	require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 0,
		map[string]interface{}{"summary": "first half"}, "gemini-2.5-pro", 100, "1"))

	segments, err := svc.ListByState(ctx, c.ID, segment.StateAnalyzed)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, 0, segments[0].Index)
	assert.Equal(t, 1, segments[1].Index)
}

func TestSegmentService_ResetSegments(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, []SegmentSpan{
		{Index: 0, StartSec: 0, EndSec: 300},
		{Index: 1, StartSec: 270, EndSec: 600},
		{Index: 2, StartSec: 570, EndSec: 900},
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAnalyzed(ctx, c.ID, 0,
		map[string]interface{}{"summary": "keep me"}, "gemini-2.5-pro", 100, "1"))
	require.NoError(t, svc.MarkFailed(ctx, c.ID, 1, "validation"))
	require.NoError(t, svc.IncrementRetry(ctx, c.ID, 1))
	require.NoError(t, svc.MarkOverloaded(ctx, c.ID, 2, "503"))

	n, err := svc.ResetSegments(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Analyzed segments are untouched; the rest are fresh PENDING rows.
	seg0, err := svc.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateAnalyzed, seg0.State)

	seg1, err := svc.GetByIndex(ctx, c.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, segment.StatePending, seg1.State)
	assert.Zero(t, seg1.RetryCount)
	assert.Nil(t, seg1.Error)
}

func TestSegmentService_DeleteForContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSegmentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)
	_, err := svc.CreatePlanBulk(ctx, c.ID, twoSegmentPlan())
	require.NoError(t, err)

	n, err := svc.DeleteForContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	segments, err := svc.ListByState(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, segments)
}
