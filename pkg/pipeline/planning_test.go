package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/segment"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
)

func TestPlanningHandler_CommitsPlanAndFansOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, 1500)

	handler := NewPlanningHandler(env.stores, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "plan-segments", PlanningPayload{ContentID: c.ID}, 0, 3), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateProcessing, got.State)
	require.NotNil(t, got.ExpectedSegmentCount)
	assert.Equal(t, 2, *got.ExpectedSegmentCount)

	segments, err := env.stores.Segments.ListByState(ctx, c.ID, segment.StatePending)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, 0, segments[0].StartSec)
	assert.Equal(t, 900, segments[0].EndSec)
	assert.Equal(t, 870, segments[1].StartSec)
	assert.Equal(t, 1500, segments[1].EndSec)

	jobs, err := env.client.Job.Query().
		Where(job.QueueEQ("segment-analysis")).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, env.pipelineCfg.MaxAttemptsAnalysis, jobs[0].MaxAttempts)

	var payload AnalysisPayload
	require.NoError(t, queue.DecodePayload(jobs[0], &payload))
	assert.Equal(t, c.ID, payload.ContentID)
	assert.Equal(t, 0, payload.SegmentIndex)
	assert.NotEmpty(t, payload.PromptID, "plan pins the active prompt version")
	assert.Contains(t, payload.ExternalSourceRef, c.ExternalVideoID)

	// Redelivery after the plan committed re-runs the fan-out without
	// duplicating jobs or segments.
	res = handler.Process(ctx, testJob(t, "plan-segments", PlanningPayload{ContentID: c.ID}, 0, 3), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	n, err := env.client.Job.Query().Where(job.QueueEQ("segment-analysis")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPlanningHandler_MissingDurationFailsVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)

	c, err := env.stores.Contents.CreateContent(ctx, services.CreateContentRequest{
		ChannelID:       ch.ID,
		ExternalVideoID: "no-duration",
		Title:           "broken",
	})
	require.NoError(t, err)

	handler := NewPlanningHandler(env.stores, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "plan-segments", PlanningPayload{ContentID: c.ID}, 0, 3), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateFailed, got.State)

	n, err := env.client.Segment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "a failed plan commits no segments")
}
