package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/segment"
)

func TestAnalyzeContent(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ch := ts.seedChannel(t)
	c := ts.seedContent(t, ch.ID, 1500)

	status, body := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/analyze", nil)
	require.Equal(t, http.StatusAccepted, status)
	jobID := body["jobId"].(string)

	j, err := ts.client.Job.Query().Where(job.QueueEQ("content-metadata")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobID, j.ID)
	require.NotNil(t, j.JobKey)
	assert.Equal(t, "metadata:"+c.ID, *j.JobKey)

	// Retriggering while the job is live collapses onto the same row.
	status, body = ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/analyze", nil)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, jobID, body["jobId"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/contents/nope/analyze", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCombinationStatus(t *testing.T) {
	ts := newTestServer(t)
	ch := ts.seedChannel(t)
	c := ts.seedContent(t, ch.ID, 1500)
	ts.seedPlan(t, c.ID)
	ts.markAnalyzed(t, c.ID, 0)

	status, body := ts.do(t, http.MethodGet, "/api/v1/contents/"+c.ID+"/combination", nil)
	require.Equal(t, http.StatusOK, status)

	readiness := body["readiness"].(map[string]interface{})
	assert.Equal(t, "processing", readiness["state"])
	assert.Equal(t, float64(2), readiness["expected"])
	assert.Equal(t, float64(1), readiness["completed"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/contents/nope/combination", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCombineContent(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ch := ts.seedChannel(t)

	t.Run("ready video combines", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)
		ts.markAnalyzed(t, c.ID, 0)
		ts.markAnalyzed(t, c.ID, 1)

		status, _ := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/combine", nil)
		require.Equal(t, http.StatusAccepted, status)

		j, err := ts.client.Job.Query().
			Where(job.QueueEQ("combination"), job.JobKeyEQ("combine:"+c.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, j.Priority)
	})

	t.Run("partial needs explicit consent", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)
		ts.markAnalyzed(t, c.ID, 0)
		require.NoError(t, ts.segments.MarkFailed(ctx, c.ID, 1, "daily-quota"))

		status, body := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/combine", nil)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, false, body["success"])

		status, _ = ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/combine", map[string]any{
			"allowPartial": true,
		})
		require.Equal(t, http.StatusAccepted, status)

		j, err := ts.client.Job.Query().
			Where(job.QueueEQ("combination"), job.JobKeyEQ("combine:"+c.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, true, j.Payload["allowPartial"])
	})

	t.Run("in-flight video conflicts", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)

		status, _ := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/combine", nil)
		assert.Equal(t, http.StatusConflict, status)
	})
}

func TestResetContent(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ch := ts.seedChannel(t)

	t.Run("partial reset retries failed segments", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)
		ts.markAnalyzed(t, c.ID, 0)
		require.NoError(t, ts.segments.MarkFailed(ctx, c.ID, 1, "daily-quota"))
		require.NoError(t, ts.contents.SetFailed(ctx, c.ID, "daily-quota"))

		status, body := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/reset", nil)
		require.Equal(t, http.StatusAccepted, status)
		assert.Equal(t, float64(1), body["resetSegments"])

		seg, err := ts.segments.GetByIndex(ctx, c.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, segment.StatePending, seg.State)
		assert.Nil(t, seg.Error)

		got, err := ts.contents.GetContent(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, content.StateProcessing, got.State)

		// Exactly one analysis job, for the reset segment.
		j, err := ts.client.Job.Query().Where(job.QueueEQ("segment-analysis")).Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, j.JobKey)
		assert.Equal(t, "analyze:"+c.ID+":1", *j.JobKey)
	})

	t.Run("nothing to reset is a no-op", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)

		status, body := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/reset", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(0), body["resetSegments"])
	})

	t.Run("full reset re-runs planning", func(t *testing.T) {
		c := ts.seedContent(t, ch.ID, 1500)
		ts.seedPlan(t, c.ID)
		ts.markAnalyzed(t, c.ID, 0)

		status, body := ts.do(t, http.MethodPost, "/api/v1/contents/"+c.ID+"/reset", map[string]any{
			"full": true,
		})
		require.Equal(t, http.StatusAccepted, status)
		assert.Equal(t, float64(2), body["deletedSegments"])

		n, err := ts.client.Segment.Query().Where(segment.ContentIDEQ(c.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := ts.contents.GetContent(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, content.StateMetadataReady, got.State)
		assert.Nil(t, got.ExpectedSegmentCount)

		j, err := ts.client.Job.Query().Where(job.QueueEQ("content-processing")).Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, j.JobKey)
		assert.Equal(t, "plan:"+c.ID, *j.JobKey)
	})

	t.Run("unknown content is 404", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/api/v1/contents/nope/reset", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
