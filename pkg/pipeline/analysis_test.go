package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/segment"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
)

// seedSingleSegment plans a one-segment video and returns the content.
func seedSingleSegment(t *testing.T, env *testEnv, durationSec int) *ent.Content {
	t.Helper()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, durationSec)
	env.seedPlan(t, c.ID, []services.SegmentSpan{{Index: 0, StartSec: 0, EndSec: durationSec}})
	return c
}

func analysisJob(t *testing.T, contentID string, index, attempts, maxAttempts int, forceModel string) *ent.Job {
	t.Helper()
	return testJob(t, "analyze-segment", AnalysisPayload{
		ContentID:         contentID,
		SegmentIndex:      index,
		ExternalSourceRef: "https://www.youtube.com/watch?v=x",
		ForceModel:        forceModel,
	}, attempts, maxAttempts)
}

func TestAnalysisHandler_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateAnalyzed, seg.State)
	assert.Equal(t, "gaming", seg.AnalysisResult["category"])
	require.NotNil(t, seg.ModelUsed)
	assert.Equal(t, quota.ModelGeminiPro, *seg.ModelUsed, "selector prefers the strongest eligible model")
	require.NotNil(t, seg.PromptVersion)
	assert.Equal(t, "segment-analysis-default@v1", *seg.PromptVersion)

	usage, _ := env.ledger.Usage(quota.ModelGeminiPro)
	assert.Equal(t, int64(1), usage.RequestsInMinute)
	assert.Equal(t, int64(100), usage.TokensInMinute, "actual stream usage wins over the estimate")

	// Single-segment video: fan-in sees READY and enqueues combination.
	combineJob, err := env.client.Job.Query().Where(job.QueueEQ("combination")).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, combineJob.JobKey)
	assert.Equal(t, CombineJobKey(c.ID), *combineJob.JobKey)
}

func TestAnalysisHandler_RedeliveryIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)
	handler := env.analysisHandler()

	require.True(t, handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{}).Succeeded())
	require.True(t, handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{}).Succeeded())

	assert.Equal(t, 1, env.ai.callCount(), "settled segments never hit the provider again")
	usage, _ := env.ledger.Usage(quota.ModelGeminiPro)
	assert.Equal(t, int64(1), usage.RequestsInMinute, "usage is recorded exactly once")
}

func TestAnalysisHandler_PreflightDenialDefers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)
	handler := env.analysisHandler()

	// Exhaust the model's RPM budget (free tier: 5/min).
	for i := 0; i < 5; i++ {
		env.ledger.Record(ctx, quota.ModelGeminiPro, 10)
	}

	wc := &pauseRecorder{}
	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, quota.ModelGeminiPro), wc)

	delay, deferred := res.DeferredFor()
	require.True(t, deferred, "preflight denial defers, it never fails")
	assert.Greater(t, delay, time.Duration(0))
	require.Len(t, wc.pauses, 1, "worker intake pauses alongside the deferral")

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StatePending, seg.State, "a deferred delivery leaves the segment untouched")
	assert.Zero(t, env.ai.callCount())
}

func TestAnalysisHandler_QuotaViolationDefers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(quotaAPIError("GenerateRequestsPerMinutePerProjectPerModel", "45s")), nil
	}
	handler := env.analysisHandler()

	wc := &pauseRecorder{}
	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), wc)

	delay, deferred := res.DeferredFor()
	require.True(t, deferred)
	assert.Equal(t, 45*time.Second, delay, "explicit retry info wins over defaults")
	require.Len(t, wc.pauses, 1)
	assert.Equal(t, 45*time.Second, wc.pauses[0])

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateProcessing, seg.State, "the claim stands; the retry resumes it")
}

func TestAnalysisHandler_DailyQuotaOnFinalAttempt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(quotaAPIError("GenerateRequestsPerDayPerProjectPerModel", "")), nil
	}
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 3, 4, ""), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailFatal, kind)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateFailed, seg.State)
	require.NotNil(t, seg.Error)
	assert.Equal(t, "daily-quota", *seg.Error)

	// All segments failed: not PARTIAL, and never auto-combined.
	n, err := env.client.Job.Query().Where(job.QueueEQ("combination")).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAnalysisHandler_OverloadMarksAndDefers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(genai.APIError{Code: 503, Message: "model overloaded"}), nil
	}
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	delay, deferred := res.DeferredFor()
	require.True(t, deferred)
	assert.Equal(t, 300*time.Second, delay)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateOverloaded, seg.State)
	assert.True(t, env.ledger.IsOverloaded(quota.ModelGeminiPro))

	// The overloaded segment is claimable again on redelivery, and the
	// selector now avoids the cooling model.
	env.ai.generate = nil
	res = handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	seg, err = env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateAnalyzed, seg.State)
	require.NotNil(t, seg.ModelUsed)
	assert.Equal(t, quota.ModelGeminiFlash, *seg.ModelUsed)
}

func TestAnalysisHandler_ValidationFaultFailsSegment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(genai.APIError{Code: 400, Message: "bad file uri"}), nil
	}
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateFailed, seg.State)
}

func TestAnalysisHandler_MalformedArtifactFailsSegment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamOf(`{"category": "gaming"}`, 80), nil
	}
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)

	// The provider did answer, so the spend is still on the ledger.
	usage, _ := env.ledger.Usage(quota.ModelGeminiPro)
	assert.Equal(t, int64(1), usage.RequestsInMinute)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateFailed, seg.State)
	require.NotNil(t, seg.Error)
	assert.Contains(t, *seg.Error, "invalid analysis artifact")
}

func TestAnalysisHandler_TransientFaultRetries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedSingleSegment(t, env, 600)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return nil, errors.New("connection reset by peer")
	}
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailTransient, kind)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, seg.RetryCount)
	assert.Equal(t, segment.StateProcessing, seg.State)

	// The last delivery settles the segment.
	res = handler.Process(ctx, analysisJob(t, c.ID, 0, 3, 4, ""), &pauseRecorder{})
	_, _, failed = res.Failure()
	require.True(t, failed)

	seg, err = env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateFailed, seg.State)
	require.NotNil(t, seg.Error)
	assert.Contains(t, *seg.Error, "retries exhausted")
}

func TestAnalysisHandler_OversizedSegmentFailsPermanently(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	// ~715k estimated tokens, past every free-tier model's request cap.
	c := seedSingleSegment(t, env, 10_000)
	handler := env.analysisHandler()

	res := handler.Process(ctx, analysisJob(t, c.ID, 0, 0, 4, ""), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)

	seg, err := env.stores.Segments.GetByIndex(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, segment.StateFailed, seg.State)
	require.NotNil(t, seg.Error)
	assert.Contains(t, *seg.Error, "exceeds every model's cap")
}
