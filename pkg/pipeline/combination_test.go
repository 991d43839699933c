package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
)

// seedReadyContent plans a two-segment video with both segments analyzed.
func seedReadyContent(t *testing.T, env *testEnv) *ent.Content {
	t.Helper()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, 1500)
	env.seedPlan(t, c.ID, twoSegmentSpans())
	markAnalyzed(t, env, c.ID, 0)
	markAnalyzed(t, env, c.ID, 1)
	return c
}

// seedPartialContent plans two segments with one analyzed and one failed.
func seedPartialContent(t *testing.T, env *testEnv) *ent.Content {
	t.Helper()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, 1500)
	env.seedPlan(t, c.ID, twoSegmentSpans())
	markAnalyzed(t, env, c.ID, 0)
	require.NoError(t, env.stores.Segments.MarkFailed(context.Background(), c.ID, 1, "daily-quota"))
	return c
}

func combinationJob(t *testing.T, payload CombinationPayload, attempts, maxAttempts int) *ent.Job {
	t.Helper()
	return testJob(t, "combine-analysis", payload, attempts, maxAttempts)
}

func TestCombinationHandler_CombinesReadyVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	env.ai.generate = func(_ context.Context, model string, parts []ai.PromptPart, cfg ai.GenerateConfig) (<-chan ai.Chunk, error) {
		assert.Equal(t, "text/plain", cfg.ResponseMIMEType)
		return streamOf("One cohesive summary of the whole video.", 60), nil
	}
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateAnalyzed, got.State)
	require.NotNil(t, got.CombinedAt)

	assert.Equal(t, "One cohesive summary of the whole video.", got.CombinedAnalysis["summary"])
	assert.Equal(t, float64(2), got.CombinedAnalysis["combined_segments"])
	assert.Nil(t, got.CombinedAnalysis["partial"])

	// Segment models plus the refinement model, deduplicated.
	assert.Contains(t, got.ModelsUsed, "gemini-2.5-flash")
	assert.Contains(t, got.ModelsUsed, quota.ModelGeminiPro)
	require.NotNil(t, got.PromptVersion)
	assert.Equal(t, "combination-default@v1", *got.PromptVersion)

	usage, _ := env.ledger.Usage(quota.ModelGeminiPro)
	assert.Equal(t, int64(1), usage.RequestsInMinute)
}

func TestCombinationHandler_EmptySummaryKeepsDeterministicMerge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamOf("   \n", 10), nil
	}
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Contains(t, got.CombinedAnalysis["summary"], "Segment summary.")
}

func TestCombinationHandler_PartialWithoutConsentSkips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedPartialContent(t, env)
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), &pauseRecorder{})
	assert.True(t, res.Succeeded(), "a stale combine job over a partial video is a no-op")

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CombinedAnalysis)
	assert.Zero(t, env.ai.callCount())
}

func TestCombinationHandler_ManualPartialCombine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedPartialContent(t, env)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamOf("Summary of the surviving half.", 40), nil
	}
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID, AllowPartial: true}, 0, 5), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateAnalyzed, got.State)
	assert.Equal(t, true, got.CombinedAnalysis["partial"])
	assert.Equal(t, float64(1), got.CombinedAnalysis["combined_segments"])
	assert.Equal(t, float64(1), got.CombinedAnalysis["failed_segments"])
}

func TestCombinationHandler_NotReadyIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, 1500)
	env.seedPlan(t, c.ID, twoSegmentSpans())
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), &pauseRecorder{})
	assert.True(t, res.Succeeded(), "in-flight segments mean the job arrived early; drop it")
	assert.Zero(t, env.ai.callCount())
}

func TestCombinationHandler_MissingContentFails(t *testing.T) {
	env := newTestEnv(t)
	handler := env.combinationHandler()

	res := handler.Process(context.Background(), combinationJob(t, CombinationPayload{ContentID: "gone"}, 0, 5), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)
}

func TestCombinationHandler_QuotaViolationDefers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(quotaAPIError("GenerateRequestsPerMinutePerProjectPerModel", "30s")), nil
	}
	handler := env.combinationHandler()

	wc := &pauseRecorder{}
	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), wc)

	delay, deferred := res.DeferredFor()
	require.True(t, deferred)
	assert.Equal(t, 30*time.Second, delay)
	require.Len(t, wc.pauses, 1)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateProcessing, got.State, "a deferred combine leaves the video untouched")
}

func TestCombinationHandler_DailyQuotaOnFinalAttemptFailsVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(quotaAPIError("GenerateRequestsPerDayPerProjectPerModel", "")), nil
	}
	handler := env.combinationHandler()

	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 4, 5), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailFatal, kind)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateFailed, got.State)
	require.NotNil(t, got.LastError)
	assert.Equal(t, "daily-quota", *got.LastError)
}

func TestCombinationHandler_TransientExhaustionFailsVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	env.ai.generate = func(context.Context, string, []ai.PromptPart, ai.GenerateConfig) (<-chan ai.Chunk, error) {
		return streamErr(assert.AnError), nil
	}
	handler := env.combinationHandler()

	// Mid-budget delivery retries through the queue.
	res := handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 0, 5), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailTransient, kind)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateProcessing, got.State)

	// The last delivery settles the video.
	res = handler.Process(ctx, combinationJob(t, CombinationPayload{ContentID: c.ID}, 4, 5), &pauseRecorder{})
	_, _, failed = res.Failure()
	require.True(t, failed)

	got, err = env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateFailed, got.State)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "combination retries exhausted")
}

func TestCombinationHandler_ForceModelBypassesSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := seedReadyContent(t, env)

	var usedModel string
	env.ai.generate = func(_ context.Context, model string, _ []ai.PromptPart, _ ai.GenerateConfig) (<-chan ai.Chunk, error) {
		usedModel = model
		return streamOf("Forced-model summary.", 30), nil
	}
	handler := env.combinationHandler()

	res := handler.Process(ctx,
		combinationJob(t, CombinationPayload{ContentID: c.ID, ForceModel: quota.ModelGeminiFlashLite}, 0, 5),
		&pauseRecorder{})
	assert.True(t, res.Succeeded())
	assert.Equal(t, quota.ModelGeminiFlashLite, usedModel)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ModelsUsed, quota.ModelGeminiFlashLite)
}
