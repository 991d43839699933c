package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/prompt"
	"github.com/vidsage/vidsage/ent/segment"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/analysis"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
)

// CombinationHandler merges a video's settled segment artifacts into the
// combined analysis, refining the overall summary through the AI
// provider, and finishes the video.
type CombinationHandler struct {
	stores      Stores
	ai          ai.Provider
	fanin       *Fanin
	ledger      *quota.Ledger
	selector    *quota.Selector
	coordinator *quota.Coordinator
	cfg         *config.PipelineConfig
	quotaCfg    *config.QuotaConfig
}

// NewCombinationHandler creates the combination handler.
func NewCombinationHandler(stores Stores, provider ai.Provider, fanin *Fanin, ledger *quota.Ledger, selector *quota.Selector, coordinator *quota.Coordinator, cfg *config.PipelineConfig, quotaCfg *config.QuotaConfig) *CombinationHandler {
	stores.validate()
	if provider == nil || fanin == nil || ledger == nil || selector == nil || coordinator == nil || cfg == nil || quotaCfg == nil {
		panic("NewCombinationHandler: all dependencies are required")
	}
	return &CombinationHandler{
		stores:      stores,
		ai:          provider,
		fanin:       fanin,
		ledger:      ledger,
		selector:    selector,
		coordinator: coordinator,
		cfg:         cfg,
		quotaCfg:    quotaCfg,
	}
}

// Process runs one combination delivery.
func (h *CombinationHandler) Process(ctx context.Context, j *ent.Job, wc queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload CombinationPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		return queue.Failed(queue.FailValidation, err)
	}
	log := slog.With("content_id", payload.ContentID)

	// Defensive re-check: stage completions arrive out of order and
	// triggers can race resets.
	readiness, err := h.fanin.Readiness(ctx, payload.ContentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Failed(queue.FailValidation, err)
		}
		return queue.Failed(queue.FailTransient, err)
	}
	switch readiness.State {
	case ReadinessReady:
	case ReadinessPartial:
		if !payload.AllowPartial {
			log.Info("Video is partial and partial combination was not requested, skipping",
				"completed", readiness.Completed, "failed", readiness.Failed)
			return queue.Success()
		}
	default:
		log.Info("Video not ready for combination, skipping", "readiness", readiness.State)
		return queue.Success()
	}

	segments, err := h.stores.Segments.ListByState(ctx, payload.ContentID, segment.StateAnalyzed)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	if len(segments) == 0 {
		return queue.Failed(queue.FailValidation, fmt.Errorf("no analyzed segments for content %s", payload.ContentID))
	}

	artifacts := make([]analysis.SegmentArtifact, 0, len(segments))
	modelsUsed := make([]string, 0, len(segments)+1)
	seenModels := make(map[string]bool)
	for _, seg := range segments {
		artifact, err := artifactFromMap(seg.AnalysisResult)
		if err != nil {
			return queue.Failed(queue.FailValidation,
				fmt.Errorf("segment %d carries a malformed artifact: %w", seg.Index, err))
		}
		artifacts = append(artifacts, *artifact)
		if seg.ModelUsed != nil && !seenModels[*seg.ModelUsed] {
			seenModels[*seg.ModelUsed] = true
			modelsUsed = append(modelsUsed, *seg.ModelUsed)
		}
	}

	combined := analysis.Combine(artifacts, readiness.Failed)

	c, err := h.stores.Contents.GetContent(ctx, payload.ContentID)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	summary, model, promptVersion, result := h.refineSummary(ctx, wc, j, payload, c.Title, combined.Summary)
	if result != nil {
		return *result
	}
	combined.Summary = summary
	if model != "" && !seenModels[model] {
		modelsUsed = append(modelsUsed, model)
	}

	combinedMap, err := toMap(combined)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	if err := h.stores.Contents.SetCombined(ctx, payload.ContentID, combinedMap, modelsUsed, promptVersion); err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	log.Info("Video combination finished",
		"segments", combined.CombinedSegments, "failed_segments", combined.FailedSegments,
		"partial", combined.Partial, "model", model)
	return queue.Success()
}

// refineSummary renders the combination prompt over the per-segment
// summaries and asks the combination model for one cohesive summary. A
// non-nil result short-circuits the delivery (deferral or failure).
func (h *CombinationHandler) refineSummary(ctx context.Context, wc queue.WorkerControl, j *ent.Job, payload CombinationPayload, title, deterministic string) (summary, model, promptVersion string, result *queue.Result) {
	p, err := h.stores.Prompts.ActivePrompt(ctx, prompt.PromptTypeCombination)
	if err != nil {
		// Without a combination prompt the deterministic merge stands.
		slog.Warn("No active combination prompt, keeping deterministic summary", "error", err)
		return deterministic, "", "", nil
	}
	promptVersion = fmt.Sprintf("%s@v%d", p.Name, p.Version)

	rendered, err := h.stores.Prompts.Render(p, map[string]interface{}{
		"title":            title,
		"segmentSummaries": deterministic,
	})
	if err != nil {
		return "", "", "", h.failContent(ctx, payload,
			fmt.Sprintf("combination prompt rendering failed: %v", err), queue.FailValidation, err)
	}

	estTokens := quota.EstimateTextTokens(rendered)
	model = payload.ForceModel
	if model == "" {
		var reason string
		model, reason = h.selector.Select(estTokens, nil)
		if model == "" {
			slog.Info("No model eligible for combination, deferring", "reason", reason)
			deferred := queue.Deferred(time.Minute)
			return "", "", "", &deferred
		}
	}

	if ok, wait := h.coordinator.ApplyPreflight(wc, model, estTokens); !ok {
		deferred := queue.Deferred(wait)
		return "", "", "", &deferred
	}

	mimeType := "text/plain"
	if p.MimeType != nil && *p.MimeType != "" {
		mimeType = *p.MimeType
	}
	stream, err := h.ai.GenerateStructured(ctx, model, []ai.PromptPart{ai.TextPart(rendered)},
		ai.GenerateConfig{ResponseMIMEType: mimeType})
	if err != nil {
		return "", "", "", h.handleProviderError(ctx, wc, j, payload, model, err)
	}
	refined, usedTokens, err := drainStream(stream, h.cfg.StreamBufferCap)
	if err != nil {
		return "", "", "", h.handleProviderError(ctx, wc, j, payload, model, err)
	}

	if usedTokens <= 0 {
		usedTokens = estTokens
	}
	h.ledger.Record(ctx, model, usedTokens)

	refined = strings.TrimSpace(refined)
	if refined == "" {
		slog.Warn("Combination model returned an empty summary, keeping deterministic merge",
			"content_id", payload.ContentID, "model", model)
		refined = deterministic
	}
	return refined, model, promptVersion, nil
}

// handleProviderError maps a classified provider fault onto content and
// job outcomes for the combination stage.
func (h *CombinationHandler) handleProviderError(ctx context.Context, wc queue.WorkerControl, j *ent.Job, payload CombinationPayload, model string, err error) *queue.Result {
	cls := ai.ClassifyError(err)
	finalAttempt := j.Attempts+1 >= j.MaxAttempts

	switch cls.Class {
	case ai.ClassQuota:
		_, retryAfter := h.coordinator.HandleQuotaViolation(ctx, wc, model, err)
		if cls.QuotaKind == ai.QuotaRPD && finalAttempt {
			return h.failContent(ctx, payload, "daily-quota", queue.FailFatal, err)
		}
		deferred := queue.Deferred(retryAfter)
		return &deferred

	case ai.ClassOverload:
		h.ledger.MarkOverloaded(model)
		h.coordinator.ApplyIntelligent(wc, config.QueueCombination, model)
		cooldown := time.Duration(h.quotaCfg.OverloadCooldownSec) * time.Second
		if cooldown <= 0 {
			cooldown = 5 * time.Minute
		}
		deferred := queue.Deferred(cooldown)
		return &deferred

	case ai.ClassValidation:
		return h.failContent(ctx, payload, fmt.Sprintf("provider rejected combination request: %s", cls.Message), queue.FailValidation, err)

	case ai.ClassFatal:
		return h.failContent(ctx, payload, fmt.Sprintf("provider fault: %s", cls.Message), queue.FailFatal, err)

	default:
		if finalAttempt {
			return h.failContent(ctx, payload, fmt.Sprintf("combination retries exhausted: %s", cls.Message), queue.FailTransient, err)
		}
		failed := queue.Failed(queue.FailTransient, err)
		return &failed
	}
}

// failContent marks the video FAILED and returns the terminal job
// failure.
func (h *CombinationHandler) failContent(ctx context.Context, payload CombinationPayload, reason string, kind queue.FailKind, cause error) *queue.Result {
	if err := h.stores.Contents.SetFailed(ctx, payload.ContentID, reason); err != nil {
		failed := queue.Failed(queue.FailTransient, err)
		return &failed
	}
	failed := queue.Failed(kind, cause)
	return &failed
}

// artifactFromMap decodes a stored analysis_result map back into a
// segment artifact.
func artifactFromMap(m map[string]interface{}) (*analysis.SegmentArtifact, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return analysis.ParseArtifact(string(raw))
}
