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

// AnalysisHandler runs one segment through the AI provider: estimate,
// select a model, clear quota preflight, stream the structured artifact,
// and settle the segment. Rate-limit signals defer the job without
// consuming an attempt or touching segment state.
type AnalysisHandler struct {
	stores      Stores
	ai          ai.Provider
	fanin       *Fanin
	ledger      *quota.Ledger
	selector    *quota.Selector
	coordinator *quota.Coordinator
	cfg         *config.PipelineConfig
	quotaCfg    *config.QuotaConfig
}

// NewAnalysisHandler creates the segment-analysis handler.
func NewAnalysisHandler(stores Stores, provider ai.Provider, fanin *Fanin, ledger *quota.Ledger, selector *quota.Selector, coordinator *quota.Coordinator, cfg *config.PipelineConfig, quotaCfg *config.QuotaConfig) *AnalysisHandler {
	stores.validate()
	if provider == nil || fanin == nil || ledger == nil || selector == nil || coordinator == nil || cfg == nil || quotaCfg == nil {
		panic("NewAnalysisHandler: all dependencies are required")
	}
	return &AnalysisHandler{
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

// Process runs one analysis delivery.
func (h *AnalysisHandler) Process(ctx context.Context, j *ent.Job, wc queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload AnalysisPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		return queue.Failed(queue.FailValidation, err)
	}
	log := slog.With("content_id", payload.ContentID, "segment_index", payload.SegmentIndex)

	seg, err := h.stores.Segments.GetByIndex(ctx, payload.ContentID, payload.SegmentIndex)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Failed(queue.FailValidation, err)
		}
		return queue.Failed(queue.FailTransient, err)
	}

	// Redelivery of an already settled segment is a no-op; no quota is
	// recorded twice.
	if seg.State == segment.StateAnalyzed {
		log.Info("Segment already analyzed, skipping redelivery")
		return queue.Success()
	}

	rendered, promptVersion, responseSchema, err := h.renderPrompt(ctx, payload, seg)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Failed(queue.FailTransient, err)
		}
		return h.settleFailed(ctx, payload, fmt.Sprintf("prompt rendering failed: %v", err), queue.FailValidation, err)
	}

	estTokens := quota.EstimateTextTokens(rendered) +
		quota.EstimateVideoTokens(seg.DurationSec, h.quotaCfg.TokenEstimateMode)

	model := payload.ForceModel
	if model == "" {
		var reason string
		model, reason = h.selector.Select(estTokens, nil)
		if model == "" {
			if reason == quota.ReasonTooLarge {
				return h.settleFailed(ctx, payload,
					fmt.Sprintf("segment estimate %d tokens exceeds every model's cap", estTokens),
					queue.FailValidation, errors.New(reason))
			}
			log.Info("No model eligible, deferring segment", "reason", reason, "est_tokens", estTokens)
			return queue.Deferred(time.Minute)
		}
	}

	// Preflight before claiming: a denied delivery reschedules with the
	// segment untouched.
	if ok, wait := h.coordinator.ApplyPreflight(wc, model, estTokens); !ok {
		return queue.Deferred(wait)
	}

	if err := h.stores.Segments.ClaimForAnalysis(ctx, payload.ContentID, payload.SegmentIndex); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Info("Segment already settled by another delivery")
			return queue.Success()
		}
		return queue.Failed(queue.FailTransient, err)
	}

	started := time.Now()
	raw, usedTokens, err := h.generate(ctx, model, payload.ExternalSourceRef, rendered, responseSchema)
	if err != nil {
		return h.handleProviderError(ctx, wc, j, payload, model, err)
	}

	// The provider answered; the ledger records the spend even if the
	// artifact turns out malformed.
	if usedTokens <= 0 {
		usedTokens = estTokens
	}
	h.ledger.Record(ctx, model, usedTokens)

	artifact, err := analysis.ParseArtifact(raw)
	if err != nil {
		return h.settleFailed(ctx, payload, fmt.Sprintf("invalid analysis artifact: %v", err), queue.FailValidation, err)
	}

	result, err := toMap(artifact)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	elapsed := time.Since(started).Milliseconds()
	if err := h.stores.Segments.MarkAnalyzed(ctx, payload.ContentID, payload.SegmentIndex, result, model, elapsed, promptVersion); err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	if err := h.fanin.OnSegmentSettled(ctx, payload.ContentID); err != nil {
		log.Error("Fan-in evaluation failed after segment analysis", "error", err)
	}

	log.Info("Segment analyzed",
		"model", model, "tokens", usedTokens, "processing_ms", elapsed)
	return queue.Success()
}

// renderPrompt loads the pinned (or active) segment-analysis prompt and
// renders it for the segment.
func (h *AnalysisHandler) renderPrompt(ctx context.Context, payload AnalysisPayload, seg *ent.Segment) (rendered, version string, schema map[string]interface{}, err error) {
	var p *ent.Prompt
	if payload.PromptID != "" {
		p, err = h.stores.Prompts.GetPrompt(ctx, payload.PromptID)
	} else {
		p, err = h.stores.Prompts.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis)
	}
	if err != nil {
		return "", "", nil, err
	}

	c, err := h.stores.Contents.GetContent(ctx, payload.ContentID)
	if err != nil {
		return "", "", nil, err
	}
	authorContext := ""
	if ch, chErr := h.stores.Channels.GetChannel(ctx, c.ChannelID); chErr == nil && ch.AuthorContext != nil {
		authorContext = *ch.AuthorContext
	}

	rendered, err = h.stores.Prompts.Render(p, map[string]interface{}{
		"startSec":      seg.StartSec,
		"endSec":        seg.EndSec,
		"title":         c.Title,
		"authorContext": authorContext,
	})
	if err != nil {
		return "", "", nil, err
	}

	schema = p.ResponseSchema
	if len(schema) == 0 {
		schema = analysis.ResponseSchema()
	}
	return rendered, fmt.Sprintf("%s@v%d", p.Name, p.Version), schema, nil
}

// generate streams one structured generation, bounding the accumulated
// response at the configured buffer cap.
func (h *AnalysisHandler) generate(ctx context.Context, model, sourceRef, renderedPrompt string, schema map[string]interface{}) (string, int, error) {
	parts := make([]ai.PromptPart, 0, 2)
	if sourceRef != "" {
		parts = append(parts, ai.FilePart(sourceRef, "video/mp4"))
	}
	parts = append(parts, ai.TextPart(renderedPrompt))

	stream, err := h.ai.GenerateStructured(ctx, model, parts, ai.GenerateConfig{
		ResponseSchema: schema,
	})
	if err != nil {
		return "", 0, err
	}
	return drainStream(stream, h.cfg.StreamBufferCap)
}

// drainStream accumulates a generation stream up to capBytes. Text past
// the cap is dropped; the stream is always consumed to its terminal
// chunk so usage metadata arrives.
func drainStream(stream <-chan ai.Chunk, capBytes int) (string, int, error) {
	var buf strings.Builder
	tokens := 0
	truncated := false

	for chunk := range stream {
		if chunk.Err != nil {
			return "", 0, chunk.Err
		}
		if chunk.Text != "" {
			if capBytes <= 0 || buf.Len() < capBytes {
				room := chunk.Text
				if capBytes > 0 && buf.Len()+len(room) > capBytes {
					room = room[:capBytes-buf.Len()]
					truncated = true
				}
				buf.WriteString(room)
			} else {
				truncated = true
			}
		}
		if chunk.Done {
			tokens = chunk.TotalTokens()
		}
	}

	if truncated {
		slog.Warn("Generation stream truncated at buffer cap", "cap", capBytes)
	}
	return buf.String(), tokens, nil
}

// handleProviderError maps a classified provider fault onto segment and
// job outcomes.
func (h *AnalysisHandler) handleProviderError(ctx context.Context, wc queue.WorkerControl, j *ent.Job, payload AnalysisPayload, model string, err error) queue.Result {
	cls := ai.ClassifyError(err)
	finalAttempt := j.Attempts+1 >= j.MaxAttempts

	switch cls.Class {
	case ai.ClassQuota:
		_, retryAfter := h.coordinator.HandleQuotaViolation(ctx, wc, model, err)
		if cls.QuotaKind == ai.QuotaRPD && finalAttempt {
			// The day's budget is gone and the delivery budget with it.
			return h.settleFailed(ctx, payload, "daily-quota", queue.FailFatal, err)
		}
		return queue.Deferred(retryAfter)

	case ai.ClassOverload:
		h.ledger.MarkOverloaded(model)
		if markErr := h.stores.Segments.MarkOverloaded(ctx, payload.ContentID, payload.SegmentIndex, cls.Message); markErr != nil {
			return queue.Failed(queue.FailTransient, markErr)
		}
		h.coordinator.ApplyIntelligent(wc, config.QueueSegmentAnalysis, model)
		cooldown := time.Duration(h.quotaCfg.OverloadCooldownSec) * time.Second
		if cooldown <= 0 {
			cooldown = 5 * time.Minute
		}
		return queue.Deferred(cooldown)

	case ai.ClassValidation:
		return h.settleFailed(ctx, payload, fmt.Sprintf("provider rejected request: %s", cls.Message), queue.FailValidation, err)

	case ai.ClassFatal:
		return h.settleFailed(ctx, payload, fmt.Sprintf("provider fault: %s", cls.Message), queue.FailFatal, err)

	default:
		if finalAttempt {
			return h.settleFailed(ctx, payload, fmt.Sprintf("retries exhausted: %s", cls.Message), queue.FailTransient, err)
		}
		if retryErr := h.stores.Segments.IncrementRetry(ctx, payload.ContentID, payload.SegmentIndex); retryErr != nil {
			slog.Error("Failed to increment segment retry count", "error", retryErr)
		}
		return queue.Failed(queue.FailTransient, err)
	}
}

// settleFailed marks the segment FAILED, runs fan-in, and returns the
// job failure.
func (h *AnalysisHandler) settleFailed(ctx context.Context, payload AnalysisPayload, reason string, kind queue.FailKind, cause error) queue.Result {
	if err := h.stores.Segments.MarkFailed(ctx, payload.ContentID, payload.SegmentIndex, reason); err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	if err := h.fanin.OnSegmentSettled(ctx, payload.ContentID); err != nil {
		slog.Error("Fan-in evaluation failed after segment failure",
			"content_id", payload.ContentID, "error", err)
	}
	return queue.Failed(kind, cause)
}

// toMap converts a struct to its JSON map representation for storage.
func toMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode artifact: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	return m, nil
}
