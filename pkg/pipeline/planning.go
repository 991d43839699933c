package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/prompt"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
)

// PlanningHandler cuts an enriched video into segments and fans out one
// analysis job per segment.
type PlanningHandler struct {
	stores Stores
	queue  *queue.Service
	cfg    *config.PipelineConfig
}

// NewPlanningHandler creates the content-processing handler.
func NewPlanningHandler(stores Stores, q *queue.Service, cfg *config.PipelineConfig) *PlanningHandler {
	stores.validate()
	if q == nil || cfg == nil {
		panic("NewPlanningHandler: queue and config are required")
	}
	return &PlanningHandler{stores: stores, queue: q, cfg: cfg}
}

// Process plans one video.
func (h *PlanningHandler) Process(ctx context.Context, j *ent.Job, _ queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload PlanningPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		return queue.Failed(queue.FailValidation, err)
	}

	c, err := h.stores.Contents.GetContent(ctx, payload.ContentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Failed(queue.FailValidation, err)
		}
		return queue.Failed(queue.FailTransient, err)
	}

	if c.DurationSec == nil || *c.DurationSec <= 0 {
		reason := "cannot plan segments: video has no positive duration"
		if err := h.stores.Contents.SetFailed(ctx, c.ID, reason); err != nil {
			return queue.Failed(queue.FailTransient, err)
		}
		return queue.Failed(queue.FailValidation, errors.New(reason))
	}

	spans := PlanSegments(*c.DurationSec, h.cfg)
	if _, err := h.stores.Segments.CreatePlanBulk(ctx, c.ID, spans); err != nil {
		if !errors.Is(err, services.ErrAlreadyExists) {
			return queue.Failed(queue.FailTransient, err)
		}
		// Redelivery after a partial fan-out: the plan is committed, and
		// the deterministic spans plus per-segment job keys make the
		// enqueue below safe to repeat.
		slog.Info("Segment plan already committed, re-running fan-out", "content_id", c.ID)
	}

	promptID := ""
	if p, err := h.stores.Prompts.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis); err == nil {
		promptID = p.ID
	} else if !errors.Is(err, services.ErrNotFound) {
		return queue.Failed(queue.FailTransient, err)
	}

	sourceRef := ""
	if c.CanonicalURL != nil {
		sourceRef = *c.CanonicalURL
	}

	for _, span := range spans {
		_, err := h.queue.Enqueue(ctx, config.QueueSegmentAnalysis, "analyze-segment",
			AnalysisPayload{
				ContentID:         c.ID,
				SegmentIndex:      span.Index,
				ExternalSourceRef: sourceRef,
				PromptID:          promptID,
			}, queue.Options{
				Attempts:      h.cfg.MaxAttemptsAnalysis,
				BackoffBaseMs: h.cfg.BaseBackoffMs,
				JobKey:        fmt.Sprintf("analyze:%s:%d", c.ID, span.Index),
			})
		if err != nil {
			return queue.Failed(queue.FailTransient, err)
		}
	}

	slog.Info("Segment plan committed",
		"content_id", c.ID, "duration_sec", *c.DurationSec, "segments", len(spans))
	return queue.Success()
}
