package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vidsage/vidsage/ent/segment"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
)

// ReadinessState classifies how far a video's segment set has settled.
type ReadinessState string

// Readiness states.
const (
	// ReadinessReady means every expected segment is analyzed.
	ReadinessReady ReadinessState = "ready"

	// ReadinessPartial means all segments settled but some failed; at
	// least one succeeded. Combination requires an explicit trigger.
	ReadinessPartial ReadinessState = "partial"

	// ReadinessProcessing means segments are still in flight.
	ReadinessProcessing ReadinessState = "processing"

	// ReadinessNotChunked means the video has no committed segment plan.
	ReadinessNotChunked ReadinessState = "not_chunked"
)

// Readiness is the fan-in view of one video.
type Readiness struct {
	State     ReadinessState `json:"state"`
	Expected  int            `json:"expected"`
	Completed int            `json:"completed"`
	Failed    int            `json:"failed"`
}

// Fanin computes combination readiness and enqueues the single
// combination job for a video exactly once.
type Fanin struct {
	contents *services.ContentService
	segments *services.SegmentService
	queue    *queue.Service
	cfg      *config.PipelineConfig
}

// NewFanin creates a fan-in controller.
func NewFanin(contents *services.ContentService, segments *services.SegmentService, q *queue.Service, cfg *config.PipelineConfig) *Fanin {
	if contents == nil || segments == nil || q == nil || cfg == nil {
		panic("NewFanin: all dependencies are required")
	}
	return &Fanin{contents: contents, segments: segments, queue: q, cfg: cfg}
}

// CombineJobKey returns the idempotent-enqueue key of a video's
// combination job. Concurrent triggers collapse onto one pending job.
func CombineJobKey(contentID string) string {
	return "combine:" + contentID
}

// Readiness derives the fan-in state of one video from its segment
// counts.
func (f *Fanin) Readiness(ctx context.Context, contentID string) (Readiness, error) {
	c, err := f.contents.GetContent(ctx, contentID)
	if err != nil {
		return Readiness{}, err
	}
	if c.ExpectedSegmentCount == nil || *c.ExpectedSegmentCount == 0 {
		return Readiness{State: ReadinessNotChunked}, nil
	}
	expected := *c.ExpectedSegmentCount

	counts, err := f.segments.CountByStates(ctx, contentID)
	if err != nil {
		return Readiness{}, err
	}
	completed := counts[segment.StateAnalyzed]
	failed := counts[segment.StateFailed] + counts[segment.StateOverloaded]

	r := Readiness{Expected: expected, Completed: completed, Failed: failed}
	switch {
	case completed == expected:
		r.State = ReadinessReady
	case completed+failed == expected && completed > 0:
		r.State = ReadinessPartial
	default:
		r.State = ReadinessProcessing
	}
	return r, nil
}

// OnSegmentSettled re-evaluates readiness after a segment reached a
// terminal state and auto-triggers combination on READY. PARTIAL videos
// wait for an explicit trigger.
func (f *Fanin) OnSegmentSettled(ctx context.Context, contentID string) error {
	r, err := f.Readiness(ctx, contentID)
	if err != nil {
		return fmt.Errorf("failed to evaluate readiness: %w", err)
	}

	switch r.State {
	case ReadinessReady:
		return f.enqueueCombination(ctx, contentID, CombinationPayload{ContentID: contentID}, 0)
	case ReadinessPartial:
		slog.Info("Video partially analyzed, awaiting explicit combination trigger",
			"content_id", contentID, "completed", r.Completed, "failed", r.Failed, "expected", r.Expected)
	}
	return nil
}

// TriggerCombination enqueues a manual combination run at high priority.
// With AllowPartial set it combines a PARTIAL video; otherwise the
// handler's defensive readiness check makes a premature trigger a no-op.
func (f *Fanin) TriggerCombination(ctx context.Context, payload CombinationPayload) error {
	return f.enqueueCombination(ctx, payload.ContentID, payload, 10)
}

func (f *Fanin) enqueueCombination(ctx context.Context, contentID string, payload CombinationPayload, priority int) error {
	_, err := f.queue.Enqueue(ctx, config.QueueCombination, "combine", payload, queue.Options{
		Attempts:      f.cfg.MaxAttemptsCombination,
		BackoffBaseMs: f.cfg.BaseBackoffMs,
		Priority:      priority,
		JobKey:        CombineJobKey(contentID),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue combination job: %w", err)
	}
	return nil
}
