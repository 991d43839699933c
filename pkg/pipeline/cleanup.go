package pipeline

import (
	"context"
	"log/slog"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
)

// CleanupStableID identifies the hourly quota-cleanup repeatable job.
const CleanupStableID = "quota-cleanup"

// CleanupHandler prunes stale quota usage rows and aged violation
// records on the retention schedule.
type CleanupHandler struct {
	stores    Stores
	retention *config.RetentionConfig
	cfg       *config.PipelineConfig
}

// NewCleanupHandler creates the quota-cleanup handler.
func NewCleanupHandler(stores Stores, retention *config.RetentionConfig, cfg *config.PipelineConfig) *CleanupHandler {
	stores.validate()
	if retention == nil || cfg == nil {
		panic("NewCleanupHandler: retention and pipeline config are required")
	}
	return &CleanupHandler{stores: stores, retention: retention, cfg: cfg}
}

// Process runs one retention sweep.
func (h *CleanupHandler) Process(ctx context.Context, _ *ent.Job, _ queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	report, err := h.stores.Quotas.Cleanup(ctx, h.retention)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	slog.Info("Quota retention sweep finished",
		"stale_usage_rows", report.StaleUsageRows,
		"aged_violations", report.AgedViolations,
		"rpd_violations", report.RPDViolations,
		"overflow_removed", report.OverflowRemoved)
	return queue.Success()
}

// SeedCleanupSchedule registers the hourly cleanup repeatable.
func SeedCleanupSchedule(ctx context.Context, q *queue.Service, retention *config.RetentionConfig) error {
	return q.EnqueueRepeatable(ctx, config.QueueQuotaCleanup, "quota-cleanup", nil,
		retention.CleanupCron, CleanupStableID)
}
