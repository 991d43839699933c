// Package pipeline contains the queue handlers that move a video from
// discovery to its combined analysis artifact: discovery, metadata,
// chunk planning, segment analysis, combination, stats refresh, and
// quota cleanup. One handler is bound to each queue; handlers speak to
// the outside world only through the source and AI provider interfaces
// and to the database only through the state-store services.
package pipeline

import (
	"context"
	"time"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/services"
)

// Stores bundles the state-store services every stage shares.
type Stores struct {
	Channels *services.ChannelService
	Contents *services.ContentService
	Segments *services.SegmentService
	Prompts  *services.PromptService
	Quotas   *services.QuotaService
}

func (s Stores) validate() {
	if s.Channels == nil || s.Contents == nil || s.Segments == nil || s.Prompts == nil || s.Quotas == nil {
		panic("pipeline: all store services are required")
	}
}

// stageContext bounds one delivery to the configured stage timeout.
func stageContext(ctx context.Context, cfg *config.PipelineConfig) (context.Context, context.CancelFunc) {
	timeout := cfg.StageTimeout
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	return context.WithTimeout(ctx, timeout)
}
