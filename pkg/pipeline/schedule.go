package pipeline

import (
	"context"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
)

// ScheduleAdapter implements services.DiscoveryScheduler over the queue
// service: one repeatable discovery definition per channel, keyed by a
// stable identifier so create/update/delete reconcile cleanly.
type ScheduleAdapter struct {
	queue *queue.Service
}

// NewScheduleAdapter creates the adapter.
func NewScheduleAdapter(q *queue.Service) *ScheduleAdapter {
	if q == nil {
		panic("NewScheduleAdapter: queue service is required")
	}
	return &ScheduleAdapter{queue: q}
}

// DiscoveryStableID returns the repeatable-definition identity of a
// channel's discovery schedule.
func DiscoveryStableID(channelID string) string {
	return "discover:" + channelID
}

// ScheduleDiscovery upserts the channel's repeatable discovery job.
func (a *ScheduleAdapter) ScheduleDiscovery(ctx context.Context, channelID, cronPattern string) error {
	return a.queue.EnqueueRepeatable(ctx, config.QueueChannelDiscovery, "discover",
		DiscoveryPayload{ChannelID: channelID}, cronPattern, DiscoveryStableID(channelID))
}

// UnscheduleDiscovery removes the channel's repeatable discovery job.
func (a *ScheduleAdapter) UnscheduleDiscovery(ctx context.Context, channelID string) error {
	return a.queue.RemoveRepeatable(ctx, DiscoveryStableID(channelID))
}
