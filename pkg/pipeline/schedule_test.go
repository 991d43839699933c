package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/pkg/config"
)

func TestScheduleAdapter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	adapter := NewScheduleAdapter(env.queue)

	t.Run("schedule upserts the repeatable definition", func(t *testing.T) {
		require.NoError(t, adapter.ScheduleDiscovery(ctx, "ch1", "0 */6 * * *"))

		def, err := env.client.CronJob.Query().
			Where(cronjob.StableIDEQ(DiscoveryStableID("ch1"))).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.QueueChannelDiscovery, def.Queue)
		assert.Equal(t, "discover", def.Name)
		assert.Equal(t, "0 */6 * * *", def.CronPattern)
		assert.Equal(t, "ch1", def.Payload["channelId"])

		// Changing the cadence reconciles in place.
		require.NoError(t, adapter.ScheduleDiscovery(ctx, "ch1", "0 */2 * * *"))

		defs, err := env.client.CronJob.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "0 */2 * * *", defs[0].CronPattern)
	})

	t.Run("invalid cron is rejected", func(t *testing.T) {
		assert.Error(t, adapter.ScheduleDiscovery(ctx, "ch2", "whenever"))
	})

	t.Run("unschedule removes the definition", func(t *testing.T) {
		require.NoError(t, adapter.UnscheduleDiscovery(ctx, "ch1"))
		require.NoError(t, adapter.UnscheduleDiscovery(ctx, "ch1"))

		n, err := env.client.CronJob.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
