package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/quotausage"
	"github.com/vidsage/vidsage/ent/quotaviolation"
	"github.com/vidsage/vidsage/pkg/config"
)

func TestCleanupHandler_PrunesStaleRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	retention := config.DefaultRetentionConfig()

	// A stale minute window and a live one.
	require.NoError(t, env.client.QuotaUsage.Create().
		SetID(uuid.NewString()).
		SetModel("gemini-2.5-pro").
		SetWindow(quotausage.WindowMinute).
		SetEpoch(1).
		SetRequests(3).
		SetUpdatedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx))
	require.NoError(t, env.client.QuotaUsage.Create().
		SetID(uuid.NewString()).
		SetModel("gemini-2.5-pro").
		SetWindow(quotausage.WindowDay).
		SetEpoch(time.Now().Unix() / 86400).
		SetRequests(7).
		Exec(ctx))

	// A daily-quota violation past its shorter max age but inside the
	// general one.
	require.NoError(t, env.client.QuotaViolation.Create().
		SetID(uuid.NewString()).
		SetModel("gemini-2.5-pro").
		SetKind(quotaviolation.KindRpd).
		SetCreatedAt(time.Now().Add(-36 * time.Hour)).
		Exec(ctx))
	require.NoError(t, env.client.QuotaViolation.Create().
		SetID(uuid.NewString()).
		SetModel("gemini-2.5-flash").
		SetKind(quotaviolation.KindRpm).
		Exec(ctx))

	handler := NewCleanupHandler(env.stores, retention, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "quota-cleanup", nil, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	usageRows, err := env.client.QuotaUsage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, usageRows, 1)
	assert.Equal(t, quotausage.WindowDay, usageRows[0].Window)

	violations, err := env.client.QuotaViolation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, quotaviolation.KindRpm, violations[0].Kind)
}

func TestSeedCleanupSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	retention := config.DefaultRetentionConfig()

	require.NoError(t, SeedCleanupSchedule(ctx, env.queue, retention))
	// Idempotent across restarts.
	require.NoError(t, SeedCleanupSchedule(ctx, env.queue, retention))

	def, err := env.client.CronJob.Query().
		Where(cronjob.StableIDEQ(CleanupStableID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.QueueQuotaCleanup, def.Queue)
	assert.Equal(t, retention.CleanupCron, def.CronPattern)
}
