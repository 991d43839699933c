package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vidsage.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, TierFree, cfg.Quota.Tier)
	assert.Equal(t, 900, cfg.Pipeline.MaxSegmentSec)
	assert.Equal(t, 30, cfg.Pipeline.SegmentOverlapSec)
	assert.Equal(t, 4, cfg.Pipeline.MaxAttemptsAnalysis)
	assert.Equal(t, 5, cfg.Pipeline.MaxAttemptsCombination)
	assert.Equal(t, int64(30_000), cfg.Pipeline.BaseBackoffMs)
	assert.Equal(t, 50_000, cfg.Pipeline.StreamBufferCap)
	assert.Equal(t, 300, cfg.Quota.OverloadCooldownSec)
	assert.Equal(t, EstimateOptimized, cfg.Quota.TokenEstimateMode)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
quota:
  tier: t1
  overload_cooldown_sec: 120
pipeline:
  max_segment_sec: 600
  max_attempts_analysis: 2
queue:
  default_workers: 3
  throttles:
    segment-analysis:
      max: 2
      window_ms: 30000
api:
  listen_addr: ":9090"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, TierT1, cfg.Quota.Tier)
	assert.Equal(t, 120, cfg.Quota.OverloadCooldownSec)
	assert.Equal(t, 600, cfg.Pipeline.MaxSegmentSec)
	assert.Equal(t, 2, cfg.Pipeline.MaxAttemptsAnalysis)
	// Untouched values keep their defaults.
	assert.Equal(t, 30, cfg.Pipeline.SegmentOverlapSec)
	assert.Equal(t, 5, cfg.Pipeline.MaxAttemptsCombination)
	assert.Equal(t, 3, cfg.Queue.DefaultWorkers)
	assert.Equal(t, Throttle{Max: 2, WindowMs: 30_000}, cfg.Queue.ThrottleFor(QueueSegmentAnalysis))
	assert.Equal(t, ":9090", cfg.API.ListenAddr)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_LISTEN_ADDR", ":7777")
	dir := writeConfigFile(t, `
api:
  listen_addr: "{{.TEST_LISTEN_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.API.ListenAddr)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "quota: [this is not a mapping")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_InvalidTierRejected(t *testing.T) {
	dir := writeConfigFile(t, `
quota:
  tier: platinum
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestQueueConfig_Lookups(t *testing.T) {
	cfg := DefaultQueueConfig()

	t.Run("configured queue", func(t *testing.T) {
		assert.Equal(t, 4, cfg.WorkersFor(QueueSegmentAnalysis))
		th := cfg.ThrottleFor(QueueSegmentAnalysis)
		assert.Equal(t, 8, th.Max)
		assert.Equal(t, time.Minute, th.Window())
	})

	t.Run("unknown queue falls back", func(t *testing.T) {
		assert.Equal(t, cfg.DefaultWorkers, cfg.WorkersFor("no-such-queue"))
		th := cfg.ThrottleFor("no-such-queue")
		assert.Equal(t, 10, th.Max)
	})
}

func TestAllQueues_CoversEveryStage(t *testing.T) {
	queues := AllQueues()
	assert.Len(t, queues, 7)
	assert.Contains(t, queues, QueueChannelDiscovery)
	assert.Contains(t, queues, QueueSegmentAnalysis)
	assert.Contains(t, queues, QueueCombination)
	assert.Contains(t, queues, QueueQuotaCleanup)
}
