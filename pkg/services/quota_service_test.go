package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/quotausage"
	"github.com/vidsage/vidsage/ent/quotaviolation"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/quota"
	testdb "github.com/vidsage/vidsage/test/database"
)

func TestQuotaService_IncrementUsage_Upserts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()

	epoch := time.Now().Unix() / 60
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-pro", quota.WindowMinute, epoch, 1, 12_000))
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-pro", quota.WindowMinute, epoch, 1, 8_000))

	counts, err := svc.WindowCounts(ctx, quota.WindowMinute, epoch)
	require.NoError(t, err)
	assert.Equal(t, quota.Counts{Requests: 2, Tokens: 20_000}, counts["gemini-2.5-pro"])

	// One row, not two: the second increment hit the conflict path.
	n, err := client.QuotaUsage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQuotaService_WindowCounts_ScopedToEpoch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()

	epoch := time.Now().Unix() / 60
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-pro", quota.WindowMinute, epoch, 1, 100))
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-flash", quota.WindowMinute, epoch, 2, 200))
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-pro", quota.WindowMinute, epoch-1, 9, 900))

	counts, err := svc.WindowCounts(ctx, quota.WindowMinute, epoch)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.Equal(t, int64(1), counts["gemini-2.5-pro"].Requests)
	assert.Equal(t, int64(2), counts["gemini-2.5-flash"].Requests)
}

func TestQuotaService_Violations(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()

	retry := 45
	require.NoError(t, svc.InsertViolation(ctx, "gemini-2.5-pro", ai.QuotaRPM, &retry, "429 slow down"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.InsertViolation(ctx, "gemini-2.5-pro", ai.QuotaRPD, nil, "429 daily"))

	violations, err := svc.ListViolations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, violations, 2)
	// Newest first.
	assert.Equal(t, quotaviolation.KindRpd, violations[0].Kind)
	assert.Equal(t, quotaviolation.KindRpm, violations[1].Kind)
	require.NotNil(t, violations[1].RetryDelaySec)
	assert.Equal(t, 45, *violations[1].RetryDelaySec)
}

func TestQuotaService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()
	cfg := config.DefaultRetentionConfig()

	now := time.Now()
	epoch := now.Unix() / 60

	// Fresh and stale usage rows.
	require.NoError(t, svc.IncrementUsage(ctx, "gemini-2.5-pro", quota.WindowMinute, epoch, 1, 100))
	err := client.QuotaUsage.Create().
		SetID("stale-row").
		SetModel("gemini-2.5-flash").
		SetWindow(quotausage.WindowMinute).
		SetEpoch(epoch - 120).
		SetRequests(3).
		SetTokens(300).
		SetUpdatedAt(now.Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// An aged violation, a recent RPD violation past its shorter window,
	// and a fresh one.
	err = client.QuotaViolation.Create().
		SetID("aged").
		SetModel("gemini-2.5-pro").
		SetKind(quotaviolation.KindRpm).
		SetCreatedAt(now.Add(-8 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.QuotaViolation.Create().
		SetID("stale-rpd").
		SetModel("gemini-2.5-pro").
		SetKind(quotaviolation.KindRpd).
		SetCreatedAt(now.Add(-36 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.InsertViolation(ctx, "gemini-2.5-pro", ai.QuotaRPM, nil, "fresh"))

	report, err := svc.Cleanup(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.StaleUsageRows)
	assert.Equal(t, 1, report.AgedViolations)
	assert.Equal(t, 1, report.RPDViolations)

	remaining, err := svc.ListViolations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].RawPayload)
}

func TestQuotaService_Cleanup_LastNBound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.InsertViolation(ctx, "gemini-2.5-pro", ai.QuotaRPM, nil, "x"))
	}

	cfg := config.DefaultRetentionConfig()
	cfg.MaxViolations = 3

	report, err := svc.Cleanup(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, report.OverflowRemoved)

	n, err := client.QuotaViolation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// The QuotaService is the ledger's write-through store; this exercises
// the two together end to end.
func TestQuotaService_BacksLedger(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQuotaService(client.Client)
	ctx := context.Background()

	ledger := quota.NewLedger(ctx, config.TierFree, quota.WithStore(svc))
	ledger.Record(ctx, "gemini-2.5-pro", 12_000)

	restarted := quota.NewLedger(ctx, config.TierFree, quota.WithStore(svc))
	usage, _ := restarted.Usage("gemini-2.5-pro")
	assert.Equal(t, int64(1), usage.RequestsInMinute)
	assert.Equal(t, int64(12_000), usage.TokensInMinute)
	assert.Equal(t, int64(1), usage.RequestsInDay)
}
