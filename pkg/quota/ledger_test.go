package quota

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
)

// fakeClock is a settable time source for ledger tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memStore is an in-memory UsageStore capturing ledger write-through.
type memStore struct {
	mu         sync.Mutex
	increments []string
	violations []ai.QuotaKind
	windows    map[string]map[string]Counts // window → model → counts
}

func newMemStore() *memStore {
	return &memStore{windows: map[string]map[string]Counts{}}
}

func (m *memStore) IncrementUsage(_ context.Context, model, window string, _, requests, tokens int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.increments = append(m.increments, model+"/"+window)
	if m.windows[window] == nil {
		m.windows[window] = map[string]Counts{}
	}
	c := m.windows[window][model]
	c.Requests += requests
	c.Tokens += tokens
	m.windows[window][model] = c
	return nil
}

func (m *memStore) WindowCounts(_ context.Context, window string, _ int64) (map[string]Counts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]Counts{}
	for model, c := range m.windows[window] {
		out[model] = c
	}
	return out, nil
}

func (m *memStore) InsertViolation(_ context.Context, _ string, kind ai.QuotaKind, _ *int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.violations = append(m.violations, kind)
	return nil
}

// baseTime is 10 seconds into a calendar minute, mid-day UTC.
var baseTime = time.Date(2025, 6, 1, 12, 30, 10, 0, time.UTC)

func newTestLedger(t *testing.T, tier config.Tier, opts ...LedgerOption) (*Ledger, *fakeClock) {
	t.Helper()
	clock := newFakeClock(baseTime)
	opts = append(opts, WithClock(clock.Now))
	return NewLedger(context.Background(), tier, opts...), clock
}

func TestCanMake_AllowsWithinLimits(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	d := l.CanMake(ModelGeminiPro, 10_000)
	assert.True(t, d.Allowed)
}

func TestCanMake_DeniesRPM(t *testing.T) {
	l, clock := newTestLedger(t, config.TierFree)

	// Free-tier pro allows 5 requests per minute.
	for i := 0; i < 5; i++ {
		require.True(t, l.CanMake(ModelGeminiPro, 100).Allowed)
		l.Record(context.Background(), ModelGeminiPro, 100)
	}

	d := l.CanMake(ModelGeminiPro, 100)
	require.False(t, d.Allowed)
	assert.Equal(t, DimRPM, d.Dimension)
	// 10 seconds into the minute: 50 seconds to the boundary.
	assert.Equal(t, 50, d.WaitSec)

	// The window rolls on the calendar boundary.
	clock.Advance(50 * time.Second)
	assert.True(t, l.CanMake(ModelGeminiPro, 100).Allowed)
}

func TestCanMake_DeniesTPM(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)

	l.Record(context.Background(), ModelGeminiPro, 200_000)
	d := l.CanMake(ModelGeminiPro, 60_000)
	require.False(t, d.Allowed)
	assert.Equal(t, DimTPM, d.Dimension)
	assert.Equal(t, 50, d.WaitSec)
}

func TestCanMake_DeniesRPD(t *testing.T) {
	clock := newFakeClock(baseTime)
	l := NewLedger(context.Background(), config.TierFree, WithClock(clock.Now))

	// Exhaust the 100-request daily budget without touching the minute
	// window: spread one request per minute.
	for i := 0; i < 100; i++ {
		require.True(t, l.CanMake(ModelGeminiPro, 10).Allowed, "request %d", i)
		l.Record(context.Background(), ModelGeminiPro, 10)
		clock.Advance(time.Minute)
	}

	d := l.CanMake(ModelGeminiPro, 10)
	require.False(t, d.Allowed)
	assert.Equal(t, DimRPD, d.Dimension)
	// WaitSec reaches to end of day.
	unix := clock.Now().Unix()
	assert.Equal(t, int(86400-unix%86400), d.WaitSec)
}

func TestCanMake_DeniesMaxTokens(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	d := l.CanMake(ModelGeminiPro, 300_000)
	require.False(t, d.Allowed)
	assert.Equal(t, DimMaxTok, d.Dimension)
	assert.Zero(t, d.WaitSec)
}

func TestCanMake_UnknownModelConservative(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)

	// Never fails the caller; conservative defaults apply instead.
	require.True(t, l.CanMake("mystery-model", 100).Allowed)
	l.Record(context.Background(), "mystery-model", 100)
	l.Record(context.Background(), "mystery-model", 100)
	d := l.CanMake("mystery-model", 100)
	assert.False(t, d.Allowed)
}

func TestRecord_WriteThrough(t *testing.T) {
	store := newMemStore()
	l, _ := newTestLedger(t, config.TierFree, WithStore(store))

	l.Record(context.Background(), ModelGeminiPro, 12_000)

	assert.Equal(t,
		[]string{ModelGeminiPro + "/minute", ModelGeminiPro + "/day"},
		store.increments)

	u, _ := l.Usage(ModelGeminiPro)
	assert.Equal(t, int64(1), u.RequestsInMinute)
	assert.Equal(t, int64(12_000), u.TokensInMinute)
	assert.Equal(t, int64(1), u.RequestsInDay)
}

func TestNewLedger_WarmLoad(t *testing.T) {
	store := newMemStore()
	seed, _ := newTestLedger(t, config.TierFree, WithStore(store))
	seed.Record(context.Background(), ModelGeminiFlash, 5_000)
	seed.Record(context.Background(), ModelGeminiFlash, 5_000)

	restarted, _ := newTestLedger(t, config.TierFree, WithStore(store))
	u, _ := restarted.Usage(ModelGeminiFlash)
	assert.Equal(t, int64(2), u.RequestsInMinute)
	assert.Equal(t, int64(10_000), u.TokensInMinute)
	assert.Equal(t, int64(2), u.RequestsInDay)
}

func TestSetTier_ResetsUsageOnly(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	l.Record(context.Background(), ModelGeminiPro, 1_000)

	l.SetTier(config.TierT1)

	u, limits := l.Usage(ModelGeminiPro)
	assert.Zero(t, u.RequestsInMinute)
	assert.Equal(t, int64(150), limits.RPM)
}

func TestOverloadMarks(t *testing.T) {
	l, clock := newTestLedger(t, config.TierFree,
		WithOverloadCooldown(5*time.Minute))

	assert.False(t, l.IsOverloaded(ModelGeminiPro))
	l.MarkOverloaded(ModelGeminiPro)
	assert.True(t, l.IsOverloaded(ModelGeminiPro))
	assert.Equal(t, 1, l.OverloadedCount())

	clock.Advance(5*time.Minute + time.Second)
	assert.False(t, l.IsOverloaded(ModelGeminiPro))
	assert.Zero(t, l.OverloadedCount())
}

func TestWaitForQuota_CancelledContext(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	for i := 0; i < 5; i++ {
		l.Record(context.Background(), ModelGeminiPro, 100)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.WaitForQuota(ctx, ModelGeminiPro, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForQuota_ImmediateWhenAllowed(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	assert.NoError(t, l.WaitForQuota(context.Background(), ModelGeminiPro, 100))
}

func TestRecordViolation_Persists(t *testing.T) {
	store := newMemStore()
	l, _ := newTestLedger(t, config.TierFree, WithStore(store))

	l.RecordViolation(context.Background(), ModelGeminiPro, Violation{
		Kind:          ai.QuotaRPM,
		RetryDelaySec: 45,
	})
	assert.Equal(t, []ai.QuotaKind{ai.QuotaRPM}, store.violations)
}
