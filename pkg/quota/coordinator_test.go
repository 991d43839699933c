package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/vidsage/vidsage/pkg/config"
)

// fakeWorker records PauseIntake calls.
type fakeWorker struct {
	pauses []time.Duration
}

func (f *fakeWorker) PauseIntake(d time.Duration) {
	f.pauses = append(f.pauses, d)
}

func quotaErr(quotaID string, retryDelay string) error {
	details := []map[string]any{
		{
			"@type": "type.googleapis.com/google.rpc.QuotaFailure",
			"violations": []any{
				map[string]any{"quotaId": quotaID},
			},
		},
	}
	if retryDelay != "" {
		details = append(details, map[string]any{
			"@type":      "type.googleapis.com/google.rpc.RetryInfo",
			"retryDelay": retryDelay,
		})
	}
	return genai.APIError{Code: 429, Message: "quota exceeded", Details: details}
}

func newTestCoordinator(t *testing.T) (*Coordinator, *Ledger, *fakeClock) {
	t.Helper()
	l, clock := newTestLedger(t, config.TierFree)
	c := NewCoordinator(l, config.DefaultQueueConfig())
	c.now = clock.Now
	return c, l, clock
}

func TestQueueRateLimit_Untouched(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	base := config.Throttle{Max: 8, WindowMs: 60_000}

	assert.Equal(t, base, c.QueueRateLimit("segment-analysis", base, ""))
	assert.Equal(t, base, c.QueueRateLimit("segment-analysis", base, ModelGeminiPro))
}

func TestQueueRateLimit_TightensAboveHighWater(t *testing.T) {
	c, l, _ := newTestCoordinator(t)
	base := config.Throttle{Max: 8, WindowMs: 60_000}

	// 5 of 5 RPM used: ratio 1.0 → factor clamps to 0.1.
	for i := 0; i < 5; i++ {
		l.Record(context.Background(), ModelGeminiPro, 100)
	}

	got := c.QueueRateLimit("segment-analysis", base, ModelGeminiPro)
	assert.Equal(t, 1, got.Max)
	assert.Equal(t, int64(120_000), got.WindowMs)
}

func TestApplyPreflight_Allows(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	ok, d := c.ApplyPreflight(w, ModelGeminiPro, 10_000)
	assert.True(t, ok)
	assert.Zero(t, d)
	assert.Empty(t, w.pauses)
}

func TestApplyPreflight_DeniedPausesIntake(t *testing.T) {
	c, l, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	for i := 0; i < 5; i++ {
		l.Record(context.Background(), ModelGeminiPro, 100)
	}

	ok, d := c.ApplyPreflight(w, ModelGeminiPro, 100)
	require.False(t, ok)
	// baseTime sits 10s into the minute: 50s to the boundary.
	assert.Equal(t, 50*time.Second, d)
	assert.Equal(t, []time.Duration{50 * time.Second}, w.pauses)
}

func TestApplyPreflight_CapsPause(t *testing.T) {
	clock := newFakeClock(baseTime)
	l := NewLedger(context.Background(), config.TierFree, WithClock(clock.Now))
	c := NewCoordinator(l, config.DefaultQueueConfig())
	c.now = clock.Now
	w := &fakeWorker{}

	// Exhaust the daily budget so the denial reaches to day-end.
	for i := 0; i < 100; i++ {
		l.Record(context.Background(), ModelGeminiPro, 10)
		clock.Advance(time.Minute)
	}

	ok, d := c.ApplyPreflight(w, ModelGeminiPro, 100)
	require.False(t, ok)
	assert.Equal(t, 5*time.Minute, d)
}

func TestHandleQuotaViolation_NonQuotaUntouched(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	limited, _ := c.HandleQuotaViolation(context.Background(), w, ModelGeminiPro, errors.New("connection refused"))
	assert.False(t, limited)
	assert.Empty(t, w.pauses)
}

func TestHandleQuotaViolation_ExplicitRetryDelay(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	limited, d := c.HandleQuotaViolation(context.Background(), w, ModelGeminiPro,
		quotaErr("GenerateRequestsPerModelPerMinute", "45s"))
	require.True(t, limited)
	assert.Equal(t, 45*time.Second, d)
	assert.Equal(t, []time.Duration{45 * time.Second}, w.pauses)
}

func TestHandleQuotaViolation_RPMDefault(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	_, d := c.HandleQuotaViolation(context.Background(), w, ModelGeminiPro,
		quotaErr("GenerateRequestsPerModelPerMinute", ""))
	assert.Equal(t, 2*time.Minute, d)
}

func TestHandleQuotaViolation_UnparseableDefault(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	_, d := c.HandleQuotaViolation(context.Background(), w, ModelGeminiPro,
		genai.APIError{Code: 429, Message: "slow down"})
	assert.Equal(t, time.Minute, d)
}

func TestHandleQuotaViolation_RPDPausesToDayEnd(t *testing.T) {
	c, _, clock := newTestCoordinator(t)
	w := &fakeWorker{}

	_, d := c.HandleQuotaViolation(context.Background(), w, ModelGeminiPro,
		quotaErr("GenerateRequestsPerModelPerDay", ""))

	unix := clock.Now().Unix()
	assert.Equal(t, time.Duration(86400-unix%86400)*time.Second, d)
}

func TestApplyIntelligent(t *testing.T) {
	c, l, _ := newTestCoordinator(t)
	w := &fakeWorker{}

	// 1 of 3 overloaded: no pause.
	l.MarkOverloaded(ModelGeminiPro)
	assert.False(t, c.ApplyIntelligent(w, "segment-analysis", ModelGeminiPro))
	assert.Empty(t, w.pauses)

	// 2 of 3 overloaded: extended pause of twice the baseline window.
	l.MarkOverloaded(ModelGeminiFlash)
	require.True(t, c.ApplyIntelligent(w, "segment-analysis", ModelGeminiPro))
	base := config.DefaultQueueConfig().ThrottleFor("segment-analysis")
	assert.Equal(t, []time.Duration{2 * base.Window()}, w.pauses)
}
