package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
)

// WorkerControl is the worker-side surface the coordinator drives. A
// paused worker stops claiming new jobs; in-flight work is unaffected.
type WorkerControl interface {
	PauseIntake(d time.Duration)
}

// Coordinator-wide pause and retry bounds.
const (
	// maxPreflightPause caps how long a ledger denial may park a worker.
	maxPreflightPause = 5 * time.Minute

	// maxDailyPause caps an RPD pause at one full day.
	maxDailyPause = 24 * time.Hour

	// retryDefaultParsed applies to RPM/TPM violations without explicit
	// retry-info.
	retryDefaultParsed = 2 * time.Minute

	// retryDefaultUnparsed applies when the 429 carried no usable quota
	// dimension at all.
	retryDefaultUnparsed = 1 * time.Minute

	// retryInternalFault applies when the coordinator itself cannot make
	// sense of the situation; long enough to stop a tight error loop.
	retryInternalFault = 5 * time.Minute

	// throttleHighWater is the usage ratio beyond which queue throttles
	// tighten dynamically.
	throttleHighWater = 0.8
)

// Coordinator bridges ledger state and provider errors into worker-level
// throttles and pauses. One shared instance; safe for concurrent use.
type Coordinator struct {
	ledger   *Ledger
	queueCfg *config.QueueConfig
	now      func() time.Time
}

// NewCoordinator creates a coordinator over the shared ledger. queueCfg
// supplies the per-queue baseline throttles.
func NewCoordinator(ledger *Ledger, queueCfg *config.QueueConfig) *Coordinator {
	if ledger == nil {
		panic("NewCoordinator: ledger is required")
	}
	if queueCfg == nil {
		panic("NewCoordinator: queue config is required")
	}
	return &Coordinator{ledger: ledger, queueCfg: queueCfg, now: time.Now}
}

// QueueRateLimit returns the effective dispatch throttle for a queue.
// When the bound model's minute usage crosses the high-water ratio, the
// allowance shrinks by clamp(1−ratio, 0.1, 1) and the window doubles,
// spreading the remaining budget across the rest of the minute.
func (c *Coordinator) QueueRateLimit(queueName string, base config.Throttle, model string) config.Throttle {
	if model == "" {
		return base
	}

	usage, limits := c.ledger.Usage(model)
	if limits.RPM <= 0 {
		return base
	}

	ratio := float64(usage.RequestsInMinute) / float64(limits.RPM)
	if ratio <= throttleHighWater {
		return base
	}

	factor := 1 - ratio
	if factor < 0.1 {
		factor = 0.1
	}
	if factor > 1 {
		factor = 1
	}

	max := int(float64(base.Max) * factor)
	if max < 1 {
		max = 1
	}

	throttled := config.Throttle{Max: max, WindowMs: base.WindowMs * 2}
	slog.Debug("Queue throttle tightened",
		"queue", queueName, "model", model,
		"usage_ratio", ratio, "max", throttled.Max, "window_ms", throttled.WindowMs)
	return throttled
}

// ApplyPreflight asks the ledger before a call. On denial the worker's
// intake pauses for min(waitSec, 5 min) and the caller receives the
// defer interval; the job is rescheduled, never failed.
func (c *Coordinator) ApplyPreflight(w WorkerControl, model string, estTokens int) (ok bool, deferFor time.Duration) {
	d := c.ledger.CanMake(model, estTokens)
	if d.Allowed {
		return true, 0
	}

	pause := time.Duration(d.WaitSec) * time.Second
	if pause <= 0 {
		pause = retryDefaultUnparsed
	}
	if pause > maxPreflightPause {
		pause = maxPreflightPause
	}

	slog.Info("Preflight denied, pausing intake",
		"model", model, "dimension", d.Dimension, "reason", d.Reason, "pause", pause)
	w.PauseIntake(pause)
	return false, pause
}

// HandleQuotaViolation turns a provider error into a worker pause and a
// defer interval. Non-quota errors return (false, 0) untouched so the
// caller can run its normal failure path.
func (c *Coordinator) HandleQuotaViolation(ctx context.Context, w WorkerControl, model string, err error) (rateLimited bool, retryAfter time.Duration) {
	classification := ai.ClassifyError(err)
	if classification.Class != ai.ClassQuota {
		return false, 0
	}

	v := Violation{
		Kind:          classification.QuotaKind,
		RetryDelaySec: classification.RetryDelaySec,
		QuotaIDs:      classification.QuotaIDs,
		Raw:           classification.Message,
	}
	c.ledger.RecordViolation(ctx, model, v)

	var delay time.Duration
	switch v.Kind {
	case ai.QuotaRPD:
		delay = c.untilDayEnd()
		if delay > maxDailyPause {
			delay = maxDailyPause
		}
	case ai.QuotaRPM, ai.QuotaTPM:
		if v.RetryDelaySec > 0 {
			delay = time.Duration(v.RetryDelaySec) * time.Second
		} else {
			delay = retryDefaultParsed
		}
	case ai.QuotaUnknown:
		delay = retryDefaultUnparsed
	default:
		delay = retryInternalFault
	}

	slog.Warn("Provider quota violation",
		"model", model, "kind", v.Kind, "retry_after", delay, "quota_ids", v.QuotaIDs)
	w.PauseIntake(delay)
	return true, delay
}

// ApplyIntelligent applies an extended pause when more than half of the
// tier's models sit in overload cool-down; hammering the remainder only
// spreads the overload.
func (c *Coordinator) ApplyIntelligent(w WorkerControl, queueName, model string) bool {
	models := TierModels(c.ledger.Tier())
	if len(models) == 0 {
		return false
	}

	overloaded := c.ledger.OverloadedCount()
	if overloaded*2 <= len(models) {
		return false
	}

	base := c.queueCfg.ThrottleFor(queueName)
	pause := 2 * base.Window()
	slog.Warn("Majority of models overloaded, extended pause",
		"queue", queueName, "model", model,
		"overloaded", overloaded, "total", len(models), "pause", pause)
	w.PauseIntake(pause)
	return true
}

// untilDayEnd returns the time remaining in the current calendar day.
func (c *Coordinator) untilDayEnd() time.Duration {
	unix := c.now().Unix()
	remaining := 86400 - unix%86400
	return time.Duration(remaining) * time.Second
}
