package quota

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
)

// Window identifiers, matching the QuotaUsage schema enum.
const (
	WindowMinute = "minute"
	WindowDay    = "day"
)

// Dimension names the quota axis a decision was made on.
type Dimension string

// Quota dimensions a request can be denied on.
const (
	DimRPM    Dimension = "RPM"
	DimTPM    Dimension = "TPM"
	DimRPD    Dimension = "RPD"
	DimMaxTok Dimension = "MAX_TOK"
)

// Decision is the ledger's admit/deny verdict for one prospective call.
type Decision struct {
	Allowed   bool
	Reason    string
	WaitSec   int
	Dimension Dimension
}

// Usage is the current counter snapshot for one model.
type Usage struct {
	RequestsInMinute int64
	TokensInMinute   int64
	RequestsInDay    int64
}

// Counts is one persisted window row's counters.
type Counts struct {
	Requests int64
	Tokens   int64
}

// Violation is a parsed provider quota rejection.
type Violation struct {
	Kind          ai.QuotaKind
	RetryDelaySec int
	QuotaIDs      []string
	Raw           string
}

// UsageStore persists ledger state. The in-memory counters stay
// authoritative; writes through the store are best-effort and failures
// are logged, never propagated to metering callers.
type UsageStore interface {
	IncrementUsage(ctx context.Context, model, window string, epoch, requests, tokens int64) error
	WindowCounts(ctx context.Context, window string, epoch int64) (map[string]Counts, error)
	InsertViolation(ctx context.Context, model string, kind ai.QuotaKind, retryDelaySec *int, rawPayload string) error
}

// windowCounter is one in-memory calendar window. Counters reset by
// epoch replacement when the window rolls; they never decrement inside
// a window.
type windowCounter struct {
	epoch    int64
	requests int64
	tokens   int64
}

// Ledger gates every outbound call to a metered model. One shared
// instance per process; all methods are safe for concurrent use.
type Ledger struct {
	mu        sync.Mutex
	tier      config.Tier
	minutes   map[string]*windowCounter
	days      map[string]*windowCounter
	overloads map[string]time.Time

	store            UsageStore
	overloadCooldown time.Duration
	now              func() time.Time
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithStore attaches write-through persistence.
func WithStore(store UsageStore) LedgerOption {
	return func(l *Ledger) { l.store = store }
}

// WithOverloadCooldown overrides the 503 cool-down (default 5 minutes).
func WithOverloadCooldown(d time.Duration) LedgerOption {
	return func(l *Ledger) { l.overloadCooldown = d }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a ledger for the given tier. When a store is
// attached, the current minute and day windows are warm-loaded so a
// restart does not forget the day's spend.
func NewLedger(ctx context.Context, tier config.Tier, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		tier:             tier,
		minutes:          make(map[string]*windowCounter),
		days:             make(map[string]*windowCounter),
		overloads:        make(map[string]time.Time),
		overloadCooldown: 5 * time.Minute,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.store != nil {
		l.warmLoad(ctx)
	}

	return l
}

// warmLoad seeds in-memory counters from the persisted current windows.
func (l *Ledger) warmLoad(ctx context.Context) {
	minuteEpoch, dayEpoch := l.epochs()

	minutes, err := l.store.WindowCounts(ctx, WindowMinute, minuteEpoch)
	if err != nil {
		slog.Warn("Failed to warm-load minute windows", "error", err)
	}
	days, err := l.store.WindowCounts(ctx, WindowDay, dayEpoch)
	if err != nil {
		slog.Warn("Failed to warm-load day windows", "error", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for model, c := range minutes {
		l.minutes[model] = &windowCounter{epoch: minuteEpoch, requests: c.Requests, tokens: c.Tokens}
	}
	for model, c := range days {
		l.days[model] = &windowCounter{epoch: dayEpoch, requests: c.Requests, tokens: c.Tokens}
	}
}

// epochs returns the current calendar minute and day epochs.
func (l *Ledger) epochs() (minuteEpoch, dayEpoch int64) {
	unix := l.now().Unix()
	return unix / 60, unix / 86400
}

// current returns the live counter for a model in the given map,
// rolling it forward when the epoch has moved. Caller holds l.mu.
func current(counters map[string]*windowCounter, model string, epoch int64) *windowCounter {
	c, ok := counters[model]
	if !ok || c.epoch != epoch {
		c = &windowCounter{epoch: epoch}
		counters[model] = c
	}
	return c
}

// CanMake decides whether one request of estTokens may go to model now.
// Denials carry the seconds until the relevant window boundary; MAX_TOK
// denials carry no wait because waiting cannot help.
func (l *Ledger) CanMake(model string, estTokens int) Decision {
	limits, known := LimitsFor(l.Tier(), model)
	if !known {
		slog.Warn("No quota limits for model, using conservative defaults",
			"model", model, "tier", l.Tier())
	}

	minuteEpoch, dayEpoch := l.epochs()
	unix := l.now().Unix()

	l.mu.Lock()
	defer l.mu.Unlock()

	if limits.MaxTokensPerRequest > 0 && int64(estTokens) > limits.MaxTokensPerRequest {
		return Decision{
			Reason:    fmt.Sprintf("request of %d tokens exceeds per-request cap %d", estTokens, limits.MaxTokensPerRequest),
			Dimension: DimMaxTok,
		}
	}

	minute := current(l.minutes, model, minuteEpoch)
	if limits.RPM > 0 && minute.requests+1 > limits.RPM {
		return Decision{
			Reason:    fmt.Sprintf("rpm limit %d reached", limits.RPM),
			WaitSec:   int(60 - unix%60),
			Dimension: DimRPM,
		}
	}
	if limits.TPM > 0 && minute.tokens+int64(estTokens) > limits.TPM {
		return Decision{
			Reason:    fmt.Sprintf("tpm limit %d would be exceeded", limits.TPM),
			WaitSec:   int(60 - unix%60),
			Dimension: DimTPM,
		}
	}

	day := current(l.days, model, dayEpoch)
	if limits.RPD > 0 && day.requests+1 > limits.RPD {
		return Decision{
			Reason:    fmt.Sprintf("rpd limit %d reached", limits.RPD),
			WaitSec:   int(86400 - unix%86400),
			Dimension: DimRPD,
		}
	}

	return Decision{Allowed: true}
}

// Record books one completed request of actualTokens against model in
// the current minute and day windows, writing through to the store.
func (l *Ledger) Record(ctx context.Context, model string, actualTokens int) {
	minuteEpoch, dayEpoch := l.epochs()

	l.mu.Lock()
	minute := current(l.minutes, model, minuteEpoch)
	minute.requests++
	minute.tokens += int64(actualTokens)
	day := current(l.days, model, dayEpoch)
	day.requests++
	day.tokens += int64(actualTokens)
	l.mu.Unlock()

	if l.store == nil {
		return
	}
	if err := l.store.IncrementUsage(ctx, model, WindowMinute, minuteEpoch, 1, int64(actualTokens)); err != nil {
		slog.Warn("Failed to persist minute usage", "model", model, "error", err)
	}
	if err := l.store.IncrementUsage(ctx, model, WindowDay, dayEpoch, 1, int64(actualTokens)); err != nil {
		slog.Warn("Failed to persist day usage", "model", model, "error", err)
	}
}

// Usage returns the current counter snapshot and the active limits for
// a model.
func (l *Ledger) Usage(model string) (Usage, Limits) {
	limits, _ := LimitsFor(l.Tier(), model)
	minuteEpoch, dayEpoch := l.epochs()

	l.mu.Lock()
	defer l.mu.Unlock()

	var u Usage
	if c, ok := l.minutes[model]; ok && c.epoch == minuteEpoch {
		u.RequestsInMinute = c.requests
		u.TokensInMinute = c.tokens
	}
	if c, ok := l.days[model]; ok && c.epoch == dayEpoch {
		u.RequestsInDay = c.requests
	}
	return u, limits
}

// Tier returns the active tier.
func (l *Ledger) Tier() config.Tier {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tier
}

// SetTier swaps the active tier. Usage counters reset because the new
// tier's windows are accounted fresh; violations are deliberately kept.
func (l *Ledger) SetTier(tier config.Tier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tier == l.tier {
		return
	}
	slog.Info("Switching quota tier", "from", l.tier, "to", tier)
	l.tier = tier
	l.minutes = make(map[string]*windowCounter)
	l.days = make(map[string]*windowCounter)
}

// MarkOverloaded excludes a model from selection until the cool-down
// expires. Used after 503-class responses.
func (l *Ledger) MarkOverloaded(model string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	expiry := l.now().Add(l.overloadCooldown)
	l.overloads[model] = expiry
	slog.Warn("Model marked overloaded", "model", model, "until", expiry.Format(time.RFC3339))
}

// IsOverloaded reports whether a model is inside an overload cool-down.
func (l *Ledger) IsOverloaded(model string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	expiry, ok := l.overloads[model]
	if !ok {
		return false
	}
	if l.now().After(expiry) {
		delete(l.overloads, model)
		return false
	}
	return true
}

// OverloadedCount returns how many of the tier's models are currently
// inside an overload cool-down.
func (l *Ledger) OverloadedCount() int {
	n := 0
	for _, model := range TierModels(l.Tier()) {
		if l.IsOverloaded(model) {
			n++
		}
	}
	return n
}

// ParseProviderError extracts the quota facts from a provider 429. The
// zero Violation (empty Kind) means the error was not quota-class.
func (l *Ledger) ParseProviderError(err error) Violation {
	c := ai.ClassifyError(err)
	if c.Class != ai.ClassQuota {
		return Violation{}
	}
	return Violation{
		Kind:          c.QuotaKind,
		RetryDelaySec: c.RetryDelaySec,
		QuotaIDs:      c.QuotaIDs,
		Raw:           c.Message,
	}
}

// RecordViolation persists a parsed quota rejection for the status
// surface and retention-bounded history.
func (l *Ledger) RecordViolation(ctx context.Context, model string, v Violation) {
	if l.store == nil {
		return
	}
	var retry *int
	if v.RetryDelaySec > 0 {
		retry = &v.RetryDelaySec
	}
	if err := l.store.InsertViolation(ctx, model, v.Kind, retry, v.Raw); err != nil {
		slog.Warn("Failed to record quota violation", "model", model, "error", err)
	}
}

// WaitForQuota blocks until CanMake admits the request or ctx is
// cancelled. It sleeps to the reported window boundary and re-checks on
// every wake; other workers may have spent the freed window first.
func (l *Ledger) WaitForQuota(ctx context.Context, model string, estTokens int) error {
	for {
		d := l.CanMake(model, estTokens)
		if d.Allowed {
			return nil
		}
		if d.Dimension == DimMaxTok {
			return fmt.Errorf("quota wait impossible: %s", d.Reason)
		}

		wait := time.Duration(d.WaitSec) * time.Second
		if wait <= 0 {
			wait = time.Second
		}
		slog.Debug("Waiting for quota window",
			"model", model, "dimension", d.Dimension, "wait", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
