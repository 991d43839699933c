package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/quotausage"
	"github.com/vidsage/vidsage/ent/quotaviolation"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/quota"
)

// QuotaService persists ledger usage windows and violation history. It
// backs the in-memory ledger as its write-through store and serves the
// quota status surface.
type QuotaService struct {
	client *ent.Client
}

// NewQuotaService creates a new QuotaService.
func NewQuotaService(client *ent.Client) *QuotaService {
	if client == nil {
		panic("NewQuotaService: client is required")
	}
	return &QuotaService{client: client}
}

// IncrementUsage adds to the (model, window, epoch) counter row,
// creating it on first use. Counters only ever increase within a
// window; rolled-over windows leave stale rows for cleanup to prune.
func (s *QuotaService) IncrementUsage(ctx context.Context, model, window string, epoch, requests, tokens int64) error {
	err := s.client.QuotaUsage.Create().
		SetID(uuid.New().String()).
		SetModel(model).
		SetWindow(quotausage.Window(window)).
		SetEpoch(epoch).
		SetRequests(requests).
		SetTokens(tokens).
		OnConflictColumns(quotausage.FieldModel, quotausage.FieldWindow, quotausage.FieldEpoch).
		Update(func(u *ent.QuotaUsageUpsert) {
			u.AddRequests(requests)
			u.AddTokens(tokens)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment quota usage: %w", err)
	}
	return nil
}

// WindowCounts returns the persisted counters of every model for one
// (window, epoch). Used to warm-load the ledger after a restart.
func (s *QuotaService) WindowCounts(ctx context.Context, window string, epoch int64) (map[string]quota.Counts, error) {
	rows, err := s.client.QuotaUsage.Query().
		Where(
			quotausage.WindowEQ(quotausage.Window(window)),
			quotausage.EpochEQ(epoch),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quota windows: %w", err)
	}

	counts := make(map[string]quota.Counts, len(rows))
	for _, row := range rows {
		counts[row.Model] = quota.Counts{Requests: row.Requests, Tokens: row.Tokens}
	}
	return counts, nil
}

// InsertViolation records one provider quota rejection.
func (s *QuotaService) InsertViolation(ctx context.Context, model string, kind ai.QuotaKind, retryDelaySec *int, rawPayload string) error {
	builder := s.client.QuotaViolation.Create().
		SetID(uuid.New().String()).
		SetModel(model).
		SetKind(violationKind(kind)).
		SetRawPayload(rawPayload)
	if retryDelaySec != nil {
		builder.SetRetryDelaySec(*retryDelaySec)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert quota violation: %w", err)
	}
	return nil
}

// ListViolations returns the most recent violations, newest first.
func (s *QuotaService) ListViolations(ctx context.Context, limit int) ([]*ent.QuotaViolation, error) {
	if limit <= 0 {
		limit = 50
	}
	violations, err := s.client.QuotaViolation.Query().
		Order(ent.Desc(quotaviolation.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quota violations: %w", err)
	}
	return violations, nil
}

// CleanupReport summarizes one retention pass.
type CleanupReport struct {
	StaleUsageRows  int
	AgedViolations  int
	RPDViolations   int
	OverflowRemoved int
}

// Cleanup enforces the retention bounds: stale usage windows, age-based
// violation eviction (daily-quota violations sooner), and the last-N
// cap on the violation table.
func (s *QuotaService) Cleanup(ctx context.Context, cfg *config.RetentionConfig) (CleanupReport, error) {
	var report CleanupReport
	now := time.Now()

	n, err := s.client.QuotaUsage.Delete().
		Where(quotausage.UpdatedAtLT(now.Add(-cfg.UsageTTL))).
		Exec(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to prune stale quota usage: %w", err)
	}
	report.StaleUsageRows = n

	n, err = s.client.QuotaViolation.Delete().
		Where(quotaviolation.CreatedAtLT(now.Add(-cfg.ViolationMaxAge))).
		Exec(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to evict aged violations: %w", err)
	}
	report.AgedViolations = n

	n, err = s.client.QuotaViolation.Delete().
		Where(
			quotaviolation.KindEQ(quotaviolation.KindRpd),
			quotaviolation.CreatedAtLT(now.Add(-cfg.RPDViolationMaxAge)),
		).
		Exec(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to evict daily-quota violations: %w", err)
	}
	report.RPDViolations = n

	if cfg.MaxViolations > 0 {
		overflow, err := s.client.QuotaViolation.Query().
			Order(ent.Desc(quotaviolation.FieldCreatedAt)).
			Offset(cfg.MaxViolations).
			IDs(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to find violation overflow: %w", err)
		}
		if len(overflow) > 0 {
			n, err = s.client.QuotaViolation.Delete().
				Where(quotaviolation.IDIn(overflow...)).
				Exec(ctx)
			if err != nil {
				return report, fmt.Errorf("failed to trim violation overflow: %w", err)
			}
			report.OverflowRemoved = n
		}
	}

	return report, nil
}

func violationKind(kind ai.QuotaKind) quotaviolation.Kind {
	switch kind {
	case ai.QuotaRPM:
		return quotaviolation.KindRpm
	case ai.QuotaTPM:
		return quotaviolation.KindTpm
	case ai.QuotaRPD:
		return quotaviolation.KindRpd
	default:
		return quotaviolation.KindUnknown
	}
}
