package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/segment"
)

// SegmentSpan is one planned time slice of a video.
type SegmentSpan struct {
	Index    int
	StartSec int
	EndSec   int
}

// SegmentService manages the per-video segment set and its analysis
// lifecycle.
type SegmentService struct {
	client *ent.Client
}

// NewSegmentService creates a new SegmentService.
func NewSegmentService(client *ent.Client) *SegmentService {
	if client == nil {
		panic("NewSegmentService: client is required")
	}
	return &SegmentService{client: client}
}

// CreatePlanBulk commits a segment plan atomically: all segments are
// inserted PENDING, the content's expected_segment_count is frozen, and
// the content moves to PROCESSING. The (content_id, index) unique index
// makes re-planning a committed content return ErrAlreadyExists; the
// segment set is never renumbered after commit.
func (s *SegmentService) CreatePlanBulk(ctx context.Context, contentID string, spans []SegmentSpan) ([]*ent.Segment, error) {
	if contentID == "" {
		return nil, NewValidationError("content_id", "required")
	}
	if len(spans) == 0 {
		return nil, NewValidationError("spans", "at least one segment is required")
	}
	for _, span := range spans {
		if span.EndSec <= span.StartSec {
			return nil, NewValidationError("spans",
				fmt.Sprintf("segment %d has non-positive duration [%d, %d]", span.Index, span.StartSec, span.EndSec))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	builders := make([]*ent.SegmentCreate, len(spans))
	for i, span := range spans {
		builders[i] = tx.Segment.Create().
			SetID(uuid.New().String()).
			SetContentID(contentID).
			SetIndex(span.Index).
			SetStartSec(span.StartSec).
			SetEndSec(span.EndSec).
			SetDurationSec(span.EndSec - span.StartSec)
	}

	segments, err := tx.Segment.CreateBulk(builders...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create segments: %w", err)
	}

	err = tx.Content.UpdateOneID(contentID).
		SetExpectedSegmentCount(len(spans)).
		SetState(content.StateProcessing).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to freeze segment plan on content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit segment plan: %w", err)
	}
	return segments, nil
}

// GetByIndex retrieves one segment by its position in the video.
func (s *SegmentService) GetByIndex(ctx context.Context, contentID string, index int) (*ent.Segment, error) {
	seg, err := s.client.Segment.Query().
		Where(
			segment.ContentIDEQ(contentID),
			segment.IndexEQ(index),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}
	return seg, nil
}

// ClaimForAnalysis moves a segment to PROCESSING with a compare-and-swap
// guard. PROCESSING is re-claimable so a redelivered job can resume a
// segment its crashed predecessor left mid-flight.
func (s *SegmentService) ClaimForAnalysis(ctx context.Context, contentID string, index int) error {
	n, err := s.client.Segment.Update().
		Where(
			segment.ContentIDEQ(contentID),
			segment.IndexEQ(index),
			segment.StateIn(segment.StatePending, segment.StateProcessing, segment.StateOverloaded),
		).
		SetState(segment.StateProcessing).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim segment: %w", err)
	}
	if n == 0 {
		if _, err := s.GetByIndex(ctx, contentID, index); err != nil {
			return err
		}
		return ErrConcurrentModification
	}
	return nil
}

// MarkAnalyzed finishes a segment with its analysis artifact.
func (s *SegmentService) MarkAnalyzed(ctx context.Context, contentID string, index int, result map[string]interface{}, modelUsed string, processingMs int64, promptVersion string) error {
	update := s.client.Segment.Update().
		Where(
			segment.ContentIDEQ(contentID),
			segment.IndexEQ(index),
		).
		SetState(segment.StateAnalyzed).
		SetAnalysisResult(result).
		SetModelUsed(modelUsed).
		SetProcessingMs(processingMs).
		ClearError()
	if promptVersion != "" {
		update.SetPromptVersion(promptVersion)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark segment analyzed: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed marks a segment terminally FAILED with a reason.
func (s *SegmentService) MarkFailed(ctx context.Context, contentID string, index int, reason string) error {
	return s.markTerminal(ctx, contentID, index, segment.StateFailed, reason)
}

// MarkOverloaded parks a segment after a provider overload; it stays
// claimable for a later attempt.
func (s *SegmentService) MarkOverloaded(ctx context.Context, contentID string, index int, reason string) error {
	return s.markTerminal(ctx, contentID, index, segment.StateOverloaded, reason)
}

func (s *SegmentService) markTerminal(ctx context.Context, contentID string, index int, state segment.State, reason string) error {
	n, err := s.client.Segment.Update().
		Where(
			segment.ContentIDEQ(contentID),
			segment.IndexEQ(index),
		).
		SetState(state).
		SetError(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark segment %s: %w", state, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementRetry bumps a segment's retry counter.
func (s *SegmentService) IncrementRetry(ctx context.Context, contentID string, index int) error {
	n, err := s.client.Segment.Update().
		Where(
			segment.ContentIDEQ(contentID),
			segment.IndexEQ(index),
		).
		AddRetryCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment segment retry count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStates returns the segment count per state for a content.
func (s *SegmentService) CountByStates(ctx context.Context, contentID string) (map[segment.State]int, error) {
	var rows []struct {
		State segment.State `json:"state"`
		Count int           `json:"count"`
	}
	err := s.client.Segment.Query().
		Where(segment.ContentIDEQ(contentID)).
		GroupBy(segment.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count segments by state: %w", err)
	}

	counts := make(map[segment.State]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}

// ListByState returns a content's segments in the given states, ordered
// by index. Combination depends on this order.
func (s *SegmentService) ListByState(ctx context.Context, contentID string, states ...segment.State) ([]*ent.Segment, error) {
	q := s.client.Segment.Query().
		Where(segment.ContentIDEQ(contentID))
	if len(states) > 0 {
		q.Where(segment.StateIn(states...))
	}

	segments, err := q.Order(ent.Asc(segment.FieldIndex)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

// ResetSegments returns FAILED and OVERLOADED segments to PENDING with
// cleared errors and retry counters, reporting how many were reset.
func (s *SegmentService) ResetSegments(httpCtx context.Context, contentID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	n, err := s.client.Segment.Update().
		Where(
			segment.ContentIDEQ(contentID),
			segment.StateIn(segment.StateFailed, segment.StateOverloaded),
		).
		SetState(segment.StatePending).
		ClearError().
		ClearAnalysisResult().
		SetRetryCount(0).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset segments: %w", err)
	}
	return n, nil
}

// DeleteForContent removes a content's entire segment set. Used by the
// full reprocessing reset before a fresh chunk plan.
func (s *SegmentService) DeleteForContent(ctx context.Context, contentID string) (int, error) {
	n, err := s.client.Segment.Delete().
		Where(segment.ContentIDEQ(contentID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete segments: %w", err)
	}
	return n, nil
}
