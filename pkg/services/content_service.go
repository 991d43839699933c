package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/content"
)

// CreateContentRequest carries the fields known at discovery time.
type CreateContentRequest struct {
	ChannelID       string
	ExternalVideoID string
	Title           string
	Description     string
	PublishedAt     *time.Time
	Thumbnail       *string
	CanonicalURL    *string
}

// MetadataPatch carries authoritative metadata fetched from the source
// provider. Nil fields are left unchanged.
type MetadataPatch struct {
	Title        *string
	Description  *string
	PublishedAt  *time.Time
	DurationSec  *int
	ViewCount    *int64
	Thumbnail    *string
	CanonicalURL *string
}

// ContentService manages video records and their analysis lifecycle.
type ContentService struct {
	client *ent.Client
}

// NewContentService creates a new ContentService.
func NewContentService(client *ent.Client) *ContentService {
	if client == nil {
		panic("NewContentService: client is required")
	}
	return &ContentService{client: client}
}

// CreateContent registers a newly discovered video in state DISCOVERED.
// external_video_id is unique; re-discovering a known video returns
// ErrAlreadyExists so discovery stays idempotent.
func (s *ContentService) CreateContent(httpCtx context.Context, req CreateContentRequest) (*ent.Content, error) {
	if req.ChannelID == "" {
		return nil, NewValidationError("channel_id", "required")
	}
	if req.ExternalVideoID == "" {
		return nil, NewValidationError("external_video_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Content.Create().
		SetID(uuid.New().String()).
		SetChannelID(req.ChannelID).
		SetExternalVideoID(req.ExternalVideoID).
		SetTitle(req.Title)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.PublishedAt != nil {
		builder.SetPublishedAt(*req.PublishedAt)
	}
	if req.Thumbnail != nil {
		builder.SetThumbnail(*req.Thumbnail)
	}
	if req.CanonicalURL != nil {
		builder.SetCanonicalURL(*req.CanonicalURL)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return c, nil
}

// GetContent retrieves a content record by ID.
func (s *ContentService) GetContent(ctx context.Context, contentID string) (*ent.Content, error) {
	c, err := s.client.Content.Get(ctx, contentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return c, nil
}

// GetContentByExternalVideoID retrieves a content record by its
// provider-side video identifier.
func (s *ContentService) GetContentByExternalVideoID(ctx context.Context, externalVideoID string) (*ent.Content, error) {
	c, err := s.client.Content.Query().
		Where(content.ExternalVideoIDEQ(externalVideoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content by external video id: %w", err)
	}
	return c, nil
}

// ListContentsByChannel returns a channel's videos, newest first.
func (s *ContentService) ListContentsByChannel(ctx context.Context, channelID string) ([]*ent.Content, error) {
	contents, err := s.client.Content.Query().
		Where(content.ChannelIDEQ(channelID)).
		Order(ent.Desc(content.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	return contents, nil
}

// UpdateMetadata applies the non-nil fields of patch and moves the
// content to METADATA_READY. The patch is idempotent: re-applying the
// same authoritative metadata converges on the same row.
func (s *ContentService) UpdateMetadata(httpCtx context.Context, contentID string, patch MetadataPatch) (*ent.Content, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	update := s.client.Content.UpdateOneID(contentID).
		SetState(content.StateMetadataReady)

	if patch.Title != nil {
		update.SetTitle(*patch.Title)
	}
	if patch.Description != nil {
		update.SetDescription(*patch.Description)
	}
	if patch.PublishedAt != nil {
		update.SetPublishedAt(*patch.PublishedAt)
	}
	if patch.DurationSec != nil {
		update.SetDurationSec(*patch.DurationSec)
	}
	if patch.ViewCount != nil {
		update.SetViewCount(*patch.ViewCount)
	}
	if patch.Thumbnail != nil {
		update.SetThumbnail(*patch.Thumbnail)
	}
	if patch.CanonicalURL != nil {
		update.SetCanonicalURL(*patch.CanonicalURL)
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update content metadata: %w", err)
	}
	return c, nil
}

// TransitionState moves a content from one of the expected states to
// the target state with a compare-and-swap guard. A content that is
// not in any expected state returns ErrConcurrentModification.
func (s *ContentService) TransitionState(ctx context.Context, contentID string, from []content.State, to content.State) error {
	n, err := s.client.Content.Update().
		Where(
			content.IDEQ(contentID),
			content.StateIn(from...),
		).
		SetState(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition content state: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Content.Query().Where(content.IDEQ(contentID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check content existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}

// SetCombined writes the combined artifact and finishes the content in
// state ANALYZED. Overwrites any previous combination: manual partial
// combines can be re-run once the remaining segments recover.
func (s *ContentService) SetCombined(ctx context.Context, contentID string, combined map[string]interface{}, modelsUsed []string, promptVersion string) error {
	update := s.client.Content.UpdateOneID(contentID).
		SetState(content.StateAnalyzed).
		SetCombinedAnalysis(combined).
		SetModelsUsed(modelsUsed).
		SetCombinedAt(time.Now()).
		ClearLastError()
	if promptVersion != "" {
		update.SetPromptVersion(promptVersion)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set combined analysis: %w", err)
	}
	return nil
}

// SetFailed marks a content terminally FAILED with a human-readable
// reason.
func (s *ContentService) SetFailed(ctx context.Context, contentID, reason string) error {
	err := s.client.Content.UpdateOneID(contentID).
		SetState(content.StateFailed).
		SetLastError(reason).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark content failed: %w", err)
	}
	return nil
}

// ResetForReprocessing clears all analysis output and the frozen
// segment plan, returning the content to METADATA_READY so chunk
// planning can run again. The caller deletes the segments.
func (s *ContentService) ResetForReprocessing(ctx context.Context, contentID string) error {
	err := s.client.Content.UpdateOneID(contentID).
		SetState(content.StateMetadataReady).
		ClearExpectedSegmentCount().
		ClearCombinedAnalysis().
		ClearModelsUsed().
		ClearPromptVersion().
		ClearCombinedAt().
		ClearLastError().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reset content: %w", err)
	}
	return nil
}

// AppendStatistics appends one view-count observation to the content's
// statistics time series.
func (s *ContentService) AppendStatistics(ctx context.Context, contentID string, point map[string]interface{}) error {
	c, err := s.GetContent(ctx, contentID)
	if err != nil {
		return err
	}

	series := append(c.Statistics, point)
	err = s.client.Content.UpdateOneID(contentID).
		SetStatistics(series).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append statistics: %w", err)
	}
	return nil
}
