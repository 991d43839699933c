package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/channel"
)

// DiscoveryScheduler keeps a channel's repeatable discovery job in step
// with its row. Implemented over the durable queue's repeatables.
type DiscoveryScheduler interface {
	ScheduleDiscovery(ctx context.Context, channelID, cronPattern string) error
	UnscheduleDiscovery(ctx context.Context, channelID string) error
}

// CreateChannelRequest carries the fields needed to register a source channel.
type CreateChannelRequest struct {
	SourceType    string
	ExternalID    string
	DisplayName   string
	CronPattern   string
	FetchLastN    int
	AuthorContext string
}

// UpdateChannelRequest carries optional channel updates. Nil fields are left
// unchanged.
type UpdateChannelRequest struct {
	DisplayName   *string
	CronPattern   *string
	FetchLastN    *int
	AuthorContext *string
}

// ChannelService manages source channel registration and lookup.
type ChannelService struct {
	client    *ent.Client
	scheduler DiscoveryScheduler
}

// NewChannelService creates a new ChannelService.
func NewChannelService(client *ent.Client) *ChannelService {
	if client == nil {
		panic("NewChannelService: client is required")
	}
	return &ChannelService{client: client}
}

// SetScheduler attaches the discovery scheduler. Optional; without it
// channel writes do not touch the repeatable job table.
func (s *ChannelService) SetScheduler(scheduler DiscoveryScheduler) {
	s.scheduler = scheduler
}

// syncSchedule mirrors a channel's cron pattern onto its repeatable
// discovery job. Failures are logged, not propagated: the row is the
// source of truth and ReconcileSchedules repairs drift at boot.
func (s *ChannelService) syncSchedule(ctx context.Context, ch *ent.Channel) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleDiscovery(ctx, ch.ID, ch.CronPattern); err != nil {
		slog.Warn("Failed to schedule channel discovery",
			"channel_id", ch.ID, "cron", ch.CronPattern, "error", err)
	}
}

// ReconcileSchedules re-registers the repeatable discovery job of every
// channel. Run at boot so the job table matches the channel table even
// after missed writes.
func (s *ChannelService) ReconcileSchedules(ctx context.Context) error {
	if s.scheduler == nil {
		return nil
	}
	channels, err := s.ListChannels(ctx)
	if err != nil {
		return err
	}
	for _, ch := range channels {
		if err := s.scheduler.ScheduleDiscovery(ctx, ch.ID, ch.CronPattern); err != nil {
			return fmt.Errorf("failed to reconcile discovery schedule for channel %s: %w", ch.ID, err)
		}
	}
	return nil
}

// CreateChannel registers a new channel. The (source_type, external_id) pair
// is unique; re-registering an existing channel returns ErrAlreadyExists.
func (s *ChannelService) CreateChannel(httpCtx context.Context, req CreateChannelRequest) (*ent.Channel, error) {
	if req.ExternalID == "" {
		return nil, NewValidationError("external_id", "required")
	}
	if req.DisplayName == "" {
		return nil, NewValidationError("display_name", "required")
	}
	if req.CronPattern != "" {
		if _, err := cron.ParseStandard(req.CronPattern); err != nil {
			return nil, NewValidationError("cron_pattern", fmt.Sprintf("invalid: %v", err))
		}
	}
	if req.FetchLastN < 0 {
		return nil, NewValidationError("fetch_last_n", "must not be negative")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Channel.Create().
		SetID(uuid.New().String()).
		SetExternalID(req.ExternalID).
		SetDisplayName(req.DisplayName)

	if req.SourceType != "" {
		builder.SetSourceType(channel.SourceType(req.SourceType))
	}
	if req.CronPattern != "" {
		builder.SetCronPattern(req.CronPattern)
	}
	if req.FetchLastN > 0 {
		builder.SetFetchLastN(req.FetchLastN)
	}
	if req.AuthorContext != "" {
		builder.SetAuthorContext(req.AuthorContext)
	}

	ch, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	s.syncSchedule(ctx, ch)
	return ch, nil
}

// GetChannel retrieves a channel by ID.
func (s *ChannelService) GetChannel(ctx context.Context, channelID string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// GetChannelByExternalID retrieves a channel by its source identity.
func (s *ChannelService) GetChannelByExternalID(ctx context.Context, sourceType, externalID string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Query().
		Where(
			channel.SourceTypeEQ(channel.SourceType(sourceType)),
			channel.ExternalIDEQ(externalID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel by external id: %w", err)
	}
	return ch, nil
}

// ListChannels returns all registered channels ordered by creation time.
func (s *ChannelService) ListChannels(ctx context.Context) ([]*ent.Channel, error) {
	channels, err := s.client.Channel.Query().
		Order(ent.Asc(channel.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

// UpdateChannel applies the non-nil fields of req to the channel.
func (s *ChannelService) UpdateChannel(httpCtx context.Context, channelID string, req UpdateChannelRequest) (*ent.Channel, error) {
	if req.CronPattern != nil {
		if _, err := cron.ParseStandard(*req.CronPattern); err != nil {
			return nil, NewValidationError("cron_pattern", fmt.Sprintf("invalid: %v", err))
		}
	}
	if req.FetchLastN != nil && *req.FetchLastN <= 0 {
		return nil, NewValidationError("fetch_last_n", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.Channel.UpdateOneID(channelID)
	if req.DisplayName != nil {
		update.SetDisplayName(*req.DisplayName)
	}
	if req.CronPattern != nil {
		update.SetCronPattern(*req.CronPattern)
	}
	if req.FetchLastN != nil {
		update.SetFetchLastN(*req.FetchLastN)
	}
	if req.AuthorContext != nil {
		update.SetAuthorContext(*req.AuthorContext)
	}

	ch, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	if req.CronPattern != nil {
		s.syncSchedule(ctx, ch)
	}
	return ch, nil
}

// SetUploadCollectionID caches the resolved uploads collection so discovery
// does not re-resolve it on every run.
func (s *ChannelService) SetUploadCollectionID(ctx context.Context, channelID, collectionID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Channel.UpdateOneID(channelID).
		SetUploadCollectionID(collectionID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set upload collection id: %w", err)
	}
	return nil
}

// DeleteChannel removes a channel. Contents and their segments cascade.
func (s *ChannelService) DeleteChannel(httpCtx context.Context, channelID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	err := s.client.Channel.DeleteOneID(channelID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	if s.scheduler != nil {
		if err := s.scheduler.UnscheduleDiscovery(ctx, channelID); err != nil {
			slog.Warn("Failed to unschedule channel discovery",
				"channel_id", channelID, "error", err)
		}
	}
	return nil
}
