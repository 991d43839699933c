package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/vidsage/vidsage/test/database"
)

// recordingScheduler captures scheduler calls for assertions.
type recordingScheduler struct {
	scheduled   map[string]string
	unscheduled []string
}

func newRecordingScheduler() *recordingScheduler {
	return &recordingScheduler{scheduled: map[string]string{}}
}

func (r *recordingScheduler) ScheduleDiscovery(_ context.Context, channelID, cronPattern string) error {
	r.scheduled[channelID] = cronPattern
	return nil
}

func (r *recordingScheduler) UnscheduleDiscovery(_ context.Context, channelID string) error {
	r.unscheduled = append(r.unscheduled, channelID)
	return nil
}

func TestChannelService_CreateChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	t.Run("creates channel with defaults", func(t *testing.T) {
		ch, err := svc.CreateChannel(ctx, CreateChannelRequest{
			ExternalID:  "UC123",
			DisplayName: "Some Creator",
		})
		require.NoError(t, err)
		assert.Equal(t, "youtube", string(ch.SourceType))
		assert.Equal(t, "0 */6 * * *", ch.CronPattern)
		assert.Equal(t, 10, ch.FetchLastN)
	})

	t.Run("rejects duplicate source identity", func(t *testing.T) {
		_, err := svc.CreateChannel(ctx, CreateChannelRequest{
			ExternalID:  "UC123",
			DisplayName: "Same Creator Again",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects missing external id", func(t *testing.T) {
		_, err := svc.CreateChannel(ctx, CreateChannelRequest{DisplayName: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid cron pattern", func(t *testing.T) {
		_, err := svc.CreateChannel(ctx, CreateChannelRequest{
			ExternalID:  "UC456",
			DisplayName: "x",
			CronPattern: "not a cron",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestChannelService_GetByExternalID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateChannel(ctx, CreateChannelRequest{
		ExternalID:  "UC789",
		DisplayName: "Lookup Target",
	})
	require.NoError(t, err)

	got, err := svc.GetChannelByExternalID(ctx, "youtube", "UC789")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetChannelByExternalID(ctx, "youtube", "UC-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChannelService_SchedulerSync(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	sched := newRecordingScheduler()
	svc.SetScheduler(sched)
	ctx := context.Background()

	ch, err := svc.CreateChannel(ctx, CreateChannelRequest{
		ExternalID:  "UC-sched",
		DisplayName: "Scheduled",
		CronPattern: "0 */2 * * *",
	})
	require.NoError(t, err)
	assert.Equal(t, "0 */2 * * *", sched.scheduled[ch.ID])

	newCron := "30 * * * *"
	_, err = svc.UpdateChannel(ctx, ch.ID, UpdateChannelRequest{CronPattern: &newCron})
	require.NoError(t, err)
	assert.Equal(t, newCron, sched.scheduled[ch.ID])

	require.NoError(t, svc.DeleteChannel(ctx, ch.ID))
	assert.Equal(t, []string{ch.ID}, sched.unscheduled)
}

func TestChannelService_ReconcileSchedules(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	// Channels created before the scheduler was attached.
	a, err := svc.CreateChannel(ctx, CreateChannelRequest{ExternalID: "UC-a", DisplayName: "A"})
	require.NoError(t, err)
	b, err := svc.CreateChannel(ctx, CreateChannelRequest{ExternalID: "UC-b", DisplayName: "B"})
	require.NoError(t, err)

	sched := newRecordingScheduler()
	svc.SetScheduler(sched)
	require.NoError(t, svc.ReconcileSchedules(ctx))

	assert.Len(t, sched.scheduled, 2)
	assert.Contains(t, sched.scheduled, a.ID)
	assert.Contains(t, sched.scheduled, b.ID)
}

func TestChannelService_SetUploadCollectionID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	ch := seedChannel(t, client.Client)
	require.NoError(t, svc.SetUploadCollectionID(ctx, ch.ID, "UU-uploads"))

	got, err := svc.GetChannel(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UploadCollectionID)
	assert.Equal(t, "UU-uploads", *got.UploadCollectionID)
}
