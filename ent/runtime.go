// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/prompt"
	"github.com/vidsage/vidsage/ent/quotausage"
	"github.com/vidsage/vidsage/ent/quotaviolation"
	"github.com/vidsage/vidsage/ent/schema"
	"github.com/vidsage/vidsage/ent/segment"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescCronPattern is the schema descriptor for cron_pattern field.
	channelDescCronPattern := channelFields[5].Descriptor()
	// channel.DefaultCronPattern holds the default value on creation for the cron_pattern field.
	channel.DefaultCronPattern = channelDescCronPattern.Default.(string)
	// channelDescFetchLastN is the schema descriptor for fetch_last_n field.
	channelDescFetchLastN := channelFields[6].Descriptor()
	// channel.DefaultFetchLastN holds the default value on creation for the fetch_last_n field.
	channel.DefaultFetchLastN = channelDescFetchLastN.Default.(int)
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[8].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	// channelDescUpdatedAt is the schema descriptor for updated_at field.
	channelDescUpdatedAt := channelFields[9].Descriptor()
	// channel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channel.DefaultUpdatedAt = channelDescUpdatedAt.Default.(func() time.Time)
	// channel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	channel.UpdateDefaultUpdatedAt = channelDescUpdatedAt.UpdateDefault.(func() time.Time)
	contentFields := schema.Content{}.Fields()
	_ = contentFields
	// contentDescCreatedAt is the schema descriptor for created_at field.
	contentDescCreatedAt := contentFields[18].Descriptor()
	// content.DefaultCreatedAt holds the default value on creation for the created_at field.
	content.DefaultCreatedAt = contentDescCreatedAt.Default.(func() time.Time)
	// contentDescUpdatedAt is the schema descriptor for updated_at field.
	contentDescUpdatedAt := contentFields[19].Descriptor()
	// content.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	content.DefaultUpdatedAt = contentDescUpdatedAt.Default.(func() time.Time)
	// content.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	content.UpdateDefaultUpdatedAt = contentDescUpdatedAt.UpdateDefault.(func() time.Time)
	cronjobFields := schema.CronJob{}.Fields()
	_ = cronjobFields
	// cronjobDescCreatedAt is the schema descriptor for created_at field.
	cronjobDescCreatedAt := cronjobFields[8].Descriptor()
	// cronjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	cronjob.DefaultCreatedAt = cronjobDescCreatedAt.Default.(func() time.Time)
	// cronjobDescUpdatedAt is the schema descriptor for updated_at field.
	cronjobDescUpdatedAt := cronjobFields[9].Descriptor()
	// cronjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cronjob.DefaultUpdatedAt = cronjobDescUpdatedAt.Default.(func() time.Time)
	// cronjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cronjob.UpdateDefaultUpdatedAt = cronjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[6].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescRunAt is the schema descriptor for run_at field.
	jobDescRunAt := jobFields[7].Descriptor()
	// job.DefaultRunAt holds the default value on creation for the run_at field.
	job.DefaultRunAt = jobDescRunAt.Default.(func() time.Time)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[8].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[9].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescBackoffBaseMs is the schema descriptor for backoff_base_ms field.
	jobDescBackoffBaseMs := jobFields[10].Descriptor()
	// job.DefaultBackoffBaseMs holds the default value on creation for the backoff_base_ms field.
	job.DefaultBackoffBaseMs = jobDescBackoffBaseMs.Default.(int64)
	// jobDescRemoveOnComplete is the schema descriptor for remove_on_complete field.
	jobDescRemoveOnComplete := jobFields[11].Descriptor()
	// job.DefaultRemoveOnComplete holds the default value on creation for the remove_on_complete field.
	job.DefaultRemoveOnComplete = jobDescRemoveOnComplete.Default.(bool)
	// jobDescStalledCount is the schema descriptor for stalled_count field.
	jobDescStalledCount := jobFields[12].Descriptor()
	// job.DefaultStalledCount holds the default value on creation for the stalled_count field.
	job.DefaultStalledCount = jobDescStalledCount.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[18].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescVersion is the schema descriptor for version field.
	promptDescVersion := promptFields[2].Descriptor()
	// prompt.DefaultVersion holds the default value on creation for the version field.
	prompt.DefaultVersion = promptDescVersion.Default.(int)
	// promptDescIsActive is the schema descriptor for is_active field.
	promptDescIsActive := promptFields[4].Descriptor()
	// prompt.DefaultIsActive holds the default value on creation for the is_active field.
	prompt.DefaultIsActive = promptDescIsActive.Default.(bool)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[8].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[9].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	quotausageFields := schema.QuotaUsage{}.Fields()
	_ = quotausageFields
	// quotausageDescRequests is the schema descriptor for requests field.
	quotausageDescRequests := quotausageFields[4].Descriptor()
	// quotausage.DefaultRequests holds the default value on creation for the requests field.
	quotausage.DefaultRequests = quotausageDescRequests.Default.(int64)
	// quotausageDescTokens is the schema descriptor for tokens field.
	quotausageDescTokens := quotausageFields[5].Descriptor()
	// quotausage.DefaultTokens holds the default value on creation for the tokens field.
	quotausage.DefaultTokens = quotausageDescTokens.Default.(int64)
	// quotausageDescUpdatedAt is the schema descriptor for updated_at field.
	quotausageDescUpdatedAt := quotausageFields[6].Descriptor()
	// quotausage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotausage.DefaultUpdatedAt = quotausageDescUpdatedAt.Default.(func() time.Time)
	// quotausage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotausage.UpdateDefaultUpdatedAt = quotausageDescUpdatedAt.UpdateDefault.(func() time.Time)
	quotaviolationFields := schema.QuotaViolation{}.Fields()
	_ = quotaviolationFields
	// quotaviolationDescCreatedAt is the schema descriptor for created_at field.
	quotaviolationDescCreatedAt := quotaviolationFields[5].Descriptor()
	// quotaviolation.DefaultCreatedAt holds the default value on creation for the created_at field.
	quotaviolation.DefaultCreatedAt = quotaviolationDescCreatedAt.Default.(func() time.Time)
	segmentFields := schema.Segment{}.Fields()
	_ = segmentFields
	// segmentDescRetryCount is the schema descriptor for retry_count field.
	segmentDescRetryCount := segmentFields[11].Descriptor()
	// segment.DefaultRetryCount holds the default value on creation for the retry_count field.
	segment.DefaultRetryCount = segmentDescRetryCount.Default.(int)
	// segmentDescCreatedAt is the schema descriptor for created_at field.
	segmentDescCreatedAt := segmentFields[13].Descriptor()
	// segment.DefaultCreatedAt holds the default value on creation for the created_at field.
	segment.DefaultCreatedAt = segmentDescCreatedAt.Default.(func() time.Time)
	// segmentDescUpdatedAt is the schema descriptor for updated_at field.
	segmentDescUpdatedAt := segmentFields[14].Descriptor()
	// segment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	segment.DefaultUpdatedAt = segmentDescUpdatedAt.Default.(func() time.Time)
	// segment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	segment.UpdateDefaultUpdatedAt = segmentDescUpdatedAt.UpdateDefault.(func() time.Time)
}
