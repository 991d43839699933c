package config

import "time"

// PipelineConfig controls stage behavior: how videos are cut into segments,
// how many deliveries each stage may consume, and how output streams are
// bounded.
type PipelineConfig struct {
	// MaxSegmentSec is the longest segment chunk planning will emit.
	MaxSegmentSec int `yaml:"max_segment_sec"`

	// SegmentOverlapSec is the overlap between consecutive segments.
	SegmentOverlapSec int `yaml:"segment_overlap_sec"`

	// MaxAttemptsAnalysis bounds deliveries of one segment-analysis job.
	// Deferrals (rate-limit reschedules) do not consume attempts.
	MaxAttemptsAnalysis int `yaml:"max_attempts_analysis"`

	// MaxAttemptsCombination bounds deliveries of one combination job.
	MaxAttemptsCombination int `yaml:"max_attempts_combination"`

	// BaseBackoffMs is the exponential backoff base between failed attempts.
	BaseBackoffMs int64 `yaml:"base_backoff_ms"`

	// StreamBufferCap bounds the accumulated provider response in bytes;
	// longer streams are truncated at this size.
	StreamBufferCap int `yaml:"stream_buffer_cap"`

	// StageTimeout is the per-delivery deadline for every handler.
	StageTimeout time.Duration `yaml:"stage_timeout"`

	// InitialFetchLimit replaces the channel's fetch_last_n on the first
	// discovery run for a channel.
	InitialFetchLimit int `yaml:"initial_fetch_limit"`

	// PublishedAfter filters initial-fetch discovery to items published
	// after this instant.
	PublishedAfter time.Time `yaml:"published_after"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxSegmentSec:          900,
		SegmentOverlapSec:      30,
		MaxAttemptsAnalysis:    4,
		MaxAttemptsCombination: 5,
		BaseBackoffMs:          30_000,
		StreamBufferCap:        50_000,
		StageTimeout:           15 * time.Minute,
		InitialFetchLimit:      50,
		PublishedAfter:         time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
