package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validator validates configuration comprehensively with clear error messages
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *Validator) ValidateAll() error {
	if err := v.validateQuota(); err != nil {
		return fmt.Errorf("quota validation failed: %w", err)
	}
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}
	if err := v.validateAPI(); err != nil {
		return fmt.Errorf("api validation failed: %w", err)
	}
	return nil
}

func (v *Validator) validateQuota() error {
	q := v.cfg.Quota
	if !q.Tier.IsValid() {
		return NewValidationError("quota", "tier", fmt.Errorf("%w: %q (want free, t1, t2 or t3)", ErrInvalidValue, q.Tier))
	}
	if !q.TokenEstimateMode.IsValid() {
		return NewValidationError("quota", "token_estimate_mode", fmt.Errorf("%w: %q (want default or optimized)", ErrInvalidValue, q.TokenEstimateMode))
	}
	if q.OverloadCooldownSec <= 0 {
		return NewValidationError("quota", "overload_cooldown_sec", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p.MaxSegmentSec <= 0 {
		return NewValidationError("pipeline", "max_segment_sec", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.SegmentOverlapSec < 0 {
		return NewValidationError("pipeline", "segment_overlap_sec", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.SegmentOverlapSec >= p.MaxSegmentSec {
		return NewValidationError("pipeline", "segment_overlap_sec", fmt.Errorf("%w: must be shorter than max_segment_sec", ErrInvalidValue))
	}
	if p.MaxAttemptsAnalysis < 1 {
		return NewValidationError("pipeline", "max_attempts_analysis", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if p.MaxAttemptsCombination < 1 {
		return NewValidationError("pipeline", "max_attempts_combination", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if p.BaseBackoffMs <= 0 {
		return NewValidationError("pipeline", "base_backoff_ms", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.StreamBufferCap <= 0 {
		return NewValidationError("pipeline", "stream_buffer_cap", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.StageTimeout <= 0 {
		return NewValidationError("pipeline", "stage_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.DefaultWorkers < 1 {
		return NewValidationError("queue", "default_workers", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	for queue, n := range q.Workers {
		if n < 1 {
			return NewValidationError("queue", "workers", fmt.Errorf("%w: %s: must be at least 1", ErrInvalidValue, queue))
		}
	}
	for queue, t := range q.Throttles {
		if t.Max < 1 || t.WindowMs < 1 {
			return NewValidationError("queue", "throttles", fmt.Errorf("%w: %s: max and window_ms must be positive", ErrInvalidValue, queue))
		}
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.PollIntervalJitter < 0 || q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("%w: must be shorter than poll_interval", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold", fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	if q.MaxStalled < 1 {
		return NewValidationError("queue", "max_stalled", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateRetention() error {
	r := v.cfg.Retention
	if r.UsageTTL <= 0 {
		return NewValidationError("retention", "usage_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.ViolationMaxAge <= 0 || r.RPDViolationMaxAge <= 0 {
		return NewValidationError("retention", "violation_max_age", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.MaxViolations < 1 {
		return NewValidationError("retention", "max_violations", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if _, err := cron.ParseStandard(r.CleanupCron); err != nil {
		return NewValidationError("retention", "cleanup_cron", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	return nil
}

func (v *Validator) validateAPI() error {
	if v.cfg.API.ListenAddr == "" {
		return NewValidationError("api", "listen_addr", ErrMissingRequiredField)
	}
	return nil
}
