package config

import "time"

// RetentionConfig controls quota bookkeeping retention. The quota-cleanup
// stage enforces these bounds on a repeating schedule.
type RetentionConfig struct {
	// UsageTTL is the maximum staleness of a QuotaUsage window row before
	// it is pruned.
	UsageTTL time.Duration `yaml:"usage_ttl"`

	// ViolationMaxAge is the age-based eviction bound for violations.
	ViolationMaxAge time.Duration `yaml:"violation_max_age"`

	// RPDViolationMaxAge prunes daily-quota violations sooner; they stop
	// being actionable once the day rolls.
	RPDViolationMaxAge time.Duration `yaml:"rpd_violation_max_age"`

	// MaxViolations bounds the violation table to the most recent N rows.
	MaxViolations int `yaml:"max_violations"`

	// CleanupCron is the repeatable schedule of the quota-cleanup job.
	CleanupCron string `yaml:"cleanup_cron"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		UsageTTL:           1 * time.Hour,
		ViolationMaxAge:    7 * 24 * time.Hour,
		RPDViolationMaxAge: 24 * time.Hour,
		MaxViolations:      1000,
		CleanupCron:        "0 * * * *",
	}
}
