package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API:       DefaultAPIConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Quota:     DefaultQuotaConfig(),
		Queue:     DefaultQueueConfig(),
		Providers: DefaultProvidersConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidator_DefaultsAreValid(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidator_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid tier", func(c *Config) { c.Quota.Tier = "gold" }},
		{"invalid estimate mode", func(c *Config) { c.Quota.TokenEstimateMode = "guess" }},
		{"zero cooldown", func(c *Config) { c.Quota.OverloadCooldownSec = 0 }},
		{"zero segment length", func(c *Config) { c.Pipeline.MaxSegmentSec = 0 }},
		{"negative overlap", func(c *Config) { c.Pipeline.SegmentOverlapSec = -1 }},
		{"overlap >= segment", func(c *Config) { c.Pipeline.SegmentOverlapSec = 900 }},
		{"zero analysis attempts", func(c *Config) { c.Pipeline.MaxAttemptsAnalysis = 0 }},
		{"zero combination attempts", func(c *Config) { c.Pipeline.MaxAttemptsCombination = 0 }},
		{"zero backoff", func(c *Config) { c.Pipeline.BaseBackoffMs = 0 }},
		{"zero stream cap", func(c *Config) { c.Pipeline.StreamBufferCap = 0 }},
		{"zero default workers", func(c *Config) { c.Queue.DefaultWorkers = 0 }},
		{"zero throttle", func(c *Config) { c.Queue.Throttles["stats"] = Throttle{} }},
		{"jitter >= poll interval", func(c *Config) { c.Queue.PollIntervalJitter = c.Queue.PollInterval }},
		{"orphan threshold too low", func(c *Config) { c.Queue.OrphanThreshold = c.Queue.HeartbeatInterval }},
		{"zero max stalled", func(c *Config) { c.Queue.MaxStalled = 0 }},
		{"zero usage ttl", func(c *Config) { c.Retention.UsageTTL = 0 }},
		{"bad cleanup cron", func(c *Config) { c.Retention.CleanupCron = "every hour" }},
		{"empty listen addr", func(c *Config) { c.API.ListenAddr = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			assert.Error(t, err)
		})
	}
}
