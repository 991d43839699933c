package config

// Tier identifies a provider billing tier; it selects the static quota
// table the ledger enforces.
type Tier string

// Known provider tiers.
const (
	TierFree Tier = "free"
	TierT1   Tier = "t1"
	TierT2   Tier = "t2"
	TierT3   Tier = "t3"
)

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierT1, TierT2, TierT3:
		return true
	}
	return false
}

// TokenEstimateMode selects the video token estimation formula.
type TokenEstimateMode string

// Token estimation modes.
const (
	// EstimateDefault prices every frame at full resolution.
	EstimateDefault TokenEstimateMode = "default"

	// EstimateOptimized assumes reduced-fps sampling plus an audio track.
	EstimateOptimized TokenEstimateMode = "optimized"
)

// IsValid reports whether the mode is one of the known values.
func (m TokenEstimateMode) IsValid() bool {
	return m == EstimateDefault || m == EstimateOptimized
}

// QuotaConfig holds the metering behavior of the quota ledger.
type QuotaConfig struct {
	// Tier selects the (tier, model) limits table.
	Tier Tier `yaml:"tier"`

	// OverloadCooldownSec is how long a model stays excluded from
	// selection after a 503-class response.
	OverloadCooldownSec int `yaml:"overload_cooldown_sec"`

	// TokenEstimateMode selects the video token estimation formula.
	TokenEstimateMode TokenEstimateMode `yaml:"token_estimate_mode"`
}

// DefaultQuotaConfig returns the built-in quota defaults.
func DefaultQuotaConfig() *QuotaConfig {
	return &QuotaConfig{
		Tier:                TierFree,
		OverloadCooldownSec: 300,
		TokenEstimateMode:   EstimateOptimized,
	}
}
