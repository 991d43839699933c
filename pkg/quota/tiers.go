// Package quota meters every outbound call to the analysis provider:
// calendar-window usage counters, provider-error bookkeeping, model
// selection, and the worker-facing rate-limit coordinator.
package quota

import "github.com/vidsage/vidsage/pkg/config"

// Known analysis models, in selection preference order.
const (
	ModelGeminiPro       = "gemini-2.5-pro"
	ModelGeminiFlash     = "gemini-2.5-flash"
	ModelGeminiFlashLite = "gemini-2.5-flash-lite"
)

// PreferenceOrder is the fixed model ranking the selector walks. Models
// sharing a rank would be ordered lexicographically; the current table
// has distinct ranks.
func PreferenceOrder() []string {
	return []string{ModelGeminiPro, ModelGeminiFlash, ModelGeminiFlashLite}
}

// Limits is the static quota row for one (tier, model) pair. Zero RPD
// or MaxTokensPerRequest means the dimension is unbounded.
type Limits struct {
	RPM                 int64
	TPM                 int64
	RPD                 int64
	MaxTokensPerRequest int64
}

// tierTables is the design-time quota table keyed by (tier, model).
// Values mirror the provider's published per-tier rate limits.
var tierTables = map[config.Tier]map[string]Limits{
	config.TierFree: {
		ModelGeminiPro:       {RPM: 5, TPM: 250_000, RPD: 100, MaxTokensPerRequest: 250_000},
		ModelGeminiFlash:     {RPM: 10, TPM: 250_000, RPD: 250, MaxTokensPerRequest: 250_000},
		ModelGeminiFlashLite: {RPM: 15, TPM: 250_000, RPD: 1_000, MaxTokensPerRequest: 250_000},
	},
	config.TierT1: {
		ModelGeminiPro:       {RPM: 150, TPM: 2_000_000, RPD: 10_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlash:     {RPM: 1_000, TPM: 1_000_000, RPD: 10_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlashLite: {RPM: 4_000, TPM: 4_000_000, MaxTokensPerRequest: 1_000_000},
	},
	config.TierT2: {
		ModelGeminiPro:       {RPM: 1_000, TPM: 5_000_000, RPD: 50_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlash:     {RPM: 2_000, TPM: 3_000_000, RPD: 100_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlashLite: {RPM: 10_000, TPM: 10_000_000, MaxTokensPerRequest: 1_000_000},
	},
	config.TierT3: {
		ModelGeminiPro:       {RPM: 2_000, TPM: 8_000_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlash:     {RPM: 10_000, TPM: 8_000_000, MaxTokensPerRequest: 1_000_000},
		ModelGeminiFlashLite: {RPM: 30_000, TPM: 30_000_000, MaxTokensPerRequest: 1_000_000},
	},
}

// conservativeLimits backs models absent from the active tier table.
// The ledger never fails a caller over a missing row; it throttles hard
// instead.
var conservativeLimits = Limits{RPM: 2, TPM: 32_000, RPD: 50, MaxTokensPerRequest: 32_000}

// LimitsFor returns the quota row for (tier, model). The second return
// reports whether the model exists in the tier table; callers falling
// back to conservative defaults should log.
func LimitsFor(tier config.Tier, model string) (Limits, bool) {
	table, ok := tierTables[tier]
	if !ok {
		return conservativeLimits, false
	}
	limits, ok := table[model]
	if !ok {
		return conservativeLimits, false
	}
	return limits, true
}

// TierModels returns the models present in a tier table, in preference
// order.
func TierModels(tier config.Tier) []string {
	table := tierTables[tier]
	out := make([]string, 0, len(table))
	for _, m := range PreferenceOrder() {
		if _, ok := table[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
