package quota

import (
	"math"

	"github.com/vidsage/vidsage/pkg/config"
)

// EstimateTextTokens approximates the token count of a text prompt as
// ceil(len/3.5). Deliberately deterministic: the same prompt always
// yields the same estimate, so admit/deny decisions are reproducible.
func EstimateTextTokens(text string) int {
	if text == "" {
		return 0
	}
	return int(math.Ceil(float64(len(text)) / 3.5))
}

// EstimateVideoTokens approximates the token cost of a video segment.
//
// Default mode prices full-rate frame sampling with a 10% safety margin:
// ceil(durationSec · 300 · 1.1). Optimized mode assumes the provider's
// reduced-fps media resolution (0.5 fps at 66 tokens per frame) plus a
// 32 tokens/sec audio track, with the same margin:
// ceil((durationSec · 0.5 · 66 + durationSec · 32) · 1.1).
func EstimateVideoTokens(durationSec int, mode config.TokenEstimateMode) int {
	if durationSec <= 0 {
		return 0
	}
	d := float64(durationSec)
	if mode == config.EstimateOptimized {
		return int(math.Ceil((d*0.5*66 + d*32) * 1.1))
	}
	return int(math.Ceil(d * 300 * 1.1))
}
