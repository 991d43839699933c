package quota

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidsage/vidsage/pkg/config"
)

func TestEstimateTextTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTextTokens(""))
	// ceil(7/3.5) = 2
	assert.Equal(t, 2, EstimateTextTokens("1234567"))
	// ceil(8/3.5) = 3
	assert.Equal(t, 3, EstimateTextTokens("12345678"))
	// ceil(3500/3.5) = 1000
	assert.Equal(t, 1000, EstimateTextTokens(strings.Repeat("x", 3500)))
}

func TestEstimateVideoTokens_Default(t *testing.T) {
	// ceil(60 · 300 · 1.1) = 19800
	assert.Equal(t, 19800, EstimateVideoTokens(60, config.EstimateDefault))
	assert.Equal(t, 0, EstimateVideoTokens(0, config.EstimateDefault))
	assert.Equal(t, 0, EstimateVideoTokens(-5, config.EstimateDefault))
}

func TestEstimateVideoTokens_Optimized(t *testing.T) {
	// ceil((60·0.5·66 + 60·32) · 1.1) = ceil(4290.0) = 4290
	assert.Equal(t, 4290, EstimateVideoTokens(60, config.EstimateOptimized))
	// ceil((900·0.5·66 + 900·32) · 1.1) = ceil(64350.0) = 64350
	assert.Equal(t, 64350, EstimateVideoTokens(900, config.EstimateOptimized))
}

func TestEstimateVideoTokens_OptimizedCheaper(t *testing.T) {
	for _, d := range []int{1, 30, 900, 7200} {
		assert.Less(t,
			EstimateVideoTokens(d, config.EstimateOptimized),
			EstimateVideoTokens(d, config.EstimateDefault),
			"duration %d", d)
	}
}
