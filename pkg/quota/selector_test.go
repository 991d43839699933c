package quota

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/pkg/config"
)

func TestSelect_PrefersProFirst(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	model, reason := s.Select(10_000, nil)
	assert.Equal(t, ModelGeminiPro, model)
	assert.Empty(t, reason)
}

func TestSelect_SkipsExcluded(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	model, _ := s.Select(10_000, map[string]bool{ModelGeminiPro: true})
	assert.Equal(t, ModelGeminiFlash, model)
}

func TestSelect_SkipsOverloaded(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	l.MarkOverloaded(ModelGeminiPro)
	l.MarkOverloaded(ModelGeminiFlash)

	model, _ := s.Select(10_000, nil)
	assert.Equal(t, ModelGeminiFlashLite, model)
}

func TestSelect_SkipsExhaustedModel(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	// Exhaust pro's minute budget; flash still has room.
	for i := 0; i < 5; i++ {
		l.Record(context.Background(), ModelGeminiPro, 100)
	}

	model, _ := s.Select(10_000, nil)
	assert.Equal(t, ModelGeminiFlash, model)
}

func TestSelect_NoneEligible(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	for _, m := range TierModels(config.TierFree) {
		l.MarkOverloaded(m)
	}

	model, reason := s.Select(10_000, nil)
	assert.Empty(t, model)
	assert.NotEmpty(t, reason)
}

func TestSelect_TooLarge(t *testing.T) {
	l, _ := newTestLedger(t, config.TierFree)
	s := NewSelector(l)

	// Every free-tier model caps at 250k tokens per request.
	model, reason := s.Select(400_000, nil)
	require.Empty(t, model)
	assert.Equal(t, ReasonTooLarge, reason)
}
