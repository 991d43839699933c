package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/services"
)

func TestPlanSegments(t *testing.T) {
	cfg := config.DefaultPipelineConfig()

	t.Run("non-positive duration plans nothing", func(t *testing.T) {
		assert.Nil(t, PlanSegments(0, cfg))
		assert.Nil(t, PlanSegments(-10, cfg))
	})

	t.Run("short video is a single segment", func(t *testing.T) {
		spans := PlanSegments(600, cfg)
		assert.Equal(t, []services.SegmentSpan{{Index: 0, StartSec: 0, EndSec: 600}}, spans)
	})

	t.Run("exactly max length is a single segment", func(t *testing.T) {
		spans := PlanSegments(900, cfg)
		assert.Equal(t, []services.SegmentSpan{{Index: 0, StartSec: 0, EndSec: 900}}, spans)
	})

	t.Run("short tail is absorbed into the window", func(t *testing.T) {
		// 901s leaves a 1s tail, well under 0.3·MAX; the window stretches.
		spans := PlanSegments(901, cfg)
		assert.Equal(t, []services.SegmentSpan{{Index: 0, StartSec: 0, EndSec: 901}}, spans)
	})

	t.Run("tail at the absorption boundary stays separate", func(t *testing.T) {
		// 1170-900 = 270 = 0.3·MAX exactly; not strictly under, so it
		// becomes its own overlapping segment.
		spans := PlanSegments(1170, cfg)
		assert.Equal(t, []services.SegmentSpan{
			{Index: 0, StartSec: 0, EndSec: 900},
			{Index: 1, StartSec: 870, EndSec: 1170},
		}, spans)
	})

	t.Run("two overlapping segments", func(t *testing.T) {
		spans := PlanSegments(1500, cfg)
		assert.Equal(t, []services.SegmentSpan{
			{Index: 0, StartSec: 0, EndSec: 900},
			{Index: 1, StartSec: 870, EndSec: 1500},
		}, spans)
	})

	t.Run("consecutive segments overlap by the configured amount", func(t *testing.T) {
		spans := PlanSegments(3600, cfg)
		require.Greater(t, len(spans), 2)
		for i := 1; i < len(spans); i++ {
			assert.Equal(t, cfg.SegmentOverlapSec, spans[i-1].EndSec-spans[i].StartSec)
			assert.Equal(t, i, spans[i].Index)
		}
		assert.Equal(t, 3600, spans[len(spans)-1].EndSec)
	})

	t.Run("degenerate overlap still makes progress", func(t *testing.T) {
		bad := config.DefaultPipelineConfig()
		bad.SegmentOverlapSec = 2000 // larger than the window itself

		spans := PlanSegments(5000, bad)
		require.NotEmpty(t, spans)
		maxSpans := 5000/450 + 2 + 1
		assert.Less(t, len(spans), maxSpans, "safety cap must bound the plan")
		for i := 1; i < len(spans); i++ {
			assert.Greater(t, spans[i].StartSec, spans[i-1].StartSec, "start must advance")
		}
	})
}
