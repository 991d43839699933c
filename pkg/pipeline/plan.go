package pipeline

import (
	"math"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/services"
)

// PlanSegments cuts a video into overlapping analysis segments.
//
// A video at most MaxSegmentSec long becomes a single segment. Longer
// videos are cut into MaxSegmentSec windows overlapping by
// SegmentOverlapSec; a tail shorter than 0.3·MaxSegmentSec is absorbed
// into the preceding window instead of becoming its own segment. Two
// liveness bounds protect against degenerate configuration: each window
// must advance the start by at least 0.8·MaxSegmentSec, and the total
// segment count is capped at ceil(duration/(0.5·MaxSegmentSec))+2.
//
// Non-positive durations return nil; the caller fails the video.
func PlanSegments(durationSec int, cfg *config.PipelineConfig) []services.SegmentSpan {
	if durationSec <= 0 {
		return nil
	}

	maxSeg := cfg.MaxSegmentSec
	overlap := cfg.SegmentOverlapSec
	if maxSeg <= 0 {
		maxSeg = 900
	}

	if durationSec <= maxSeg {
		return []services.SegmentSpan{{Index: 0, StartSec: 0, EndSec: durationSec}}
	}

	tailMin := int(0.3 * float64(maxSeg))
	minAdvance := int(0.8 * float64(maxSeg))
	safetyCap := int(math.Ceil(float64(durationSec)/(0.5*float64(maxSeg)))) + 2

	var spans []services.SegmentSpan
	start := 0
	for start < durationSec && len(spans) < safetyCap {
		end := start + maxSeg
		if end > durationSec {
			end = durationSec
		}
		if durationSec-end < tailMin {
			end = durationSec
		}

		spans = append(spans, services.SegmentSpan{Index: len(spans), StartSec: start, EndSec: end})
		if end >= durationSec {
			break
		}

		next := end - overlap
		if next <= start {
			next = start + minAdvance
		}
		start = next
	}
	return spans
}
