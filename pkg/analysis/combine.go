package analysis

import "strings"

// CombinedArtifact is the video-level merge of its segment artifacts.
// CombinedSegments and FailedSegments record how many segments fed the
// merge; Partial marks artifacts built from an incomplete segment set.
type CombinedArtifact struct {
	Category         string         `json:"category"`
	Tone             string         `json:"tone"`
	Audience         string         `json:"audience"`
	PrimaryTopic     string         `json:"primary_topic"`
	Summary          string         `json:"summary"`
	Sponsored        bool           `json:"sponsored"`
	Entities         []string       `json:"entities"`
	Themes           []string       `json:"themes"`
	Appeals          []string       `json:"appeals"`
	Classification   Classification `json:"classification"`
	CombinedSegments int            `json:"combined_segments"`
	FailedSegments   int            `json:"failed_segments"`
	Partial          bool           `json:"partial,omitempty"`
}

// Combine merges segment artifacts deterministically. Callers pass
// segments in index order; every rule below resolves ties by that
// order, so the same inputs always produce the same output.
//
// Enumerated scalars take the most frequent value (first occurrence
// wins ties), the primary topic takes the first non-empty value,
// set-valued fields union in first-seen order, summaries concatenate
// in order, and the classification keeps the single highest-confidence
// decision.
func Combine(segments []SegmentArtifact, failedSegments int) CombinedArtifact {
	out := CombinedArtifact{
		CombinedSegments: len(segments),
		FailedSegments:   failedSegments,
		Partial:          failedSegments > 0,
	}
	if len(segments) == 0 {
		return out
	}

	out.Category = modeOf(segments, func(a SegmentArtifact) string { return a.Category })
	out.Tone = modeOf(segments, func(a SegmentArtifact) string { return a.Tone })
	out.Audience = modeOf(segments, func(a SegmentArtifact) string { return a.Audience })
	out.PrimaryTopic = firstNonEmpty(segments, func(a SegmentArtifact) string { return a.PrimaryTopic })
	out.Summary = joinSummaries(segments)
	out.Entities = unionOrdered(segments, func(a SegmentArtifact) []string { return a.Entities })
	out.Themes = unionOrdered(segments, func(a SegmentArtifact) []string { return a.Themes })
	out.Appeals = unionOrdered(segments, func(a SegmentArtifact) []string { return a.Appeals })
	out.Classification = bestClassification(segments)

	for _, s := range segments {
		if s.Sponsored {
			out.Sponsored = true
			break
		}
	}
	return out
}

// modeOf returns the most frequent non-empty value. On a tie the value
// that appeared first wins.
func modeOf(segments []SegmentArtifact, field func(SegmentArtifact) string) string {
	counts := make(map[string]int)
	var order []string
	for _, s := range segments {
		v := field(s)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	for _, v := range order {
		if best == "" || counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

func firstNonEmpty(segments []SegmentArtifact, field func(SegmentArtifact) string) string {
	for _, s := range segments {
		if v := field(s); v != "" {
			return v
		}
	}
	return ""
}

// unionOrdered unions a set-valued field preserving first-seen order.
func unionOrdered(segments []SegmentArtifact, field func(SegmentArtifact) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range segments {
		for _, v := range field(s) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func joinSummaries(segments []SegmentArtifact) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Summary != "" {
			parts = append(parts, s.Summary)
		}
	}
	return strings.Join(parts, " ")
}

// bestClassification keeps the highest-confidence decision; ties go to
// the earliest segment.
func bestClassification(segments []SegmentArtifact) Classification {
	best := segments[0].Classification
	for _, s := range segments[1:] {
		if s.Classification.Confidence > best.Confidence {
			best = s.Classification
		}
	}
	return best
}
