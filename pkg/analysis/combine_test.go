package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seg(category, summary string, confidence float64) SegmentArtifact {
	return SegmentArtifact{
		Category:       category,
		Summary:        summary,
		Classification: Classification{Label: category, Confidence: confidence},
	}
}

func TestCombine_Empty(t *testing.T) {
	out := Combine(nil, 0)
	assert.Zero(t, out.CombinedSegments)
	assert.Empty(t, out.Summary)
	assert.False(t, out.Partial)
}

func TestCombine_ModeWithTieBreak(t *testing.T) {
	segs := []SegmentArtifact{
		seg("gaming", "a", 0.5),
		seg("vlog", "b", 0.5),
		seg("vlog", "c", 0.5),
		seg("gaming", "d", 0.5),
	}
	// 2:2 tie between gaming and vlog; gaming appeared first.
	out := Combine(segs, 0)
	assert.Equal(t, "gaming", out.Category)
}

func TestCombine_ModeIgnoresEmpty(t *testing.T) {
	segs := []SegmentArtifact{
		seg("", "a", 0.5),
		seg("vlog", "b", 0.5),
	}
	out := Combine(segs, 0)
	assert.Equal(t, "vlog", out.Category)
}

func TestCombine_SummariesInIndexOrder(t *testing.T) {
	// Segments arrive in index order even when analysis completed out of
	// order; the joined summary reads start-to-finish.
	segs := []SegmentArtifact{
		seg("gaming", "First the setup.", 0.5),
		seg("gaming", "Then the run itself.", 0.5),
	}
	out := Combine(segs, 0)
	assert.Equal(t, "First the setup. Then the run itself.", out.Summary)
}

func TestCombine_UnionPreservesFirstSeenOrder(t *testing.T) {
	segs := []SegmentArtifact{
		{Category: "gaming", Summary: "a", Entities: []string{"mario", "luigi"}},
		{Category: "gaming", Summary: "b", Entities: []string{"luigi", "peach"}},
	}
	out := Combine(segs, 0)
	assert.Equal(t, []string{"mario", "luigi", "peach"}, out.Entities)
}

func TestCombine_PrimaryTopicFirstNonEmpty(t *testing.T) {
	segs := []SegmentArtifact{
		{Category: "gaming", Summary: "a"},
		{Category: "gaming", Summary: "b", PrimaryTopic: "speedrun"},
		{Category: "gaming", Summary: "c", PrimaryTopic: "glitches"},
	}
	out := Combine(segs, 0)
	assert.Equal(t, "speedrun", out.PrimaryTopic)
}

func TestCombine_ClassificationHighestConfidence(t *testing.T) {
	segs := []SegmentArtifact{
		seg("gaming", "a", 0.60),
		seg("esports", "b", 0.95),
		seg("vlog", "c", 0.95),
	}
	// 0.95 tie between index 1 and 2; earliest index wins.
	out := Combine(segs, 0)
	assert.Equal(t, "esports", out.Classification.Label)
	assert.InDelta(t, 0.95, out.Classification.Confidence, 1e-9)
}

func TestCombine_SponsoredIfAnySegmentIs(t *testing.T) {
	segs := []SegmentArtifact{
		seg("gaming", "a", 0.5),
		{Category: "gaming", Summary: "b", Sponsored: true},
	}
	out := Combine(segs, 0)
	assert.True(t, out.Sponsored)
}

func TestCombine_PartialCounts(t *testing.T) {
	segs := []SegmentArtifact{
		seg("gaming", "a", 0.5),
		seg("gaming", "b", 0.5),
		seg("gaming", "c", 0.5),
	}
	out := Combine(segs, 1)
	assert.Equal(t, 3, out.CombinedSegments)
	assert.Equal(t, 1, out.FailedSegments)
	assert.True(t, out.Partial)
}
