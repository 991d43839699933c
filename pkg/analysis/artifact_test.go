package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtifact_Valid(t *testing.T) {
	raw := `{
		"category": "Gaming",
		"tone": "Energetic",
		"audience": "general",
		"primary_topic": "speedrun world record",
		"summary": "  A world record attempt. ",
		"sponsored": false,
		"entities": ["Mario 64"],
		"themes": ["competition"],
		"appeals": ["skill display"],
		"classification": {"label": "Entertainment", "confidence": 0.92}
	}`

	a, err := ParseArtifact(raw)
	require.NoError(t, err)
	assert.Equal(t, "gaming", a.Category)
	assert.Equal(t, "energetic", a.Tone)
	assert.Equal(t, "A world record attempt.", a.Summary)
	assert.Equal(t, "entertainment", a.Classification.Label)
	assert.InDelta(t, 0.92, a.Classification.Confidence, 1e-9)
}

func TestParseArtifact_NormalizesQuotedScalars(t *testing.T) {
	raw := `{
		"category": "gaming",
		"summary": "short",
		"sponsored": "true",
		"classification": {"label": "entertainment", "confidence": "0.75"}
	}`

	a, err := ParseArtifact(raw)
	require.NoError(t, err)
	assert.True(t, a.Sponsored)
	assert.InDelta(t, 0.75, a.Classification.Confidence, 1e-9)
}

func TestParseArtifact_NotJSON(t *testing.T) {
	_, err := ParseArtifact("the model said words instead")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestParseArtifact_MissingSections(t *testing.T) {
	_, err := ParseArtifact(`{"tone": "calm"}`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "category")
	assert.ErrorContains(t, err, "summary")
	assert.ErrorContains(t, err, "classification.label")
}

func TestParseArtifact_ConfidenceOutOfRange(t *testing.T) {
	raw := `{
		"category": "gaming",
		"summary": "short",
		"classification": {"label": "entertainment", "confidence": 1.5}
	}`
	_, err := ParseArtifact(raw)
	assert.ErrorContains(t, err, "out of range")
}

func TestResponseSchema_RequiredSections(t *testing.T) {
	schema := ResponseSchema()
	assert.ElementsMatch(t,
		[]string{"category", "summary", "classification"},
		schema["required"])
}
