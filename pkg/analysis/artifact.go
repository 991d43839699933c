// Package analysis defines the per-segment artifact produced by the AI
// provider and the deterministic policy that merges segment artifacts
// into one combined artifact per video.
package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Classification is a labelled decision with a provider-reported
// confidence in [0, 1].
type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SegmentArtifact is the structured analysis of one video segment.
// Category, Tone and Audience are free-form enumerated labels; the
// provider is steered toward a closed set via the response schema but
// unknown labels are accepted and lowercased rather than rejected.
type SegmentArtifact struct {
	Category       string         `json:"category"`
	Tone           string         `json:"tone"`
	Audience       string         `json:"audience"`
	PrimaryTopic   string         `json:"primary_topic"`
	Summary        string         `json:"summary"`
	Sponsored      bool           `json:"sponsored"`
	Entities       []string       `json:"entities"`
	Themes         []string       `json:"themes"`
	Appeals        []string       `json:"appeals"`
	Classification Classification `json:"classification"`
}

// ResponseSchema returns the JSON schema handed to the provider so the
// streamed output matches SegmentArtifact.
func ResponseSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":      map[string]any{"type": "string"},
			"tone":          map[string]any{"type": "string"},
			"audience":      map[string]any{"type": "string"},
			"primary_topic": map[string]any{"type": "string"},
			"summary":       map[string]any{"type": "string"},
			"sponsored":     map[string]any{"type": "boolean"},
			"entities":      stringArray,
			"themes":        stringArray,
			"appeals":       stringArray,
			"classification": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label":      map[string]any{"type": "string"},
					"confidence": map[string]any{"type": "number"},
				},
				"required": []string{"label", "confidence"},
			},
		},
		"required": []string{"category", "summary", "classification"},
	}
}

// ParseArtifact decodes a raw provider response into a validated
// artifact. Providers occasionally emit booleans and numbers as quoted
// strings despite the response schema; those are normalized before
// decoding rather than failed.
func ParseArtifact(raw string) (*SegmentArtifact, error) {
	var loose map[string]any
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil, fmt.Errorf("artifact is not valid JSON: %w", err)
	}
	normalizeRaw(loose)

	canonical, err := json.Marshal(loose)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize artifact: %w", err)
	}

	var a SegmentArtifact
	if err := json.Unmarshal(canonical, &a); err != nil {
		return nil, fmt.Errorf("artifact does not match schema: %w", err)
	}

	a.Category = strings.ToLower(strings.TrimSpace(a.Category))
	a.Tone = strings.ToLower(strings.TrimSpace(a.Tone))
	a.Audience = strings.ToLower(strings.TrimSpace(a.Audience))
	a.PrimaryTopic = strings.TrimSpace(a.PrimaryTopic)
	a.Summary = strings.TrimSpace(a.Summary)
	a.Classification.Label = strings.ToLower(strings.TrimSpace(a.Classification.Label))

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the sections the combination policy depends on.
func (a *SegmentArtifact) Validate() error {
	var missing []string
	if a.Category == "" {
		missing = append(missing, "category")
	}
	if a.Summary == "" {
		missing = append(missing, "summary")
	}
	if a.Classification.Label == "" {
		missing = append(missing, "classification.label")
	}
	if len(missing) > 0 {
		return fmt.Errorf("artifact missing required sections: %s", strings.Join(missing, ", "))
	}
	if a.Classification.Confidence < 0 || a.Classification.Confidence > 1 {
		return fmt.Errorf("classification confidence %v out of range [0, 1]", a.Classification.Confidence)
	}
	return nil
}

// normalizeRaw repairs quoted scalars in place: "true"/"false" strings
// on sponsored, and numeric strings on classification.confidence.
func normalizeRaw(m map[string]any) {
	if s, ok := m["sponsored"].(string); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			m["sponsored"] = b
		}
	}
	cls, ok := m["classification"].(map[string]any)
	if !ok {
		return
	}
	if s, ok := cls["confidence"].(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			cls["confidence"] = f
		}
	}
}
