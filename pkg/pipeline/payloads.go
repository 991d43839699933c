package pipeline

// DiscoveryPayload drives one discovery run for a channel.
type DiscoveryPayload struct {
	ChannelID string `json:"channelId"`

	// InitialFetch widens the fetch window for a channel's first run.
	InitialFetch bool `json:"initialFetch,omitempty"`
}

// MetadataPayload drives one metadata enrichment.
type MetadataPayload struct {
	ContentID string `json:"contentId"`
}

// PlanningPayload drives one chunk-planning run.
type PlanningPayload struct {
	ContentID string `json:"contentId"`
}

// AnalysisPayload drives one segment analysis delivery.
type AnalysisPayload struct {
	ContentID    string `json:"contentId"`
	SegmentIndex int    `json:"segmentIndex"`

	// ExternalSourceRef is the provider-side video reference handed to
	// the AI provider as a file part.
	ExternalSourceRef string `json:"externalSourceRef"`

	// PromptID pins the prompt version the whole plan was enqueued
	// with; empty falls back to the active prompt.
	PromptID string `json:"promptId,omitempty"`

	// ForceModel bypasses model selection but not the quota ledger.
	ForceModel string `json:"forceModel,omitempty"`
}

// CombinationPayload drives one combination run.
type CombinationPayload struct {
	ContentID  string `json:"contentId"`
	ForceModel string `json:"forceModel,omitempty"`

	// AllowPartial lets a manually triggered run combine a PARTIAL
	// video; automatic triggers only fire on READY.
	AllowPartial bool `json:"allowPartial,omitempty"`
}

// StatsPayload drives one statistics refresh. An empty ContentID
// refreshes every video that has reached a terminal analysis state.
type StatsPayload struct {
	ContentID string `json:"contentId,omitempty"`
}
