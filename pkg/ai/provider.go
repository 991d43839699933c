// Package ai provides the analysis provider abstraction and the Gemini
// adapter behind it. Provider faults are normalized through ClassifyError
// so callers never inspect SDK error types directly.
package ai

import "context"

// PromptPart is one element of a multimodal prompt. Exactly one of Text
// or FileURI is set.
type PromptPart struct {
	Text     string
	FileURI  string
	MIMEType string
}

// TextPart returns a text prompt part.
func TextPart(text string) PromptPart {
	return PromptPart{Text: text}
}

// FilePart returns a file-reference prompt part.
func FilePart(uri, mimeType string) PromptPart {
	return PromptPart{FileURI: uri, MIMEType: mimeType}
}

// GenerateConfig declares the expected shape of the structured response.
type GenerateConfig struct {
	// ResponseSchema is the declared structured-output schema, expressed
	// as a plain JSON-schema document. Nil means unconstrained JSON.
	ResponseSchema map[string]interface{}

	// ResponseMIMEType defaults to "application/json" when empty.
	ResponseMIMEType string

	// MaxOutputTokens bounds the response; 0 means provider default.
	MaxOutputTokens int32

	// Temperature is optional; nil means provider default.
	Temperature *float32
}

// Chunk is one streamed piece of a structured generation. The terminal
// chunk has Done set and carries usage metadata; a failed stream ends
// with a chunk whose Err is set.
type Chunk struct {
	Text         string
	Done         bool
	InputTokens  int
	OutputTokens int
	Err          error
}

// TotalTokens returns the combined input and output token count.
func (c Chunk) TotalTokens() int {
	return c.InputTokens + c.OutputTokens
}

// Provider generates structured responses from a metered external model.
type Provider interface {
	// GenerateStructured starts a streaming generation. The returned
	// channel is closed after the terminal chunk. Errors surfaced on a
	// chunk retain the SDK error value for ClassifyError.
	GenerateStructured(ctx context.Context, model string, parts []PromptPart, cfg GenerateConfig) (<-chan Chunk, error)
}
