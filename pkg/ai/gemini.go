package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Gemini is the Provider implementation backed by the Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini provider using API-key auth.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{client: client}, nil
}

// GenerateStructured streams a structured generation. Each SDK response
// becomes one chunk; the terminal chunk carries usage metadata.
func (g *Gemini) GenerateStructured(ctx context.Context, model string, parts []PromptPart, cfg GenerateConfig) (<-chan Chunk, error) {
	contents := buildContents(parts)

	genCfg, err := buildGenerateConfig(cfg)
	if err != nil {
		return nil, err
	}

	chunks := make(chan Chunk, 16)

	go func() {
		defer close(chunks)

		var usage Chunk
		for resp, err := range g.client.Models.GenerateContentStream(ctx, model, contents, genCfg) {
			if err != nil {
				select {
				case chunks <- Chunk{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			if resp.UsageMetadata != nil {
				usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
				usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
			}
			if text := resp.Text(); text != "" {
				select {
				case chunks <- Chunk{Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}

		usage.Done = true
		select {
		case chunks <- usage:
		case <-ctx.Done():
		}
	}()

	return chunks, nil
}

// buildContents converts prompt parts to genai contents.
func buildContents(parts []PromptPart) []*genai.Content {
	genParts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.FileURI != "" {
			genParts = append(genParts, genai.NewPartFromURI(p.FileURI, p.MIMEType))
			continue
		}
		genParts = append(genParts, genai.NewPartFromText(p.Text))
	}
	return []*genai.Content{{Parts: genParts, Role: "user"}}
}

// buildGenerateConfig translates the provider-neutral config to the SDK
// type. The declared response schema travels as a genai.Schema so the
// provider enforces structure server-side.
func buildGenerateConfig(cfg GenerateConfig) (*genai.GenerateContentConfig, error) {
	out := &genai.GenerateContentConfig{
		ResponseMIMEType: cfg.ResponseMIMEType,
		MaxOutputTokens:  cfg.MaxOutputTokens,
		Temperature:      cfg.Temperature,
	}
	if out.ResponseMIMEType == "" {
		out.ResponseMIMEType = "application/json"
	}

	if cfg.ResponseSchema != nil {
		schema, err := schemaFromMap(cfg.ResponseSchema)
		if err != nil {
			return nil, fmt.Errorf("invalid response schema: %w", err)
		}
		out.ResponseSchema = schema
	}

	return out, nil
}

// schemaFromMap round-trips a plain JSON-schema document into the SDK's
// schema type. Unknown keys are dropped, which is tolerable: the schema
// is advisory and the artifact is validated again at ingress.
func schemaFromMap(m map[string]interface{}) (*genai.Schema, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var schema genai.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Close releases provider resources. The genai client holds no
// connections that need explicit teardown; kept for symmetry with other
// outbound clients.
func (g *Gemini) Close() error {
	slog.Debug("Gemini provider closed")
	return nil
}
