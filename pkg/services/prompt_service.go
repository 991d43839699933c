package services

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/prompt"
)

// Default prompt bodies seeded on first boot. Operators replace them by
// inserting a higher version and flipping is_active.
const (
	defaultSegmentAnalysisTemplate = `Analyze the video segment from {{.startSec}}s to {{.endSec}}s of "{{.title}}".
{{if .authorContext}}Channel context: {{.authorContext}}
{{end}}Produce a structured analysis of this segment only: its category, tone, intended audience, primary topic, a concise summary, named entities, recurring themes, viewer appeals, whether it contains sponsored content, and a classification with confidence.`

	defaultCombinationTemplate = `The following are per-segment analyses of "{{.title}}", in playback order:

{{.segmentSummaries}}

Write one cohesive summary of the full video that reads start to finish.`
)

// PromptService manages versioned analysis prompts.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService.
func NewPromptService(client *ent.Client) *PromptService {
	if client == nil {
		panic("NewPromptService: client is required")
	}
	return &PromptService{client: client}
}

// GetPrompt retrieves a prompt by ID.
func (s *PromptService) GetPrompt(ctx context.Context, promptID string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Get(ctx, promptID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return p, nil
}

// ActivePrompt returns the active prompt of the given type, preferring
// the highest version when several are flagged active.
func (s *PromptService) ActivePrompt(ctx context.Context, promptType prompt.PromptType) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.PromptTypeEQ(promptType),
			prompt.IsActive(true),
		).
		Order(ent.Desc(prompt.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active prompt: %w", err)
	}
	return p, nil
}

// Render substitutes vars into the prompt template. Unknown
// placeholders are an error; a prompt referencing a variable the
// caller does not supply is a deployment bug, not a runtime condition
// to paper over.
func (s *PromptService) Render(p *ent.Prompt, vars map[string]interface{}) (string, error) {
	tmpl, err := template.New(p.Name).Option("missingkey=error").Parse(p.Template)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template %q v%d: %w", p.Name, p.Version, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, vars); err != nil {
		return "", fmt.Errorf("failed to render prompt %q v%d: %w", p.Name, p.Version, err)
	}
	return out.String(), nil
}

// EnsureDefaults seeds an active default prompt for every prompt type
// that has none. Safe to call on every boot.
func (s *PromptService) EnsureDefaults(ctx context.Context) error {
	defaults := map[prompt.PromptType]struct {
		name     string
		template string
	}{
		prompt.PromptTypeSegmentAnalysis: {"segment-analysis-default", defaultSegmentAnalysisTemplate},
		prompt.PromptTypeCombination:     {"combination-default", defaultCombinationTemplate},
	}

	for promptType, d := range defaults {
		_, err := s.ActivePrompt(ctx, promptType)
		if err == nil {
			continue
		}
		if err != ErrNotFound {
			return err
		}

		err = s.client.Prompt.Create().
			SetID(uuid.New().String()).
			SetName(d.name).
			SetTemplate(d.template).
			SetPromptType(promptType).
			SetIsActive(true).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to seed default %s prompt: %w", promptType, err)
		}
	}
	return nil
}
