package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/prompt"
	testdb "github.com/vidsage/vidsage/test/database"
)

func TestPromptService_EnsureDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	segPrompt, err := svc.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis)
	require.NoError(t, err)
	assert.True(t, segPrompt.IsActive)

	combPrompt, err := svc.ActivePrompt(ctx, prompt.PromptTypeCombination)
	require.NoError(t, err)
	assert.True(t, combPrompt.IsActive)

	// Idempotent: a second boot does not duplicate prompts.
	require.NoError(t, svc.EnsureDefaults(ctx))
	n, err := client.Prompt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPromptService_ActivePrompt_PrefersHighestVersion(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	for _, version := range []int{1, 3, 2} {
		err := client.Prompt.Create().
			SetID(uuid.New().String()).
			SetName("seg-versions").
			SetVersion(version).
			SetTemplate("v{{.v}}").
			SetPromptType(prompt.PromptTypeSegmentAnalysis).
			SetIsActive(true).
			Exec(ctx)
		require.NoError(t, err)
	}

	p, err := svc.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Version)
}

func TestPromptService_ActivePrompt_NoneActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)

	_, err := svc.ActivePrompt(context.Background(), prompt.PromptTypeCombination)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptService_Render(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	p, err := client.Prompt.Create().
		SetID(uuid.New().String()).
		SetName("render-test").
		SetTemplate(`Analyze {{.title}} from {{.startSec}}s to {{.endSec}}s.`).
		SetPromptType(prompt.PromptTypeSegmentAnalysis).
		Save(ctx)
	require.NoError(t, err)

	t.Run("substitutes variables", func(t *testing.T) {
		rendered, err := svc.Render(p, map[string]interface{}{
			"title":    "My Video",
			"startSec": 0,
			"endSec":   900,
		})
		require.NoError(t, err)
		assert.Equal(t, "Analyze My Video from 0s to 900s.", rendered)
	})

	t.Run("missing variable is an error", func(t *testing.T) {
		_, err := svc.Render(p, map[string]interface{}{"title": "My Video"})
		assert.Error(t, err)
	})
}

func TestPromptService_DefaultTemplatesRender(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	segPrompt, err := svc.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis)
	require.NoError(t, err)
	rendered, err := svc.Render(segPrompt, map[string]interface{}{
		"title":         "My Video",
		"startSec":      0,
		"endSec":        900,
		"authorContext": "",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "My Video")

	combPrompt, err := svc.ActivePrompt(ctx, prompt.PromptTypeCombination)
	require.NoError(t, err)
	rendered, err = svc.Render(combPrompt, map[string]interface{}{
		"title":            "My Video",
		"segmentSummaries": "1. intro 2. outro",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "1. intro 2. outro")
}
