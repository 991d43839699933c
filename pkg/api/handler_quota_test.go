package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/quota"
)

func TestQuotaStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	ts.ledger.Record(ctx, quota.ModelGeminiPro, 40_000)
	ts.ledger.Record(ctx, quota.ModelGeminiPro, 2_000)
	ts.ledger.MarkOverloaded(quota.ModelGeminiFlash)

	retry := 45
	require.NoError(t, ts.quotas.InsertViolation(ctx, quota.ModelGeminiPro, ai.QuotaRPM, &retry, "quota exceeded"))

	status, body := ts.do(t, http.MethodGet, "/api/v1/quota/status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "free", body["tier"])

	models := body["models"].([]interface{})
	require.Len(t, models, 3)

	byName := make(map[string]map[string]interface{}, len(models))
	for _, m := range models {
		entry := m.(map[string]interface{})
		byName[entry["model"].(string)] = entry
	}

	pro := byName[quota.ModelGeminiPro]
	require.NotNil(t, pro)
	assert.Equal(t, float64(2), pro["requestsInMinute"])
	assert.Equal(t, float64(42_000), pro["tokensInMinute"])
	assert.Equal(t, float64(2), pro["requestsInDay"])
	assert.Equal(t, float64(5), pro["rpmLimit"])
	assert.Equal(t, float64(100), pro["rpdLimit"])
	assert.Equal(t, false, pro["overloaded"])

	flash := byName[quota.ModelGeminiFlash]
	require.NotNil(t, flash)
	assert.Equal(t, true, flash["overloaded"])

	violations := body["violations"].([]interface{})
	require.Len(t, violations, 1)
	v := violations[0].(map[string]interface{})
	assert.Equal(t, quota.ModelGeminiPro, v["model"])
	assert.Equal(t, "rpm", v["kind"])
	assert.Equal(t, float64(45), v["retryDelaySec"])
	assert.NotEmpty(t, v["createdAt"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["version"])

	db := body["database"].(map[string]interface{})
	assert.Equal(t, "healthy", db["status"])
}
