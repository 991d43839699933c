package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

func TestClassifyError_Nil(t *testing.T) {
	c := ClassifyError(nil)
	assert.Empty(t, c.Class)
}

func TestClassifyError_ContextErrors(t *testing.T) {
	assert.Equal(t, ClassTransient, ClassifyError(context.Canceled).Class)
	assert.Equal(t, ClassTransient, ClassifyError(context.DeadlineExceeded).Class)
}

func TestClassifyError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Class
	}{
		{"quota", 429, ClassQuota},
		{"overload", 503, ClassOverload},
		{"bad request", 400, ClassValidation},
		{"not found", 404, ClassValidation},
		{"unauthorized", 401, ClassFatal},
		{"forbidden", 403, ClassFatal},
		{"internal", 500, ClassTransient},
		{"bad gateway", 502, ClassTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := genai.APIError{Code: tt.code, Message: tt.name}
			got := ClassifyError(err)
			assert.Equal(t, tt.want, got.Class)
			assert.Equal(t, tt.name, got.Message)
		})
	}
}

func TestClassifyError_QuotaDetails(t *testing.T) {
	err := genai.APIError{
		Code:    429,
		Message: "quota exceeded",
		Details: []map[string]any{
			{
				"@type": "type.googleapis.com/google.rpc.QuotaFailure",
				"violations": []any{
					map[string]any{"quotaId": "GenerateRequestsPerModelPerMinute"},
				},
			},
			{
				"@type":      "type.googleapis.com/google.rpc.RetryInfo",
				"retryDelay": "45s",
			},
		},
	}

	c := ClassifyError(err)
	require.Equal(t, ClassQuota, c.Class)
	assert.Equal(t, QuotaRPM, c.QuotaKind)
	assert.Equal(t, 45, c.RetryDelaySec)
	assert.Equal(t, []string{"GenerateRequestsPerModelPerMinute"}, c.QuotaIDs)
}

func TestClassifyError_QuotaKinds(t *testing.T) {
	tests := []struct {
		quotaID string
		want    QuotaKind
	}{
		{"GenerateRequestsPerModelPerDay", QuotaRPD},
		{"GenerateContentInputTokensPerModelPerMinute", QuotaTPM},
		{"GenerateRequestsPerModelPerMinute", QuotaRPM},
		{"SomethingElseEntirely", QuotaUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.quotaID, func(t *testing.T) {
			err := genai.APIError{
				Code: 429,
				Details: []map[string]any{
					{
						"@type": "type.googleapis.com/google.rpc.QuotaFailure",
						"violations": []any{
							map[string]any{"quotaId": tt.quotaID},
						},
					},
				},
			}
			assert.Equal(t, tt.want, ClassifyError(err).QuotaKind)
		})
	}
}

func TestClassifyError_QuotaWithoutDetails(t *testing.T) {
	c := ClassifyError(genai.APIError{Code: 429, Message: "slow down"})
	require.Equal(t, ClassQuota, c.Class)
	assert.Equal(t, QuotaUnknown, c.QuotaKind)
	assert.Zero(t, c.RetryDelaySec)
}

func TestClassifyError_GoogleAPIError(t *testing.T) {
	err := &googleapi.Error{Code: 429, Message: "rateLimitExceeded"}
	c := ClassifyError(fmt.Errorf("listing uploads: %w", err))
	assert.Equal(t, ClassQuota, c.Class)
}

func TestClassifyError_KeywordFallback(t *testing.T) {
	tests := []struct {
		err  error
		want Class
	}{
		{errors.New("Quota exhausted for project"), ClassQuota},
		{errors.New("model is overloaded"), ClassOverload},
		{errors.New("service unavailable"), ClassOverload},
		{errors.New("connection reset by peer"), ClassTransient},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err).Class)
		})
	}
}

func TestClassifyError_WrappedAPIError(t *testing.T) {
	err := fmt.Errorf("streaming response: %w", genai.APIError{Code: 503, Message: "overloaded"})
	assert.Equal(t, ClassOverload, ClassifyError(err).Class)
}
