package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidsage/vidsage/pkg/quota"
)

// recentViolationLimit bounds the violation history on the status
// surface.
const recentViolationLimit = 20

// modelQuotaStatus is one model's usage against its limits.
type modelQuotaStatus struct {
	Model            string `json:"model"`
	RequestsInMinute int64  `json:"requestsInMinute"`
	TokensInMinute   int64  `json:"tokensInMinute"`
	RequestsInDay    int64  `json:"requestsInDay"`
	RPMLimit         int64  `json:"rpmLimit"`
	TPMLimit         int64  `json:"tpmLimit"`
	RPDLimit         int64  `json:"rpdLimit"`
	MaxTokens        int64  `json:"maxTokensPerRequest"`
	Overloaded       bool   `json:"overloaded"`
}

// quotaViolationView is one recorded provider rejection.
type quotaViolationView struct {
	Model         string `json:"model"`
	Kind          string `json:"kind"`
	RetryDelaySec *int   `json:"retryDelaySec,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// quotaStatus reports per-model usage, overload cool-downs, and recent
// provider violations.
func (s *Server) quotaStatus(c *gin.Context) {
	tier := s.deps.Ledger.Tier()

	models := make([]modelQuotaStatus, 0, 3)
	for _, model := range quota.TierModels(tier) {
		usage, limits := s.deps.Ledger.Usage(model)
		models = append(models, modelQuotaStatus{
			Model:            model,
			RequestsInMinute: usage.RequestsInMinute,
			TokensInMinute:   usage.TokensInMinute,
			RequestsInDay:    usage.RequestsInDay,
			RPMLimit:         limits.RPM,
			TPMLimit:         limits.TPM,
			RPDLimit:         limits.RPD,
			MaxTokens:        limits.MaxTokensPerRequest,
			Overloaded:       s.deps.Ledger.IsOverloaded(model),
		})
	}

	rows, err := s.deps.Quotas.ListViolations(c.Request.Context(), recentViolationLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	violations := make([]quotaViolationView, 0, len(rows))
	for _, row := range rows {
		violations = append(violations, quotaViolationView{
			Model:         row.Model,
			Kind:          string(row.Kind),
			RetryDelaySec: row.RetryDelaySec,
			CreatedAt:     row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"tier":       tier,
		"models":     models,
		"violations": violations,
	})
}
