package quota

import "fmt"

// Selection reasons returned when no model is eligible.
const (
	ReasonTooLarge   = "too-large"
	ReasonNoEligible = "no-eligible-model"
)

// Selector picks the best eligible model for a token estimate. It is a
// thin, stateless view over the ledger.
type Selector struct {
	ledger *Ledger
}

// NewSelector creates a selector over the shared ledger.
func NewSelector(ledger *Ledger) *Selector {
	if ledger == nil {
		panic("NewSelector: ledger is required")
	}
	return &Selector{ledger: ledger}
}

// Select returns the first model in preference order that exists in the
// active tier, is not excluded, is not inside an overload cool-down, and
// passes CanMake for estTokens. An empty model means none qualified;
// the reason distinguishes "every eligible model caps below the request"
// (ReasonTooLarge) from ordinary exhaustion.
func (s *Selector) Select(estTokens int, exclude map[string]bool) (model, reason string) {
	tier := s.ledger.Tier()
	models := TierModels(tier)
	if len(models) == 0 {
		return "", fmt.Sprintf("tier %s has no models", tier)
	}

	considered := 0
	tooLarge := 0
	var lastDenial string

	for _, candidate := range models {
		if exclude[candidate] {
			continue
		}
		if s.ledger.IsOverloaded(candidate) {
			lastDenial = fmt.Sprintf("%s is overloaded", candidate)
			continue
		}
		considered++

		d := s.ledger.CanMake(candidate, estTokens)
		if d.Allowed {
			return candidate, ""
		}
		if d.Dimension == DimMaxTok {
			tooLarge++
		}
		lastDenial = fmt.Sprintf("%s: %s", candidate, d.Reason)
	}

	if considered > 0 && tooLarge == considered {
		return "", ReasonTooLarge
	}
	if lastDenial != "" {
		return "", lastDenial
	}
	return "", ReasonNoEligible
}
