package score

import (
	"github.com/resumatch/resumatch/internal/domain"
)

// Fraud heuristic thresholds. This is a coarse plausibility check, not a
// verification system; false positives are expected and acceptable.
const (
	fraudMaxTokensForJunior = 20
	fraudJuniorYears        = 2
	fraudMaxPlausibleYears  = 15
)

// AssessFraud flags statistically implausible token/experience combinations.
// Risk is "high" iff any signal fired.
func AssessFraud(tokenCount int, yearsExperience float64) domain.FraudReport {
	var signals []string

	if tokenCount > fraudMaxTokensForJunior && yearsExperience < fraudJuniorYears {
		signals = append(signals, "high skill count with low experience")
	}
	if yearsExperience > fraudMaxPlausibleYears {
		signals = append(signals, "unusually high experience value")
	}

	risk := "low"
	if len(signals) > 0 {
		risk = "high"
	}
	return domain.FraudReport{Risk: risk, Signals: signals}
}
