// Package score holds the independent dimension scorers, the weighted
// aggregator and the fraud heuristic. Every scorer is pure given its inputs
// and no scorer depends on another's output.
package score

import (
	"math"

	"github.com/resumatch/resumatch/internal/domain"
)

// skillScoreCap reserves headroom so no submission is ever rated a literal
// perfect match.
const skillScoreCap = 95

// Skill computes the coverage-weighted skill score: a matched mandatory
// token is worth 2 points, a matched optional token 1 point, normalized
// against the maximum attainable and capped at skillScoreCap.
func Skill(matched domain.TokenSet, tiers domain.Tiers) domain.DimensionScore {
	maxPoints := 2*tiers.Mandatory.Len() + tiers.Optional.Len()
	if maxPoints == 0 {
		return domain.DimensionScore{Value: 0, Status: "no requirement skills to score"}
	}

	points := 0
	for token := range matched {
		switch {
		case tiers.Mandatory.Has(token):
			points += 2
		case tiers.Optional.Has(token):
			points++
		}
	}

	value := int(math.Round(float64(points) / float64(maxPoints) * 100))
	if value > skillScoreCap {
		value = skillScoreCap
	}

	return domain.DimensionScore{Value: value, Status: skillStatus(value)}
}

func skillStatus(value int) string {
	switch {
	case value >= 75:
		return "strong skill alignment"
	case value >= 40:
		return "partial skill alignment"
	default:
		return "low skill alignment"
	}
}
