package score

import (
	"fmt"
	"math"

	"github.com/resumatch/resumatch/internal/domain"
)

// Aggregator combines the five dimension scores into one final score.
// Weights are validated at construction; an invalid table is a programmer
// error surfaced at startup, never at request time.
type Aggregator struct {
	weights domain.Weights
}

// NewAggregator validates the weight table and creates an aggregator.
func NewAggregator(weights domain.Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("aggregator: %w", err)
	}
	return &Aggregator{weights: weights}, nil
}

// Weights returns the weight table echoed into every FinalScore.
func (a *Aggregator) Weights() domain.Weights { return a.weights }

// Aggregate computes round(Σ weight×score). Every dimension must be present;
// a missing one is a caller error, not a silent default.
func (a *Aggregator) Aggregate(breakdown map[domain.Dimension]domain.DimensionScore) (domain.FinalScore, error) {
	weighted := 0.0
	for _, d := range domain.Dimensions {
		s, ok := breakdown[d]
		if !ok {
			return domain.FinalScore{}, fmt.Errorf("aggregate: dimension %q missing from breakdown", d)
		}
		weighted += a.weights[d] * float64(s.Value)
	}

	return domain.FinalScore{
		Value:     int(math.Round(weighted)),
		Breakdown: breakdown,
		Weights:   a.weights,
	}, nil
}
