package domain

import (
	"fmt"
	"math"
)

// Dimension identifies one independently scored facet of a comparison.
type Dimension string

// Scoring dimensions.
const (
	DimensionSkills     Dimension = "skills"
	DimensionExperience Dimension = "experience"
	DimensionProjects   Dimension = "projects"
	DimensionFormat     Dimension = "format"
	DimensionRole       Dimension = "role"
)

// Dimensions lists every dimension in declaration order. The aggregator
// requires a score for each.
var Dimensions = []Dimension{
	DimensionSkills,
	DimensionExperience,
	DimensionProjects,
	DimensionFormat,
	DimensionRole,
}

// DimensionScore is a bounded score with a short status label.
type DimensionScore struct {
	Value  int    `json:"value"`
	Status string `json:"status"`
}

// Weights maps each dimension to its share of the final score.
type Weights map[Dimension]float64

const weightSumEpsilon = 1e-9

// Validate checks that every dimension has a weight and the weights sum to
// 1.0. A violation is a programmer/configuration error and must be fatal at
// startup.
func (w Weights) Validate() error {
	sum := 0.0
	for _, d := range Dimensions {
		weight, ok := w[d]
		if !ok {
			return fmt.Errorf("weights: dimension %q missing", d)
		}
		if weight < 0 {
			return fmt.Errorf("weights: dimension %q has negative weight %v", d, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("weights: sum is %v, want 1.0", sum)
	}
	return nil
}

// DefaultWeights returns the fixed production weight table.
func DefaultWeights() Weights {
	return Weights{
		DimensionSkills:     0.45,
		DimensionExperience: 0.25,
		DimensionProjects:   0.15,
		DimensionFormat:     0.10,
		DimensionRole:       0.05,
	}
}

// FinalScore is the weighted combination of all dimension scores. Weights are
// echoed so downstream consumers never hardcode them.
type FinalScore struct {
	Value     int                          `json:"value"`
	Breakdown map[Dimension]DimensionScore `json:"breakdown"`
	Weights   Weights                      `json:"weights"`
}

// FraudReport is the output of the plausibility heuristic. Risk is "high"
// iff at least one signal fired.
type FraudReport struct {
	Risk    string   `json:"risk"`
	Signals []string `json:"signals"`
}
