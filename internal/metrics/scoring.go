package metrics

import "github.com/prometheus/client_golang/prometheus"

// Scoring pipeline Prometheus metrics.
var (
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumatch",
			Name:      "analyses_total",
			Help:      "Total number of analysis runs",
		},
		[]string{"mode"}, // "full" / "degenerate"
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resumatch",
			Name:      "analysis_duration_seconds",
			Help:      "Analysis pipeline duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	SemanticMatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumatch",
			Name:      "semantic_match_total",
			Help:      "Semantic match attempts by outcome",
		},
		[]string{"status"}, // "used" / "degraded"
	)
)

var scoringMetricsRegistered bool

// RegisterScoringMetrics registers Prometheus scoring metrics. Must be called once from main.
func RegisterScoringMetrics() {
	if scoringMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(SemanticMatchTotal)
	scoringMetricsRegistered = true
}
