package domain

// Outcome is the result of an attempt-primary-or-fallback computation, used
// for the generative feedback path. When the primary path fails in a
// classified way, Value holds the fallback result and DegradationReason says
// why.
type Outcome[T any] struct {
	UsedPrimary       bool   `json:"used_primary"`
	Value             T      `json:"value"`
	DegradationReason string `json:"degradation_reason,omitempty"`
}

// PrimaryOutcome wraps a successful primary-path value.
func PrimaryOutcome[T any](v T) Outcome[T] {
	return Outcome[T]{UsedPrimary: true, Value: v}
}

// FallbackOutcome wraps a fallback value with the reason the primary path was
// abandoned.
func FallbackOutcome[T any](v T, reason string) Outcome[T] {
	return Outcome[T]{UsedPrimary: false, Value: v, DegradationReason: reason}
}
