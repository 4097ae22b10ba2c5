package match

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/metrics"
)

// DefaultSemanticTimeout bounds the embedding call so provider latency never
// stalls the pipeline.
const DefaultSemanticTimeout = 5 * time.Second

// Outcome is the merged matching result. Degraded is true when the semantic
// path failed and the result is lexical-only.
type Outcome struct {
	Result            domain.MatchResult
	Degraded          bool
	DegradationReason string
}

// Service runs the lexical and semantic matchers and unions their results.
// The lexical path never fails; a semantic failure degrades the outcome
// instead of aborting the pipeline.
type Service struct {
	semantic *SemanticMatcher
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a matching service. semantic may be nil, in which case every
// outcome is lexical-only without a degradation note.
func New(semantic *SemanticMatcher, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultSemanticTimeout
	}
	return &Service{semantic: semantic, timeout: timeout, logger: logger}
}

// Match reconciles the two token sets. Final matched = lexical ∪ semantic;
// final missing = requirement − matched.
func (s *Service) Match(ctx context.Context, subject, requirement domain.TokenSet) Outcome {
	lexical := Lexical(subject, requirement)

	if s.semantic == nil {
		return Outcome{Result: lexical}
	}

	semanticCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	semantic, err := s.semantic.Match(semanticCtx, subject, requirement)
	if err != nil {
		metrics.SemanticMatchTotal.WithLabelValues("degraded").Inc()
		s.logger.Warn("semantic match degraded to lexical-only",
			zap.Int("subject_tokens", subject.Len()),
			zap.Int("requirement_tokens", requirement.Len()),
			zap.Error(err),
		)
		return Outcome{
			Result:            lexical,
			Degraded:          true,
			DegradationReason: "semantic matching unavailable: " + err.Error(),
		}
	}

	metrics.SemanticMatchTotal.WithLabelValues("used").Inc()
	matched := lexical.Matched.Union(semantic.Matched)
	return Outcome{
		Result: domain.MatchResult{
			Matched: matched,
			Missing: requirement.Diff(matched),
		},
	}
}
