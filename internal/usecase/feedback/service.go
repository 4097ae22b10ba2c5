package feedback

import (
	"context"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
)

// unknownCategory is the fallback classification for skills the collaborator
// could not categorize.
const unknownCategory = "unknown"

// Service runs the generative path guarded by the deterministic fallback.
// The returned Outcome always carries a usable value; generator failures
// never surface to callers.
type Service struct {
	generator Generator
	logger    *zap.Logger
}

// New creates a feedback service. generator may be nil, in which case every
// outcome is the deterministic fallback.
func New(generator Generator, logger *zap.Logger) *Service {
	return &Service{generator: generator, logger: logger}
}

// Sections grades the resume sections, preferring the generative collaborator
// and substituting the deterministic report on any failure.
func (s *Service) Sections(
	ctx context.Context, resumeText, jdText string, requirement domain.TokenSet,
) domain.Outcome[domain.FeedbackReport] {
	if s.generator == nil {
		return domain.FallbackOutcome(Deterministic(resumeText, requirement), "no generative collaborator configured")
	}

	report, err := s.generator.SectionFeedback(ctx, resumeText, jdText)
	if err != nil {
		s.logger.Warn("generative section feedback failed, using deterministic analysis", zap.Error(err))
		return domain.FallbackOutcome(Deterministic(resumeText, requirement), err.Error())
	}
	return domain.PrimaryOutcome(report)
}

// ClassifyUnknown categorizes out-of-vocabulary skills. The fallback marks
// every skill as unknownCategory.
func (s *Service) ClassifyUnknown(ctx context.Context, unknown []string) domain.Outcome[map[string]string] {
	if len(unknown) == 0 {
		return domain.PrimaryOutcome(map[string]string{})
	}
	if s.generator == nil {
		return domain.FallbackOutcome(allUnknown(unknown), "no generative collaborator configured")
	}

	categories, err := s.generator.ClassifySkills(ctx, unknown)
	if err != nil {
		s.logger.Warn("generative skill classification failed",
			zap.Int("skills", len(unknown)), zap.Error(err))
		return domain.FallbackOutcome(allUnknown(unknown), err.Error())
	}

	// Fill gaps the collaborator left unanswered.
	for _, skill := range unknown {
		if _, ok := categories[skill]; !ok {
			categories[skill] = unknownCategory
		}
	}
	return domain.PrimaryOutcome(categories)
}

func allUnknown(skills []string) map[string]string {
	out := make(map[string]string, len(skills))
	for _, s := range skills {
		out[s] = unknownCategory
	}
	return out
}

// Rewrite produces a JD-targeted draft of the resume's narrative sections.
// There is no deterministic rewrite, so the fallback is an empty draft with
// the reason attached.
func (s *Service) Rewrite(ctx context.Context, resumeText, jdText string) domain.Outcome[domain.RewriteDraft] {
	if s.generator == nil {
		return domain.FallbackOutcome(domain.RewriteDraft{}, "no generative collaborator configured")
	}

	draft, err := s.generator.RewriteResume(ctx, resumeText, jdText)
	if err != nil {
		s.logger.Warn("generative rewrite failed", zap.Error(err))
		return domain.FallbackOutcome(domain.RewriteDraft{}, err.Error())
	}
	return domain.PrimaryOutcome(draft)
}
