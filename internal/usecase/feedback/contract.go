package feedback

import (
	"context"

	"github.com/resumatch/resumatch/internal/domain"
)

// Generator is the generative collaborator behind the feedback,
// classification and rewrite paths.
type Generator interface {
	SectionFeedback(ctx context.Context, resumeText, jdText string) (domain.FeedbackReport, error)
	ClassifySkills(ctx context.Context, skills []string) (map[string]string, error)
	RewriteResume(ctx context.Context, resumeText, jdText string) (domain.RewriteDraft, error)
}
