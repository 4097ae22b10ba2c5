package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
)

// textGenerator is the consumer interface over the GenAI wrapper, injectable
// in tests.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Collaborator turns prompt round-trips into typed feedback structures. It
// implements the feedback usecase's Generator contract.
type Collaborator struct {
	gen    textGenerator
	logger *zap.Logger
}

// NewCollaborator creates a collaborator over a text generator.
func NewCollaborator(gen textGenerator, logger *zap.Logger) *Collaborator {
	return &Collaborator{gen: gen, logger: logger}
}

// SectionFeedback asks the model to grade every resume section.
func (c *Collaborator) SectionFeedback(ctx context.Context, resumeText, jdText string) (domain.FeedbackReport, error) {
	raw, err := c.gen.Generate(ctx, fmt.Sprintf(sectionFeedbackPrompt, resumeText, jdText))
	if err != nil {
		return nil, fmt.Errorf("section feedback: %w", err)
	}

	report, err := parseFeedbackReport(raw)
	if err != nil {
		c.logger.Warn("section feedback response unparseable",
			zap.Int("response_bytes", len(raw)), zap.Error(err))
		return nil, err
	}
	return report, nil
}

// ClassifySkills asks the model to categorize out-of-vocabulary skills.
func (c *Collaborator) ClassifySkills(ctx context.Context, skills []string) (map[string]string, error) {
	raw, err := c.gen.Generate(ctx, fmt.Sprintf(skillClassificationPrompt, strings.Join(skills, ", ")))
	if err != nil {
		return nil, fmt.Errorf("classify skills: %w", err)
	}

	categories, err := parseSkillCategories(raw)
	if err != nil {
		c.logger.Warn("skill classification response unparseable",
			zap.Int("skills", len(skills)), zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// RewriteResume asks the model for a JD-targeted rewrite of the resume's
// narrative sections.
func (c *Collaborator) RewriteResume(ctx context.Context, resumeText, jdText string) (domain.RewriteDraft, error) {
	raw, err := c.gen.Generate(ctx, fmt.Sprintf(resumeRewritePrompt, resumeText, jdText))
	if err != nil {
		return domain.RewriteDraft{}, fmt.Errorf("rewrite resume: %w", err)
	}

	draft, err := parseRewriteDraft(raw)
	if err != nil {
		c.logger.Warn("rewrite response unparseable",
			zap.Int("response_bytes", len(raw)), zap.Error(err))
		return domain.RewriteDraft{}, err
	}
	return draft, nil
}
