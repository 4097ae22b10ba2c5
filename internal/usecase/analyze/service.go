// Package analyze orchestrates one full resume-vs-requirement comparison:
// extraction, matching, classification, dimension scoring, aggregation,
// explanation, fraud assessment and ledger append.
package analyze

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/metrics"
	"github.com/resumatch/resumatch/internal/skills"
	"github.com/resumatch/resumatch/internal/usecase/classify"
	"github.com/resumatch/resumatch/internal/usecase/score"
)

// Request carries one analysis input. ResumeID is optional; a fresh identity
// is generated when absent.
type Request struct {
	ResumeID   string
	ResumeText string
	JDText     string
}

// Service wires the pipeline stages together. All stages after matching are
// pure; a run never fails for content reasons, only for infrastructure ones.
type Service struct {
	registry   *skills.Registry
	matcher    Matcher
	experience *score.ExperienceScorer
	roles      score.RoleTable
	aggregator *score.Aggregator
	ledger     Ledger
	logger     *zap.Logger
}

// New creates the analysis service.
func New(
	registry *skills.Registry,
	matcher Matcher,
	experience *score.ExperienceScorer,
	roles score.RoleTable,
	aggregator *score.Aggregator,
	ledger Ledger,
	logger *zap.Logger,
) *Service {
	return &Service{
		registry:   registry,
		matcher:    matcher,
		experience: experience,
		roles:      roles,
		aggregator: aggregator,
		ledger:     ledger,
		logger:     logger,
	}
}

// Analyze runs the full pipeline and returns a well-shaped report. Degenerate
// content (no recognizable skills on either side) yields a zero score with an
// explanatory note, not an error.
func (s *Service) Analyze(ctx context.Context, req Request) (domain.Report, error) {
	start := time.Now()
	resumeID := req.ResumeID
	if resumeID == "" {
		resumeID = uuid.NewString()
	}

	subject := s.registry.Extract(req.ResumeText)
	requirement := s.registry.Extract(req.JDText)

	report := domain.Report{
		ResumeID:     resumeID,
		ResumeSkills: subject.Strings(),
		JDSkills:     requirement.Strings(),
	}

	mode := "full"
	if subject.Len() == 0 || requirement.Len() == 0 {
		mode = "degenerate"
		s.fillEmptyInput(&report, subject, requirement)
	} else if err := s.run(ctx, req, subject, requirement, &report); err != nil {
		return domain.Report{}, err
	}

	record, err := s.ledger.Append(ctx, resumeID, domain.Snapshot{
		FinalScore:   report.Final.Value,
		Role:         report.Role,
		MatchedCount: len(report.Matched),
		MissingCount: len(report.Missing),
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("append score history: %w", err)
	}
	report.Version = &record

	metrics.AnalysesTotal.WithLabelValues(mode).Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("analysis completed",
		zap.String("resume_id", resumeID),
		zap.Int("final_score", report.Final.Value),
		zap.Int("version", record.Version),
		zap.String("role", report.Role),
	)
	return report, nil
}

// run executes the content pipeline for non-degenerate inputs.
func (s *Service) run(
	ctx context.Context, req Request, subject, requirement domain.TokenSet, report *domain.Report,
) error {
	outcome := s.matcher.Match(ctx, subject, requirement)
	report.Matched = outcome.Result.Matched.Strings()
	report.Missing = outcome.Result.Missing.Strings()

	tiers := classify.Classify(req.JDText, requirement)
	report.MustHave = tiers.Mandatory.Strings()
	report.GoodToHave = tiers.Optional.Strings()

	report.Role = s.roles.Detect(requirement)

	breakdown := make(map[domain.Dimension]domain.DimensionScore, len(domain.Dimensions))
	var detail score.ExperienceDetail

	g, _ := errgroup.WithContext(ctx)
	var skillScore, expScore, projScore, fmtScore, roleScore domain.DimensionScore
	g.Go(func() error {
		skillScore = score.Skill(outcome.Result.Matched, tiers)
		return nil
	})
	g.Go(func() error {
		expScore, detail = s.experience.Score(req.ResumeText, req.JDText)
		return nil
	})
	g.Go(func() error {
		projScore, _ = score.Project(req.ResumeText, requirement, subject)
		return nil
	})
	g.Go(func() error {
		fmtScore, _ = score.Format(req.ResumeText)
		return nil
	})
	g.Go(func() error {
		roleScore, _ = s.roles.Score(subject, report.Role)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	breakdown[domain.DimensionSkills] = skillScore
	breakdown[domain.DimensionExperience] = expScore
	breakdown[domain.DimensionProjects] = projScore
	breakdown[domain.DimensionFormat] = fmtScore
	breakdown[domain.DimensionRole] = roleScore

	final, err := s.aggregator.Aggregate(breakdown)
	if err != nil {
		return fmt.Errorf("aggregate scores: %w", err)
	}
	report.Final = final

	report.Explanation = explanationTrace(outcome.Result, tiers)
	if outcome.Degraded {
		report.Explanation = append(report.Explanation,
			"note: "+outcome.DegradationReason+"; match is lexical-only")
	}

	report.Fraud = score.AssessFraud(subject.Len(), detail.SubjectYears)
	return nil
}

// fillEmptyInput shapes the report for a run where one side yielded no
// recognizable skill tokens.
func (s *Service) fillEmptyInput(report *domain.Report, subject, requirement domain.TokenSet) {
	note := "no recognizable skills found in the resume"
	if subject.Len() > 0 {
		note = "no recognizable skills found in the job description"
	} else if requirement.Len() == 0 && subject.Len() == 0 {
		note = "no recognizable skills found on either side"
	}

	breakdown := make(map[domain.Dimension]domain.DimensionScore, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		breakdown[d] = domain.DimensionScore{Value: 0, Status: "not scored: " + note}
	}

	report.Matched = []string{}
	report.Missing = requirement.Strings()
	report.Final = domain.FinalScore{
		Value:     0,
		Breakdown: breakdown,
		Weights:   s.aggregator.Weights(),
	}
	report.Explanation = []string{"note: " + note}
	report.Fraud = domain.FraudReport{Risk: "low"}
}

// explanationTrace renders one line per requirement token in lexicographic
// order, naming its match state and tier.
func explanationTrace(result domain.MatchResult, tiers domain.Tiers) []string {
	tokens := append(result.Matched.Sorted(), result.Missing.Sorted()...)
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	lines := make([]string, 0, len(tokens))
	for _, token := range tokens {
		state := "missing"
		if result.Matched.Has(token) {
			state = "matched"
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", token, state, tiers.TierOf(token)))
	}
	return lines
}
