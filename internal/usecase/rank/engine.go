// Package rank holds the recruiter-side engines: many resumes against one
// job description, and one resume against many job descriptions. Both run a
// lexical-only pipeline per pair; recruiter screening favors throughput and
// determinism over semantic recall.
package rank

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/skills"
	"github.com/resumatch/resumatch/internal/usecase/match"
	"github.com/resumatch/resumatch/internal/usecase/score"
)

// topCandidateCount bounds the shortlist in a ranking report.
const topCandidateCount = 3

// NamedText is one document with a display name.
type NamedText struct {
	Name string
	Text string
}

// CandidateResult is one resume's ranking entry.
type CandidateResult struct {
	Candidate string                                     `json:"candidate"`
	Final     int                                        `json:"final_score"`
	Breakdown map[domain.Dimension]domain.DimensionScore `json:"breakdown"`
	Matched   []string                                   `json:"matched_skills"`
	Missing   []string                                   `json:"missing_skills"`
}

// RankReport ranks many resumes against one job description.
type RankReport struct {
	Role            string            `json:"job_role"`
	TotalCandidates int               `json:"total_candidates"`
	Rankings        []CandidateResult `json:"rankings"`
	TopCandidates   []CandidateResult `json:"top_candidates"`
}

// Comparison is one job description's entry when comparing a single resume
// against many openings.
type Comparison struct {
	Name      string                                     `json:"jd_name"`
	Role      string                                     `json:"role"`
	Final     int                                        `json:"final_score"`
	Breakdown map[domain.Dimension]domain.DimensionScore `json:"breakdown"`
}

// CompareReport ranks job descriptions by fit for one resume.
type CompareReport struct {
	Comparisons []Comparison `json:"comparisons"`
	BestFit     *Comparison  `json:"best_fit,omitempty"`
}

// Engine runs the recruiter pipelines.
type Engine struct {
	registry   *skills.Registry
	experience *score.ExperienceScorer
	roles      score.RoleTable
	aggregator *score.Aggregator
	logger     *zap.Logger
}

// New creates a recruiter engine.
func New(
	registry *skills.Registry,
	experience *score.ExperienceScorer,
	roles score.RoleTable,
	aggregator *score.Aggregator,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		registry:   registry,
		experience: experience,
		roles:      roles,
		aggregator: aggregator,
		logger:     logger,
	}
}

// RankResumes scores every resume against one job description and returns
// them sorted by final score descending. Ties keep submission order.
func (e *Engine) RankResumes(resumes []NamedText, jdText string) (RankReport, error) {
	if len(resumes) == 0 {
		return RankReport{}, fmt.Errorf("no resumes to rank: %w", domain.ErrInvalidInput)
	}

	requirement := e.registry.Extract(jdText)
	role := e.roles.Detect(requirement)

	rankings := make([]CandidateResult, 0, len(resumes))
	for _, resume := range resumes {
		final, result, err := e.scorePair(resume.Text, jdText, requirement, role)
		if err != nil {
			return RankReport{}, fmt.Errorf("rank candidate %q: %w", resume.Name, err)
		}
		rankings = append(rankings, CandidateResult{
			Candidate: resume.Name,
			Final:     final.Value,
			Breakdown: final.Breakdown,
			Matched:   result.Matched.Strings(),
			Missing:   result.Missing.Strings(),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool { return rankings[i].Final > rankings[j].Final })

	top := rankings
	if len(top) > topCandidateCount {
		top = top[:topCandidateCount]
	}

	e.logger.Info("ranked candidates",
		zap.String("role", role),
		zap.Int("candidates", len(rankings)),
	)
	return RankReport{
		Role:            role,
		TotalCandidates: len(rankings),
		Rankings:        rankings,
		TopCandidates:   top,
	}, nil
}

// CompareJDs scores one resume against every job description and returns
// them sorted by final score descending, best fit first.
func (e *Engine) CompareJDs(resumeText string, jds []NamedText) (CompareReport, error) {
	if len(jds) == 0 {
		return CompareReport{}, fmt.Errorf("no job descriptions to compare: %w", domain.ErrInvalidInput)
	}

	comparisons := make([]Comparison, 0, len(jds))
	for _, jd := range jds {
		requirement := e.registry.Extract(jd.Text)
		role := e.roles.Detect(requirement)

		final, _, err := e.scorePair(resumeText, jd.Text, requirement, role)
		if err != nil {
			return CompareReport{}, fmt.Errorf("compare against %q: %w", jd.Name, err)
		}
		comparisons = append(comparisons, Comparison{
			Name:      jd.Name,
			Role:      role,
			Final:     final.Value,
			Breakdown: final.Breakdown,
		})
	}

	sort.SliceStable(comparisons, func(i, j int) bool { return comparisons[i].Final > comparisons[j].Final })

	report := CompareReport{Comparisons: comparisons}
	if len(comparisons) > 0 {
		report.BestFit = &comparisons[0]
	}
	return report, nil
}

// scorePair runs the lexical pipeline for one resume/JD pair. The skill
// dimension here is plain requirement coverage; recruiter flows carry no
// tier classification.
func (e *Engine) scorePair(
	resumeText, jdText string, requirement domain.TokenSet, role string,
) (domain.FinalScore, domain.MatchResult, error) {
	subject := e.registry.Extract(resumeText)
	result := match.Lexical(subject, requirement)

	skillValue := 0
	if requirement.Len() > 0 {
		skillValue = result.Matched.Len() * 100 / requirement.Len()
	}

	expScore, _ := e.experience.Score(resumeText, jdText)
	projScore, _ := score.Project(resumeText, requirement, subject)
	fmtScore, _ := score.Format(resumeText)
	roleScore, _ := e.roles.Score(subject, role)

	final, err := e.aggregator.Aggregate(map[domain.Dimension]domain.DimensionScore{
		domain.DimensionSkills:     {Value: skillValue, Status: "requirement coverage"},
		domain.DimensionExperience: expScore,
		domain.DimensionProjects:   projScore,
		domain.DimensionFormat:     fmtScore,
		domain.DimensionRole:       roleScore,
	})
	if err != nil {
		return domain.FinalScore{}, domain.MatchResult{}, err
	}
	return final, result, nil
}
