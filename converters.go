package resumatch

import (
	"github.com/resumatch/resumatch/internal/domain"
	rankuc "github.com/resumatch/resumatch/internal/usecase/rank"
)

func reportFromDomain(r domain.Report) Report {
	out := Report{
		ResumeID:     r.ResumeID,
		ResumeSkills: r.ResumeSkills,
		JDSkills:     r.JDSkills,
		Matched:      r.Matched,
		Missing:      r.Missing,
		MustHave:     r.MustHave,
		GoodToHave:   r.GoodToHave,
		Role:         r.Role,
		Final:        finalFromDomain(r.Final),
		Explanation:  r.Explanation,
		Fraud:        FraudReport{Risk: r.Fraud.Risk, Signals: r.Fraud.Signals},
	}
	if r.Version != nil {
		v := versionFromDomain(*r.Version)
		out.Version = &v
	}
	return out
}

func finalFromDomain(f domain.FinalScore) FinalScore {
	return FinalScore{
		Value:     f.Value,
		Breakdown: breakdownFromDomain(f.Breakdown),
		Weights:   weightsFromDomain(f.Weights),
	}
}

func breakdownFromDomain(b map[domain.Dimension]domain.DimensionScore) map[string]DimensionScore {
	out := make(map[string]DimensionScore, len(b))
	for d, s := range b {
		out[string(d)] = DimensionScore{Value: s.Value, Status: s.Status}
	}
	return out
}

func weightsFromDomain(w domain.Weights) map[string]float64 {
	out := make(map[string]float64, len(w))
	for d, v := range w {
		out[string(d)] = v
	}
	return out
}

func versionFromDomain(v domain.VersionRecord) VersionRecord {
	return VersionRecord{
		ResumeID:     v.DocumentID,
		Version:      v.Version,
		Timestamp:    v.Timestamp,
		FinalScore:   v.FinalScore,
		Role:         v.Role,
		MatchedCount: v.MatchedCount,
		MissingCount: v.MissingCount,
	}
}

func recommendationFromDomain(r domain.Recommendation) Recommendation {
	return Recommendation{
		LearningPath:   r.LearningPath,
		ProjectIdeas:   r.ProjectIdeas,
		Certifications: r.Certifications,
		Confidence:     r.Confidence,
	}
}

func namedTextsFromPublic(docs []NamedDocument) []rankuc.NamedText {
	out := make([]rankuc.NamedText, len(docs))
	for i, d := range docs {
		out[i] = rankuc.NamedText{Name: d.Name, Text: d.Text}
	}
	return out
}

func rankReportFromDomain(r rankuc.RankReport) RankReport {
	return RankReport{
		Role:            r.Role,
		TotalCandidates: r.TotalCandidates,
		Rankings:        candidatesFromDomain(r.Rankings),
		TopCandidates:   candidatesFromDomain(r.TopCandidates),
	}
}

func candidatesFromDomain(in []rankuc.CandidateResult) []RankedCandidate {
	out := make([]RankedCandidate, len(in))
	for i, c := range in {
		out[i] = RankedCandidate{
			Candidate:  c.Candidate,
			FinalScore: c.Final,
			Breakdown:  breakdownFromDomain(c.Breakdown),
			Matched:    c.Matched,
			Missing:    c.Missing,
		}
	}
	return out
}

func compareReportFromDomain(r rankuc.CompareReport) CompareReport {
	out := CompareReport{
		Comparisons: make([]Comparison, len(r.Comparisons)),
	}
	for i, c := range r.Comparisons {
		out.Comparisons[i] = Comparison{
			Name:       c.Name,
			Role:       c.Role,
			FinalScore: c.Final,
			Breakdown:  breakdownFromDomain(c.Breakdown),
		}
	}
	if r.BestFit != nil && len(out.Comparisons) > 0 {
		out.BestFit = &out.Comparisons[0]
	}
	return out
}
