package resumatch

import "time"

// DimensionScore is a bounded 0..100 score with a short status label.
type DimensionScore struct {
	Value  int    `json:"value"`
	Status string `json:"status"`
}

// FinalScore is the weighted combination of all dimension scores. Weights are
// echoed so callers never hardcode them.
type FinalScore struct {
	Value     int                       `json:"value"`
	Breakdown map[string]DimensionScore `json:"breakdown"`
	Weights   map[string]float64        `json:"weights"`
}

// FraudReport is the plausibility verdict. Risk is "high" iff at least one
// signal fired.
type FraudReport struct {
	Risk    string   `json:"risk"`
	Signals []string `json:"signals"`
}

// VersionRecord is one entry in a resume's score history.
type VersionRecord struct {
	ResumeID     string    `json:"resume_id"`
	Version      int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
	FinalScore   int       `json:"final_score"`
	Role         string    `json:"role"`
	MatchedCount int       `json:"matched_count"`
	MissingCount int       `json:"missing_count"`
}

// Report is the complete output of one analysis run.
type Report struct {
	ResumeID     string         `json:"resume_id"`
	ResumeSkills []string       `json:"resume_skills"`
	JDSkills     []string       `json:"jd_skills"`
	Matched      []string       `json:"matched_skills"`
	Missing      []string       `json:"missing_skills"`
	MustHave     []string       `json:"must_have_skills"`
	GoodToHave   []string       `json:"good_to_have_skills"`
	Role         string         `json:"role"`
	Final        FinalScore     `json:"final_score"`
	Explanation  []string       `json:"explanation"`
	Fraud        FraudReport    `json:"fraud"`
	Version      *VersionRecord `json:"version,omitempty"`
}

// Recommendation is an improvement template for one missing skill.
type Recommendation struct {
	LearningPath   []string `json:"learning_path"`
	ProjectIdeas   []string `json:"project_ideas"`
	Certifications []string `json:"certifications"`
	Confidence     string   `json:"confidence"`
}

// NamedDocument is one named free-text document in a recruiter call.
type NamedDocument struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// RankedCandidate is one resume's entry in a ranking.
type RankedCandidate struct {
	Candidate  string                    `json:"candidate"`
	FinalScore int                       `json:"final_score"`
	Breakdown  map[string]DimensionScore `json:"breakdown"`
	Matched    []string                  `json:"matched_skills"`
	Missing    []string                  `json:"missing_skills"`
}

// RankReport ranks many resumes against one job description.
type RankReport struct {
	Role            string            `json:"job_role"`
	TotalCandidates int               `json:"total_candidates"`
	Rankings        []RankedCandidate `json:"rankings"`
	TopCandidates   []RankedCandidate `json:"top_candidates"`
}

// Comparison is one opening's entry when comparing a resume against many.
type Comparison struct {
	Name       string                    `json:"jd_name"`
	Role       string                    `json:"role"`
	FinalScore int                       `json:"final_score"`
	Breakdown  map[string]DimensionScore `json:"breakdown"`
}

// CompareReport ranks openings by fit for one resume, best first.
type CompareReport struct {
	Comparisons []Comparison `json:"comparisons"`
	BestFit     *Comparison  `json:"best_fit,omitempty"`
}
