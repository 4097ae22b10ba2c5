package domain

// Report is the complete output of one analyze run. It is always well-shaped:
// degenerate inputs produce zero scores plus explanatory notes, never an
// error.
type Report struct {
	ResumeID string `json:"resume_id"`

	ResumeSkills []string `json:"resume_skills"`
	JDSkills     []string `json:"jd_skills"`

	Matched []string `json:"matched_skills"`
	Missing []string `json:"missing_skills"`

	MustHave   []string `json:"must_have_skills"`
	GoodToHave []string `json:"good_to_have_skills"`

	Role string `json:"role"`

	Final       FinalScore  `json:"final_score"`
	Explanation []string    `json:"explanation"`
	Fraud       FraudReport `json:"fraud"`

	Version *VersionRecord `json:"version,omitempty"`
}

// SectionStrength grades one resume section against the requirement tokens.
type SectionStrength string

// Section strength grades.
const (
	SectionMissing SectionStrength = "missing"
	SectionWeak    SectionStrength = "weak"
	SectionAverage SectionStrength = "average"
	SectionStrong  SectionStrength = "strong"
)

// SectionFeedback is the verdict for one resume section.
type SectionFeedback struct {
	Status  SectionStrength `json:"status"`
	Comment string          `json:"comment"`
}

// FeedbackReport maps section name to its feedback.
type FeedbackReport map[string]SectionFeedback

// RewriteDraft is a rewrite of the resume's narrative sections targeted at
// one job description. Experience and Projects are rewritten bullet lines.
type RewriteDraft struct {
	Summary    string   `json:"summary"`
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
}

// Recommendation is the improvement template for one missing skill.
type Recommendation struct {
	LearningPath   []string `json:"learning_path" yaml:"learning_path"`
	ProjectIdeas   []string `json:"project_ideas" yaml:"project_ideas"`
	Certifications []string `json:"certifications" yaml:"certifications"`
	Confidence     string   `json:"confidence" yaml:"confidence"`
}
