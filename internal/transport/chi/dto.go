package chi

import (
	"github.com/resumatch/resumatch/internal/domain"
)

// AnalyzeRequest is the body of POST /v1/analyze. ResumeID is optional; a
// missing one is generated server-side.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
	ResumeID   string `json:"resume_id,omitempty"`
}

// NamedDocument is one named free-text document in a recruiter request.
type NamedDocument struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// RankRequest is the body of POST /v1/recruiter/rank.
type RankRequest struct {
	JDText  string          `json:"jd_text"`
	Resumes []NamedDocument `json:"resumes"`
}

// CompareRequest is the body of POST /v1/recruiter/compare.
type CompareRequest struct {
	ResumeText string          `json:"resume_text"`
	JDs        []NamedDocument `json:"jds"`
}

// RecommendationsRequest is the body of POST /v1/recommendations.
type RecommendationsRequest struct {
	MissingSkills []string `json:"missing_skills"`
}

// RecommendationsResponse maps each requested skill to its template.
type RecommendationsResponse struct {
	Recommendations map[string]domain.Recommendation `json:"recommendations"`
}

// FeedbackRequest is the body of POST /v1/feedback.
type FeedbackRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

// FeedbackResponse carries both feedback outcomes. Each outcome reports
// whether the generative path produced it or a deterministic fallback did.
type FeedbackResponse struct {
	Sections      domain.Outcome[domain.FeedbackReport] `json:"section_feedback"`
	UnknownSkills domain.Outcome[map[string]string]     `json:"unknown_skills"`
}

// RewriteRequest is the body of POST /v1/rewrite.
type RewriteRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

// RewriteResponse carries the JD-targeted rewrite outcome. Without a
// generative collaborator the draft is empty and the reason says why.
type RewriteResponse struct {
	Draft domain.Outcome[domain.RewriteDraft] `json:"rewrite"`
}

// VersionsResponse is the score history of one resume identity, oldest first.
type VersionsResponse struct {
	ResumeID string                 `json:"resume_id"`
	Versions []domain.VersionRecord `json:"versions"`
}

// HealthResponse reports overall service status plus per-component checks.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
