// Package chi is the HTTP transport: request decoding, routing, and the
// domain-error-to-status mapping. Handlers stay thin; every decision about
// scores lives in the usecase layer.
package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/skills"
	analyzeuc "github.com/resumatch/resumatch/internal/usecase/analyze"
	feedbackuc "github.com/resumatch/resumatch/internal/usecase/feedback"
	healthuc "github.com/resumatch/resumatch/internal/usecase/health"
	rankuc "github.com/resumatch/resumatch/internal/usecase/rank"
	recommenduc "github.com/resumatch/resumatch/internal/usecase/recommend"
)

// HistoryReader reads the append-only score ledger for the versions endpoint.
type HistoryReader interface {
	History(ctx context.Context, documentID string) ([]domain.VersionRecord, error)
}

// Server holds the wired services behind the HTTP API.
type Server struct {
	analyze       *analyzeuc.Service
	rank          *rankuc.Engine
	recommend     *recommenduc.Engine
	feedback      *feedbackuc.Service
	health        *healthuc.Service
	history       HistoryReader
	registry      *skills.Registry
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	analyze *analyzeuc.Service,
	rank *rankuc.Engine,
	recommend *recommenduc.Engine,
	feedback *feedbackuc.Service,
	health *healthuc.Service,
	history HistoryReader,
	registry *skills.Registry,
	logger *zap.Logger,
) *Server {
	s := &Server{
		analyze:   analyze,
		rank:      rank,
		recommend: recommend,
		feedback:  feedback,
		health:    health,
		history:   history,
		registry:  registry,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProvider),
	}
	return s
}

// Routes mounts every endpoint on the router.
func (s *Server) Routes(r chirouter.Router) {
	r.Post("/v1/analyze", s.Analyze)
	r.Get("/v1/resumes/{id}/versions", s.Versions)
	r.Post("/v1/recommendations", s.Recommendations)
	r.Post("/v1/recruiter/rank", s.RankResumes)
	r.Post("/v1/recruiter/compare", s.CompareJDs)
	r.Post("/v1/feedback", s.Feedback)
	r.Post("/v1/rewrite", s.Rewrite)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Analyze handles POST /v1/analyze.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "resume_text is required")
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "jd_text is required")
		return
	}

	report, err := s.analyze.Analyze(r.Context(), analyzeuc.Request{
		ResumeID:   req.ResumeID,
		ResumeText: req.ResumeText,
		JDText:     req.JDText,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Versions handles GET /v1/resumes/{id}/versions.
func (s *Server) Versions(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	records, err := s.history.History(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, VersionsResponse{
		ResumeID: id,
		Versions: records,
	})
}

// Recommendations handles POST /v1/recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.MissingSkills) == 0 {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "missing_skills is required")
		return
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{
		Recommendations: s.recommend.ForMissing(req.MissingSkills),
	})
}

// RankResumes handles POST /v1/recruiter/rank.
func (s *Server) RankResumes(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "jd_text is required")
		return
	}
	report, err := s.rank.RankResumes(namedTexts(req.Resumes), req.JDText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// CompareJDs handles POST /v1/recruiter/compare.
func (s *Server) CompareJDs(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "resume_text is required")
		return
	}
	report, err := s.rank.CompareJDs(req.ResumeText, namedTexts(req.JDs))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Feedback handles POST /v1/feedback.
func (s *Server) Feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "resume_text is required")
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "jd_text is required")
		return
	}

	requirement := s.registry.Extract(req.JDText)
	sections := s.feedback.Sections(r.Context(), req.ResumeText, req.JDText, requirement)

	unknown := s.unlistedSkills(req.ResumeText)
	categories := s.feedback.ClassifyUnknown(r.Context(), unknown)

	writeJSON(w, http.StatusOK, FeedbackResponse{
		Sections:      sections,
		UnknownSkills: categories,
	})
}

// Rewrite handles POST /v1/rewrite.
func (s *Server) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "resume_text is required")
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "jd_text is required")
		return
	}

	draft := s.feedback.Rewrite(r.Context(), req.ResumeText, req.JDText)
	writeJSON(w, http.StatusOK, RewriteResponse{Draft: draft})
}

// unlistedSkills pulls individually listed skills out of the resume's skills
// section and keeps the ones the vocabulary does not cover.
func (s *Server) unlistedSkills(resumeText string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range feedbackuc.ListedSkills(resumeText) {
		token := string(s.registry.Normalize(entry))
		if s.registry.Known(token) {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func namedTexts(docs []NamedDocument) []rankuc.NamedText {
	out := make([]rankuc.NamedText, len(docs))
	for i, d := range docs {
		out[i] = rankuc.NamedText{Name: d.Name, Text: d.Text}
	}
	return out
}
