package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// stripFences removes markdown code fences the model wraps JSON in.
func stripFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// rawSection tolerates the shape variations the model produces for one
// section verdict.
type rawSection struct {
	Status      string   `json:"status"`
	Comment     string   `json:"comment"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// parseFeedbackReport decodes a section feedback response. A response that
// does not decode into the expected structure yields
// domain.ErrUnparseableResponse, never a partial report.
func parseFeedbackReport(raw string) (domain.FeedbackReport, error) {
	var decoded map[string]rawSection
	if err := json.Unmarshal([]byte(stripFences(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: empty feedback object", domain.ErrUnparseableResponse)
	}

	report := make(domain.FeedbackReport, len(decoded))
	for section, rs := range decoded {
		status, ok := sectionStatus(rs.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown section status %q", domain.ErrUnparseableResponse, rs.Status)
		}
		report[strings.ToLower(section)] = domain.SectionFeedback{
			Status:  status,
			Comment: sectionCommentFrom(rs),
		}
	}
	return report, nil
}

func sectionStatus(s string) (domain.SectionStrength, bool) {
	switch domain.SectionStrength(strings.ToLower(strings.TrimSpace(s))) {
	case domain.SectionMissing:
		return domain.SectionMissing, true
	case domain.SectionWeak:
		return domain.SectionWeak, true
	case domain.SectionAverage:
		return domain.SectionAverage, true
	case domain.SectionStrong:
		return domain.SectionStrong, true
	}
	return "", false
}

// sectionCommentFrom prefers the comment field and falls back to joining
// issues and suggestions.
func sectionCommentFrom(rs rawSection) string {
	if c := strings.TrimSpace(rs.Comment); c != "" {
		return c
	}
	parts := append(append([]string{}, rs.Issues...), rs.Suggestions...)
	return strings.Join(parts, " ")
}

// parseSkillCategories decodes a skill classification response into a flat
// skill-to-category map.
func parseSkillCategories(raw string) (map[string]string, error) {
	var decoded map[string]string
	if err := json.Unmarshal([]byte(stripFences(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: empty classification object", domain.ErrUnparseableResponse)
	}
	return decoded, nil
}

// parseRewriteDraft decodes a resume rewrite response. A draft with no
// content at all counts as unparseable.
func parseRewriteDraft(raw string) (domain.RewriteDraft, error) {
	var draft domain.RewriteDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &draft); err != nil {
		return domain.RewriteDraft{}, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}
	if strings.TrimSpace(draft.Summary) == "" && len(draft.Experience) == 0 && len(draft.Projects) == 0 {
		return domain.RewriteDraft{}, fmt.Errorf("%w: empty rewrite draft", domain.ErrUnparseableResponse)
	}
	return draft, nil
}
