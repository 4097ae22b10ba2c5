// Package feedback grades individual resume sections against the requirement
// tokens. The deterministic analyzer always works; a generative collaborator
// can enrich the verdicts and falls back to the deterministic path on any
// failure.
package feedback

import (
	"regexp"
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// sectionNames in report order.
var sectionNames = []string{"summary", "experience", "projects", "skills", "education"}

// Each section runs from its heading to the next known heading or the end of
// the text.
var sectionPatterns = map[string]*regexp.Regexp{
	"summary":    regexp.MustCompile(`(?s)(summary|profile|about me)(.*?)(experience|projects|skills|education|$)`),
	"experience": regexp.MustCompile(`(?s)(experience|work experience)(.*?)(projects|skills|education|$)`),
	"projects":   regexp.MustCompile(`(?s)(projects|personal projects|academic projects)(.*?)(skills|education|$)`),
	"skills":     regexp.MustCompile(`(?s)(skills|technical skills)(.*?)(experience|projects|education|$)`),
	"education":  regexp.MustCompile(`(?s)(education|academic)(.*?)(experience|projects|skills|$)`),
}

// strongHitThreshold is the requirement-token hit count at which a section
// counts as strong.
const strongHitThreshold = 3

// ExtractSections slices the resume into its named sections. A section whose
// heading is absent maps to "".
func ExtractSections(resumeText string) map[string]string {
	text := strings.ToLower(resumeText)
	sections := make(map[string]string, len(sectionNames))

	for name, pattern := range sectionPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			sections[name] = ""
			continue
		}
		sections[name] = strings.TrimSpace(m[2])
	}
	return sections
}

// listSeparators splits a skills section into individual entries.
var listSeparators = regexp.MustCompile(`[,;\n\x{2022}|]+`)

// ListedSkills splits the skills section of a resume into individual entries,
// trimmed and lowercased. Entries longer than a few words are discarded as
// prose rather than list items.
func ListedSkills(resumeText string) []string {
	section := ExtractSections(resumeText)["skills"]
	if section == "" {
		return nil
	}

	var out []string
	for _, part := range listSeparators.Split(section, -1) {
		entry := strings.TrimSpace(strings.Trim(part, ":-"))
		if entry == "" || len(strings.Fields(entry)) > 3 {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Strength grades one section by how many requirement tokens appear in it.
func Strength(sectionText string, requirement domain.TokenSet) domain.SectionStrength {
	if sectionText == "" {
		return domain.SectionMissing
	}

	hits := 0
	for token := range requirement {
		if strings.Contains(sectionText, string(token)) {
			hits++
		}
	}

	switch {
	case hits == 0:
		return domain.SectionWeak
	case hits < strongHitThreshold:
		return domain.SectionAverage
	default:
		return domain.SectionStrong
	}
}

// Deterministic produces the rule-based feedback report.
func Deterministic(resumeText string, requirement domain.TokenSet) domain.FeedbackReport {
	sections := ExtractSections(resumeText)

	report := make(domain.FeedbackReport, len(sectionNames))
	for _, name := range sectionNames {
		strength := Strength(sections[name], requirement)
		report[name] = domain.SectionFeedback{
			Status:  strength,
			Comment: sectionComment(name, strength),
		}
	}
	return report
}

func sectionComment(section string, strength domain.SectionStrength) string {
	title := strings.ToUpper(section[:1]) + section[1:]
	switch strength {
	case domain.SectionMissing:
		return title + " section is missing."
	case domain.SectionWeak:
		return title + " section exists but lacks requirement relevance."
	case domain.SectionAverage:
		return title + " section partially matches the requirement."
	default:
		return title + " section is well aligned with the requirement."
	}
}
