package score

import (
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

var projectHeadings = []string{"personal projects", "academic projects", "projects"}

const (
	pointsPerProjectSkill = 20
	// offTargetProjectScore signals "projects exist but off-target".
	offTargetProjectScore = 20
)

// Project scores project relevance: resume skills literally present in the
// projects section, intersected with the requirement set, 20 points each up
// to 100. An absent section scores 0; a present section with zero overlap
// scores a flat 20. resumeSkills must be the tokens extracted from this
// resume, not the whole vocabulary: substring membership against unextracted
// short tokens would match inside ordinary words.
func Project(resumeText string, requirement, resumeSkills domain.TokenSet) (domain.DimensionScore, []string) {
	section := projectSection(resumeText)
	if section == "" {
		return domain.DimensionScore{Value: 0, Status: "no projects section found"}, nil
	}

	inProjects := make(domain.TokenSet)
	for token := range resumeSkills {
		if strings.Contains(section, string(token)) {
			inProjects.Add(token)
		}
	}

	overlap := inProjects.Intersect(requirement)
	if overlap.Len() == 0 {
		return domain.DimensionScore{Value: offTargetProjectScore, Status: "projects not relevant to requirement"}, nil
	}

	value := overlap.Len() * pointsPerProjectSkill
	if value > 100 {
		value = 100
	}
	return domain.DimensionScore{Value: value, Status: "projects relevant to requirement"}, overlap.Strings()
}

// projectSection returns the text from the first projects-family heading to
// the end of the text.
func projectSection(resumeText string) string {
	text := strings.ToLower(resumeText)
	for _, heading := range projectHeadings {
		if idx := strings.Index(text, heading); idx >= 0 {
			return text[idx+len(heading):]
		}
	}
	return ""
}
