package score

import (
	"regexp"
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// requiredSections are the headings a parseable resume is expected to carry.
var requiredSections = []string{"summary", "experience", "education", "skills", "projects"}

var (
	tablePattern  = regexp.MustCompile(`\|\s*.*\s*\|`)
	columnPattern = regexp.MustCompile(`\s{4,}\w+`)
)

const (
	minWordCount = 300
	// formatFloor keeps format a penalty signal, not a disqualifier.
	formatFloor = 40
)

// Format scores structural parseability. It starts at 100, subtracts fixed
// penalties per detected issue, and never drops below formatFloor.
func Format(resumeText string) (domain.DimensionScore, []string) {
	var issues []string
	value := 100

	if wordCount(resumeText) < minWordCount {
		value -= 20
		issues = append(issues, "document is too short for reliable parsing")
	}
	if tablePattern.MatchString(resumeText) {
		value -= 20
		issues = append(issues, "tabular layout detected")
	}
	if hasImageReference(resumeText) {
		value -= 15
		issues = append(issues, "image references detected")
	}
	if columnPattern.MatchString(resumeText) {
		value -= 15
		issues = append(issues, "multi-column layout detected")
	}
	if missing := missingSections(resumeText); len(missing) > 0 {
		value -= 20
		issues = append(issues, "missing required sections: "+strings.Join(missing, ", "))
	}

	if value < formatFloor {
		value = formatFloor
	}

	status := "structure parseable"
	if value < 75 {
		status = "structure needs attention"
	}
	return domain.DimensionScore{Value: value, Status: status}, issues
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func hasImageReference(text string) bool {
	lowered := strings.ToLower(text)
	return strings.Contains(lowered, "image") || strings.Contains(lowered, "img")
}

// missingSections lists required headings absent from the text. The penalty
// is applied once regardless of how many are missing.
func missingSections(text string) []string {
	lowered := strings.ToLower(text)
	var missing []string
	for _, section := range requiredSections {
		if !strings.Contains(lowered, section) {
			missing = append(missing, section)
		}
	}
	return missing
}
