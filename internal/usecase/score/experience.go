package score

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/resumatch/resumatch/internal/domain"
)

// internshipWeight halves credited time for internship-labeled spans.
const internshipWeight = 0.5

var monthNames = []string{
	"january", "february", "march", "april", "august", "september", "october",
	"november", "december", "sept", "jan", "feb", "mar", "apr", "may", "jun",
	"june", "jul", "july", "aug", "sep", "oct", "nov", "dec",
}

var (
	experienceHeadings = []string{"internships", "work experience", "experience"}

	// Mon YYYY - Mon YYYY | present. Year difference only; sub-year spans
	// are not credited.
	dateRangePattern = regexp.MustCompile(
		`(?:` + strings.Join(monthNames, "|") + `)\s+(20\d{2})\s*(?:-|–|—|to)\s*(present|(?:` +
			strings.Join(monthNames, "|") + `)\s+(20\d{2}))`,
	)

	requiredYearsPattern = regexp.MustCompile(`(\d+)\+?\s+years`)
)

// ExperienceDetail carries the extracted duration figures for the fraud
// heuristic and the explanation trace.
type ExperienceDetail struct {
	SubjectYears  float64 `json:"subject_years"`
	RequiredYears float64 `json:"required_years"`
}

// ExperienceScorer scores work-history duration against the requirement.
// currentYear anchors open-ended "present" ranges so tests stay
// deterministic.
type ExperienceScorer struct {
	currentYear int
}

// NewExperienceScorer creates a scorer anchored at the current wall-clock
// year.
func NewExperienceScorer() *ExperienceScorer {
	return &ExperienceScorer{currentYear: time.Now().Year()}
}

// NewExperienceScorerAt creates a scorer anchored at a fixed year.
func NewExperienceScorerAt(year int) *ExperienceScorer {
	return &ExperienceScorer{currentYear: year}
}

// Score computes the experience-duration fit between the resume and the
// requirement text. No required years means no experience gate (100).
func (s *ExperienceScorer) Score(resumeText, requirementText string) (domain.DimensionScore, ExperienceDetail) {
	detail := ExperienceDetail{
		SubjectYears:  s.SubjectYears(resumeText),
		RequiredYears: RequiredYears(requirementText),
	}

	switch {
	case detail.RequiredYears == 0:
		return domain.DimensionScore{Value: 100, Status: "no experience requirement"}, detail
	case detail.SubjectYears >= detail.RequiredYears:
		return domain.DimensionScore{Value: 100, Status: "meets experience requirement"}, detail
	default:
		value := int(math.Round(detail.SubjectYears / detail.RequiredYears * 100))
		return domain.DimensionScore{Value: value, Status: "below experience requirement"}, detail
	}
}

// SubjectYears sums span-years over date ranges in the resume's experience
// section. Internship-labeled spans count at half weight.
func (s *ExperienceScorer) SubjectYears(resumeText string) float64 {
	section, heading := experienceSection(resumeText)
	if section == "" {
		return 0
	}
	sectionIsInternships := heading == "internships"

	total := 0.0
	for _, m := range dateRangePattern.FindAllStringSubmatchIndex(section, -1) {
		startYear, _ := strconv.Atoi(section[m[2]:m[3]])

		endYear := s.currentYear
		endPart := section[m[4]:m[5]]
		if endPart != "present" {
			endYear, _ = strconv.Atoi(section[m[6]:m[7]])
		}

		span := float64(endYear - startYear)
		if span < 0 {
			span = 0
		}
		if sectionIsInternships || lineContainsIntern(section, m[0]) {
			span *= internshipWeight
		}
		total += span
	}

	return total
}

// RequiredYears extracts the experience requirement from the text as the
// numeric maximum over every "<N>+ years" occurrence.
func RequiredYears(requirementText string) float64 {
	maxYears := 0
	for _, m := range requiredYearsPattern.FindAllStringSubmatch(strings.ToLower(requirementText), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
			maxYears = n
		}
	}
	return float64(maxYears)
}

// experienceSection returns the text from the first experience-family
// heading to the end of the text, plus the heading that matched.
func experienceSection(resumeText string) (string, string) {
	text := strings.ToLower(resumeText)
	for _, heading := range experienceHeadings {
		if idx := strings.Index(text, heading); idx >= 0 {
			return text[idx+len(heading):], heading
		}
	}
	return "", ""
}

// lineContainsIntern reports whether the line holding the range start
// mentions an internship.
func lineContainsIntern(section string, offset int) bool {
	lineStart := strings.LastIndexByte(section[:offset], '\n') + 1
	lineEnd := strings.IndexByte(section[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(section)
	} else {
		lineEnd += offset
	}
	return strings.Contains(section[lineStart:lineEnd], "intern")
}
