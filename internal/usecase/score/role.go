package score

import (
	"math"

	"github.com/resumatch/resumatch/internal/domain"
)

// neutralRoleScore applies when the detected role has no skill list.
const neutralRoleScore = 50

// RoleProfile binds a role name to the token set that characterizes it.
type RoleProfile struct {
	Name   string
	Skills domain.TokenSet
}

// RoleTable is an ordered role taxonomy. Order matters: detection ties
// resolve to the first-listed role.
type RoleTable []RoleProfile

// DefaultRoleTable returns the built-in role taxonomy.
func DefaultRoleTable() RoleTable {
	return RoleTable{
		{Name: "Backend Developer", Skills: domain.NewTokenSet(
			"python", "java", "c", "c++", "go", "node", "django", "fastapi",
			"spring", "mysql", "postgresql", "sql", "redis", "docker", "aws",
		)},
		{Name: "Frontend Developer", Skills: domain.NewTokenSet(
			"html", "css", "javascript", "react", "angular", "vue",
			"bootstrap", "tailwind",
		)},
		{Name: "Full Stack Developer", Skills: domain.NewTokenSet(
			"html", "css", "javascript", "react", "node", "django",
			"fastapi", "mysql", "postgresql", "mongodb", "aws",
		)},
		{Name: "Data Analyst", Skills: domain.NewTokenSet(
			"python", "sql", "excel", "powerbi", "tableau", "pandas", "numpy",
		)},
		{Name: "ML Engineer", Skills: domain.NewTokenSet(
			"python", "machine learning", "deep learning", "tensorflow",
			"pytorch", "scikit-learn", "nlp",
		)},
		{Name: "QA Engineer", Skills: domain.NewTokenSet(
			"selenium", "cypress", "playwright", "junit", "postman", "katalon",
		)},
	}
}

// Detect picks the role whose skill set overlaps the requirement tokens
// most; ties resolve to the first-listed role.
func (t RoleTable) Detect(requirement domain.TokenSet) string {
	best := ""
	bestOverlap := -1
	for _, profile := range t {
		overlap := profile.Skills.Intersect(requirement).Len()
		if overlap > bestOverlap {
			best = profile.Name
			bestOverlap = overlap
		}
	}
	return best
}

// Score rates the subject tokens as the overlap fraction with the detected
// role's skill set, scaled to 0-100. An unknown or empty role entry yields a
// neutral score.
func (t RoleTable) Score(subject domain.TokenSet, role string) (domain.DimensionScore, []string) {
	var roleSkills domain.TokenSet
	for _, profile := range t {
		if profile.Name == role {
			roleSkills = profile.Skills
			break
		}
	}
	if roleSkills.Len() == 0 {
		return domain.DimensionScore{Value: neutralRoleScore, Status: "unknown role taxonomy"}, nil
	}

	matched := subject.Intersect(roleSkills)
	value := int(math.Floor(float64(matched.Len()) / float64(roleSkills.Len()) * 100))
	return domain.DimensionScore{Value: value, Status: "role relevance calculated"}, matched.Strings()
}
