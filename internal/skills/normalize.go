package skills

import (
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// Normalize canonicalizes a raw skill string. A known alias maps to its
// canonical form; anything else passes through lowercased and trimmed.
// Pure and total.
func (r *Registry) Normalize(raw string) domain.Token {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := r.aliases[cleaned]; ok {
		return domain.Token(canonical)
	}
	return domain.Token(cleaned)
}
