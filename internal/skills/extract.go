package skills

import (
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// Extract scans free text for vocabulary entries and alias keys using
// word-boundary literal matches and returns the normalized, deduplicated
// union. Empty text yields an empty set, not an error.
func (r *Registry) Extract(text string) domain.TokenSet {
	found := make(domain.TokenSet)
	if strings.TrimSpace(text) == "" {
		return found
	}
	lowered := strings.ToLower(text)

	for _, entry := range r.vocabulary {
		if r.vocabPatterns[entry].MatchString(lowered) {
			found.Add(r.Normalize(entry))
		}
	}

	for alias, canonical := range r.aliases {
		if r.aliasPatterns[alias].MatchString(lowered) {
			found.Add(r.Normalize(canonical))
		}
	}

	return found
}

// Unknown returns extracted tokens absent from the registry, candidates for
// generative classification.
func (r *Registry) Unknown(extracted domain.TokenSet) []string {
	var out []string
	for _, t := range extracted.Sorted() {
		if !r.Known(string(t)) {
			out = append(out, string(t))
		}
	}
	return out
}
