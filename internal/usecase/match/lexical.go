// Package match reconciles a subject token set against a requirement token
// set by exact and embedding-similarity matching.
package match

import "github.com/resumatch/resumatch/internal/domain"

// Lexical computes the exact-set match: matched = subject ∩ requirement,
// missing = requirement − subject. Pure.
func Lexical(subject, requirement domain.TokenSet) domain.MatchResult {
	return domain.MatchResult{
		Matched: requirement.Intersect(subject),
		Missing: requirement.Diff(subject),
	}
}
