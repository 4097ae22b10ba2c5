package domain

import "sort"

// Token is a canonical lowercase skill identifier. Raw aliases never appear
// in a result set; extraction normalizes before insertion.
type Token string

// TokenSet is an unordered collection of unique tokens extracted from one
// document.
type TokenSet map[Token]struct{}

// NewTokenSet builds a set from the given tokens.
func NewTokenSet(tokens ...Token) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a token into the set.
func (s TokenSet) Add(t Token) { s[t] = struct{}{} }

// Has reports whether the token is in the set.
func (s TokenSet) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tokens.
func (s TokenSet) Len() int { return len(s) }

// Sorted returns the tokens in lexicographic order for reproducible output.
func (s TokenSet) Sorted() []Token {
	out := make([]Token, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted tokens as plain strings.
func (s TokenSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = string(t)
	}
	return out
}

// Intersect returns tokens present in both sets.
func (s TokenSet) Intersect(other TokenSet) TokenSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(TokenSet)
	for t := range small {
		if large.Has(t) {
			out.Add(t)
		}
	}
	return out
}

// Diff returns tokens present in s but not in other.
func (s TokenSet) Diff(other TokenSet) TokenSet {
	out := make(TokenSet)
	for t := range s {
		if !other.Has(t) {
			out.Add(t)
		}
	}
	return out
}

// Union returns tokens present in either set.
func (s TokenSet) Union(other TokenSet) TokenSet {
	out := make(TokenSet, len(s)+len(other))
	for t := range s {
		out.Add(t)
	}
	for t := range other {
		out.Add(t)
	}
	return out
}
