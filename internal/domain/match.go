package domain

// MatchResult partitions a requirement token set into matched and missing
// subsets. Matched and missing are disjoint and their union is the
// requirement set.
type MatchResult struct {
	Matched TokenSet
	Missing TokenSet
}

// Tiers is the priority classification of a requirement token set. Every
// requirement token belongs to exactly one tier; ambiguous tokens default to
// optional.
type Tiers struct {
	Mandatory TokenSet
	Optional  TokenSet
}

// TierOf returns "mandatory" or "optional" for the given token.
func (t Tiers) TierOf(token Token) string {
	if t.Mandatory.Has(token) {
		return "mandatory"
	}
	return "optional"
}
