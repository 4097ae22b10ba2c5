package match

import (
	"context"
	"fmt"
	"math"

	"github.com/resumatch/resumatch/internal/domain"
)

// DefaultThreshold is the cosine similarity at which a requirement token is
// considered covered by a subject token.
const DefaultThreshold = 0.80

// SemanticMatcher matches token sets by embedding similarity. A requirement
// token is matched when any subject token reaches the threshold; this is a
// membership test, not a ranking, so the first hit under iteration order is
// sufficient.
type SemanticMatcher struct {
	embedder  Embedder
	threshold float64
}

// NewSemanticMatcher creates a matcher with the given similarity threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewSemanticMatcher(embedder Embedder, threshold float64) *SemanticMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &SemanticMatcher{embedder: embedder, threshold: threshold}
}

// Match embeds both token sets in one batched call per side and declares a
// requirement token matched when any subject token reaches the threshold.
// The embedding call is the only I/O in the pipeline; callers bound it with
// a context deadline and degrade to lexical-only on error.
func (m *SemanticMatcher) Match(ctx context.Context, subject, requirement domain.TokenSet) (domain.MatchResult, error) {
	result := domain.MatchResult{
		Matched: make(domain.TokenSet),
		Missing: make(domain.TokenSet),
	}

	subjectTokens := subject.Sorted()
	requirementTokens := requirement.Sorted()
	if len(subjectTokens) == 0 || len(requirementTokens) == 0 {
		for _, t := range requirementTokens {
			result.Missing.Add(t)
		}
		return result, nil
	}

	subjectVecs, err := m.embedTokens(ctx, subjectTokens)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("embed subject tokens: %w", err)
	}
	requirementVecs, err := m.embedTokens(ctx, requirementTokens)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("embed requirement tokens: %w", err)
	}

	// O(|subject|×|requirement|) comparisons; token sets are tens of items.
	for i, reqToken := range requirementTokens {
		matched := false
		for j := range subjectTokens {
			if cosineSimilarity(requirementVecs[i], subjectVecs[j]) >= m.threshold {
				matched = true
				break
			}
		}
		if matched {
			result.Matched.Add(reqToken)
		} else {
			result.Missing.Add(reqToken)
		}
	}

	return result, nil
}

func (m *SemanticMatcher) embedTokens(ctx context.Context, tokens []domain.Token) ([][]float32, error) {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = string(t)
	}

	res, err := m.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d: %w",
			len(res.Embeddings), len(texts), domain.ErrEmbeddingProviderError)
	}
	return res.Embeddings, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-norm vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
