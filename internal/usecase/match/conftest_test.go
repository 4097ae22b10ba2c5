package match

import (
	"context"

	"github.com/resumatch/resumatch/internal/domain"
)

// mockEmbedder returns fixed vectors per text. Unlisted texts get an
// orthogonal one-hot vector so they match nothing but themselves.
type mockEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (m *mockEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.BatchEmbeddingResult{}, m.err
	}

	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := m.vectors[text]; ok {
			out[i] = v
			continue
		}
		// Deterministic distinct vector from the text itself.
		v := make([]float32, 8)
		for _, r := range text {
			v[int(r)%8]++
		}
		out[i] = v
	}
	return domain.BatchEmbeddingResult{Embeddings: out}, nil
}
