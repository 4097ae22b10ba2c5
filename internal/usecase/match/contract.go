package match

import (
	"context"

	"github.com/resumatch/resumatch/internal/domain"
)

// Embedder vectorizes token batches for the semantic matcher.
type Embedder interface {
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}
