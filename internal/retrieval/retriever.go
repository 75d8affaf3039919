package retrieval

import (
	"context"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/embeddings"
)

// Retriever runs the read path: embed the question, rank the user's stored
// chunks against it, and return the snippets worth grounding an answer on.
type Retriever struct {
	embedder      embeddings.Embedder
	store         Store
	minSimilarity float64
	topK          int
}

func NewRetriever(cfg Config, embedder embeddings.Embedder, store Store) (*Retriever, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Retriever{
		embedder:      embedder,
		store:         store,
		minSimilarity: cfg.MinSimilarity,
		topK:          cfg.TopK,
	}, nil
}

// Retrieve returns up to TopK snippets from the user's bookmarks ranked by
// similarity to the question. No match above the threshold yields an empty
// slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, userID uuid.UUID, question string) ([]Snippet, error) {
	vector, err := r.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, &EmbeddingProviderError{Err: err}
	}

	return r.store.Search(ctx, userID, toFloat32(vector), r.minSimilarity, r.topK)
}
