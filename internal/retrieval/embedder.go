package retrieval

import (
	"github.com/tmc/langchaingo/embeddings"
)

// NewEmbedder initializes the OpenAI embedding client configured through the
// OPENAI_* environment variables. Batching is left to the library so one
// ingestion turns into as few provider calls as possible.
func NewEmbedder() (embeddings.Embedder, error) {
	embedder, err := embeddings.NewOpenAI()
	if err != nil {
		return nil, err
	}

	embedder.BatchSize = 512
	embedder.StripNewLines = false

	return &embedder, nil
}
