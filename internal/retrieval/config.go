package retrieval

import (
	"fmt"
	"time"

	"linkstash/models"
)

// embeddingInputLimit is a conservative character cap that keeps any chunk
// comfortably inside the embedding model's context window.
const embeddingInputLimit = 8000

// Config holds the retrieval pipeline knobs. Zero values are invalid; start
// from DefaultConfig and override.
type Config struct {
	// ChunkSize bounds chunk length in characters.
	ChunkSize int
	// ChunkOverlap is the shared tail between windows when a chunk has to be
	// cut mid-sentence.
	ChunkOverlap int
	// Dimension is the embedding model's output dimensionality.
	Dimension int
	// MinSimilarity is the score a chunk must exceed to be retrieved.
	MinSimilarity float64
	// TopK caps how many snippets a query returns.
	TopK int
	// FetchTimeout bounds the page fetch on the write path.
	FetchTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ChunkSize:     1000,
		ChunkOverlap:  100,
		Dimension:     models.EmbeddingDimension,
		MinSimilarity: 0.5,
		TopK:          4,
		FetchTimeout:  30 * time.Second,
	}
}

func (c Config) validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("ChunkSize must be greater than 0")
	}

	if c.ChunkSize > embeddingInputLimit {
		return fmt.Errorf("ChunkSize %v exceeds the embedding input limit of %v characters", c.ChunkSize, embeddingInputLimit)
	}

	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("ChunkOverlap must be smaller than ChunkSize")
	}

	if c.Dimension <= 0 {
		return fmt.Errorf("Dimension must be greater than 0")
	}

	if c.MinSimilarity < -1 || c.MinSimilarity >= 1 {
		return fmt.Errorf("MinSimilarity must be in [-1, 1)")
	}

	if c.TopK <= 0 {
		return fmt.Errorf("TopK must be greater than 0")
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FetchTimeout must be greater than 0")
	}

	return nil
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
