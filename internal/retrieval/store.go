package retrieval

import (
	"context"
	"math"

	"github.com/google/uuid"
)

// Chunk pairs a piece of text with its embedding vector, ready to persist.
type Chunk struct {
	Content   string
	Embedding []float32
}

// Snippet is a stored chunk ranked against a query vector. Similarity is
// cosine similarity: identical vectors score 1.0, orthogonal ones 0.0.
type Snippet struct {
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// Store persists embedded chunks per bookmark and ranks them against query
// vectors. Writes replace a bookmark's whole chunk set atomically; readers
// never see a half-replaced set.
type Store interface {
	// Replace swaps the bookmark's chunk set for the given one. An empty
	// slice clears it.
	Replace(ctx context.Context, userID, bookmarkID uuid.UUID, chunks []Chunk) error

	// Search returns at most limit snippets owned by the user, each scoring
	// strictly above minSimilarity, ordered by similarity descending.
	// Searching an empty store returns an empty slice.
	Search(ctx context.Context, userID uuid.UUID, query []float32, minSimilarity float64, limit int) ([]Snippet, error)

	// Delete removes all chunks for the bookmark.
	Delete(ctx context.Context, bookmarkID uuid.UUID) error
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
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

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
