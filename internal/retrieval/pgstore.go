package retrieval

import (
	"context"

	"linkstash/models"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// PostgresStore keeps chunk vectors in the chunks table and ranks them with
// pgvector's cosine distance operator.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Replace swaps the bookmark's chunk set inside one transaction, serialized
// per bookmark with an advisory lock. Ownership is carried by the bookmark
// row, so userID is not persisted again on the chunk.
func (s *PostgresStore) Replace(ctx context.Context, userID, bookmarkID uuid.UUID, chunks []Chunk) error {
	rows := make([]models.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		rows = append(rows, models.Chunk{
			Content:   chunk.Content,
			Embedding: pgvector.NewVector(chunk.Embedding),
		})
	}

	if err := models.ReplaceBookmarkChunks(s.db.WithContext(ctx), bookmarkID, rows); err != nil {
		return &PersistenceError{Op: "replace", Err: err}
	}

	return nil
}

func (s *PostgresStore) Search(ctx context.Context, userID uuid.UUID, query []float32, minSimilarity float64, limit int) ([]Snippet, error) {
	matches, err := models.SearchChunks(s.db.WithContext(ctx), userID, pgvector.NewVector(query), minSimilarity, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "search", Err: err}
	}

	snippets := make([]Snippet, 0, len(matches))
	for _, match := range matches {
		snippets = append(snippets, Snippet{Content: match.Content, Similarity: match.Similarity})
	}

	return snippets, nil
}

func (s *PostgresStore) Delete(ctx context.Context, bookmarkID uuid.UUID) error {
	if err := models.DeleteBookmarkChunks(s.db.WithContext(ctx), bookmarkID); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}

	return nil
}
