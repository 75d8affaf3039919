package models

import (
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// EmbeddingDimension is fixed by the embedding model. Vectors of any other
// length are rejected before they reach the table.
const EmbeddingDimension = 1536

// Chunk is a bounded piece of text derived from a bookmark's page content or
// metadata, stored with its embedding vector. Chunks are never updated in
// place; re-ingestion replaces a bookmark's whole chunk set.
type Chunk struct {
	Generic

	BookmarkID uuid.UUID `gorm:"type:uuid;index;not null" json:"bookmark_id"`
	Bookmark   Bookmark  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Content   string          `gorm:"not null" json:"content"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
}

// ChunkMatch is a chunk ranked against a query vector.
type ChunkMatch struct {
	ID         uuid.UUID `json:"id"`
	BookmarkID uuid.UUID `json:"bookmark_id"`
	Content    string    `json:"content"`
	Similarity float64   `json:"similarity"`
}

// ReplaceBookmarkChunks deletes any existing chunks for the bookmark and
// inserts the new set in a single transaction. A transaction-scoped advisory
// lock keyed on the bookmark ID serializes concurrent ingestions of the same
// bookmark, so duplicate submissions cannot double the chunk set.
func ReplaceBookmarkChunks(db *gorm.DB, bookmarkID uuid.UUID, chunks []Chunk) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SELECT pg_advisory_xact_lock(?)`, advisoryLockKey(bookmarkID)).Error; err != nil {
			return err
		}

		if err := tx.Where("bookmark_id = ?", bookmarkID).Delete(&Chunk{}).Error; err != nil {
			return err
		}

		if len(chunks) == 0 {
			return nil
		}

		for i := range chunks {
			chunks[i].BookmarkID = bookmarkID
		}

		return tx.CreateInBatches(chunks, 100).Error
	})
}

// SearchChunks ranks the user's chunks against the query vector by cosine
// similarity. Only rows scoring strictly above minSimilarity are returned,
// ordered by similarity descending with chunk ID as the tie-break.
func SearchChunks(db *gorm.DB, userID uuid.UUID, query pgvector.Vector, minSimilarity float64, limit int) ([]ChunkMatch, error) {
	var matches []ChunkMatch

	err := db.Raw(`
		SELECT chunks.id, chunks.bookmark_id, chunks.content,
		       1 - (chunks.embedding <=> ?) AS similarity
		FROM chunks
		JOIN bookmarks ON bookmarks.id = chunks.bookmark_id
		WHERE bookmarks.user_id = ?
		  AND 1 - (chunks.embedding <=> ?) > ?
		ORDER BY similarity DESC, chunks.id
		LIMIT ?`,
		query, userID, query, minSimilarity, limit,
	).Scan(&matches).Error
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func DeleteBookmarkChunks(db *gorm.DB, bookmarkID uuid.UUID) error {
	return db.Where("bookmark_id = ?", bookmarkID).Delete(&Chunk{}).Error
}

// advisoryLockKey folds the bookmark UUID into the signed 64-bit key space
// pg_advisory_xact_lock expects.
func advisoryLockKey(id uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(id[:])
	return int64(h.Sum64())
}
