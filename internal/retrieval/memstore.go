package retrieval

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memChunk struct {
	seq        uint64
	userID     uuid.UUID
	bookmarkID uuid.UUID
	content    string
	embedding  []float32
}

// MemoryStore is an in-memory Store with a linear cosine scan. It has the same
// ranking semantics as the Postgres store and suits tests and small embedded
// deployments where pgvector is overkill.
type MemoryStore struct {
	mu     sync.RWMutex
	chunks []memChunk
	seq    uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Replace(ctx context.Context, userID, bookmarkID uuid.UUID, chunks []Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.chunks[:0]
	for _, c := range s.chunks {
		if c.bookmarkID != bookmarkID {
			kept = append(kept, c)
		}
	}
	s.chunks = kept

	for _, c := range chunks {
		s.seq++
		s.chunks = append(s.chunks, memChunk{
			seq:        s.seq,
			userID:     userID,
			bookmarkID: bookmarkID,
			content:    c.Content,
			embedding:  c.Embedding,
		})
	}

	return nil
}

func (s *MemoryStore) Search(ctx context.Context, userID uuid.UUID, query []float32, minSimilarity float64, limit int) ([]Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		seq        uint64
		content    string
		similarity float64
	}

	hits := make([]scored, 0)
	for _, c := range s.chunks {
		if c.userID != userID {
			continue
		}

		similarity := cosineSimilarity(query, c.embedding)
		if similarity > minSimilarity {
			hits = append(hits, scored{seq: c.seq, content: c.content, similarity: similarity})
		}
	}

	// Insertion order breaks ties so repeated searches rank identically.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].similarity != hits[j].similarity {
			return hits[i].similarity > hits[j].similarity
		}
		return hits[i].seq < hits[j].seq
	})

	if limit > 0 && limit < len(hits) {
		hits = hits[:limit]
	}

	snippets := make([]Snippet, 0, len(hits))
	for _, hit := range hits {
		snippets = append(snippets, Snippet{Content: hit.content, Similarity: hit.similarity})
	}

	return snippets, nil
}

func (s *MemoryStore) Delete(ctx context.Context, bookmarkID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.chunks[:0]
	for _, c := range s.chunks {
		if c.bookmarkID != bookmarkID {
			kept = append(kept, c)
		}
	}
	s.chunks = kept

	return nil
}

// Len reports the number of stored chunks.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}
