package retrieval

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStoreSearchEmpty(t *testing.T) {
	store := NewMemoryStore()

	snippets, err := store.Search(context.Background(), uuid.New(), []float32{1, 0, 0}, 0.5, 4)
	if err != nil {
		t.Fatalf("Search on empty store: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("Search on empty store returned %d snippets", len(snippets))
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	bookmarkID := uuid.New()

	vector := []float32{0.3, 0.9, 0.1}
	err := store.Replace(context.Background(), userID, bookmarkID, []Chunk{
		{Content: "exact match", Embedding: vector},
		{Content: "something else", Embedding: []float32{0.9, 0.1, 0.2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	snippets, err := store.Search(context.Background(), userID, vector, 0.5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(snippets) == 0 {
		t.Fatal("expected at least one snippet")
	}

	if snippets[0].Content != "exact match" {
		t.Fatalf("expected the identical vector first, got %q", snippets[0].Content)
	}
	if math.Abs(snippets[0].Similarity-1.0) > 1e-6 {
		t.Fatalf("identical vectors should score ~1.0, got %v", snippets[0].Similarity)
	}
}

func TestMemoryStoreSearchLimitThresholdOrder(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	bookmarkID := uuid.New()

	// Vectors at increasing angles from the query (1, 0).
	chunks := []Chunk{
		{Content: "a", Embedding: []float32{1, 0}},
		{Content: "b", Embedding: []float32{0.9, 0.4}},
		{Content: "c", Embedding: []float32{0.7, 0.7}},
		{Content: "d", Embedding: []float32{0.2, 0.9}},
		{Content: "e", Embedding: []float32{0, 1}},
	}
	if err := store.Replace(context.Background(), userID, bookmarkID, chunks); err != nil {
		t.Fatal(err)
	}

	query := []float32{1, 0}
	snippets, err := store.Search(context.Background(), userID, query, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(snippets) > 2 {
		t.Fatalf("limit 2 exceeded: got %d", len(snippets))
	}

	for i, s := range snippets {
		if s.Similarity <= 0.5 {
			t.Errorf("snippet %d similarity %v not above threshold", i, s.Similarity)
		}
		if i > 0 && snippets[i-1].Similarity < s.Similarity {
			t.Errorf("snippets out of order at %d: %v < %v", i, snippets[i-1].Similarity, s.Similarity)
		}
	}

	if snippets[0].Content != "a" || snippets[1].Content != "b" {
		t.Fatalf("unexpected ranking: %v", snippets)
	}

	// "e" is orthogonal: similarity 0.0, always filtered by a 0.5 threshold.
	all, err := store.Search(context.Background(), userID, query, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range all {
		if s.Content == "e" {
			t.Fatal("orthogonal vector leaked through the threshold")
		}
	}
}

func TestMemoryStoreThresholdIsStrict(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	if err := store.Replace(context.Background(), userID, uuid.New(), []Chunk{
		{Content: "orthogonal", Embedding: []float32{0, 1}},
	}); err != nil {
		t.Fatal(err)
	}

	// similarity == minSimilarity must be excluded.
	snippets, err := store.Search(context.Background(), userID, []float32{1, 0}, 0.0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(snippets) != 0 {
		t.Fatalf("similarity equal to the threshold should be filtered, got %v", snippets)
	}
}

func TestMemoryStoreOwnerScoping(t *testing.T) {
	store := NewMemoryStore()
	alice := uuid.New()
	bob := uuid.New()

	vector := []float32{1, 0}
	if err := store.Replace(context.Background(), alice, uuid.New(), []Chunk{
		{Content: "alice's chunk", Embedding: vector},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Replace(context.Background(), bob, uuid.New(), []Chunk{
		{Content: "bob's chunk", Embedding: vector},
	}); err != nil {
		t.Fatal(err)
	}

	snippets, err := store.Search(context.Background(), alice, vector, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(snippets) != 1 {
		t.Fatalf("expected exactly alice's chunk, got %d snippets", len(snippets))
	}
	if snippets[0].Content != "alice's chunk" {
		t.Fatalf("cross-user leak: %q", snippets[0].Content)
	}
}

func TestMemoryStoreReplaceIsDeleteThenInsert(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	bookmarkID := uuid.New()

	vector := []float32{1, 0}
	for i := 0; i < 2; i++ {
		if err := store.Replace(context.Background(), userID, bookmarkID, []Chunk{
			{Content: "same chunk", Embedding: vector},
		}); err != nil {
			t.Fatal(err)
		}
	}

	if store.Len() != 1 {
		t.Fatalf("re-ingestion duplicated chunks: %d stored", store.Len())
	}

	if err := store.Delete(context.Background(), bookmarkID); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Fatalf("delete left %d chunks behind", store.Len())
	}
}
