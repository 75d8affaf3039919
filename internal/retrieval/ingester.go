package retrieval

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/embeddings"
	"go.uber.org/zap"
)

// Ingester runs the write path: fetch and extract the page, chunk the article
// body and the serialized metadata, embed everything in one batch, and swap
// the bookmark's stored chunk set.
type Ingester struct {
	extractor *Extractor
	splitter  *Splitter
	embedder  embeddings.Embedder
	store     Store
	dimension int
	logger    *zap.SugaredLogger
}

func NewIngester(cfg Config, embedder embeddings.Embedder, store Store, logger *zap.SugaredLogger) (*Ingester, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	splitter, err := NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	return &Ingester{
		extractor: NewExtractor(cfg.FetchTimeout),
		splitter:  splitter,
		embedder:  embedder,
		store:     store,
		dimension: cfg.Dimension,
		logger:    logger,
	}, nil
}

// Ingest turns a bookmark URL into stored, embedded chunks and reports how
// many were stored. Any stage failure aborts the rest of the pipeline and
// leaves the previously stored chunk set untouched.
func (in *Ingester) Ingest(ctx context.Context, userID, bookmarkID uuid.UUID, url string, meta Metadata) (int, error) {
	article, err := in.extractor.Extract(ctx, url)
	if err != nil {
		return 0, err
	}

	// Article and metadata are chunked independently but share one embedding
	// batch and one store write.
	texts := in.splitter.SplitText(article)
	texts = append(texts, in.splitter.SplitText(meta.Text())...)
	if len(texts) == 0 {
		return 0, ErrNoArticle
	}

	vectors, err := in.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, &EmbeddingProviderError{Err: err}
	}

	if len(vectors) != len(texts) {
		return 0, &EmbeddingProviderError{
			Err: fmt.Errorf("got %v vectors for %v texts", len(vectors), len(texts)),
		}
	}

	chunks := make([]Chunk, len(texts))
	for i := range texts {
		if len(vectors[i]) != in.dimension {
			return 0, &EmbeddingProviderError{
				Err: fmt.Errorf("vector dimension %v, want %v", len(vectors[i]), in.dimension),
			}
		}

		chunks[i] = Chunk{Content: texts[i], Embedding: toFloat32(vectors[i])}
	}

	if err := in.store.Replace(ctx, userID, bookmarkID, chunks); err != nil {
		return 0, err
	}

	in.logger.Infow("ingested bookmark", "bookmark_id", bookmarkID, "url", url, "chunks", len(chunks))
	return len(chunks), nil
}
