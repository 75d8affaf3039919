package main

import (
	"context"

	"linkstash/core"
	"linkstash/internal/retrieval"
	"linkstash/models"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/embeddings"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxBookmarksPerRun = 500

func main() {
	godotenv.Load()

	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Bookmark{},
		&models.Chunk{},
	)
	if err != nil {
		panic(err)
	}

	if err := core.EnsureVectorIndex(db); err != nil {
		panic(err)
	}

	backfiller, err := newBackfiller(db)
	if err != nil {
		panic(err)
	}

	backfiller.run(context.Background())
}

// backfiller re-runs ingestion for bookmarks that have no chunks, typically
// because they were added before ingestion existed or their ingestion failed.
type backfiller struct {
	db       *gorm.DB
	ingester *retrieval.Ingester
	logger   *zap.SugaredLogger
}

func newBackfiller(db *gorm.DB) (*backfiller, error) {
	logger, err := core.NewLogger()
	if err != nil {
		return nil, err
	}

	var embedder embeddings.Embedder
	embedder, err = retrieval.NewEmbedder()
	if err != nil {
		return nil, err
	}

	ingester, err := retrieval.NewIngester(retrieval.DefaultConfig(), embedder, retrieval.NewPostgresStore(db), logger.With("component", "ingester"))
	if err != nil {
		return nil, err
	}

	return &backfiller{
		db:       db,
		ingester: ingester,
		logger:   logger,
	}, nil
}

func (b *backfiller) run(ctx context.Context) {
	logger := b.logger

	logger.Info("Running backfill job...")

	bookmarks, err := models.GetBookmarksWithoutChunks(b.db, maxBookmarksPerRun)
	if err != nil {
		logger.Errorf("Error listing bookmarks without chunks: %v", err)
		return
	}

	logger.Infof("Found %v bookmarks without chunks", len(bookmarks))

	for _, bookmark := range bookmarks {
		meta := retrieval.Metadata{
			Title:       bookmark.OGTitle,
			Description: bookmark.OGDescription,
			Type:        bookmark.OGType,
			Image:       bookmark.OGImage,
			URL:         bookmark.URL,
		}

		chunks, err := b.ingester.Ingest(ctx, bookmark.UserID, bookmark.ID, bookmark.URL, meta)
		if err != nil {
			// One bad page must not stall the rest of the batch.
			logger.Errorw("failed to ingest bookmark", "bookmark_id", bookmark.ID, "url", bookmark.URL, "error", err)
			continue
		}

		logger.Infow("backfilled bookmark", "bookmark_id", bookmark.ID, "chunks", chunks)
	}

	logger.Info("Backfill done.")
}
