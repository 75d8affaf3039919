package core

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and makes sure the pgvector extension is
// available. The handle is returned to the caller; there is no package-level
// singleton, so lifecycle is owned by whoever boots the process.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureVectorIndex creates the cosine-distance index over chunk embeddings.
// Must run after migrations so the chunks table exists.
func EnsureVectorIndex(db *gorm.DB) error {
	return db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_chunks_embedding
		 ON chunks USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
	).Error
}
