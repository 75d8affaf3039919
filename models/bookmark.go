package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark is a saved URL together with the Open Graph metadata we captured
// when it was added. Chunks derived from the page hang off the bookmark and
// are removed with it.
type Bookmark struct {
	Generic

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User      `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	URL         string `gorm:"not null" json:"url"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	OGType        string `json:"og_type,omitempty"`
	OGTitle       string `json:"og_title,omitempty"`
	OGDescription string `json:"og_description,omitempty"`
	OGImage       string `json:"og_image,omitempty"`

	IsPrivate bool `gorm:"not null;default:false" json:"is_private"`
}

func CreateBookmark(db *gorm.DB, bookmark *Bookmark) error {
	return db.Create(bookmark).Error
}

// GetUserBookmarkByID returns the bookmark only if it belongs to the user.
func GetUserBookmarkByID(db *gorm.DB, userID, id uuid.UUID) (*Bookmark, error) {
	var bookmark Bookmark

	err := db.First(&bookmark, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bookmark, nil
}

func GetUserBookmarks(db *gorm.DB, userID uuid.UUID, offset, limit int) ([]Bookmark, error) {
	var bookmarks []Bookmark

	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// DeleteBookmark removes the bookmark and its chunks in one transaction.
func DeleteBookmark(db *gorm.DB, userID, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bookmark_id = ?", id).Delete(&Chunk{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&Bookmark{}).Error
	})
}

// GetBookmarksWithoutChunks returns bookmarks that have no stored chunks yet.
// The backfill job uses this to find bookmarks whose ingestion never ran or
// never succeeded.
func GetBookmarksWithoutChunks(db *gorm.DB, limit int) ([]Bookmark, error) {
	var bookmarks []Bookmark

	err := db.
		Where("NOT EXISTS (SELECT 1 FROM chunks WHERE chunks.bookmark_id = bookmarks.id)").
		Order("created_at").
		Limit(limit).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	return bookmarks, nil
}
