package controllers

import (
	"errors"
	"strconv"

	"linkstash/internal/opengraph"
	"linkstash/internal/retrieval"
	"linkstash/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidURL        = errors.New("invalidUrl")
	ErrURLUnreachable    = errors.New("urlUnreachable")
	ErrNoReadableContent = errors.New("noReadableContent")
)

type BookmarksController struct {
	DB        *gorm.DB
	Logger    *zap.SugaredLogger
	OpenGraph *opengraph.Fetcher
	Ingester  *retrieval.Ingester
}

// Preview fetches a URL's Open Graph metadata without persisting anything, so
// the client can show the user what they are about to save.
func (bc BookmarksController) Preview(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		RespondBadRequestErr(c, []error{ErrInvalidURL})
		return
	}

	data, err := bc.OpenGraph.Fetch(c.Request.Context(), url)
	if err != nil {
		bc.Logger.Warnw("metadata preview failed", "url", url, "error", err)
		RespondBadRequestErr(c, []error{ErrURLUnreachable})
		return
	}

	RespondOK(c, data)
}

// Create saves a bookmark and ingests its content. A failed ingestion is a
// failed bookmark-add: the row is rolled back and the error reported.
func (bc BookmarksController) Create(c *gin.Context) {
	type createParams struct {
		URL       string `json:"url" binding:"required,url"`
		IsPrivate bool   `json:"is_private"`
	}

	var payload createParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{err})
		return
	}

	userID := CurrentUserID(c)

	og, err := bc.OpenGraph.Fetch(c.Request.Context(), payload.URL)
	if err != nil {
		// Metadata is an enrichment; a page without usable Open Graph tags is
		// still bookmarkable.
		bc.Logger.Warnw("metadata fetch failed", "url", payload.URL, "error", err)
		og = &opengraph.Data{URL: payload.URL}
	}

	title := og.Title
	if title == "" {
		title = payload.URL
	}

	bookmark := &models.Bookmark{
		UserID:        userID,
		Title:         title,
		URL:           payload.URL,
		Description:   og.Description,
		Image:         og.Image,
		OGType:        og.Type,
		OGTitle:       og.Title,
		OGDescription: og.Description,
		OGImage:       og.Image,
		IsPrivate:     payload.IsPrivate,
	}

	if err := models.CreateBookmark(bc.DB, bookmark); err != nil {
		bc.Logger.Errorf("Error creating bookmark: %v", err)
		RespondInternalErr(c)
		return
	}

	meta := retrieval.Metadata{
		Title:       og.Title,
		Description: og.Description,
		Type:        og.Type,
		Image:       og.Image,
		URL:         payload.URL,
	}

	chunks, err := bc.Ingester.Ingest(c.Request.Context(), userID, bookmark.ID, payload.URL, meta)
	if err != nil {
		bc.Logger.Errorw("ingestion failed", "bookmark_id", bookmark.ID, "url", payload.URL, "error", err)

		if deleteErr := models.DeleteBookmark(bc.DB, userID, bookmark.ID); deleteErr != nil {
			bc.Logger.Errorf("Error rolling back bookmark: %v", deleteErr)
		}

		var fetchErr *retrieval.FetchError
		switch {
		case errors.As(err, &fetchErr):
			RespondBadRequestErr(c, []error{ErrURLUnreachable})
		case errors.Is(err, retrieval.ErrNoArticle):
			RespondBadRequestErr(c, []error{ErrNoReadableContent})
		default:
			RespondInternalErr(c)
		}
		return
	}

	RespondOK(c, gin.H{"bookmark": bookmark, "chunks": chunks})
}

func (bc BookmarksController) List(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		RespondBadRequestErr(c, []error{errors.New("invalidOffset")})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		RespondBadRequestErr(c, []error{errors.New("invalidLimit")})
		return
	}

	bookmarks, err := models.GetUserBookmarks(bc.DB, CurrentUserID(c), offset, limit)
	if err != nil {
		bc.Logger.Errorf("Error getting bookmarks: %v", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, bookmarks)
}

// Delete removes a bookmark together with its chunk set.
func (bc BookmarksController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequestErr(c, []error{err})
		return
	}

	userID := CurrentUserID(c)

	bookmark, err := models.GetUserBookmarkByID(bc.DB, userID, id)
	if err != nil {
		bc.Logger.Errorf("Error getting bookmark: %v", err)
		RespondInternalErr(c)
		return
	}

	if bookmark == nil {
		RespondNotFound(c)
		return
	}

	if err := models.DeleteBookmark(bc.DB, userID, id); err != nil {
		bc.Logger.Errorf("Error deleting bookmark: %v", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}
