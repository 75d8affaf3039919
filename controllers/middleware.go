package controllers

import (
	"net/http"

	"linkstash/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequireAuth resolves the X-User-Token header against the access token table
// and stores the owning user's ID on the request context.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-User-Token")
		if len(token) > 0 {
			accessToken, err := models.GetAccessToken(db, token)
			if err == nil && accessToken != nil {
				c.Set("userID", accessToken.UserID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, apiResponse{Errors: []string{"accessDenied"}})
	}
}

func CurrentUserID(c *gin.Context) uuid.UUID {
	value, ok := c.Get("userID")
	if !ok {
		return uuid.Nil
	}

	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}
