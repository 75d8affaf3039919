package controllers

import (
	"linkstash/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UsersController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

// Me returns the profile of the user the access token resolved to.
func (uc UsersController) Me(c *gin.Context) {
	user, err := models.GetUserByID(uc.DB, CurrentUserID(c))
	if err != nil {
		uc.Logger.Errorf("Error getting user: %v", err)
		RespondInternalErr(c)
		return
	}

	if user == nil {
		RespondNotFound(c)
		return
	}

	RespondOK(c, user)
}
