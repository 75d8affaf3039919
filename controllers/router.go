package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Router struct {
	DB *gorm.DB

	HealthController    *HealthController
	UsersController     *UsersController
	BookmarksController *BookmarksController
	AIController        *AIController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	//
	// Anonymous requests
	//
	router.GET("/health", r.HealthController.Status)

	//
	// Authorized requests
	//
	authorized := router.Group("/", RequireAuth(r.DB))
	authorized.GET("/me", r.UsersController.Me)
	authorized.GET("/bookmarks", r.BookmarksController.List)
	authorized.GET("/bookmarks/preview", r.BookmarksController.Preview)
	authorized.POST("/bookmarks", r.BookmarksController.Create)
	authorized.DELETE("/bookmarks/:id", r.BookmarksController.Delete)

	authorized.POST("/ai/search", r.AIController.Search)
	authorized.POST("/ai/chat", r.AIController.Chat)
}
