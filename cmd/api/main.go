package main

import (
	"os"

	"linkstash/controllers"
	"linkstash/core"
	"linkstash/internal/opengraph"
	"linkstash/internal/retrieval"
	"linkstash/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
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

	server := createServer(db)
	server.Run()
}

func createServer(db *gorm.DB) *gin.Engine {
	engine := gin.Default()
	err := engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "https://"+os.Getenv("UI_DOMAIN"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-User-Token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	logger, err := core.NewLogger()
	if err != nil {
		panic(err)
	}

	embedder, err := retrieval.NewEmbedder()
	if err != nil {
		panic(err)
	}

	store := retrieval.NewPostgresStore(db)
	config := retrieval.DefaultConfig()

	ingester, err := retrieval.NewIngester(config, embedder, store, logger.With("component", "ingester"))
	if err != nil {
		panic(err)
	}

	retriever, err := retrieval.NewRetriever(config, embedder, store)
	if err != nil {
		panic(err)
	}

	generator, err := retrieval.NewGenerator()
	if err != nil {
		panic(err)
	}

	router := controllers.Router{
		DB: db,
		HealthController: &controllers.HealthController{
			DB: db,
		},
		UsersController: &controllers.UsersController{
			DB:     db,
			Logger: logger.With("controller", "users"),
		},
		BookmarksController: &controllers.BookmarksController{
			DB:        db,
			Logger:    logger.With("controller", "bookmarks"),
			OpenGraph: opengraph.NewFetcher(config.FetchTimeout),
			Ingester:  ingester,
		},
		AIController: &controllers.AIController{
			Logger:    logger.With("controller", "ai"),
			Retriever: retriever,
			Generator: generator,
		},
	}

	router.RegisterRoutes(engine)
	return engine
}
