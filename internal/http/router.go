// Package http exposes the REST API: catalogue browsing, full-text search,
// hadith verification, topics, and per-child memorization tracking.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/database/books"
	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	"github.com/hadithdb/hadith-api/internal/database/progress"
	topicsrepo "github.com/hadithdb/hadith-api/internal/database/topics"
	"github.com/hadithdb/hadith-api/internal/search"
	"github.com/hadithdb/hadith-api/internal/tasks"
)

// RouterConfig receives all router dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Database    *database.Database
	Searcher    search.Searcher
	Verifier    *search.Verifier
	AuthService *auth.Service
	TaskClient  *tasks.Client
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	booksRepo := books.NewRepository(cfg.Database.DB)
	hadithsRepo := hadiths.NewRepository(cfg.Database.DB)
	topicsRepo := topicsrepo.NewRepository(cfg.Database.DB)
	progressRepo := progress.NewRepository(cfg.Database.DB)

	health := NewHealthController(cfg.Database, cfg.Searcher, cfg.Version)
	booksController := NewBooksController(booksRepo)
	hadithsController := NewHadithsController(hadithsRepo)
	topicsController := NewTopicsController(topicsRepo)
	searchController := NewSearchController(cfg.Searcher, cfg.Verifier)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/books", booksController.GetAllBooks)
	v1.GET("/books/:slug", booksController.GetBook)
	v1.GET("/books/:slug/chapters", booksController.GetChapters)
	v1.GET("/books/:slug/chapters/:number", booksController.GetChapter)

	v1.GET("/hadiths", hadithsController.List)
	v1.GET("/hadiths/random", hadithsController.Random)
	v1.GET("/hadiths/:id", hadithsController.Get)

	v1.GET("/topics", topicsController.ListTopics)
	v1.GET("/topics/:slug", topicsController.GetTopic)
	v1.GET("/topics/:slug/sahih", topicsController.GetTopicSahih)

	v1.GET("/search", searchController.Search)
	v1.GET("/search/autocomplete", searchController.Autocomplete)
	v1.GET("/search/verify", searchController.Verify)

	if cfg.AuthService != nil {
		authController := NewAuthController(cfg.AuthService)
		v1.POST("/auth/register", authController.Register)
		v1.POST("/auth/login", authController.Login)

		protected := v1.Group("")
		protected.Use(auth.RequireUser(cfg.AuthService))

		protected.GET("/auth/me", authController.Me)

		childrenController := NewChildrenController(progressRepo)
		protected.POST("/children", childrenController.Create)
		protected.GET("/children", childrenController.List)
		protected.GET("/children/:childId", childrenController.Get)
		protected.PUT("/children/:childId", childrenController.Update)
		protected.DELETE("/children/:childId", childrenController.Delete)

		progressController := NewProgressController(progressRepo, hadithsRepo)
		protected.GET("/children/:childId/progress", progressController.List)
		protected.POST("/children/:childId/progress", progressController.Start)
		protected.GET("/children/:childId/progress/stats", progressController.Stats)
		protected.PUT("/children/:childId/progress/:hadithId", progressController.Update)
		protected.DELETE("/children/:childId/progress/:hadithId", progressController.Delete)

		if cfg.TaskClient != nil {
			adminController := NewAdminController(cfg.TaskClient)
			protected.POST("/admin/reindex", adminController.Reindex)
			protected.POST("/admin/classify-topics", adminController.ClassifyTopics)
		}
	}

	return router
}
