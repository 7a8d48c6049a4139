// Package api exposes the book ingestion service over HTTP.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bookworks/book-ingest-service/internal/auth"
)

// NewRouter sets up the API routes and middleware chain. jwtManager may be
// nil when authEnabled is false.
func NewRouter(handler *Handler, jwtManager *auth.JWTManager, authEnabled bool, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", handler.HealthCheck)

	apiGroup := router.Group("/api")
	if authEnabled {
		apiGroup.Use(AuthMiddleware(jwtManager))
	}
	{
		apiGroup.POST("/books", handler.UploadBook)
		apiGroup.GET("/books", handler.ListBooks)
		apiGroup.GET("/books/:id", handler.GetBook)
		apiGroup.GET("/books/:id/pages", handler.GetBookPages)
		apiGroup.DELETE("/books/:id", handler.DeleteBook)
	}

	return router
}
