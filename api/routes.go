package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/voxtape/transcript-api/api/cache"
	"github.com/voxtape/transcript-api/api/health"
	"github.com/voxtape/transcript-api/api/instagram"
	"github.com/voxtape/transcript-api/api/transcribe"
	"github.com/voxtape/transcript-api/api/types"
	"github.com/voxtape/transcript-api/api/version"
	_ "github.com/voxtape/transcript-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("dependencies are required")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// YouTube transcription (5 req/s, burst of 10). Cache hits make
	// most requests cheap, so the bucket can be generous.
	transcribeGroup := v1.Group("/transcribe")
	transcribeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	transcribe.RegisterRoutes(transcribeGroup, deps)

	// Instagram transcription (2 req/s, burst of 4). Every request runs
	// the full scrape, download and speech pipeline.
	instagramGroup := v1.Group("/instagram")
	instagramGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 4))
	instagram.RegisterRoutes(instagramGroup, deps)

	// Cache administration (1 req/s, burst of 2)
	cacheGroup := v1.Group("/cache")
	cacheGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
	cache.RegisterRoutes(cacheGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
