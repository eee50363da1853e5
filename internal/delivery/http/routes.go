package http

import (
	"github.com/cartwise/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(RateLimitMiddleware(NewIPRateLimiter(cfg.RateLimit.PerIP)))
	}
	{
		// Local taxonomy endpoints
		categories := v1.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.GET("/match", handler.MatchCategory)
			categories.GET("/search", handler.SearchCategories)
			categories.GET("/suggest", handler.SuggestCategory)
			categories.GET("/:id", handler.GetCategory)
		}

		// Remote fallback endpoints
		remote := v1.Group("/remote/categories")
		{
			remote.GET("", handler.SearchRemoteCategories)
			remote.GET("/:id", handler.GetRemoteCategory)
		}
	}

	return router
}
