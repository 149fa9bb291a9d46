package http

import (
	"github.com/gin-gonic/gin"
	"github.com/retrofy/backend/config"
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
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	// Catalog endpoints
	router.GET("/products", handler.SearchProducts)
	router.GET("/products/:id", handler.GetProductByID)
	router.POST("/seed_products", handler.SeedProducts)
	router.DELETE("/products", handler.DeleteAllProducts)
	router.DELETE("/products/:id", handler.DeleteProduct)

	return router
}
