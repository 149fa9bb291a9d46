package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/retrofy/backend/config"
	httpDelivery "github.com/retrofy/backend/internal/delivery/http"
	"github.com/retrofy/backend/internal/infrastructure/cache"
	"github.com/retrofy/backend/internal/infrastructure/postgres"
	"github.com/retrofy/backend/internal/usecase"
)

func main() {
	// Local development convenience; in deployment the env is set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Retrofy Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Connect to the product store
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	log.Printf("Connected to product store")

	// Wire infrastructure and the search engine
	repo := postgres.NewProductRepository(db)
	catalogCache := cache.NewMemoryCatalog()

	searchService := usecase.NewSearchService(repo, catalogCache, usecase.SearchConfig{
		DefaultLimit:       cfg.Search.DefaultLimit,
		MaxLimit:           cfg.Search.MaxLimit,
		CacheTTL:           cfg.Search.CacheTTL,
		EnableDebugLogging: cfg.Search.EnableDebugLogging,
	})

	log.Printf("Search: default_limit=%d max_limit=%d cache_ttl=%s debug=%v",
		cfg.Search.DefaultLimit, cfg.Search.MaxLimit, cfg.Search.CacheTTL,
		cfg.Search.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, repo, catalogCache)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
