package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cartwise/backend/config"
	httpDelivery "github.com/cartwise/backend/internal/delivery/http"
	"github.com/cartwise/backend/internal/infrastructure/cache"
	"github.com/cartwise/backend/internal/infrastructure/catalog"
	"github.com/cartwise/backend/internal/taxonomy"
	"github.com/cartwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CartWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize local matching over the built-in taxonomy
	store := taxonomy.Default()
	matchingService := usecase.NewMatchingService(store, usecase.MatchConfig{
		FindThreshold:        cfg.Matching.FindThreshold,
		SearchThreshold:      cfg.Matching.SearchThreshold,
		SearchLimit:          cfg.Matching.SearchLimit,
		SuggestThreshold:     cfg.Matching.SuggestThreshold,
		SuggestWordThreshold: cfg.Matching.SuggestWordThreshold,
		EnableDebugLogging:   cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Taxonomy: %d categories in %d groups", store.Len(), len(store.GroupNames()))
	log.Printf("Matching: find=%.2f, search=%.2f (limit %d), suggest=%.2f/%.2f, debug=%v",
		cfg.Matching.FindThreshold,
		cfg.Matching.SearchThreshold,
		cfg.Matching.SearchLimit,
		cfg.Matching.SuggestThreshold,
		cfg.Matching.SuggestWordThreshold,
		cfg.Matching.EnableDebugLogging)

	// Remote fallback is optional and only wired when an API key is present
	var lookupService *usecase.CategoryLookupService
	if cfg.Catalog.Enabled() {
		memoryCache := cache.NewMemoryCache(cache.Options{
			TTL:        cfg.Cache.TTL,
			MaxEntries: cfg.Cache.MaxEntries,
		})
		defer memoryCache.Close()
		log.Printf("Cache: %s (TTL %s, max %d entries)", cfg.Cache.Type, cfg.Cache.TTL, cfg.Cache.MaxEntries)

		catalogClient := catalog.NewClient(cfg.Catalog.APIKey, cfg.Catalog.BaseURL,
			catalog.WithTimeout(cfg.Catalog.Timeout),
			catalog.WithRateLimit(cfg.Catalog.RequestsPerSecond, cfg.Catalog.Burst),
			catalog.WithMaxRetries(cfg.Catalog.MaxRetries),
		)

		// Enable debug mode in development environment
		if cfg.Server.Environment == "development" {
			catalogClient.SetDebug(true)
			log.Printf("Catalog client debug mode enabled")
		}

		lookupService = usecase.NewCategoryLookupService(catalogClient, memoryCache, usecase.CategoryLookupConfig{
			PageSize:           cfg.Catalog.PageSize,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		})

		log.Printf("Catalog API configured: %s (key: %s)", cfg.Catalog.BaseURL, maskKey(cfg.Catalog.APIKey))
	} else {
		log.Printf("WARNING: Catalog API key not configured - remote category fallback disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(matchingService, lookupService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "..."
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
