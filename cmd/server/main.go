package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ecoswap/recommender/config"
	httpDelivery "github.com/ecoswap/recommender/internal/delivery/http"
	"github.com/ecoswap/recommender/internal/domain"
	"github.com/ecoswap/recommender/internal/infrastructure/catalog"
	"github.com/ecoswap/recommender/internal/infrastructure/gemini"
	"github.com/ecoswap/recommender/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoSwap Recommender v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize the catalog store with the demo products
	store := catalog.NewMemoryStore()
	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	count, _ := store.Count(context.Background())
	log.Printf("Catalog seeded with %d products", count)

	// The Gemini client is optional: without a key the service serves
	// deterministic local copy instead
	var generator domain.CopyGenerator
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.Timeout)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Gemini client debug mode enabled")
		}
		generator = client
		log.Printf("Gemini API configured: %s (model: %s)", cfg.Gemini.BaseURL, cfg.Gemini.Model)
	} else {
		log.Printf("WARNING: no Gemini API key configured - recommendations will use local copy")
	}

	// Initialize usecase layer
	similarity := usecase.NewSimilarityService(usecase.SimilarityConfig{
		Limit:              cfg.Recommender.SimilarLimit,
		MinScore:           cfg.Recommender.MinSimilarity,
		EnableDebugLogging: cfg.Recommender.Debug,
	})
	sustainability := usecase.NewSustainabilityService(usecase.SustainabilityConfig{
		Limit:              cfg.Recommender.AlternativeLimit,
		EnableDebugLogging: cfg.Recommender.Debug,
	})
	recommender := usecase.NewRecommendationService(similarity, sustainability, generator, usecase.RecommendationConfig{
		SimilarLimit:       cfg.Recommender.SimilarLimit,
		AlternativeLimit:   cfg.Recommender.AlternativeLimit,
		EnableDebugLogging: cfg.Recommender.Debug,
	})

	log.Printf("Recommender: similar=%d, alternatives=%d, min score=%.0f",
		cfg.Recommender.SimilarLimit,
		cfg.Recommender.AlternativeLimit,
		cfg.Recommender.MinSimilarity)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, recommender)

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
