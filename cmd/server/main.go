package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mayank2021264/ai-flashcard-generator/internal/config"
	"github.com/mayank2021264/ai-flashcard-generator/internal/database"
	"github.com/mayank2021264/ai-flashcard-generator/internal/handlers"
	"github.com/mayank2021264/ai-flashcard-generator/internal/middleware"
	"github.com/mayank2021264/ai-flashcard-generator/internal/repository"
	"github.com/mayank2021264/ai-flashcard-generator/internal/router"
	"github.com/mayank2021264/ai-flashcard-generator/internal/services"
)

func main() {
	log.Println("🚀 Starting AI Flashcard Generator API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	setRepo := repository.NewFlashcardSetRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret, cfg.AccessTokenTTL)
	tokenStore := services.NewRedisTokenStore(redisClient)
	authService := services.NewAuthService(userRepo, tokenStore, jwtAuth)
	setService := services.NewFlashcardSetService(setRepo)
	generationService := services.NewGenerationService(setRepo, services.GenerationConfig{
		GeminiAPIKey:    cfg.GeminiAPIKey,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		CardsPerSet:     cfg.CardsPerSet,
		PromptCharLimit: cfg.PromptCharLimit,
		MinSourceChars:  cfg.MinSourceChars,
	})

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	flashcardHandler := handlers.NewFlashcardSetHandler(setService)
	aiHandler := handlers.NewAIHandler(generationService, cfg.MaxUploadSizeMB)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(jwtAuth, authHandler, flashcardHandler, aiHandler, cfg.ClientURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation waits on the AI provider
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ AI Flashcard Generator API ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
