package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/nutrimentor/backend/config"
	"github.com/pageza/nutrimentor/backend/internal/api"
	"github.com/pageza/nutrimentor/backend/internal/database"
	"github.com/pageza/nutrimentor/backend/internal/router"
	"github.com/pageza/nutrimentor/backend/internal/server"
	"github.com/pageza/nutrimentor/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	gateway, err := service.NewGeminiService()
	if err != nil {
		log.Fatalf("Failed to create Gemini service: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	feedbackStore := service.NewCSVFeedbackStore(cfg.FeedbackDataDir)
	analyzer := service.NewPreferenceAnalyzer(feedbackStore)
	cache := service.NewRedisResponseCache(redisClient)
	translator := service.NoopTranslator{}

	authHandler := api.NewAuthHandler(authService)
	chatHandler := api.NewChatHandler(profileService, analyzer, gateway, translator, cache, cfg.UploadDir)
	feedbackHandler := api.NewFeedbackHandler(feedbackStore, cache)
	preferencesHandler := api.NewPreferencesHandler(analyzer, profileService)
	profileHandler := api.NewProfileHandler(profileService)

	engine := router.SetupRouter(authHandler, chatHandler, feedbackHandler, preferencesHandler, profileHandler, authService)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
