package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/pickup-hoops/internal/api"
	"github.com/dom/pickup-hoops/internal/assistant"
	"github.com/dom/pickup-hoops/internal/balancing"
	"github.com/dom/pickup-hoops/internal/config"
	"github.com/dom/pickup-hoops/internal/metrics"
	"github.com/dom/pickup-hoops/internal/repository/postgres"
	"github.com/dom/pickup-hoops/internal/service"
)

const assistantBackoff = 250 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Balancing assistant is optional; without it only the built-in strategies run
	var balancer balancing.Assistant
	if cfg.AssistantEnabled() {
		client := assistant.NewClient(assistant.Config{
			URL:     cfg.AssistantURL,
			APIKey:  cfg.AssistantAPIKey,
			Timeout: cfg.AssistantTimeout,
		})
		balancer = assistant.NewRetrying(client, cfg.AssistantMaxAttempts, assistantBackoff)
		log.Printf("Balancing assistant enabled at %s", cfg.AssistantURL)
	}

	// Initialize services
	recorder := metrics.NewRecorder()
	services := service.NewServices(repos, balancing.NewGenerator(balancer), recorder)

	// Initialize router
	router := api.NewRouter(services, recorder, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
