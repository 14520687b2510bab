package api

import (
	"net/http"

	"github.com/dom/pickup-hoops/internal/api/handlers"
	"github.com/dom/pickup-hoops/internal/api/middleware"
	"github.com/dom/pickup-hoops/internal/config"
	"github.com/dom/pickup-hoops/internal/metrics"
	"github.com/dom/pickup-hoops/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, recorder *metrics.Recorder, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	if cfg.MetricsEnabled {
		r.Use(recorder.Middleware)
		r.Handle("/metrics", recorder.Handler())
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(services.Roster)
	propositionHandler := handlers.NewPropositionHandler(services.Proposition)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Post("/", playerHandler.Create)
			r.Get("/{id}", playerHandler.Get)
			r.Put("/{id}", playerHandler.Save)
		})

		r.Post("/propositions", propositionHandler.Generate)
	})

	return r
}
