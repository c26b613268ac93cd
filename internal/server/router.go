package server

import (
	"net/http"

	"ai-image-studio/internal/builder"
	"ai-image-studio/internal/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(h *builder.AppHandlers) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r)
	setupRoutes(r, h.Web)

	return r
}

func setupCommonMiddleware(r *chi.Mux) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
}

func setupRoutes(r chi.Router, webHandler *handlers.Handler) {
	r.Get("/", webHandler.Index)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", webHandler.HandleGenerate)
		r.Post("/image-url", webHandler.HandleImageURL)
		r.Post("/analyze", webHandler.HandleAnalyze)
		r.Get("/progress", webHandler.HandleProgress)
	})
}
