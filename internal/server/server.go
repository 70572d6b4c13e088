// Package server exposes the bridge's REST surface: page listing, manual
// status updates, and search term registration.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nichebridge/internal/domain"
)

type PageService interface {
	List(ctx context.Context, status, searchTerm string) ([]domain.PageView, error)
	UpdateStatus(ctx context.Context, pageID, status string) error
}

type SearchTermService interface {
	Create(ctx context.Context, country, searchTerm string) (*domain.SearchTerm, error)
}

type Server struct {
	pages  PageService
	terms  SearchTermService
	logger *slog.Logger
	router chi.Router
}

func New(pages PageService, terms SearchTermService, logger *slog.Logger) *Server {
	s := &Server{
		pages:  pages,
		terms:  terms,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// The frontend may be served from anywhere; wildcard origins require
	// credentials to stay off.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/api/pages", s.handleListPages)
	r.Patch("/api/pages/{pageID}/status", s.handleUpdateStatus)
	r.Post("/api/search_terms", s.handleCreateSearchTerm)
	r.Get("/health", s.handleHealth)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}
