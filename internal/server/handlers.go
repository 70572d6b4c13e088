package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nichebridge/internal/domain"
)

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statusUpdateRequest struct {
	ManualStatus string `json:"manual_status"`
}

type searchTermRequest struct {
	Country    string `json:"country"`
	SearchTerm string `json:"search_term"`
	// Accepted for frontend compatibility, not used.
	MinAdCreationTime *string `json:"min_ad_creation_time"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	if status == "" {
		status = "unprocessed"
	}
	searchTerm := q.Get("searchTerm")
	// country and category are accepted but not filtered on.

	views, err := s.pages.List(r.Context(), status, searchTerm)
	if err != nil {
		s.logger.Error("list pages failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.pages.UpdateStatus(r.Context(), pageID, req.ManualStatus)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		s.respondError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, domain.ErrPageNotFound):
		s.respondError(w, http.StatusNotFound, "Page not found")
	case err != nil:
		s.logger.Error("status update failed", "page_id", pageID, "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
	default:
		s.respondJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "Status updated successfully",
		})
	}
}

func (s *Server) handleCreateSearchTerm(w http.ResponseWriter, r *http.Request) {
	var req searchTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := s.terms.Create(r.Context(), req.Country, req.SearchTerm); err != nil {
		s.logger.Error("create search term failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, statusResponse{
		Success: true,
		Message: "Search term created successfully",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, statusResponse{Success: false, Message: message})
}
