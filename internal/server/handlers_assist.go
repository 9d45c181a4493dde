package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// handleGenerateDescription proxies an AI assist request to the configured
// model. Returns 503 when no assist provider is configured.
func (s *Server) handleGenerateDescription(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requestUser(w, r); !ok {
		return
	}
	if s.assist == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI assist is not configured")
		return
	}

	var req types.GenerateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	description, err := s.assist.GenerateDescription(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate description: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateDescriptionResponse{
		Success:     true,
		Description: description,
	})
}
