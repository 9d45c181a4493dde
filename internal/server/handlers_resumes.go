package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// requestUser resolves the authenticated user or writes a 401.
func (s *Server) requestUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathResumeID parses the {id} path segment or writes a 400.
func (s *Server) pathResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return uuid.Nil, false
	}
	return id, true
}

// validResumeData runs the document through schema validation and writes a
// 400 carrying the field errors on failure.
func (s *Server) validResumeData(w http.ResponseWriter, data *types.ResumeData) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data")
		return false
	}
	if err := schemas.ValidateResumeData(raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}

	resumes, err := s.store.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resumes == nil {
		resumes = []types.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, resumes)
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.validResumeData(w, &req.Data) {
		return
	}
	req.Data.Sanitize()

	resume, err := s.store.CreateResume(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	var req types.UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.IsEmpty() {
		s.errorResponse(w, http.StatusBadRequest, "Update carries no changes")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Data != nil {
		if !s.validResumeData(w, req.Data) {
			return
		}
		req.Data.Sanitize()
	}

	resume, err := s.store.UpdateResume(r.Context(), id, userID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteResume(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleActivateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	if err := s.store.SetActiveResume(r.Context(), id, userID); err != nil {
		if resume, getErr := s.store.GetResume(r.Context(), id, userID); getErr == nil && resume == nil {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "activated"})
}

// handlePreviewResume renders a stored resume to a standalone HTML document.
// Template and style come from query parameters so the editor can preview
// changes without persisting them first.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	templateID := r.URL.Query().Get("template")
	if templateID == "" {
		templateID = resume.TemplateID
	}
	style := styleFromQuery(r)

	html, err := s.renderer.Render(&resume.Data, templateID, style)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		return
	}
}

// styleFromQuery assembles style settings from preview query parameters,
// falling back to defaults for anything absent or invalid.
func styleFromQuery(r *http.Request) types.StyleSettings {
	q := r.URL.Query()
	style := types.StyleSettings{
		FontFamily:      q.Get("font"),
		AccentColor:     q.Get("accent"),
		BackgroundColor: q.Get("background"),
		TextColor:       q.Get("text"),
	}
	if v := q.Get("accent_strength"); v != "" {
		if strength, err := strconv.Atoi(v); err == nil {
			style.AccentStrength = strength
		}
	}
	style = style.WithDefaults()
	if err := style.Validate(); err != nil {
		return types.DefaultStyleSettings()
	}
	return style
}
