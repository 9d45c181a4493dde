package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/types"
)

// exportKey identifies one raster export by owner, resume, and the rendered
// document itself, so exports with different template or style overrides never
// share a capture.
func exportKey(userID, resumeID uuid.UUID, html string) string {
	sum := sha256.Sum256([]byte(html))
	return userID.String() + ":" + resumeID.String() + ":" + hex.EncodeToString(sum[:8])
}

// handleVectorExport generates a vector PDF from the resume payload in the
// request body. The resume does not need to be persisted first; the editor
// exports whatever is currently on screen.
func (s *Server) handleVectorExport(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requestUser(w, r); !ok {
		return
	}

	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume data")
		return
	}
	if req.StyleSettings != nil {
		settings := req.StyleSettings.WithDefaults()
		if err := settings.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid style settings: "+err.Error())
			return
		}
		req.StyleSettings = &settings
	}

	out, err := pdf.Generate(req.Resume, req.TemplateID, req.StyleSettings)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	s.pdfResponse(w, pdf.Filename(req.Resume.FullName), out)
}

// rasterExportRequest carries the optional overrides for a raster export of a
// stored resume.
type rasterExportRequest struct {
	TemplateID    string               `json:"template_id,omitempty"`
	StyleSettings *types.StyleSettings `json:"styleSettings,omitempty"`
}

// handleRasterExport captures the rendered preview of a stored resume and
// streams the paginated raster PDF. Concurrent exports of the same resume by
// the same user share one in-flight capture.
func (s *Server) handleRasterExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	var req rasterExportRequest
	if r.Body != nil {
		// an empty body means default template and style
		_ = json.NewDecoder(r.Body).Decode(&req)
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

	templateID := req.TemplateID
	if templateID == "" {
		templateID = resume.TemplateID
	}
	style := types.DefaultStyleSettings()
	if req.StyleSettings != nil {
		style = req.StyleSettings.WithDefaults()
		if err := style.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid style settings: "+err.Error())
			return
		}
	}

	html, err := s.renderer.Render(&resume.Data, templateID, style)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	// Concurrent exports collapse into one capture only when they would
	// produce the same document; the capture runs detached from the first
	// caller's context so a sharer survives that caller disconnecting. The
	// exporter applies its own timeout.
	result, err, _ := s.exports.Do(exportKey(userID, id, html), func() (any, error) {
		return s.raster.Export(context.WithoutCancel(r.Context()), html)
	})
	if err != nil {
		var exportErr *export.ExportError
		if errors.As(err, &exportErr) {
			s.errorResponse(w, http.StatusInternalServerError, exportErr.Message)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF: "+err.Error())
		return
	}

	s.pdfResponse(w, export.Filename(resume.Data.FullName), result.([]byte))
}
