package server

import (
	"net/http"
)

// maxAvatarBytes caps avatar uploads at 5MB.
const maxAvatarBytes = 5 << 20

// handleUploadAvatar stores an avatar image and returns its public URL for
// embedding in resume data. Returns 503 when no upload bucket is configured.
func (s *Server) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	if s.avatars == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Avatar uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing avatar file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := s.avatars.UploadAvatar(r.Context(), userID, contentType, file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to upload avatar: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"url": url})
}
