package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts a single known token.
type stubValidator struct {
	token  string
	userID uuid.UUID
}

type stubClaims struct {
	userID uuid.UUID
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return &stubClaims{userID: v.userID}, nil
}

// resumeListHandler records whether it ran and which owner it saw, standing in
// for the resume handlers behind the middleware.
func resumeListHandler(called *bool, owner *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		userID, err := GetUserID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		*owner = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{token: "owner-session-token", userID: userID}

	var called bool
	var owner uuid.UUID
	handler := AuthMiddleware(validator)(resumeListHandler(&called, &owner))

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	req.Header.Set("Authorization", "Bearer owner-session-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, userID, owner, "handler must see the token's owner")
}

func TestAuthMiddlewareRejects(t *testing.T) {
	validator := &stubValidator{token: "owner-session-token", userID: uuid.New()}

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"no bearer prefix", "owner-session-token"},
		{"bearer without token", "Bearer"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer someone-elses-token"},
		{"extra parts", "Bearer owner-session-token trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var owner uuid.UUID
			handler := AuthMiddleware(validator)(resumeListHandler(&called, &owner))

			req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+uuid.NewString(), nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called, "handler must not run without a valid token")
			assert.Contains(t, rec.Body.String(), "Unauthorized")
		})
	}
}

func TestAuthMiddlewareBearerCaseInsensitive(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{token: "owner-session-token", userID: userID}

	for _, prefix := range []string{"bearer", "BEARER", "BeArEr"} {
		var called bool
		var owner uuid.UUID
		handler := AuthMiddleware(validator)(resumeListHandler(&called, &owner))

		req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
		req.Header.Set("Authorization", prefix+" owner-session-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "prefix %q", prefix)
		assert.Equal(t, userID, owner)
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.Contains(t, err.Error(), "user ID not found")
}

func TestGetUserIDWrongType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
