package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

// stubUserStore is an in-memory UserStore.
type stubUserStore struct {
	users map[uuid.UUID]*db.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (s *stubUserStore) CreateUser(_ context.Context, name, email, phone, passwordHash string) (*db.User, error) {
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *stubUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return s.users[id], nil
}

func (s *stubUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	u, _ := s.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (s *stubUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return &ErrUserNotFound{UserID: id}
	}
	user.PasswordHash = passwordHash
	return nil
}

func newAuthTestServer(t *testing.T) (*Server, *stubUserStore) {
	t.Helper()

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	store := newStubUserStore()
	s := &Server{
		users:      NewUserService(store, &config.PasswordConfig{BcryptCost: 10}),
		jwtService: jwtService,
	}
	return s, store
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	s, _ := newAuthTestServer(t)
	handler := s.routes()

	rec := postJSON(t, handler, "/api/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "jane@example.com", registered.User.Email)
	assert.True(t, registered.User.PasswordSet)

	// the issued token is valid for the API
	claims, err := s.jwtService.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	rec = postJSON(t, handler, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newAuthTestServer(t)
	handler := s.routes()

	req := types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	}
	rec := postJSON(t, handler, "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler, "/api/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newAuthTestServer(t)
	handler := s.routes()

	// password too short
	rec := postJSON(t, handler, "/api/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// invalid email
	rec = postJSON(t, handler, "/api/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "not-an-email",
		Password: "correct horse battery",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := newAuthTestServer(t)
	handler := s.routes()

	rec := postJSON(t, handler, "/api/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// wrong password and unknown email produce the same response
	rec = postJSON(t, handler, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")

	rec = postJSON(t, handler, "/api/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse battery",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestUpdatePassword(t *testing.T) {
	s, _ := newAuthTestServer(t)
	handler := s.routes()

	rec := postJSON(t, handler, "/api/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	update := func(body types.UpdatePasswordRequest) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/auth/password", bytes.NewReader(raw))
		req.Header.Set("Authorization", "Bearer "+registered.Token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec = update(types.UpdatePasswordRequest{
		CurrentPassword: "wrong password",
		NewPassword:     "another long password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = update(types.UpdatePasswordRequest{
		CurrentPassword: "correct horse battery",
		NewPassword:     "another long password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// old password no longer works
	rec = postJSON(t, handler, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, handler, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "another long password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
