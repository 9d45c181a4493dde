// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the persistence surface the handlers depend on.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, req *types.CreateResumeRequest) (*types.Resume, error)
	GetResume(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]types.Resume, error)
	UpdateResume(ctx context.Context, id, userID uuid.UUID, req *types.UpdateResumeRequest) (*types.Resume, error)
	DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error)
	SetActiveResume(ctx context.Context, id, userID uuid.UUID) error
}

// RasterExporter produces the paginated raster PDF for a rendered document.
type RasterExporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// AssistService produces AI text suggestions.
type AssistService interface {
	GenerateDescription(ctx context.Context, req *types.GenerateDescriptionRequest) (string, error)
}

// AvatarStore uploads avatar images and returns their public URLs.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       ResumeStore
	users       *UserService
	renderer    *render.Renderer
	raster      RasterExporter
	assist      AssistService
	avatars     AvatarStore
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	exports     singleflight.Group
}

// New creates a new server instance from configuration, wiring the real
// dependencies.
func New(cfg *config.ServerConfig) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	s := &Server{
		db:       database,
		store:    database,
		users:    NewUserService(database, passwordConfig),
		renderer: renderer,
		raster: export.NewPipeline(export.CaptureOptions{
			Timeout:    cfg.ExportTimeout,
			ChromePath: cfg.ChromePath,
		}),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		jwtService:  NewJWTService(jwtConfig),
	}

	if cfg.GeminiAPIKey != "" {
		client, err := assist.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create assist client: %w", err)
		}
		s.assist = assist.NewService(client)
	}

	if cfg.AWSBucket != "" {
		uploader, err := storage.NewUploader(ctx, cfg.AWSRegion, cfg.AWSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to create avatar uploader: %w", err)
		}
		s.avatars = uploader
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // raster exports hold the connection
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Everything under /api requires a valid
// bearer token.
func (s *Server) routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/resumes", s.handleListResumes)
	api.HandleFunc("POST /api/resumes", s.handleCreateResume)
	api.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	api.HandleFunc("PUT /api/resumes/{id}", s.handleUpdateResume)
	api.HandleFunc("DELETE /api/resumes/{id}", s.handleDeleteResume)
	api.HandleFunc("POST /api/resumes/{id}/activate", s.handleActivateResume)
	api.HandleFunc("GET /api/resumes/{id}/preview", s.handlePreviewResume)
	api.HandleFunc("POST /api/resumes/{id}/export/raster", s.handleRasterExport)
	api.HandleFunc("POST /api/export/pdf", s.handleVectorExport)
	api.HandleFunc("POST /api/generate-description", s.handleGenerateDescription)
	api.HandleFunc("POST /api/uploads/avatar", s.handleUploadAvatar)
	api.HandleFunc("PUT /api/auth/password", s.handleUpdatePassword)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("/api/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(api))
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth reports server and database health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	code := http.StatusOK
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}
	s.jsonResponse(w, code, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// pdfResponse streams PDF bytes as a download attachment.
func (s *Server) pdfResponse(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// extractClientID extracts the client identifier (IP address) for rate
// limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
