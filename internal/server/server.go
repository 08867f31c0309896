// Package server provides the HTTP REST API for the portfolio backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonathan/devfolio/internal/config"
	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/server/middleware"
	"github.com/jonathan/devfolio/internal/server/ratelimit"
	"github.com/jonathan/devfolio/internal/upload"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	store        Store
	jwtService   *JWTService
	verifier     TokenVerifier
	uploader     upload.Uploader
	rateLimiter  *ratelimit.Limiter
	allowedEmail string
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	AllowedEmail string
	Verifier     TokenVerifier
	Uploader     upload.Uploader
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		store:        database,
		jwtService:   NewJWTService(jwtConfig),
		verifier:     cfg.Verifier,
		uploader:     cfg.Uploader,
		rateLimiter:  ratelimit.NewLimiter(ratelimit.LoadConfig()),
		allowedEmail: cfg.AllowedEmail,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the route table. Admin endpoints go through the auth
// middleware; public endpoints and the counter increments do not.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	auth := s.authMiddleware()
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(h))
	}

	// Auth
	mux.HandleFunc("POST /api/auth/google", s.handleGoogleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	protected("GET /api/auth/user", s.handleCurrentUser)

	// Projects (admin)
	protected("GET /api/projects", s.handleListProjects)
	protected("POST /api/projects", s.handleCreateProject)
	protected("GET /api/projects/{id}", s.handleGetProject)
	protected("PATCH /api/projects/{id}", s.handleUpdateProject)
	protected("DELETE /api/projects/{id}", s.handleDeleteProject)

	// Skills (admin)
	protected("GET /api/skills", s.handleListSkills)
	protected("POST /api/skills", s.handleCreateSkill)
	protected("PATCH /api/skills/{id}", s.handleUpdateSkill)
	protected("DELETE /api/skills/{id}", s.handleDeleteSkill)
	protected("POST /api/skills/reorder", s.handleReorderSkills)

	// Profile and settings (admin)
	protected("GET /api/profile", s.handleGetProfile)
	protected("PUT /api/profile", s.handleUpdateProfile)
	protected("GET /api/settings", s.handleGetSettings)
	protected("PUT /api/settings", s.handleUpdateSettings)

	// Analytics (admin reads/overwrite, public increments)
	protected("GET /api/analytics", s.handleGetAnalytics)
	protected("GET /api/analytics/daily-views", s.handleListDailyViews)
	protected("PUT /api/analytics", s.handleUpdateAnalytics)
	mux.HandleFunc("POST /api/analytics/view", s.handleIncrementView)
	mux.HandleFunc("POST /api/analytics/project-click", s.handleIncrementProjectClick)
	mux.HandleFunc("POST /api/analytics/contact", s.handleIncrementContactInquiry)

	// Public site endpoints
	mux.HandleFunc("GET /api/public/skills", s.handlePublicSkills)
	mux.HandleFunc("GET /api/public/projects", s.handlePublicProjects)
	mux.HandleFunc("GET /api/public/settings", s.handlePublicSettings)

	// Upload proxy (admin)
	protected("POST /api/upload/project-preview", s.handleUploadProjectPreview)

	mux.HandleFunc("GET /api/health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if database, ok := s.store.(*db.DB); ok {
		database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
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
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Too many requests")
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

// authMiddleware wraps a handler with Bearer-token validation.
func (s *Server) authMiddleware() func(http.HandlerFunc) http.Handler {
	wrap := middleware.Auth(s.jwtService.AsTokenValidator())
	return func(h http.HandlerFunc) http.Handler {
		return wrap(h)
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
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

// setRateLimitHeaders sets the standard rate limit response headers.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored because the server may face the internet directly.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
