package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/devfolio/internal/server/middleware"
	"github.com/jonathan/devfolio/internal/types"
)

// handleGoogleLogin exchanges a Google ID token for a session JWT. Only the
// allow-listed email may sign in; everyone else gets 401 regardless of
// whether their Google token is valid.
func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "ID token required")
		return
	}

	profile, err := s.verifier.Verify(r.Context(), req.IDToken)
	if err != nil {
		log.Printf("Google token verification failed: %v", err)
		s.errorResponse(w, http.StatusUnauthorized, "Invalid ID token")
		return
	}

	if !strings.EqualFold(profile.Email, s.allowedEmail) {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized email")
		return
	}

	name := profile.Name
	if name == "" {
		name = "User"
	}
	user, err := s.store.UpsertGoogleUser(r.Context(), profile.Email, name, profile.Subject, profile.Picture)
	if err != nil {
		log.Printf("Error upserting user: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{Token: token, User: user})
}

// handleCurrentUser returns the authenticated user. The allow-list is
// re-checked against the stored row so a revoked user's outstanding tokens
// stop working.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil || !user.IsAllowed {
		s.errorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// handleLogout exists for client symmetry; the client just discards its token.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
