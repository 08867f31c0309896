package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/types"
)

// handleGetProfile returns the profile, or JSON null before the first save.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		log.Printf("Error fetching profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile overwrites the profile row.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	profile, err := s.store.UpdateProfile(r.Context(), db.ProfileInput{
		Name:     req.Name,
		Title:    req.Title,
		Bio:      req.Bio,
		Email:    req.Email,
		Github:   req.Github,
		Linkedin: req.Linkedin,
		Twitter:  req.Twitter,
	})
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetSettings returns the settings, or JSON null before the first save.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	s.jsonResponse(w, http.StatusOK, settings)
}

// handleUpdateSettings overwrites the settings row.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	settings, err := s.store.UpdateSettings(r.Context(), db.SettingsInput{
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		ResumeURL:   req.ResumeURL,
		Email:       req.Email,
	})
	if err != nil {
		log.Printf("Error updating settings: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	s.jsonResponse(w, http.StatusOK, settings)
}
