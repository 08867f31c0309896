package server

import (
	"log"
	"net/http"
)

// Public read endpoints backing the marketing site. Same data as the admin
// reads, no auth.

func (s *Server) handlePublicSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context())
	if err != nil {
		log.Printf("Error fetching skills: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

func (s *Server) handlePublicProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	s.jsonResponse(w, http.StatusOK, projects)
}

func (s *Server) handlePublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	s.jsonResponse(w, http.StatusOK, settings)
}
