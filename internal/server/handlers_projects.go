package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/types"
)

// handleListProjects returns all projects, newest first.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	s.jsonResponse(w, http.StatusOK, projects)
}

// handleGetProject returns a single project by ID.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching project: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleCreateProject creates a project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	project, err := s.store.CreateProject(r.Context(), db.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Tags:        req.Tags,
	})
	if err != nil {
		log.Printf("Error creating project: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	s.jsonResponse(w, http.StatusCreated, project)
}

// handleUpdateProject applies a partial update to a project.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req types.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	project, err := s.store.UpdateProject(r.Context(), id, db.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Tags:        req.Tags,
	})
	if err != nil {
		log.Printf("Error updating project: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleDeleteProject deletes a project by ID.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	deleted, err := s.store.DeleteProject(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting project: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
