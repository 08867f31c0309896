package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/types"
)

// handleListSkills returns all skills in display order.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context())
	if err != nil {
		log.Printf("Error fetching skills: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

// handleCreateSkill creates a skill at the end of the display order.
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	skill, err := s.store.CreateSkill(r.Context(), db.SkillInput{
		Name:     req.Name,
		Level:    *req.Level,
		Category: req.Category,
	})
	if err != nil {
		log.Printf("Error creating skill: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}
	s.jsonResponse(w, http.StatusCreated, skill)
}

// handleUpdateSkill applies a partial update to a skill. The display order
// cannot be changed here; only the reorder endpoint moves skills.
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	var req types.UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	skill, err := s.store.UpdateSkill(r.Context(), id, db.SkillPatch{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		log.Printf("Error updating skill: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}
	if skill == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, skill)
}

// handleDeleteSkill deletes a skill by ID.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	deleted, err := s.store.DeleteSkill(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting skill: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReorderSkills replaces the canonical display order with the given
// id sequence. Unknown ids are tolerated as no-ops; the whole reorder is
// atomic at the store layer.
func (s *Server) handleReorderSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SkillIDs []int64 `json:"skillIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkillIDs == nil {
		s.errorResponse(w, http.StatusBadRequest, "skillIds must be an array")
		return
	}

	if err := s.store.ReorderSkills(r.Context(), req.SkillIDs); err != nil {
		log.Printf("Error reordering skills: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to reorder skills")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
