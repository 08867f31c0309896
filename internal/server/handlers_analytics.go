package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/types"
)

// defaultDailyViewDays is the chart window when no days param is given.
const defaultDailyViewDays = 7

// handleGetAnalytics returns the aggregate singleton, creating a zeroed row
// on first access.
func (s *Server) handleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.store.GetAnalytics(r.Context())
	if err != nil {
		log.Printf("Error fetching analytics: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics)
}

// handleListDailyViews returns the last N daily ledger rows in ascending
// date order. A missing or malformed days param falls back to the default.
func (s *Server) handleListDailyViews(w http.ResponseWriter, r *http.Request) {
	days := defaultDailyViewDays
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 {
		days = v
	}

	views, err := s.store.ListDailyViews(r.Context(), days)
	if err != nil {
		log.Printf("Error fetching daily views: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch daily views")
		return
	}
	if views == nil {
		views = []db.DailyViews{}
	}
	s.jsonResponse(w, http.StatusOK, views)
}

// handleUpdateAnalytics applies a partial overwrite of the aggregate,
// including the previousMonth* snapshot fields.
func (s *Server) handleUpdateAnalytics(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateAnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	analytics, err := s.store.UpdateAnalytics(r.Context(), db.AnalyticsPatch{
		TotalViews:             req.TotalViews,
		ProjectClicks:          req.ProjectClicks,
		ContactInquiries:       req.ContactInquiries,
		PreviousMonthViews:     req.PreviousMonthViews,
		PreviousMonthClicks:    req.PreviousMonthClicks,
		PreviousMonthInquiries: req.PreviousMonthInquiries,
	})
	if err != nil {
		log.Printf("Error updating analytics: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update analytics")
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics)
}

// handleIncrementView records one page view (public endpoint).
func (s *Server) handleIncrementView(w http.ResponseWriter, r *http.Request) {
	if err := s.store.IncrementView(r.Context()); err != nil {
		log.Printf("Error incrementing view: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to increment view")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleIncrementProjectClick records one project click (public endpoint).
func (s *Server) handleIncrementProjectClick(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.store.IncrementProjectClick(r.Context())
	if err != nil {
		log.Printf("Error incrementing project click: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to increment project click")
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics)
}

// handleIncrementContactInquiry records one contact inquiry (public endpoint).
func (s *Server) handleIncrementContactInquiry(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.store.IncrementContactInquiry(r.Context())
	if err != nil {
		log.Printf("Error incrementing contact inquiry: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to increment contact inquiry")
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics)
}
