package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/types"
)

// MissingSkillsResponse represents the response for the skill suggestion endpoint
type MissingSkillsResponse struct {
	JobTitle      string   `json:"job_title"`
	MissingSkills []string `json:"missing_skills"`
	Count         int      `json:"count"`
}

// handleRecommendations scores the profile against the job catalog and
// returns the top matches
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.validationError(w, "body", "Invalid request body")
		return
	}
	if err := profile.Validate(); err != nil {
		s.validationError(w, "profile", err.Error())
		return
	}

	recommendations := computeOr("career-recommendations", func() []types.Recommendation {
		return s.matcher.Recommend(&profile, matching.DefaultTopN)
	}, fallbackRecommendations())

	s.jsonResponse(w, http.StatusOK, recommendations)
}

// handleMissingSkills lists catalog skills the profile is missing for one job
func (s *Server) handleMissingSkills(w http.ResponseWriter, r *http.Request) {
	jobTitle := r.URL.Query().Get("job")
	if jobTitle == "" {
		s.validationError(w, "job", "job query parameter is required")
		return
	}

	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.validationError(w, "body", "Invalid request body")
		return
	}
	if err := profile.Validate(); err != nil {
		s.validationError(w, "profile", err.Error())
		return
	}

	// Unknown titles degrade to an empty suggestion list
	missing := s.matcher.MissingSkills(&profile, jobTitle)
	if missing == nil {
		missing = []string{}
	}

	s.jsonResponse(w, http.StatusOK, MissingSkillsResponse{
		JobTitle:      jobTitle,
		MissingSkills: missing,
		Count:         len(missing),
	})
}
