package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	defaultCurrentLevel = 1
	defaultTargetLevel  = 8
)

// handleSkillGapAnalysis infers target roles from the profile and returns
// the ranked skill gaps
func (s *Server) handleSkillGapAnalysis(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.validationError(w, "body", "Invalid request body")
		return
	}
	if err := profile.Validate(); err != nil {
		s.validationError(w, "profile", err.Error())
		return
	}

	result := computeOr("skill-gap-analysis", func() []types.SkillGap {
		roles := s.analyzer.TargetRoles(&profile)
		return s.analyzer.Analyze(&profile, roles)
	}, fallbackGaps())
	if result == nil {
		result = []types.SkillGap{}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleLearningPath builds a level-by-level plan for one skill
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	skill := r.PathValue("skill")
	if skill == "" {
		s.validationError(w, "skill", "skill path parameter is required")
		return
	}

	currentLevel, err := parseQueryInt(r, "current_level", defaultCurrentLevel)
	if err != nil {
		s.validationError(w, "current_level", "Invalid current_level")
		return
	}
	targetLevel, err := parseQueryInt(r, "target_level", defaultTargetLevel)
	if err != nil {
		s.validationError(w, "target_level", "Invalid target_level")
		return
	}

	path := computeOr("skill-learning-path", func() *types.LearningPath {
		return s.analyzer.LearningPath(skill, currentLevel, targetLevel)
	}, nil)
	if path == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Could not generate learning path")
		return
	}

	s.jsonResponse(w, http.StatusOK, path)
}

// parseQueryInt parses an integer query parameter, using the default when
// the parameter is absent.
func parseQueryInt(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
