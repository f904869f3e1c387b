package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// AnalyzePersonalityRequest represents the quiz answer payload. Keys are
// question indexes, values are answer letters (A-D, case-insensitive).
type AnalyzePersonalityRequest struct {
	Responses map[string]string `json:"responses"`
}

// handlePersonalityQuestions lists the quiz questions
func (s *Server) handlePersonalityQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := s.personality.Questions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"count":     len(questions),
	})
}

// handlePersonalityAnalyze tallies quiz answers into a color category
func (s *Server) handlePersonalityAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzePersonalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.validationError(w, "body", "Invalid request body")
		return
	}
	if len(req.Responses) == 0 {
		s.validationError(w, "responses", "responses is required")
		return
	}

	responses := make(map[int]string, len(req.Responses))
	for key, answer := range req.Responses {
		index, err := strconv.Atoi(key)
		if err != nil {
			s.validationError(w, "responses", "Invalid question index: "+key)
			return
		}
		responses[index] = answer
	}

	s.jsonResponse(w, http.StatusOK, s.personality.Classify(responses))
}
